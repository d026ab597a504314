// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_normalizers

import (
	"strings"

	"github.com/dlclark/regexp2"
	internal_lexicon "github.com/rapidaai/vnnorm/api/normalizer-api/internal/lexicon"
	internal_rewrite "github.com/rapidaai/vnnorm/api/normalizer-api/internal/rewrite"
	"github.com/rapidaai/vnnorm/pkg/commons"
)

// =============================================================================
// Abbreviation Normalizer
// =============================================================================

type abbreviationNormalizer struct {
	logger  commons.Logger
	table   *internal_lexicon.Table
	pattern *internal_rewrite.Pattern
}

// NewAbbreviationNormalizer expands whole-token abbreviations such as
// "UBND" or "TP.HCM". Matching is case-sensitive. A dot inside a key may be
// followed by the space lexical cleanup inserts after it.
func NewAbbreviationNormalizer(logger commons.Logger, lex *internal_lexicon.Lexicon) Normalizer {
	n := &abbreviationNormalizer{logger: logger, table: lex.Abbreviations}
	if n.table.Len() == 0 {
		return n
	}
	alt := strings.ReplaceAll(internal_rewrite.Alternation(n.table.Keys()), `\.`, `\.\s?`)
	n.pattern = internal_rewrite.MustCompile(logger, "abbreviation", wordStart+alt+wordEnd, regexp2.None)
	return n
}

func (n *abbreviationNormalizer) Normalize(text string) string {
	if n.pattern == nil {
		return text
	}
	return n.pattern.Replace(text, func(m *regexp2.Match) (string, bool) {
		key := strings.ReplaceAll(m.String(), ". ", ".")
		value, ok := n.table.Lookup(key)
		if !ok {
			return "", false
		}
		return internal_rewrite.Pad(value), true
	})
}
