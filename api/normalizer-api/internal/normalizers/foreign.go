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
// Foreign Word Normalizer
// =============================================================================

type foreignNormalizer struct {
	logger  commons.Logger
	table   *internal_lexicon.Table
	pattern *internal_rewrite.Pattern
}

// NewForeignNormalizer respells known foreign words the way a Vietnamese
// reader says them ("facebook" -> "phây búc"). Matching ignores case, takes
// the longest entry first and never starts or ends inside a word.
func NewForeignNormalizer(logger commons.Logger, lex *internal_lexicon.Lexicon) Normalizer {
	n := &foreignNormalizer{logger: logger, table: lex.Foreign}
	if n.table.Len() == 0 {
		return n
	}
	expr := wordStart + internal_rewrite.Alternation(n.table.Keys()) + wordEnd
	n.pattern = internal_rewrite.MustCompile(logger, "foreign", expr, regexp2.IgnoreCase)
	return n
}

func (n *foreignNormalizer) Normalize(text string) string {
	if n.pattern == nil {
		return text
	}
	return n.pattern.Replace(text, func(m *regexp2.Match) (string, bool) {
		return n.table.Lookup(strings.ToLower(m.String()))
	})
}
