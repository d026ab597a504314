// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_normalizers

import (
	"github.com/dlclark/regexp2"
	internal_lexicon "github.com/rapidaai/vnnorm/api/normalizer-api/internal/lexicon"
	internal_numeral "github.com/rapidaai/vnnorm/api/normalizer-api/internal/numeral"
	internal_rewrite "github.com/rapidaai/vnnorm/api/normalizer-api/internal/rewrite"
	"github.com/rapidaai/vnnorm/pkg/commons"
)

// =============================================================================
// License Plate Normalizer
// =============================================================================

const (
	// bare plate shapes: 29A-123.45, 29LD-888.99, 80-NG-167-76, 80-123-NG-01, AB-12-34
	platePattern = `\b(?:[0-9]{2}[A-Z]{1,2}[0-9]?-?[0-9]{3}\.[0-9]{2}` +
		`|[0-9]{2}-[0-9]{3}-[A-Z]{2}-[0-9]{2}` +
		`|[A-Z]{2}-[0-9]{2}-[0-9]{2}` +
		`|[0-9]{2}-[A-Z]{2}-[0-9]{3}-[0-9]{2})\b`

	// a plate announced by its prefix; only the trailing group is taken
	prefixedPlatePattern = `(?<=(?<![\p{L}\p{N}])(?i:biển kiểm soát|biển số xe|biển số)[^.!?]{0,20}?)` +
		`(?<![\p{L}\p{N}])(?<head>[0-9]+[a-zA-Z]+[0-9]*)(?<sep>\s*[-.\s]\s*)` +
		`(?<tail>[0-9]+(?:\.[0-9]+)?)(?![\p{L}\p{N}]|[.,][0-9])`
)

type plateNormalizer struct {
	logger   commons.Logger
	lex      *internal_lexicon.Lexicon
	bare     *internal_rewrite.Pattern
	prefixed *internal_rewrite.Pattern
}

// NewPlateNormalizer reads vehicle plates symbol by symbol. Bare plate
// shapes are spelled in full; after a "Biển số" style prefix only the
// numeric tail is spelled and the series code is left for the
// alphanumeric stage.
func NewPlateNormalizer(logger commons.Logger, lex *internal_lexicon.Lexicon) Normalizer {
	return &plateNormalizer{
		logger:   logger,
		lex:      lex,
		bare:     internal_rewrite.MustCompile(logger, "plate", platePattern, regexp2.None),
		prefixed: internal_rewrite.MustCompile(logger, "prefixed_plate", prefixedPlatePattern, regexp2.None),
	}
}

func (n *plateNormalizer) Normalize(text string) string {
	text = n.bare.Replace(text, func(m *regexp2.Match) (string, bool) {
		return internal_rewrite.Pad(spell(n.lex, m.String())), true
	})
	return n.prefixed.Replace(text, func(m *regexp2.Match) (string, bool) {
		tail := internal_numeral.Digits(internal_rewrite.Named(m, "tail"))
		return internal_rewrite.Named(m, "head") + internal_rewrite.Pad(tail), true
	})
}
