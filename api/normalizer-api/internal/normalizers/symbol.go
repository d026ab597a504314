// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_normalizers

import (
	"github.com/dlclark/regexp2"
	internal_lexicon "github.com/rapidaai/vnnorm/api/normalizer-api/internal/lexicon"
	internal_rewrite "github.com/rapidaai/vnnorm/api/normalizer-api/internal/rewrite"
	"github.com/rapidaai/vnnorm/pkg/commons"
)

// =============================================================================
// Math Symbol Normalizer
// =============================================================================

type mathSymbolNormalizer struct {
	logger   commons.Logger
	table    *internal_lexicon.Table
	currency *internal_rewrite.Pattern
	symbol   *internal_rewrite.Pattern
}

// NewMathSymbolNormalizer names math and currency symbols. A currency sign
// in front of an amount moves behind it: "$5" is read "năm đô la".
func NewMathSymbolNormalizer(logger commons.Logger, lex *internal_lexicon.Lexicon) Normalizer {
	n := &mathSymbolNormalizer{logger: logger, table: lex.Symbols}
	if n.table.Len() == 0 {
		return n
	}
	n.currency = internal_rewrite.MustCompile(logger, "currency_amount",
		`(?<sign>[$€£¥])\s?(?<n>`+numberPart+`)(?!\p{N})`, regexp2.None)
	n.symbol = internal_rewrite.MustCompile(logger, "math_symbol",
		internal_rewrite.Alternation(n.table.Keys()), regexp2.None)
	return n
}

func (n *mathSymbolNormalizer) Normalize(text string) string {
	if n.symbol == nil {
		return text
	}
	text = n.currency.Replace(text, func(m *regexp2.Match) (string, bool) {
		name, ok := n.table.Lookup(named(m, "sign"))
		if !ok {
			return "", false
		}
		return internal_rewrite.Pad(numberWords(named(m, "n")) + " " + name), true
	})
	return n.symbol.Replace(text, func(m *regexp2.Match) (string, bool) {
		name, ok := n.table.Lookup(m.String())
		if !ok {
			return "", false
		}
		return internal_rewrite.Pad(name), true
	})
}

// =============================================================================
// Verbatim Normalizer
// =============================================================================

type verbatimNormalizer struct {
	logger  commons.Logger
	table   *internal_lexicon.Table
	pattern *internal_rewrite.Pattern
}

// NewVerbatimNormalizer substitutes chat shorthand and fixed forms ("ko",
// "v/v", "đ/c") that stand alone between spaces.
func NewVerbatimNormalizer(logger commons.Logger, lex *internal_lexicon.Lexicon) Normalizer {
	n := &verbatimNormalizer{logger: logger, table: lex.Verbatim}
	if n.table.Len() == 0 {
		return n
	}
	expr := `(?<!\S)` + internal_rewrite.Alternation(n.table.Keys()) + `(?!\S)`
	n.pattern = internal_rewrite.MustCompile(logger, "verbatim", expr, regexp2.None)
	return n
}

func (n *verbatimNormalizer) Normalize(text string) string {
	if n.pattern == nil {
		return text
	}
	return n.pattern.Replace(text, func(m *regexp2.Match) (string, bool) {
		value, ok := n.table.Lookup(m.String())
		if !ok {
			return "", false
		}
		return internal_rewrite.Pad(value), true
	})
}
