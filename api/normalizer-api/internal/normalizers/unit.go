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
	internal_numeral "github.com/rapidaai/vnnorm/api/normalizer-api/internal/numeral"
	internal_rewrite "github.com/rapidaai/vnnorm/api/normalizer-api/internal/rewrite"
	"github.com/rapidaai/vnnorm/pkg/commons"
)

// spoken multipliers that may sit between a numeral and its unit
const multiplierWords = `(?:chục|trăm|nghìn|ngàn|triệu|tỷ|tỉ)`

// =============================================================================
// Unit Normalizer
// =============================================================================

type unitNormalizer struct {
	logger  commons.Logger
	units   map[string]string
	pattern *internal_rewrite.Pattern
}

// NewUnitNormalizer verbalizes a quantity together with its unit: "5kg",
// "-5,5 độ", "3-5 km", "2 triệu usd". A unit is only recognized right after
// a numeral and never inside a longer word.
func NewUnitNormalizer(logger commons.Logger, lex *internal_lexicon.Lexicon) Normalizer {
	n := &unitNormalizer{logger: logger, units: make(map[string]string, lex.Units.Len())}
	keys := lex.Units.Keys()
	if len(keys) == 0 {
		return n
	}
	for _, key := range keys {
		folded := strings.ToLower(key)
		if _, ok := n.units[folded]; ok {
			continue
		}
		value, _ := lex.Units.Lookup(key)
		n.units[folded] = value
	}
	expr := `(?<![\p{L}\p{N}.,/:\-])(?<neg>-)?(?<a>` + numberPart + `)` +
		`(?:\s*-\s*(?<b>` + numberPart + `))?` +
		`\s*(?:(?<mult>` + multiplierWords + `)\s+)?` +
		`(?<unit>` + internal_rewrite.Alternation(keys) + `)` + wordEnd
	n.pattern = internal_rewrite.MustCompile(logger, "unit", expr, regexp2.IgnoreCase)
	return n
}

func (n *unitNormalizer) Normalize(text string) string {
	if n.pattern == nil {
		return text
	}
	return n.pattern.Replace(text, func(m *regexp2.Match) (string, bool) {
		unit, ok := n.units[strings.ToLower(internal_rewrite.Named(m, "unit"))]
		if !ok {
			return "", false
		}
		var words string
		if b := internal_rewrite.Named(m, "b"); b != "" {
			words = rangeWords(internal_rewrite.Named(m, "a")) + " đến " + rangeWords(b)
		} else {
			words = numberWords(internal_rewrite.Named(m, "a"))
		}
		if internal_rewrite.Named(m, "neg") != "" {
			words = internal_numeral.Negative(words)
		}
		if mult := internal_rewrite.Named(m, "mult"); mult != "" {
			words += " " + strings.ToLower(mult)
		}
		if unit != "" {
			words += " " + unit
		}
		return internal_rewrite.Pad(words), true
	})
}

// =============================================================================
// Rating Normalizer
// =============================================================================

type rateNormalizer struct {
	logger  commons.Logger
	pattern *internal_rewrite.Pattern
}

// NewRateNormalizer reads the star in "đánh giá 5*" as "sao".
func NewRateNormalizer(logger commons.Logger) Normalizer {
	expr := `(?<=(?<![\p{L}\p{N}])(?i:đánh giá|rate)\s+[0-9]+)\s*\*`
	return &rateNormalizer{
		logger:  logger,
		pattern: internal_rewrite.MustCompile(logger, "rate", expr, regexp2.None),
	}
}

func (n *rateNormalizer) Normalize(text string) string {
	return n.pattern.Replace(text, func(m *regexp2.Match) (string, bool) {
		return internal_rewrite.Pad("sao"), true
	})
}
