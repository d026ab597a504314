// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_normalizers

import (
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
	internal_numeral "github.com/rapidaai/vnnorm/api/normalizer-api/internal/numeral"
	internal_rewrite "github.com/rapidaai/vnnorm/api/normalizer-api/internal/rewrite"
	"github.com/rapidaai/vnnorm/pkg/commons"
)

// a slash-separated pair that is not part of a longer numeral chain
const slashPair = `(?<![\p{L}\p{N}.,/])(?<a>[0-9]+)\s*/\s*(?<b>[0-9]+)`

// =============================================================================
// Ratio Normalizer
// =============================================================================

type ratioNormalizer struct {
	logger  commons.Logger
	gate    *internal_rewrite.Gate
	pattern *internal_rewrite.Pattern
}

// NewRatioNormalizer reads "1:18" as "một mười tám" when the text talks
// about a ratio ("tỉ lệ").
func NewRatioNormalizer(logger commons.Logger) Normalizer {
	return &ratioNormalizer{
		logger:  logger,
		gate:    internal_rewrite.NewGate(logger, "ratio_gate", []string{"tỉ lệ", "tỷ lệ"}),
		pattern: internal_rewrite.MustCompile(logger, "ratio", `\b(?<a>[0-9]+):(?<b>[0-9]+)\b`, regexp2.None),
	}
}

func (n *ratioNormalizer) Normalize(text string) string {
	if !n.gate.Open(text) {
		return text
	}
	return n.pattern.Replace(text, func(m *regexp2.Match) (string, bool) {
		a := internal_numeral.Cardinal(internal_rewrite.Named(m, "a"))
		b := internal_numeral.Cardinal(internal_rewrite.Named(m, "b"))
		return internal_rewrite.Pad(a + " " + b), true
	})
}

// =============================================================================
// Address Normalizer
// =============================================================================

type addressNormalizer struct {
	logger  commons.Logger
	pattern *internal_rewrite.Pattern
}

// NewAddressNormalizer reads alley numbers: "ngõ 12/124" becomes
// "ngõ mười hai trên một trăm hai mươi bốn".
func NewAddressNormalizer(logger commons.Logger) Normalizer {
	expr := `(?<=(?<![\p{L}\p{N}])(?i:ngõ|ngách|hẻm|kiệt)\s+)` +
		`(?<a>[0-9]+)\s*/\s*(?<b>[0-9]+)(?:\s*/\s*(?<c>[0-9]+))?(?=[\s.,);]|$)`
	return &addressNormalizer{
		logger:  logger,
		pattern: internal_rewrite.MustCompile(logger, "address", expr, regexp2.None),
	}
}

func (n *addressNormalizer) Normalize(text string) string {
	return n.pattern.Replace(text, func(m *regexp2.Match) (string, bool) {
		parts := []string{
			internal_numeral.Cardinal(internal_rewrite.Named(m, "a")),
			internal_numeral.Cardinal(internal_rewrite.Named(m, "b")),
		}
		if c := internal_rewrite.Named(m, "c"); c != "" {
			parts = append(parts, internal_numeral.Cardinal(c))
		}
		return internal_rewrite.Pad(strings.Join(parts, " trên ")), true
	})
}

// =============================================================================
// Fraction Normalizer
// =============================================================================

type fractionNormalizer struct {
	logger   commons.Logger
	quantity *internal_rewrite.Pattern
	measure  *internal_rewrite.Pattern
	legal    *internal_rewrite.Pattern
	perWord  *internal_rewrite.Pattern
}

// NewFractionNormalizer handles the slash in four contexts, tried in order:
//
//	"chiếm 1/3"               -> "chiếm một phần ba"
//	"1/2 thìa"                -> "một phần hai thìa"
//	"Nghị định 110/2013"      -> "Nghị định một trăm mười, năm hai nghìn không trăm mười ba"
//	"trường hợp/100.000 dân"  -> "trường hợp trên 100.000 dân"
func NewFractionNormalizer(logger commons.Logger) Normalizer {
	quantity := `(?<=(?:(?<![\p{L}\p{N}])(?i:thứ|hơn|gần|hạng|được|tới|góp|là|có|còn|lên|bằng|chiếm|giảm|tỷ lệ|tỉ lệ|khoảng|online)|:)\s)` +
		slashPair + `(?=[\s.,);]|$)`
	measure := slashPair + `(?=\s*(?:muỗng|thìa|ly|cốc|chén|chai|lọ)(?!\p{L}))`
	legal := `(?<=(?<![\p{L}\p{N}])(?i:nghị định|nghị quyết|thông tư liên tịch|thông tư)\s*)` + slashPair
	perWord := `(?<=(?<![\p{L}\p{N}])\p{L}{2,})/`
	return &fractionNormalizer{
		logger:   logger,
		quantity: internal_rewrite.MustCompile(logger, "fraction_quantity", quantity, regexp2.None),
		measure:  internal_rewrite.MustCompile(logger, "fraction_measure", measure, regexp2.None),
		legal:    internal_rewrite.MustCompile(logger, "fraction_legal", legal, regexp2.None),
		perWord:  internal_rewrite.MustCompile(logger, "fraction_per_word", perWord, regexp2.None),
	}
}

func (n *fractionNormalizer) Normalize(text string) string {
	text = n.quantity.Replace(text, func(m *regexp2.Match) (string, bool) {
		if dayMonth(internal_rewrite.Named(m, "a"), internal_rewrite.Named(m, "b")) {
			return "", false
		}
		return n.join(" phần ")(m)
	})
	text = n.measure.Replace(text, n.join(" phần "))
	text = n.legal.Replace(text, n.join(", năm "))
	return n.perWord.Replace(text, func(m *regexp2.Match) (string, bool) {
		return internal_rewrite.Pad("trên"), true
	})
}

// dayMonth reports whether a/b reads better as a date: a valid day no
// smaller than a valid month.
func dayMonth(a, b string) bool {
	day, err := strconv.Atoi(a)
	if err != nil {
		return false
	}
	month, err := strconv.Atoi(b)
	if err != nil {
		return false
	}
	return month >= 1 && month <= 12 && day <= 31 && day >= month
}

func (n *fractionNormalizer) join(connective string) internal_rewrite.Converter {
	return func(m *regexp2.Match) (string, bool) {
		a := internal_numeral.Cardinal(internal_rewrite.Named(m, "a"))
		b := internal_numeral.Cardinal(internal_rewrite.Named(m, "b"))
		return internal_rewrite.Pad(a + connective + b), true
	}
}
