// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_normalizers

import (
	"github.com/dlclark/regexp2"
	internal_numeral "github.com/rapidaai/vnnorm/api/normalizer-api/internal/numeral"
	internal_rewrite "github.com/rapidaai/vnnorm/api/normalizer-api/internal/rewrite"
	"github.com/rapidaai/vnnorm/pkg/commons"
)

const (
	upperRoman = `(?=[IVX])X{0,3}(?:IX|IV|V?I{0,3})`
	lowerRoman = `(?=[ivx])x{0,3}(?:ix|iv|v?i{0,3})`
)

// romanKeywords introduce a numbered thing: "Chương IV", "thế kỷ XX".
var romanKeywords = []string{
	"thế hệ", "số", "đại hội", "giai đoạn", "quý", "cấp", "quận", "kỳ", "khóa", "khoá",
	"quy định", "vành đai", "vùng", "thế kỷ", "khu vực", "khu", "đợt", "hạng", "báo động",
	"tập", "lần thứ", "lần", "trung ương", "tw", "chương", "phần", "mục",
}

// =============================================================================
// Roman Numeral Normalizer
// =============================================================================

type romanNormalizer struct {
	logger  commons.Logger
	marked  []*internal_rewrite.Pattern
	gate    *internal_rewrite.Gate
	keyword *internal_rewrite.Pattern
}

// NewRomanNormalizer reads roman numerals in two ways. A numeral that opens
// a bracket ("(IV)", "(iv)") or a sentence ("II. Nội dung") and is closed by
// punctuation is read anywhere; initials such as "ông V. Putin" are not. Any other numeral needs one of the numbering keywords right
// before it, so "tu vi" stays as it is.
func NewRomanNormalizer(logger commons.Logger) Normalizer {
	keyword := `(?<=(?<![\p{L}\p{N}])(?i:` + internal_rewrite.Alternation(romanKeywords) + `)\s+)` +
		`(?:` + upperRoman + `(?=[\s.,)/]|$)|` + lowerRoman + `(?=[.,)/]|$))`
	return &romanNormalizer{
		logger: logger,
		marked: []*internal_rewrite.Pattern{
			internal_rewrite.MustCompile(logger, "roman_marked_upper",
				`(?<=(?:(?:^|\s)\(|^|[.!?]\s)\s*)`+upperRoman+`(?=[.,)/])`, regexp2.None),
			internal_rewrite.MustCompile(logger, "roman_marked_lower",
				`(?<=(?:^|\s)\(\s*)`+lowerRoman+`(?=[\s.,)/])`, regexp2.None),
		},
		gate:    internal_rewrite.NewGate(logger, "roman_gate", romanKeywords),
		keyword: internal_rewrite.MustCompile(logger, "roman_keyword", keyword, regexp2.None),
	}
}

func (n *romanNormalizer) Normalize(text string) string {
	for _, p := range n.marked {
		text = p.Replace(text, romanWords)
	}
	if !n.gate.Open(text) {
		return text
	}
	return n.keyword.Replace(text, romanWords)
}

func romanWords(m *regexp2.Match) (string, bool) {
	if m.Length == 0 {
		return "", false
	}
	words, ok := internal_numeral.RomanWords(m.String())
	if !ok {
		return "", false
	}
	return internal_rewrite.Pad(words), true
}
