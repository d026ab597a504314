// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_normalizers

import (
	"strings"

	internal_lexicon "github.com/rapidaai/vnnorm/api/normalizer-api/internal/lexicon"
	internal_numeral "github.com/rapidaai/vnnorm/api/normalizer-api/internal/numeral"
)

// =============================================================================
// Normalizer Interface
// =============================================================================

// Normalizer is one stage of the pipeline. It must return its input unchanged
// when nothing in the text belongs to it.
type Normalizer interface {
	Normalize(text string) string
}

// =============================================================================
// Shared pattern fragments
// =============================================================================

const (
	// letter or digit boundaries
	wordStart = `(?<![\p{L}\p{N}])`
	wordEnd   = `(?![\p{L}\p{N}])`

	// day, month and year components of a date
	dayPart   = `(?:0?[1-9]|[12][0-9]|3[01])`
	monthPart = `(?:0?[1-9]|1[0-2])`
	yearPart  = `[0-9]{4}`

	// a number with optional dot or comma grouping
	numberPart = `[0-9]+(?:[.,][0-9]+)*`
)

// =============================================================================
// Shared verbalization helpers
// =============================================================================

// numberWords reads a generic written numeral. A comma is the decimal mark
// unless the digits form whole thousands; dots group thousands unless the
// value is small enough to be a version number.
func numberWords(s string) string {
	hasDot := strings.Contains(s, ".")
	hasComma := strings.Contains(s, ",")
	switch {
	case hasDot && hasComma:
		if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
			i := strings.LastIndex(s, ",")
			return internal_numeral.Float(strings.ReplaceAll(s[:i], ".", ""), s[i+1:])
		}
		i := strings.LastIndex(s, ".")
		return internal_numeral.Float(strings.ReplaceAll(s[:i], ",", ""), s[i+1:])
	case hasDot:
		return internal_numeral.Dotted(s)
	case hasComma:
		parts := strings.Split(s, ",")
		joined := strings.Join(parts, "")
		if len(parts) == 2 && !wholeThousands(joined) {
			return internal_numeral.Float(parts[0], parts[1])
		}
		return internal_numeral.Cardinal(joined)
	default:
		return internal_numeral.Cardinal(s)
	}
}

// rangeWords reads one side of a numeric range, where a comma is always the
// decimal mark.
func rangeWords(s string) string {
	if i := strings.LastIndex(s, ","); i >= 0 {
		return internal_numeral.Float(strings.ReplaceAll(s[:i], ".", ""), s[i+1:])
	}
	if strings.Contains(s, ".") {
		return internal_numeral.Dotted(s)
	}
	return internal_numeral.Cardinal(s)
}

func wholeThousands(digits string) bool {
	trimmed := strings.TrimLeft(digits, "0")
	return trimmed == "" || strings.HasSuffix(trimmed, "000")
}

// spell reads a code one symbol at a time: digits by name, letters through
// the alphabet table. Anything else is dropped.
func spell(lex *internal_lexicon.Lexicon, code string) string {
	words := make([]string, 0, len(code))
	for _, r := range code {
		switch {
		case r >= '0' && r <= '9':
			words = append(words, internal_numeral.Digits(string(r)))
		case r == '+':
			words = append(words, internal_numeral.WordPlus)
		case isLetter(r):
			words = append(words, lex.Letter(r))
		}
	}
	return strings.Join(words, " ")
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == 'đ' || r == 'Đ'
}

// dmyWords reads day, month and year: "ngày D tháng M năm Y".
func dmyWords(day, month, year string) string {
	return dmWords(day, month) + " năm " + internal_numeral.Cardinal(year)
}

// dmWords reads day and month: "ngày D tháng M".
func dmWords(day, month string) string {
	return "ngày " + internal_numeral.Cardinal(day) + " tháng " + internal_numeral.Month(month)
}

// myWords reads month and year: "tháng M năm Y".
func myWords(month, year string) string {
	return "tháng " + internal_numeral.Month(month) + " năm " + internal_numeral.Cardinal(year)
}
