// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_numeral

import (
	"strings"

	ntw "moul.io/number-to-words"
)

// VersionLimit is the joined magnitude below which a dotted numeral is read
// part by part.
const VersionLimit = 1000

// Float reads "int,frac". Leading zeros of the fraction are spoken; a fraction
// of only zeros collapses to the integer part.
func Float(intPart, fracPart string) string {
	if intPart == "" {
		intPart = "0"
	}
	if !IsDigits(intPart) || (fracPart != "" && !IsDigits(fracPart)) {
		return intPart + "," + fracPart
	}
	if strings.Trim(fracPart, "0") == "" {
		return Cardinal(intPart)
	}
	trimmed := strings.TrimLeft(fracPart, "0")
	words := make([]string, 0, len(fracPart)-len(trimmed)+1)
	for i := 0; i < len(fracPart)-len(trimmed); i++ {
		words = append(words, digitWords[0])
	}
	words = append(words, Cardinal(trimmed))
	return Cardinal(intPart) + " " + WordDecimal + " " + strings.Join(words, " ")
}

// Version reads dotted parts one by one, joined by "chấm".
func Version(parts []string) string {
	words := make([]string, 0, len(parts))
	for _, p := range parts {
		if !IsDigits(p) {
			return strings.Join(parts, ".")
		}
		words = append(words, Cardinal(p))
	}
	return strings.Join(words, " "+WordDot+" ")
}

// Dotted reads a numeral whose parts are separated by dots. Several parts
// whose concatenation stays below VersionLimit are a version; anything else
// is a thousands-grouped quantity.
func Dotted(s string) string {
	parts := strings.Split(s, ".")
	joined := strings.Join(parts, "")
	if !IsDigits(joined) {
		return s
	}
	if len(parts) > 1 && below(joined, VersionLimit) {
		return Version(parts)
	}
	return Cardinal(joined)
}

// Digits spells each digit separately, the way phone numbers, plates and
// account numbers are read. A leading "+" becomes "cộng"; any other
// character is dropped.
func Digits(s string) string {
	words := make([]string, 0, len(s))
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			words = append(words, digitWords[r-'0'])
		case r == '+':
			words = append(words, WordPlus)
		}
	}
	return strings.Join(words, " ")
}

// Negative prefixes already verbalized words with "âm".
func Negative(words string) string {
	return WordNegative + " " + words
}

// Month reads a month number the way dates speak it ("tháng tư").
func Month(digits string) string {
	d := strings.TrimLeft(digits, "0")
	if d == "4" {
		return "tư"
	}
	return Cardinal(digits)
}

var romanValues = map[byte]int{'I': 1, 'V': 5, 'X': 10, 'L': 50, 'C': 100, 'D': 500, 'M': 1000}

// Roman parses a roman numeral in either case. Only the canonical spelling of
// a value is accepted: "IIII" or "VX" are rejected.
func Roman(s string) (int, bool) {
	upper := strings.ToUpper(s)
	if upper == "" {
		return 0, false
	}
	total := 0
	for i := 0; i < len(upper); i++ {
		v, ok := romanValues[upper[i]]
		if !ok {
			return 0, false
		}
		if i+1 < len(upper) && v < romanValues[upper[i+1]] {
			total -= v
		} else {
			total += v
		}
	}
	if total <= 0 || total >= 4000 || ntw.IntegerToRoman(total) != upper {
		return 0, false
	}
	return total, true
}

// RomanWords verbalizes a valid roman numeral.
func RomanWords(s string) (string, bool) {
	n, ok := Roman(s)
	if !ok {
		return s, false
	}
	return Int(int64(n)), true
}

func below(digits string, limit int) bool {
	digits = strings.TrimLeft(digits, "0")
	if len(digits) > 9 {
		return false
	}
	n := 0
	for i := 0; i < len(digits); i++ {
		n = n*10 + int(digits[i]-'0')
	}
	return n < limit
}
