// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

// Package internal_numeral spells digit strings out as Vietnamese words.
//
// Every function is total: input that is not a well formed numeral of the
// requested kind is returned unchanged so callers can leave the span alone.
package internal_numeral

import (
	"strconv"
	"strings"
)

const (
	WordNegative = "âm"
	WordDecimal  = "phảy"
	WordDot      = "chấm"
	WordPlus     = "cộng"
	WordBillion  = "tỷ"
)

var digitWords = [10]string{"không", "một", "hai", "ba", "bốn", "năm", "sáu", "bảy", "tám", "chín"}

// scale names for the three groups below one billion, most significant first
var scaleWords = [3]string{"triệu", "nghìn", ""}

// IsDigits reports whether s is a non-empty run of ASCII digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Cardinal reads an arbitrarily long digit string as a quantity.
func Cardinal(digits string) string {
	if !IsDigits(digits) {
		return digits
	}
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return digitWords[0]
	}
	return cardinal(digits, true)
}

// Int is Cardinal for a non-negative integer.
func Int(n int64) string {
	if n < 0 {
		return WordNegative + " " + Cardinal(strconv.FormatInt(-n, 10))
	}
	return Cardinal(strconv.FormatInt(n, 10))
}

func cardinal(digits string, leading bool) string {
	if len(digits) > 9 {
		head := strings.TrimLeft(digits[:len(digits)-9], "0")
		tail := digits[len(digits)-9:]
		var words string
		if head != "" {
			words = cardinal(head, leading) + " " + WordBillion
			leading = false
		}
		if rest := belowBillion(tail, leading); rest != "" {
			if words == "" {
				return rest
			}
			return words + " " + rest
		}
		return words
	}
	return belowBillion(digits, leading)
}

// belowBillion reads up to nine digits as three groups. Zero groups are
// skipped; groups after the first spoken one are read in full
// ("không trăm", "linh").
func belowBillion(digits string, leading bool) string {
	padded := strings.Repeat("0", 9-len(digits)) + digits
	parts := make([]string, 0, 6)
	for i := 0; i < 3; i++ {
		g := padded[i*3 : i*3+3]
		if g == "000" {
			continue
		}
		parts = append(parts, readGroup(int(g[0]-'0'), int(g[1]-'0'), int(g[2]-'0'), !leading))
		if scaleWords[i] != "" {
			parts = append(parts, scaleWords[i])
		}
		leading = false
	}
	return strings.Join(parts, " ")
}

func readGroup(h, t, u int, full bool) string {
	parts := make([]string, 0, 4)
	hundreds := full || h > 0
	if hundreds {
		parts = append(parts, digitWords[h], "trăm")
	}
	switch {
	case t == 0:
		if u > 0 {
			if hundreds {
				parts = append(parts, "linh")
			}
			parts = append(parts, digitWords[u])
		}
	case t == 1:
		parts = append(parts, "mười")
		if u == 5 {
			parts = append(parts, "lăm")
		} else if u > 0 {
			parts = append(parts, digitWords[u])
		}
	default:
		parts = append(parts, digitWords[t], "mươi")
		switch u {
		case 0:
		case 1:
			parts = append(parts, "mốt")
		case 5:
			parts = append(parts, "lăm")
		default:
			parts = append(parts, digitWords[u])
		}
	}
	return strings.Join(parts, " ")
}
