// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_normalizers

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/rapidaai/vnnorm/pkg/commons"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// =============================================================================
// Duplicate Word Normalizer
// =============================================================================

// duplicatePairs are adjacent tokens where the second one repeats the first,
// typically a keyword followed by a date that was read with its own "ngày".
var duplicatePairs = map[[2]string]struct{}{
	{"ngày", "ngày"}:   {},
	{"mùng", "ngày"}:   {},
	{"tháng", "tháng"}: {},
}

type duplicateNormalizer struct {
	logger commons.Logger
}

func NewDuplicateNormalizer(logger commons.Logger) Normalizer {
	return &duplicateNormalizer{logger: logger}
}

func (n *duplicateNormalizer) Normalize(text string) string {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return ""
	}
	kept := make([]string, 0, len(tokens))
	kept = append(kept, tokens[0])
	for i := 1; i < len(tokens); i++ {
		if _, ok := duplicatePairs[[2]string{tokens[i-1], tokens[i]}]; ok {
			continue
		}
		kept = append(kept, tokens[i])
	}
	return strings.Join(kept, " ")
}

// =============================================================================
// Sentence Case Normalizer
// =============================================================================

type sentenceCaseNormalizer struct {
	logger   commons.Logger
	boundary *regexp.Regexp
}

// NewSentenceCaseNormalizer upper-cases the first letter of the text and
// of every sentence after '.', '!' or '?'.
func NewSentenceCaseNormalizer(logger commons.Logger) Normalizer {
	return &sentenceCaseNormalizer{
		logger:   logger,
		boundary: regexp.MustCompile(`[.!?]\s+\p{Ll}`),
	}
}

func (n *sentenceCaseNormalizer) Normalize(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return text
	}
	// a Caser keeps state, so each call gets its own
	upper := cases.Upper(language.Vietnamese)
	text = upperFirst(upper, text)
	return n.boundary.ReplaceAllStringFunc(text, func(s string) string {
		r, size := utf8.DecodeLastRuneInString(s)
		return s[:len(s)-size] + upper.String(string(r))
	})
}

func upperFirst(upper cases.Caser, s string) string {
	_, size := utf8.DecodeRuneInString(s)
	return upper.String(s[:size]) + s[size:]
}
