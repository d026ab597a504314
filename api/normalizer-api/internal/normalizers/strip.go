// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_normalizers

import (
	"regexp"

	"github.com/dlclark/regexp2"
	internal_rewrite "github.com/rapidaai/vnnorm/api/normalizer-api/internal/rewrite"
	"github.com/rapidaai/vnnorm/pkg/commons"
)

// =============================================================================
// Strip Normalizer
// =============================================================================

const (
	urlPattern   = `(?i)(?:https?://|www\.)\S+`
	emailPattern = `[A-Za-z0-9._%+\-]+@[A-Za-z0-9\-]+(?:\.[A-Za-z0-9\-]+)*\.[A-Za-z]{2,}`
)

// specialWords are upper-case tokens read letter by letter in English.
var specialWords = map[string]string{
	"AI":  "ây ai",
	"KIA": "ki a",
	"IT":  "ai ti",
}

type stripNormalizer struct {
	logger   commons.Logger
	url      *regexp.Regexp
	email    *regexp.Regexp
	html     *regexp.Regexp
	emoji    *regexp.Regexp
	words    *internal_rewrite.Pattern
	noise    *internal_rewrite.Pattern
	stripped []*regexp.Regexp
}

// NewStripNormalizer removes links, e-mail addresses, markup, emoji and
// decorative punctuation. Parentheses survive for the roman numeral and
// date recognizers; a '*' right after a number survives for ratings.
func NewStripNormalizer(logger commons.Logger) Normalizer {
	n := &stripNormalizer{
		logger: logger,
		url:    regexp.MustCompile(urlPattern),
		email:  regexp.MustCompile(emailPattern),
		html:   regexp.MustCompile(`<[a-zA-Z/!][^<>]*>`),
		emoji: regexp.MustCompile(`[` +
			`\x{1F600}-\x{1F64F}` + // emoticons
			`\x{1F300}-\x{1F5FF}` + // symbols and pictographs
			`\x{1F680}-\x{1F6FF}` + // transport and map
			`\x{1F1E0}-\x{1F1FF}` + // flags
			`\x{2500}-\x{2BEF}` +
			`\x{2702}-\x{27B0}` +
			`\x{24C2}-\x{1F251}` +
			`\x{1F926}-\x{1F937}` +
			`\x{10000}-\x{10FFFF}` +
			`\x{2640}-\x{2642}` +
			`\x{2600}-\x{2B55}` +
			`\x{200D}\x{23CF}\x{23E9}\x{231A}\x{FE0F}\x{3030}` +
			`]+`),
		words: internal_rewrite.MustCompile(logger, "special_word",
			wordStart+`(?:KIA|AI|IT)`+wordEnd, regexp2.None),
		noise: internal_rewrite.MustCompile(logger, "noise_char",
			`(?<![0-9]\s*)\*|["“”'‘’\[\]_`+"`"+`{}~…》≧≦–·】◇◆•●︶†⬔]`, regexp2.None),
	}
	n.stripped = []*regexp.Regexp{n.url, n.email, n.html, n.emoji}
	return n
}

func (n *stripNormalizer) Normalize(text string) string {
	for _, re := range n.stripped {
		text = re.ReplaceAllString(text, " ")
	}
	text = n.words.Replace(text, func(m *regexp2.Match) (string, bool) {
		return internal_rewrite.Pad(specialWords[m.String()]), true
	})
	return n.noise.Replace(text, func(m *regexp2.Match) (string, bool) {
		return " ", true
	})
}
