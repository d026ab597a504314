// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_normalizers

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/rapidaai/vnnorm/pkg/commons"
	"golang.org/x/text/unicode/norm"
)

// =============================================================================
// Lexical Cleanup Normalizer
// =============================================================================

type lexicalCleanupNormalizer struct {
	logger            commons.Logger
	newlineAfterPunct *regexp.Regexp
	newline           *regexp.Regexp
	whitespace        *regexp.Regexp
	decimalWord       *regexp.Regexp
	link              *regexp.Regexp
	stars             *strings.Replacer
}

// NewLexicalCleanupNormalizer composes diacritics, turns line breaks into
// sentence breaks and separates punctuation that is not part of a numeral.
func NewLexicalCleanupNormalizer(logger commons.Logger) Normalizer {
	return &lexicalCleanupNormalizer{
		logger:            logger,
		newlineAfterPunct: regexp.MustCompile(`([.,?!:;)\]}'"’”])[ \t]*\n+\s*`),
		newline:           regexp.MustCompile(`\s*\n+\s*`),
		whitespace:        regexp.MustCompile(`\s+`),
		decimalWord:       regexp.MustCompile(`phẩy`),
		link:              regexp.MustCompile(urlPattern + `|` + emailPattern),
		stars:             strings.NewReplacer("★", "*", "⭐", "*", "☆", "*"),
	}
}

func (n *lexicalCleanupNormalizer) Normalize(text string) string {
	if text == "" {
		return text
	}
	text = norm.NFC.String(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSpace(text)
	text = n.newlineAfterPunct.ReplaceAllString(text, "$1 ")
	text = n.newline.ReplaceAllString(text, ". ")
	text = n.decimalWord.ReplaceAllString(text, "phảy")
	text = n.stars.Replace(text)
	text = n.separate(text)
	return strings.TrimSpace(n.whitespace.ReplaceAllString(text, " "))
}

// separate copies links and e-mail addresses through untouched for the strip
// stage and splits the punctuation of everything in between.
func (n *lexicalCleanupNormalizer) separate(text string) string {
	var b strings.Builder
	b.Grow(len(text) + 16)
	last := 0
	for _, loc := range n.link.FindAllStringIndex(text, -1) {
		separatePunct(&b, text[last:loc[0]])
		b.WriteString(text[loc[0]:loc[1]])
		last = loc[1]
	}
	separatePunct(&b, text[last:])
	return b.String()
}

// separatePunct walks the runes once: colons outside numerals become
// sentence breaks, en and em dashes between digits fold to '-', and '.' or
// ',' not touching a digit get a trailing space unless a lower-case letter
// follows, which keeps domains and "v.v" in one piece.
func separatePunct(b *strings.Builder, text string) {
	runes := []rune(text)
	for i, r := range runes {
		prevDigit := i > 0 && unicode.IsDigit(runes[i-1])
		nextDigit := i+1 < len(runes) && unicode.IsDigit(runes[i+1])
		nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
		switch r {
		case ':':
			if prevDigit && nextDigit {
				b.WriteRune(r)
			} else {
				b.WriteString(". ")
			}
		case '–', '—':
			if prevDigit && nextDigit {
				b.WriteRune('-')
			} else {
				b.WriteRune(r)
			}
		case '.', ',':
			b.WriteRune(r)
			if !prevDigit && !nextDigit && !nextLower {
				b.WriteRune(' ')
			}
		default:
			b.WriteRune(r)
		}
	}
}

// =============================================================================
// Special Character Normalizer
// =============================================================================

type specialCharNormalizer struct {
	logger  commons.Logger
	allowed *regexp.Regexp
}

// NewSpecialCharNormalizer blanks every character that is not a letter, a
// digit, whitespace or sentence punctuation.
func NewSpecialCharNormalizer(logger commons.Logger) Normalizer {
	return &specialCharNormalizer{
		logger:  logger,
		allowed: regexp.MustCompile(`[^\p{L}\p{N}\p{M}_\s,.?!;\-]`),
	}
}

func (n *specialCharNormalizer) Normalize(text string) string {
	return n.allowed.ReplaceAllString(text, " ")
}

// =============================================================================
// Whitespace Normalizer
// =============================================================================

type whitespaceNormalizer struct {
	logger commons.Logger
	spaces *regexp.Regexp
}

func NewWhitespaceNormalizer(logger commons.Logger) Normalizer {
	return &whitespaceNormalizer{logger: logger, spaces: regexp.MustCompile(` {2,}`)}
}

func (n *whitespaceNormalizer) Normalize(text string) string {
	return strings.TrimSpace(n.spaces.ReplaceAllString(text, " "))
}

// =============================================================================
// Punctuation Spacing Normalizer
// =============================================================================

type punctuationSpacingNormalizer struct {
	logger commons.Logger
	dots   *regexp.Regexp
	rules  []spacingRule
}

type spacingRule struct {
	re   *regexp.Regexp
	repl string
}

// NewPunctuationSpacingNormalizer puts exactly one space after '.', '?' and
// ','. Runs of dots collapse to one.
func NewPunctuationSpacingNormalizer(logger commons.Logger) Normalizer {
	return &punctuationSpacingNormalizer{
		logger: logger,
		dots:   regexp.MustCompile(`\.(?:\s*\.)+`),
		rules: []spacingRule{
			{re: regexp.MustCompile(`\.\s*`), repl: ". "},
			{re: regexp.MustCompile(`\?\s*`), repl: "? "},
			{re: regexp.MustCompile(`,\s*`), repl: ", "},
		},
	}
}

func (n *punctuationSpacingNormalizer) Normalize(text string) string {
	text = n.dots.ReplaceAllString(text, ".")
	for _, rule := range n.rules {
		text = rule.re.ReplaceAllString(text, rule.repl)
	}
	return text
}

// =============================================================================
// Post Process Normalizer
// =============================================================================

type postProcessNormalizer struct {
	logger        commons.Logger
	whitespace    *regexp.Regexp
	doubleDot     *regexp.Regexp
	danglingPunct *regexp.Regexp
}

// NewPostProcessNormalizer collapses whitespace and doubled full stops left
// behind by earlier stages.
func NewPostProcessNormalizer(logger commons.Logger) Normalizer {
	return &postProcessNormalizer{
		logger:        logger,
		whitespace:    regexp.MustCompile(`\s+`),
		doubleDot:     regexp.MustCompile(`\.\.\s`),
		danglingPunct: regexp.MustCompile(`\s+([.,?!;])`),
	}
}

func (n *postProcessNormalizer) Normalize(text string) string {
	text = n.whitespace.ReplaceAllString(text, " ")
	text = n.doubleDot.ReplaceAllString(text, ". ")
	text = n.danglingPunct.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}
