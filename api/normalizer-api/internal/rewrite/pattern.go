// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_rewrite

import (
	"github.com/dlclark/regexp2"
	"github.com/rapidaai/vnnorm/pkg/commons"
)

// =============================================================================
// Pattern
// =============================================================================

// Converter turns one match into its replacement. Returning false leaves the
// matched text as it is.
type Converter func(m *regexp2.Match) (string, bool)

// Pattern is a named regexp2 expression that rewrites its matches.
type Pattern struct {
	logger commons.Logger
	name   string
	re     *regexp2.Regexp
}

// MustCompile panics on an invalid expression; patterns are fixed at build
// time.
func MustCompile(logger commons.Logger, name, expr string, opts regexp2.RegexOptions) *Pattern {
	return &Pattern{
		logger: logger,
		name:   name,
		re:     regexp2.MustCompile(expr, opts),
	}
}

// MatchString reports whether the pattern occurs anywhere in text.
func (p *Pattern) MatchString(text string) bool {
	ok, err := p.re.MatchString(text)
	if err != nil {
		p.logger.Warnf("rewrite: pattern %s failed: %v", p.name, err)
		return false
	}
	return ok
}

// Spans walks the non-overlapping matches from left to right, each search
// resuming where the previous match ended.
func (p *Pattern) Spans(text string, convert Converter) ([]Span, error) {
	var spans []Span
	m, err := p.re.FindStringMatch(text)
	for m != nil && err == nil {
		if replacement, ok := convert(m); ok {
			spans = append(spans, Span{Start: m.Index, End: m.Index + m.Length, Text: replacement})
		}
		m, err = p.re.FindNextMatch(m)
	}
	if err != nil {
		return nil, err
	}
	return spans, nil
}

// Replace rewrites every converted match. On an engine error (match timeout)
// the text is returned unchanged.
func (p *Pattern) Replace(text string, convert Converter) string {
	spans, err := p.Spans(text, convert)
	if err != nil {
		p.logger.Warnf("rewrite: pattern %s failed, leaving text unchanged: %v", p.name, err)
		return text
	}
	if len(spans) > 0 {
		p.logger.Debugf("rewrite: pattern %s rewrote %d span(s)", p.name, len(spans))
	}
	return Apply(text, spans)
}

// =============================================================================
// Match helpers
// =============================================================================

// Named returns the text captured by a named group, or "".
func Named(m *regexp2.Match, name string) string {
	g := m.GroupByName(name)
	if g == nil || len(g.Captures) == 0 {
		return ""
	}
	return g.String()
}

// =============================================================================
// Context gate
// =============================================================================

// Gate is the global half of a two-phase recognizer: a cheap check that the
// text talks about the right subject before any local pattern is tried.
type Gate struct {
	pattern *Pattern
}

// NewGate matches any of words, case-insensitively, as whole words.
func NewGate(logger commons.Logger, name string, words []string) *Gate {
	expr := `(?<![\p{L}\p{N}])` + Alternation(words) + `(?![\p{L}\p{N}])`
	return &Gate{pattern: MustCompile(logger, name, expr, regexp2.IgnoreCase)}
}

// Open reports whether text contains one of the gate words.
func (g *Gate) Open(text string) bool {
	return g.pattern.MatchString(text)
}
