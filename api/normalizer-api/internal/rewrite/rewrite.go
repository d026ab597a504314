// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_rewrite

import (
	"sort"
	"strings"

	"github.com/dlclark/regexp2"
)

// =============================================================================
// Spans
// =============================================================================

// Span replaces the runes [Start, End) of a text with Text. Offsets are rune
// offsets so they line up with regexp2 match positions.
type Span struct {
	Start int
	End   int
	Text  string
}

// Pad surrounds a verbalized entity with spaces so it never fuses with its
// neighbours.
func Pad(s string) string {
	return " " + s + " "
}

// Apply substitutes every span against the original text. When spans overlap
// the one starting first wins, and among equal starts the longer one.
func Apply(text string, spans []Span) string {
	if len(spans) == 0 {
		return text
	}
	runes := []rune(text)
	ordered := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Start < 0 || s.End > len(runes) || s.Start > s.End {
			continue
		}
		ordered = append(ordered, s)
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Start != ordered[j].Start {
			return ordered[i].Start < ordered[j].Start
		}
		return ordered[i].End > ordered[j].End
	})

	kept := ordered[:0]
	end := -1
	for _, s := range ordered {
		if s.Start < end {
			continue
		}
		kept = append(kept, s)
		end = s.End
	}

	// right to left, so earlier offsets stay valid
	out := runes
	for i := len(kept) - 1; i >= 0; i-- {
		s := kept[i]
		tail := append([]rune(s.Text), out[s.End:]...)
		out = append(out[:s.Start:s.Start], tail...)
	}
	return string(out)
}

// Alternation joins literal keys into a regexp2 alternation, longest first so
// that "km/h" is tried before "km".
func Alternation(keys []string) string {
	sorted := make([]string, len(keys))
	copy(sorted, keys)
	sort.SliceStable(sorted, func(i, j int) bool {
		li, lj := len([]rune(sorted[i])), len([]rune(sorted[j]))
		if li != lj {
			return li > lj
		}
		return sorted[i] < sorted[j]
	})
	quoted := make([]string, len(sorted))
	for i, k := range sorted {
		quoted[i] = regexp2.Escape(k)
	}
	return "(?:" + strings.Join(quoted, "|") + ")"
}
