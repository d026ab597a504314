// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_normalizers

import (
	"strconv"

	"github.com/dlclark/regexp2"
	internal_numeral "github.com/rapidaai/vnnorm/api/normalizer-api/internal/numeral"
	internal_rewrite "github.com/rapidaai/vnnorm/api/normalizer-api/internal/rewrite"
	"github.com/rapidaai/vnnorm/pkg/commons"
)

const (
	timeStart = `(?<![\p{L}\p{N}.,:/])`
	timeEnd   = `(?![\p{L}\p{N}]|[:.,][0-9])`
)

// timeAtom matches H:MM:SS, H:MM, HhMM, HhMMp, HhMMpSS and Hh. Group names
// carry the suffix so two atoms can share one expression.
func timeAtom(i string) string {
	return `(?<h` + i + `>[0-9]{1,2})(?:[:h](?<mi` + i + `>[0-5]?[0-9])` +
		`(?:[:p](?<se` + i + `>[0-5]?[0-9])s?|(?<p` + i + `>p))?|h)`
}

// clock is one parsed time of day.
type clock struct {
	hour, minute, second string
	spokenMinute         bool
}

func clockFrom(m *regexp2.Match, i string) (clock, bool) {
	c := clock{
		hour:         named(m, "h"+i),
		minute:       named(m, "mi"+i),
		second:       named(m, "se"+i),
		spokenMinute: named(m, "p"+i) != "",
	}
	h, err := strconv.Atoi(c.hour)
	if err != nil {
		return c, false
	}
	if h >= 24 && c.minute != "" {
		if mi, _ := strconv.Atoi(c.minute); mi > 0 {
			return c, false
		}
	}
	return c, true
}

// words reads the clock: "chín giờ ba mươi", "chín giờ ba mươi phút
// mười lăm giây". Zero minutes are dropped unless seconds follow.
func (c clock) words() string {
	out := internal_numeral.Cardinal(c.hour) + " giờ"
	if c.minute == "" {
		return out
	}
	mi, _ := strconv.Atoi(c.minute)
	if mi > 0 || c.second != "" {
		out += " " + internal_numeral.Cardinal(c.minute)
		if c.second != "" || c.spokenMinute {
			out += " phút"
		}
	}
	if c.second != "" {
		out += " " + internal_numeral.Cardinal(c.second) + " giây"
	}
	return out
}

// plain reads the clock's numbers without "giờ", for a side of a range that
// is not a valid time of day.
func (c clock) plain() string {
	out := internal_numeral.Cardinal(c.hour)
	for _, part := range []string{c.minute, c.second} {
		if part != "" {
			out += " " + internal_numeral.Cardinal(part)
		}
	}
	return out
}

// =============================================================================
// Time Range Normalizer
// =============================================================================

type timeRangeNormalizer struct {
	logger commons.Logger
	clocks *internal_rewrite.Pattern
	hours  *internal_rewrite.Pattern
}

// NewTimeRangeNormalizer reads "8h30-10h" and "9-10h" as two times joined
// by "đến". A side that is not a time of day ("25h30") is read as plain
// numbers so the range is never half converted.
func NewTimeRangeNormalizer(logger commons.Logger) Normalizer {
	clocks := timeStart + timeAtom("1") + `\s*-\s*` + timeAtom("2") + timeEnd
	hours := timeStart + `(?<a>[0-9]{1,2})\s*(?<ah>h)?\s*-\s*(?<b>[0-9]{1,2})\s*h` + wordEnd
	return &timeRangeNormalizer{
		logger: logger,
		clocks: internal_rewrite.MustCompile(logger, "time_range", clocks, regexp2.None),
		hours:  internal_rewrite.MustCompile(logger, "time_range_hours", hours, regexp2.None),
	}
}

func (n *timeRangeNormalizer) Normalize(text string) string {
	text = n.clocks.Replace(text, func(m *regexp2.Match) (string, bool) {
		return internal_rewrite.Pad(rangeSide(m, "1") + " đến " + rangeSide(m, "2")), true
	})
	return n.hours.Replace(text, func(m *regexp2.Match) (string, bool) {
		from := internal_numeral.Cardinal(named(m, "a"))
		if named(m, "ah") != "" {
			from += " giờ"
		}
		return internal_rewrite.Pad(from + " đến " + internal_numeral.Cardinal(named(m, "b")) + " giờ"), true
	})
}

func rangeSide(m *regexp2.Match, i string) string {
	c, ok := clockFrom(m, i)
	if !ok {
		return c.plain()
	}
	return c.words()
}

// =============================================================================
// Time Normalizer
// =============================================================================

type timeNormalizer struct {
	logger  commons.Logger
	pattern *internal_rewrite.Pattern
}

// NewTimeNormalizer reads a single time of day: "9h30" becomes "chín giờ ba
// mươi". Hours of 24 or more with non-zero minutes are not times and are
// left alone.
func NewTimeNormalizer(logger commons.Logger) Normalizer {
	return &timeNormalizer{
		logger:  logger,
		pattern: internal_rewrite.MustCompile(logger, "time", timeStart+timeAtom("")+timeEnd, regexp2.None),
	}
}

func (n *timeNormalizer) Normalize(text string) string {
	return n.pattern.Replace(text, func(m *regexp2.Match) (string, bool) {
		c, ok := clockFrom(m, "")
		if !ok {
			return "", false
		}
		return internal_rewrite.Pad(c.words()), true
	})
}
