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
	// a date component never continues a numeral or a word
	dateStart = `(?<![\p{L}\p{N}.,/:\-])`
	dateEnd   = `(?![\p{L}\p{N}]|[.,/\-][0-9])`

	// the delimiters a day/month may be followed by
	dmEnd = `(?=[\s.,);:]|$)`

	// words after which a bare day/month is a date
	dateKeywords = `(?:sau\s*,|mai\s*,|qua\s*,|nay\s*,|sớm|đến hết|đợt|phiên|ngày|dịp|sáng qua|trưa qua|chiều qua|tối qua|đêm qua|hôm qua|hôm sau` +
		`|sáng|trưa|chiều|tối|đêm|mùng|hôm|nay|mai|vào|kéo dài tới|dự kiến tới|đến|tới|từ)`

	// times of day and occasions that introduce a date
	occasionKeywords = `(?:sáng|trưa|chiều|tối|lễ|tết|hôm|đợt)`

	// clauseGap is the stretch of one sentence allowed between a keyword and
	// the entity it introduces. Patterns using it open with (?=[0-9]) so the
	// lookbehind only runs where a numeral starts.
	clauseGap = `[^.!?]{0,80}?`
)

// dateForm is one surface family with its conversion.
type dateForm struct {
	pattern *internal_rewrite.Pattern
	convert internal_rewrite.Converter
}

func applyForms(text string, forms []dateForm) string {
	for _, f := range forms {
		text = f.pattern.Replace(text, f.convert)
	}
	return text
}

func named(m *regexp2.Match, name string) string {
	return internal_rewrite.Named(m, name)
}

// =============================================================================
// Date Range Normalizer
// =============================================================================

type dateRangeNormalizer struct {
	logger commons.Logger
	forms  []dateForm
}

// NewDateRangeNormalizer reads the six range shapes, each side on its own,
// joined by "đến":
//
//	2016-2017              year to year
//	1/1/2020-5/1/2020      full date to full date
//	15-18/6/2019           day to full date
//	20/1-18/2/2019         day/month to full date
//	20/1-18/2              day/month to day/month
//	15-18/6                day to day/month
func NewDateRangeNormalizer(logger commons.Logger) Normalizer {
	dash := `\s*-\s*`
	dmy := func(i string) string {
		return `(?<d` + i + `>` + dayPart + `)[/.](?<m` + i + `>` + monthPart + `)[/.](?<y` + i + `>` + yearPart + `)`
	}
	dm := func(i string) string {
		return `(?<d` + i + `>` + dayPart + `)/(?<m` + i + `>` + monthPart + `)`
	}
	compile := func(name, expr string) *internal_rewrite.Pattern {
		return internal_rewrite.MustCompile(logger, name, dateStart+expr+dateEnd, regexp2.None)
	}
	return &dateRangeNormalizer{
		logger: logger,
		forms: []dateForm{
			{
				pattern: compile("date_range_year", `(?<y1>`+yearPart+`)`+dash+`(?<y2>`+yearPart+`)`),
				convert: func(m *regexp2.Match) (string, bool) {
					return internal_rewrite.Pad("năm " + internal_numeral.Cardinal(named(m, "y1")) +
						" đến năm " + internal_numeral.Cardinal(named(m, "y2"))), true
				},
			},
			{
				pattern: compile("date_range_dmy_dmy", dmy("1")+dash+dmy("2")),
				convert: func(m *regexp2.Match) (string, bool) {
					return internal_rewrite.Pad(dmyWords(named(m, "d1"), named(m, "m1"), named(m, "y1")) +
						" đến " + dmyWords(named(m, "d2"), named(m, "m2"), named(m, "y2"))), true
				},
			},
			{
				pattern: compile("date_range_d_dmy", `(?<d1>`+dayPart+`)`+dash+dmy("2")),
				convert: func(m *regexp2.Match) (string, bool) {
					return internal_rewrite.Pad("ngày " + internal_numeral.Cardinal(named(m, "d1")) +
						" đến " + dmyWords(named(m, "d2"), named(m, "m2"), named(m, "y2"))), true
				},
			},
			{
				pattern: compile("date_range_dm_dmy", `(?<d1>`+dayPart+`)[/.](?<m1>`+monthPart+`)`+dash+dmy("2")),
				convert: func(m *regexp2.Match) (string, bool) {
					return internal_rewrite.Pad(dmWords(named(m, "d1"), named(m, "m1")) +
						" đến " + dmyWords(named(m, "d2"), named(m, "m2"), named(m, "y2"))), true
				},
			},
			{
				pattern: compile("date_range_dm_dm", dm("1")+dash+dm("2")),
				convert: func(m *regexp2.Match) (string, bool) {
					return internal_rewrite.Pad(dmWords(named(m, "d1"), named(m, "m1")) +
						" đến " + dmWords(named(m, "d2"), named(m, "m2"))), true
				},
			},
			{
				pattern: compile("date_range_d_dm", `(?<d1>`+dayPart+`)`+dash+dm("2")),
				convert: func(m *regexp2.Match) (string, bool) {
					return internal_rewrite.Pad("ngày " + internal_numeral.Cardinal(named(m, "d1")) +
						" đến " + dmWords(named(m, "d2"), named(m, "m2"))), true
				},
			},
		},
	}
}

func (n *dateRangeNormalizer) Normalize(text string) string {
	return applyForms(text, n.forms)
}

// =============================================================================
// Date Normalizer
// =============================================================================

type dateNormalizer struct {
	logger commons.Logger
	forms  []dateForm
}

// NewDateNormalizer reads single dates. The forms run from the most to the
// least qualified so that a loose day/month never eats part of a full date.
func NewDateNormalizer(logger commons.Logger) Normalizer {
	compile := func(name, expr string) *internal_rewrite.Pattern {
		return internal_rewrite.MustCompile(logger, name, expr, regexp2.None)
	}
	toDMY := func(m *regexp2.Match) (string, bool) {
		if named(m, "s") == "." && len(named(m, "y")) == 2 {
			return "", false
		}
		return internal_rewrite.Pad(dmyWords(named(m, "d"), named(m, "m"), named(m, "y"))), true
	}
	toDM := func(m *regexp2.Match) (string, bool) {
		return internal_rewrite.Pad(dmWords(named(m, "d"), named(m, "m"))), true
	}
	toMY := func(m *regexp2.Match) (string, bool) {
		return internal_rewrite.Pad(myWords(named(m, "m"), named(m, "y"))), true
	}
	slashDM := `(?<d>` + dayPart + `)\s*/\s*(?<m>` + monthPart + `)`

	return &dateNormalizer{
		logger: logger,
		forms: []dateForm{
			// ngày 21/11/2023, ngày 21 - 11 - 2023
			{
				pattern: compile("date_after_ngay", `(?<=(?<![\p{L}\p{N}])(?i:ngày)\s+)`+
					`(?<d>`+dayPart+`)\s*(?<s>[/.\-])\s*(?<m>`+monthPart+`)\s*\k<s>\s*(?<y>`+yearPart+`)`+dateEnd),
				convert: toDMY,
			},
			// 21/11/2023, 21-11-23
			{
				pattern: compile("date_dmy", dateStart+
					`(?<d>`+dayPart+`)(?<s>[/.\-])(?<m>`+monthPart+`)\k<s>(?<y>[0-9]{4}|[0-9]{2})(?![0-9]|\.[0-9])`+wordEnd),
				convert: toDMY,
			},
			// từ 21/11, sáng 5/6, mùng 2/9
			{
				pattern: compile("date_keyword_dm", `(?<=(?<![\p{L}\p{N}])(?i:`+dateKeywords+`)\s*\(*\s*)`+
					`(?<d>`+dayPart+`)/(?<m>`+monthPart+`)`+dmEnd),
				convert: toDM,
			},
			// ngày 5-6, mùng 2-9
			{
				pattern: compile("date_keyword_dash_dm", `(?<=(?<![\p{L}\p{N}])(?i:ngày|mùng)\s*\(*\s*)`+
					`(?<d>`+dayPart+`)-(?<m>`+monthPart+`)`+dmEnd),
				convert: toDM,
			},
			// ngày 31/8 và 1/9: the second date after "ngày ... và"
			{
				pattern: compile("date_conjunct_after_ngay", `(?=[0-9])(?<=(?<![\p{L}\p{N}])(?i:ngày)\s[^.!?]`+clauseGap+`\svà\s+)`+
					`(?<d>`+dayPart+`)[/\-](?<m>`+monthPart+`)`+dmEnd),
				convert: toDM,
			},
			// 31/8 và 1/9, 20/1 đến 18/2
			{
				pattern: compile("date_conjunct", dateStart+
					`(?<d1>`+dayPart+`)\s*/\s*(?<m1>`+monthPart+`)\s+(?<conj>và|đến)\s+`+
					`(?<d2>`+dayPart+`)\s*/\s*(?<m2>`+monthPart+`)`+dmEnd),
				convert: func(m *regexp2.Match) (string, bool) {
					return internal_rewrite.Pad(dmWords(named(m, "d1"), named(m, "m1")) + " " + named(m, "conj") +
						" " + dmWords(named(m, "d2"), named(m, "m2"))), true
				},
			},
			// Ngày của cha (16/6)
			{
				pattern: compile("date_sentence_ngay", `(?=[0-9])(?<=(?<![\p{L}\p{N}])(?i:ngày)`+clauseGap+`[\s(])`+
					dateStart+slashDM+dmEnd),
				convert: toDM,
			},
			// tháng 11/2023; not after quý, đợt or a ratio
			{
				pattern: compile("date_my", `(?<!(?i:quý|đợt|tỷ lệ|tỉ lệ)\s*)`+dateStart+
					`(?<m>`+monthPart+`)[/.\-](?<y>`+yearPart+`)`+dateEnd),
				convert: toMY,
			},
			// tết 1/6, lễ (2/9)
			{
				pattern: compile("date_occasion_dm", `(?<=(?<![\p{L}\p{N}])(?i:`+occasionKeywords+`)\s*\(*\s*)`+
					dateStart+slashDM+dmEnd),
				convert: toDM,
			},
			// tối thứ bảy tuần này 5/6
			{
				pattern: compile("date_occasion_loose_dm", `(?=[0-9])(?<=(?<![\p{L}\p{N}])(?i:`+occasionKeywords+`)[^.!?]`+clauseGap+`\s)`+
					dateStart+slashDM+dateEnd),
				convert: toDM,
			},
		},
	}
}

func (n *dateNormalizer) Normalize(text string) string {
	return applyForms(text, n.forms)
}
