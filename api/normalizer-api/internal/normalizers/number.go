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
	// words after which "a-b" is a range of quantities
	rangeKeywords = `(?:hơn|kém|gấp|tăng tốc|tăng|tầm|giảm|liệu trình|nhất|tới|có|sau|mức|tuổi|từ|được|khoảng|trong|vòng|dao động|cấp|tốc độ)`

	// counted things that follow a range of quantities
	rangeUnits = `(?:lần|cái|khách|túi|ki lô gam|kg|hôm|ngày|muỗng|thìa|phút|gói|tháng|năm|tiếng|mét|ca|tuổi|phần trăm|giờ|giây` +
		`|xen ti mét|mi li mét|độ|lít|tấn|thùng|con|triệu|gam|hàng|m|ki lô mét|h|phòng)`
)

// =============================================================================
// Number Range Normalizer
// =============================================================================

type numberRangeNormalizer struct {
	logger   commons.Logger
	keyword  *internal_rewrite.Pattern
	counting *internal_rewrite.Pattern
}

// NewNumberRangeNormalizer reads "a-b" as "a đến b" when a range keyword
// precedes it in the same sentence ("khoảng 5-7") or a counted unit follows
// it ("3-5 ngày").
func NewNumberRangeNormalizer(logger commons.Logger) Normalizer {
	keyword := `(?=[0-9])(?<=(?<![\p{L}\p{N}])(?i:` + rangeKeywords + `)(?![\p{L}\p{N}])` + clauseGap + `\s)` +
		`(?<![\p{L}\p{N}.,/\-])(?<a>` + numberPart + `)\s*-\s*(?<b>` + numberPart + `)(?=[\s.,);]|$)`
	counting := `(?<![\p{L}\p{N}.,/\-])(?<a>[0-9]+(?:,[0-9]+)?)\s*-\s*(?<b>[0-9]+(?:,[0-9]+)?)` +
		`(?=\s*` + rangeUnits + `(?![\p{L}\p{N}]))`
	return &numberRangeNormalizer{
		logger:   logger,
		keyword:  internal_rewrite.MustCompile(logger, "number_range_keyword", keyword, regexp2.None),
		counting: internal_rewrite.MustCompile(logger, "number_range_unit", counting, regexp2.None),
	}
}

func (n *numberRangeNormalizer) Normalize(text string) string {
	convert := func(m *regexp2.Match) (string, bool) {
		return internal_rewrite.Pad(rangeWords(named(m, "a")) + " đến " + rangeWords(named(m, "b"))), true
	}
	text = n.keyword.Replace(text, convert)
	return n.counting.Replace(text, convert)
}

// =============================================================================
// Negative Number Normalizer
// =============================================================================

type negativeNormalizer struct {
	logger  commons.Logger
	pattern *internal_rewrite.Pattern
}

// NewNegativeNormalizer reads a free-standing "-5" or "-2,5" with "âm".
func NewNegativeNormalizer(logger commons.Logger) Normalizer {
	expr := `(?<=^|\s)-(?<n>` + numberPart + `)(?=\s|$|[.,;!?](?:\s|$))`
	return &negativeNormalizer{
		logger:  logger,
		pattern: internal_rewrite.MustCompile(logger, "negative", expr, regexp2.None),
	}
}

func (n *negativeNormalizer) Normalize(text string) string {
	return n.pattern.Replace(text, func(m *regexp2.Match) (string, bool) {
		return internal_rewrite.Pad(internal_numeral.Negative(numberWords(named(m, "n")))), true
	})
}

// =============================================================================
// Dash Range Normalizer
// =============================================================================

type dashRangeNormalizer struct {
	logger  commons.Logger
	pattern *internal_rewrite.Pattern
}

// NewDashRangeNormalizer reads any dash left between two digits as "đến".
func NewDashRangeNormalizer(logger commons.Logger) Normalizer {
	return &dashRangeNormalizer{
		logger:  logger,
		pattern: internal_rewrite.MustCompile(logger, "dash_range", `(?<=[0-9])\s?[-–—]\s?(?=[0-9])`, regexp2.None),
	}
}

func (n *dashRangeNormalizer) Normalize(text string) string {
	return n.pattern.Replace(text, func(m *regexp2.Match) (string, bool) {
		return internal_rewrite.Pad("đến"), true
	})
}

// =============================================================================
// Number Normalizer
// =============================================================================

type numberNormalizer struct {
	logger  commons.Logger
	pattern *internal_rewrite.Pattern
}

// NewNumberNormalizer reads every numeral still left in the text: grouped
// thousands ("2.300", "1,000,000"), decimals ("16,2", "1.234,5"), version
// numbers ("1.2.3") and plain digits.
func NewNumberNormalizer(logger commons.Logger) Normalizer {
	return &numberNormalizer{
		logger:  logger,
		pattern: internal_rewrite.MustCompile(logger, "number", `(?<!\p{N})`+numberPart+`(?!\p{N})`, regexp2.None),
	}
}

func (n *numberNormalizer) Normalize(text string) string {
	return n.pattern.Replace(text, func(m *regexp2.Match) (string, bool) {
		return internal_rewrite.Pad(numberWords(m.String())), true
	})
}
