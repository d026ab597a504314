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

// =============================================================================
// Phone Number Normalizer
// =============================================================================

const (
	phonePrefix = `(?i:hotline|tổng đài|điện thoại|sdt|sđt|zalo|đường dây nóng|liên hệ|gọi|call|chi tiết|hỗ trợ|tư vấn|liên lạc|công ty|bán hàng|đặt hàng)`

	// mobile, landline and grouped spellings
	phoneNumber = `(?:\+?[0-9]{8,12}` +
		`|[0-9]{3,5}\s[0-9]{3,4}\s[0-9]{3,4}` +
		`|[0-9]{4}\.[0-9]{3}\.[0-9]{3}` +
		`|[0-9]{3}\.[0-9]{3}\.[0-9]{4}` +
		`|[0-9]{3}\.[0-9]{4}\.[0-9]{3}` +
		`|[0-9]{4}\s[0-9]{2}\s[0-9]{2}\s[0-9]{2})`
)

type phoneNormalizer struct {
	logger  commons.Logger
	pattern *internal_rewrite.Pattern
}

// NewPhoneNormalizer reads phone numbers digit by digit. A number is only
// taken right after a contact word ("hotline", "gọi", "liên hệ", ...) so
// that years and distances are left alone.
func NewPhoneNormalizer(logger commons.Logger) Normalizer {
	expr := `(?<=(?<![\p{L}\p{N}])` + phonePrefix + `[\s:.]+)` + phoneNumber + `(?![0-9])`
	return &phoneNormalizer{
		logger:  logger,
		pattern: internal_rewrite.MustCompile(logger, "phone", expr, regexp2.None),
	}
}

func (n *phoneNormalizer) Normalize(text string) string {
	return n.pattern.Replace(text, func(m *regexp2.Match) (string, bool) {
		return internal_rewrite.Pad(internal_numeral.Digits(m.String())), true
	})
}
