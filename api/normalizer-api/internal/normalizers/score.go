// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_normalizers

import (
	"strings"

	"github.com/dlclark/regexp2"
	internal_numeral "github.com/rapidaai/vnnorm/api/normalizer-api/internal/numeral"
	internal_rewrite "github.com/rapidaai/vnnorm/api/normalizer-api/internal/rewrite"
	"github.com/rapidaai/vnnorm/pkg/commons"
)

// =============================================================================
// Multiplication Normalizer
// =============================================================================

type multiplicationNormalizer struct {
	logger  commons.Logger
	pattern *internal_rewrite.Pattern
}

// NewMultiplicationNormalizer reads dimensions and products such as
// "1920x1080" or "2 x 3 x 4", joining the factors with "nhân".
func NewMultiplicationNormalizer(logger commons.Logger) Normalizer {
	expr := `(?<![\p{L}\p{N}.,])` + numberPart + `(?:\s*[x×]\s*` + numberPart + `){1,2}` + wordEnd
	return &multiplicationNormalizer{
		logger:  logger,
		pattern: internal_rewrite.MustCompile(logger, "multiplication", expr, regexp2.None),
	}
}

func (n *multiplicationNormalizer) Normalize(text string) string {
	return n.pattern.Replace(text, func(m *regexp2.Match) (string, bool) {
		factors := strings.FieldsFunc(m.String(), func(r rune) bool {
			return r == 'x' || r == '×'
		})
		words := make([]string, 0, len(factors))
		for _, f := range factors {
			words = append(words, numberWords(strings.TrimSpace(f)))
		}
		return internal_rewrite.Pad(strings.Join(words, " nhân ")), true
	})
}

// =============================================================================
// Sport Score Normalizer
// =============================================================================

// sportWords open the score gate when any of them occurs in the text.
var sportWords = []string{
	"tỷ số", "tỉ số", "chiến thắng", "trận đấu", "bàn thắng", "trên sân",
	"đội bóng", "thi đấu", "cầu thủ", "vô địch", "mùa giải", "đánh bại",
	"đối thủ", "bóng đá", "gỡ hòa", "chung kết", "bán kết", "ghi bàn",
	"chủ nhà", "tiền đạo", "dứt điểm", "tiền vệ", "thua", "bị dẫn",
}

type sportScoreNormalizer struct {
	logger  commons.Logger
	gate    *internal_rewrite.Gate
	pattern *internal_rewrite.Pattern
}

// NewSportScoreNormalizer reads "2-1" or "3:0" as two plain numbers, but
// only in texts about a match. Elsewhere the same shape stays a range.
func NewSportScoreNormalizer(logger commons.Logger) Normalizer {
	expr := `(?<![\p{L}\p{N}.,:/\-])(?<a>[0-9]{1,2})(?:\s*-\s*|:)(?<b>[0-9]{1,2})` +
		`(?![\p{L}\p{N}]|[.,:/\-][0-9])`
	return &sportScoreNormalizer{
		logger:  logger,
		gate:    internal_rewrite.NewGate(logger, "sport_gate", sportWords),
		pattern: internal_rewrite.MustCompile(logger, "sport_score", expr, regexp2.None),
	}
}

func (n *sportScoreNormalizer) Normalize(text string) string {
	if !n.gate.Open(text) {
		return text
	}
	return n.pattern.Replace(text, func(m *regexp2.Match) (string, bool) {
		a := internal_numeral.Cardinal(internal_rewrite.Named(m, "a"))
		b := internal_numeral.Cardinal(internal_rewrite.Named(m, "b"))
		return internal_rewrite.Pad(a + " " + b), true
	})
}
