// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_normalizers

import (
	"github.com/dlclark/regexp2"
	internal_lexicon "github.com/rapidaai/vnnorm/api/normalizer-api/internal/lexicon"
	internal_numeral "github.com/rapidaai/vnnorm/api/normalizer-api/internal/numeral"
	internal_rewrite "github.com/rapidaai/vnnorm/api/normalizer-api/internal/rewrite"
	"github.com/rapidaai/vnnorm/pkg/commons"
)

// =============================================================================
// ID Digits Normalizer
// =============================================================================

const idKeywords = `(?:chứng minh nhân dân|chứng minh thư|mã thẻ|số thẻ|số tài khoản|căn cước công dân|căn cước|mã số thuế|biển số|mã số|nhân viên|mã)`

type idDigitsNormalizer struct {
	logger  commons.Logger
	pattern *internal_rewrite.Pattern
}

// NewIDDigitsNormalizer reads identity card, account and tax numbers digit
// by digit when one of their labels precedes them closely.
func NewIDDigitsNormalizer(logger commons.Logger) Normalizer {
	expr := `(?<=(?<![\p{L}\p{N}])(?i:` + idKeywords + `)\s+[^!?]{0,20}?)` +
		`(?<![\p{N}.,])[0-9]{2,20}(?![\p{L}\p{N}]|[.,][0-9])`
	return &idDigitsNormalizer{
		logger:  logger,
		pattern: internal_rewrite.MustCompile(logger, "id_digits", expr, regexp2.None),
	}
}

func (n *idDigitsNormalizer) Normalize(text string) string {
	return n.pattern.Replace(text, func(m *regexp2.Match) (string, bool) {
		return internal_rewrite.Pad(internal_numeral.Digits(m.String())), true
	})
}

// =============================================================================
// Youth Team Normalizer
// =============================================================================

type youthTeamNormalizer struct {
	logger  commons.Logger
	pattern *internal_rewrite.Pattern
}

// NewYouthTeamNormalizer reads age-group teams: "U23" and "U-19" become
// "U hai mươi ba" and "U mười chín".
func NewYouthTeamNormalizer(logger commons.Logger) Normalizer {
	return &youthTeamNormalizer{
		logger:  logger,
		pattern: internal_rewrite.MustCompile(logger, "youth_team", wordStart+`U[\-.]?(?<n>[0-9]{2})`+wordEnd, regexp2.None),
	}
}

func (n *youthTeamNormalizer) Normalize(text string) string {
	return n.pattern.Replace(text, func(m *regexp2.Match) (string, bool) {
		return internal_rewrite.Pad("U " + internal_numeral.Cardinal(named(m, "n"))), true
	})
}

// =============================================================================
// Alphanumeric Code Normalizer
// =============================================================================

type alphanumericNormalizer struct {
	logger  commons.Logger
	lex     *internal_lexicon.Lexicon
	pattern *internal_rewrite.Pattern
}

// NewAlphanumericNormalizer spells tokens that mix Latin letters and digits,
// such as "A10", "C50" or "4G", one symbol at a time.
func NewAlphanumericNormalizer(logger commons.Logger, lex *internal_lexicon.Lexicon) Normalizer {
	expr := wordStart + `(?=[A-Za-z]*[0-9])(?=[0-9]*[A-Za-z])[A-Za-z0-9]{2,40}` + wordEnd
	return &alphanumericNormalizer{
		logger:  logger,
		lex:     lex,
		pattern: internal_rewrite.MustCompile(logger, "alphanumeric", expr, regexp2.None),
	}
}

func (n *alphanumericNormalizer) Normalize(text string) string {
	return n.pattern.Replace(text, func(m *regexp2.Match) (string, bool) {
		return internal_rewrite.Pad(spell(n.lex, m.String())), true
	})
}
