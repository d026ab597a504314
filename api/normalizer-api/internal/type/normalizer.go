// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_type

import (
	"context"
	"strings"

	internal_lexicon "github.com/rapidaai/vnnorm/api/normalizer-api/internal/lexicon"
	internal_normalizers "github.com/rapidaai/vnnorm/api/normalizer-api/internal/normalizers"
	"github.com/rapidaai/vnnorm/pkg/commons"
)

// =============================================================================
// Text Normalizer Interface
// =============================================================================

// TextNormalizer turns written Vietnamese into text a speech synthesizer can
// read aloud. Implementations are total: any input yields an output.
type TextNormalizer interface {
	// Normalize verbalizes numbers, dates, units, abbreviations and symbols.
	Normalize(ctx context.Context, text string) string
}

// =============================================================================
// Stages
// =============================================================================

// Stage names one pipeline step.
type Stage string

const (
	StageLexicalCleanup     Stage = "lexical_cleanup"
	StageAbbreviation       Stage = "abbreviation"
	StageStrip              Stage = "strip"
	StagePlate              Stage = "plate"
	StageRatio              Stage = "ratio"
	StageUnit               Stage = "unit"
	StageRate               Stage = "rate"
	StageAddress            Stage = "address"
	StageFraction           Stage = "fraction"
	StagePhone              Stage = "phone"
	StageMultiplication     Stage = "multiplication"
	StageSportScore         Stage = "sport_score"
	StageDateRange          Stage = "date_range"
	StageDate               Stage = "date"
	StageTimeRange          Stage = "time_range"
	StageTime               Stage = "time"
	StageNumberRange        Stage = "number_range"
	StageIDDigits           Stage = "id_digits"
	StageYouthTeam          Stage = "youth_team"
	StageRoman              Stage = "roman"
	StageAlphanumeric       Stage = "alphanumeric"
	StageMathSymbol         Stage = "math_symbol"
	StageVerbatim           Stage = "verbatim"
	StageNegative           Stage = "negative"
	StageDashRange          Stage = "dash_range"
	StageNumber             Stage = "number"
	StageSpecialChar        Stage = "special_char"
	StageWhitespace         Stage = "whitespace"
	StagePunctuationSpacing Stage = "punctuation_spacing"
	StageDuplicate          Stage = "duplicate"
	StagePostProcess        Stage = "post_process"
	StageForeign            Stage = "foreign"
	StageSentenceCase       Stage = "sentence_case"
)

// DefaultStages is the fixed stage order. Every entity class is consumed
// before the generic number stage; roman numerals and numbers run a second
// time once stripping has exposed them.
func DefaultStages() []Stage {
	return []Stage{
		StageLexicalCleanup,
		StageAbbreviation,
		StageStrip,
		StagePlate,
		StageRatio,
		StageUnit,
		StageRate,
		StageAddress,
		StageFraction,
		StagePhone,
		StageMultiplication,
		StageSportScore,
		StageDateRange,
		StageDate,
		StageTimeRange,
		StageTime,
		StageNumberRange,
		StageIDDigits,
		StageYouthTeam,
		StageRoman,
		StageAlphanumeric,
		StageMathSymbol,
		StageVerbatim,
		StageNegative,
		StageDashRange,
		StageNumber,
		StageSpecialChar,
		StageRoman,
		StageWhitespace,
		StageNumber,
		StagePunctuationSpacing,
		StageDuplicate,
		StagePostProcess,
		StageForeign,
		StageSentenceCase,
	}
}

// StageNames renders stages as plain strings for BuildNormalizerPipeline.
func StageNames(stages []Stage) []string {
	names := make([]string, 0, len(stages))
	for _, s := range stages {
		names = append(names, string(s))
	}
	return names
}

// BuildNormalizerPipeline instantiates the named stages in order. Unknown
// names are logged and skipped.
func BuildNormalizerPipeline(logger commons.Logger, lex *internal_lexicon.Lexicon, names []string) []internal_normalizers.Normalizer {
	normalizers := make([]internal_normalizers.Normalizer, 0, len(names))

	for _, name := range names {
		name = strings.TrimSpace(strings.ToLower(name))
		var normalizer internal_normalizers.Normalizer

		switch Stage(name) {
		case StageLexicalCleanup:
			normalizer = internal_normalizers.NewLexicalCleanupNormalizer(logger)
		case StageAbbreviation:
			normalizer = internal_normalizers.NewAbbreviationNormalizer(logger, lex)
		case StageStrip:
			normalizer = internal_normalizers.NewStripNormalizer(logger)
		case StagePlate:
			normalizer = internal_normalizers.NewPlateNormalizer(logger, lex)
		case StageRatio:
			normalizer = internal_normalizers.NewRatioNormalizer(logger)
		case StageUnit:
			normalizer = internal_normalizers.NewUnitNormalizer(logger, lex)
		case StageRate:
			normalizer = internal_normalizers.NewRateNormalizer(logger)
		case StageAddress:
			normalizer = internal_normalizers.NewAddressNormalizer(logger)
		case StageFraction:
			normalizer = internal_normalizers.NewFractionNormalizer(logger)
		case StagePhone:
			normalizer = internal_normalizers.NewPhoneNormalizer(logger)
		case StageMultiplication:
			normalizer = internal_normalizers.NewMultiplicationNormalizer(logger)
		case StageSportScore:
			normalizer = internal_normalizers.NewSportScoreNormalizer(logger)
		case StageDateRange:
			normalizer = internal_normalizers.NewDateRangeNormalizer(logger)
		case StageDate:
			normalizer = internal_normalizers.NewDateNormalizer(logger)
		case StageTimeRange:
			normalizer = internal_normalizers.NewTimeRangeNormalizer(logger)
		case StageTime:
			normalizer = internal_normalizers.NewTimeNormalizer(logger)
		case StageNumberRange:
			normalizer = internal_normalizers.NewNumberRangeNormalizer(logger)
		case StageIDDigits:
			normalizer = internal_normalizers.NewIDDigitsNormalizer(logger)
		case StageYouthTeam:
			normalizer = internal_normalizers.NewYouthTeamNormalizer(logger)
		case StageRoman:
			normalizer = internal_normalizers.NewRomanNormalizer(logger)
		case StageAlphanumeric:
			normalizer = internal_normalizers.NewAlphanumericNormalizer(logger, lex)
		case StageMathSymbol:
			normalizer = internal_normalizers.NewMathSymbolNormalizer(logger, lex)
		case StageVerbatim:
			normalizer = internal_normalizers.NewVerbatimNormalizer(logger, lex)
		case StageNegative:
			normalizer = internal_normalizers.NewNegativeNormalizer(logger)
		case StageDashRange:
			normalizer = internal_normalizers.NewDashRangeNormalizer(logger)
		case StageNumber:
			normalizer = internal_normalizers.NewNumberNormalizer(logger)
		case StageSpecialChar:
			normalizer = internal_normalizers.NewSpecialCharNormalizer(logger)
		case StageWhitespace:
			normalizer = internal_normalizers.NewWhitespaceNormalizer(logger)
		case StagePunctuationSpacing:
			normalizer = internal_normalizers.NewPunctuationSpacingNormalizer(logger)
		case StageDuplicate:
			normalizer = internal_normalizers.NewDuplicateNormalizer(logger)
		case StagePostProcess:
			normalizer = internal_normalizers.NewPostProcessNormalizer(logger)
		case StageForeign:
			normalizer = internal_normalizers.NewForeignNormalizer(logger, lex)
		case StageSentenceCase:
			normalizer = internal_normalizers.NewSentenceCaseNormalizer(logger)
		default:
			logger.Warnf("normalizer: unknown normalizer '%s', skipping", name)
			continue
		}
		normalizers = append(normalizers, normalizer)
	}
	return normalizers
}
