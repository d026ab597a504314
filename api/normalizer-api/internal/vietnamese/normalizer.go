// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_vietnamese

import (
	"context"
	"strings"
	"time"

	internal_lexicon "github.com/rapidaai/vnnorm/api/normalizer-api/internal/lexicon"
	internal_normalizers "github.com/rapidaai/vnnorm/api/normalizer-api/internal/normalizers"
	internal_type "github.com/rapidaai/vnnorm/api/normalizer-api/internal/type"
	"github.com/rapidaai/vnnorm/pkg/commons"
	"github.com/rapidaai/vnnorm/pkg/utils"
)

// =============================================================================
// Vietnamese Text Normalizer
// =============================================================================

// Options tunes the pipeline.
type Options struct {
	// DisabledStages removes every occurrence of the named stages.
	DisabledStages []string
}

type vietnameseNormalizer struct {
	logger      commons.Logger
	normalizers []internal_normalizers.Normalizer
}

// NewVietnameseNormalizer builds the fixed stage pipeline over a loaded
// lexicon. The result holds no mutable state and may be shared between
// goroutines.
func NewVietnameseNormalizer(logger commons.Logger, lex *internal_lexicon.Lexicon, opts Options) internal_type.TextNormalizer {
	stages := enabledStages(internal_type.DefaultStages(), opts.DisabledStages)
	logger.Debugf("normalizer: building pipeline with %d stages", len(stages))
	return &vietnameseNormalizer{
		logger:      logger,
		normalizers: internal_type.BuildNormalizerPipeline(logger, lex, internal_type.StageNames(stages)),
	}
}

// Normalize runs every stage in order over its own copy of the text.
func (n *vietnameseNormalizer) Normalize(ctx context.Context, text string) string {
	if utils.IsEmpty(text) {
		return ""
	}
	start := time.Now()
	for _, normalizer := range n.normalizers {
		text = normalizer.Normalize(text)
	}
	n.logger.Benchmark("VietnameseNormalizer.Normalize", time.Since(start))
	n.logger.Tracef(ctx, "normalizer: output %q", text)
	return text
}

func enabledStages(all []internal_type.Stage, disabled []string) []internal_type.Stage {
	if len(disabled) == 0 {
		return all
	}
	skip := make(map[internal_type.Stage]struct{}, len(disabled))
	for _, name := range disabled {
		skip[internal_type.Stage(strings.TrimSpace(strings.ToLower(name)))] = struct{}{}
	}
	out := make([]internal_type.Stage, 0, len(all))
	for _, stage := range all {
		if _, ok := skip[stage]; ok {
			continue
		}
		out = append(out, stage)
	}
	return out
}
