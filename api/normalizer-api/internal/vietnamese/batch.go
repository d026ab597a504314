// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_vietnamese

import (
	"context"
	"time"

	internal_type "github.com/rapidaai/vnnorm/api/normalizer-api/internal/type"
	"github.com/rapidaai/vnnorm/pkg/commons"
	"golang.org/x/sync/errgroup"
)

// NormalizeBatch normalizes texts on at most limit goroutines and returns the
// outputs in input order. It stops scheduling new texts once ctx is done and
// reports ctx's error.
func NormalizeBatch(ctx context.Context, logger commons.Logger, n internal_type.TextNormalizer, texts []string, limit int) ([]string, error) {
	start := time.Now()
	defer func() {
		logger.Benchmark("NormalizeBatch", time.Since(start))
	}()

	if limit < 1 {
		limit = 1
	}
	out := make([]string, len(texts))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, text := range texts {
		if gCtx.Err() != nil {
			break
		}
		i, text := i, text
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			out[i] = n.Normalize(gCtx, text)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger.Debugf("normalizer: batch of %d texts done", len(texts))
	return out, nil
}
