// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_vietnamese

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	internal_type "github.com/rapidaai/vnnorm/api/normalizer-api/internal/type"
	"github.com/rapidaai/vnnorm/pkg/commons"
)

// =============================================================================
// Cached Normalizer
// =============================================================================

type cachedNormalizer struct {
	logger commons.Logger
	next   internal_type.TextNormalizer
	cache  *lru.Cache[string, string]
}

// NewCachedNormalizer memoizes the most recent size inputs. The pipeline is
// deterministic, so a hit is exactly what a fresh run would return.
func NewCachedNormalizer(logger commons.Logger, next internal_type.TextNormalizer, size int) (internal_type.TextNormalizer, error) {
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, fmt.Errorf("normalizer: cache of size %d: %w", size, err)
	}
	return &cachedNormalizer{logger: logger, next: next, cache: cache}, nil
}

func (c *cachedNormalizer) Normalize(ctx context.Context, text string) string {
	if out, ok := c.cache.Get(text); ok {
		c.logger.Tracef(ctx, "normalizer: cache hit")
		return out
	}
	out := c.next.Normalize(ctx, text)
	c.cache.Add(text, out)
	return out
}
