// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetApplicationConfig_Defaults(t *testing.T) {
	t.Setenv("ENV_PATH", filepath.Join(t.TempDir(), "missing.env"))

	v, err := InitConfig()
	require.NoError(t, err)

	cfg, err := GetApplicationConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "normalizer-api", cfg.Name)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 0, cfg.Normalizer.CacheSize)
	assert.Equal(t, 5, cfg.Normalizer.MaxConcurrent)
	assert.Empty(t, cfg.Normalizer.DisabledStages)
	assert.Empty(t, cfg.Lexicon.Directory)
}

func TestGetApplicationConfig_EnvOverrides(t *testing.T) {
	t.Setenv("ENV_PATH", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("NORMALIZER__CACHE_SIZE", "256")
	t.Setenv("NORMALIZER__MAX_CONCURRENT", "12")
	t.Setenv("NORMALIZER__DISABLED_STAGES", "sport_score, roman_keyword,")
	t.Setenv("LEXICON__DIRECTORY", "/etc/normalizer/lexicon")

	v, err := InitConfig()
	require.NoError(t, err)

	cfg, err := GetApplicationConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 256, cfg.Normalizer.CacheSize)
	assert.Equal(t, 12, cfg.Normalizer.MaxConcurrent)
	assert.Equal(t, []string{"sport_score", "roman_keyword"}, cfg.Normalizer.DisabledStages)
	assert.Equal(t, "/etc/normalizer/lexicon", cfg.Lexicon.Directory)
}

func TestGetApplicationConfig_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "unknown log level", key: "LOG_LEVEL", value: "verbose"},
		{name: "zero concurrency", key: "NORMALIZER__MAX_CONCURRENT", value: "0"},
		{name: "negative cache", key: "NORMALIZER__CACHE_SIZE", value: "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ENV_PATH", filepath.Join(t.TempDir(), "missing.env"))
			t.Setenv(tt.key, tt.value)

			v, err := InitConfig()
			require.NoError(t, err)

			_, err = GetApplicationConfig(v)
			assert.Error(t, err)
		})
	}
}
