// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package config

import (
	"log"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type LogConfig struct {
	// File enables a rotating JSON log file when set.
	File string `mapstructure:"file"`
}

type LexiconConfig struct {
	// Directory overrides the embedded tables; empty means embedded.
	Directory string `mapstructure:"directory"`
}

type NormalizerConfig struct {
	CacheSize      int      `mapstructure:"cache_size" validate:"gte=0"`
	MaxConcurrent  int      `mapstructure:"max_concurrent" validate:"gte=1"`
	DisabledStages []string `mapstructure:"disabled_stages"`
	MatchTimeoutMs int      `mapstructure:"match_timeout_ms" validate:"gte=0"`
}

// Application config structure
type AppConfig struct {
	Name     string `mapstructure:"service_name" validate:"required"`
	Version  string `mapstructure:"version" validate:"required"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	Log        LogConfig        `mapstructure:"log"`
	Lexicon    LexiconConfig    `mapstructure:"lexicon"`
	Normalizer NormalizerConfig `mapstructure:"normalizer"`
}

// InitConfig reads .env (or ENV_PATH) and the environment into a viper
// instance. A missing file is not an error.
func InitConfig() (*viper.Viper, error) {
	vConfig := viper.NewWithOptions(viper.KeyDelimiter("__"))

	vConfig.AddConfigPath(".")
	vConfig.SetConfigName(".env")
	path := os.Getenv("ENV_PATH")
	if path != "" {
		log.Printf("env path %v", path)
		vConfig.SetConfigFile(path)
	}
	vConfig.SetConfigType("env")
	vConfig.AutomaticEnv()

	setDefault(vConfig)
	if err := vConfig.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, err
		}
		log.Printf("Reading from env variables.")
	}
	return vConfig, nil
}

func setDefault(v *viper.Viper) {
	// keeping watch on https://github.com/spf13/viper/issues/188
	v.SetDefault("SERVICE_NAME", "normalizer-api")
	v.SetDefault("VERSION", "0.0.1")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG__FILE", "")

	v.SetDefault("LEXICON__DIRECTORY", "")

	v.SetDefault("NORMALIZER__CACHE_SIZE", 0)
	v.SetDefault("NORMALIZER__MAX_CONCURRENT", 5)
	v.SetDefault("NORMALIZER__DISABLED_STAGES", "")
	v.SetDefault("NORMALIZER__MATCH_TIMEOUT_MS", 0)
}

// GetApplicationConfig decodes and validates the application config.
func GetApplicationConfig(v *viper.Viper) (*AppConfig, error) {
	var config AppConfig
	err := v.Unmarshal(&config, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		log.Printf("%+v\n", err)
		return nil, err
	}
	config.Normalizer.DisabledStages = compact(config.Normalizer.DisabledStages)

	validate := validator.New()
	if err = validate.Struct(&config); err != nil {
		log.Printf("%+v\n", err)
		return nil, err
	}
	return &config, nil
}

func compact(items []string) []string {
	out := items[:0]
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
