// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

// normalizer-api reads Vietnamese text and prints its spoken form, one line
// in, one line out. Text comes from the arguments or, without any, from stdin.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dlclark/regexp2"
	internal_lexicon "github.com/rapidaai/vnnorm/api/normalizer-api/internal/lexicon"
	internal_type "github.com/rapidaai/vnnorm/api/normalizer-api/internal/type"
	internal_vietnamese "github.com/rapidaai/vnnorm/api/normalizer-api/internal/vietnamese"
	"github.com/rapidaai/vnnorm/config"
	"github.com/rapidaai/vnnorm/pkg/commons"
)

// batchSize is how many stdin lines are normalized together.
const batchSize = 64

func main() {
	envPath := flag.String("env", "", "path to an env file (overrides ENV_PATH)")
	flag.Parse()
	if *envPath != "" {
		os.Setenv("ENV_PATH", *envPath)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	vConfig, err := config.InitConfig()
	if err != nil {
		log.Fatalf("Unable to initialize config: %v", err)
	}
	appConfig, err := config.GetApplicationConfig(vConfig)
	if err != nil {
		log.Fatalf("Invalid application config: %v", err)
	}

	opts := []commons.LoggerOption{
		commons.Name(appConfig.Name),
		commons.Level(appConfig.LogLevel),
	}
	if appConfig.Log.File != "" {
		opts = append(opts, commons.EnableFile(appConfig.Log.File))
	}
	logger, err := commons.NewApplicationLogger(opts...)
	if err != nil {
		log.Fatalf("Unable to create logger: %v", err)
	}
	defer logger.Sync()

	if ms := appConfig.Normalizer.MatchTimeoutMs; ms > 0 {
		regexp2.DefaultMatchTimeout = time.Duration(ms) * time.Millisecond
	}

	normalizer, err := buildNormalizer(logger, appConfig)
	if err != nil {
		logger.Fatalf("normalizer: %v", err)
	}
	logger.Infof("%s %s ready", appConfig.Name, appConfig.Version)

	if err := run(ctx, logger, normalizer, appConfig.Normalizer.MaxConcurrent, flag.Args()); err != nil {
		logger.Errorf("normalizer: %v", err)
		os.Exit(1)
	}
}

// buildNormalizer loads the lexicon and assembles the pipeline. A lexicon
// that fails to load is fatal.
func buildNormalizer(logger commons.Logger, cfg *config.AppConfig) (internal_type.TextNormalizer, error) {
	var (
		lex *internal_lexicon.Lexicon
		err error
	)
	if cfg.Lexicon.Directory != "" {
		lex, err = internal_lexicon.LoadDir(cfg.Lexicon.Directory)
	} else {
		lex, err = internal_lexicon.LoadDefault()
	}
	if err != nil {
		return nil, err
	}

	n := internal_vietnamese.NewVietnameseNormalizer(logger, lex, internal_vietnamese.Options{
		DisabledStages: cfg.Normalizer.DisabledStages,
	})
	if cfg.Normalizer.CacheSize > 0 {
		return internal_vietnamese.NewCachedNormalizer(logger, n, cfg.Normalizer.CacheSize)
	}
	return n, nil
}

func run(ctx context.Context, logger commons.Logger, n internal_type.TextNormalizer, limit int, args []string) error {
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	if len(args) > 0 {
		return emit(ctx, logger, n, limit, []string{strings.Join(args, " ")}, out)
	}

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lines := make([]string, 0, batchSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
		if len(lines) == batchSize {
			if err := emit(ctx, logger, n, limit, lines, out); err != nil {
				return err
			}
			lines = lines[:0]
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	return emit(ctx, logger, n, limit, lines, out)
}

func emit(ctx context.Context, logger commons.Logger, n internal_type.TextNormalizer, limit int, lines []string, out *bufio.Writer) error {
	if len(lines) == 0 {
		return nil
	}
	normalized, err := internal_vietnamese.NormalizeBatch(ctx, logger, n, lines, limit)
	if err != nil {
		return err
	}
	for _, line := range normalized {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return out.Flush()
}
