// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package commons

import (
	"context"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the logging surface every component is written against.
type Logger interface {
	Level() zapcore.Level
	Debug(args ...interface{})
	Debugf(template string, args ...interface{})
	Info(args ...interface{})
	Infof(template string, args ...interface{})
	Warn(args ...interface{})
	Warnf(template string, args ...interface{})
	Error(args ...interface{})
	Errorf(template string, args ...interface{})
	DPanic(args ...interface{})
	DPanicf(template string, args ...interface{})
	Panic(args ...interface{})
	Panicf(template string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(template string, args ...interface{})

	// Benchmark records how long a named function took.
	Benchmark(functionName string, duration time.Duration)
	Tracef(ctx context.Context, format string, args ...interface{})
	Sync() error
}

type loggerOptions struct {
	name      string
	level     string
	filePath  string
	maxSizeMB int
	maxAge    int
	console   bool
}

// LoggerOption customizes NewApplicationLogger.
type LoggerOption func(*loggerOptions)

func Name(name string) LoggerOption {
	return func(o *loggerOptions) { o.name = name }
}

func Level(level string) LoggerOption {
	return func(o *loggerOptions) { o.level = level }
}

// EnableFile adds a rotating JSON file sink next to the console output.
func EnableFile(path string) LoggerOption {
	return func(o *loggerOptions) { o.filePath = path }
}

// DisableConsole drops the stderr sink, used when stdout/stderr carry data.
func DisableConsole() LoggerOption {
	return func(o *loggerOptions) { o.console = false }
}

type applicationLogger struct {
	sugar *zap.SugaredLogger
	level zap.AtomicLevel
}

// NewApplicationLogger builds the process logger. Without options it logs at
// debug level to stderr in console format.
func NewApplicationLogger(opts ...LoggerOption) (Logger, error) {
	o := &loggerOptions{
		name:      "normalizer",
		level:     "debug",
		maxSizeMB: 100,
		maxAge:    7,
		console:   true,
	}
	for _, opt := range opts {
		opt(o)
	}

	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(o.level))); err != nil {
		lvl = zapcore.InfoLevel
	}
	atomic := zap.NewAtomicLevelAt(lvl)

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	cores := make([]zapcore.Core, 0, 2)
	if o.console {
		consoleCfg := encCfg
		consoleCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(consoleCfg),
			zapcore.Lock(os.Stderr),
			atomic,
		))
	}
	if o.filePath != "" {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encCfg),
			zapcore.AddSync(&lumberjack.Logger{
				Filename: o.filePath,
				MaxSize:  o.maxSizeMB,
				MaxAge:   o.maxAge,
				Compress: true,
			}),
			atomic,
		))
	}
	if len(cores) == 0 {
		return &applicationLogger{sugar: zap.NewNop().Sugar(), level: atomic}, nil
	}

	base := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1)).Named(o.name)
	return &applicationLogger{sugar: base.Sugar(), level: atomic}, nil
}

func (l *applicationLogger) Level() zapcore.Level {
	return l.level.Level()
}

func (l *applicationLogger) Debug(args ...interface{}) {
	l.sugar.Debug(args...)
}

func (l *applicationLogger) Debugf(template string, args ...interface{}) {
	l.sugar.Debugf(template, args...)
}

func (l *applicationLogger) Info(args ...interface{}) {
	l.sugar.Info(args...)
}

func (l *applicationLogger) Infof(template string, args ...interface{}) {
	l.sugar.Infof(template, args...)
}

func (l *applicationLogger) Warn(args ...interface{}) {
	l.sugar.Warn(args...)
}

func (l *applicationLogger) Warnf(template string, args ...interface{}) {
	l.sugar.Warnf(template, args...)
}

func (l *applicationLogger) Error(args ...interface{}) {
	l.sugar.Error(args...)
}

func (l *applicationLogger) Errorf(template string, args ...interface{}) {
	l.sugar.Errorf(template, args...)
}

func (l *applicationLogger) DPanic(args ...interface{}) {
	l.sugar.DPanic(args...)
}

func (l *applicationLogger) DPanicf(template string, args ...interface{}) {
	l.sugar.DPanicf(template, args...)
}

func (l *applicationLogger) Panic(args ...interface{}) {
	l.sugar.Panic(args...)
}

func (l *applicationLogger) Panicf(template string, args ...interface{}) {
	l.sugar.Panicf(template, args...)
}

func (l *applicationLogger) Fatal(args ...interface{}) {
	l.sugar.Fatal(args...)
}

func (l *applicationLogger) Fatalf(template string, args ...interface{}) {
	l.sugar.Fatalf(template, args...)
}

func (l *applicationLogger) Benchmark(functionName string, duration time.Duration) {
	l.sugar.Debugw("benchmark", "function", functionName, "duration", duration.String())
}

func (l *applicationLogger) Tracef(ctx context.Context, format string, args ...interface{}) {
	if ctx != nil && ctx.Err() != nil {
		l.sugar.Debugf("[ctx:"+ctx.Err().Error()+"] "+format, args...)
		return
	}
	l.sugar.Debugf(format, args...)
}

func (l *applicationLogger) Sync() error { return l.sugar.Sync() }
