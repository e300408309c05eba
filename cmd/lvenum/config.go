// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the environment defaults.
type Config struct {
	Limit     int    `env:"LVENUM_LIMIT" envDefault:"0"`        // Limit caps printed lines; 0 prints all.
	LogLevel  string `env:"LVENUM_LOG_LEVEL" envDefault:"info"` // LogLevel is a zap level name.
	Separator string `env:"LVENUM_SEPARATOR" envDefault:" "`    // Separator joins values on a line.
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.Limit < 0 {
		return Config{}, fmt.Errorf("LVENUM_LIMIT must not be negative, got %d", cfg.Limit)
	}
	return cfg, nil
}

// newLogger builds a production logger writing to stderr. verbose forces the
// debug level.
func newLogger(cfg Config, verbose bool) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("LVENUM_LOG_LEVEL: %w", err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.OutputPaths = []string{"stderr"}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
