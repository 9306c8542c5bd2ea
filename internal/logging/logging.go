// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging builds the zap logger used for diagnostics.
// Diagnostics go to stderr so stdout stays free for command output.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a production zap logger at level ("debug", "info", "warn",
// "error") with a "console" or "json" encoder. verbose forces debug level.
func New(level, format string, verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()

	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	config.Level = zap.NewAtomicLevelAt(lvl)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	switch strings.ToLower(format) {
	case "", "console":
		config.Encoding = "console"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	case "json":
		config.Encoding = "json"
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}

	// One conversion per run; sampling would only drop lines.
	config.Sampling = nil
	config.DisableStacktrace = !verbose

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Nop returns a logger that discards everything.
func Nop() *zap.Logger {
	return zap.NewNop()
}
