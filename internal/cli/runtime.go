// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"go.uber.org/zap"

	"github.com/fmc2csv/fmc2csv/internal/config"
	"github.com/fmc2csv/fmc2csv/internal/logging"
)

// loadConfig loads .env and then the configuration selected by --config.
func loadConfig(args Args) (*config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, &ConfigError{Path: ".env", Err: err}
	}
	cfg, err := config.Load(args.ConfigPath)
	if err != nil {
		return nil, &ConfigError{Path: args.ConfigPath, Err: err}
	}
	return cfg, nil
}

// loadRuntime loads the configuration and builds the logger for it.
// --quiet lowers logging to errors; --verbose raises it to debug.
func loadRuntime(args Args) (*config.Config, *zap.Logger, error) {
	cfg, err := loadConfig(args)
	if err != nil {
		return nil, nil, err
	}

	level := cfg.Logging.Level
	if args.Quiet {
		level = "error"
	}
	logger, err := logging.New(level, cfg.Logging.Format, args.Verbose)
	if err != nil {
		return nil, nil, &ConfigError{Path: cfg.Path(), Err: err}
	}
	return cfg, logger, nil
}
