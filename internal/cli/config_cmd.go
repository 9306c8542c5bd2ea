// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - Config command implementation.
//
// Command: config [subcommand]
// Short:   View and create configuration
//
// Subcommands:
//   show (default)      Display the effective configuration
//   path                Show the config file in use and the search order
//   init [PATH]         Write a default config file (~/.fmc2csv/config.toml)
//
// Flags:
//   --force             Overwrite an existing file (init)
//   --json              Output in JSON format
package cli

import (
	"fmt"
	"os"

	"github.com/fmc2csv/fmc2csv/internal/config"
	"github.com/fmc2csv/fmc2csv/internal/flatten"
)

// HandleConfig handles the "config" command.
func HandleConfig(args Args) error {
	p := NewArgParser(args.Raw)
	switch sub := p.Subcommand(); sub {
	case "", "show":
		return handleConfigShow(args)
	case "path":
		return handleConfigPath(args)
	case "init":
		return handleConfigInit(args, p.Positional(1), p.BoolFlag("force"))
	default:
		return NewValidationErrorWithExample("subcommand", sub, "unknown config subcommand", "fmc2csv config [show|path|init]")
	}
}

func handleConfigShow(args Args) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	if args.JSON {
		return NewJSONResponse("config show", ConfigData{Path: cfg.Path(), Config: cfg}).Print()
	}

	fmt.Fprintln(stdout, TitleStyle.Render("fmc2csv configuration"))
	fmt.Fprintf(stdout, "%s%s\n", RenderLabel("Config file"), ValueStyle.Render(displayPath(cfg.Path())))

	fmt.Fprintln(stdout, SectionStyle.Render("Export"))
	fmt.Fprintf(stdout, "%s%s\n", RenderLabel("Directory"), ValueStyle.Render(cfg.Export.Dir))
	fmt.Fprintf(stdout, "%s%s\n", RenderLabel("Format"), ValueStyle.Render(cfg.Export.Format))
	fmt.Fprintf(stdout, "%s%q\n", RenderLabel("Delimiter"), cfg.Export.Delimiter)

	fmt.Fprintln(stdout, SectionStyle.Render("Logging"))
	fmt.Fprintf(stdout, "%s%s\n", RenderLabel("Level"), ValueStyle.Render(cfg.Logging.Level))
	fmt.Fprintf(stdout, "%s%s\n", RenderLabel("Format"), ValueStyle.Render(cfg.Logging.Format))

	fmt.Fprintln(stdout, SectionStyle.Render("Kinds"))
	for _, kind := range flatten.Kinds() {
		dest := cfg.DestinationPath(kind)
		if dest == "" {
			dest = "next to source"
		}
		fmt.Fprintf(stdout, "%s%s %s\n", RenderLabel(kind.String()),
			ValueStyle.Render(cfg.SourcePath(kind)), DimStyle.Render("-> "+dest))
	}
	return nil
}

func handleConfigPath(args Args) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	search := config.SearchPaths()
	if args.ConfigPath != "" {
		search = []string{args.ConfigPath}
	}

	if args.JSON {
		return NewJSONResponse("config path", ConfigData{Path: cfg.Path(), SearchPaths: search}).Print()
	}

	fmt.Fprintln(stdout, displayPath(cfg.Path()))
	if !args.Quiet {
		fmt.Fprintln(stdout, DimStyle.Render("Search order:"))
		for _, p := range search {
			fmt.Fprintln(stdout, DimStyle.Render("  "+p))
		}
	}
	return nil
}

func handleConfigInit(args Args, path string, force bool) error {
	if path == "" {
		path = args.ConfigPath
	}
	if path == "" {
		var err error
		path, err = config.ConfigPathTOML()
		if err != nil {
			return &ConfigError{Err: err}
		}
	}

	if _, err := os.Stat(path); err == nil && !force {
		return NewCommandError("config", "init", "file already exists (use --force to overwrite)", fmt.Errorf("%s", path))
	}
	if err := config.SaveTOML(config.Default(), path); err != nil {
		return NewCommandError("config", "init", "could not write config", err)
	}

	if args.JSON {
		return NewJSONResponse("config init", ConfigData{Path: path}).Print()
	}
	if !args.Quiet {
		fmt.Fprintf(stdout, "%s Wrote default configuration to %s\n", RenderStatus("ok"), path)
	}
	return nil
}

func displayPath(path string) string {
	if path == "" {
		return "(built-in defaults)"
	}
	return path
}
