// fmc2csv - Flatten FMC policy exports into CSV, JSON and Markdown tables.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"os"

	"github.com/fmc2csv/fmc2csv/internal/cli"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	var err error
	switch cmd {
	case cli.CmdConvert:
		err = cli.HandleConvert(args)
	case cli.CmdKinds:
		err = cli.HandleKinds(args)
	case cli.CmdConfig:
		err = cli.HandleConfig(args)
	case cli.CmdVersion:
		err = cli.HandleVersion(args)
	case cli.CmdUnknown:
		err = cli.HandleUnknown(args)
		if !args.JSON {
			cli.PrintUsage()
		}
	default:
		cli.HandleHelp()
	}

	if err != nil {
		cli.DisplayError(err, args.JSON)
		os.Exit(cli.GetExitCode(err))
	}
}
