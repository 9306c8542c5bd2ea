// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line parsing and command handlers for fmc2csv.
//
// # Key Types
//
//   - Command: Enumeration of the CLI commands
//   - Args: Parsed global flags and the arguments after the command name
//   - ArgParser: Command-specific flag parsing
//   - JSONResponse: Envelope for --json output
//
// # Usage
//
//	cmd, args := cli.Parse()
//	switch cmd {
//	case cli.CmdConvert:
//	    err = cli.HandleConvert(args)
//	// ... other commands
//	}
//	if err != nil {
//	    cli.DisplayError(err, args.JSON)
//	    os.Exit(cli.GetExitCode(err))
//	}
//
// Handlers return errors instead of exiting. GetExitCode maps them to exit
// codes: 2 for usage errors, 3 for configuration errors, 7 when an export
// document is missing and 1 otherwise.
package cli
