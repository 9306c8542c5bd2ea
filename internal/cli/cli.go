// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and top-level command handlers for fmc2csv.
package cli

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Output streams. Command results go to stdout, warnings and errors to stderr.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdHelp Command = iota
	CmdConvert
	CmdKinds
	CmdConfig
	CmdVersion
	CmdUnknown
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet      bool
	Verbose    bool
	JSON       bool   // Output in JSON format
	NoColor    bool   // --no-color
	ConfigPath string // --config PATH

	// Command-specific
	Name       string // Command name as typed
	Subcommand string

	// Raw args after the command name, global flags removed
	Raw []string
}

const usageText = `fmc2csv - flatten FMC policy exports into tables

Turns the JSON documents exported from a Firepower Management Center
(access rules, network groups, networks, port object groups) into CSV,
JSON, Markdown or HTML tables for spreadsheet review and auditing.

Usage:
  fmc2csv convert <kind> [flags]   Convert one export document
  fmc2csv convert all [flags]      Convert every export found in the export directory
  fmc2csv kinds                    List object kinds, files and columns
  fmc2csv config [show|path|init]  Configuration
  fmc2csv version                  Show version information
  fmc2csv help                     Show this help

Kinds:
  accessrules (rules)              fmc_accessrules.json
  networkgroups (groups)           fmc_networkgroups.json
  networks                         fmc_networks.json
  portobjectgroups (portgroups)    fmc_portobjectgroups.json

Convert Flags:
  --input, -i FILE                 Export document (default: <dir>/fmc_<kind>.json)
  --output, -o FILE                Output file (default: input name with new extension)
  --dir, -d DIR                    Export directory (default: export)
  --format, -f csv|json|md|html    Output format (default: csv)
  --delimiter CHAR                 CSV field delimiter (default: ,)

Config Commands:
  fmc2csv config show              Show the effective configuration
  fmc2csv config path              Show which config file is used
  fmc2csv config init [PATH]       Write a default config file
    --force                        Overwrite an existing file

Global Flags:
  --config FILE                    Config file (default: ./fmc2csv.toml, ~/.fmc2csv/config.toml)
  --json                           Machine-readable output
  --no-color                       Plain output without styling (also NO_COLOR)
  -q, --quiet                      Only print errors
  -v, --verbose                    Debug logging on stderr

Environment:
  FMC2CSV_EXPORT_DIR, FMC2CSV_FORMAT, FMC2CSV_DELIMITER,
  FMC2CSV_LOG_LEVEL, FMC2CSV_LOG_FORMAT (also read from .env)

Examples:
  fmc2csv convert rules
  fmc2csv convert networkgroups --format md
  fmc2csv convert all --dir ./export --json
  fmc2csv convert networks -i dump.json -o networks.csv

Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage() {
	fmt.Fprintf(stdout, usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Fprintf(stdout, "fmc2csv version %s\n", Version)
	fmt.Fprintf(stdout, "  Git commit: %s\n", GitCommit)
	fmt.Fprintf(stdout, "  Build date: %s\n", BuildDate)
}

// Parse parses os.Args and returns the command and args. It also applies
// the color mode the flags ask for.
func Parse() (Command, Args) {
	cmd, args := ParseArgs(os.Args[1:])
	applyColorMode(args)
	return cmd, args
}

// applyColorMode turns styling off for --no-color and --json.
func applyColorMode(args Args) {
	if args.NoColor || args.JSON {
		ForceColorsEnabled(false)
	}
}

// ParseArgs parses command-line arguments (without the program name).
func ParseArgs(argv []string) (Command, Args) {
	remaining, parsedArgs := parseGlobalFlags(argv)

	if len(remaining) == 0 {
		return CmdHelp, parsedArgs
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	parsedArgs.Name = cmd
	parsedArgs.Raw = remaining
	if len(remaining) > 0 && !strings.HasPrefix(remaining[0], "-") {
		parsedArgs.Subcommand = remaining[0]
	}

	switch cmd {
	case "convert", "c":
		return CmdConvert, parsedArgs
	case "kinds", "kind":
		return CmdKinds, parsedArgs
	case "config":
		return CmdConfig, parsedArgs
	case "version", "--version":
		return CmdVersion, parsedArgs
	case "help", "-h", "--help":
		return CmdHelp, parsedArgs
	default:
		return CmdUnknown, parsedArgs
	}
}

// parseGlobalFlags extracts global flags from args and returns remaining args.
func parseGlobalFlags(args []string) ([]string, Args) {
	var remaining []string
	var parsedArgs Args

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch arg {
		case "-q", "--quiet":
			parsedArgs.Quiet = true
		case "-v", "--verbose":
			parsedArgs.Verbose = true
		case "--json":
			parsedArgs.JSON = true
		case "--no-color":
			parsedArgs.NoColor = true
		case "--config":
			if i+1 < len(args) {
				i++
				parsedArgs.ConfigPath = args[i]
			}
		default:
			if strings.HasPrefix(arg, "--config=") {
				parsedArgs.ConfigPath = strings.TrimPrefix(arg, "--config=")
			} else {
				remaining = append(remaining, arg)
			}
		}
	}

	return remaining, parsedArgs
}

// =============================================================================
// SIMPLE HANDLERS
// =============================================================================

// HandleVersion handles the "version" command with JSON output support.
func HandleVersion(args Args) error {
	if args.JSON {
		data := VersionData{
			Version:   Version,
			GitCommit: GitCommit,
			BuildDate: BuildDate,
			GoVersion: runtime.Version(),
		}
		return NewJSONResponse("version", data).Print()
	}
	PrintVersion()
	return nil
}

// HandleHelp handles the "help" command.
func HandleHelp() {
	PrintUsage()
}

// HandleUnknown reports an unknown command.
func HandleUnknown(args Args) error {
	return NewValidationErrorWithExample("command", args.Name, "unknown command", "fmc2csv help")
}
