// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// args.go - Argument parsing for command-specific flags.
package cli

import (
	"strings"
)

// =============================================================================
// ARG PARSER
// =============================================================================

// ArgParser parses the arguments that follow a command name.
// It handles these flag formats:
//   - Long flags: --flag value or --flag=value
//   - Short flags: -f value
//   - Boolean flags: --flag (no value needed)
//   - Positional arguments: arguments without flags
//   - Subcommands: first positional argument
type ArgParser struct {
	subcommand string            // First positional arg (e.g., "rules", "show")
	flags      map[string]string // String flags (--key=value)
	boolFlags  map[string]bool   // Boolean flags (--force)
	positional []string          // All positional arguments including subcommand
	raw        []string          // Original raw arguments
}

// NewArgParser creates a new argument parser from raw arguments.
//
// Example:
//
//	args := NewArgParser([]string{"rules", "--output", "rules.csv", "--format=md", "--force"})
//	args.Subcommand()        // "rules"
//	args.Flag("output")      // "rules.csv"
//	args.Flag("format")      // "md"
//	args.BoolFlag("force")   // true
func NewArgParser(raw []string) *ArgParser {
	parser := &ArgParser{
		flags:      make(map[string]string),
		boolFlags:  make(map[string]bool),
		positional: make([]string, 0),
		raw:        raw,
	}

	i := 0
	for i < len(raw) {
		arg := raw[i]

		// "-" alone is a value, not a flag
		if strings.HasPrefix(arg, "-") && arg != "-" {
			// --flag=value
			if strings.Contains(arg, "=") {
				parts := strings.SplitN(arg, "=", 2)
				flagName := strings.TrimLeft(parts[0], "-")
				flagValue := parts[1]

				// Boolean flags can be explicit: --force=true, --force=false
				if flagValue == "true" || flagValue == "false" {
					parser.boolFlags[flagName] = flagValue == "true"
				} else {
					parser.flags[flagName] = flagValue
				}
				i++
				continue
			}

			flagName := strings.TrimLeft(arg, "-")

			if i+1 < len(raw) && !isFlag(raw[i+1]) {
				parser.flags[flagName] = raw[i+1]
				i += 2
			} else {
				parser.boolFlags[flagName] = true
				i++
			}
		} else {
			parser.positional = append(parser.positional, arg)
			i++
		}
	}

	if len(parser.positional) > 0 {
		parser.subcommand = parser.positional[0]
	}

	return parser
}

func isFlag(arg string) bool {
	return strings.HasPrefix(arg, "-") && arg != "-"
}

// Subcommand returns the first positional argument (subcommand).
// Returns empty string if no positional arguments.
func (p *ArgParser) Subcommand() string {
	return p.subcommand
}

// Flag returns the value of the first string flag found among names, so
// a long and a short spelling can be checked together.
func (p *ArgParser) Flag(names ...string) string {
	for _, name := range names {
		name = strings.TrimLeft(name, "-")
		if val, ok := p.flags[name]; ok {
			return val
		}
	}
	return ""
}

// FlagOrDefault returns the flag value or a default if not found.
func (p *ArgParser) FlagOrDefault(name, defaultValue string) string {
	if val := p.Flag(name); val != "" {
		return val
	}
	return defaultValue
}

// BoolFlag returns the value of a boolean flag.
// Returns false if flag not found.
func (p *ArgParser) BoolFlag(names ...string) bool {
	for _, name := range names {
		name = strings.TrimLeft(name, "-")
		if val, ok := p.boolFlags[name]; ok {
			return val
		}
	}
	return false
}

// Positional returns the positional argument at the given index.
// Returns empty string if index out of bounds. Index 0 is the subcommand.
func (p *ArgParser) Positional(index int) string {
	if index < 0 || index >= len(p.positional) {
		return ""
	}
	return p.positional[index]
}

// PositionalCount returns the number of positional arguments.
func (p *ArgParser) PositionalCount() int {
	return len(p.positional)
}

// HasFlag returns true if the flag exists (either as string or bool flag).
func (p *ArgParser) HasFlag(name string) bool {
	name = strings.TrimLeft(name, "-")
	_, hasString := p.flags[name]
	_, hasBool := p.boolFlags[name]
	return hasString || hasBool
}

// Unknown returns the flags that are not in known, in order of first use.
func (p *ArgParser) Unknown(known ...string) []string {
	allowed := make(map[string]bool, len(known))
	for _, k := range known {
		allowed[strings.TrimLeft(k, "-")] = true
	}

	var unknown []string
	seen := make(map[string]bool)
	for _, arg := range p.raw {
		if !isFlag(arg) {
			continue
		}
		name := strings.TrimLeft(strings.SplitN(arg, "=", 2)[0], "-")
		if !allowed[name] && !seen[name] {
			seen[name] = true
			unknown = append(unknown, name)
		}
	}
	return unknown
}
