// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// kinds_cmd.go - Kinds command implementation.
//
// Command: kinds
// Short:   List object kinds with their export file and columns
package cli

import (
	"fmt"
	"strings"

	"github.com/fmc2csv/fmc2csv/internal/flatten"
)

// HandleKinds handles the "kinds" command.
func HandleKinds(args Args) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	kinds := make([]KindData, 0, len(flatten.Kinds()))
	for _, kind := range flatten.Kinds() {
		kinds = append(kinds, KindData{
			Kind:    kind,
			Label:   kind.Label(),
			Source:  cfg.SourcePath(kind),
			Columns: kind.Columns(),
		})
	}

	if args.JSON {
		return NewJSONResponse("kinds", kinds).Print()
	}

	fmt.Fprintln(stdout, TitleStyle.Render("Object kinds"))
	for i, k := range kinds {
		if i > 0 {
			fmt.Fprintln(stdout, RenderSeparator(GetTerminalWidth()/2))
		}
		fmt.Fprintf(stdout, "%s%s\n", RenderLabel(k.Kind.String()), ValueStyle.Render(k.Source))
		fmt.Fprintf(stdout, "  %s\n", DimStyle.Render(strings.Join(k.Columns, ", ")))
	}
	return nil
}
