// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"strings"

	"github.com/fmc2csv/fmc2csv/internal/flatten"
	"github.com/fmc2csv/fmc2csv/internal/util"
)

// =============================================================================
// MARKDOWN EXPORTER
// =============================================================================

// MarkdownExporter renders tables as GitHub-flavored pipe tables, padded so
// the columns line up in a monospace terminal.
type MarkdownExporter struct {
	options *Options
}

// NewMarkdownExporter creates a new Markdown exporter.
func NewMarkdownExporter(opts *Options) *MarkdownExporter {
	return &MarkdownExporter{options: opts.withDefaults()}
}

// Export renders the table as Markdown.
func (e *MarkdownExporter) Export(table *flatten.Table) ([]byte, error) {
	if table == nil {
		return nil, fmt.Errorf("table is nil")
	}

	columns := table.Columns()
	rows := make([][]string, table.Len())
	for i, row := range table.Rows() {
		rows[i] = make([]string, len(row))
		for j, v := range row {
			rows[i][j] = escapeCell(v)
		}
	}

	// Width of each column, at least 3 for the separator dashes
	widths := make([]int, len(columns))
	for j, col := range columns {
		widths[j] = max(3, util.StringWidth(escapeCell(col)))
	}
	for _, row := range rows {
		for j, v := range row {
			widths[j] = max(widths[j], util.StringWidth(v))
		}
	}

	var sb strings.Builder
	if e.options.Title != "" {
		sb.WriteString(fmt.Sprintf("# %s\n\n", escapeCell(e.options.Title)))
	}

	header := make([]string, len(columns))
	for j, col := range columns {
		header[j] = escapeCell(col)
	}
	writeMarkdownRow(&sb, header, widths)

	dashes := make([]string, len(columns))
	for j := range columns {
		dashes[j] = strings.Repeat("-", widths[j])
	}
	writeMarkdownRow(&sb, dashes, widths)

	for _, row := range rows {
		writeMarkdownRow(&sb, row, widths)
	}

	return []byte(sb.String()), nil
}

// FileExtension returns the file extension for Markdown.
func (e *MarkdownExporter) FileExtension() string {
	return ".md"
}

// MimeType returns the MIME type for Markdown.
func (e *MarkdownExporter) MimeType() string {
	return "text/markdown"
}

func writeMarkdownRow(sb *strings.Builder, cells []string, widths []int) {
	sb.WriteString("|")
	for j, cell := range cells {
		sb.WriteString(" ")
		sb.WriteString(util.PadRight(cell, widths[j]))
		sb.WriteString(" |")
	}
	sb.WriteString("\n")
}

// escapeCell keeps a value inside its table cell.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, "|", `\|`)
}
