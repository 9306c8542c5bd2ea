// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/fmc2csv/fmc2csv/internal/flatten"
)

// =============================================================================
// HTML EXPORTER
// =============================================================================

// HTMLExporter renders tables as a standalone HTML page with embedded CSS.
// The page carries no timestamps so the same table always renders to the
// same bytes.
type HTMLExporter struct {
	options *Options
}

// NewHTMLExporter creates a new HTML exporter.
func NewHTMLExporter(opts *Options) *HTMLExporter {
	return &HTMLExporter{options: opts.withDefaults()}
}

// Export renders the table as HTML.
func (e *HTMLExporter) Export(table *flatten.Table) ([]byte, error) {
	if table == nil {
		return nil, fmt.Errorf("table is nil")
	}

	title := e.options.Title
	if title == "" {
		title = "FMC export"
	}

	var sb strings.Builder

	// HTML header
	sb.WriteString("<!DOCTYPE html>\n")
	sb.WriteString("<html lang=\"en\">\n")
	sb.WriteString("<head>\n")
	sb.WriteString("    <meta charset=\"UTF-8\">\n")
	sb.WriteString(fmt.Sprintf("    <title>%s</title>\n", html.EscapeString(title)))
	sb.WriteString("    <meta name=\"generator\" content=\"fmc2csv\">\n")
	sb.WriteString(htmlCSS)
	sb.WriteString("</head>\n")
	sb.WriteString("<body>\n")
	sb.WriteString(fmt.Sprintf("    <h1>%s</h1>\n", html.EscapeString(title)))
	sb.WriteString(fmt.Sprintf("    <p class=\"count\">%d rows</p>\n", table.Len()))

	sb.WriteString("    <table>\n")
	sb.WriteString("        <thead>\n")
	writeHTMLRow(&sb, "th", table.Columns())
	sb.WriteString("        </thead>\n")
	sb.WriteString("        <tbody>\n")
	for _, row := range table.Rows() {
		writeHTMLRow(&sb, "td", row)
	}
	sb.WriteString("        </tbody>\n")
	sb.WriteString("    </table>\n")

	sb.WriteString("</body>\n")
	sb.WriteString("</html>\n")

	return []byte(sb.String()), nil
}

// FileExtension returns the file extension for HTML.
func (e *HTMLExporter) FileExtension() string {
	return ".html"
}

// MimeType returns the MIME type for HTML.
func (e *HTMLExporter) MimeType() string {
	return "text/html"
}

func writeHTMLRow(sb *strings.Builder, cell string, values []string) {
	sb.WriteString("            <tr>")
	for _, v := range values {
		sb.WriteString(fmt.Sprintf("<%s>%s</%s>", cell, html.EscapeString(v), cell))
	}
	sb.WriteString("</tr>\n")
}

const htmlCSS = `    <style>
        body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; margin: 2rem; color: #1f2328; }
        h1 { font-size: 1.4rem; margin-bottom: 0.2rem; }
        .count { color: #656d76; margin-top: 0; }
        table { border-collapse: collapse; font-size: 0.85rem; }
        th, td { border: 1px solid #d0d7de; padding: 4px 8px; text-align: left; vertical-align: top; }
        th { background: #f6f8fa; position: sticky; top: 0; }
        tbody tr:nth-child(even) { background: #f9fafb; }
    </style>
`
