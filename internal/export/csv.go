// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/fmc2csv/fmc2csv/internal/flatten"
)

// =============================================================================
// CSV EXPORTER
// =============================================================================

// CSVExporter renders tables as delimited text: header row first, one row
// per record, "\n" line terminator. Values containing the delimiter, quotes
// or line breaks are quoted.
type CSVExporter struct {
	options *Options
}

// NewCSVExporter creates a new CSV exporter.
func NewCSVExporter(opts *Options) *CSVExporter {
	return &CSVExporter{options: opts.withDefaults()}
}

// Export renders the table as CSV.
func (e *CSVExporter) Export(table *flatten.Table) ([]byte, error) {
	if table == nil {
		return nil, fmt.Errorf("table is nil")
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	writer.Comma = e.options.Delimiter

	if err := writer.Write(table.Columns()); err != nil {
		return nil, fmt.Errorf("writing CSV header: %w", err)
	}
	for _, row := range table.Rows() {
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("writing CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flushing CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// FileExtension returns the file extension for CSV.
func (e *CSVExporter) FileExtension() string {
	return ".csv"
}

// MimeType returns the MIME type for CSV.
func (e *CSVExporter) MimeType() string {
	return "text/csv"
}
