// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"fmt"

	"github.com/fmc2csv/fmc2csv/internal/flatten"
)

// =============================================================================
// JSON EXPORTER
// =============================================================================

// JSONExporter renders tables as a JSON array of row objects. Object keys
// follow the column order of the table.
type JSONExporter struct {
	options *Options
}

// NewJSONExporter creates a new JSON exporter.
func NewJSONExporter(opts *Options) *JSONExporter {
	return &JSONExporter{options: opts.withDefaults()}
}

// Export renders the table as JSON.
func (e *JSONExporter) Export(table *flatten.Table) ([]byte, error) {
	if table == nil {
		return nil, fmt.Errorf("table is nil")
	}

	data, err := json.MarshalIndent(table.Records(), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// FileExtension returns the file extension for JSON.
func (e *JSONExporter) FileExtension() string {
	return ".json"
}

// MimeType returns the MIME type for JSON.
func (e *JSONExporter) MimeType() string {
	return "application/json"
}
