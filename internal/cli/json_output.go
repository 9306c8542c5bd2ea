// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// json_output.go - JSON output support for scripting and CI pipelines.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fmc2csv/fmc2csv/internal/export"
	"github.com/fmc2csv/fmc2csv/internal/flatten"
)

// JSONResponse is the standardized response format for all CLI commands.
type JSONResponse struct {
	// Success indicates whether the command completed successfully
	Success bool `json:"success"`

	// Data contains the command-specific response data
	Data interface{} `json:"data"`

	// Error contains the error message if Success is false, null otherwise
	Error *string `json:"error"`

	// Timestamp is the ISO8601 timestamp when the response was generated
	Timestamp string `json:"timestamp"`

	// Command is the command that was executed
	Command string `json:"command,omitempty"`
}

// NewJSONResponse creates a new successful JSON response.
func NewJSONResponse(command string, data interface{}) *JSONResponse {
	return &JSONResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Command:   command,
	}
}

// Print outputs the JSON response to stdout.
func (r *JSONResponse) Print() error {
	return r.Fprint(stdout)
}

// Fprint outputs the indented JSON response to w.
func (r *JSONResponse) Fprint(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}

// String returns the JSON response as a string.
func (r *JSONResponse) String() string {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"success":false,"error":"failed to marshal response: %s","timestamp":"%s"}`,
			err.Error(), time.Now().UTC().Format(time.RFC3339))
	}
	return string(data)
}

// =============================================================================
// COMMAND-SPECIFIC DATA STRUCTURES
// =============================================================================

// ConvertData represents the data returned by the convert command.
type ConvertData struct {
	Converted  []*export.Result `json:"converted"`
	Skipped    []flatten.Kind   `json:"skipped,omitempty"`
	DurationMs int64            `json:"duration_ms"`
}

// KindData describes one object kind for the kinds command.
type KindData struct {
	Kind    flatten.Kind `json:"kind"`
	Label   string       `json:"label"`
	Source  string       `json:"source"`
	Columns []string     `json:"columns"`
}

// ConfigData represents the data returned by the config show and path commands.
type ConfigData struct {
	Path        string      `json:"config_path"`
	SearchPaths []string    `json:"search_paths,omitempty"`
	Config      interface{} `json:"config,omitempty"`
}

// VersionData represents the data returned by the version command.
type VersionData struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version,omitempty"`
}
