// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package fmc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Paging mirrors the paging block FMC attaches to list responses.
type Paging struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
	Count  int `json:"count"`
	Pages  int `json:"pages"`
}

// Document is one export file.
type Document struct {
	Items  []PolicyObject `json:"items"`
	Paging *Paging        `json:"paging,omitempty"`
	Links  *Links         `json:"links,omitempty"`
}

// Truncated reports whether paging announces more items than the
// document holds, which happens when the export stopped after one page.
func (d *Document) Truncated() bool {
	return d.Paging != nil && d.Paging.Count > len(d.Items)
}

// =============================================================================
// LOADING
// =============================================================================

// LoadDocument reads and parses the whole export file at path.
// Any failure is returned as a *DocumentReadError.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		reason := "cannot read file"
		if errors.Is(err, fs.ErrNotExist) {
			reason = "file not found"
		}
		return nil, &DocumentReadError{Path: path, Reason: reason, Err: err}
	}

	doc, err := DecodeDocument(data)
	if err != nil {
		var readErr *DocumentReadError
		if errors.As(err, &readErr) {
			readErr.Path = path
			return nil, readErr
		}
		return nil, &DocumentReadError{Path: path, Reason: "invalid JSON", Err: err}
	}
	return doc, nil
}

// DecodeDocument parses an export document held in memory.
// A document without an items array is rejected.
func DecodeDocument(data []byte) (*Document, error) {
	var probe struct {
		Items json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, &DocumentReadError{Reason: "invalid JSON", Err: err}
	}
	trimmed := bytes.TrimSpace(probe.Items)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, &DocumentReadError{Reason: "no items array"}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &DocumentReadError{Reason: "invalid JSON", Err: err}
	}
	return &doc, nil
}

// =============================================================================
// ERRORS
// =============================================================================

// DocumentReadError is returned when an export file is missing, unreadable
// or not a valid export document. It is never retried.
type DocumentReadError struct {
	Path   string
	Reason string
	Err    error
}

func (e *DocumentReadError) Error() string {
	msg := "read export document"
	if e.Path != "" {
		msg += " " + e.Path
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *DocumentReadError) Unwrap() error {
	return e.Err
}

// Missing reports whether the export file does not exist, meaning the
// export step has to run first.
func (e *DocumentReadError) Missing() bool {
	return errors.Is(e.Err, fs.ErrNotExist)
}
