// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fmc2csv/fmc2csv/internal/flatten"
	"github.com/fmc2csv/fmc2csv/internal/fmc"
)

// =============================================================================
// CONVERSION
// =============================================================================

// Result describes one completed conversion.
type Result struct {
	Kind        flatten.Kind `json:"kind"`
	Source      string       `json:"source"`
	Destination string       `json:"destination"`
	Format      string       `json:"format"`
	MediaType   string       `json:"media_type"`
	Rows        int          `json:"rows"`
	// Truncated is set when the document's paging announced more items
	// than it contained.
	Truncated bool `json:"truncated,omitempty"`
}

// Message returns the human-readable confirmation of the conversion.
func (r *Result) Message() string {
	return fmt.Sprintf("Data has been exported to %s", r.Destination)
}

// Convert loads the export document at src, projects every item as kind
// and writes the table to dest, replacing any existing file. An empty dest
// writes next to src with the exporter's extension.
//
// A missing or malformed source returns *fmc.DocumentReadError; a failed
// write returns *WriteError. On error nothing is written.
func Convert(src, dest string, kind flatten.Kind, opts *Options) (*Result, error) {
	opts = opts.withDefaults()
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown object kind %q", kind)
	}

	if opts.Title == "" {
		opts.Title = kind.Label()
	}

	exporter, err := NewExporter(opts)
	if err != nil {
		return nil, err
	}
	if dest == "" {
		dest = DestinationFor(src, exporter)
	}
	if filepath.Clean(dest) == filepath.Clean(src) {
		return nil, fmt.Errorf("output %s would overwrite the export document", dest)
	}

	log := opts.Logger.With(
		zap.String("run_id", uuid.NewString()),
		zap.String("kind", kind.String()),
	)
	log.Debug("Loading export document", zap.String("source", src))

	doc, err := fmc.LoadDocument(src)
	if err != nil {
		log.Debug("Export document unreadable", zap.Error(err))
		return nil, err
	}
	if doc.Truncated() {
		log.Warn("Export document holds fewer items than announced by paging",
			zap.Int("items", len(doc.Items)),
			zap.Int("paging_count", doc.Paging.Count))
	}

	table := kind.Flatten(doc)
	log.Debug("Projected items", zap.Int("rows", table.Len()))

	if err := WriteTable(table, exporter, dest, opts.FileMode); err != nil {
		log.Debug("Writing table failed", zap.String("destination", dest), zap.Error(err))
		return nil, err
	}

	res := &Result{
		Kind:        kind,
		Source:      src,
		Destination: dest,
		Format:      opts.Format,
		MediaType:   exporter.MimeType(),
		Rows:        table.Len(),
		Truncated:   doc.Truncated(),
	}
	log.Info("Conversion complete",
		zap.String("destination", dest),
		zap.Int("rows", res.Rows))
	return res, nil
}

// BatchResult describes a ConvertAll run.
type BatchResult struct {
	Converted []*Result      `json:"converted"`
	Skipped   []flatten.Kind `json:"skipped"`
}

// ConvertAll converts every kind whose export file exists in dir, or at the
// source named in opts.Targets.
// Kinds without an export file are skipped; the first other failure stops
// the run and is returned together with the conversions done so far.
func ConvertAll(dir string, opts *Options) (*BatchResult, error) {
	opts = opts.withDefaults()
	batch := &BatchResult{}

	for _, kind := range flatten.Kinds() {
		src := filepath.Join(dir, kind.SourceFile())
		dest := ""
		if t, ok := opts.Targets[kind]; ok {
			if t.Source != "" {
				src = t.Source
			}
			dest = t.Destination
		}
		res, err := Convert(src, dest, kind, opts)
		if err != nil {
			var readErr *fmc.DocumentReadError
			if errors.As(err, &readErr) && readErr.Missing() {
				opts.Logger.Debug("No export file, skipping", zap.String("kind", kind.String()), zap.String("source", src))
				batch.Skipped = append(batch.Skipped, kind)
				continue
			}
			return batch, fmt.Errorf("convert %s: %w", kind.Label(), err)
		}
		batch.Converted = append(batch.Converted, res)
	}

	if len(batch.Converted) == 0 {
		if _, err := os.Stat(dir); err != nil {
			return batch, &fmc.DocumentReadError{Path: dir, Reason: "export directory not found", Err: err}
		}
	}
	return batch, nil
}
