// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/fmc2csv/fmc2csv/internal/flatten"
	"github.com/fmc2csv/fmc2csv/internal/util"
)

// =============================================================================
// EXPORT INTERFACE
// =============================================================================

// Exporter renders a table into a file format.
type Exporter interface {
	// Export renders the whole table and returns the file content.
	Export(table *flatten.Table) ([]byte, error)

	// FileExtension returns the file extension including the dot (e.g. ".csv").
	FileExtension() string

	// MimeType returns the MIME type of the rendered format.
	MimeType() string
}

// Output formats.
const (
	FormatCSV      = "csv"
	FormatJSON     = "json"
	FormatMarkdown = "md"
	FormatHTML     = "html"
)

// Formats lists the supported output formats.
func Formats() []string {
	return []string{FormatCSV, FormatJSON, FormatMarkdown, FormatHTML}
}

// =============================================================================
// EXPORT OPTIONS
// =============================================================================

// Options configures export behavior.
type Options struct {
	// Format selects the exporter: "csv", "json", "md" or "html".
	// Default: "csv"
	Format string

	// Delimiter separates CSV fields.
	// Default: ','
	Delimiter rune

	// Title is written above Markdown and HTML tables. Convert defaults it to the
	// kind label; exporters used directly write no heading when empty.
	Title string

	// FileMode is the permission of written files.
	// Default: 0644
	FileMode os.FileMode

	// Logger receives debug and warning events. Nil disables logging.
	Logger *zap.Logger

	// Targets overrides the source and destination ConvertAll uses per kind.
	Targets map[flatten.Kind]Target
}

// Target locates the export document and output file of one kind.
// Empty fields fall back to the defaults.
type Target struct {
	Source      string
	Destination string
}

// DefaultOptions returns default export options.
func DefaultOptions() *Options {
	return &Options{
		Format:    FormatCSV,
		Delimiter: ',',
		FileMode:  0644,
	}
}

// withDefaults returns a copy of opts with zero fields filled in.
func (o *Options) withDefaults() *Options {
	out := DefaultOptions()
	if o == nil {
		out.Logger = zap.NewNop()
		return out
	}
	*out = *o
	if out.Format == "" {
		out.Format = FormatCSV
	}
	if out.Delimiter == 0 {
		out.Delimiter = ','
	}
	if out.FileMode == 0 {
		out.FileMode = 0644
	}
	if out.Logger == nil {
		out.Logger = zap.NewNop()
	}
	return out
}

// NewExporter returns the exporter for opts.Format.
func NewExporter(opts *Options) (Exporter, error) {
	opts = opts.withDefaults()
	switch strings.ToLower(opts.Format) {
	case FormatCSV:
		return NewCSVExporter(opts), nil
	case FormatJSON:
		return NewJSONExporter(opts), nil
	case FormatMarkdown, "markdown":
		return NewMarkdownExporter(opts), nil
	case FormatHTML, "htm":
		return NewHTMLExporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s (supported: %s)", opts.Format, strings.Join(Formats(), ", "))
	}
}

// =============================================================================
// WRITING
// =============================================================================

// WriteTable renders table with exporter and replaces the file at dest.
// The content is rendered completely before anything touches the disk,
// and the file is swapped in atomically, so a failure never leaves a
// partial table behind.
func WriteTable(table *flatten.Table, exporter Exporter, dest string, perm os.FileMode) error {
	content, err := exporter.Export(table)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	if perm == 0 {
		perm = 0644
	}
	if err := util.AtomicWriteFile(dest, content, perm); err != nil {
		return &WriteError{Path: dest, Err: err}
	}
	return nil
}

// DestinationFor derives the output path of src: same directory and base
// name, extension of the exporter. When that would be src itself the base
// name gets a "_flat" suffix.
func DestinationFor(src string, exporter Exporter) string {
	base := strings.TrimSuffix(src, filepath.Ext(src))
	dest := base + exporter.FileExtension()
	if dest == src {
		dest = base + "_flat" + exporter.FileExtension()
	}
	return dest
}

// WriteError is returned when the destination file cannot be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
