// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export converts FMC export documents into tables on disk.
//
// It is the batch driver around package flatten: load the whole document,
// project every item, render the table with an Exporter and replace the
// destination file atomically.
//
// # Key Types
//
//   - Exporter: table renderer interface (CSV, JSON, Markdown, HTML)
//   - Options: export configuration options
//   - Result: outcome of one conversion
//   - WriteError: destination could not be written
//
// # Supported Formats
//
//   - CSV: spreadsheet review, the default
//   - JSON: array of row objects with keys in column order
//   - Markdown: pipe table for wikis and terminals
//   - HTML: standalone page with a styled table
//
// # Usage
//
// Convert one export file:
//
//	res, err := export.Convert("export/fmc_accessrules.json", "", flatten.KindAccessRules, nil)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Message())
//
// Convert every export file found in a directory:
//
//	batch, err := export.ConvertAll("export", opts)
package export
