// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package flatten projects FMC policy objects into flat, fixed-width records.
//
// The package is pure: it reads fmc values and returns strings. Absent
// fields always resolve to the empty string, never to an error.
//
// # Building Blocks
//
//   - Field, PortLabel, ProtocolName: per-attribute extractors
//   - Resolver: merges the objects and literals of a reference container
//   - FormatComments: one-line rendering of a comment history
//   - ProjectRule, ProjectGroup, ProjectPortGroup, ProjectNetwork: per-kind
//     record projectors
//   - Kind: the exportable object kinds with their columns and file names
//   - Table: records sharing one column header
//
// # Usage
//
//	kind, _ := flatten.ParseKind("accessrules")
//	table := flatten.NewTable(kind.Columns())
//	for i, item := range doc.Items {
//	    table.Append(kind.Project(item, i+1))
//	}
package flatten
