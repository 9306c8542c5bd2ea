// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package fmc models the JSON documents exported from the Firepower
// Management Center REST API.
//
// Every attribute the converter reads is an explicit, optional field. An
// absent key decodes to its zero value and renders as the empty string, so
// callers never have to check for presence before reading.
//
// # Key Types
//
//   - Document: one export file (items, paging, links)
//   - PolicyObject: an access rule, network, network group or port group
//   - ReferenceContainer: objects and literals behind a rule column
//   - Entry: one referenced object or inline literal
//   - Scalar: any JSON scalar, rendered as text
//
// # Usage
//
//	doc, err := fmc.LoadDocument("export/fmc_accessrules.json")
//	if err != nil {
//	    var readErr *fmc.DocumentReadError
//	    if errors.As(err, &readErr) && readErr.Missing() {
//	        // run the export step first
//	    }
//	}
package fmc
