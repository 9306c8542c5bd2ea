// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared by the fmc2csv packages.
//
// # Key Functions
//
// String Utilities:
//   - TruncateRunesNoEllipsis: UTF-8 safe prefix of at most N runes
//   - StringWidth, PadRight: terminal display width (CJK aware)
//
// File Operations:
//   - AtomicWriteFile: crash-safe file writing with fsync and rename
//
// # Usage
//
//	// Keep the YYYY-MM-DDTHH:MM:SS part of a timestamp
//	date := util.TruncateRunesNoEllipsis(raw, 19)
//
//	// Replace an output file without ever exposing a partial one
//	err := util.AtomicWriteFile(path, data, 0644)
package util
