// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// UNICODE: Rune-aware helpers never split a multi-byte character.

// TruncateRunesNoEllipsis returns at most the first maxRunes runes of s.
// Strings that already fit are returned unchanged.
func TruncateRunesNoEllipsis(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes])
}

// StringWidth returns the display width of a string.
// Double-width characters (CJK) count as 2 columns.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// PadRight pads s with spaces until it occupies width display columns.
// Strings that are already wider are returned unchanged.
func PadRight(s string, width int) string {
	w := StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
