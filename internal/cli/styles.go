// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - Shared styling for CLI output.
//
// Colors are disabled for non-TTY output, respect NO_COLOR, and can be
// forced with FORCE_COLOR.
package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// init configures lipgloss color profile based on terminal capabilities.
func init() {
	lipgloss.SetColorProfile(GetColorProfile())
}

// =============================================================================
// SHARED STYLES
// =============================================================================

var (
	// TitleStyle is used for command titles and headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")). // Cyan
			MarginBottom(1)

	// SectionStyle is used for section headers within commands
	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")). // White
			MarginTop(1)

	// LabelStyle is used for field labels (left-aligned)
	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")). // Light gray
			Width(20)

	// ValueStyle is used for regular values and text
	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")) // Off-white

	// SuccessStyle is used for success messages and OK statuses
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")). // Green
			Bold(true)

	// ErrorStyle is used for error messages and failures
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)

	// WarningStyle is used for warnings and cautions
	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // Yellow/Orange

	// DimStyle is used for secondary information and hints
	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242")) // Dim gray

	// SeparatorStyle is used for visual separators
	SeparatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // Dark gray
)

// =============================================================================
// HELPERS
// =============================================================================

// RenderSeparator renders a horizontal separator line of the specified width.
// Default width is 70 characters if not specified.
func RenderSeparator(width ...int) string {
	w := 70
	if len(width) > 0 && width[0] > 0 {
		w = width[0]
	}
	return SeparatorStyle.Render(strings.Repeat("=", w))
}

// RenderStatus renders a status indicator with appropriate color.
func RenderStatus(status string) string {
	switch strings.ToLower(status) {
	case "ok", "success", "done":
		return SuccessStyle.Render("[OK]")
	case "error", "fail", "failed":
		return ErrorStyle.Render("[FAIL]")
	case "warning", "warn":
		return WarningStyle.Render("[WARN]")
	default:
		return DimStyle.Render("[" + strings.ToUpper(status) + "]")
	}
}

// RenderLabel renders a label with consistent width.
// If width is specified, it overrides the default 20 characters.
func RenderLabel(label string, width ...int) string {
	if len(width) > 0 && width[0] > 0 {
		return LabelStyle.Width(width[0]).Render(label)
	}
	return LabelStyle.Render(label)
}

// RenderSeparatorAdaptive renders a separator that adapts to terminal width.
func RenderSeparatorAdaptive() string {
	width := GetTerminalWidth()
	if width > 4 {
		width -= 4
	}
	if width > 80 {
		width = 80
	}
	return RenderSeparator(width)
}
