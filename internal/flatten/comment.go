// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package flatten

import (
	"strings"

	"github.com/fmc2csv/fmc2csv/internal/fmc"
	"github.com/fmc2csv/fmc2csv/internal/util"
)

const (
	// commentDateRunes keeps YYYY-MM-DDTHH:MM:SS of an ISO-8601 date.
	commentDateRunes = 19

	// CommentSeparator joins the entries of a comment history.
	CommentSeparator = " | "
)

var newlineReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// FormatComments renders a comment history as one line:
// "<date>: <comment>" per entry, joined with CommentSeparator.
func FormatComments(history []fmc.CommentEntry) string {
	if len(history) == 0 {
		return ""
	}
	parts := make([]string, 0, len(history))
	for _, entry := range history {
		date := util.TruncateRunesNoEllipsis(entry.Date.String(), commentDateRunes)
		text := newlineReplacer.Replace(entry.Comment.String())
		parts = append(parts, date+": "+text)
	}
	return strings.Join(parts, CommentSeparator)
}
