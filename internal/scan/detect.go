// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scan walks notebook cells in document order, detecting marked
// answer cells and tracking the problem/part position each one belongs to.
package scan

import (
	"strings"

	"github.com/pdiddy/submission-engine/pkg/types"
)

// DefaultMarkers returns the built-in marker table: the SQL and Python
// markers for code cells and the bare ANSWER prefix for markdown cells.
// Keep the extract command's help text in sync with this table.
func DefaultMarkers() types.MarkerTable {
	return types.MarkerTable{
		types.CellCode: {
			"%%sql\n-- ANSWER\n", // multiline SQL
			"%sql /* ANSWER */",  // single line SQL
			"# ANSWER\n",         // Python
		},
		types.CellMarkdown: {"ANSWER"},
	}
}

// Detect reports whether the cell opens with an answer marker for its kind.
// On a match it returns the cell text with the marker removed and
// surrounding whitespace trimmed; the remaining text may be empty. Cells of
// a kind with no marker entry never match.
func Detect(markers types.MarkerTable, cell types.Cell) (string, bool) {
	for _, prefix := range markers[cell.Kind] {
		if strings.HasPrefix(cell.Source, prefix) {
			return strings.TrimSpace(cell.Source[len(prefix):]), true
		}
	}
	return "", false
}
