package scan

import (
	"testing"

	"github.com/pdiddy/submission-engine/pkg/types"
)

// --- Detect ---

func TestDetect(t *testing.T) {
	markers := DefaultMarkers()

	tests := []struct {
		name     string
		cell     types.Cell
		wantText string
		wantOK   bool
	}{
		{
			name:     "multiline sql marker",
			cell:     types.Cell{Kind: types.CellCode, Source: "%%sql\n-- ANSWER\nSELECT *\nFROM t;"},
			wantText: "SELECT *\nFROM t;",
			wantOK:   true,
		},
		{
			name:     "single line sql marker",
			cell:     types.Cell{Kind: types.CellCode, Source: "%sql /* ANSWER */ SELECT 1;"},
			wantText: "SELECT 1;",
			wantOK:   true,
		},
		{
			name:     "python marker",
			cell:     types.Cell{Kind: types.CellCode, Source: "# ANSWER\nx = 42\n"},
			wantText: "x = 42",
			wantOK:   true,
		},
		{
			name:     "markdown marker",
			cell:     types.Cell{Kind: types.CellMarkdown, Source: "ANSWER: because the join is lossless."},
			wantText: ": because the join is lossless.",
			wantOK:   true,
		},
		{
			name:     "markdown marker matches longer words",
			cell:     types.Cell{Kind: types.CellMarkdown, Source: "ANSWERS vary."},
			wantText: "S vary.",
			wantOK:   true,
		},
		{
			name:     "empty answer body",
			cell:     types.Cell{Kind: types.CellCode, Source: "# ANSWER\n   \n"},
			wantText: "",
			wantOK:   true,
		},
		{
			name:   "marker must open the cell",
			cell:   types.Cell{Kind: types.CellCode, Source: "x = 1\n# ANSWER\n"},
			wantOK: false,
		},
		{
			name:   "python marker needs its newline",
			cell:   types.Cell{Kind: types.CellCode, Source: "# ANSWER"},
			wantOK: false,
		},
		{
			name:   "markdown marker does not apply to code",
			cell:   types.Cell{Kind: types.CellCode, Source: "ANSWER in a code cell"},
			wantOK: false,
		},
		{
			name:   "kinds without markers never match",
			cell:   types.Cell{Kind: "raw", Source: "ANSWER raw"},
			wantOK: false,
		},
		{
			name:   "plain markdown",
			cell:   types.Cell{Kind: types.CellMarkdown, Source: "Recall from lecture that..."},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, ok := Detect(markers, tt.cell)
			if ok != tt.wantOK {
				t.Fatalf("Detect() ok = %v, want %v", ok, tt.wantOK)
			}
			if text != tt.wantText {
				t.Errorf("Detect() text = %q, want %q", text, tt.wantText)
			}
		})
	}
}

func TestDetectCustomMarkers(t *testing.T) {
	markers := types.MarkerTable{
		types.CellCode: {"-- SOLUTION\n"},
	}

	text, ok := Detect(markers, types.Cell{Kind: types.CellCode, Source: "-- SOLUTION\nSELECT 2;"})
	if !ok || text != "SELECT 2;" {
		t.Errorf("Detect() = %q, %v, want %q, true", text, ok, "SELECT 2;")
	}

	// The table replaces the built-in markers, so the defaults are gone.
	if _, ok := Detect(markers, types.Cell{Kind: types.CellCode, Source: "# ANSWER\nx = 1"}); ok {
		t.Error("Detect() matched a built-in marker not present in the table")
	}
}

func TestDefaultMarkersFresh(t *testing.T) {
	a := DefaultMarkers()
	a[types.CellCode][0] = "mutated"

	b := DefaultMarkers()
	if b[types.CellCode][0] != "%%sql\n-- ANSWER\n" {
		t.Error("DefaultMarkers() shares state between calls")
	}
}
