// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// CellKind identifies the kind of a notebook cell.
type CellKind string

const (
	CellCode     CellKind = "code"
	CellMarkdown CellKind = "markdown"
)

// Cell is a single notebook cell in document order.
type Cell struct {
	// Kind is the cell kind as recorded in the notebook ("code" or "markdown").
	Kind CellKind `json:"kind" yaml:"kind"`

	// Source is the complete cell text. Multi-line cells are stored as a
	// single string with the original newlines intact.
	Source string `json:"source" yaml:"source"`
}
