// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package notebook reads Jupyter notebook files and flattens their cells
// into document order.
package notebook

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/pdiddy/submission-engine/pkg/types"
)

// SupportedVersion is the only nbformat major version this package reads.
const SupportedVersion = 4

// UnsupportedVersionError reports a notebook whose nbformat major version
// is not SupportedVersion.
type UnsupportedVersionError struct {
	Version int
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unexpected notebook format version: %d (expected %d)",
		e.Version, SupportedVersion)
}

// sourceText decodes a cell source, which nbformat stores either as a single
// string or as a list of fragments that concatenate verbatim (each fragment
// usually keeps its own trailing newline).
type sourceText string

func (s *sourceText) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = sourceText(single)
		return nil
	}
	var fragments []string
	if err := json.Unmarshal(data, &fragments); err != nil {
		return fmt.Errorf("cell source is neither a string nor a list of strings: %w", err)
	}
	*s = sourceText(strings.Join(fragments, ""))
	return nil
}

type rawCell struct {
	CellType string     `json:"cell_type"`
	Source   sourceText `json:"source"`
}

type rawNotebook struct {
	NBFormat int       `json:"nbformat"`
	Cells    []rawCell `json:"cells"`
}

// Parse decodes nbformat JSON and returns the cells in document order.
// Cell kinds other than code and markdown (e.g. raw) are kept; downstream
// stages simply have no rules for them.
func Parse(data []byte) ([]types.Cell, error) {
	var nb rawNotebook
	if err := json.Unmarshal(data, &nb); err != nil {
		return nil, fmt.Errorf("parsing notebook: %w", err)
	}
	if nb.NBFormat != SupportedVersion {
		return nil, &UnsupportedVersionError{Version: nb.NBFormat}
	}
	cells := make([]types.Cell, 0, len(nb.Cells))
	for _, c := range nb.Cells {
		cells = append(cells, types.Cell{
			Kind:   types.CellKind(c.CellType),
			Source: string(c.Source),
		})
	}
	return cells, nil
}

// Read loads and parses the notebook file at path.
func Read(path string) ([]types.Cell, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading notebook: %w", err)
	}
	return Parse(data)
}
