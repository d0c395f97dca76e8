package types

// MarkerTable maps a cell kind to the marker prefixes that open an answer
// cell of that kind. A cell is an answer cell when its source starts with
// any prefix listed for its kind; the earliest listed prefix wins.
type MarkerTable map[CellKind][]string

// ExtractConfig holds settings for the extract and check commands.
type ExtractConfig struct {
	// Name is the student's full name. Prompted for interactively when empty.
	Name string `json:"name" yaml:"name"`

	// SUNet is the student's SUNet ID. Prompted for interactively when empty.
	SUNet string `json:"sunet" yaml:"sunet"`

	// MarkersFile is an optional path to a YAML marker table that replaces
	// the built-in one.
	MarkersFile string `json:"markers_file" yaml:"markers_file"`

	// AssumeYes skips interactive confirmations, answering yes to each.
	AssumeYes bool `json:"assume_yes" yaml:"assume_yes"`
}
