// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Answer is one extracted answer, tagged with the label of the problem,
// part, or subpart it belongs to.
type Answer struct {
	// Number is the full label, e.g. "1a", "2b_iii", or "special_problem".
	// Problem and part are joined directly; a subpart is appended with an
	// underscore.
	Number string `json:"number" yaml:"number"`

	// Text is the cell text with the answer marker removed and surrounding
	// whitespace trimmed. May be empty.
	Text string `json:"text" yaml:"text"`
}

// Student identifies the submitting student in the output document.
type Student struct {
	// Name is the student's full name.
	Name string `json:"name" yaml:"name"`

	// SUNet is the student's SUNet ID (not the numeric student ID).
	SUNet string `json:"sunet" yaml:"sunet"`
}
