// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package submission renders collected answers into the submission
// template document and writes it to disk.
package submission

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdiddy/submission-engine/pkg/types"
)

// DefaultPath is the fixed output filename, created in the working directory.
const DefaultPath = "submission_template.txt"

// ErrInvalidXML reports that a rendered document failed the well-formedness
// check, usually because an answer contains "]]>" or a name contains a bare
// "&" or "<".
var ErrInvalidXML = errors.New("unexpected error generating XML")

const indent = "    "

// Render produces the submission document. Graders parse the file with
// exact whitespace expectations, so the layout is assembled literally
// instead of going through an XML encoder: four-space indents, name and
// sunet on their own indented lines, and each answer body at column zero
// inside its CDATA block.
func Render(student types.Student, answers []types.Answer) (string, error) {
	in2 := indent + indent
	in3 := in2 + indent

	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\"?>\n")
	b.WriteString("<pset>\n")
	b.WriteString(indent + "<student>\n")
	fmt.Fprintf(&b, "%s<name>\n%s%s\n%s</name>\n", in2, in3, student.Name, in2)
	fmt.Fprintf(&b, "%s<sunet>\n%s%s\n%s</sunet>\n", in2, in3, student.SUNet, in2)
	b.WriteString(indent + "</student>\n\n")
	for _, a := range answers {
		fmt.Fprintf(&b, "%s<answer number=\"%s\">\n%s<![CDATA[\n%s\n%s]]>\n%s</answer>\n",
			indent, a.Number, in2, a.Text, in2, indent)
	}
	b.WriteString("</pset>\n")

	doc := b.String()
	if err := validate(doc); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidXML, err)
	}
	return doc, nil
}

// validate runs the document through the XML tokenizer. The strict decoder
// rejects an early-terminated CDATA section (an answer containing "]]>")
// and unescaped markup in the student fields.
func validate(doc string) error {
	dec := xml.NewDecoder(strings.NewReader(doc))
	for {
		if _, err := dec.Token(); err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}

// Write renders the document for student and answers and writes it to
// path. Nothing is written when the document fails validation.
func Write(path string, student types.Student, answers []types.Answer) error {
	doc, err := Render(student, answers)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("writing submission: %w", err)
	}
	return nil
}
