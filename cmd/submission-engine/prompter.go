// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter is the interactive boundary between the extraction flow and the
// operator. Commands inject it so tests can script the whole dialogue.
type Prompter interface {
	// Confirm asks a yes/no question and returns the decision.
	Confirm(prompt string) (bool, error)

	// Input asks for a free-form value and returns the line as typed,
	// without its trailing newline.
	Input(prompt string) (string, error)
}

// StdioPrompter asks on an output stream and reads replies from an input
// stream, normally os.Stdout and os.Stdin.
type StdioPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewStdioPrompter(in io.Reader, out io.Writer) *StdioPrompter {
	return &StdioPrompter{in: bufio.NewReader(in), out: out}
}

// Confirm asks prompt with a [y/n] hint until the reply parses as a
// boolean token. Unparseable replies re-prompt; a read failure does not.
func (p *StdioPrompter) Confirm(prompt string) (bool, error) {
	for {
		reply, err := p.ask(prompt + " [y/n] ")
		if err != nil {
			return false, err
		}
		v, ok := parseBool(reply)
		if !ok {
			fmt.Fprintln(p.out, "Invalid input, please try again")
			continue
		}
		return v, nil
	}
}

// Input asks prompt and returns the reply verbatim. Leading and trailing
// spaces are kept; a student's name is whatever they typed.
func (p *StdioPrompter) Input(prompt string) (string, error) {
	return p.ask(prompt)
}

func (p *StdioPrompter) ask(prompt string) (string, error) {
	if _, err := fmt.Fprint(p.out, prompt); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}
	line, err := p.in.ReadString('\n')
	if err != nil {
		// A final line without a newline still counts as a reply.
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// parseBool recognizes the classic boolean reply tokens, case-insensitively.
func parseBool(reply string) (value, ok bool) {
	switch strings.ToLower(strings.TrimSpace(reply)) {
	case "y", "yes", "t", "true", "on", "1":
		return true, true
	case "n", "no", "f", "false", "off", "0":
		return false, true
	default:
		return false, false
	}
}
