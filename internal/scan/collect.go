// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scan

import (
	"github.com/pdiddy/submission-engine/pkg/types"
)

// collector tracks the scan position while cells stream through Collect.
// The position only ever moves forward; completeness of a unit is checked
// at the moment the scan leaves it.
type collector struct {
	// problem is the current problem id, valid only when hasProblem. An
	// empty id is a legal position (a title can derive to nothing), so the
	// two fields are separate.
	problem    string
	hasProblem bool

	// part is the current part token. Empty means no part heading has been
	// seen under the current problem; part tokens themselves are never
	// empty. A subpart heading replaces the token with its full dotted
	// path, already underscored.
	part string

	// partHeading records whether the most recent position change was a
	// part heading rather than a subpart heading. A part that immediately
	// splits into subparts is exempt from the completeness check but must
	// not carry its own answer.
	partHeading bool

	answers  []types.Answer
	answered map[string]int // label -> index into answers
}

// Collect scans cells in document order and returns the answers found, in
// order of appearance. It stops at the first violation: an answer before
// any problem, two answers for one label, an answer on a part that has
// subparts, or a unit left without an answer.
func Collect(markers types.MarkerTable, cells []types.Cell) ([]types.Answer, error) {
	c := &collector{answered: make(map[string]int)}
	for _, cell := range cells {
		if text, ok := Detect(markers, cell); ok {
			if err := c.addAnswer(text); err != nil {
				return nil, err
			}
			continue
		}
		if cell.Kind == types.CellMarkdown {
			if err := c.applyHeading(MatchHeading(cell.Source)); err != nil {
				return nil, err
			}
		}
	}
	// The final unit has no following heading to trigger its check.
	if err := c.checkComplete(false); err != nil {
		return nil, err
	}
	return c.answers, nil
}

// label is the current answer label: the problem id, directly followed by
// the part token when one is set.
func (c *collector) label() string {
	number := c.problem
	if c.part != "" {
		number += c.part
	}
	return number
}

func (c *collector) addAnswer(text string) error {
	if !c.hasProblem {
		return ErrAnswerBeforeProblem
	}
	number := c.label()
	if i, ok := c.answered[number]; ok {
		return &DuplicateAnswerError{Number: number, First: c.answers[i].Text, Second: text}
	}
	c.answered[number] = len(c.answers)
	c.answers = append(c.answers, types.Answer{Number: number, Text: text})
	return nil
}

func (c *collector) applyHeading(tr Transition) error {
	switch tr.Kind {
	case TransitionProblem:
		if err := c.checkComplete(false); err != nil {
			return err
		}
		c.problem = tr.ID
		c.hasProblem = true
		c.part = ""
		c.partHeading = false
	case TransitionPart:
		if err := c.checkComplete(false); err != nil {
			return err
		}
		if !c.hasProblem {
			return ErrPartBeforeProblem
		}
		c.part = tr.ID
		c.partHeading = true
	case TransitionSubpart:
		if err := c.checkComplete(true); err != nil {
			return err
		}
		if !c.hasProblem {
			return ErrPartBeforeProblem
		}
		c.part = tr.ID
		c.partHeading = false
	}
	return nil
}

// checkComplete verifies the unit being left. Before the first part of a
// problem there is nothing to check. When a part heading is followed
// directly by a subpart heading, the part itself must have no answer;
// every other departure point must have one.
func (c *collector) checkComplete(enteringSubpart bool) error {
	if !c.hasProblem || c.part == "" {
		return nil
	}
	number := c.label()
	_, answered := c.answered[number]
	if c.partHeading && enteringSubpart {
		if answered {
			return &SubpartConflictError{Number: number}
		}
		return nil
	}
	if !answered {
		return &MissingAnswerError{Number: number}
	}
	return nil
}
