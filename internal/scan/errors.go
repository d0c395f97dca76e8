// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scan

import (
	"errors"
	"fmt"
)

// ErrAnswerBeforeProblem reports an answer cell encountered before any
// problem heading has established a position.
var ErrAnswerBeforeProblem = errors.New("found an answer that seems to appear before any problem")

// ErrPartBeforeProblem reports a part or subpart heading encountered before
// any problem heading.
var ErrPartBeforeProblem = errors.New("found a part heading before any problem heading")

// DuplicateAnswerError reports two answer cells resolving to the same label.
// First and Second carry the conflicting texts so callers can show both.
type DuplicateAnswerError struct {
	Number string
	First  string
	Second string
}

func (e *DuplicateAnswerError) Error() string {
	return fmt.Sprintf("multiple answers (listed above) found for %s", e.Number)
}

// MissingAnswerError reports a problem, part, or subpart that ended without
// an answer cell.
type MissingAnswerError struct {
	Number string
}

func (e *MissingAnswerError) Error() string {
	return fmt.Sprintf("no answer found for %s. Please ensure you have an answer, even if it is empty", e.Number)
}

// SubpartConflictError reports an answer attached directly to a part that
// then splits into subparts.
type SubpartConflictError struct {
	Number string
}

func (e *SubpartConflictError) Error() string {
	return fmt.Sprintf("answer found for part %s even though it has subparts - this should not be the case", e.Number)
}
