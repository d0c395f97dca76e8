// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scan

import (
	"regexp"
	"strings"
)

// TransitionKind classifies what a markdown cell does to the scan position.
type TransitionKind int

const (
	TransitionNone TransitionKind = iota
	TransitionProblem
	TransitionPart
	TransitionSubpart
)

func (k TransitionKind) String() string {
	switch k {
	case TransitionProblem:
		return "problem"
	case TransitionPart:
		return "part"
	case TransitionSubpart:
		return "subpart"
	default:
		return "none"
	}
}

// Transition is the outcome of matching one markdown cell against the
// heading rules.
type Transition struct {
	Kind TransitionKind

	// ID is the new position token: the problem id for TransitionProblem,
	// or the part token for TransitionPart and TransitionSubpart. An id
	// derived from a title with no leading word characters may be empty.
	ID string
}

// problemPattern matches numbered problem headings underlined with dashes,
// e.g. "Problem 3: Recursion\n-----".
var problemPattern = regexp.MustCompile(`^Problem (\d+)(:.*)?\n-+`)

// titlePattern matches any other dash-underlined title, e.g.
// "Special Problem\n-----". The problem id is derived from the title text.
var titlePattern = regexp.MustCompile(`^(.+?)\n-+`)

// partPattern matches part headings, e.g. "### Part (a)".
var partPattern = regexp.MustCompile(`^### Part \((\w+)\)`)

// subpartPattern matches subpart headings, whose token carries the full
// dotted path, e.g. "#### Part (a.i)".
var subpartPattern = regexp.MustCompile(`^#### Part \(([\w.]+)\)`)

// wordRunPattern captures the leading run of word characters when deriving
// a problem id from a title.
var wordRunPattern = regexp.MustCompile(`^\w*`)

// MatchHeading classifies a markdown cell against the heading rules. The
// rules are tried in a fixed order: numbered problem, dash-underlined
// title, part, subpart. The first match decides, so a dash-underlined part
// heading would read as a title.
func MatchHeading(source string) Transition {
	if m := problemPattern.FindStringSubmatch(source); m != nil {
		return Transition{Kind: TransitionProblem, ID: m[1]}
	}
	if m := titlePattern.FindStringSubmatch(source); m != nil {
		return Transition{Kind: TransitionProblem, ID: deriveProblemID(m[1])}
	}
	if m := partPattern.FindStringSubmatch(source); m != nil {
		return Transition{Kind: TransitionPart, ID: m[1]}
	}
	if m := subpartPattern.FindStringSubmatch(source); m != nil {
		return Transition{Kind: TransitionSubpart, ID: strings.ReplaceAll(m[1], ".", "_")}
	}
	return Transition{Kind: TransitionNone}
}

// deriveProblemID turns a title into a label token: lowercase, spaces to
// underscores, truncated at the first remaining non-word character.
func deriveProblemID(title string) string {
	id := strings.ToLower(title)
	id = strings.ReplaceAll(id, " ", "_")
	return wordRunPattern.FindString(id)
}
