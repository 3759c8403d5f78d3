// Package choice implements the third lowering stage (spec.md §4.6):
// counting how often each goal label appears in a Decider and deciding,
// per goal, whether its body is inlined at its single use site or
// compiled once and reached by jump from multiple sites.
package choice

import (
	"fmt"
	"sort"

	"github.com/glyph-lang/patternc/internal/core"
	"github.com/glyph-lang/patternc/internal/decider"
	"github.com/glyph-lang/patternc/internal/diag"
)

// Choice is the per-goal directive: inline the body at its single use,
// or jump to a once-emitted out-of-line body.
type Choice interface {
	String() string
	choiceNode()
}

// Inline means the goal's body appears exactly once in the decider and
// is emitted in place.
type Inline struct {
	Body core.Expr
}

func (Inline) choiceNode() {}
func (c Inline) String() string { return fmt.Sprintf("Inline(%s)", c.Body) }

// Jump means the goal's body is emitted once, out of line, under Label,
// and every use site jumps to it.
type Jump struct {
	Label int
}

func (Jump) choiceNode() {}
func (c Jump) String() string { return fmt.Sprintf("Jump(%d)", c.Label) }

// Assign classifies every (label, body) pair in bodies against
// targetCounts (from decider.CountTargets on the raw Decider[int]),
// returning the per-label Choice map and the jumps table of out-of-line
// bodies to emit. It panics if a label in bodies never appears in
// targetCounts — that means the branch was dead (discarded by
// first-match-wins) and should never have had a body requested for it.
func Assign(targetCounts map[int]int, bodies map[int]core.Expr) (choices map[int]Choice, jumps []JumpBody) {
	choices = make(map[int]Choice, len(bodies))

	labels := make([]int, 0, len(bodies))
	for label := range bodies {
		labels = append(labels, label)
	}
	sort.Ints(labels)

	for _, label := range labels {
		count, ok := targetCounts[label]
		if !ok {
			diag.Panic("choice", diag.CHO001, fmt.Sprintf("Assign invoked with label %d absent from target counts", label))
		}
		body := bodies[label]
		if count == 1 {
			choices[label] = Inline{Body: body}
			continue
		}
		choices[label] = Jump{Label: label}
		jumps = append(jumps, JumpBody{Label: label, Body: body})
	}

	return choices, jumps
}

// JumpBody is one out-of-line body registered for emission under Label.
type JumpBody struct {
	Label int
	Body  core.Expr
}

// InsertChoices rewrites a Decider[int] into a Decider[Choice] using the
// map Assign produced.
func InsertChoices(d decider.Decider[int], choices map[int]Choice) decider.Decider[Choice] {
	return decider.InsertChoices[int, Choice](d, choices)
}
