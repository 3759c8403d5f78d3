package dtree

import (
	"github.com/glyph-lang/patternc/internal/diag"
	"github.com/glyph-lang/patternc/internal/pattern"
)

// Compile builds a decision tree from (pattern, goal) branches. It is
// the library entry point spec.md §6 calls "compile" — pure, and usable
// in isolation for testing without an Env/Expr builder.
func Compile(branches []pattern.Branch) DecisionTree {
	if len(branches) == 0 {
		diag.Panic("dtree", diag.DTR001, "Compile called with zero branches")
	}

	flat := make([]pattern.Branch, len(branches))
	for i, b := range branches {
		flat[i] = pattern.FlattenBranch(b)
	}
	return toDecisionTree(flat)
}

// checkForMatch realizes first-match-wins: once the top row's remaining
// patterns are all irrefutable, that row's goal wins outright and later
// rows are discarded — they can never be reached first.
func checkForMatch(branches []pattern.Branch) (int, bool) {
	if len(branches) == 0 {
		return 0, false
	}
	first := branches[0]
	for _, pp := range first.Patterns {
		if pp.Pattern.NeedsTest() {
			return 0, false
		}
	}
	return first.Goal, true
}

func toDecisionTree(branches []pattern.Branch) DecisionTree {
	if goal, ok := checkForMatch(branches); ok {
		return Match{Goal: goal}
	}

	path := pickPath(branches)
	edges, fallback := gatherEdges(path, branches)

	decisionEdges := make([]Edge, len(edges))
	for i, eb := range edges {
		decisionEdges[i] = Edge{Test: eb.Test, Tree: toDecisionTree(eb.Branches)}
	}

	switch {
	case len(decisionEdges) == 1 && len(fallback) == 0:
		// Degenerate switch: no branch remains if the single test fails,
		// so there is nothing to decide.
		return decisionEdges[0].Tree
	case len(fallback) == 0:
		return Decision{Path: path, Edges: decisionEdges, Default: nil}
	case len(decisionEdges) == 0:
		return toDecisionTree(fallback)
	default:
		return Decision{Path: path, Edges: decisionEdges, Default: toDecisionTree(fallback)}
	}
}
