package decider

import (
	"github.com/glyph-lang/patternc/internal/diag"
	"github.com/glyph-lang/patternc/internal/dtree"
	"github.com/glyph-lang/patternc/internal/pattern"
)

func intEqual(a, b int) bool { return a == b }

// TreeToDecider lowers a DecisionTree into a Decider[int] (spec.md
// §4.5). Leaf labels are not yet classified into Choices — that happens
// afterward in internal/choice, once the whole decider exists and goal
// use-counts are known.
func TreeToDecider(tree dtree.DecisionTree) Decider[int] {
	switch t := tree.(type) {
	case dtree.Match:
		return Leaf[int]{Value: t.Goal}

	case dtree.Decision:
		return lowerDecision(t)

	default:
		panic("decider: unknown DecisionTree node")
	}
}

func lowerDecision(d dtree.Decision) Decider[int] {
	edges := d.Edges

	if d.Default == nil {
		switch len(edges) {
		case 0:
			diag.Panic("decider", diag.DEC001, "empty decision tree (no edges, no default)")
			panic("unreachable")
		case 1:
			return TreeToDecider(edges[0].Tree)
		case 2:
			return toChain(d.Path, edges[0].Test, edges[0].Tree, edges[1].Tree)
		default:
			fallbackTree := edges[len(edges)-1].Tree
			necessary := edges[:len(edges)-1]
			tests := make([]FanOutEdge[int], len(necessary))
			for i, e := range necessary {
				tests[i] = FanOutEdge[int]{Test: e.Test, Decider: TreeToDecider(e.Tree)}
			}
			return FanOut[int]{Path: d.Path, Tests: tests, Fallback: TreeToDecider(fallbackTree)}
		}
	}

	switch len(edges) {
	case 0:
		return TreeToDecider(d.Default)
	case 1:
		return toChain(d.Path, edges[0].Test, edges[0].Tree, d.Default)
	default:
		tests := make([]FanOutEdge[int], len(edges))
		for i, e := range edges {
			tests[i] = FanOutEdge[int]{Test: e.Test, Decider: TreeToDecider(e.Tree)}
		}
		return FanOut[int]{Path: d.Path, Tests: tests, Fallback: TreeToDecider(d.Default)}
	}
}

// toChain builds a Chain for one test and fuses it with the success
// branch's own Chain when they share a (structurally) identical failure
// continuation: this collapses left-leaning test sequences with a common
// failure target into a single Chain instead of nesting Chain-in-Chain.
func toChain(path pattern.Path, test pattern.Test, successTree, failureTree dtree.DecisionTree) Decider[int] {
	failure := TreeToDecider(failureTree)
	success := TreeToDecider(successTree)

	if inner, ok := success.(Chain[int]); ok && Equal(failure, inner.Failure, intEqual) {
		fused := make([]ChainEntry, 0, len(inner.TestChain)+1)
		fused = append(fused, ChainEntry{Path: path, Test: test})
		fused = append(fused, inner.TestChain...)
		return Chain[int]{TestChain: fused, Success: inner.Success, Failure: failure}
	}

	return Chain[int]{
		TestChain: []ChainEntry{{Path: path, Test: test}},
		Success:   success,
		Failure:   failure,
	}
}
