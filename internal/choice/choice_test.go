package choice

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glyph-lang/patternc/internal/core"
	"github.com/glyph-lang/patternc/internal/decider"
	"github.com/glyph-lang/patternc/internal/pattern"
)

func TestAssign_InlineVsJump(t *testing.T) {
	// S6: goal 0 reached by two Leaf sites -> Jump; goal 1 reached once -> Inline.
	d := decider.Chain[int]{
		TestChain: []decider.ChainEntry{{Path: pattern.Empty, Test: pattern.IsInt{Value: 1}}},
		Success:   decider.Leaf[int]{Value: 0},
		Failure: decider.Chain[int]{
			TestChain: []decider.ChainEntry{{Path: pattern.Empty, Test: pattern.IsInt{Value: 2}}},
			Success:   decider.Leaf[int]{Value: 1},
			Failure:   decider.Leaf[int]{Value: 0},
		},
	}
	counts := decider.CountTargets(d)
	bodies := map[int]core.Expr{
		0: &core.Sym{Name: "body0"},
		1: &core.Sym{Name: "body1"},
	}

	choices, jumps := Assign(counts, bodies)

	_, isJump := choices[0].(Jump)
	require.True(t, isJump, "goal 0 appears twice, expected Jump")
	require.Len(t, jumps, 1)
	require.Equal(t, 0, jumps[0].Label)

	inline, isInline := choices[1].(Inline)
	require.True(t, isInline, "goal 1 appears once, expected Inline")
	require.Equal(t, "body1", inline.Body.(*core.Sym).Name)
}

func TestAssign_PanicsOnUnreachableLabel(t *testing.T) {
	d := decider.Leaf[int]{Value: 0}
	counts := decider.CountTargets(d)
	bodies := map[int]core.Expr{
		0: &core.Sym{Name: "body0"},
		1: &core.Sym{Name: "dead-branch-body"}, // discarded by first-match-wins
	}

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for label absent from target counts")
		}
	}()
	Assign(counts, bodies)
}

func TestInsertChoices_PreservesCountsKeyedByLabel(t *testing.T) {
	d := decider.Chain[int]{
		TestChain: []decider.ChainEntry{{Path: pattern.Empty, Test: pattern.IsInt{Value: 1}}},
		Success:   decider.Leaf[int]{Value: 0},
		Failure:   decider.Leaf[int]{Value: 0},
	}
	counts := decider.CountTargets(d)
	bodies := map[int]core.Expr{0: &core.Sym{Name: "body0"}}
	choices, _ := Assign(counts, bodies)

	wrapped := InsertChoices(d, choices)
	// Re-count through the choice-wrapped decider (spec.md §8 property 6).
	// d holds only label 0, so the total over every Choice key must equal
	// label 0's pre-wrap count.
	wrappedCounts := decider.CountTargets[Choice](wrapped)
	total := 0
	for _, n := range wrappedCounts {
		total += n
	}
	require.Equal(t, counts[0], total)
}
