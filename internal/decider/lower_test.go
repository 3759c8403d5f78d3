package decider

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glyph-lang/patternc/internal/dtree"
	"github.com/glyph-lang/patternc/internal/pattern"
)

func TestTreeToDecider_BoolChainNoDefault(t *testing.T) {
	// S2: [IsBit(true)->Match(0), IsBit(false)->Match(1)], exhaustive.
	tree := dtree.Decision{
		Path: pattern.Empty,
		Edges: []dtree.Edge{
			{Test: pattern.IsBit{Value: true}, Tree: dtree.Match{Goal: 0}},
			{Test: pattern.IsBit{Value: false}, Tree: dtree.Match{Goal: 1}},
		},
	}
	d := TreeToDecider(tree)
	chain, ok := d.(Chain[int])
	require.True(t, ok, "expected Chain, got %T", d)
	require.Len(t, chain.TestChain, 1)
	require.Equal(t, pattern.IsBit{Value: true}, chain.TestChain[0].Test)
	require.Equal(t, Leaf[int]{Value: 0}, chain.Success)
	require.Equal(t, Leaf[int]{Value: 1}, chain.Failure)
}

func TestTreeToDecider_ThreeAltFanOutWithFallback(t *testing.T) {
	// S5: last edge becomes the FanOut's fallback, not a 3rd test arm.
	tree := dtree.Decision{
		Path: pattern.Empty,
		Edges: []dtree.Edge{
			{Test: pattern.IsCtor{TagID: 0, TagName: "A"}, Tree: dtree.Match{Goal: 0}},
			{Test: pattern.IsCtor{TagID: 1, TagName: "B"}, Tree: dtree.Match{Goal: 1}},
			{Test: pattern.IsCtor{TagID: 2, TagName: "C"}, Tree: dtree.Match{Goal: 2}},
		},
	}
	d := TreeToDecider(tree)
	fanOut, ok := d.(FanOut[int])
	require.True(t, ok, "expected FanOut, got %T", d)
	require.Len(t, fanOut.Tests, 2)
	require.Equal(t, Leaf[int]{Value: 2}, fanOut.Fallback)
}

func TestTreeToDecider_ChainFusion(t *testing.T) {
	// Two IsInt tests, the second nested on the first one's success side,
	// that share a common failure continuation collapse into one Chain
	// instead of nesting Chain-in-Chain: IsInt(1) at field 0, then IsInt(2)
	// at field 1, both falling through to the same Leaf(2) on failure.
	inner := dtree.Decision{
		Path: pattern.Index(1, pattern.Empty),
		Edges: []dtree.Edge{
			{Test: pattern.IsInt{Value: 2}, Tree: dtree.Match{Goal: 0}},
		},
		Default: dtree.Match{Goal: 2},
	}
	outer := dtree.Decision{
		Path: pattern.Index(0, pattern.Empty),
		Edges: []dtree.Edge{
			{Test: pattern.IsInt{Value: 1}, Tree: inner},
		},
		Default: dtree.Match{Goal: 2},
	}

	d := TreeToDecider(outer)
	chain, ok := d.(Chain[int])
	require.True(t, ok, "expected fused Chain, got %T", d)
	require.Len(t, chain.TestChain, 2, "fusion should merge both tests into one chain")
	require.Equal(t, pattern.IsInt{Value: 1}, chain.TestChain[0].Test)
	require.Equal(t, pattern.IsInt{Value: 2}, chain.TestChain[1].Test)
	require.Equal(t, Leaf[int]{Value: 0}, chain.Success)
	require.Equal(t, Leaf[int]{Value: 2}, chain.Failure)
}

func TestCountTargets_SameGoalTwice(t *testing.T) {
	// S6: [IntLiteral(1)->0, Underscore->0] counts goal 0 twice.
	d := Chain[int]{
		TestChain: []ChainEntry{{Path: pattern.Empty, Test: pattern.IsInt{Value: 1}}},
		Success:   Leaf[int]{Value: 0},
		Failure:   Leaf[int]{Value: 0},
	}
	counts := CountTargets(d)
	require.Equal(t, 2, counts[0])
}

func TestTreeToDecider_EmptyDecisionPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for empty decision (no edges, no default)")
		}
	}()
	TreeToDecider(dtree.Decision{Path: pattern.Empty})
}
