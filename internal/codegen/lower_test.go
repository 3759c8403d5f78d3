package codegen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glyph-lang/patternc/internal/choice"
	"github.com/glyph-lang/patternc/internal/core"
	"github.com/glyph-lang/patternc/internal/decider"
	"github.com/glyph-lang/patternc/internal/layout"
	"github.com/glyph-lang/patternc/internal/pattern"
)

func newTestEnv() *core.Env {
	env := core.NewEnv(core.NewArena())
	env.CondSymbol = "scrut"
	env.CondLayout = layout.Int64
	env.RetLayout = layout.Int64
	return env
}

// TestEmitChain_CompilesEveryTest exercises the fix for Open Question 1:
// a Chain with more than one test must emit a nested Cond per test, not
// just the first, and every one of those Conds must share the same
// compiled failure expression.
func TestEmitChain_CompilesEveryTest(t *testing.T) {
	env := newTestEnv()
	d := decider.Chain[choice.Choice]{
		TestChain: []decider.ChainEntry{
			{Path: pattern.Empty, Test: pattern.IsInt{Value: 1}},
			{Path: pattern.Empty, Test: pattern.IsInt{Value: 2}},
		},
		Success: decider.Leaf[choice.Choice]{Value: choice.Inline{Body: &core.Sym{Name: "success"}}},
		Failure: decider.Leaf[choice.Choice]{Value: choice.Inline{Body: &core.Sym{Name: "failure"}}},
	}

	result := decideToBranching(env, d, 0)

	outer, ok := result.(*core.Cond)
	require.True(t, ok, "expected outer Cond, got %T", result)
	outerCall, ok := outer.Cond.(*core.CallPrimitive)
	require.True(t, ok)
	require.Equal(t, "eq_i64", outerCall.Primitive)

	inner, ok := outer.Pass.(*core.Cond)
	require.True(t, ok, "expected second test compiled as a nested Cond, got %T", outer.Pass)
	innerCall, ok := inner.Cond.(*core.CallPrimitive)
	require.True(t, ok)
	require.Equal(t, "eq_i64", innerCall.Primitive)

	require.Equal(t, "success", inner.Pass.(*core.Sym).Name)
	require.Equal(t, "failure", inner.Fail.(*core.Sym).Name)
	require.Same(t, outer.Fail, inner.Fail, "both Conds must reference one compiled failure expression")
	require.Equal(t, "failure", outer.Fail.(*core.Sym).Name,
		"every test in the chain must funnel failure to the same shared continuation")
}

// TestEmitChain_LeafDispatch exercises both Choice variants at a Leaf.
func TestEmitChain_LeafDispatch(t *testing.T) {
	env := newTestEnv()

	inlineLeaf := decider.Leaf[choice.Choice]{Value: choice.Inline{Body: &core.Sym{Name: "inlined"}}}
	result := decideToBranching(env, inlineLeaf, 7)
	require.Equal(t, "inlined", result.(*core.Sym).Name)

	jumpLeaf := decider.Leaf[choice.Choice]{Value: choice.Jump{Label: 3}}
	result = decideToBranching(env, jumpLeaf, 7)
	jump, ok := result.(*core.Jump)
	require.True(t, ok)
	require.Equal(t, uint64(10), jump.Label, "jump label must be offset by base")
}

// TestEmitFanOut_AllIntDiscriminant exercises the Switch path: every test
// in the FanOut carries an integer discriminant, so it lowers to a single
// core.Switch rather than a conditional chain.
func TestEmitFanOut_AllIntDiscriminant(t *testing.T) {
	env := newTestEnv()
	d := decider.FanOut[choice.Choice]{
		Path: pattern.Empty,
		Tests: []decider.FanOutEdge[choice.Choice]{
			{Test: pattern.IsCtor{TagID: 0, TagName: "A"}, Decider: decider.Leaf[choice.Choice]{Value: choice.Inline{Body: &core.Sym{Name: "a"}}}},
			{Test: pattern.IsCtor{TagID: 1, TagName: "B"}, Decider: decider.Leaf[choice.Choice]{Value: choice.Inline{Body: &core.Sym{Name: "b"}}}},
		},
		Fallback: decider.Leaf[choice.Choice]{Value: choice.Inline{Body: &core.Sym{Name: "c"}}},
	}

	result := decideToBranching(env, d, 0)
	sw, ok := result.(*core.Switch)
	require.True(t, ok, "expected Switch, got %T", result)
	require.Len(t, sw.Cases, 2)
	require.Equal(t, int64(0), sw.Cases[0].Value)
	require.Equal(t, int64(1), sw.Cases[1].Value)
	require.Equal(t, "c", sw.Default.(*core.Sym).Name)
}

// TestEmitFanOut_StrFallsBackToSequential exercises Open Question 4: a
// FanOut containing an IsStr test has no integer discriminant to switch
// on, so it must lower to a sequential conditional chain instead of a
// Switch.
func TestEmitFanOut_StrFallsBackToSequential(t *testing.T) {
	env := newTestEnv()
	env.CondLayout = layout.Pointer
	d := decider.FanOut[choice.Choice]{
		Path: pattern.Empty,
		Tests: []decider.FanOutEdge[choice.Choice]{
			{Test: pattern.IsStr{Value: "foo"}, Decider: decider.Leaf[choice.Choice]{Value: choice.Inline{Body: &core.Sym{Name: "foo-branch"}}}},
			{Test: pattern.IsStr{Value: "bar"}, Decider: decider.Leaf[choice.Choice]{Value: choice.Inline{Body: &core.Sym{Name: "bar-branch"}}}},
		},
		Fallback: decider.Leaf[choice.Choice]{Value: choice.Inline{Body: &core.Sym{Name: "other"}}},
	}

	result := decideToBranching(env, d, 0)
	outer, ok := result.(*core.Cond)
	require.True(t, ok, "expected sequential Cond fallback, got %T", result)
	call, ok := outer.Cond.(*core.CallPrimitive)
	require.True(t, ok)
	require.Equal(t, "eq_str", call.Primitive)
	require.Equal(t, "foo-branch", outer.Pass.(*core.Sym).Name)

	inner, ok := outer.Fail.(*core.Cond)
	require.True(t, ok, "expected second string test compiled as nested Cond")
	require.Equal(t, "bar-branch", inner.Pass.(*core.Sym).Name)
	require.Equal(t, "other", inner.Fail.(*core.Sym).Name)
}

// TestOptimizeWhen_EndToEnd runs the full pipeline for a three-branch
// match ("A" -> 0, "B" -> 1, _ -> 2) and checks that it produces IR whose
// nodes are allocated through the Env's arena, and that a second call
// sharing the same Env never moves the jump counter backwards.
func TestOptimizeWhen_EndToEnd(t *testing.T) {
	env := newTestEnv()
	env.CondLayout = layout.Pointer

	branches := []OptBranch{
		{Pattern: pattern.StrLiteral{Value: "A"}, Body: &core.Sym{Name: "branchA"}},
		{Pattern: pattern.StrLiteral{Value: "B"}, Body: &core.Sym{Name: "branchB"}},
		{Pattern: pattern.Underscore{}, Body: &core.Sym{Name: "branchDefault"}},
	}

	result := OptimizeWhen(env, "scrut", layout.Pointer, layout.Int64, branches)
	require.NotNil(t, result)
	require.Positive(t, env.Arena.NodeCount(), "codegen must allocate Expr nodes through the Env's arena")

	firstCounter := env.JumpCounter

	result2 := OptimizeWhen(env, "scrut", layout.Pointer, layout.Int64, branches)
	require.NotNil(t, result2)
	require.GreaterOrEqual(t, env.JumpCounter, firstCounter,
		"jump counter must never go backwards across compiles sharing an Env")
}
