package dtree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/glyph-lang/patternc/internal/pattern"
)

func TestCompile_AllIrrefutable(t *testing.T) {
	branches := []pattern.Branch{
		pattern.NewBranch(0, pattern.Underscore{}),
	}
	tree := Compile(branches)
	match, ok := tree.(Match)
	require.True(t, ok, "expected Match, got %T", tree)
	require.Equal(t, 0, match.Goal)
}

func TestCompile_IntLiteralsWithWildcard(t *testing.T) {
	// S1: [IntLiteral(1)->0, IntLiteral(2)->1, Underscore->2]
	branches := []pattern.Branch{
		pattern.NewBranch(0, pattern.IntLiteral{Value: 1}),
		pattern.NewBranch(1, pattern.IntLiteral{Value: 2}),
		pattern.NewBranch(2, pattern.Underscore{}),
	}
	tree := Compile(branches)
	d, ok := tree.(Decision)
	require.True(t, ok, "expected Decision, got %T", tree)
	require.Len(t, d.Edges, 2)
	require.NotNil(t, d.Default)
	require.Equal(t, pattern.IsInt{Value: 1}, d.Edges[0].Test)
	require.Equal(t, pattern.IsInt{Value: 2}, d.Edges[1].Test)
	require.Equal(t, Match{Goal: 2}, d.Default)
}

func TestCompile_BoolExhaustive(t *testing.T) {
	// S2: [BitLiteral(true)->0, BitLiteral(false)->1], no default.
	branches := []pattern.Branch{
		pattern.NewBranch(0, pattern.BitLiteral{Value: true}),
		pattern.NewBranch(1, pattern.BitLiteral{Value: false}),
	}
	tree := Compile(branches)
	d, ok := tree.(Decision)
	require.True(t, ok)
	require.Len(t, d.Edges, 2)
	require.Nil(t, d.Default)
}

func TestCompile_TwoAltCtor(t *testing.T) {
	// S3: [Just(x)->0, Nothing->1] with a 2-alt union; exhaustive.
	union := pattern.Union{Alternatives: []string{"Just", "Nothing"}}
	branches := []pattern.Branch{
		pattern.NewBranch(0, pattern.AppliedTag{
			TagName: "Just", TagID: 0, Union: union,
			Arguments: []pattern.TaggedArg{{Pattern: pattern.Identifier{Name: "x"}}},
		}),
		pattern.NewBranch(1, pattern.AppliedTag{TagName: "Nothing", TagID: 1, Union: union}),
	}
	tree := Compile(branches)
	d, ok := tree.(Decision)
	require.True(t, ok)
	require.Len(t, d.Edges, 2)
	require.Nil(t, d.Default)
}

func TestCompile_SingleAltWrapperUnboxed(t *testing.T) {
	// S4: Wrap(7)->0, _->1 where Wrap is single-alt: path becomes
	// Unbox(Empty) carrying IntLiteral(7).
	branches := []pattern.Branch{
		pattern.NewBranch(0, pattern.AppliedTag{
			TagName: "Wrap", Union: pattern.Union{Alternatives: []string{"Wrap"}},
			Arguments: []pattern.TaggedArg{{Pattern: pattern.IntLiteral{Value: 7}}},
		}),
		pattern.NewBranch(1, pattern.Underscore{}),
	}
	tree := Compile(branches)
	d, ok := tree.(Decision)
	require.True(t, ok)
	require.Len(t, d.Edges, 1)
	require.NotNil(t, d.Default)
	if diff := cmp.Diff(pattern.Unbox(pattern.Empty).Key(), d.Path.Key()); diff != "" {
		t.Errorf("unexpected path (-want +got):\n%s", diff)
	}
	require.Equal(t, pattern.IsInt{Value: 7}, d.Edges[0].Test)
}

func TestCompile_ThreeAltCtorFallbackIsLastAlt(t *testing.T) {
	// S5: [A->0, B->1, C->2] with a 3-alt union. The decision tree still
	// holds 3 edges and no default (it's tree_to_decider that later
	// demotes the last edge into a fallback for the fan-out).
	union := pattern.Union{Alternatives: []string{"A", "B", "C"}}
	branches := []pattern.Branch{
		pattern.NewBranch(0, pattern.AppliedTag{TagName: "A", TagID: 0, Union: union}),
		pattern.NewBranch(1, pattern.AppliedTag{TagName: "B", TagID: 1, Union: union}),
		pattern.NewBranch(2, pattern.AppliedTag{TagName: "C", TagID: 2, Union: union}),
	}
	tree := Compile(branches)
	d, ok := tree.(Decision)
	require.True(t, ok)
	require.Len(t, d.Edges, 3)
	require.Nil(t, d.Default)
}

func TestPickPath_PanicsOnEmptyCandidates(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for zero candidate paths")
		}
	}()
	pickPath(nil)
}
