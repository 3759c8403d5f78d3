package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenBranch_SingleArgNewtype(t *testing.T) {
	// Wrap(7) where Wrap is the only alternative of its union.
	b := NewBranch(0, AppliedTag{
		TagName: "Wrap",
		TagID:   0,
		Union:   Union{Alternatives: []string{"Wrap"}},
		Arguments: []TaggedArg{
			{Pattern: IntLiteral{Value: 7}},
		},
	})

	flat := FlattenBranch(b)
	require.Len(t, flat.Patterns, 1)
	assert.Equal(t, Unbox(Empty).Key(), flat.Patterns[0].Path.Key())
	assert.Equal(t, IntLiteral{Value: 7}, flat.Patterns[0].Pattern)
}

func TestFlattenBranch_MultiArgNewtype(t *testing.T) {
	// Pair(1, 2) where Pair is the only alternative of its union.
	b := NewBranch(0, AppliedTag{
		TagName: "Pair",
		Union:   Union{Alternatives: []string{"Pair"}},
		Arguments: []TaggedArg{
			{Pattern: IntLiteral{Value: 1}},
			{Pattern: IntLiteral{Value: 2}},
		},
	})

	flat := FlattenBranch(b)
	require.Len(t, flat.Patterns, 2)
	assert.Equal(t, Index(0, Empty).Key(), flat.Patterns[0].Path.Key())
	assert.Equal(t, Index(1, Empty).Key(), flat.Patterns[1].Path.Key())
}

func TestFlattenBranch_MultiAltUnchanged(t *testing.T) {
	// Just(x) where the union has 2 alternatives: not a newtype, passes
	// through unchanged.
	b := NewBranch(0, AppliedTag{
		TagName: "Just",
		Union:   Union{Alternatives: []string{"Just", "Nothing"}},
		Arguments: []TaggedArg{
			{Pattern: Identifier{Name: "x"}},
		},
	})

	flat := FlattenBranch(b)
	require.Len(t, flat.Patterns, 1)
	assert.Equal(t, Empty.Key(), flat.Patterns[0].Path.Key())
	_, ok := flat.Patterns[0].Pattern.(AppliedTag)
	assert.True(t, ok)
}

func TestFlattenBranch_NestedNewtypes(t *testing.T) {
	// Outer(Inner(9)) — both single-alt — collapses to Unbox(Unbox(Empty)).
	inner := AppliedTag{
		TagName: "Inner",
		Union:   Union{Alternatives: []string{"Inner"}},
		Arguments: []TaggedArg{
			{Pattern: IntLiteral{Value: 9}},
		},
	}
	outer := AppliedTag{
		TagName: "Outer",
		Union:   Union{Alternatives: []string{"Outer"}},
		Arguments: []TaggedArg{
			{Pattern: inner},
		},
	}

	flat := FlattenBranch(NewBranch(0, outer))
	require.Len(t, flat.Patterns, 1)
	assert.Equal(t, Unbox(Unbox(Empty)).Key(), flat.Patterns[0].Path.Key())
	assert.Equal(t, IntLiteral{Value: 9}, flat.Patterns[0].Pattern)
}
