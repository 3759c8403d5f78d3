// Package decider rewrites an n-ary internal/dtree.DecisionTree into a
// Decider: a mix of linear success/failure Chains and multi-way FanOuts,
// collapsing redundant sub-trees and fusing adjacent chains that share a
// failure continuation (spec.md §4.5).
package decider

import (
	"fmt"
	"strings"

	"github.com/glyph-lang/patternc/internal/pattern"
)

// Decider is either a terminal Leaf, a linear Chain of tests, or a
// multi-way FanOut. T is the leaf payload: a raw goal Label before choice
// assignment, or a Choice afterward (internal/choice).
type Decider[T any] interface {
	String() string
	deciderNode()
}

// Leaf reaches a goal: T is the goal label, or its assigned Choice.
type Leaf[T any] struct {
	Value T
}

func (Leaf[T]) deciderNode() {}
func (l Leaf[T]) String() string { return fmt.Sprintf("Leaf(%v)", l.Value) }

// ChainEntry is one test in a Chain's linear test_chain.
type ChainEntry struct {
	Path pattern.Path
	Test pattern.Test
}

// Chain is a linear list of tests that must all pass to reach Success;
// any failure jumps to Failure.
type Chain[T any] struct {
	TestChain []ChainEntry
	Success   Decider[T]
	Failure   Decider[T]
}

func (Chain[T]) deciderNode() {}
func (c Chain[T]) String() string {
	var b strings.Builder
	b.WriteString("Chain[")
	for i, e := range c.TestChain {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s@%s", e.Test, e.Path)
	}
	fmt.Fprintf(&b, "](success=%s, failure=%s)", c.Success, c.Failure)
	return b.String()
}

// FanOutEdge is one arm of a FanOut.
type FanOutEdge[T any] struct {
	Test    pattern.Test
	Decider Decider[T]
}

// FanOut is a multi-way switch on the value at Path.
type FanOut[T any] struct {
	Path     pattern.Path
	Tests    []FanOutEdge[T]
	Fallback Decider[T]
}

func (FanOut[T]) deciderNode() {}
func (f FanOut[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "FanOut(path=%s, tests=[", f.Path)
	for i, e := range f.Tests {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s->%s", e.Test, e.Decider)
	}
	fmt.Fprintf(&b, "], fallback=%s)", f.Fallback)
	return b.String()
}

// Equal reports structural equality between two Deciders, using
// leafEqual to compare leaf payloads. Used by the chain-fusion step to
// detect a shared failure continuation, and by tests.
func Equal[T any](a, b Decider[T], leafEqual func(T, T) bool) bool {
	switch av := a.(type) {
	case Leaf[T]:
		bv, ok := b.(Leaf[T])
		return ok && leafEqual(av.Value, bv.Value)

	case Chain[T]:
		bv, ok := b.(Chain[T])
		if !ok || len(av.TestChain) != len(bv.TestChain) {
			return false
		}
		for i := range av.TestChain {
			if av.TestChain[i].Path.Key() != bv.TestChain[i].Path.Key() {
				return false
			}
			if av.TestChain[i].Test.Key() != bv.TestChain[i].Test.Key() {
				return false
			}
		}
		return Equal(av.Success, bv.Success, leafEqual) && Equal(av.Failure, bv.Failure, leafEqual)

	case FanOut[T]:
		bv, ok := b.(FanOut[T])
		if !ok || av.Path.Key() != bv.Path.Key() || len(av.Tests) != len(bv.Tests) {
			return false
		}
		for i := range av.Tests {
			if av.Tests[i].Test.Key() != bv.Tests[i].Test.Key() {
				return false
			}
			if !Equal(av.Tests[i].Decider, bv.Tests[i].Decider, leafEqual) {
				return false
			}
		}
		return Equal(av.Fallback, bv.Fallback, leafEqual)

	default:
		return false
	}
}
