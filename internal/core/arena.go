package core

// Arena is the allocator the codegen stage borrows from when it builds
// Expr nodes. Go's GC means we don't need bumpalo's raw-memory bump
// allocation to stay safe, but we keep the same ownership shape as the
// original: one Arena per compile, owned by the caller and threaded by
// reference through every recursive call, so a single compile's nodes
// share one allocation lifetime and call sites never need to free
// anything individually.
type Arena struct {
	nodeCount int
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// NodeCount reports how many nodes have been allocated through this arena,
// mainly for diagnostics/tests.
func (a *Arena) NodeCount() int {
	return a.nodeCount
}

// Alloc hands back a pointer to v, recording the allocation against the
// arena. T is almost always one of the Expr node structs in this package.
func Alloc[T any](a *Arena, v T) *T {
	a.nodeCount++
	p := new(T)
	*p = v
	return p
}
