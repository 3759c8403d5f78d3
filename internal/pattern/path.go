package pattern

import "fmt"

// Path is an access path into the scrutinee: the root, an indexed
// field/positional sub-value, or a single-constructor unbox step. Unbox
// is semantically transparent at runtime; it only changes how the
// indexed access underneath it is rooted, so it emits no instruction of
// its own in isolation.
type Path interface {
	String() string
	// Key returns a canonical string encoding used for structural
	// equality and as a map key. Two Paths are equal iff their Key is
	// equal.
	Key() string
	pathNode()
}

// EmptyPath is the scrutinee root.
type EmptyPath struct{}

func (EmptyPath) pathNode() {}
func (EmptyPath) String() string { return "." }
func (EmptyPath) Key() string { return "E" }

// IndexPath accesses a positional/field sub-value of the value reached by
// Path.
type IndexPath struct {
	Index uint64
	Path  Path
}

func (p IndexPath) pathNode() {}
func (p IndexPath) String() string { return fmt.Sprintf("%s[%d]", p.Path, p.Index) }
func (p IndexPath) Key() string { return fmt.Sprintf("%s.I%d", p.Path.Key(), p.Index) }

// UnboxPath strips a single-constructor wrapper from the value reached by
// Path.
type UnboxPath struct {
	Path Path
}

func (p UnboxPath) pathNode() {}
func (p UnboxPath) String() string { return fmt.Sprintf("unbox(%s)", p.Path) }
func (p UnboxPath) Key() string { return p.Path.Key() + ".U" }

// Empty is the canonical EmptyPath value, analogous to Path::Empty.
var Empty Path = EmptyPath{}

// Index builds the path that indexes field i of path.
func Index(index uint64, path Path) Path {
	return IndexPath{Index: index, Path: path}
}

// Unbox builds the path that unwraps a single-alternative constructor.
func Unbox(path Path) Path {
	return UnboxPath{Path: path}
}

// PathEqual reports whether a and b denote the same access path.
func PathEqual(a, b Path) bool {
	return a.Key() == b.Key()
}
