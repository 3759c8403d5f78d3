package pattern

import "fmt"

// Test is an observable test the compiler will emit on the value reached
// by a Path.
type Test interface {
	String() string
	// Key is the structural-equality key used by tests_at_path's
	// order-preserving dedup and by Decider FanOut/Chain comparisons.
	//
	// IsCtor's Key deliberately excludes Arguments: two branches that
	// apply the same tag at the same path are the same test regardless
	// of what sub-patterns they nest under that tag — it is the
	// constructor identity, not its nested pattern shape, that picks the
	// decision-tree edge. Keying on Arguments too (as a naive derived
	// equality over the whole struct would) could split one tag into
	// multiple "different" edges whenever two branches happened to
	// nest differently-shaped sub-patterns under it.
	Key() string
	testNode()
}

// IsCtor tests that the value at a path is built with a specific tag.
type IsCtor struct {
	TagID     uint8
	TagName   string
	Union     Union
	Arguments []TaggedArg
}

func (IsCtor) testNode() {}
func (t IsCtor) String() string { return fmt.Sprintf("IsCtor(%s#%d)", t.TagName, t.TagID) }
func (t IsCtor) Key() string { return fmt.Sprintf("ctor:%d:%s", t.TagID, t.TagName) }

// IsByte tests a tag stored as a plain byte discriminant (no union
// metadata needed at runtime).
type IsByte struct {
	TagID   uint8
	NumAlts int
}

func (IsByte) testNode() {}
func (t IsByte) String() string { return fmt.Sprintf("IsByte(%d/%d)", t.TagID, t.NumAlts) }
func (t IsByte) Key() string { return fmt.Sprintf("byte:%d:%d", t.TagID, t.NumAlts) }

// IsBit tests a boolean.
type IsBit struct {
	Value bool
}

func (IsBit) testNode() {}
func (t IsBit) String() string { return fmt.Sprintf("IsBit(%v)", t.Value) }
func (t IsBit) Key() string { return fmt.Sprintf("bit:%v", t.Value) }

// IsInt tests an i64 literal.
type IsInt struct {
	Value int64
}

func (IsInt) testNode() {}
func (t IsInt) String() string { return fmt.Sprintf("IsInt(%d)", t.Value) }
func (t IsInt) Key() string { return fmt.Sprintf("int:%d", t.Value) }

// IsFloat tests a float literal, carried and compared as its raw bit
// pattern so tests remain total-ordered, hashable, and bit-exact
// (including for NaN literal matches).
type IsFloat struct {
	Bits uint64
}

func (IsFloat) testNode() {}
func (t IsFloat) String() string { return fmt.Sprintf("IsFloat(%#x)", t.Bits) }
func (t IsFloat) Key() string { return fmt.Sprintf("float:%#x", t.Bits) }

// IsStr tests a string literal. Key compares Value byte for byte, so two
// differently-composed representations of the same text are the same
// test only if the caller normalized them: internal/replc NFC-normalizes
// the string literals it parses; internal/specfmt passes them through
// unchanged.
type IsStr struct {
	Value string
}

func (IsStr) testNode() {}
func (t IsStr) String() string { return fmt.Sprintf("IsStr(%q)", t.Value) }
func (t IsStr) Key() string { return "str:" + t.Value }

// TestEqual reports structural equality between two tests.
func TestEqual(a, b Test) bool {
	return a.Key() == b.Key()
}

// IsComplete reports whether tests make an exhaustive set given the last
// test seen during collection (the "last test" rule from the spec: only
// the final tag/alt closes the set, and because collection is
// deduplicated this gives the same answer as tracking a running count).
func IsComplete(tests []Test) bool {
	if len(tests) == 0 {
		panic("pattern: IsComplete called with zero tests")
	}
	switch last := tests[len(tests)-1].(type) {
	case IsCtor:
		return len(tests) == last.Union.NumAlts()
	case IsByte:
		return len(tests) == last.NumAlts
	case IsBit:
		return len(tests) == 2
	case IsInt, IsFloat, IsStr:
		return false
	default:
		return false
	}
}
