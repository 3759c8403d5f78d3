// Package pattern is the data model the decision-tree compiler consumes:
// surface-level Pattern values, the Path that locates each sub-component
// of the scrutinee, the Test the compiler can emit at a Path, and the
// Branch rows that to_decision_tree refines.
//
// It intentionally knows nothing about surface syntax or type checking —
// those live upstream, outside this module (internal/specfmt's YAML
// loader is a toy stand-in used only to drive the CLI demo).
package pattern

import (
	"fmt"

	"github.com/glyph-lang/patternc/internal/layout"
)

// Pattern is a single surface-level pattern.
type Pattern interface {
	String() string
	// NeedsTest reports whether this pattern can fail to match and so
	// requires a runtime test; irrefutable patterns never do.
	NeedsTest() bool
	patternNode()
}

// Identifier binds the whole value to a name; it always matches.
type Identifier struct {
	Name string
}

func (Identifier) patternNode() {}
func (p Identifier) String() string { return p.Name }
func (Identifier) NeedsTest() bool { return false }

// Underscore discards the value; it always matches.
type Underscore struct{}

func (Underscore) patternNode() {}
func (Underscore) String() string { return "_" }
func (Underscore) NeedsTest() bool { return false }

// Shadowed is an identifier pattern that shadows an existing binding of
// the same name; still irrefutable.
type Shadowed struct {
	Name string
}

func (Shadowed) patternNode() {}
func (p Shadowed) String() string { return "shadowed:" + p.Name }
func (Shadowed) NeedsTest() bool { return false }

// UnsupportedPattern stands in for a pattern earlier phases rejected or
// could not elaborate; treated as irrefutable so it never blocks
// compilation of the rest of the branch list.
type UnsupportedPattern struct {
	Reason string
}

func (UnsupportedPattern) patternNode() {}
func (p UnsupportedPattern) String() string { return "unsupported:" + p.Reason }
func (UnsupportedPattern) NeedsTest() bool { return false }

// RecordDestructure is an irrefutable structural decomposition; its
// individual fields are handled by outer logic before reaching this
// core, so the core itself treats it as a single irrefutable leaf.
type RecordDestructure struct {
	Fields []string
}

func (RecordDestructure) patternNode() {}
func (p RecordDestructure) String() string { return fmt.Sprintf("{%v}", p.Fields) }
func (RecordDestructure) NeedsTest() bool { return false }

// TaggedArg is one positional argument of an AppliedTag pattern, along
// with the layout of the value it binds.
type TaggedArg struct {
	Pattern Pattern
	Layout  layout.Layout
}

// AppliedTag is a tagged-union constructor pattern.
type AppliedTag struct {
	TagName   string
	TagID     uint8
	Arguments []TaggedArg
	Union     Union
}

func (AppliedTag) patternNode() {}
func (p AppliedTag) String() string {
	return fmt.Sprintf("%s(%v)", p.TagName, p.Arguments)
}
func (AppliedTag) NeedsTest() bool { return true }

// BitLiteral matches a boolean literal.
type BitLiteral struct {
	Value bool
}

func (BitLiteral) patternNode() {}
func (p BitLiteral) String() string { return fmt.Sprintf("%v", p.Value) }
func (BitLiteral) NeedsTest() bool { return true }

// EnumLiteral matches a plain-byte enum discriminant.
type EnumLiteral struct {
	TagID    uint8
	EnumSize int
}

func (EnumLiteral) patternNode() {}
func (p EnumLiteral) String() string { return fmt.Sprintf("enum#%d/%d", p.TagID, p.EnumSize) }
func (EnumLiteral) NeedsTest() bool { return true }

// IntLiteral matches an integer literal.
type IntLiteral struct {
	Value int64
}

func (IntLiteral) patternNode() {}
func (p IntLiteral) String() string { return fmt.Sprintf("%d", p.Value) }
func (IntLiteral) NeedsTest() bool { return true }

// FloatLiteral matches a float literal, carried as its bit pattern.
type FloatLiteral struct {
	Bits uint64
}

func (FloatLiteral) patternNode() {}
func (p FloatLiteral) String() string { return fmt.Sprintf("%#x", p.Bits) }
func (FloatLiteral) NeedsTest() bool { return true }

// StrLiteral matches a string literal.
type StrLiteral struct {
	Value string
}

func (StrLiteral) patternNode() {}
func (p StrLiteral) String() string { return fmt.Sprintf("%q", p.Value) }
func (StrLiteral) NeedsTest() bool { return true }

// PatternAtPath pairs a pattern with the access path it tests against.
type PatternAtPath struct {
	Path    Path
	Pattern Pattern
}

// Branch is one row of a when/match: a target label and the patterns
// still to be tested against paths into the scrutinee. The label of the
// branch is the "goal": which body to run once all of Patterns is
// satisfied.
type Branch struct {
	Goal     int
	Patterns []PatternAtPath
}

// NewBranch wraps a single top-level pattern as a branch rooted at the
// scrutinee (Path::Empty), the shape compile() hands to the builder.
func NewBranch(goal int, p Pattern) Branch {
	return Branch{Goal: goal, Patterns: []PatternAtPath{{Path: Empty, Pattern: p}}}
}

func (b Branch) String() string {
	return fmt.Sprintf("Branch{goal=%d, patterns=%v}", b.Goal, b.Patterns)
}
