// Package core is the expression IR the pattern-match compiler emits
// into. It is the "thin constructor interface exposed by the expression
// module" that spec.md treats as an external collaborator: register
// allocation, instruction selection, and the rest of code generation live
// downstream of it and are out of scope here.
package core

import (
	"fmt"
	"strings"

	"github.com/glyph-lang/patternc/internal/layout"
)

// Expr is any node in the lowered IR.
type Expr interface {
	String() string
	exprNode()
}

// Load reads the scrutinee (or any other named value) from its symbol.
type Load struct {
	Symbol string
}

func (l *Load) exprNode() {}
func (l *Load) String() string { return l.Symbol }

// AccessAtIndex reads a field out of a struct/union value at a fixed
// index. IsUnwrapped marks that Expr is already the unboxed payload of a
// single-alternative union (no tag word to skip).
type AccessAtIndex struct {
	Index       uint64
	Expr        Expr
	FieldLayout layout.Layout
	IsUnwrapped bool
}

func (a *AccessAtIndex) exprNode() {}
func (a *AccessAtIndex) String() string {
	if a.IsUnwrapped {
		return fmt.Sprintf("unbox(%s)", a.Expr)
	}
	return fmt.Sprintf("%s[%d]", a.Expr, a.Index)
}

// CallPrimitive calls a named equality primitive ("eq_i64", "eq_f64",
// "eq_i8", "eq_bool", "eq_str") with two operands.
type CallPrimitive struct {
	Primitive string
	Args      [2]Expr
}

func (c *CallPrimitive) exprNode() {}
func (c *CallPrimitive) String() string {
	return fmt.Sprintf("%s(%s, %s)", c.Primitive, c.Args[0], c.Args[1])
}

// Cond is a two-way branch with layout annotations for codegen.
type Cond struct {
	Cond       Expr
	CondLayout layout.Layout
	Pass       Expr
	Fail       Expr
	RetLayout  layout.Layout
}

func (c *Cond) exprNode() {}
func (c *Cond) String() string {
	return fmt.Sprintf("if %s then %s else %s", c.Cond, c.Pass, c.Fail)
}

// SwitchCase is one arm of a Switch.
type SwitchCase struct {
	Value int64
	Body  Expr
}

// Switch is a multi-way integer-discriminant branch.
type Switch struct {
	Cond       Expr
	CondLayout layout.Layout
	Cases      []SwitchCase
	Default    Expr
	RetLayout  layout.Layout
}

func (s *Switch) exprNode() {}
func (s *Switch) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "switch %s {", s.Cond)
	for _, c := range s.Cases {
		fmt.Fprintf(&b, " %d -> %s;", c.Value, c.Body)
	}
	fmt.Fprintf(&b, " default -> %s }", s.Default)
	return b.String()
}

// Jump transfers control to a labelled join point emitted elsewhere in the
// same compiled match.
type Jump struct {
	Label uint64
}

func (j *Jump) exprNode() {}
func (j *Jump) String() string { return fmt.Sprintf("jump %d", j.Label) }

// JoinPoint defines a labelled, out-of-line body reachable by Jump, then
// continues with Rest. Emitted once per jump-classified Choice.
type JoinPoint struct {
	Label uint64
	Body  Expr
	Rest  Expr
}

func (j *JoinPoint) exprNode() {}
func (j *JoinPoint) String() string {
	return fmt.Sprintf("join %d = %s in %s", j.Label, j.Body, j.Rest)
}

// IntLit is an i64 literal.
type IntLit struct{ Value int64 }

func (l *IntLit) exprNode() {}
func (l *IntLit) String() string { return fmt.Sprintf("%d", l.Value) }

// FloatLit carries its value as the raw bit pattern so construction is
// bit-exact with Test.IsFloat, including for NaN.
type FloatLit struct{ Bits uint64 }

func (l *FloatLit) exprNode() {}
func (l *FloatLit) String() string { return fmt.Sprintf("f64bits(%#x)", l.Bits) }

// ByteLit is a tag/enum discriminant byte.
type ByteLit struct{ Value uint8 }

func (l *ByteLit) exprNode() {}
func (l *ByteLit) String() string { return fmt.Sprintf("%d", l.Value) }

// BoolLit is a boolean literal.
type BoolLit struct{ Value bool }

func (l *BoolLit) exprNode() {}
func (l *BoolLit) String() string { return fmt.Sprintf("%v", l.Value) }

// StrLit is a string literal.
type StrLit struct{ Value string }

func (l *StrLit) exprNode() {}
func (l *StrLit) String() string { return fmt.Sprintf("%q", l.Value) }

// Sym is an opaque placeholder for a branch body supplied by the caller
// (optimize_when's callers hand us already-built Expr values for bodies;
// Sym exists so internal/specfmt and the CLI demo can stand in a body
// without needing a full expression builder of their own).
type Sym struct {
	Name string
}

func (s *Sym) exprNode() {}
func (s *Sym) String() string { return s.Name }
