// Package layout describes how a scrutinee value is represented at
// runtime. It carries no behavior of its own: the decision-tree and
// decider stages never branch on a Layout, they only thread it through to
// the codegen stage so emitted IR nodes know how wide a word, byte, or
// struct field is.
package layout

// Layout is a closed set of value representations.
type Layout int

const (
	// Int64 is a 64-bit signed integer word.
	Int64 Layout = iota
	// Float64 is a 64-bit IEEE-754 float word.
	Float64
	// Byte is a single tag/enum byte (used for IsByte discriminants and
	// IsCtor tag reads).
	Byte
	// Bool is a one-byte boolean.
	Bool
	// Struct is a multi-field heap/stack record; NumAlts or field layouts
	// are tracked by the caller, not here.
	Struct
	// Pointer is an opaque boxed reference (e.g. a multi-alternative union).
	Pointer
)

func (l Layout) String() string {
	switch l {
	case Int64:
		return "Int64"
	case Float64:
		return "Float64"
	case Byte:
		return "Byte"
	case Bool:
		return "Bool"
	case Struct:
		return "Struct"
	case Pointer:
		return "Pointer"
	default:
		return "Unknown"
	}
}
