package codegen

import (
	"fmt"

	"github.com/glyph-lang/patternc/internal/core"
	"github.com/glyph-lang/patternc/internal/diag"
	"github.com/glyph-lang/patternc/internal/layout"
	"github.com/glyph-lang/patternc/internal/pattern"
)

// buildTestCond emits the boolean comparison a single (path, test) pair
// implies, using the equality primitive appropriate to the test's type
// (spec.md §4.7). IsStr is fully wired to a string-equality primitive —
// resolving spec.md §9 Open Question 4, where the source listed IsStr in
// tests_at_path but never handled it at emission time.
func buildTestCond(env *core.Env, path pattern.Path, test pattern.Test) core.Expr {
	switch t := test.(type) {
	case pattern.IsCtor:
		lhs := core.Alloc(env.Arena, core.IntLit{Value: int64(t.TagID)})
		rhs := core.Alloc(env.Arena, core.AccessAtIndex{
			Index:       0,
			Expr:        pathToExpr(env, path, false, layout.Pointer),
			FieldLayout: layout.Byte,
			IsUnwrapped: t.Union.IsSingle(),
		})
		return core.Alloc(env.Arena, core.CallPrimitive{Primitive: "eq_i64", Args: [2]core.Expr{lhs, rhs}})

	case pattern.IsByte:
		lhs := core.Alloc(env.Arena, core.ByteLit{Value: t.TagID})
		rhs := pathToExpr(env, path, false, layout.Byte)
		return core.Alloc(env.Arena, core.CallPrimitive{Primitive: "eq_i8", Args: [2]core.Expr{lhs, rhs}})

	case pattern.IsBit:
		lhs := core.Alloc(env.Arena, core.BoolLit{Value: t.Value})
		rhs := pathToExpr(env, path, false, layout.Bool)
		return core.Alloc(env.Arena, core.CallPrimitive{Primitive: "eq_bool", Args: [2]core.Expr{lhs, rhs}})

	case pattern.IsInt:
		lhs := core.Alloc(env.Arena, core.IntLit{Value: t.Value})
		rhs := pathToExpr(env, path, false, layout.Int64)
		return core.Alloc(env.Arena, core.CallPrimitive{Primitive: "eq_i64", Args: [2]core.Expr{lhs, rhs}})

	case pattern.IsFloat:
		lhs := core.Alloc(env.Arena, core.FloatLit{Bits: t.Bits})
		rhs := pathToExpr(env, path, false, layout.Float64)
		return core.Alloc(env.Arena, core.CallPrimitive{Primitive: "eq_f64", Args: [2]core.Expr{lhs, rhs}})

	case pattern.IsStr:
		lhs := core.Alloc(env.Arena, core.StrLit{Value: t.Value})
		rhs := pathToExpr(env, path, false, layout.Pointer)
		return core.Alloc(env.Arena, core.CallPrimitive{Primitive: "eq_str", Args: [2]core.Expr{lhs, rhs}})

	default:
		diag.Panic("codegen", diag.GEN001, fmt.Sprintf("buildTestCond: unknown Test kind %T", test))
		panic("unreachable")
	}
}

// switchDiscriminant returns the integer case value a test contributes
// to a FanOut's Switch, or ok=false if the test has no integer
// discriminant (currently only IsStr) and must be lowered as a
// sequential conditional instead of a jump-table arm.
func switchDiscriminant(test pattern.Test) (int64, bool) {
	switch t := test.(type) {
	case pattern.IsCtor:
		return int64(t.TagID), true
	case pattern.IsByte:
		return int64(t.TagID), true
	case pattern.IsBit:
		if t.Value {
			return 1, true
		}
		return 0, true
	case pattern.IsInt:
		return t.Value, true
	case pattern.IsFloat:
		return int64(t.Bits), true
	case pattern.IsStr:
		return 0, false
	default:
		diag.Panic("codegen", diag.GEN001, fmt.Sprintf("switchDiscriminant: unknown Test kind %T", test))
		panic("unreachable")
	}
}
