package codegen

import (
	"fmt"

	"github.com/glyph-lang/patternc/internal/core"
	"github.com/glyph-lang/patternc/internal/diag"
	"github.com/glyph-lang/patternc/internal/layout"
	"github.com/glyph-lang/patternc/internal/pattern"
)

// pathToExpr lowers a Path into the IR that loads the value it denotes
// (spec.md §4.7 "Path → value IR"). Unbox sets isUnwrapped for the
// access beneath it so the IR can elide a tag word on a
// single-alternative union. Index paths recursively lower their inner
// path first and then index into the result — resolving spec.md §9
// Open Question 2, where the source only ever loaded the top-level
// scrutinee symbol and never actually walked a nested path.
func pathToExpr(env *core.Env, p pattern.Path, isUnwrapped bool, fieldLayout layout.Layout) core.Expr {
	switch v := p.(type) {
	case pattern.EmptyPath:
		return core.Alloc(env.Arena, core.Load{Symbol: env.CondSymbol})

	case pattern.UnboxPath:
		return pathToExpr(env, v.Path, true, fieldLayout)

	case pattern.IndexPath:
		inner := pathToExpr(env, v.Path, false, layout.Pointer)
		return core.Alloc(env.Arena, core.AccessAtIndex{
			Index:       v.Index,
			Expr:        inner,
			FieldLayout: fieldLayout,
			IsUnwrapped: isUnwrapped,
		})

	default:
		diag.Panic("codegen", diag.GEN001, fmt.Sprintf("pathToExpr: unknown Path node %T", v))
		panic("unreachable")
	}
}
