package codegen

import (
	"fmt"

	"github.com/glyph-lang/patternc/internal/choice"
	"github.com/glyph-lang/patternc/internal/core"
	"github.com/glyph-lang/patternc/internal/decider"
	"github.com/glyph-lang/patternc/internal/layout"
)

// decideToBranching walks a choice-annotated Decider and emits IR.
// base offsets every Jump label so labels stay unique across multiple
// matches compiled against the same Env.
func decideToBranching(env *core.Env, d decider.Decider[choice.Choice], base uint64) core.Expr {
	switch v := d.(type) {
	case decider.Leaf[choice.Choice]:
		switch c := v.Value.(type) {
		case choice.Inline:
			return c.Body
		case choice.Jump:
			return core.Alloc(env.Arena, core.Jump{Label: base + uint64(c.Label)})
		default:
			panic(fmt.Sprintf("codegen: unknown Choice kind %T", v.Value))
		}

	case decider.Chain[choice.Choice]:
		return emitChain(env, v, base)

	case decider.FanOut[choice.Choice]:
		return emitFanOut(env, v, base)

	default:
		panic(fmt.Sprintf("codegen: unknown Decider node %T", d))
	}
}

// emitChain compiles every test in the chain as a nested conditional,
// each failure branch funneling to the chain's single, shared failure
// continuation — resolving spec.md §9 Open Question 1, where the source
// only ever compiled the head test and silently dropped the rest.
func emitChain(env *core.Env, c decider.Chain[choice.Choice], base uint64) core.Expr {
	failure := decideToBranching(env, c.Failure, base)
	result := decideToBranching(env, c.Success, base)

	for i := len(c.TestChain) - 1; i >= 0; i-- {
		entry := c.TestChain[i]
		cond := buildTestCond(env, entry.Path, entry.Test)
		result = core.Alloc(env.Arena, core.Cond{
			Cond:       cond,
			CondLayout: layout.Bool,
			Pass:       result,
			Fail:       failure,
			RetLayout:  env.RetLayout,
		})
	}
	return result
}

// emitFanOut compiles a multi-way switch. When every test carries an
// integer discriminant it becomes a single Switch node; if any test is
// an IsStr (which has none), the whole FanOut falls back to a sequential
// conditional chain instead, since a string can't be a jump-table case
// label.
func emitFanOut(env *core.Env, f decider.FanOut[choice.Choice], base uint64) core.Expr {
	for _, e := range f.Tests {
		if _, ok := switchDiscriminant(e.Test); !ok {
			return emitSequentialTests(env, f, base)
		}
	}

	cond := pathToExpr(env, f.Path, false, env.CondLayout)
	cases := make([]core.SwitchCase, len(f.Tests))
	for i, e := range f.Tests {
		discr, _ := switchDiscriminant(e.Test)
		cases[i] = core.SwitchCase{Value: discr, Body: decideToBranching(env, e.Decider, base)}
	}
	defaultBranch := decideToBranching(env, f.Fallback, base)

	return core.Alloc(env.Arena, core.Switch{
		Cond:       cond,
		CondLayout: env.CondLayout,
		Cases:      cases,
		Default:    defaultBranch,
		RetLayout:  env.RetLayout,
	})
}

// emitSequentialTests lowers a FanOut whose tests have no integer
// discriminant (string literals) into nested conditionals that all test
// the same path, falling through to the shared fallback.
func emitSequentialTests(env *core.Env, f decider.FanOut[choice.Choice], base uint64) core.Expr {
	result := decideToBranching(env, f.Fallback, base)
	for i := len(f.Tests) - 1; i >= 0; i-- {
		entry := f.Tests[i]
		cond := buildTestCond(env, f.Path, entry.Test)
		body := decideToBranching(env, entry.Decider, base)
		result = core.Alloc(env.Arena, core.Cond{
			Cond:       cond,
			CondLayout: layout.Bool,
			Pass:       body,
			Fail:       result,
			RetLayout:  env.RetLayout,
		})
	}
	return result
}
