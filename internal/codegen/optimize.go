// Package codegen is the final lowering stage (spec.md §4.7): it walks a
// choice-annotated Decider and emits the host expression IR
// (internal/core), building a decision-tree/decider/choice pipeline run
// end to end from optimize_when's public signature.
package codegen

import (
	"github.com/glyph-lang/patternc/internal/choice"
	"github.com/glyph-lang/patternc/internal/core"
	"github.com/glyph-lang/patternc/internal/decider"
	"github.com/glyph-lang/patternc/internal/dtree"
	"github.com/glyph-lang/patternc/internal/layout"
	"github.com/glyph-lang/patternc/internal/pattern"
)

// OptBranch pairs a surface pattern with the already-built body Expr to
// run when it matches — the "Expr" half of optimize_when's
// [(Pattern, Expr)] branch list.
type OptBranch struct {
	Pattern pattern.Pattern
	Body    core.Expr
}

// OptimizeWhen is the production entry point (spec.md §6). It assigns
// sequential labels 0..n-1 to branches in input order, runs the three
// lowering stages, and emits IR. Labels emitted for jumps are offset by
// env.JumpCounter so two matches sharing the same Env never collide, and
// the counter is advanced by the number of jumps this call registers.
func OptimizeWhen(env *core.Env, condSymbol string, condLayout, retLayout layout.Layout, branches []OptBranch) core.Expr {
	env.CondSymbol = condSymbol
	env.CondLayout = condLayout
	env.RetLayout = retLayout

	patternBranches := make([]pattern.Branch, len(branches))
	bodies := make(map[int]core.Expr, len(branches))
	for i, b := range branches {
		patternBranches[i] = pattern.NewBranch(i, b.Pattern)
		bodies[i] = b.Body
	}

	tree := dtree.Compile(patternBranches)
	rawDecider := decider.TreeToDecider(tree)
	targetCounts := decider.CountTargets(rawDecider)

	choices, jumps := choice.Assign(targetCounts, bodies)
	choiceDecider := choice.InsertChoices(rawDecider, choices)

	base := env.JumpCounter
	result := decideToBranching(env, choiceDecider, base)

	for i := len(jumps) - 1; i >= 0; i-- {
		j := jumps[i]
		result = core.Alloc(env.Arena, core.JoinPoint{Label: base + uint64(j.Label), Body: j.Body, Rest: result})
	}

	env.AdvanceJumps(uint64(len(jumps)))
	return result
}

// Compile is the pure, isolated-testing entry point (spec.md §6): no
// Env/Expr involved, just the decision tree for a list of
// (pattern, goal) branches.
func Compile(branches []pattern.Branch) dtree.DecisionTree {
	return dtree.Compile(branches)
}
