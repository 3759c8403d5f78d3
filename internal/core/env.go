package core

import "github.com/glyph-lang/patternc/internal/layout"

// Env is the compilation environment threaded through optimize_when and
// the codegen stage. It owns the arena for this compile and the
// process-wide jump-label counter that keeps labels unique across
// multiple matches compiled with the same Env.
//
// Concurrency: the core may be called concurrently from multiple
// goroutines iff each goroutine uses its own Env. Env holds no
// process-global state; JumpCounter only needs to be unique within the
// set of calls that share this particular Env value.
type Env struct {
	Arena       *Arena
	CondSymbol  string
	CondLayout  layout.Layout
	RetLayout   layout.Layout
	JumpCounter uint64
}

// NewEnv builds a fresh environment for one compile. cond/ret layout may
// be updated per call to OptimizeWhen if the same Env compiles several
// matches with different scrutinee shapes.
func NewEnv(arena *Arena) *Env {
	return &Env{Arena: arena}
}

// AdvanceJumps bumps the jump counter by the number of jump-classified
// goals registered in the match just compiled, so the next compiled match
// sharing this Env never collides with a label already emitted.
func (e *Env) AdvanceJumps(n uint64) {
	e.JumpCounter += n
}
