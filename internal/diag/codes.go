// Package diag provides the structured error-reporting type this
// compiler returns from every fallible stage, plus the error code
// taxonomy those reports carry (spec.md §7).
package diag

// Error code constants, grouped by the pipeline phase that raises them.
// The DTR/DEC/CHO/GEN codes are fatal internal-invariant violations, not
// recoverable user errors: spec.md §7 raises them as plain panics (via
// diag.Panic, which still stamps the phase/code/message onto the panic
// text) rather than as a returned ReportError. The SPC codes are
// recoverable input errors that internal/specfmt and internal/replc
// return wrapped in a ReportError. Pattern/flatten has no
// code of its own here because flatten.go has no invariant it enforces
// beyond what the type system already guarantees (see DESIGN.md).
const (
	// ============================================================================
	// Decision-tree construction errors (DTR###)
	// ============================================================================

	// DTR001 indicates Compile was asked to build a decision tree from
	// zero branches.
	DTR001 = "DTR001"

	// ============================================================================
	// Decider lowering errors (DEC###)
	// ============================================================================

	// DEC001 indicates TreeToDecider was asked to lower an empty
	// Decision node (no edges, no default).
	DEC001 = "DEC001"

	// ============================================================================
	// Choice assignment errors (CHO###)
	// ============================================================================

	// CHO001 indicates Assign was invoked with a goal label that never
	// appears in the Decider's target counts (a dead branch).
	CHO001 = "CHO001"

	// ============================================================================
	// Codegen errors (GEN###)
	// ============================================================================

	// GEN001 indicates a Test or Path variant reached emission that
	// buildTestCond/pathToExpr does not know how to lower.
	GEN001 = "GEN001"

	// ============================================================================
	// Branch-spec loader errors (SPC###)
	// ============================================================================

	// SPC001 indicates a malformed pattern in a loaded branch-spec
	// document.
	SPC001 = "SPC001"

	// SPC002 indicates an unknown test/pattern kind name in a
	// branch-spec document.
	SPC002 = "SPC002"

	// SPC003 indicates a branch-spec document is missing a required
	// body for one of its branches.
	SPC003 = "SPC003"
)
