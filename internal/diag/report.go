package diag

import (
	"encoding/json"
	"errors"

	"github.com/glyph-lang/patternc/internal/ast"
)

// Report is the canonical structured error this compiler returns from
// any fallible stage. Every error builder in this module constructs one
// and wraps it with WrapReport so it survives errors.As unwrapping all
// the way out to the CLI.
type Report struct {
	Schema  string         `json:"schema"` // always "patternc.error/v1"
	Code    string         `json:"code"`
	Phase   string         `json:"phase"` // "dtree", "decider", "choice", "codegen", "specfmt", "replc"
	Message string         `json:"message"`
	Span    *ast.Span      `json:"span,omitempty"`
	Data    map[string]any `json:"data,omitempty"`
	Fix     *Fix           `json:"fix,omitempty"`
}

// Fix is a suggested remediation with a confidence score in [0, 1].
type Fix struct {
	Suggestion string  `json:"suggestion"`
	Confidence float64 `json:"confidence"`
}

// ReportError wraps a Report as an error so it can travel through
// ordinary Go error-handling and still be recovered with AsReport.
type ReportError struct {
	Rep *Report
}

func (e *ReportError) Error() string {
	if e.Rep == nil {
		return "unknown error"
	}
	return e.Rep.Code + ": " + e.Rep.Message
}

// AsReport extracts the Report from an error chain, if any.
func AsReport(err error) (*Report, bool) {
	var re *ReportError
	if errors.As(err, &re) {
		return re.Rep, true
	}
	return nil, false
}

// WrapReport wraps r as an error. Returns nil for a nil Report so
// callers can write `return diag.WrapReport(r)` unconditionally.
func WrapReport(r *Report) error {
	if r == nil {
		return nil
	}
	return &ReportError{Rep: r}
}

// ToJSON renders the report as JSON, indented unless compact is set.
func (r *Report) ToJSON(compact bool) (string, error) {
	var data []byte
	var err error
	if compact {
		data, err = json.Marshal(r)
	} else {
		data, err = json.MarshalIndent(r, "", "  ")
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// New builds a Report for the given phase/code/message with no span or
// fix attached; callers set Span/Fix/Data afterward when they have them.
func New(phase, code, message string) *Report {
	return &Report{
		Schema:  "patternc.error/v1",
		Code:    code,
		Phase:   phase,
		Message: message,
		Data:    map[string]any{},
	}
}

// NewGeneric wraps an arbitrary Go error as a Report for a phase that
// doesn't have a dedicated code for this failure mode.
func NewGeneric(phase string, err error) *Report {
	return &Report{
		Schema:  "patternc.error/v1",
		Code:    "RUNTIME",
		Phase:   phase,
		Message: err.Error(),
		Data:    map[string]any{},
	}
}

// Panic raises a panic carrying a Report's code and message. spec.md §7
// treats these conditions as internal invariant violations rather than
// recoverable failures — they are never wrapped in a ReportError and
// returned to a caller — but the panic text still carries the same
// phase/code/message shape New would build, so the code constants stay
// tied to the sites that actually raise them.
func Panic(phase, code, message string) {
	r := New(phase, code, message)
	panic(r.Phase + "[" + r.Code + "]: " + r.Message)
}
