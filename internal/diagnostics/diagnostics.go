// Package diagnostics implements the shared error/warning sink described in
// spec.md §4.5 and §7: a per-translation Sink (created by NewSink and passed
// explicitly; it holds no lock, so one Sink serves one goroutine) of
// ordered error and warning lists, with fail-fast and collect modes, and
// an end-of-run error-taxonomy histogram.
package diagnostics

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/funvibe/swiftkt/internal/token"
)

// Phase is the pipeline stage that produced a diagnostic.
type Phase string

const (
	PhaseDecode    Phase = "decode"
	PhaseTranslate Phase = "translate"
	PhaseEmit      Phase = "emit"
)

// ErrorCode is one of the closed set of error kinds from spec.md §7.
type ErrorCode string

const (
	// ErrMalformedDump: the decoder saw structurally invalid input
	// (unbalanced parentheses outside the Dictionary-Expression workaround).
	ErrMalformedDump ErrorCode = "E001"
	// ErrUnexpectedASTStructure: the translator saw a RawTree whose shape
	// did not match expectations for its name.
	ErrUnexpectedASTStructure ErrorCode = "E002"
	// ErrUnexpectedIRShape: the emitter saw an IR node violating its
	// invariants.
	ErrUnexpectedIRShape ErrorCode = "E003"
	// ErrUnsupportedConstruct: syntactically valid input this translator
	// knowingly refuses (80-bit floats, non-decimal integer literals,
	// Int64.min, ...).
	ErrUnsupportedConstruct ErrorCode = "E004"
	// ErrExternalFailure: a Shell or FileIO collaborator failure.
	ErrExternalFailure ErrorCode = "E005"
	// ErrInternal: a panic recovered at a pipeline boundary. Not part of
	// the spec's taxonomy proper; kept separate so it never silently
	// collides with a real translation error in the histogram.
	ErrInternal ErrorCode = "E999"
)

var templates = map[ErrorCode]string{
	ErrMalformedDump:          "malformed dump: %s",
	ErrUnexpectedASTStructure: "unexpected AST structure for %q: %s",
	ErrUnexpectedIRShape:      "unexpected IR shape for %q: %s",
	ErrUnsupportedConstruct:   "unsupported construct: %s",
	ErrExternalFailure:        "external failure: %s",
	ErrInternal:               "internal error: %s",
}

// DiagnosticError is a single reported error or warning.
type DiagnosticError struct {
	Code     ErrorCode
	Phase    Phase
	NodeName string // offending RawTree.Name or IR node kind, for the histogram
	Args     []interface{}
	Pos      token.Pos
	File     string
	Printed  string // the offending subtree's printed form, for context
}

func (e *DiagnosticError) Error() string {
	template, ok := templates[e.Code]
	if !ok {
		template = "%s"
	}
	message := fmt.Sprintf(template, e.Args...)

	prefix := ""
	if e.File != "" {
		prefix = e.File + ": "
	}
	phaseStr := ""
	if e.Phase != "" {
		phaseStr = fmt.Sprintf("[%s] ", e.Phase)
	}

	var loc string
	if !e.Pos.IsZero() {
		loc = fmt.Sprintf("%d:%d ", e.Pos.Line, e.Pos.Column)
	}

	result := fmt.Sprintf("%s%s%serror [%s]: %s", prefix, phaseStr, loc, e.Code, message)
	if e.Printed != "" {
		result += "\n  in: " + e.Printed
	}
	return result
}

func NewError(phase Phase, code ErrorCode, nodeName string, pos token.Pos, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{Code: code, Phase: phase, NodeName: nodeName, Pos: pos, Args: args}
}

// StopTranslation is the panic payload used to unwind a single translation
// when the sink is in fail-fast mode; the Driver recovers it at the
// boundary of a single file's translation (never across an entire batch).
type StopTranslation struct {
	Err *DiagnosticError
}

func (s StopTranslation) Error() string { return s.Err.Error() }

// Sink accumulates diagnostics for one or more translations. Per spec.md
// §5 it is written up as process-wide shared mutable state; this
// implementation instead threads a *Sink explicitly through the pipeline
// (spec.md §9's suggested TranslationContext concession), and callers who
// really want the legacy global-singleton behavior can share one Sink
// across concurrent translations — correctness of interleaved diagnostics
// in that case is the caller's responsibility, exactly as spec.md §5
// describes.
type Sink struct {
	ShouldStopAtFirstError     bool
	ShouldAvoidUnicodeChars    bool

	errors   []*DiagnosticError
	warnings []*DiagnosticError
}

func NewSink() *Sink {
	return &Sink{}
}

// Report records an error. In fail-fast mode it panics with StopTranslation
// so the current translation unwinds immediately; callers that want to
// continue (collect mode) get a normal append-and-return.
func (s *Sink) Report(err *DiagnosticError) {
	s.errors = append(s.errors, err)
	if s.ShouldStopAtFirstError {
		panic(StopTranslation{Err: err})
	}
}

// Warn records a warning. Warnings never abort, even in fail-fast mode.
func (s *Sink) Warn(err *DiagnosticError) {
	s.warnings = append(s.warnings, err)
}

func (s *Sink) Errors() []*DiagnosticError   { return append([]*DiagnosticError(nil), s.errors...) }
func (s *Sink) Warnings() []*DiagnosticError { return append([]*DiagnosticError(nil), s.warnings...) }

// HasErrorsOrWarnings implements the testable property of spec.md §8.7.
func (s *Sink) HasErrorsOrWarnings() bool {
	return len(s.errors) > 0 || len(s.warnings) > 0
}

// HistogramEntry is one row of the end-of-run error-taxonomy histogram.
type HistogramEntry struct {
	NodeName string
	Count    int
}

// Histogram groups recorded errors by offending node name (RawTree.Name
// for translator errors, IR node kind for emitter errors) and sorts by
// descending count, per spec.md §4.5.
func (s *Sink) Histogram() []HistogramEntry {
	counts := map[string]int{}
	for _, e := range s.errors {
		counts[e.NodeName]++
	}
	entries := make([]HistogramEntry, 0, len(counts))
	for name, count := range counts {
		entries = append(entries, HistogramEntry{NodeName: name, Count: count})
	}
	slices.SortStableFunc(entries, func(a, b HistogramEntry) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		switch {
		case a.NodeName < b.NodeName:
			return -1
		case a.NodeName > b.NodeName:
			return 1
		default:
			return 0
		}
	})
	return entries
}

// Recover catches a StopTranslation panic raised by Report in fail-fast
// mode and swallows it, leaving the error already recorded in s.errors.
// Any other panic value is re-raised. Intended to be deferred once at the
// top of a single-file translation.
func (s *Sink) Recover() {
	if r := recover(); r != nil {
		if _, ok := r.(StopTranslation); ok {
			return
		}
		panic(r)
	}
}
