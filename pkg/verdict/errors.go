// Package verdict implements the verdict and error taxonomies: local/global
// conformance verdicts, filter-elimination reasons, inconclusiveness
// causes, and the three error classes below.
package verdict

import (
	"errors"
	"fmt"
)

// Sentinel context errors: raised when an identifier cannot be
// resolved against a GeneralContext. These are always surfaced, never
// recovered from internally.
var (
	ErrUnknownLifeline = errors.New("unknown lifeline")
	ErrUnknownMessage  = errors.New("unknown message")
	ErrUnknownGate     = errors.New("unknown gate")
)

// ErrPreconditionViolation is the sentinel behind every structural
// precondition violation: certain analyses (Hide, local
// analysis) require the absence of And, CoReg or gates. A violation
// aborts the run before any driver starts, it is never retried or
// silently downgraded.
var ErrPreconditionViolation = errors.New("structural precondition violated")

// PreconditionError reports which structural precondition a term failed,
// and which analysis required it.
type PreconditionError struct {
	Analysis string // e.g. "Hide", "LocalAnalysis"
	Reason   string // e.g. "term contains a gate", "term contains And"
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Analysis, e.Reason)
}

func (e *PreconditionError) Unwrap() error { return ErrPreconditionViolation }

// NewPreconditionError constructs a PreconditionError for the given
// analysis/reason pair.
func NewPreconditionError(analysis, reason string) error {
	return &PreconditionError{Analysis: analysis, Reason: reason}
}

// ContextError wraps one of the Err{Unknown,Lifeline,Message,Gate} sentinels
// with the offending name, wrapping a sentinel with call-site detail via
// fmt.Errorf's %w.
type ContextError struct {
	sentinel error
	Name     string
}

func (e *ContextError) Error() string {
	return fmt.Sprintf("%s: %q", e.sentinel.Error(), e.Name)
}

func (e *ContextError) Unwrap() error { return e.sentinel }

// UnknownLifeline builds a ContextError for a lifeline name that failed to
// resolve against a GeneralContext.
func UnknownLifeline(name string) error { return &ContextError{sentinel: ErrUnknownLifeline, Name: name} }

// UnknownMessage builds a ContextError for a message name that failed to
// resolve against a GeneralContext.
func UnknownMessage(name string) error { return &ContextError{sentinel: ErrUnknownMessage, Name: name} }

// UnknownGate builds a ContextError for a gate name that failed to resolve
// against a GeneralContext.
func UnknownGate(name string) error { return &ContextError{sentinel: ErrUnknownGate, Name: name} }

// ParseError wraps an error from the (out-of-scope) external surface-syntax
// parser with a textual location. The core never produces
// these itself; it is part of the taxonomy so that callers gluing a parser
// in front of this engine have a consistent error shape to surface.
type ParseError struct {
	Location string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %s: %v", e.Location, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
