package runtime

import (
	"fmt"
	"strings"
)

// ExceptionInstance is a constructed exception object. The __cause__
// slot distinguishes "never written" from "written" because `raise E
// from None` suppresses the implicit context without recording a cause.
type ExceptionInstance struct {
	class           *Class
	args            []Value
	cause           *ExceptionInstance
	hasCause        bool
	suppressContext bool
}

// NewException constructs an exception instance of the given class.
func NewException(class *Class, args ...Value) *ExceptionInstance {
	return &ExceptionInstance{class: class, args: args}
}

func (e *ExceptionInstance) Class() *Class { return e.class }
func (e *ExceptionInstance) Args() []Value { return e.args }

// Cause returns the recorded __cause__ and whether one was ever written.
func (e *ExceptionInstance) Cause() (*ExceptionInstance, bool) {
	return e.cause, e.hasCause
}

func (e *ExceptionInstance) SetCause(cause *ExceptionInstance) {
	e.cause = cause
	e.hasCause = true
}

func (e *ExceptionInstance) SuppressContext() bool     { return e.suppressContext }
func (e *ExceptionInstance) SetSuppressContext(b bool) { e.suppressContext = b }

// Message returns the exception's first string argument, empty if none.
func (e *ExceptionInstance) Message() string {
	if len(e.args) > 0 && e.args[0].Type() == TypeString {
		return e.args[0].AsString()
	}
	return ""
}

// Raised is the carrier that moves a language-level exception through Go
// error returns. It separates the exception object (visible to the
// executing program) from per-raise trace state: once a carrier's trace
// has been materialized, re-raising the exception must use a fresh
// carrier so new frames can still be captured.
type Raised struct {
	exc          *ExceptionInstance
	materialized bool
}

// NewRaised wraps an exception instance in a fresh carrier.
func NewRaised(exc *ExceptionInstance) *Raised {
	return &Raised{exc: exc}
}

func (r *Raised) Exception() *ExceptionInstance { return r.exc }

// Materialize marks the trace as exposed to the executing program.
func (r *Raised) Materialize()       { r.materialized = true }
func (r *Raised) Materialized() bool { return r.materialized }

func (r *Raised) Error() string {
	msg := r.exc.Message()
	if msg == "" {
		var parts []string
		for _, a := range r.exc.args {
			parts = append(parts, a.Inspect())
		}
		msg = strings.Join(parts, ", ")
	}
	if msg == "" {
		return r.exc.class.Name()
	}
	return fmt.Sprintf("%s: %s", r.exc.class.Name(), msg)
}

// Reraise wraps an already-caught exception in a fresh carrier. The
// caught carrier's trace may have been materialized, so it is never
// rethrown directly.
func Reraise(caught *Raised) *Raised {
	return NewRaised(caught.exc)
}

// ExceptionState tracks the exception being handled by one control-flow
// context, the "currently caught exception" a bare raise re-raises.
type ExceptionState struct {
	caught *Raised
}

// CaughtException returns the exception currently being handled, nil if
// none.
func (s *ExceptionState) CaughtException() *Raised { return s.caught }

// SetCaught records that a handler started handling r. Entering a
// handler exposes the exception to the program, which materializes the
// carrier's trace.
func (s *ExceptionState) SetCaught(r *Raised) {
	if r != nil {
		r.Materialize()
	}
	s.caught = r
}

// Clear leaves the handler context.
func (s *ExceptionState) Clear() { s.caught = nil }
