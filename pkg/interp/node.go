// Package interp implements the self-optimizing dispatch nodes of the
// interpreter core. Each node starts general, observes the shapes of the
// values it is given, and commits to cheaper paths; the first
// observation of any new shape is reported outward before the node acts
// on it, so compiled code built on the previous shape can be discarded.
package interp

import (
	"krait/pkg/runtime"
)

// debugSpecialize turns on specialization tracing.
const debugSpecialize = false

// CacheState classifies how far a node's specialization has drifted.
type CacheState uint8

const (
	CacheStateUninitialized CacheState = iota // no shape observed yet
	CacheStateMonomorphic                     // single shape, no error shapes
	CacheStatePolymorphic                     // multiple non-error shapes
	CacheStateMegamorphic                     // at least one error shape
)

// String returns a human-readable name for the CacheState.
func (cs CacheState) String() string {
	switch cs {
	case CacheStateUninitialized:
		return "UNINITIALIZED"
	case CacheStateMonomorphic:
		return "MONOMORPHIC"
	case CacheStatePolymorphic:
		return "POLYMORPHIC"
	case CacheStateMegamorphic:
		return "MEGAMORPHIC"
	}
	return "UNKNOWN"
}

// Node is the read-only query surface every specializing node exposes.
// The classification is diagnostic; correctness never depends on it.
type Node interface {
	State() CacheState
}

// Invalidator receives the "this node's specialization shape changed"
// notification. The host's compiled-code substrate hangs off this; an
// embedder without one uses the no-op default. Notifications may be
// redundant under races, so implementations must be idempotent.
type Invalidator interface {
	Invalidate()
}

// InvalidatorFunc adapts a plain function to Invalidator.
type InvalidatorFunc func()

func (f InvalidatorFunc) Invalidate() { f() }

// NopInvalidator is the default when no compiled-code substrate is
// attached.
var NopInvalidator Invalidator = InvalidatorFunc(func() {})

// ObjectModel is the slice of the surrounding object model and exception
// subsystem the nodes call out to.
type ObjectModel interface {
	BuiltinClass(bt runtime.BuiltinType) *runtime.Class
	IsValidExceptionClass(c *runtime.Class) bool
	InstantiateException(c *runtime.Class) *runtime.ExceptionInstance
	RaiseError(bt runtime.BuiltinType, format string, args ...any) *runtime.Raised
	RaiseClass(c *runtime.Class) *runtime.Raised
}

// ExceptionContext exposes the exception currently being handled by the
// executing control-flow context.
type ExceptionContext interface {
	CaughtException() *runtime.Raised
}
