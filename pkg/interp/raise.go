package interp

import (
	"krait/pkg/runtime"
)

// RaiseNode dispatches a raise statement over the kinds of its two
// operands: the exception operand (absent, instance, class, or invalid)
// crossed with the cause operand (absent, instance, explicit None, or
// invalid). The kinds are fixed per source position, so the node keeps
// no shape cache; the profiles only report which branches turned out
// live.
type RaiseNode struct {
	model               ObjectModel
	hasCurrentException *ConditionProfile
	baseCheckFailed     *BranchProfile
	executed            bool
}

// NewRaiseNode creates a raise dispatcher. inv may be nil.
func NewRaiseNode(model ObjectModel, inv Invalidator) *RaiseNode {
	return &RaiseNode{
		model:               model,
		hasCurrentException: NewConditionProfile(inv, "raise"),
		baseCheckFailed:     NewBranchProfile(inv, "raise"),
	}
}

// Execute performs the raise. The returned error is the propagating
// exception; it is never nil.
func (n *RaiseNode) Execute(ctx ExceptionContext, exc, cause runtime.Value) error {
	n.executed = true
	switch {
	case exc.IsNoValue():
		return n.reraise(ctx)
	case exc.IsException():
		return n.raiseInstance(exc.AsException(), cause)
	case runtime.IsType(exc):
		return n.raiseClass(exc.AsClass(), cause)
	default:
		// Not an exception instance and not a class: the cause operand
		// is ignored entirely.
		observeRaiseForm("invalid")
		return n.raiseNoException()
	}
}

// reraise handles a bare `raise`.
func (n *RaiseNode) reraise(ctx ExceptionContext) error {
	observeRaiseForm("reraise")
	caught := ctx.CaughtException()
	if n.hasCurrentException.Profile(caught == nil) {
		return n.model.RaiseError(runtime.BtRuntimeError, "No active exception to reraise")
	}
	// The caught carrier's trace may already be materialized; rethrowing
	// it would stop it from capturing frames after the rethrow, so the
	// exception object goes out in a fresh carrier.
	return runtime.Reraise(caught)
}

func (n *RaiseNode) raiseInstance(exc *runtime.ExceptionInstance, cause runtime.Value) error {
	switch {
	case cause.IsNoValue():
		observeRaiseForm("instance")
		return runtime.NewRaised(exc)
	case cause.IsException():
		observeRaiseForm("instance_from_cause")
		exc.SetCause(cause.AsException())
		exc.SetSuppressContext(true)
		return runtime.NewRaised(exc)
	case cause.IsNone():
		observeRaiseForm("instance_from_none")
		exc.SetSuppressContext(true)
		return runtime.NewRaised(exc)
	default:
		observeRaiseForm("instance_bad_cause")
		return n.raiseBadCause()
	}
}

func (n *RaiseNode) raiseClass(cls *runtime.Class, cause runtime.Value) error {
	// Class validity is checked first: if both the class and the cause
	// are invalid, the class-validity error wins.
	if !n.model.IsValidExceptionClass(cls) {
		n.baseCheckFailed.Enter()
		observeRaiseForm("invalid")
		return n.raiseNoException()
	}
	switch {
	case cause.IsNoValue():
		observeRaiseForm("class")
		// The exception subsystem instantiates the class.
		return n.model.RaiseClass(cls)
	case cause.IsException():
		observeRaiseForm("class_from_cause")
		exc := n.model.InstantiateException(cls)
		exc.SetCause(cause.AsException())
		exc.SetSuppressContext(true)
		return runtime.NewRaised(exc)
	case cause.IsNone():
		observeRaiseForm("class_from_none")
		exc := n.model.InstantiateException(cls)
		exc.SetSuppressContext(true)
		return runtime.NewRaised(exc)
	default:
		observeRaiseForm("class_bad_cause")
		return n.raiseBadCause()
	}
}

func (n *RaiseNode) raiseNoException() error {
	return n.model.RaiseError(runtime.BtTypeError, "exceptions must derive from BaseException")
}

func (n *RaiseNode) raiseBadCause() error {
	return n.model.RaiseError(runtime.BtTypeError, "exception causes must derive from BaseException")
}

// State reflects only the profiles: the operand kinds are per-site
// constants, so a raise site is monomorphic unless an error branch fired.
func (n *RaiseNode) State() CacheState {
	switch {
	case !n.executed:
		return CacheStateUninitialized
	case n.baseCheckFailed.Entered():
		return CacheStateMegamorphic
	case n.hasCurrentException.SeenBoth():
		return CacheStatePolymorphic
	default:
		return CacheStateMonomorphic
	}
}
