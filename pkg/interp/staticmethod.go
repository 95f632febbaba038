package interp

import (
	"krait/pkg/runtime"
)

// StaticmethodGet implements the __get__ slot of the staticmethod
// builtin: it hands out the stored callable regardless of the instance
// and owner operands. The uninitialized-callable branch is profiled so
// the error path stays a distinguishable cold shape.
type StaticmethodGet struct {
	model         ObjectModel
	uninitialized *BranchProfile
	executed      bool
}

// NewStaticmethodGet creates the descriptor-get node. inv may be nil.
func NewStaticmethodGet(model ObjectModel, inv Invalidator) *StaticmethodGet {
	return &StaticmethodGet{
		model:         model,
		uninitialized: NewBranchProfile(inv, "staticmethod_get"),
	}
}

// Execute returns the staticmethod's callable. obj and owner are
// accepted for slot-signature compatibility and ignored.
func (n *StaticmethodGet) Execute(self *runtime.Staticmethod, obj, owner runtime.Value) (runtime.Value, error) {
	n.executed = true
	callable, ok := self.Callable()
	if !ok {
		n.uninitialized.Enter()
		return runtime.NoValue, n.model.RaiseError(runtime.BtRuntimeError,
			"uninitialized staticmethod object")
	}
	return callable, nil
}

// State is megamorphic once the uninitialized branch fired, monomorphic
// after any successful get.
func (n *StaticmethodGet) State() CacheState {
	switch {
	case !n.executed:
		return CacheStateUninitialized
	case n.uninitialized.Entered():
		return CacheStateMegamorphic
	default:
		return CacheStateMonomorphic
	}
}
