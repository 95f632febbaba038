package interp

import (
	"fmt"

	"krait/pkg/runtime"
)

// Specialization state of a NewWrapper, packed into one byte. The high
// nibble holds monotonic shape flags, the low nibble caches an observed
// ancestor-chain length. A cached length equal to mroLengthMask means
// the chain was too long to cache.
const (
	stateNotSubtype  byte = 0b10000000
	stateNotAType    byte = 0b01000000
	stateUnsafeNew   byte = 0b00100000
	stateUnstableMro byte = 0b00010000
	mroLengthMask    byte = 0b00001111
)

// ConstructFunc is the wrapped generic construction entry point.
type ConstructFunc func(args []runtime.Value) (runtime.Value, error)

// OwnerFunc resolves the builtin type that owns the wrapped slot from
// the metadata of the surrounding callable. Consulted once.
type OwnerFunc func() runtime.BuiltinType

// NewWrapper guards a builtin type's generic __new__ slot: a subclass
// may reuse it only when no builtin or foreign ancestor between the
// subclass and the owner takes over construction. The node specializes
// on the shapes it observes - argument kind, subtype relation, chain
// length - and reports each new shape before acting on it.
type NewWrapper struct {
	model       ObjectModel
	inv         Invalidator
	construct   ConstructFunc
	resolve     OwnerFunc
	owner       runtime.BuiltinType
	state       byte
	transitions uint32
}

// WrapNew creates a NewWrapper around the construction entry point owned
// by the builtin type resolve yields. inv may be nil.
func WrapNew(model ObjectModel, inv Invalidator, resolve OwnerFunc, construct ConstructFunc) *NewWrapper {
	if inv == nil {
		inv = NopInvalidator
	}
	return &NewWrapper{model: model, inv: inv, construct: construct, resolve: resolve}
}

// Execute runs the safety check on a construction call's arguments and,
// when the check passes, delegates to the wrapped construction exactly
// once.
func (n *NewWrapper) Execute(args []runtime.Value) (runtime.Value, error) {
	if len(args) == 0 {
		// The signature check upstream guarantees argument 0; its absence
		// is a host bug, not a program error.
		panic(fmt.Sprintf("%s.__new__ called without arguments", n.ownerType().Name()))
	}
	arg0 := args[0]

	if !runtime.IsType(arg0) {
		if n.state&stateNotAType == 0 {
			n.specialize()
			n.state |= stateNotAType
		}
		observeNewCheck("not_a_type")
		return runtime.NoValue, n.model.RaiseError(runtime.BtTypeError,
			"%s.__new__(X): X is not a type object (%s)", n.ownerType().Name(), arg0.Name())
	}

	cls := arg0.AsClass()
	ownerClass := n.model.BuiltinClass(n.ownerType())
	if !runtime.IsSubtype(arg0, ownerClass) {
		if n.state&stateNotSubtype == 0 {
			n.specialize()
			n.state |= stateNotSubtype
		}
		observeNewCheck("not_a_subtype")
		return runtime.NoValue, n.model.RaiseError(runtime.BtTypeError,
			"%s.__new__(%s): %s is not a subtype of %s",
			n.ownerType().Name(), cls.Name(), cls.Name(), n.ownerType().Name())
	}

	// TODO(mro-walk): we walk the full ancestor chain here even though
	// only the bases should matter; checkSafeNew tests pin the current
	// behavior so a narrowing shows up as a test failure.
	mro := cls.Mro()
	if n.state&mroLengthMask == 0 {
		n.specialize()
		if len(mro) < int(mroLengthMask) {
			n.state |= byte(len(mro))
		} else {
			n.state |= mroLengthMask
		}
	}

	var safeNew bool
	if int(n.state&mroLengthMask) == len(mro) {
		// Length matches the cached one, bounded walk.
		safeNew = n.checkSafeNewBounded(mro, int(n.state&mroLengthMask))
	} else {
		if n.state&stateUnstableMro == 0 {
			n.specialize()
			n.state |= stateUnstableMro
		}
		// Chain too long to cache or different from the cached one.
		safeNew = n.checkSafeNew(mro)
	}

	if !safeNew {
		if n.state&stateUnsafeNew == 0 {
			n.specialize()
			n.state |= stateUnsafeNew
		}
		observeNewCheck("unsafe")
		return runtime.NoValue, n.model.RaiseError(runtime.BtTypeError,
			"%s.__new__(%s) is not safe, use %s.__new__()",
			n.ownerType().Name(), cls.Name(), cls.Name())
	}

	observeNewCheck("ok")
	return n.construct(args)
}

// checkSafeNewBounded is the fixed-length fast path: length was observed
// stable, so a compiling host can fully unroll the walk.
func (n *NewWrapper) checkSafeNewBounded(mro []*runtime.Class, length int) bool {
	for i := 0; i < length; i++ {
		base := mro[i]
		if base.IsBuiltin() {
			return base.Builtin() == n.ownerType()
		} else if base.IsForeign() {
			// The native entry point should have been called instead.
			return false
		}
	}
	panic("there is no non-heap type in the mro, broken class")
}

func (n *NewWrapper) checkSafeNew(mro []*runtime.Class) bool {
	for i := 0; i < len(mro); i++ {
		base := mro[i]
		if base.IsBuiltin() {
			return base.Builtin() == n.ownerType()
		} else if base.IsForeign() {
			return false
		}
	}
	panic("there is no non-heap type in the mro, broken class")
}

// ownerType resolves the owning builtin type lazily, exactly once.
func (n *NewWrapper) ownerType() runtime.BuiltinType {
	if n.owner == runtime.BtNil {
		n.owner = n.resolve()
		if n.owner == runtime.BtNil {
			panic("slot wrapper has no constructing builtin type")
		}
	}
	return n.owner
}

// specialize reports the shape change before the new behavior executes.
func (n *NewWrapper) specialize() {
	n.inv.Invalidate()
	observeSpecialization("new_wrapper")
	n.transitions++
	if debugSpecialize {
		fmt.Printf("[NewWrapper] specialize: state=%08b transitions=%d\n", n.state, n.transitions)
	}
}

// State classifies the node's stability: error shapes dominate, an
// unstable chain length without errors is polymorphic, a single cached
// length is monomorphic.
func (n *NewWrapper) State() CacheState {
	switch {
	case n.state == 0:
		return CacheStateUninitialized
	case n.state&(stateNotAType|stateNotSubtype|stateUnsafeNew) != 0:
		return CacheStateMegamorphic
	case n.state&stateUnstableMro != 0:
		return CacheStatePolymorphic
	default:
		return CacheStateMonomorphic
	}
}

// Transitions returns how many shape changes the node has reported.
func (n *NewWrapper) Transitions() uint32 { return n.transitions }
