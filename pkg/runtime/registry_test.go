package runtime

import (
	"testing"
)

func TestBuiltinClassGraph(t *testing.T) {
	r := NewRegistry()

	typeErr := r.BuiltinClass(BtTypeError)
	if typeErr.Name() != "TypeError" || !typeErr.IsBuiltin() {
		t.Errorf("unexpected TypeError class: %s (builtin=%v)", typeErr.Name(), typeErr.IsBuiltin())
	}
	if !IsSubtype(ClassValue(typeErr), r.BuiltinClass(BtBaseException)) {
		t.Errorf("expected TypeError to be a subtype of BaseException")
	}
	if !IsSubtype(ClassValue(r.BuiltinClass(BtInt)), r.BuiltinClass(BtObject)) {
		t.Errorf("expected int to be a subtype of object")
	}
	if IsSubtype(ClassValue(r.BuiltinClass(BtInt)), r.BuiltinClass(BtBaseException)) {
		t.Errorf("expected int not to be a subtype of BaseException")
	}
}

func TestIsValidExceptionClass(t *testing.T) {
	r := NewRegistry()

	if !r.IsValidExceptionClass(r.BuiltinClass(BtRuntimeError)) {
		t.Errorf("expected RuntimeError to be a valid exception class")
	}
	custom := NewHeapClass("Boom", r.BuiltinClass(BtException))
	if !r.IsValidExceptionClass(custom) {
		t.Errorf("expected a heap subclass of Exception to be valid")
	}
	if r.IsValidExceptionClass(r.BuiltinClass(BtInt)) {
		t.Errorf("expected int not to be a valid exception class")
	}
}

func TestRaiseClassInstantiates(t *testing.T) {
	r := NewRegistry()
	cls := r.BuiltinClass(BtValueError)
	raised := r.RaiseClass(cls)
	if raised.Exception().Class() != cls {
		t.Errorf("expected raised exception to be an instance of ValueError")
	}
	if len(raised.Exception().Args()) != 0 {
		t.Errorf("expected class raise to instantiate with no arguments")
	}
}
