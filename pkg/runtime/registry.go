package runtime

import "fmt"

// Registry owns the canonical class object for every builtin type. It is
// the concrete object model and exception subsystem the dispatch nodes
// call out to.
type Registry struct {
	classes [btCount]*Class
}

// NewRegistry builds the builtin class graph.
func NewRegistry() *Registry {
	r := &Registry{}
	object := newBuiltinClass(BtObject)
	r.classes[BtObject] = object
	r.classes[BtType] = newBuiltinClass(BtType, object)

	baseExc := newBuiltinClass(BtBaseException, object)
	exc := newBuiltinClass(BtException, baseExc)
	r.classes[BtBaseException] = baseExc
	r.classes[BtException] = exc
	r.classes[BtTypeError] = newBuiltinClass(BtTypeError, exc)
	r.classes[BtRuntimeError] = newBuiltinClass(BtRuntimeError, exc)
	r.classes[BtValueError] = newBuiltinClass(BtValueError, exc)

	for _, bt := range []BuiltinType{BtInt, BtFloat, BtStr, BtBytes, BtList, BtTuple, BtDict, BtStaticmethod} {
		r.classes[bt] = newBuiltinClass(bt, object)
	}
	return r
}

// BuiltinClass returns the canonical class for a builtin type.
func (r *Registry) BuiltinClass(bt BuiltinType) *Class {
	if bt == BtNil || bt >= btCount {
		panic(fmt.Sprintf("no builtin class for type %d", bt))
	}
	return r.classes[bt]
}

// IsValidExceptionClass reports whether instances of the class may be
// raised: the class must have BaseException in its ancestor chain.
func (r *Registry) IsValidExceptionClass(c *Class) bool {
	base := r.classes[BtBaseException]
	for _, anc := range c.Mro() {
		if anc == base {
			return true
		}
	}
	return false
}

// InstantiateException constructs an exception instance of the given
// class with no arguments.
func (r *Registry) InstantiateException(c *Class) *ExceptionInstance {
	return NewException(c)
}

// RaiseError constructs a raised builtin exception with a formatted
// message.
func (r *Registry) RaiseError(bt BuiltinType, format string, args ...any) *Raised {
	msg := fmt.Sprintf(format, args...)
	return NewRaised(NewException(r.BuiltinClass(bt), StringValue(msg)))
}

// RaiseClass raises an exception class with no arguments, instantiating
// it on behalf of the raise site.
func (r *Registry) RaiseClass(c *Class) *Raised {
	return NewRaised(r.InstantiateException(c))
}
