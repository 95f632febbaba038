package runtime

// Staticmethod is the descriptor object behind the staticmethod builtin.
// A staticmethod created through the generic construction path exists
// before __init__ runs, so its callable slot may legally be unset when
// __get__ fires.
type Staticmethod struct {
	callable Value
	bound    bool
}

// NewStaticmethod creates a staticmethod wrapping the given callable.
func NewStaticmethod(callable Value) *Staticmethod {
	return &Staticmethod{callable: callable, bound: true}
}

// NewUninitializedStaticmethod creates a staticmethod whose callable
// slot was never written.
func NewUninitializedStaticmethod() *Staticmethod {
	return &Staticmethod{}
}

// Callable returns the wrapped callable and whether one was ever set.
func (s *Staticmethod) Callable() (Value, bool) {
	return s.callable, s.bound
}

// SetCallable writes the callable slot.
func (s *Staticmethod) SetCallable(v Value) {
	s.callable = v
	s.bound = true
}
