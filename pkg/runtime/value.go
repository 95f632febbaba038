package runtime

import "fmt"

// ValueType discriminates the payload of a Value.
type ValueType uint8

const (
	// TypeNoValue marks an absent operand. It is distinct from TypeNone:
	// a raise statement with no cause operand carries NoValue, while
	// `raise E from None` carries an explicit None.
	TypeNoValue ValueType = iota
	TypeNone
	TypeInt
	TypeString
	TypeClass
	TypeException
)

// String returns a human-readable name for the ValueType.
func (vt ValueType) String() string {
	switch vt {
	case TypeNoValue:
		return "no value"
	case TypeNone:
		return "NoneType"
	case TypeInt:
		return "int"
	case TypeString:
		return "str"
	case TypeClass:
		return "type"
	case TypeException:
		return "exception"
	}
	return "unknown"
}

// Value is the tagged runtime value handed to the dispatch nodes. The
// zero Value is NoValue.
type Value struct {
	typ ValueType
	i   int64
	s   string
	cls *Class
	exc *ExceptionInstance
}

var (
	// NoValue is the absent-operand marker.
	NoValue = Value{}
	// None is the explicit none singleton.
	None = Value{typ: TypeNone}
)

func IntValue(i int64) Value     { return Value{typ: TypeInt, i: i} }
func StringValue(s string) Value { return Value{typ: TypeString, s: s} }
func ClassValue(c *Class) Value  { return Value{typ: TypeClass, cls: c} }
func ExceptionValue(e *ExceptionInstance) Value {
	return Value{typ: TypeException, exc: e}
}

func (v Value) Type() ValueType { return v.typ }

func (v Value) IsNoValue() bool   { return v.typ == TypeNoValue }
func (v Value) IsNone() bool      { return v.typ == TypeNone }
func (v Value) IsClass() bool     { return v.typ == TypeClass }
func (v Value) IsException() bool { return v.typ == TypeException }

func (v Value) AsInt() int64 {
	if v.typ != TypeInt {
		panic(fmt.Sprintf("AsInt on %s value", v.typ))
	}
	return v.i
}

func (v Value) AsString() string {
	if v.typ != TypeString {
		panic(fmt.Sprintf("AsString on %s value", v.typ))
	}
	return v.s
}

func (v Value) AsClass() *Class {
	if v.typ != TypeClass {
		panic(fmt.Sprintf("AsClass on %s value", v.typ))
	}
	return v.cls
}

func (v Value) AsException() *ExceptionInstance {
	if v.typ != TypeException {
		panic(fmt.Sprintf("AsException on %s value", v.typ))
	}
	return v.exc
}

// Name returns the name used when a value is interpolated into an error
// message: the class's own name for class values, the name of the
// value's type otherwise.
func (v Value) Name() string {
	switch v.typ {
	case TypeClass:
		return v.cls.Name()
	case TypeException:
		return v.exc.Class().Name()
	default:
		return v.typ.String()
	}
}

// Inspect returns a debug representation of the value.
func (v Value) Inspect() string {
	switch v.typ {
	case TypeNoValue:
		return "<no value>"
	case TypeNone:
		return "None"
	case TypeInt:
		return fmt.Sprintf("%d", v.i)
	case TypeString:
		return fmt.Sprintf("%q", v.s)
	case TypeClass:
		return fmt.Sprintf("<class %s>", v.cls.Name())
	case TypeException:
		return fmt.Sprintf("<%s exception>", v.exc.Class().Name())
	}
	return "<unknown>"
}

// IsType reports whether the value is a class object. Guard predicate,
// no side effects.
func IsType(v Value) bool { return v.typ == TypeClass }

// IsSubtype reports whether the value is a class that has owner in its
// ancestor chain. Guard predicate, no side effects.
func IsSubtype(v Value, owner *Class) bool {
	if v.typ != TypeClass {
		return false
	}
	for _, c := range v.cls.Mro() {
		if c == owner {
			return true
		}
	}
	return false
}
