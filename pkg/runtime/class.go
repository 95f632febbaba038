package runtime

import "fmt"

// ClassKind separates classes the managed runtime fully controls from
// the ones it does not. Heap classes are created by executed programs,
// builtin classes belong to the runtime itself, foreign classes are
// provided by native extensions and the generic construction path must
// never instantiate them.
type ClassKind uint8

const (
	KindHeap ClassKind = iota
	KindBuiltin
	KindForeign
)

// BuiltinType enumerates the builtin types of the runtime. Builtin slot
// wrappers identify their owner by BuiltinType rather than by class
// pointer so the owner survives registry rebuilds.
type BuiltinType uint8

const (
	BtNil BuiltinType = iota // unresolved marker, not a real type
	BtObject
	BtType
	BtBaseException
	BtException
	BtTypeError
	BtRuntimeError
	BtValueError
	BtInt
	BtFloat
	BtStr
	BtBytes
	BtList
	BtTuple
	BtDict
	BtStaticmethod

	btCount
)

var builtinTypeNames = [btCount]string{
	BtNil:           "nil",
	BtObject:        "object",
	BtType:          "type",
	BtBaseException: "BaseException",
	BtException:     "Exception",
	BtTypeError:     "TypeError",
	BtRuntimeError:  "RuntimeError",
	BtValueError:    "ValueError",
	BtInt:           "int",
	BtFloat:         "float",
	BtStr:           "str",
	BtBytes:         "bytes",
	BtList:          "list",
	BtTuple:         "tuple",
	BtDict:          "dict",
	BtStaticmethod:  "staticmethod",
}

// Name returns the builtin type's name.
func (bt BuiltinType) Name() string {
	if bt >= btCount {
		return "unknown"
	}
	return builtinTypeNames[bt]
}

// classGeneration is bumped on every base mutation anywhere in the class
// graph. Cached linearizations are revalidated against it, so mutating
// one class invalidates the cached chains of all its descendants without
// the graph being walked.
var classGeneration uint64 = 1

// Class is a class object. Identity is pointer identity.
type Class struct {
	name    string
	kind    ClassKind
	builtin BuiltinType // meaningful only when kind == KindBuiltin
	bases   []*Class

	mro    []*Class
	mroGen uint64
}

// NewHeapClass creates a program-defined class.
func NewHeapClass(name string, bases ...*Class) *Class {
	return &Class{name: name, kind: KindHeap, bases: bases}
}

// NewForeignClass creates a class backed by a native extension.
func NewForeignClass(name string, bases ...*Class) *Class {
	return &Class{name: name, kind: KindForeign, bases: bases}
}

func newBuiltinClass(bt BuiltinType, bases ...*Class) *Class {
	return &Class{name: bt.Name(), kind: KindBuiltin, builtin: bt, bases: bases}
}

func (c *Class) Name() string    { return c.name }
func (c *Class) Kind() ClassKind { return c.kind }
func (c *Class) IsBuiltin() bool { return c.kind == KindBuiltin }
func (c *Class) IsForeign() bool { return c.kind == KindForeign }
func (c *Class) Bases() []*Class { return c.bases }

// Builtin returns the builtin type a builtin class belongs to, BtNil for
// heap and foreign classes.
func (c *Class) Builtin() BuiltinType {
	if c.kind != KindBuiltin {
		return BtNil
	}
	return c.builtin
}

// SetBases mutates the class's bases. Rare, but the dispatch nodes must
// tolerate the ancestor chain changing under them between calls.
func (c *Class) SetBases(bases ...*Class) {
	c.bases = bases
	classGeneration++
}

// Mro returns the linearized ancestor chain, starting with the class
// itself. The result is cached until the class graph is mutated.
func (c *Class) Mro() []*Class {
	if c.mro != nil && c.mroGen == classGeneration {
		return c.mro
	}
	mro, err := linearize(c)
	if err != nil {
		// A hierarchy that cannot be linearized means a broken object
		// model, not a program-level error.
		panic(fmt.Sprintf("cannot linearize ancestor chain of %s: %v", c.name, err))
	}
	c.mro = mro
	c.mroGen = classGeneration
	return mro
}

// Generation returns the current class-graph generation.
func Generation() uint64 { return classGeneration }
