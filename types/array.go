package types

// ArrayValue represents an array object. Arrays are objects, so strict
// equality is identity and values are always handled through *ArrayValue.
type ArrayValue struct {
	elements []Value
}

// NewArray creates a new array holding elements
func NewArray(elements []Value) *ArrayValue {
	return &ArrayValue{elements: elements}
}

// NewEmptyArray creates an empty array
func NewEmptyArray() *ArrayValue {
	return &ArrayValue{elements: []Value{}}
}

// MaxNesting bounds how deeply values nest. The reader rejects deeper input
// and the classifier unwraps at least this far.
const MaxNesting = 512

// Nest wraps v in depth single-element arrays: Nest(0, 2) is [[0]]
func Nest(v Value, depth int) Value {
	for i := 0; i < depth; i++ {
		v = NewArray([]Value{v})
	}
	return v
}

// NestedEmpty returns an empty array nested depth-1 times: NestedEmpty(1) is [],
// NestedEmpty(3) is [[[]]]
func NestedEmpty(depth int) Value {
	if depth < 1 {
		depth = 1
	}
	return Nest(NewEmptyArray(), depth-1)
}

// Type returns the type code for arrays
func (a *ArrayValue) Type() TypeCode {
	return TYPE_ARRAY
}

// TypeOf returns "object"
func (a *ArrayValue) TypeOf() string {
	return "object"
}

// Equal is identity
func (a *ArrayValue) Equal(other Value) bool {
	o, ok := other.(*ArrayValue)
	return ok && a == o
}

// Truthy returns true; every object is truthy, even []
func (a *ArrayValue) Truthy() bool {
	return true
}

func (*ArrayValue) isValue() {}

// Len returns the length of the array
func (a *ArrayValue) Len() int {
	return len(a.elements)
}

// Get returns the element at index (0-based), or undefined when out of range
func (a *ArrayValue) Get(index int) Value {
	if index < 0 || index >= len(a.elements) {
		return Undefined
	}
	if a.elements[index] == nil {
		return Undefined
	}
	return a.elements[index]
}

// Elements returns the internal slice for iteration
func (a *ArrayValue) Elements() []Value {
	return a.elements
}

// Sole returns the only element of a single-element array
func (a *ArrayValue) Sole() (Value, bool) {
	if len(a.elements) != 1 {
		return nil, false
	}
	return a.Get(0), true
}
