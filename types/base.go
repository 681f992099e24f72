// Package types models the JavaScript value space as a closed set of Go
// types. Every variant lives in this package; the unexported isValue method
// keeps the union sealed so a type switch over Value only has to consider the
// variants declared here.
package types

// Value is the interface all values implement
type Value interface {
	Type() TypeCode
	TypeOf() string   // result of the typeof operator
	Equal(Value) bool // strict equality (===)
	Truthy() bool     // ToBoolean

	isValue()
}

// UndefinedValue represents undefined
type UndefinedValue struct{}

// NullValue represents null
type NullValue struct{}

// Undefined and Null are the only instances of their types
var (
	Undefined = UndefinedValue{}
	Null      = NullValue{}
)

func (UndefinedValue) Type() TypeCode { return TYPE_UNDEFINED }
func (UndefinedValue) TypeOf() string { return "undefined" }
func (UndefinedValue) Truthy() bool   { return false }
func (UndefinedValue) isValue()       {}

// Equal checks strict equality
func (UndefinedValue) Equal(other Value) bool {
	_, ok := other.(UndefinedValue)
	return ok
}

func (NullValue) Type() TypeCode { return TYPE_NULL }
func (NullValue) TypeOf() string { return "object" }
func (NullValue) Truthy() bool   { return false }
func (NullValue) isValue()       {}

// Equal checks strict equality
func (NullValue) Equal(other Value) bool {
	_, ok := other.(NullValue)
	return ok
}

// IsNullish reports whether v is null or undefined
func IsNullish(v Value) bool {
	switch v.(type) {
	case UndefinedValue, NullValue:
		return true
	}
	return false
}

// IsPrimitive reports whether v is a primitive (not an object)
func IsPrimitive(v Value) bool {
	return v != nil && v.Type().IsPrimitive()
}
