package types

import (
	"fmt"
	"time"
)

// Property is a single own property of a plain object
type Property struct {
	Key   string
	Value Value
}

// PrimitiveHook models a Symbol.toPrimitive method. It either produces a
// value or fails the way a throwing method would.
type PrimitiveHook func() (Value, error)

// ObjectValue represents a plain object
type ObjectValue struct {
	props       []Property
	toPrimitive PrimitiveHook
}

// NewObject creates a plain object with the given own properties
func NewObject(props []Property) *ObjectValue {
	return &ObjectValue{props: props}
}

// NewObjectWithHook creates a plain object that exposes a primitive
// coercion hook
func NewObjectWithHook(props []Property, hook PrimitiveHook) *ObjectValue {
	return &ObjectValue{props: props, toPrimitive: hook}
}

// Type returns the type code for plain objects
func (o *ObjectValue) Type() TypeCode {
	return TYPE_OBJECT
}

// TypeOf returns "object"
func (o *ObjectValue) TypeOf() string {
	return "object"
}

// Equal is identity
func (o *ObjectValue) Equal(other Value) bool {
	other2, ok := other.(*ObjectValue)
	return ok && o == other2
}

// Truthy returns true
func (o *ObjectValue) Truthy() bool {
	return true
}

func (*ObjectValue) isValue() {}

// Properties returns the own properties in insertion order
func (o *ObjectValue) Properties() []Property {
	return o.props
}

// Get returns the value of an own property
func (o *ObjectValue) Get(key string) (Value, bool) {
	for _, p := range o.props {
		if p.Key == key {
			return p.Value, true
		}
	}
	return nil, false
}

// Hook returns the primitive coercion hook, if the object has one
func (o *ObjectValue) Hook() (PrimitiveHook, bool) {
	return o.toPrimitive, o.toPrimitive != nil
}

// DateValue represents a Date object
type DateValue struct {
	t time.Time
}

// NewDate creates a Date for t
func NewDate(t time.Time) *DateValue {
	return &DateValue{t: t}
}

// NewDateFromMillis creates a Date from milliseconds since the epoch
func NewDateFromMillis(ms int64) *DateValue {
	return &DateValue{t: time.UnixMilli(ms).UTC()}
}

// Type returns the type code for dates
func (d *DateValue) Type() TypeCode {
	return TYPE_DATE
}

// TypeOf returns "object"
func (d *DateValue) TypeOf() string {
	return "object"
}

// Equal is identity; a boxed date is the date itself
func (d *DateValue) Equal(other Value) bool {
	return sameObject(d, other)
}

// Truthy returns true
func (d *DateValue) Truthy() bool {
	return true
}

func (*DateValue) isValue() {}

// Time returns the instant the date holds
func (d *DateValue) Time() time.Time {
	return d.t
}

// Millis returns milliseconds since the epoch
func (d *DateValue) Millis() int64 {
	return d.t.UnixMilli()
}

// String returns Date.prototype.toString() in UTC
func (d *DateValue) String() string {
	return d.t.UTC().Format("Mon Jan 02 2006 15:04:05 GMT+0000 (Coordinated Universal Time)")
}

// ISOString returns Date.prototype.toISOString()
func (d *DateValue) ISOString() string {
	return d.t.UTC().Format("2006-01-02T15:04:05.000Z")
}

// FunctionValue represents a function. Functions are carried through the
// value model but have no loose-equality rules of their own.
type FunctionValue struct {
	name string
}

// NewFunction creates a function value with a name (may be empty)
func NewFunction(name string) *FunctionValue {
	return &FunctionValue{name: name}
}

// Type returns the type code for functions
func (f *FunctionValue) Type() TypeCode {
	return TYPE_FUNCTION
}

// TypeOf returns "function"
func (f *FunctionValue) TypeOf() string {
	return "function"
}

// Equal is identity
func (f *FunctionValue) Equal(other Value) bool {
	o, ok := other.(*FunctionValue)
	return ok && f == o
}

// Truthy returns true
func (f *FunctionValue) Truthy() bool {
	return true
}

func (*FunctionValue) isValue() {}

// Name returns the function name
func (f *FunctionValue) Name() string {
	return f.name
}

// String returns Function.prototype.toString() for a native-looking function
func (f *FunctionValue) String() string {
	return fmt.Sprintf("function %s() { [native code] }", f.name)
}
