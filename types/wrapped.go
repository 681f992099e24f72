package types

// WrappedValue is a value passed through Object(...) depth times. Boxing a
// primitive yields its wrapper object; boxing an object yields the object
// itself at runtime, but the depth is kept so the rendering can show every
// Object(...) call that produced it.
type WrappedValue struct {
	inner Value
	depth int
	box   *WrappedValue // wrapper object this value re-wraps, nil for a fresh box
}

// Wrap applies Object(...) n times to v. Wrap(v, 0) is v itself; wrapping a
// WrappedValue adds to its depth instead of nesting wrappers. Arrays, plain
// objects and functions are returned unchanged because Object(o) === o.
func Wrap(v Value, n int) Value {
	if n <= 0 {
		return v
	}
	switch inner := v.(type) {
	case *WrappedValue:
		box := inner.box
		if box == nil {
			box = inner
		}
		return &WrappedValue{inner: inner.inner, depth: inner.depth + n, box: box}
	case UndefinedValue, NullValue:
		// Object(undefined) and Object(null) are fresh empty objects
		return NewObject(nil)
	case *ArrayValue, *ObjectValue, *FunctionValue:
		return v
	}
	return &WrappedValue{inner: v, depth: n}
}

// Type returns the type code for wrapped values
func (w *WrappedValue) Type() TypeCode {
	return TYPE_WRAPPED
}

// TypeOf returns "object"
func (w *WrappedValue) TypeOf() string {
	return "object"
}

// Equal is identity of the runtime object: Object(box) === box and
// Object(date) === date
func (w *WrappedValue) Equal(other Value) bool {
	return sameObject(w, other)
}

// Truthy returns true; wrapper objects are truthy even around false or ""
func (w *WrappedValue) Truthy() bool {
	return true
}

func (*WrappedValue) isValue() {}

// Inner returns the wrapped primitive (or Date)
func (w *WrappedValue) Inner() Value {
	return w.inner
}

// Depth returns how many times Object(...) was applied
func (w *WrappedValue) Depth() int {
	return w.depth
}

// Kind returns the type code of the wrapped value
func (w *WrappedValue) Kind() TypeCode {
	return w.inner.Type()
}

// ToPrimitive returns the boxed primitive, the way valueOf (or
// Symbol.prototype[Symbol.toPrimitive]) unwraps a wrapper object. Wrapped
// Dates have no primitive capability of their own.
func (w *WrappedValue) ToPrimitive() (Value, bool) {
	if _, isDate := w.inner.(*DateValue); isDate {
		return nil, false
	}
	return w.inner, true
}

// object returns the runtime object behind w. Boxing a Date yields the Date
// and boxing a wrapper yields that wrapper.
func (w *WrappedValue) object() Value {
	if !IsPrimitive(w.inner) {
		return w.inner
	}
	if w.box != nil {
		return w.box
	}
	return w
}

// identity maps wrapped objects onto the object they denote
func identity(v Value) Value {
	if w, ok := v.(*WrappedValue); ok {
		return w.object()
	}
	return v
}

// sameObject reports whether a and b are the same object at runtime
func sameObject(a, b Value) bool {
	x, y := identity(a), identity(b)
	if IsPrimitive(x) || IsPrimitive(y) {
		return false
	}
	return x == y
}
