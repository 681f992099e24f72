package types

// BoolValue represents a boolean
type BoolValue struct {
	Val bool
}

// Type returns the type code for booleans
func (b BoolValue) Type() TypeCode {
	return TYPE_BOOL
}

// TypeOf returns "boolean"
func (b BoolValue) TypeOf() string {
	return "boolean"
}

// String returns the literal representation
func (b BoolValue) String() string {
	if b.Val {
		return "true"
	}
	return "false"
}

// Equal checks strict equality
func (b BoolValue) Equal(other Value) bool {
	otherBool, ok := other.(BoolValue)
	if !ok {
		return false
	}
	return b.Val == otherBool.Val
}

// Truthy returns the boolean itself
func (b BoolValue) Truthy() bool {
	return b.Val
}

func (BoolValue) isValue() {}

// NewBool creates a new BoolValue
func NewBool(val bool) BoolValue {
	return BoolValue{Val: val}
}

// True and False are the two boolean values
var (
	True  = BoolValue{Val: true}
	False = BoolValue{Val: false}
)
