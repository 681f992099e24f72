package types

// TypeCode identifies the variant of a Value
type TypeCode int

const (
	TYPE_UNDEFINED TypeCode = iota
	TYPE_NULL
	TYPE_BOOL
	TYPE_NUMBER
	TYPE_BIGINT
	TYPE_STR
	TYPE_SYMBOL
	TYPE_ARRAY
	TYPE_WRAPPED
	TYPE_OBJECT
	TYPE_DATE
	TYPE_FUNCTION
)

// String returns the string representation of the type code
func (t TypeCode) String() string {
	switch t {
	case TYPE_UNDEFINED:
		return "UNDEFINED"
	case TYPE_NULL:
		return "NULL"
	case TYPE_BOOL:
		return "BOOL"
	case TYPE_NUMBER:
		return "NUMBER"
	case TYPE_BIGINT:
		return "BIGINT"
	case TYPE_STR:
		return "STR"
	case TYPE_SYMBOL:
		return "SYMBOL"
	case TYPE_ARRAY:
		return "ARRAY"
	case TYPE_WRAPPED:
		return "WRAPPED"
	case TYPE_OBJECT:
		return "OBJECT"
	case TYPE_DATE:
		return "DATE"
	case TYPE_FUNCTION:
		return "FUNCTION"
	default:
		return "UNKNOWN"
	}
}

// IsPrimitive reports whether values of this type are language primitives
// (everything except the object variants).
func (t TypeCode) IsPrimitive() bool {
	switch t {
	case TYPE_UNDEFINED, TYPE_NULL, TYPE_BOOL, TYPE_NUMBER, TYPE_BIGINT, TYPE_STR, TYPE_SYMBOL:
		return true
	default:
		return false
	}
}
