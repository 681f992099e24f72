package types

import (
	"fmt"
	"strings"
)

// StrValue represents a string
type StrValue struct {
	val string
}

// NewStr creates a new string value
func NewStr(s string) StrValue {
	return StrValue{val: s}
}

// String returns the double-quoted literal. Quotes, backslashes and control
// characters are escaped so the result reads back as the same string.
func (s StrValue) String() string {
	return Quote(s.val)
}

// Type returns the type code for strings
func (s StrValue) Type() TypeCode {
	return TYPE_STR
}

// TypeOf returns "string"
func (s StrValue) TypeOf() string {
	return "string"
}

// Truthy returns whether the value is truthy
// Empty strings are falsy, non-empty strings are truthy
func (s StrValue) Truthy() bool {
	return len(s.val) > 0
}

// Equal compares two strings code unit by code unit
func (s StrValue) Equal(other Value) bool {
	if o, ok := other.(StrValue); ok {
		return s.val == o.val
	}
	return false
}

func (StrValue) isValue() {}

// Value returns the internal string value
func (s StrValue) Value() string {
	return s.val
}

// Quote renders s as a double-quoted string literal
func Quote(s string) string {
	var result strings.Builder
	result.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			result.WriteString(`\"`)
		case '\\':
			result.WriteString(`\\`)
		case '\n':
			result.WriteString(`\n`)
		case '\r':
			result.WriteString(`\r`)
		case '\t':
			result.WriteString(`\t`)
		case '\b':
			result.WriteString(`\b`)
		case '\f':
			result.WriteString(`\f`)
		case '\v':
			result.WriteString(`\v`)
		case 0x2028, 0x2029:
			result.WriteString(fmt.Sprintf(`\u%04x`, r))
		default:
			if r < 0x20 || r == 0x7f {
				result.WriteString(fmt.Sprintf(`\x%02x`, r))
			} else {
				result.WriteRune(r)
			}
		}
	}
	result.WriteByte('"')
	return result.String()
}
