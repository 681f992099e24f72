package types

import (
	"math"
	"strconv"
	"strings"
)

// NumberValue represents an IEEE 754 double
type NumberValue struct {
	Val float64
}

// Type returns the type code for numbers
func (n NumberValue) Type() TypeCode {
	return TYPE_NUMBER
}

// TypeOf returns "number"
func (n NumberValue) TypeOf() string {
	return "number"
}

// String returns the canonical string form (Number::toString)
func (n NumberValue) String() string {
	return FormatNumber(n.Val)
}

// Equal checks strict equality
// NaN is not equal to anything, and +0 === -0
func (n NumberValue) Equal(other Value) bool {
	otherNum, ok := other.(NumberValue)
	if !ok {
		return false
	}
	return n.Val == otherNum.Val
}

// Truthy returns false for 0, -0 and NaN
func (n NumberValue) Truthy() bool {
	return n.Val != 0 && !math.IsNaN(n.Val)
}

func (NumberValue) isValue() {}

// IsNaN returns true if the number is NaN
func (n NumberValue) IsNaN() bool {
	return math.IsNaN(n.Val)
}

// IsInf returns true if the number is infinite
func (n NumberValue) IsInf() bool {
	return math.IsInf(n.Val, 0)
}

// NewNumber creates a new NumberValue
func NewNumber(val float64) NumberValue {
	return NumberValue{Val: val}
}

// NaN returns the NaN number value
func NaN() NumberValue {
	return NumberValue{Val: math.NaN()}
}

// FormatNumber renders a float the way Number.prototype.toString does:
// shortest round-tripping digits, plain notation for exponents in [-7, 21),
// exponent notation with an explicit sign otherwise.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case f == 0:
		return "0"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f < 0:
		return "-" + FormatNumber(-f)
	}

	// d.ddddde±XX
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, expPart, _ := strings.Cut(s, "e")
	digits := strings.Replace(mantissa, ".", "", 1)
	exp, _ := strconv.Atoi(expPart)

	k := len(digits)
	n := exp + 1

	switch {
	case k <= n && n <= 21:
		return digits + strings.Repeat("0", n-k)
	case 0 < n && n <= 21:
		return digits[:n] + "." + digits[n:]
	case -6 < n && n <= 0:
		return "0." + strings.Repeat("0", -n) + digits
	}

	e := n - 1
	sign := "+"
	if e < 0 {
		sign = "-"
		e = -e
	}
	if k == 1 {
		return digits + "e" + sign + strconv.Itoa(e)
	}
	return digits[:1] + "." + digits[1:] + "e" + sign + strconv.Itoa(e)
}
