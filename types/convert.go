package types

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

var (
	// ErrSymbolConversion is the TypeError raised when a symbol is converted
	// to a string or number
	ErrSymbolConversion = errors.New("cannot convert a Symbol value")

	// ErrBigIntConversion is the TypeError raised by ToNumber on a bigint
	ErrBigIntConversion = errors.New("cannot convert a BigInt value to a number")

	// ErrNotPrimitive is the TypeError raised when a primitive hook returns an object
	ErrNotPrimitive = errors.New("cannot convert object to primitive value")
)

// ToPrimitive converts v to a primitive using the default hint. Primitives
// are returned unchanged.
func ToPrimitive(v Value) (Value, error) {
	return toPrimitive(v, map[*ArrayValue]bool{})
}

func toPrimitive(v Value, seen map[*ArrayValue]bool) (Value, error) {
	switch x := v.(type) {
	case *ArrayValue:
		s, err := joinArray(x, seen)
		if err != nil {
			return nil, err
		}
		return NewStr(s), nil
	case *WrappedValue:
		if prim, ok := x.ToPrimitive(); ok {
			return prim, nil
		}
		return toPrimitive(x.inner, seen)
	case *ObjectValue:
		hook, ok := x.Hook()
		if !ok {
			return NewStr("[object Object]"), nil
		}
		prim, err := hook()
		if err != nil {
			return nil, err
		}
		if !IsPrimitive(prim) {
			return nil, ErrNotPrimitive
		}
		return prim, nil
	case *DateValue:
		return NewStr(x.String()), nil
	case *FunctionValue:
		return NewStr(x.String()), nil
	case nil:
		return Undefined, nil
	}
	return v, nil
}

// joinArray is Array.prototype.join(","). Arrays already being joined
// contribute "" the way engines break cycles.
func joinArray(a *ArrayValue, seen map[*ArrayValue]bool) (string, error) {
	if seen[a] {
		return "", nil
	}
	seen[a] = true
	defer delete(seen, a)

	parts := make([]string, len(a.elements))
	for i := range a.elements {
		elem := a.Get(i)
		if IsNullish(elem) {
			continue
		}
		prim, err := toPrimitive(elem, seen)
		if err != nil {
			return "", err
		}
		s, err := ToString(prim)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return strings.Join(parts, ","), nil
}

// ToString converts v to a string the way String(v) does for everything but
// symbols, which fail like implicit conversion does
func ToString(v Value) (string, error) {
	switch x := v.(type) {
	case UndefinedValue:
		return "undefined", nil
	case NullValue:
		return "null", nil
	case BoolValue:
		return x.String(), nil
	case NumberValue:
		return x.String(), nil
	case BigIntValue:
		return x.String(), nil
	case StrValue:
		return x.Value(), nil
	case SymbolValue:
		return "", ErrSymbolConversion
	}
	prim, err := ToPrimitive(v)
	if err != nil {
		return "", err
	}
	return ToString(prim)
}

// ToNumber converts v to a number
func ToNumber(v Value) (float64, error) {
	switch x := v.(type) {
	case UndefinedValue:
		return math.NaN(), nil
	case NullValue:
		return 0, nil
	case BoolValue:
		if x.Val {
			return 1, nil
		}
		return 0, nil
	case NumberValue:
		return x.Val, nil
	case StrValue:
		return StringToNumber(x.Value()), nil
	case BigIntValue:
		return 0, ErrBigIntConversion
	case SymbolValue:
		return 0, ErrSymbolConversion
	}
	prim, err := ToPrimitive(v)
	if err != nil {
		return 0, err
	}
	return ToNumber(prim)
}

func isJSSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', 0xa0, 0x1680, 0x2028, 0x2029,
		0x202f, 0x205f, 0x3000, 0xfeff:
		return true
	}
	return r >= 0x2000 && r <= 0x200a
}

func trimJSSpace(s string) string {
	return strings.TrimFunc(s, isJSSpace)
}

// scanDecimal returns the length of the longest prefix of s that is an
// unsigned decimal literal: digits, an optional fraction and an optional
// exponent. A lone "." or an exponent without digits is not consumed.
func scanDecimal(s string) int {
	i := 0
	intDigits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		intDigits++
	}
	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
			fracDigits++
		}
		if intDigits > 0 || fracDigits > 0 {
			i = j
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expStart := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > expStart {
			i = j
		}
	}
	return i
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

func splitSign(s string) (string, bool) {
	if strings.HasPrefix(s, "-") {
		return s[1:], true
	}
	return strings.TrimPrefix(s, "+"), false
}

func applySign(f float64, negative bool) float64 {
	if negative {
		return -f
	}
	return f
}

// StringToNumber is the string-to-number conversion used by Number(s) and by
// loose equality: the whole trimmed string must be a numeric literal.
func StringToNumber(s string) float64 {
	s = trimJSSpace(s)
	if s == "" {
		return 0
	}
	if base, digits, ok := radixPrefix(s); ok {
		if strings.ContainsAny(digits, "+-_") {
			return math.NaN()
		}
		n, ok := new(big.Int).SetString(digits, base)
		if !ok {
			return math.NaN()
		}
		f, _ := new(big.Float).SetInt(n).Float64()
		return f
	}

	body, negative := splitSign(s)
	if body == "Infinity" {
		return applySign(math.Inf(1), negative)
	}
	if n := scanDecimal(body); n == 0 || n != len(body) {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(body, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return applySign(f, negative)
}

func radixPrefix(s string) (int, string, bool) {
	if len(s) < 3 || s[0] != '0' {
		return 0, "", false
	}
	switch s[1] {
	case 'x', 'X':
		return 16, s[2:], true
	case 'o', 'O':
		return 8, s[2:], true
	case 'b', 'B':
		return 2, s[2:], true
	}
	return 0, "", false
}

// StringToBigInt converts a string the way BigInt(s) does; ok is false when
// the string is not an integer literal.
func StringToBigInt(s string) (*big.Int, bool) {
	s = trimJSSpace(s)
	if s == "" {
		return new(big.Int), true
	}
	if base, digits, ok := radixPrefix(s); ok {
		if strings.ContainsAny(digits, "+-_") {
			return nil, false
		}
		return new(big.Int).SetString(digits, base)
	}
	body, negative := splitSign(s)
	if body == "" || strings.IndexFunc(body, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return nil, false
	}
	n, ok := new(big.Int).SetString(body, 10)
	if !ok {
		return nil, false
	}
	if negative {
		n.Neg(n)
	}
	return n, true
}

// ParseInt mirrors parseInt(s, 10): leading whitespace and sign, then the
// longest run of decimal digits. NaN when there are no digits.
func ParseInt(s string) float64 {
	body, negative := splitSign(strings.TrimLeftFunc(s, isJSSpace))
	end := 0
	for end < len(body) && isDigit(body[end]) {
		end++
	}
	if end == 0 {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(body[:end], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return applySign(f, negative)
}

// ParseFloat mirrors parseFloat(s): leading whitespace and sign, then
// "Infinity" or the longest decimal literal prefix. NaN when nothing parses.
func ParseFloat(s string) float64 {
	body, negative := splitSign(strings.TrimLeftFunc(s, isJSSpace))
	if strings.HasPrefix(body, "Infinity") {
		return applySign(math.Inf(1), negative)
	}
	n := scanDecimal(body)
	if n == 0 {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(body[:n], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return applySign(f, negative)
}

// IsInteger mirrors Number.isInteger
func IsInteger(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f == math.Trunc(f)
}

// IsFinite mirrors Number.isFinite
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// languageType collapses every object variant into TYPE_OBJECT, which is the
// granularity the equality algorithms compare types at
func languageType(v Value) TypeCode {
	if IsPrimitive(v) {
		return v.Type()
	}
	return TYPE_OBJECT
}

// StrictlyEqual implements ===
func StrictlyEqual(a, b Value) bool {
	if languageType(a) != languageType(b) {
		return false
	}
	return a.Equal(b)
}

// LooselyEqual implements ==. An error is returned where the language would
// throw, e.g. when an object's primitive hook fails or a symbol meets a
// conversion.
func LooselyEqual(a, b Value) (bool, error) {
	if a == nil {
		a = Undefined
	}
	if b == nil {
		b = Undefined
	}

	if languageType(a) == languageType(b) {
		return a.Equal(b), nil
	}
	if IsNullish(a) && IsNullish(b) {
		return true, nil
	}

	switch x := a.(type) {
	case NumberValue:
		if y, ok := b.(StrValue); ok {
			return x.Val == StringToNumber(y.Value()), nil
		}
	case StrValue:
		switch b.(type) {
		case NumberValue, BigIntValue:
			return LooselyEqual(b, a)
		}
	case BigIntValue:
		switch y := b.(type) {
		case StrValue:
			n, ok := StringToBigInt(y.Value())
			if !ok {
				return false, nil
			}
			return x.Int().Cmp(n) == 0, nil
		case NumberValue:
			return bigIntEqualsNumber(x, y.Val), nil
		}
	}

	if x, ok := a.(BoolValue); ok {
		n, _ := ToNumber(x)
		return LooselyEqual(NewNumber(n), b)
	}
	if y, ok := b.(BoolValue); ok {
		n, _ := ToNumber(y)
		return LooselyEqual(a, NewNumber(n))
	}

	aObj, bObj := languageType(a) == TYPE_OBJECT, languageType(b) == TYPE_OBJECT
	switch {
	case !aObj && !IsNullish(a) && bObj:
		prim, err := ToPrimitive(b)
		if err != nil {
			return false, fmt.Errorf("coercing %s: %w", b.TypeOf(), err)
		}
		return LooselyEqual(a, prim)
	case aObj && !bObj && !IsNullish(b):
		return LooselyEqual(b, a)
	}

	if x, ok := b.(BigIntValue); ok {
		if y, ok := a.(NumberValue); ok {
			return bigIntEqualsNumber(x, y.Val), nil
		}
	}
	return false, nil
}

func bigIntEqualsNumber(b BigIntValue, f float64) bool {
	if !IsInteger(f) {
		return false
	}
	return new(big.Float).SetInt(b.Int()).Cmp(big.NewFloat(f)) == 0
}
