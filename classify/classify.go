// Package classify enumerates the values that are loosely equal (==) to a
// given value.
//
// Classification walks a fixed precedence chain: NaN, null/undefined, the
// zero family, the one family, the empty-string family, and finally a
// per-type fallback. The first rule that matches decides the class. Families
// that are infinite (arbitrarily deep array nesting or Object(...) boxing)
// are generated lazily and truncated to MaxExamples.
package classify

import (
	"iter"

	"looseeq/trace"
	"looseeq/types"
)

// MaxExamples bounds every infinite family
const MaxExamples = 11

// maxUnwrapDepth bounds single-element array unwrapping. It covers every
// array the reader accepts, whose elements sit one expression deeper.
const maxUnwrapDepth = types.MaxNesting + 1

// Class names the equivalence class a value was placed in
type Class int

const (
	ClassUnclassified Class = iota
	ClassNaN
	ClassNullish
	ClassZero
	ClassOne
	ClassEmptyString
	ClassStringNumeric
	ClassGenericPrimitive
	ClassSymbol
	ClassDate
)

// String returns the class name
func (c Class) String() string {
	switch c {
	case ClassNaN:
		return "NaNClass"
	case ClassNullish:
		return "NullishClass"
	case ClassZero:
		return "ZeroFamily"
	case ClassOne:
		return "OneFamily"
	case ClassEmptyString:
		return "EmptyStringFamily"
	case ClassStringNumeric:
		return "StringNumericFamily"
	case ClassGenericPrimitive:
		return "GenericPrimitive"
	case ClassSymbol:
		return "SymbolFamily"
	case ClassDate:
		return "DateFamily"
	default:
		return "Unclassified"
	}
}

// ExampleSet is the result of a classification. When IsInfinite is set,
// Examples is the prefix of an unbounded family ordered by nesting or
// wrapping depth.
type ExampleSet struct {
	IsInfinite bool
	Examples   []types.Value
	Class      Class
}

func finite(class Class, examples ...types.Value) ExampleSet {
	if examples == nil {
		examples = []types.Value{}
	}
	return ExampleSet{Examples: examples, Class: class}
}

func infinite(class Class, seq iter.Seq[types.Value]) ExampleSet {
	return ExampleSet{IsInfinite: true, Examples: Take(seq, MaxExamples), Class: class}
}

// Classify returns the values loosely equal to v. It fails with
// *UnsupportedTypeError for values no rule covers and with
// *InvariantViolationError if the rule order is broken.
func Classify(v types.Value) (ExampleSet, error) {
	if v == nil {
		v = types.Undefined
	}
	set, err := classify(v)
	if err != nil {
		return ExampleSet{}, err
	}
	trace.Classified(v.TypeOf(), set.Class.String(), len(set.Examples), set.IsInfinite)
	return set, nil
}

func classify(v types.Value) (ExampleSet, error) {
	if set, ok := specialCase(v); ok {
		return set, nil
	}
	return classifyByType(v)
}

// specialCase applies the precedence chain ahead of the per-type fallback.
// The seeds are compared strictly; [] and friends reach the array rule.
func specialCase(v types.Value) (ExampleSet, bool) {
	switch {
	case isNaN(v):
		// NaN is loosely equal to nothing, itself included
		return finite(ClassNaN), true
	case types.IsNullish(v):
		return finite(ClassNullish, types.Undefined, types.Null), true
	case isSeed(v, 0, "0", false):
		return infinite(ClassZero, ZeroFamily()), true
	case isSeed(v, 1, "1", true):
		return infinite(ClassOne, OneFamily()), true
	case types.NewStr("").Equal(v):
		return infinite(ClassEmptyString, EmptyStringFamily()), true
	}
	return ExampleSet{}, false
}

func isNaN(v types.Value) bool {
	n, ok := v.(types.NumberValue)
	return ok && n.IsNaN()
}

func isSeed(v types.Value, n float64, s string, b bool) bool {
	switch x := v.(type) {
	case types.NumberValue:
		return x.Val == n
	case types.StrValue:
		return x.Value() == s
	case types.BoolValue:
		return x.Val == b
	}
	return false
}

func classifyByType(v types.Value) (ExampleSet, error) {
	switch x := v.(type) {
	case types.UndefinedValue, types.NullValue:
		return finite(ClassNullish, types.Undefined, types.Null), nil
	case types.NumberValue:
		return finite(ClassGenericPrimitive, x, types.NewStr(x.String())), nil
	case types.BigIntValue:
		return finite(ClassGenericPrimitive, x, types.NewStr(x.String())), nil
	case types.BoolValue:
		err := &InvariantViolationError{Value: x, Detail: x.String() + " is another Boolean value other than true or false"}
		trace.Invariant(x.TypeOf(), err.Detail)
		return ExampleSet{}, err
	case types.StrValue:
		return classifyString(x), nil
	case types.SymbolValue:
		// a symbol is only loosely equal to its own wrapper objects
		return infinite(ClassSymbol, Boxings(x, 1)), nil
	case *types.ArrayValue:
		return classifyArray(x), nil
	case *types.ObjectValue, *types.DateValue, *types.WrappedValue:
		return classifyObject(v)
	default:
		trace.Unsupported(v.TypeOf())
		return ExampleSet{}, &UnsupportedTypeError{TypeName: v.TypeOf()}
	}
}

func classifyString(s types.StrValue) ExampleSet {
	if p, ok := parseNumeric(s.Value()); ok {
		return infinite(ClassStringNumeric, concat(values(s, types.NewNumber(p)), Boxings(s, 1)))
	}
	return infinite(ClassGenericPrimitive, Boxings(s, 0))
}

// parseNumeric tries parseInt(s, 10) first and parseFloat(s) second
func parseNumeric(s string) (float64, bool) {
	if p := types.ParseInt(s); types.IsInteger(p) {
		return p, true
	}
	if p := types.ParseFloat(s); types.IsFinite(p) {
		return p, true
	}
	return 0, false
}
