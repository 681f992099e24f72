package render

import (
	"strings"

	"looseeq/types"
)

// Structural renders v the way JSON.stringify would, with two departures:
// bigints print their digits instead of throwing, and cycles print null
// instead of throwing. The top-level value is never omitted.
func Structural(v types.Value) string {
	s, ok := newStructural().value(v)
	if !ok {
		return "undefined"
	}
	return s
}

type structural struct {
	seen map[types.Value]bool
}

func newStructural() *structural {
	return &structural{seen: make(map[types.Value]bool)}
}

// value returns false for values JSON.stringify omits (undefined,
// functions, symbols)
func (s *structural) value(v types.Value) (string, bool) {
	switch x := v.(type) {
	case nil, types.UndefinedValue, types.SymbolValue, *types.FunctionValue:
		return "", false
	case types.NullValue:
		return "null", true
	case types.BoolValue:
		return x.String(), true
	case types.NumberValue:
		if x.IsNaN() || x.IsInf() {
			return "null", true
		}
		return x.String(), true
	case types.BigIntValue:
		return x.String(), true
	case types.StrValue:
		return x.String(), true
	case *types.DateValue:
		return types.Quote(x.ISOString()), true
	case *types.WrappedValue:
		return s.wrapped(x)
	case *types.ArrayValue:
		return s.array(x), true
	case *types.ObjectValue:
		return s.object(x), true
	}
	return "null", true
}

// wrapped follows JSON.stringify: boxed strings, numbers and booleans
// serialize as their primitive, a boxed symbol as an empty object
func (s *structural) wrapped(w *types.WrappedValue) (string, bool) {
	if _, ok := w.Inner().(types.SymbolValue); ok {
		return "{}", true
	}
	return s.value(w.Inner())
}

func (s *structural) array(a *types.ArrayValue) string {
	if s.seen[a] {
		return "null"
	}
	s.seen[a] = true
	defer delete(s.seen, a)

	parts := make([]string, 0, a.Len())
	for _, elem := range a.Elements() {
		str, ok := s.value(elem)
		if !ok {
			str = "null"
		}
		parts = append(parts, str)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func (s *structural) object(o *types.ObjectValue) string {
	if s.seen[o] {
		return "null"
	}
	s.seen[o] = true
	defer delete(s.seen, o)

	var parts []string
	for _, prop := range o.Properties() {
		str, ok := s.value(prop.Value)
		if !ok {
			continue
		}
		parts = append(parts, types.Quote(prop.Key)+":"+str)
	}
	return "{" + strings.Join(parts, ",") + "}"
}
