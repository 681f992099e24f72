// Package render turns values back into source-like text.
//
// Primitives render as literals, boxed values as nested Object(...) calls
// and everything else through a JSON-like structural form. Rendering never
// fails; values it cannot show faithfully degrade to the structural form.
package render

import (
	"strconv"
	"strings"

	"looseeq/types"
)

// Render returns the display form of v
func Render(v types.Value) string {
	return RenderDepth(v, 0)
}

// RenderDepth renders v as if it had been passed through Object(...) n
// times. With n == 0 it is the plain literal of v.
func RenderDepth(v types.Value, n int) string {
	if v == nil {
		v = types.Undefined
	}
	if w, ok := v.(*types.WrappedValue); ok {
		return RenderDepth(w.Inner(), w.Depth()+n)
	}

	switch x := v.(type) {
	case types.UndefinedValue, types.NullValue,
		types.BoolValue, types.NumberValue, types.BigIntValue:
		if n > 0 {
			return boxed(literal(x), n)
		}
		return literal(x)
	case types.StrValue:
		if n > 0 {
			return boxed(x.String(), n)
		}
		return x.String()
	case types.SymbolValue:
		if n > 0 {
			return boxed(x.String(), n)
		}
		return x.String()
	case *types.DateValue:
		return boxed(dateLiteral(x), n)
	case *types.FunctionValue:
		return x.String()
	}
	return Structural(v)
}

// literal is String(x) for the primitive kinds that render unquoted
func literal(v types.Value) string {
	switch x := v.(type) {
	case types.UndefinedValue:
		return "undefined"
	case types.NullValue:
		return "null"
	case types.BoolValue:
		return x.String()
	case types.NumberValue:
		return x.String()
	case types.BigIntValue:
		return x.String()
	}
	return Structural(v)
}

func dateLiteral(d *types.DateValue) string {
	return "new Date(" + strconv.FormatInt(d.Millis(), 10) + ")"
}

// boxed writes n Object( markers around inner and terminates the expression
func boxed(inner string, n int) string {
	var sb strings.Builder
	sb.Grow(len(inner) + n*len("Object()") + 1)
	for i := 0; i < n; i++ {
		sb.WriteString("Object(")
	}
	sb.WriteString(inner)
	for i := 0; i < n; i++ {
		sb.WriteByte(')')
	}
	sb.WriteByte(';')
	return sb.String()
}
