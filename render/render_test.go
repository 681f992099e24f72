package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"looseeq/types"
)

func TestRenderPrimitives(t *testing.T) {
	tests := []struct {
		name  string
		input types.Value
		want  string
	}{
		{"undefined", types.Undefined, "undefined"},
		{"nil", nil, "undefined"},
		{"null", types.Null, "null"},
		{"true", types.True, "true"},
		{"false", types.False, "false"},
		{"zero", types.NewNumber(0), "0"},
		{"negative zero", types.NewNumber(math.Copysign(0, -1)), "0"},
		{"float", types.NewNumber(1.5), "1.5"},
		{"NaN", types.NaN(), "NaN"},
		{"Infinity", types.NewNumber(math.Inf(-1)), "-Infinity"},
		{"bigint", types.NewBigIntFromInt64(10), "10"},
		{"string", types.NewStr("abc"), `"abc"`},
		{"empty string", types.NewStr(""), `""`},
		{"string with quote", types.NewStr(`a"b`), `"a\"b"`},
		{"string with backslash", types.NewStr(`a\b`), `"a\\b"`},
		{"symbol", types.NewSymbol("foo"), "Symbol(foo)"},
		{"anonymous symbol", types.NewAnonymousSymbol(), "Symbol()"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.input))
		})
	}
}

func TestRenderBoxed(t *testing.T) {
	sym := types.NewSymbol("s")
	date := types.NewDateFromMillis(0)

	tests := []struct {
		name  string
		input types.Value
		want  string
	}{
		{"boxed string", types.Wrap(types.NewStr("abc"), 1), `Object("abc");`},
		{"twice boxed string", types.Wrap(types.NewStr("0"), 2), `Object(Object("0"));`},
		{"boxed symbol", types.Wrap(sym, 3), "Object(Object(Object(Symbol(s))));"},
		{"boxed number", types.Wrap(types.NewNumber(1), 1), "Object(1);"},
		{"boxed boolean", types.Wrap(types.True, 1), "Object(true);"},
		{"date", date, "new Date(0);"},
		{"boxed date", types.Wrap(date, 2), "Object(Object(new Date(0)));"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.input))
		})
	}
}

func TestRenderDepth(t *testing.T) {
	sym := types.NewSymbol("x")
	assert.Equal(t, "Symbol(x)", RenderDepth(sym, 0))
	assert.Equal(t, "Object(Symbol(x));", RenderDepth(sym, 1))
	assert.Equal(t, `Object(Object("a"));`, RenderDepth(types.NewStr("a"), 2))

	// depth adds to an existing wrapping
	assert.Equal(t, `Object(Object(Object("a")));`, RenderDepth(types.Wrap(types.NewStr("a"), 1), 2))
}

func TestRenderStructural(t *testing.T) {
	tests := []struct {
		name  string
		input types.Value
		want  string
	}{
		{"empty array", types.NewEmptyArray(), "[]"},
		{"nested empty", types.NestedEmpty(3), "[[[]]]"},
		{"nested zero", types.Nest(types.NewNumber(0), 2), "[[0]]"},
		{"nested string", types.Nest(types.NewStr("0"), 1), `["0"]`},
		{"mixed", types.NewArray([]types.Value{types.NewNumber(1), types.NewStr("a"), types.Null}), `[1,"a",null]`},
		{"holes as null", types.NewArray([]types.Value{types.Undefined, types.NewFunction("f"), types.NewSymbol("s")}), "[null,null,null]"},
		{"NaN member", types.NewArray([]types.Value{types.NaN()}), "[null]"},
		{"empty object", types.NewObject(nil), "{}"},
		{"object", types.NewObject([]types.Property{
			{Key: "a", Value: types.NewNumber(1)},
			{Key: "b", Value: types.NewArray([]types.Value{types.NewNumber(2)})},
			{Key: "skip", Value: types.Undefined},
		}), `{"a":1,"b":[2]}`},
		{"boxed members", types.NewArray([]types.Value{
			types.Wrap(types.NewStr("a"), 1),
			types.Wrap(types.NewSymbol("s"), 1),
		}), `["a",{}]`},
		{"date member", types.NewArray([]types.Value{types.NewDateFromMillis(0)}), `["1970-01-01T00:00:00.000Z"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.input))
		})
	}
}

func TestRenderCycle(t *testing.T) {
	elems := make([]types.Value, 1)
	arr := types.NewArray(elems)
	elems[0] = arr

	assert.Equal(t, "[null]", Render(arr))
}

func TestRenderFunction(t *testing.T) {
	assert.Equal(t, "function f() { [native code] }", Render(types.NewFunction("f")))
}
