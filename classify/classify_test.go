package classify

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"looseeq/render"
	"looseeq/trace"
	"looseeq/types"
)

func renderAll(vs []types.Value) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = render.Render(v)
	}
	return out
}

func mustClassify(t *testing.T, v types.Value) ExampleSet {
	t.Helper()
	set, err := Classify(v)
	require.NoError(t, err)
	return set
}

func TestClassifyNaN(t *testing.T) {
	set := mustClassify(t, types.NaN())
	assert.False(t, set.IsInfinite)
	assert.Empty(t, set.Examples)
	assert.Equal(t, ClassNaN, set.Class)
}

func TestClassifyNullish(t *testing.T) {
	for _, v := range []types.Value{types.Undefined, types.Null, nil} {
		set := mustClassify(t, v)
		assert.False(t, set.IsInfinite)
		assert.Equal(t, []string{"undefined", "null"}, renderAll(set.Examples))
	}
}

func TestClassifyZeroFamily(t *testing.T) {
	set := mustClassify(t, types.NewNumber(0))
	require.True(t, set.IsInfinite)
	assert.Equal(t, ClassZero, set.Class)

	want := []string{`false`, `0`, `"0"`, `""`, `[]`, `[0]`, `["0"]`, `[[]]`, `[[0]]`, `[["0"]]`, `[[[]]]`}
	if diff := cmp.Diff(want, renderAll(set.Examples)); diff != "" {
		t.Errorf("zero family mismatch (-want +got):\n%s", diff)
	}
}

func TestClassifyOneFamily(t *testing.T) {
	set := mustClassify(t, types.NewStr("1"))
	require.True(t, set.IsInfinite)
	assert.Equal(t, ClassOne, set.Class)

	want := []string{`true`, `1`, `"1"`, `[1]`, `["1"]`, `[[1]]`, `[["1"]]`, `[[[1]]]`, `[[["1"]]]`, `[[[[1]]]]`, `[[[["1"]]]]`}
	if diff := cmp.Diff(want, renderAll(set.Examples)); diff != "" {
		t.Errorf("one family mismatch (-want +got):\n%s", diff)
	}
}

func TestClassifyEmptyStringFamily(t *testing.T) {
	set := mustClassify(t, types.NewStr(""))
	require.True(t, set.IsInfinite)
	assert.Equal(t, ClassEmptyString, set.Class)

	got := renderAll(set.Examples)
	require.Len(t, got, MaxExamples)
	assert.Equal(t, []string{`false`, `0`, `""`, `[]`, `[[]]`, `[[[]]]`}, got[:6])
}

func TestFamilyClosure(t *testing.T) {
	date := types.NewDateFromMillis(0)
	seeds := []types.Value{
		types.NewNumber(0),
		types.NewNumber(1),
		types.NewStr(""),
		types.NewStr("42"),
		types.NewStr("abc"),
		types.NewSymbol("s"),
		date,
		types.Wrap(date, 2),
	}

	for _, seed := range seeds {
		t.Run(render.Render(seed), func(t *testing.T) {
			set := mustClassify(t, seed)
			for _, e := range set.Examples {
				forward, err := types.LooselyEqual(e, seed)
				require.NoError(t, err)
				backward, err := types.LooselyEqual(seed, e)
				require.NoError(t, err)
				assert.True(t, forward, "%s == %s", render.Render(e), render.Render(seed))
				assert.True(t, backward, "%s == %s", render.Render(seed), render.Render(e))
			}
		})
	}
}

func TestClassificationOrderIsIdempotent(t *testing.T) {
	zero := mustClassify(t, types.NewNumber(0))
	for _, v := range []types.Value{types.False, types.NewStr("0"), types.NewNumber(math.Copysign(0, -1))} {
		set := mustClassify(t, v)
		assert.Equal(t, zero.IsInfinite, set.IsInfinite)
		assert.Equal(t, zero.Class, set.Class)
		assert.Equal(t, renderAll(zero.Examples), renderAll(set.Examples))
	}

	one := mustClassify(t, types.NewNumber(1))
	for _, v := range []types.Value{types.True, types.NewStr("1")} {
		set := mustClassify(t, v)
		assert.Equal(t, one.Class, set.Class)
		assert.Equal(t, renderAll(one.Examples), renderAll(set.Examples))
	}
}

func TestTruncationBound(t *testing.T) {
	inputs := []types.Value{
		types.NewNumber(0),
		types.NewNumber(1),
		types.NewStr(""),
		types.NewStr("42"),
		types.NewStr("abc"),
		types.NewSymbol("s"),
		types.NewDateFromMillis(0),
	}

	for _, v := range inputs {
		set := mustClassify(t, v)
		require.True(t, set.IsInfinite, render.Render(v))
		assert.LessOrEqual(t, len(set.Examples), MaxExamples)
	}
}

func TestOneMoreLevelStaysEqual(t *testing.T) {
	// arrays nest one level deeper; boxed values take one more Object(...)
	deeper := func(v types.Value) types.Value {
		if _, ok := v.(*types.ArrayValue); ok {
			return types.NewArray([]types.Value{v})
		}
		return types.Wrap(v, 1)
	}

	inputs := []types.Value{
		types.NewNumber(0),
		types.NewNumber(1),
		types.NewStr(""),
		types.NewStr("42"),
		types.NewStr("abc"),
	}
	for _, v := range inputs {
		set := mustClassify(t, v)
		last := set.Examples[len(set.Examples)-1]

		eq, err := types.LooselyEqual(deeper(last), v)
		require.NoError(t, err)
		assert.True(t, eq, "%s == %s", render.Render(deeper(last)), render.Render(v))
	}
}

func TestClassifyNumbers(t *testing.T) {
	set := mustClassify(t, types.NewNumber(5))
	assert.False(t, set.IsInfinite)
	assert.Equal(t, []string{`5`, `"5"`}, renderAll(set.Examples))

	set = mustClassify(t, types.NewNumber(math.Inf(1)))
	assert.Equal(t, []string{`Infinity`, `"Infinity"`}, renderAll(set.Examples))

	set = mustClassify(t, types.NewBigIntFromInt64(10))
	assert.False(t, set.IsInfinite)
	assert.Equal(t, []string{`10`, `"10"`}, renderAll(set.Examples))
}

func TestClassifyStrings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		class Class
		head  []string
	}{
		{"integer", "42", ClassStringNumeric, []string{`"42"`, `42`, `Object("42");`, `Object(Object("42"));`}},
		{"integer before float", "1.5", ClassStringNumeric, []string{`"1.5"`, `1`, `Object("1.5");`}},
		{"float only", ".5", ClassStringNumeric, []string{`".5"`, `0.5`, `Object(".5");`}},
		{"not numeric", "abc", ClassGenericPrimitive, []string{`"abc"`, `Object("abc");`, `Object(Object("abc"));`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := mustClassify(t, types.NewStr(tt.input))
			require.True(t, set.IsInfinite)
			assert.Equal(t, tt.class, set.Class)
			got := renderAll(set.Examples)
			require.Len(t, got, MaxExamples)
			assert.Equal(t, tt.head, got[:len(tt.head)])
		})
	}
}

func TestClassifySymbol(t *testing.T) {
	sym := types.NewSymbol("foo")
	set := mustClassify(t, sym)
	require.True(t, set.IsInfinite)
	require.Len(t, set.Examples, MaxExamples)

	for i, e := range set.Examples {
		w, ok := e.(*types.WrappedValue)
		require.True(t, ok)
		assert.Equal(t, i+1, w.Depth())
		assert.True(t, w.Inner().Equal(sym))
	}
	assert.Equal(t, "Object(Symbol(foo));", render.Render(set.Examples[0]))
	assert.Equal(t, "Object(Object(Symbol(foo)));", render.Render(set.Examples[1]))
}

func TestClassifyArrays(t *testing.T) {
	zero := []string{`false`, `0`, `""`}
	one := []string{`true`, `1`, `"1"`}

	cyclic := make([]types.Value, 1)
	cyclicArr := types.NewArray(cyclic)
	cyclic[0] = cyclicArr

	tests := []struct {
		name  string
		input types.Value
		class Class
		want  []string
	}{
		{"empty", types.NewEmptyArray(), ClassZero, zero},
		{"nested empty", types.NestedEmpty(4), ClassZero, zero},
		{"nested zero", types.Nest(types.NewNumber(0), 3), ClassZero, zero},
		{"nested zero string", types.Nest(types.NewStr("0"), 2), ClassZero, zero},
		{"nested one", types.Nest(types.NewNumber(1), 2), ClassOne, one},
		{"nested one string", types.Nest(types.NewStr("1"), 1), ClassOne, one},
		{"multiple elements", types.NewArray([]types.Value{types.NewNumber(1), types.NewNumber(2)}), ClassUnclassified, []string{}},
		{"other leaf", types.Nest(types.NewNumber(7), 1), ClassUnclassified, []string{}},
		{"cycle", cyclicArr, ClassUnclassified, []string{}},
		{"deeply nested zero", types.Nest(types.NewNumber(0), 100), ClassZero, zero},
		{"deepest nested one", types.Nest(types.NewStr("1"), maxUnwrapDepth), ClassOne, one},
		{"deepest nested empty", types.NestedEmpty(maxUnwrapDepth + 1), ClassZero, zero},
		{"too deep", types.Nest(types.NewNumber(0), maxUnwrapDepth+2), ClassUnclassified, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := mustClassify(t, tt.input)
			assert.False(t, set.IsInfinite)
			assert.Equal(t, tt.class, set.Class)
			assert.Equal(t, tt.want, renderAll(set.Examples))
		})
	}
}

func TestClassifyObjects(t *testing.T) {
	t.Run("no coercion capability", func(t *testing.T) {
		set := mustClassify(t, types.NewObject(nil))
		assert.False(t, set.IsInfinite)
		assert.Empty(t, set.Examples)
	})

	t.Run("hook to zero", func(t *testing.T) {
		obj := types.NewObjectWithHook(nil, func() (types.Value, error) {
			return types.NewNumber(0), nil
		})
		set := mustClassify(t, obj)
		assert.Equal(t, ClassZero, set.Class)
		assert.True(t, set.IsInfinite)
	})

	t.Run("hook to string", func(t *testing.T) {
		obj := types.NewObjectWithHook(nil, func() (types.Value, error) {
			return types.NewStr("abc"), nil
		})
		set := mustClassify(t, obj)
		assert.Equal(t, `"abc"`, render.Render(set.Examples[0]))
	})

	t.Run("boxed string", func(t *testing.T) {
		set := mustClassify(t, types.Wrap(types.NewStr("42"), 2))
		assert.Equal(t, ClassStringNumeric, set.Class)
		assert.Equal(t, `"42"`, render.Render(set.Examples[0]))
	})

	t.Run("date", func(t *testing.T) {
		set := mustClassify(t, types.NewDateFromMillis(0))
		require.True(t, set.IsInfinite)
		assert.Equal(t, ClassDate, set.Class)
		got := renderAll(set.Examples)
		require.Len(t, got, MaxExamples)
		assert.Equal(t, "new Date(0);", got[0])
		assert.Equal(t, "Object(new Date(0));", got[1])
	})

	t.Run("boxed date", func(t *testing.T) {
		set := mustClassify(t, types.Wrap(types.NewDateFromMillis(0), 1))
		assert.Equal(t, ClassDate, set.Class)
		assert.Equal(t, "Object(new Date(0));", render.Render(set.Examples[0]))
	})
}

func TestClassifyRecoversFailingHook(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	trace.Init(zap.New(core))
	t.Cleanup(func() { trace.Init(nil) })

	boom := errors.New("boom")
	throwing := types.NewObjectWithHook(nil, func() (types.Value, error) {
		return nil, boom
	})
	nonPrimitive := types.NewObjectWithHook(nil, func() (types.Value, error) {
		return types.NewObject(nil), nil
	})

	for _, obj := range []types.Value{throwing, nonPrimitive} {
		set := mustClassify(t, obj)
		assert.False(t, set.IsInfinite)
		assert.Empty(t, set.Examples)
	}

	failures := logs.FilterMessage("Failed to invoke Symbol.toPrimitive").AllUntimed()
	require.Len(t, failures, 2)
	assert.Equal(t, zapcore.DebugLevel, failures[0].Level)
}

func TestClassifyUnsupported(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	trace.Init(zap.New(core))
	t.Cleanup(func() { trace.Init(nil) })

	_, err := Classify(types.NewFunction("f"))
	require.Error(t, err)

	var unsupported *UnsupportedTypeError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "function", unsupported.TypeName)
	assert.Equal(t, "Not implemented for type function.", err.Error())
	assert.Equal(t, 1, logs.FilterMessage("Not implemented for type").Len())
}

func TestBooleanFallbackIsInvariantViolation(t *testing.T) {
	// specialCase catches both booleans; the fallback is only a canary
	_, err := classifyByType(types.True)

	var violation *InvariantViolationError
	require.True(t, errors.As(err, &violation))
	assert.True(t, violation.Value.Equal(types.True))
}

func TestTake(t *testing.T) {
	assert.Empty(t, Take(ZeroFamily(), 0))
	assert.Empty(t, Take(ZeroFamily(), -1))
	assert.Len(t, Take(OneFamily(), 3), 3)
	assert.Equal(t, []string{`"a"`, `Object("a");`}, renderAll(Take(Boxings(types.NewStr("a"), 0), 2)))
}

func TestClassString(t *testing.T) {
	assert.Equal(t, "ZeroFamily", ClassZero.String())
	assert.Equal(t, "Unclassified", Class(99).String())
}
