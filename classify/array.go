package classify

import "looseeq/types"

// classifyArray handles arrays that collapse to a falsy or truthy primitive
// through single-element nesting. Everything else has no partners here.
func classifyArray(a *types.ArrayValue) ExampleSet {
	switch {
	case isNestedEmptyArray(a) || isNumberInNestedArray(0, a):
		return finite(ClassZero, types.False, types.NewNumber(0), types.NewStr(""))
	case isNumberInNestedArray(1, a):
		return finite(ClassOne, types.True, types.NewNumber(1), types.NewStr("1"))
	}
	return finite(ClassUnclassified)
}

// isNestedEmptyArray reports whether v is [], [[]], [[[]]], ...
func isNestedEmptyArray(v types.Value) bool {
	seen := make(map[*types.ArrayValue]bool)
	for depth := 0; depth <= maxUnwrapDepth; depth++ {
		arr, ok := v.(*types.ArrayValue)
		if !ok || seen[arr] {
			return false
		}
		seen[arr] = true

		switch arr.Len() {
		case 0:
			return true
		case 1:
			v = arr.Get(0)
		default:
			return false
		}
	}
	return false
}

// isNumberInNestedArray reports whether a is [x], [[x]], ... with
// parseFloat(x) equal to target
func isNumberInNestedArray(target float64, a *types.ArrayValue) bool {
	leaf, ok := soleLeaf(a)
	if !ok {
		return false
	}
	s, err := types.ToString(leaf)
	if err != nil {
		return false
	}
	return types.ParseFloat(s) == target
}

// soleLeaf follows single-element arrays down to the first non-array value
func soleLeaf(a *types.ArrayValue) (types.Value, bool) {
	seen := make(map[*types.ArrayValue]bool)
	var v types.Value = a
	for depth := 0; depth <= maxUnwrapDepth; depth++ {
		arr, ok := v.(*types.ArrayValue)
		if !ok {
			return v, true
		}
		if seen[arr] {
			return nil, false
		}
		seen[arr] = true

		sole, ok := arr.Sole()
		if !ok {
			return nil, false
		}
		v = sole
	}
	return nil, false
}
