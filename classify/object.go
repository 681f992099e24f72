package classify

import (
	"looseeq/trace"
	"looseeq/types"
)

// classifyObject models ToPrimitive: objects that can produce a primitive
// are classified as that primitive. A failing hook is recovered here and
// treated like a missing one.
func classifyObject(v types.Value) (ExampleSet, error) {
	prim, err := primitiveOf(v)
	switch {
	case err != nil:
		trace.CoercionFailure(v.TypeOf(), err)
	case prim != nil:
		return classify(prim)
	}

	if isDateLike(v) {
		return infinite(ClassDate, Boxings(v, 0)), nil
	}
	return finite(ClassUnclassified), nil
}

// primitiveOf invokes the primitive capability of v. It returns nil, nil
// when v has none.
func primitiveOf(v types.Value) (types.Value, error) {
	switch x := v.(type) {
	case *types.ObjectValue:
		hook, ok := x.Hook()
		if !ok {
			return nil, nil
		}
		prim, err := hook()
		if err != nil {
			return nil, &CoercionError{TypeName: x.TypeOf(), Err: err}
		}
		if !types.IsPrimitive(prim) {
			return nil, &CoercionError{TypeName: x.TypeOf(), Err: types.ErrNotPrimitive}
		}
		return prim, nil
	case *types.WrappedValue:
		if prim, ok := x.ToPrimitive(); ok {
			return prim, nil
		}
	}
	return nil, nil
}

func isDateLike(v types.Value) bool {
	switch x := v.(type) {
	case *types.DateValue:
		return true
	case *types.WrappedValue:
		_, ok := x.Inner().(*types.DateValue)
		return ok
	}
	return false
}
