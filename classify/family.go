package classify

import (
	"iter"

	"looseeq/types"
)

// Take collects at most n values from seq. Families are infinite, so this
// is the only way they are ever materialized.
func Take(seq iter.Seq[types.Value], n int) []types.Value {
	out := make([]types.Value, 0, n)
	if n <= 0 {
		return out
	}
	for v := range seq {
		out = append(out, v)
		if len(out) == n {
			break
		}
	}
	return out
}

// family yields the seeds, then every value of level(1), level(2), ...
func family(seeds []types.Value, level func(depth int) []types.Value) iter.Seq[types.Value] {
	return func(yield func(types.Value) bool) {
		for _, seed := range seeds {
			if !yield(seed) {
				return
			}
		}
		for depth := 1; ; depth++ {
			for _, v := range level(depth) {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// ZeroFamily yields false, 0, "0", "", then [], [0], ["0"], [[]], [[0]], ...
func ZeroFamily() iter.Seq[types.Value] {
	seeds := []types.Value{types.False, types.NewNumber(0), types.NewStr("0"), types.NewStr("")}
	return family(seeds, func(depth int) []types.Value {
		return []types.Value{
			types.NestedEmpty(depth),
			types.Nest(types.NewNumber(0), depth),
			types.Nest(types.NewStr("0"), depth),
		}
	})
}

// OneFamily yields true, 1, "1", then [1], ["1"], [[1]], [["1"]], ...
func OneFamily() iter.Seq[types.Value] {
	seeds := []types.Value{types.True, types.NewNumber(1), types.NewStr("1")}
	return family(seeds, func(depth int) []types.Value {
		return []types.Value{
			types.Nest(types.NewNumber(1), depth),
			types.Nest(types.NewStr("1"), depth),
		}
	})
}

// EmptyStringFamily yields false, 0, "", then [], [[]], [[[]]], ...
func EmptyStringFamily() iter.Seq[types.Value] {
	seeds := []types.Value{types.False, types.NewNumber(0), types.NewStr("")}
	return family(seeds, func(depth int) []types.Value {
		return []types.Value{types.NestedEmpty(depth)}
	})
}

// Boxings yields v passed through Object(...) from, from+1, ... times
func Boxings(v types.Value, from int) iter.Seq[types.Value] {
	return func(yield func(types.Value) bool) {
		for depth := from; ; depth++ {
			if !yield(types.Wrap(v, depth)) {
				return
			}
		}
	}
}

func concat(seqs ...iter.Seq[types.Value]) iter.Seq[types.Value] {
	return func(yield func(types.Value) bool) {
		for _, seq := range seqs {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		}
	}
}

func values(vs ...types.Value) iter.Seq[types.Value] {
	return func(yield func(types.Value) bool) {
		for _, v := range vs {
			if !yield(v) {
				return
			}
		}
	}
}
