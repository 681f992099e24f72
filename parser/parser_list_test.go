package parser

import (
	"testing"

	"looseeq/render"
	"looseeq/types"
)

func TestParseArrayLiteral(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "[]", 0},
		{"single", "[1]", 1},
		{"multiple", "[1, 2, 3]", 3},
		{"trailing_comma", "[1, 2, 3,]", 3},
		{"mixed", `[1, "a", null, undefined, true]`, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			val := mustParse(t, tt.input)

			arr, ok := val.(*types.ArrayValue)
			if !ok {
				t.Fatalf("expected *ArrayValue, got %T", val)
			}
			if arr.Len() != tt.want {
				t.Errorf("Len() = %d, want %d", arr.Len(), tt.want)
			}
		})
	}
}

func TestParseNestedArray(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"[[]]", "[[]]"},
		{"[[[0]]]", "[[[0]]]"},
		{`[["0"]]`, `[["0"]]`},
		{"[[1, 2], [3]]", "[[1,2],[3]]"},
		{"[-1, +2]", "[-1,2]"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := render.Render(mustParse(t, tt.input)); got != tt.want {
				t.Errorf("Parse(%s) renders %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseArrayIdentity(t *testing.T) {
	// every literal is a fresh object
	a := mustParse(t, "[]")
	b := mustParse(t, "[]")
	if a.Equal(b) {
		t.Error("distinct array literals should not be strictly equal")
	}
	if !a.Equal(a) {
		t.Error("an array should be strictly equal to itself")
	}
}
