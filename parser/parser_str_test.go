package parser

import (
	"testing"

	"looseeq/types"
)

func TestParseStringLiteral(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`"hello"`, "hello"},
		{`""`, ""},
		{`'single'`, "single"},
		{`'it\'s'`, "it's"},
		{`"with \"quotes\""`, `with "quotes"`},
		{`"line\nbreak"`, "line\nbreak"},
		{`"tab\there"`, "tab\there"},
		{`"backslash\\"`, `backslash\`},
		{`"\b\f\v\0"`, "\b\f\v\x00"},
		{`"\x41B\u{43}"`, "ABC"},
		{`"😀"`, "\U0001F600"},
		{`"\q"`, "q"},
		{"\"con\\\ntinued\"", "continued"},
		{`"snow ☃"`, "snow ☃"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			val := mustParse(t, tt.input)

			str, ok := val.(types.StrValue)
			if !ok {
				t.Fatalf("expected StrValue, got %T", val)
			}

			if str.Value() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, str.Value())
			}

			// Check type
			if str.Type() != types.TYPE_STR {
				t.Errorf("expected type TYPE_STR, got %v", str.Type())
			}
		})
	}
}

func TestParseLoneSurrogate(t *testing.T) {
	str := mustParse(t, `"\uD83Dx"`).(types.StrValue)
	if str.Value() != "\uFFFDx" {
		t.Errorf("got %q, want replacement character", str.Value())
	}
}
