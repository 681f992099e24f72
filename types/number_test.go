package types

import (
	"math"
	"testing"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{1, "1"},
		{-1.5, "-1.5"},
		{0.1, "0.1"},
		{100, "100"},
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
		{1.5e300, "1.5e+300"},
		{0.000001, "0.000001"},
		{1e-7, "1e-7"},
		{1.5e-10, "1.5e-10"},
		{123.456, "123.456"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatNumber(tt.in); got != tt.want {
				t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNumberEquality(t *testing.T) {
	if NaN().Equal(NaN()) {
		t.Error("NaN should not be strictly equal to NaN")
	}
	if !NewNumber(0).Equal(NewNumber(math.Copysign(0, -1))) {
		t.Error("+0 should be strictly equal to -0")
	}
	if NewNumber(1).Equal(NewStr("1")) {
		t.Error("1 should not be strictly equal to \"1\"")
	}
}

func TestNumberTruthy(t *testing.T) {
	tests := []struct {
		in   float64
		want bool
	}{
		{0, false},
		{math.NaN(), false},
		{1, true},
		{-1, true},
		{math.Inf(1), true},
	}

	for _, tt := range tests {
		if got := NewNumber(tt.in).Truthy(); got != tt.want {
			t.Errorf("NewNumber(%v).Truthy() = %v, want %v", tt.in, got, tt.want)
		}
	}
}
