package arith

import (
	"math"
	"testing"
)

func TestSaturatingAdd(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{0, 0, 0},
		{1, 2, 3},
		{math.MaxInt, 0, math.MaxInt},
		{math.MaxInt, 1, math.MaxInt},
		{math.MaxInt / 2, math.MaxInt/2 + 1, math.MaxInt},
		{math.MaxInt - 1, math.MaxInt - 1, math.MaxInt},
	}
	for _, tc := range tests {
		if got := SaturatingAdd(tc.a, tc.b); got != tc.want {
			t.Errorf("SaturatingAdd(%d, %d): got %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestSaturatingMul(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{0, 0, 0},
		{1, 0, 0},
		{0, math.MaxInt, 0},
		{100, 100, 10000},
		{math.MaxInt, 1, math.MaxInt},
		{math.MaxInt, 2, math.MaxInt},
		{math.MaxInt/2 + 1, 2, math.MaxInt},
		{math.MaxInt / 8, 8, math.MaxInt / 8 * 8},
	}
	for _, tc := range tests {
		if got := SaturatingMul(tc.a, tc.b); got != tc.want {
			t.Errorf("SaturatingMul(%d, %d): got %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}
