// Package arith holds overflow-aware integer helpers for sizes computed from
// untrusted input.
package arith

import "math"

// SaturatingAdd returns a+b for non-negative operands, clamped to math.MaxInt.
func SaturatingAdd(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

// SaturatingMul returns a*b for non-negative operands, clamped to math.MaxInt.
func SaturatingMul(a, b int) int {
	if b != 0 && a > math.MaxInt/b {
		return math.MaxInt
	}
	return a * b
}
