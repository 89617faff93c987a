package util

import (
	"cmp"
	"math"

	"golang.org/x/exp/constraints"
)

func Max[T cmp.Ordered](args ...T) T {
	if len(args) == 0 {
		return *new(T)
	}

	if isNan(args[0]) {
		return args[0]
	}

	max := args[0]
	for _, arg := range args[1:] {

		if isNan(arg) {
			return arg
		}

		if arg > max {
			max = arg
		}
	}
	return max
}

func Min[T cmp.Ordered](args ...T) T {
	if len(args) == 0 {
		return *new(T)
	}

	if isNan(args[0]) {
		return args[0]
	}

	min := args[0]
	for _, arg := range args[1:] {

		if isNan(arg) {
			return arg
		}

		if arg < min {
			min = arg
		}
	}
	return min
}

// Clamp limits v to [lo, hi].
func Clamp[T constraints.Ordered](v T, lo T, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampToUint8 clamps to [0,255] then rounds half away from zero.
// NaN maps to 0.
func ClampToUint8(v float64) uint8 {
	if isNan(v) {
		return 0
	}
	return uint8(math.Round(Clamp(v, 0, 255)))
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func isNan[T comparable](arg T) bool {
	return arg != arg
}
