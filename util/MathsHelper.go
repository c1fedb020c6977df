package util

import (
	"golang.org/x/exp/constraints"
)

// CheckedAdd returns a+b and false if the sum does not fit in T.
func CheckedAdd[T constraints.Signed](a T, b T) (T, bool) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return c, false
	}
	return c, true
}

// CheckedSub returns a-b and false if the difference does not fit in T.
func CheckedSub[T constraints.Signed](a T, b T) (T, bool) {
	c := a - b
	if (b > 0 && c > a) || (b < 0 && c < a) {
		return c, false
	}
	return c, true
}

// CheckedMul returns a*b and false if the product does not fit in T.
func CheckedMul[T constraints.Signed](a T, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b

	// min * -1 wraps back to min and min / -1 does the same, so the
	// division check below cannot see it.
	if (a == -1 && isMinSigned(b)) || (b == -1 && isMinSigned(a)) {
		return c, false
	}
	if c/b != a {
		return c, false
	}
	return c, true
}

// CheckedNeg returns -a and false when a is the minimum value of T.
func CheckedNeg[T constraints.Signed](a T) (T, bool) {
	if isMinSigned(a) {
		return a, false
	}
	return -a, true
}

// Abs wraps like the rest of the integer arithmetic, so Abs(min) == min.
func Abs[T constraints.Signed](a T) T {
	if a < 0 {
		return -a
	}
	return a
}

func isMinSigned[T constraints.Signed](a T) bool {
	return a < 0 && -a < 0
}
