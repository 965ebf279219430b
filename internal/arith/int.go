package arith

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Bounds holds the smallest and largest values representable by T.
type Bounds[T constraints.Integer] struct {
	Min T
	Max T
}

// BoundsOf returns the representable range of T.
func BoundsOf[T constraints.Integer]() Bounds[T] {
	return Bounds[T]{Min: Min[T](), Max: Max[T]()}
}

// Signed reports whether T is a signed integer type.
func Signed[T constraints.Integer]() bool {
	var zero T
	return ^zero < zero
}

// BitSize returns the width of T in bits.
func BitSize[T constraints.Integer]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// Min returns the smallest value representable by T.
// Zero for unsigned types, -2^(N-1) for signed types.
func Min[T constraints.Integer]() T {
	if !Signed[T]() {
		return 0
	}
	return T(1) << (BitSize[T]() - 1)
}

// Max returns the largest value representable by T.
func Max[T constraints.Integer]() T {
	if !Signed[T]() {
		return ^T(0)
	}
	return ^Min[T]()
}

// WrappingAdd returns a + b reduced modulo 2^N.
func WrappingAdd[T constraints.Integer](a, b T) T {
	return a + b
}

// WrappingSub returns a - b reduced modulo 2^N.
func WrappingSub[T constraints.Integer](a, b T) T {
	return a - b
}

// WrappingMul returns a * b reduced modulo 2^N.
func WrappingMul[T constraints.Integer](a, b T) T {
	return a * b
}

// OverflowingAdd returns the wrapped sum and whether the exact sum was out of range.
func OverflowingAdd[T constraints.Integer](a, b T) (T, bool) {
	r := a + b
	if Signed[T]() {
		return r, (b > 0 && r < a) || (b < 0 && r > a)
	}
	return r, r < a
}

// OverflowingSub returns the wrapped difference and whether the exact difference
// was out of range.
func OverflowingSub[T constraints.Integer](a, b T) (T, bool) {
	r := a - b
	if Signed[T]() {
		return r, (b > 0 && r > a) || (b < 0 && r < a)
	}
	return r, b > a
}

// OverflowingMul returns the wrapped product and whether the exact product was
// out of range.
func OverflowingMul[T constraints.Integer](a, b T) (T, bool) {
	r := a * b
	if a == 0 || b == 0 {
		return r, false
	}
	// -1 * MIN wraps back to MIN, and MIN / -1 is MIN again, so the division
	// check below cannot see it.
	if Signed[T]() && a == ^T(0) && b == Min[T]() {
		return r, true
	}
	return r, r/a != b
}

// CheckedAdd returns (a + b, true), or (0, false) when the sum overflows.
func CheckedAdd[T constraints.Integer](a, b T) (T, bool) {
	r, overflow := OverflowingAdd(a, b)
	if overflow {
		return 0, false
	}
	return r, true
}

// CheckedSub returns (a - b, true), or (0, false) when the difference overflows.
func CheckedSub[T constraints.Integer](a, b T) (T, bool) {
	r, overflow := OverflowingSub(a, b)
	if overflow {
		return 0, false
	}
	return r, true
}

// CheckedMul returns (a * b, true), or (0, false) when the product overflows.
func CheckedMul[T constraints.Integer](a, b T) (T, bool) {
	r, overflow := OverflowingMul(a, b)
	if overflow {
		return 0, false
	}
	return r, true
}

// SaturatingAdd returns a + b clamped to [Min, Max].
func SaturatingAdd[T constraints.Integer](a, b T) T {
	r, overflow := OverflowingAdd(a, b)
	if !overflow {
		return r
	}
	if Signed[T]() && b < 0 {
		return Min[T]()
	}
	return Max[T]()
}

// SaturatingSub returns a - b clamped to [Min, Max].
func SaturatingSub[T constraints.Integer](a, b T) T {
	r, overflow := OverflowingSub(a, b)
	if !overflow {
		return r
	}
	if Signed[T]() && b < 0 {
		return Max[T]()
	}
	return Min[T]()
}

// SaturatingMul returns a * b clamped to [Min, Max].
func SaturatingMul[T constraints.Integer](a, b T) T {
	r, overflow := OverflowingMul(a, b)
	if !overflow {
		return r
	}
	if Signed[T]() && (a < 0) != (b < 0) {
		return Min[T]()
	}
	return Max[T]()
}
