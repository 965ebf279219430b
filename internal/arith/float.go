package arith

import (
	"math"
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// MaxFloat returns the largest finite value representable by T.
func MaxFloat[T constraints.Float]() T {
	if FloatBitSize[T]() == 32 {
		m := float64(math.MaxFloat32)
		return T(m)
	}
	m := math.MaxFloat64
	return T(m)
}

// FloatBitSize returns the width of T in bits: 32 or 64.
func FloatBitSize[T constraints.Float]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// IsInf reports whether x is positive or negative infinity.
func IsInf[T constraints.Float](x T) bool {
	return math.IsInf(float64(x), 0)
}

// FormatFloat returns the shortest decimal text that round-trips x at T's
// precision, e.g. "3.4028235e+38" or "+Inf".
func FormatFloat[T constraints.Float](x T) string {
	return strconv.FormatFloat(float64(x), 'g', -1, FloatBitSize[T]())
}
