package arith

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrOverflow is wrapped by every error returned from the Exact functions.
// Use errors.Is(err, ErrOverflow) to test for it.
var ErrOverflow = errors.New("arithmetic overflow")

// AddExact returns a + b, or an error wrapping ErrOverflow.
func AddExact[T constraints.Integer](a, b T) (T, error) {
	r, overflow := OverflowingAdd(a, b)
	if overflow {
		return 0, overflowError("+", a, b)
	}
	return r, nil
}

// SubExact returns a - b, or an error wrapping ErrOverflow.
func SubExact[T constraints.Integer](a, b T) (T, error) {
	r, overflow := OverflowingSub(a, b)
	if overflow {
		return 0, overflowError("-", a, b)
	}
	return r, nil
}

// MulExact returns a * b, or an error wrapping ErrOverflow.
func MulExact[T constraints.Integer](a, b T) (T, error) {
	r, overflow := OverflowingMul(a, b)
	if overflow {
		return 0, overflowError("*", a, b)
	}
	return r, nil
}

func overflowError[T constraints.Integer](op string, a, b T) error {
	return fmt.Errorf("%w: %v %s %v overflows %T", ErrOverflow, a, op, b, a)
}
