// Package arith provides explicit overflow arithmetic for fixed-width Go integers
// and IEEE-754 floats.
//
// Go's built-in integer operators wrap silently on overflow. This package names each
// overflow behaviour so callers choose one deliberately:
//
//   - Wrapping:    result reduced modulo 2^N, never signals
//   - Overflowing: wrapped result plus an overflow flag
//   - Checked:     (exact, true) or (0, false)
//   - Saturating:  result clamped to the bound in the direction of overflow
//   - Exact:       (exact, nil) or an error wrapping ErrOverflow
//
// Every function is generic over golang.org/x/exp/constraints and never panics.
// Overflow is always reported in-band.
//
// Invariants, for every operation X and operands a, b:
//   - OverflowingX(a, b) == (WrappingX(a, b), overflowed)
//   - CheckedX(a, b) is present iff !overflowed
//   - SaturatingX(a, b) == WrappingX(a, b) iff !overflowed
package arith
