// Package report builds the numeric overflow report.
//
// The report is a fixed, ordered list of sections. Each section applies one
// overflow mode from package arith to the boundary values of a numeric type and
// records the outcome as an Entry:
//
//	--- Wrapping Operations ---
//	int32 MAX = 2147483647
//	WrappingAdd(MAX, 1) = -2147483648 (wraps)
//
// Build never panics and takes no input; every run produces the same report.
// Overflow is always recorded in-band: an absent checked result, a clamped
// bound, a wrapped value, an overflow flag, an infinity or a returned error.
//
// # Rendering
//
// WriteText produces the human-readable form. Canonical and MarshalCanonical
// produce RFC 8785 JSON of the same content (see package canon), with the typed
// outcome of each entry under "fields".
package report
