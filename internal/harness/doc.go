// Package harness evaluates overflow scenarios against package arith.
//
// A scenario is a YAML file listing arithmetic checks and their expected
// outcomes. The harness resolves each operand in the check's numeric type,
// runs the named operation and compares the outcome.
//
// # Scenario Format
//
//	name: int32_boundaries
//	description: "Overflow behaviour at the int32 bounds"
//	checks:
//	  - op: wrapping_add
//	    type: int32
//	    a: max
//	    b: 1
//	    expect:
//	      value: min
//	  - op: checked_mul
//	    type: int32
//	    a: max
//	    b: 2
//	    expect:
//	      present: false
//	  - op: mul
//	    type: float32
//	    a: max
//	    b: 2
//	    expect:
//	      infinite: true
//
// Operands are "max", "min" or a literal parsed in the check's type
// (strconv base prefixes such as 0x are accepted). An expected value is an
// operand too, so "min" means the minimum of the check's type.
//
// # Operations
//
// Integer types (int8 through int64, uint8 through uint64) accept
// <mode>_<op> where mode is wrapping, checked, saturating or overflowing and
// op is add, sub or mul. Float types (float32, float64) accept add, sub and
// mul with IEEE-754 semantics.
//
// # Expectations
//
//   - value: the rendered result (absent checked results have no value)
//   - present: whether a checked result exists
//   - overflow: whether the exact result was out of range
//   - infinite: whether a float result is infinite
//
// # Validation
//
// Files are decoded strictly (unknown fields are rejected), then validated
// against the embedded CUE schema (schema.cue), then checked for rules the
// schema cannot express, such as float types only taking float operations.
package harness
