package harness

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/roach88/overflowdemo/internal/arith"
)

// Run evaluates every check in the scenario.
//
// Expectation mismatches are collected on the result; Run keeps going after a
// failing check. An operand that cannot be resolved in the check's type is a
// scenario error and is returned instead.
func Run(s *Scenario) (*Result, error) {
	result := NewResult(s.Name)

	for i, c := range s.Checks {
		cr, err := runCheck(i, c)
		if err != nil {
			return nil, fmt.Errorf("checks[%d]: %w", i, err)
		}
		result.AddCheck(cr)
	}

	slog.Debug("scenario evaluated",
		"name", s.Name,
		"checks", len(s.Checks),
		"pass", result.Pass,
	)
	return result, nil
}

func runCheck(index int, c Check) (CheckResult, error) {
	nt, ok := numericTypes[c.Type]
	if !ok {
		return CheckResult{}, fmt.Errorf("unknown type %q", c.Type)
	}

	out, err := nt.eval(c)
	if err != nil {
		return CheckResult{}, err
	}

	cr := CheckResult{
		Index:   index,
		Op:      c.Op,
		Type:    c.Type,
		Outcome: out,
		Pass:    true,
	}
	prefix := fmt.Sprintf("checks[%d] %s %s(%s, %s)", index, c.Type, c.Op, c.A, c.B)
	fail := func(format string, args ...any) {
		cr.Errors = append(cr.Errors, prefix+": "+fmt.Sprintf(format, args...))
		cr.Pass = false
	}

	if c.Expect.Value != nil {
		want, err := nt.normalize(*c.Expect.Value)
		if err != nil {
			return CheckResult{}, fmt.Errorf("expect.value: %w", err)
		}
		switch {
		case !out.Present:
			fail("result is absent, want %s", want)
		case out.Value != want:
			fail("value = %s, want %s", out.Value, want)
		}
	}
	if c.Expect.Present != nil && out.Present != *c.Expect.Present {
		fail("present = %t, want %t", out.Present, *c.Expect.Present)
	}
	if c.Expect.Overflow != nil && out.Overflow != *c.Expect.Overflow {
		fail("overflow = %t, want %t", out.Overflow, *c.Expect.Overflow)
	}
	if c.Expect.Infinite != nil && out.Infinite != *c.Expect.Infinite {
		fail("infinite = %t, want %t", out.Infinite, *c.Expect.Infinite)
	}

	return cr, nil
}

// numericType binds a type name to its evaluator.
type numericType struct {
	float     bool
	eval      func(Check) (Outcome, error)
	normalize func(Operand) (string, error)
}

// supports reports whether op is defined for the type.
func (nt numericType) supports(op string) bool {
	if nt.float {
		_, ok := floatOps[op]
		return ok
	}
	mode, name, ok := strings.Cut(op, "_")
	if !ok {
		return false
	}
	switch mode {
	case "wrapping", "checked", "saturating", "overflowing":
	default:
		return false
	}
	return name == "add" || name == "sub" || name == "mul"
}

var numericTypes = map[string]numericType{
	"int8":    intType[int8](),
	"int16":   intType[int16](),
	"int32":   intType[int32](),
	"int64":   intType[int64](),
	"uint8":   intType[uint8](),
	"uint16":  intType[uint16](),
	"uint32":  intType[uint32](),
	"uint64":  intType[uint64](),
	"float32": floatType[float32](),
	"float64": floatType[float64](),
}

func intType[T constraints.Integer]() numericType {
	return numericType{
		eval: evalInt[T],
		normalize: func(o Operand) (string, error) {
			v, err := resolveInt[T](o)
			if err != nil {
				return "", err
			}
			return fmt.Sprint(v), nil
		},
	}
}

func floatType[T constraints.Float]() numericType {
	return numericType{
		float: true,
		eval:  evalFloat[T],
		normalize: func(o Operand) (string, error) {
			v, err := resolveFloat[T](o)
			if err != nil {
				return "", err
			}
			return arith.FormatFloat(v), nil
		},
	}
}

// intOps holds the four overflow modes of one integer operation.
type intOps[T constraints.Integer] struct {
	wrapping    func(a, b T) T
	saturating  func(a, b T) T
	checked     func(a, b T) (T, bool)
	overflowing func(a, b T) (T, bool)
}

func intOpsFor[T constraints.Integer](name string) (intOps[T], bool) {
	switch name {
	case "add":
		return intOps[T]{arith.WrappingAdd[T], arith.SaturatingAdd[T], arith.CheckedAdd[T], arith.OverflowingAdd[T]}, true
	case "sub":
		return intOps[T]{arith.WrappingSub[T], arith.SaturatingSub[T], arith.CheckedSub[T], arith.OverflowingSub[T]}, true
	case "mul":
		return intOps[T]{arith.WrappingMul[T], arith.SaturatingMul[T], arith.CheckedMul[T], arith.OverflowingMul[T]}, true
	}
	return intOps[T]{}, false
}

func evalInt[T constraints.Integer](c Check) (Outcome, error) {
	a, err := resolveInt[T](c.A)
	if err != nil {
		return Outcome{}, fmt.Errorf("operand a: %w", err)
	}
	b, err := resolveInt[T](c.B)
	if err != nil {
		return Outcome{}, fmt.Errorf("operand b: %w", err)
	}

	mode, name, _ := strings.Cut(c.Op, "_")
	ops, ok := intOpsFor[T](name)
	if !ok {
		return Outcome{}, fmt.Errorf("unknown operation %q", c.Op)
	}

	_, overflow := ops.overflowing(a, b)
	out := Outcome{Present: true, Overflow: overflow}

	switch mode {
	case "wrapping":
		out.Value = fmt.Sprint(ops.wrapping(a, b))
	case "saturating":
		out.Value = fmt.Sprint(ops.saturating(a, b))
	case "overflowing":
		v, _ := ops.overflowing(a, b)
		out.Value = fmt.Sprint(v)
	case "checked":
		v, present := ops.checked(a, b)
		out.Present = present
		if present {
			out.Value = fmt.Sprint(v)
		}
	default:
		return Outcome{}, fmt.Errorf("unknown operation %q", c.Op)
	}
	return out, nil
}

var floatOps = map[string]struct{}{"add": {}, "sub": {}, "mul": {}}

func evalFloat[T constraints.Float](c Check) (Outcome, error) {
	a, err := resolveFloat[T](c.A)
	if err != nil {
		return Outcome{}, fmt.Errorf("operand a: %w", err)
	}
	b, err := resolveFloat[T](c.B)
	if err != nil {
		return Outcome{}, fmt.Errorf("operand b: %w", err)
	}

	var r T
	switch c.Op {
	case "add":
		r = a + b
	case "sub":
		r = a - b
	case "mul":
		r = a * b
	default:
		return Outcome{}, fmt.Errorf("unknown operation %q", c.Op)
	}

	inf := arith.IsInf(r)
	return Outcome{
		Value:    arith.FormatFloat(r),
		Present:  true,
		Overflow: inf && !arith.IsInf(a) && !arith.IsInf(b),
		Infinite: inf,
	}, nil
}

// resolveInt parses an operand in T: "max", "min" or a literal in range.
func resolveInt[T constraints.Integer](o Operand) (T, error) {
	switch strings.ToLower(o.Raw) {
	case "max":
		return arith.Max[T](), nil
	case "min":
		return arith.Min[T](), nil
	}

	bits := arith.BitSize[T]()
	if arith.Signed[T]() {
		n, err := strconv.ParseInt(o.Raw, 0, bits)
		if err != nil {
			return 0, fmt.Errorf("operand %q: %w", o.Raw, err)
		}
		return T(n), nil
	}
	n, err := strconv.ParseUint(o.Raw, 0, bits)
	if err != nil {
		return 0, fmt.Errorf("operand %q: %w", o.Raw, err)
	}
	return T(n), nil
}

// resolveFloat parses an operand in T: "max", "min" (the most negative finite
// value) or a literal, including "+Inf" and "-Inf".
func resolveFloat[T constraints.Float](o Operand) (T, error) {
	switch strings.ToLower(o.Raw) {
	case "max":
		return arith.MaxFloat[T](), nil
	case "min":
		return -arith.MaxFloat[T](), nil
	}

	n, err := strconv.ParseFloat(o.Raw, arith.FloatBitSize[T]())
	if err != nil {
		return 0, fmt.Errorf("operand %q: %w", o.Raw, err)
	}
	return T(n), nil
}
