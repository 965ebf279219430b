package report

import (
	"fmt"

	"github.com/roach88/overflowdemo/internal/arith"
	"github.com/roach88/overflowdemo/internal/canon"
)

// LoopSteps is the number of wrapping increments in the loop section.
const LoopSteps = 10

func wrappingSection() Section {
	b := arith.BoundsOf[int32]()
	return Section{
		Title: TitleWrapping,
		Entries: []Entry{
			valueEntry("int32 MAX", b.Max, ""),
			valueEntry("WrappingAdd(MAX, 1)", arith.WrappingAdd(b.Max, 1), "wraps"),
			valueEntry("int32 MIN", b.Min, ""),
			valueEntry("WrappingSub(MIN, 1)", arith.WrappingSub(b.Min, 1), "wraps"),
		},
	}
}

func checkedSection() Section {
	maxI32 := arith.Max[int32]()
	sum, sumOK := arith.CheckedAdd(maxI32, 1)
	product, productOK := arith.CheckedMul(maxI32, 2)
	return Section{
		Title: TitleChecked,
		Entries: []Entry{
			checkedEntry("CheckedAdd(MAX, 1)", sum, sumOK),
			checkedEntry("CheckedMul(MAX, 2)", product, productOK),
		},
	}
}

func saturatingSection() Section {
	b := arith.BoundsOf[int32]()
	return Section{
		Title: TitleSaturating,
		Entries: []Entry{
			valueEntry("SaturatingAdd(MAX, 1)", arith.SaturatingAdd(b.Max, 1), "clamped to MAX"),
			valueEntry("SaturatingAdd(MAX, 100)", arith.SaturatingAdd(b.Max, 100), "clamped to MAX"),
			valueEntry("SaturatingSub(MIN, 1)", arith.SaturatingSub(b.Min, 1), "clamped to MIN"),
		},
	}
}

func overflowingSection() Section {
	maxI32 := arith.Max[int32]()
	sum, sumOverflow := arith.OverflowingAdd(maxI32, 1)
	product, productOverflow := arith.OverflowingMul(maxI32, 2)
	return Section{
		Title: TitleOverflowing,
		Entries: []Entry{
			overflowingEntry("OverflowingAdd(MAX, 1)", sum, sumOverflow),
			overflowingEntry("OverflowingMul(MAX, 2)", product, productOverflow),
		},
	}
}

func unsignedSection() Section {
	maxU32 := arith.Max[uint32]()
	return Section{
		Title: TitleUnsigned,
		Entries: []Entry{
			valueEntry("uint32 MAX", maxU32, ""),
			valueEntry("WrappingAdd(MAX, 1)", arith.WrappingAdd(maxU32, 1), "wraps to 0"),
		},
	}
}

func floatSection() Section {
	maxF32 := arith.MaxFloat[float32]()
	doubled := maxF32 * 2.0
	return Section{
		Title: TitleFloat,
		Entries: []Entry{
			floatEntry("float32 MAX", arith.FormatFloat(maxF32), ""),
			floatEntry("MAX * 2.0", arith.FormatFloat(doubled), "infinity"),
			infEntry("IsInf(MAX * 2.0)", arith.IsInf(doubled)),
		},
	}
}

// WrapLoop increments start by one with wrapping, steps times, and returns the
// counter after each step.
func WrapLoop(start int32, steps int) []int32 {
	values := make([]int32, 0, steps)
	counter := start
	for i := 0; i < steps; i++ {
		counter = arith.WrappingAdd(counter, 1)
		values = append(values, counter)
	}
	return values
}

func loopSection() Section {
	start := arith.Max[int32]() - 5
	entries := []Entry{valueEntry("Starting counter at int32 MAX - 5", start, "")}
	for i, v := range WrapLoop(start, LoopSteps) {
		entries = append(entries, Entry{
			Label:  fmt.Sprintf("Iteration %d: counter", i+1),
			Value:  fmt.Sprintf("%d", v),
			Indent: true,
			Fields: canon.NewObject(
				canon.O("iteration", canon.Int(i+1)),
				canon.O("counter", canon.Int(v)),
			),
		})
	}
	return Section{Title: TitleLoop, Entries: entries}
}

func wideSection() Section {
	maxI64 := arith.Max[int64]()
	return Section{
		Title: TitleWide,
		Entries: []Entry{
			valueEntry("int64 MAX", maxI64, ""),
			valueEntry("WrappingAdd(MAX, 1)", arith.WrappingAdd(maxI64, 1), "wraps"),
		},
	}
}

func multiplicationSection() Section {
	a, b := int32(1000000), int32(1000000)
	return Section{
		Title: TitleMultiplication,
		Entries: []Entry{
			valueEntry("WrappingMul(1000000, 1000000)", arith.WrappingMul(a, b), "overflow!"),
			valueEntry("int64 product", arith.WrappingMul(int64(a), int64(b)), "expected"),
		},
	}
}

func exactSection() Section {
	maxI32 := arith.Max[int32]()
	safe, safeErr := arith.AddExact(maxI32, 0)
	sum, sumErr := arith.AddExact(maxI32, 1)
	product, productErr := arith.MulExact(int32(1000000), 1000000)
	return Section{
		Title: TitleExact,
		Entries: []Entry{
			exactEntry("AddExact(MAX, 0)", safe, safeErr),
			exactEntry("AddExact(MAX, 1)", sum, sumErr),
			exactEntry("MulExact(1000000, 1000000)", product, productErr),
		},
	}
}

func doubleSection() Section {
	maxF64 := arith.MaxFloat[float64]()
	doubled := maxF64 * 2.0
	return Section{
		Title: TitleDouble,
		Entries: []Entry{
			floatEntry("float64 MAX", arith.FormatFloat(maxF64), ""),
			floatEntry("MAX * 2.0", arith.FormatFloat(doubled), "infinity"),
			infEntry("IsInf(MAX * 2.0)", arith.IsInf(doubled)),
		},
	}
}
