package report

import (
	"fmt"
	"log/slog"

	"golang.org/x/exp/constraints"

	"github.com/roach88/overflowdemo/internal/canon"
)

// Report is the complete, ordered output of one run.
type Report struct {
	Title    string
	Sections []Section
	Summary  []string
}

// Section groups the entries for one overflow mode or numeric type.
type Section struct {
	Title   string
	Entries []Entry
}

// Entry is one computed line of the report.
type Entry struct {
	// Label names the operation, e.g. "CheckedAdd(MAX, 1)".
	Label string

	// Value is the rendered outcome, e.g. "None" or "(-2, true)".
	Value string

	// Note is an optional annotation shown in parentheses after the value.
	Note string

	// Indent marks entries nested under the previous line (loop iterations).
	Indent bool

	// Fields holds the typed outcome for JSON output.
	Fields canon.Object
}

// Section titles, in report order.
const (
	TitleWrapping       = "Wrapping Operations"
	TitleChecked        = "Checked Operations"
	TitleSaturating     = "Saturating Operations"
	TitleOverflowing    = "Overflowing Operations"
	TitleUnsigned       = "Unsigned Integer Overflow"
	TitleFloat          = "Floating Point Overflow"
	TitleLoop           = "Overflow in Loop (using wrapping)"
	TitleWide           = "64-bit Integer Overflow"
	TitleMultiplication = "Multiplication Overflow"
	TitleExact          = "Exact Operations"
	TitleDouble         = "Double Precision Overflow"
)

var summary = []string{
	"Go handles overflow:",
	"- Integer operators: wrap silently (two's complement)",
	"- Floating point: overflows to +Inf/-Inf",
	"- Checked operations: return (value, ok)",
	"- Wrapping operations: explicitly wrap",
	"- Saturating operations: clamp at min/max",
	"- Overflowing operations: return (result, overflow flag)",
	"- Exact operations: return an error wrapping ErrOverflow",
}

// Build computes the report.
func Build() *Report {
	r := &Report{
		Title: "Integer Overflow in Go",
		Sections: []Section{
			wrappingSection(),
			checkedSection(),
			saturatingSection(),
			overflowingSection(),
			unsignedSection(),
			floatSection(),
			loopSection(),
			wideSection(),
			multiplicationSection(),
			exactSection(),
			doubleSection(),
		},
		Summary: append([]string(nil), summary...),
	}
	for _, s := range r.Sections {
		slog.Debug("section computed", "title", s.Title, "entries", len(s.Entries))
	}
	return r
}

// Section returns the section with the given title.
func (r *Report) Section(title string) (Section, bool) {
	for _, s := range r.Sections {
		if s.Title == title {
			return s, true
		}
	}
	return Section{}, false
}

// Entry returns the entry with the given label.
func (s Section) Entry(label string) (Entry, bool) {
	for _, e := range s.Entries {
		if e.Label == label {
			return e, true
		}
	}
	return Entry{}, false
}

func valueEntry[T constraints.Integer](label string, v T, note string) Entry {
	return Entry{
		Label:  label,
		Value:  fmt.Sprintf("%d", v),
		Note:   note,
		Fields: canon.NewObject(canon.O("result", canon.Int(int64(v)))),
	}
}

func checkedEntry[T constraints.Integer](label string, v T, ok bool) Entry {
	if !ok {
		return Entry{
			Label:  label,
			Value:  "None",
			Note:   "overflow detected!",
			Fields: canon.NewObject(canon.O("present", canon.Bool(false))),
		}
	}
	return Entry{
		Label: label,
		Value: fmt.Sprintf("Some(%d)", v),
		Fields: canon.NewObject(
			canon.O("present", canon.Bool(true)),
			canon.O("result", canon.Int(int64(v))),
		),
	}
}

func overflowingEntry[T constraints.Integer](label string, v T, overflow bool) Entry {
	return Entry{
		Label: label,
		Value: fmt.Sprintf("(%d, %t)", v, overflow),
		Fields: canon.NewObject(
			canon.O("result", canon.Int(int64(v))),
			canon.O("overflow", canon.Bool(overflow)),
		),
	}
}

func exactEntry[T constraints.Integer](label string, v T, err error) Entry {
	if err != nil {
		return Entry{
			Label:  label,
			Value:  "error",
			Note:   err.Error(),
			Fields: canon.NewObject(canon.O("error", canon.String(err.Error()))),
		}
	}
	return valueEntry(label, v, "")
}

func floatEntry(label, formatted, note string) Entry {
	return Entry{
		Label:  label,
		Value:  formatted,
		Note:   note,
		Fields: canon.NewObject(canon.O("result", canon.String(formatted))),
	}
}

func infEntry(label string, inf bool) Entry {
	return Entry{
		Label:  label,
		Value:  fmt.Sprintf("%t", inf),
		Fields: canon.NewObject(canon.O("infinite", canon.Bool(inf))),
	}
}
