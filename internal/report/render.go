package report

import (
	"io"
	"strings"

	"github.com/roach88/overflowdemo/internal/canon"
)

// Text renders the report in its human-readable form.
func (r *Report) Text() string {
	var b strings.Builder
	b.WriteString("=== " + r.Title + " ===\n")
	for _, s := range r.Sections {
		b.WriteString("\n--- " + s.Title + " ---\n")
		for _, e := range s.Entries {
			b.WriteString(e.String())
			b.WriteByte('\n')
		}
	}
	if len(r.Summary) > 0 {
		b.WriteString("\n=== Summary ===\n")
		for _, line := range r.Summary {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// WriteText writes the text form of the report to w.
func (r *Report) WriteText(w io.Writer) error {
	_, err := io.WriteString(w, r.Text())
	return err
}

// String renders one entry as "label = value (note)".
func (e Entry) String() string {
	line := e.Label + " = " + e.Value
	if e.Note != "" {
		line += " (" + e.Note + ")"
	}
	if e.Indent {
		line = "  " + line
	}
	return line
}

// Canonical converts the report to a canonical JSON object.
func (r *Report) Canonical() canon.Object {
	sections := make(canon.Array, len(r.Sections))
	for i, s := range r.Sections {
		entries := make(canon.Array, len(s.Entries))
		for j, e := range s.Entries {
			obj := canon.NewObject(
				canon.O("label", canon.String(e.Label)),
				canon.O("value", canon.String(e.Value)),
			)
			if e.Note != "" {
				obj["note"] = canon.String(e.Note)
			}
			if len(e.Fields) > 0 {
				obj["fields"] = e.Fields
			}
			entries[j] = obj
		}
		sections[i] = canon.NewObject(
			canon.O("title", canon.String(s.Title)),
			canon.O("entries", entries),
		)
	}
	return canon.NewObject(
		canon.O("title", canon.String(r.Title)),
		canon.O("sections", sections),
		canon.O("summary", canon.Strings(r.Summary)),
	)
}

// MarshalCanonical returns the report as RFC 8785 canonical JSON.
func (r *Report) MarshalCanonical() ([]byte, error) {
	return canon.Marshal(r.Canonical())
}
