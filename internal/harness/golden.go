package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/overflowdemo/internal/canon"
)

// Snapshot converts a result into a canonical JSON value holding the outcome
// of every check. Expectations and error messages are not part of it, so a
// snapshot only changes when the arithmetic does.
func Snapshot(r *Result) canon.Object {
	checks := make(canon.Array, len(r.Checks))
	for i, c := range r.Checks {
		outcome := canon.NewObject(
			canon.O("present", canon.Bool(c.Outcome.Present)),
			canon.O("overflow", canon.Bool(c.Outcome.Overflow)),
			canon.O("infinite", canon.Bool(c.Outcome.Infinite)),
		)
		if c.Outcome.Present {
			outcome["value"] = canon.String(c.Outcome.Value)
		}
		checks[i] = canon.NewObject(
			canon.O("index", canon.Int(int64(c.Index))),
			canon.O("op", canon.String(c.Op)),
			canon.O("type", canon.String(c.Type)),
			canon.O("outcome", outcome),
		)
	}

	return canon.NewObject(
		canon.O("scenario_name", canon.String(r.Name)),
		canon.O("checks", checks),
	)
}

// MarshalSnapshot returns the canonical JSON bytes of Snapshot(r).
func MarshalSnapshot(r *Result) ([]byte, error) {
	return canon.Marshal(Snapshot(r))
}

// RunWithGolden runs the scenario and compares its snapshot against
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}
	return result, AssertGolden(t, scenario.Name, result)
}

// AssertGolden compares an existing result against the golden file named
// scenarioName.
func AssertGolden(t *testing.T, scenarioName string, result *Result) error {
	t.Helper()

	data, err := MarshalSnapshot(result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, data)
	return nil
}
