package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roach88/overflowdemo/internal/harness"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Filter string // scenario filter (glob pattern)
}

// ScenarioResult holds the result of a single scenario execution.
type ScenarioResult struct {
	Name   string   `json:"name"`
	File   string   `json:"file"`
	Pass   bool     `json:"pass"`
	Checks int      `json:"checks"`
	Errors []string `json:"errors,omitempty"`
}

// CheckSummary holds the overall result of a check run.
type CheckSummary struct {
	Scenarios []ScenarioResult `json:"scenarios"`
	Passed    int              `json:"passed"`
	Failed    int              `json:"failed"`
	Total     int              `json:"total"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check <path>",
		Short: "Run overflow scenarios",
		Long: `Evaluate scenario files against the overflow arithmetic.

A scenario lists operations (wrapping_add, checked_mul, saturating_sub,
overflowing_add, float mul, ...) on a numeric type together with the
expected result. Path may be a single scenario file or a directory that
is searched recursively for *.yaml and *.yml files.

Exit codes:
  0 - All scenarios passed
  1 - One or more scenarios failed
  2 - Command error (invalid paths, etc.)

Examples:
  overflowdemo check ./scenarios
  overflowdemo check ./scenarios --filter "int32*"
  overflowdemo check ./scenarios/unsigned.yaml --format json`,
		Args:          usageArgs(cobra.ExactArgs(1)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter scenarios by glob pattern")

	return cmd
}

func runCheck(opts *CheckOptions, path string, cmd *cobra.Command) error {
	files, err := scenarioFiles(path, opts.Filter)
	if err != nil {
		return err
	}
	slog.Debug("scenarios found", "path", path, "count", len(files))

	f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if opts.Format == "json" {
		f.TraceID = opts.runIDs().Generate()
	}

	if len(files) == 0 {
		if opts.Format == "json" {
			return f.Success(CheckSummary{Scenarios: []ScenarioResult{}})
		}
		fmt.Fprintln(cmd.OutOrStdout(), "No scenarios found.")
		return nil
	}

	summary := CheckSummary{
		Scenarios: make([]ScenarioResult, 0, len(files)),
		Total:     len(files),
	}
	for _, file := range files {
		res := checkScenario(file)
		summary.Scenarios = append(summary.Scenarios, res)
		if res.Pass {
			summary.Passed++
		} else {
			summary.Failed++
		}
	}

	if opts.Format == "json" {
		if summary.Failed > 0 {
			msg := fmt.Sprintf("%d scenario(s) failed", summary.Failed)
			if err := f.Failure("E_CHECK_FAILED", msg, summary); err != nil {
				return err
			}
			return NewExitError(ExitFailure, msg)
		}
		return f.Success(summary)
	}

	return outputCheckText(cmd, summary)
}

// scenarioFiles resolves path to the scenario files to run.
func scenarioFiles(path, filter string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewExitError(ExitCommandError, fmt.Sprintf("path not found: %s", path))
		}
		return nil, WrapExitError(ExitCommandError, "failed to stat path", err)
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	files, err := harness.FindScenarioFiles(path, filter)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to find scenarios", err)
	}
	return files, nil
}

// checkScenario loads and runs a single scenario file.
func checkScenario(file string) ScenarioResult {
	res := ScenarioResult{Name: filepath.Base(file), File: file}

	scenario, err := harness.LoadScenario(file)
	if err != nil {
		res.Errors = []string{fmt.Sprintf("failed to load scenario: %v", err)}
		return res
	}
	res.Name = scenario.Name
	res.Checks = len(scenario.Checks)

	result, err := harness.Run(scenario)
	if err != nil {
		res.Errors = []string{fmt.Sprintf("execution failed: %v", err)}
		return res
	}

	res.Pass = result.Pass
	if !result.Pass {
		res.Errors = result.Errors
	}
	return res
}

func outputCheckText(cmd *cobra.Command, summary CheckSummary) error {
	w := cmd.OutOrStdout()

	for _, s := range summary.Scenarios {
		if s.Pass {
			fmt.Fprintf(w, "✓ %s (%d checks)\n", s.Name, s.Checks)
			continue
		}
		fmt.Fprintf(w, "✗ %s\n", s.Name)
		for _, e := range s.Errors {
			fmt.Fprintf(w, "  %s\n", e)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Check Summary: %d passed, %d failed, %d total\n",
		summary.Passed, summary.Failed, summary.Total)

	if summary.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d scenario(s) failed", summary.Failed))
	}

	fmt.Fprintln(w, "✓ All scenarios passed")
	return nil
}
