package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCommand_RequiresPath(t *testing.T) {
	_, _, err := execute(t, &RootOptions{}, "check")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "accepts 1 arg")
}

func TestCheckCommand_Flags(t *testing.T) {
	cmd := NewRootCommand()
	checkCmd, _, err := cmd.Find([]string{"check"})
	require.NoError(t, err)

	filterFlag := checkCmd.Flags().Lookup("filter")
	require.NotNil(t, filterFlag)
	assert.Equal(t, "", filterFlag.DefValue)
}

func TestCheck_Directory(t *testing.T) {
	stdout, _, err := execute(t, &RootOptions{}, "check", "testdata/scenarios")
	require.NoError(t, err)

	assert.Contains(t, stdout, "✓ clamp (2 checks)")
	assert.Contains(t, stdout, "✓ wrap (2 checks)")
	assert.Contains(t, stdout, "Check Summary: 2 passed, 0 failed, 2 total")
	assert.Contains(t, stdout, "✓ All scenarios passed")
}

func TestCheck_SingleFile(t *testing.T) {
	stdout, _, err := execute(t, &RootOptions{}, "check", "testdata/scenarios/wrap.yaml")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Check Summary: 1 passed, 0 failed, 1 total")
}

func TestCheck_Filter(t *testing.T) {
	stdout, _, err := execute(t, &RootOptions{}, "check", "testdata/scenarios", "--filter", "wr*")
	require.NoError(t, err)
	assert.Contains(t, stdout, "✓ wrap")
	assert.NotContains(t, stdout, "clamp")
}

func TestCheck_FilterMatchesNothing(t *testing.T) {
	stdout, _, err := execute(t, &RootOptions{}, "check", "testdata/scenarios", "--filter", "nothing*")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No scenarios found.")
}

func TestCheck_InvalidFilter(t *testing.T) {
	_, _, err := execute(t, &RootOptions{}, "check", "testdata/scenarios", "--filter", "[")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestCheck_Failure(t *testing.T) {
	stdout, _, err := execute(t, &RootOptions{}, "check", "testdata/failing")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	assert.Contains(t, stdout, "✗ wrong")
	assert.Contains(t, stdout, "  checks[0] int32 wrapping_add(max, 1): value = -2147483648, want 2147483647")
	assert.Contains(t, stdout, "Check Summary: 0 passed, 1 failed, 1 total")
}

func TestCheck_MissingPath(t *testing.T) {
	_, _, err := execute(t, &RootOptions{}, "check", "testdata/does-not-exist")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "path not found")
}

func TestCheck_MalformedScenario(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: broken\nchecks: [\n"), 0644))

	stdout, _, err := execute(t, &RootOptions{}, "check", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, stdout, "✗ broken.yaml")
	assert.Contains(t, stdout, "failed to load scenario")
}

func TestCheck_JSON(t *testing.T) {
	opts := &RootOptions{RunIDs: NewFixedGenerator("run-1")}
	stdout, _, err := execute(t, opts, "check", "testdata/scenarios", "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Status  string       `json:"status"`
		Data    CheckSummary `json:"data"`
		TraceID string       `json:"trace_id"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "run-1", resp.TraceID)
	assert.Equal(t, 2, resp.Data.Total)
	assert.Equal(t, 2, resp.Data.Passed)
	require.Len(t, resp.Data.Scenarios, 2)
	assert.Equal(t, "clamp", resp.Data.Scenarios[0].Name)
	assert.Equal(t, "wrap", resp.Data.Scenarios[1].Name)
}

func TestCheck_JSONFailure(t *testing.T) {
	opts := &RootOptions{RunIDs: NewFixedGenerator("run-1")}
	stdout, _, err := execute(t, opts, "check", "testdata/failing", "--format", "json")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "E_CHECK_FAILED", resp.Error.Code)
	assert.Equal(t, "1 scenario(s) failed", resp.Error.Message)
}

func TestCheck_RepositoryScenarios(t *testing.T) {
	stdout, _, err := execute(t, &RootOptions{}, "check", "../harness/testdata/scenarios")
	require.NoError(t, err, stdout)
	assert.Contains(t, stdout, "✓ All scenarios passed")
}
