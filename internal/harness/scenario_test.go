package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadScenario_ValidFile(t *testing.T) {
	path := writeScenario(t, `
name: test_scenario
description: "Test scenario for validation"
checks:
  - op: wrapping_add
    type: int32
    a: max
    b: 1
    expect:
      value: min
      overflow: true
`)

	scenario, err := LoadScenario(path)
	require.NoError(t, err)

	assert.Equal(t, "test_scenario", scenario.Name)
	assert.Equal(t, "Test scenario for validation", scenario.Description)
	require.Len(t, scenario.Checks, 1)

	c := scenario.Checks[0]
	assert.Equal(t, "wrapping_add", c.Op)
	assert.Equal(t, "int32", c.Type)
	assert.Equal(t, "max", c.A.Raw)
	assert.Equal(t, "1", c.B.Raw)
	require.NotNil(t, c.Expect.Value)
	assert.Equal(t, "min", c.Expect.Value.Raw)
	require.NotNil(t, c.Expect.Overflow)
	assert.True(t, *c.Expect.Overflow)
	assert.Nil(t, c.Expect.Present)
}

func TestLoadScenario_OperandKeepsRawText(t *testing.T) {
	path := writeScenario(t, `
name: raw
description: "hex literal"
checks:
  - op: wrapping_add
    type: uint32
    a: 0xffffffff
    b: 1
    expect:
      value: 0
`)

	scenario, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "0xffffffff", scenario.Checks[0].A.Raw)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestLoadScenario_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "unknown field",
			content: `
name: typo
description: "d"
checks:
  - op: wrapping_add
    type: int32
    a: max
    b: 1
    expct:
      value: min
`,
			wantErr: "failed to parse YAML",
		},
		{
			name: "operand not scalar",
			content: `
name: list_operand
description: "d"
checks:
  - op: wrapping_add
    type: int32
    a: [1, 2]
    b: 1
    expect:
      value: min
`,
			wantErr: "operand must be a scalar",
		},
		{
			name: "unknown op",
			content: `
name: bad_op
description: "d"
checks:
  - op: wrapping_div
    type: int32
    a: max
    b: 1
    expect:
      value: max
`,
			wantErr: "schema validation failed",
		},
		{
			name: "unknown type",
			content: `
name: bad_type
description: "d"
checks:
  - op: wrapping_add
    type: int128
    a: max
    b: 1
    expect:
      value: max
`,
			wantErr: "schema validation failed",
		},
		{
			name: "name pattern",
			content: `
name: "Has Spaces"
description: "d"
checks:
  - op: wrapping_add
    type: int32
    a: max
    b: 1
    expect:
      value: min
`,
			wantErr: "schema validation failed",
		},
		{
			name: "no checks",
			content: `
name: empty
description: "d"
checks: []
`,
			wantErr: "schema validation failed",
		},
		{
			name: "missing description",
			content: `
name: nodesc
checks:
  - op: wrapping_add
    type: int32
    a: max
    b: 1
    expect:
      value: min
`,
			wantErr: "schema validation failed",
		},
		{
			name: "float with integer mode",
			content: `
name: float_mode
description: "d"
checks:
  - op: checked_add
    type: float32
    a: max
    b: 1
    expect:
      present: true
`,
			wantErr: `operation "checked_add" is not defined for float32`,
		},
		{
			name: "integer with float op",
			content: `
name: int_plain
description: "d"
checks:
  - op: add
    type: int32
    a: max
    b: 1
    expect:
      value: min
`,
			wantErr: `operation "add" is not defined for int32`,
		},
		{
			name: "empty expect",
			content: `
name: no_expect
description: "d"
checks:
  - op: wrapping_add
    type: int32
    a: max
    b: 1
    expect: {}
`,
			wantErr: "expect must set at least one field",
		},
		{
			name: "infinite on integer",
			content: `
name: int_inf
description: "d"
checks:
  - op: wrapping_add
    type: int32
    a: max
    b: 1
    expect:
      infinite: false
`,
			wantErr: "infinite is only meaningful for float types",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScenario(writeScenario(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadScenario_InvalidFixtures(t *testing.T) {
	files, err := FindScenarioFiles("testdata/invalid", "")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, f := range files {
		t.Run(filepath.Base(f), func(t *testing.T) {
			_, err := LoadScenario(f)
			assert.Error(t, err)
		})
	}
}

func TestFindScenarioFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.yaml", "b.yml", "c.txt", "cart-1.yaml"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "d.yaml"), []byte("x"), 0644))

	files, err := FindScenarioFiles(dir, "")
	require.NoError(t, err)
	assert.Len(t, files, 4)

	files, err = FindScenarioFiles(dir, "cart-*")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "cart-1.yaml", filepath.Base(files[0]))

	_, err = FindScenarioFiles(dir, "[")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid filter pattern")
}
