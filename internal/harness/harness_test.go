package harness

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/punc/internal/encoder"
)

func newHarness(t *testing.T) *Harness {
	t.Helper()
	table, err := encoder.Build()
	require.NoError(t, err)
	return New(table, nil)
}

func TestRun_Scenarios(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "scenarios", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	h := newHarness(t)
	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			scenario, err := LoadScenario(file)
			require.NoError(t, err)

			result, err := h.Run(context.Background(), scenario)
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
			assert.Equal(t, len(result.Output), result.OutputBytes)
			assert.NoError(t, encoder.Validate(result.Output))
		})
	}
}

func TestRun_ObservesGlobal(t *testing.T) {
	h := newHarness(t)
	result, err := h.Run(context.Background(), &Scenario{
		Name:   "flag",
		Source: "globalThis.flag = true",
		Expect: Expectation{Global: "flag", Value: true},
	})
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Equal(t, "true", result.Observed)
}

func TestRun_WrongValueFails(t *testing.T) {
	h := newHarness(t)
	result, err := h.Run(context.Background(), &Scenario{
		Name:   "wrong",
		Source: "return 2",
		Expect: Expectation{Value: 3},
	})
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "expected 3, got 2")
}

func TestRun_UnsetGlobalFails(t *testing.T) {
	h := newHarness(t)
	result, err := h.Run(context.Background(), &Scenario{
		Name:   "unset",
		Source: "var local = 1",
		Expect: Expectation{Global: "missing", Value: 1},
	})
	require.NoError(t, err)
	assert.False(t, result.Pass)
	assert.Contains(t, result.Errors[0], `global "missing" is not set`)
}

func TestRun_ThrowingProgramFails(t *testing.T) {
	h := newHarness(t)
	result, err := h.Run(context.Background(), &Scenario{
		Name:   "throws",
		Source: "throw new Error('boom')",
		Expect: Expectation{Value: 1},
	})
	require.NoError(t, err)
	assert.False(t, result.Pass)
	assert.Contains(t, result.Errors[0], "running program")
	assert.Contains(t, result.Errors[0], "boom")
}

func TestRun_CancelledContext(t *testing.T) {
	h := newHarness(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.Run(ctx, &Scenario{Name: "c", Source: "return 1", Expect: Expectation{Value: 1}})
	require.Error(t, err)
}

func TestRunWithGolden_ReturnOne(t *testing.T) {
	h := newHarness(t)
	scenario, err := LoadScenario(filepath.Join("testdata", "scenarios", "return_one.yaml"))
	require.NoError(t, err)

	result, err := h.RunWithGolden(t, scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass)
}

func TestLoadScenario_Valid(t *testing.T) {
	scenario, err := LoadScenario(filepath.Join("testdata", "scenarios", "sets_global.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "sets_global", scenario.Name)
	assert.Equal(t, "globalThis.answer = 6 * 7\n", scenario.Source)
	assert.Equal(t, "answer", scenario.Expect.Global)
	assert.Equal(t, 42, scenario.Expect.Value)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestParseScenario_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "unknown field",
			yaml:    "name: a\ndescription: b\nsource: c\nexpects:\n  value: 1\n",
			wantErr: "failed to parse YAML",
		},
		{
			name:    "missing name",
			yaml:    "description: b\nsource: c\nexpect:\n  value: 1\n",
			wantErr: "name is required",
		},
		{
			name:    "missing description",
			yaml:    "name: a\nsource: c\nexpect:\n  value: 1\n",
			wantErr: "description is required",
		},
		{
			name:    "missing source",
			yaml:    "name: a\ndescription: b\nexpect:\n  value: 1\n",
			wantErr: "source is required",
		},
		{
			name:    "missing value",
			yaml:    "name: a\ndescription: b\nsource: c\nexpect:\n  global: g\n",
			wantErr: "expect.value is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadScenario_FromTempFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.yaml")
	content := "name: tmp\ndescription: d\nsource: return 'x'\nexpect:\n  value: x\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	scenario, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "return 'x'", scenario.Source)
	assert.Equal(t, "x", scenario.Expect.Value)
}
