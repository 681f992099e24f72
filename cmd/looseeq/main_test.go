package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"looseeq/conformance"
)

func TestMain(m *testing.M) {
	logger = zap.NewNop()
	goleak.VerifyTestMain(m)
}

func TestReadLines(t *testing.T) {
	in := strings.NewReader("0\n\n# comment\n  \"1\"  \nNaN\n")
	lines, err := readLines(in)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", `"1"`, "NaN"}, lines)
}

func TestRunBatchKeepsInputOrder(t *testing.T) {
	inputs := []string{"0", "NaN", "5", "[1,", "null"}
	var out bytes.Buffer

	failed, err := runBatch(context.Background(), &out, inputs, 3, false)
	require.NoError(t, err)
	assert.Equal(t, 1, failed)

	blocks := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n\n")
	require.Len(t, blocks, len(inputs))
	assert.True(t, strings.HasPrefix(blocks[0], "const x = 0;\nx == false"))
	assert.Equal(t, "const x = NaN;\nNothing is loosely equal to NaN.", blocks[1])
	assert.Equal(t, "const x = 5;\nx == 5\nx == \"5\"", blocks[2])
	assert.True(t, strings.HasPrefix(blocks[3], "undefined\nSyntaxError"))
	assert.Equal(t, "const x = null;\nx == undefined\nx == null", blocks[4])
}

func TestRunBatchManyInputs(t *testing.T) {
	inputs := make([]string, 200)
	for i := range inputs {
		inputs[i] = `"` + strings.Repeat("a", i%7) + `"`
	}
	var out bytes.Buffer
	failed, err := runBatch(context.Background(), &out, inputs, 8, true)
	require.NoError(t, err)
	assert.Zero(t, failed)
	assert.Equal(t, len(inputs), strings.Count(out.String(), "const x = "))
}

func TestRunBatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	_, err := runBatch(ctx, &out, []string{"0", "1"}, 2, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestExplainOnce(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, explainOnce(&out, `Object("abc")`, false))
	assert.True(t, strings.HasPrefix(out.String(), "const x = Object(\"abc\");\nx == \"abc\"\n"))

	out.Reset()
	err := explainOnce(&out, "foo", false)
	assert.ErrorIs(t, err, errFailed)
	assert.Contains(t, out.String(), "ReferenceError: foo is not defined")
}

func TestPrintResults(t *testing.T) {
	results := []conformance.TestResult{
		{Test: conformance.LoadedTest{File: "a.yaml", Test: conformance.TestCase{Name: "ok"}}, Passed: true},
		{Test: conformance.LoadedTest{File: "a.yaml", Test: conformance.TestCase{Name: "bad"}}, Error: assert.AnError},
	}
	var out bytes.Buffer
	stats := printResults(&out, results, false)
	assert.Equal(t, 1, stats.Failed)
	assert.NotContains(t, out.String(), "PASS")
	assert.Contains(t, out.String(), "FAIL a.yaml: bad")
	assert.Contains(t, out.String(), "1 passed, 1 failed, 0 skipped (2 total)")
}

func TestRootCommand(t *testing.T) {
	t.Setenv("LOOSEEQ_LOG_LEVEL", "")
	t.Setenv("LOOSEEQ_LOG_FORMAT", "")
	t.Setenv("LOOSEEQ_WORKERS", "")

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("logging:\n  level: error\n"), 0644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--config", cfgPath, `"1"`})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		logger = zap.NewNop()
	})

	require.NoError(t, rootCmd.ExecuteContext(context.Background()))
	lines := strings.Split(out.String(), "\n")
	assert.Equal(t, `const x = "1";`, lines[0])
	assert.Equal(t, "x == true", lines[1])
}

func TestConformanceCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "none.yaml"), "conformance"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		logger = zap.NewNop()
	})

	require.NoError(t, rootCmd.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), "0 failed")
}
