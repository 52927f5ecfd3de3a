package cli_test

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

	"github.com/KavyaBanerj/LCS-dynamic-programming/internal/cli"
	"github.com/KavyaBanerj/LCS-dynamic-programming/internal/config"
	"github.com/KavyaBanerj/LCS-dynamic-programming/internal/input"
	"github.com/KavyaBanerj/LCS-dynamic-programming/internal/metrics"
	"github.com/KavyaBanerj/LCS-dynamic-programming/internal/plot"
	"github.com/KavyaBanerj/LCS-dynamic-programming/internal/report"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const sampleInput = "S1 = ABCBDAB\nS2 = BDCABA\nbad line\nS3 = AYZ\n"

// execute runs the command with args and returns stdout, stderr and the error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.ExecuteContext(context.Background())

	return stdout.String(), stderr.String(), err
}

func writeInput(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestRoot_WritesReportAndMetrics(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, sampleInput)
	out := filepath.Join(dir, "results", "output.txt")

	stdout, stderr, err := execute(t, in, out)
	require.NoError(t, err)
	assert.Equal(t, "Processing complete. Output written to "+out+".\n", stdout)
	assert.Contains(t, stderr, "Skipping invalid line")

	text, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(text), "String 1: S1 - ABCBDAB\n"))

	recs, err := metrics.ReadFile(filepath.Join(dir, "results", "metrics", "runtime_metrics.csv"))
	require.NoError(t, err)
	require.Len(t, recs, 6)
	assert.Equal(t, "S3-S2", recs[5].PairID)

	_, err = os.Stat(filepath.Join(dir, "results", "metrics", config.DefaultPlotFile))
	assert.True(t, os.IsNotExist(err), "plot is opt-in")
}

func TestRoot_Plot(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, sampleInput)
	out := filepath.Join(dir, "output.txt")

	_, _, err := execute(t, "--plot", "--workers", "3", "--mirror", config.MirrorTranspose, "--plot-file", "ops.svg", in, out)
	require.NoError(t, err)

	for _, name := range []string{"ops.svg", plot.CombinedFileName, plot.AdditionalFileName, "runtime_metrics.csv"} {
		_, err := os.Stat(filepath.Join(dir, "metrics", name))
		assert.NoError(t, err, name)
	}
}

// TestRoot_PlotDefaultPath saves the chart beside the metrics table.
func TestRoot_PlotDefaultPath(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, sampleInput)

	_, _, err := execute(t, "-p", in, filepath.Join(dir, "output.txt"))
	require.NoError(t, err)

	png, err := os.ReadFile(filepath.Join(dir, "metrics", "runtime_metrics.png"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}

// TestRoot_ConfigFile checks that the file applies and explicit flags win.
func TestRoot_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, sampleInput)
	out := filepath.Join(dir, "output.txt")
	cfgPath := filepath.Join(dir, "lcs.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("metrics_dir: stats\nworkers: 2\nlog_level: debug\n"), 0o644))

	_, stderr, err := execute(t, "--config", cfgPath, in, out)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "stats", "runtime_metrics.csv"))
	assert.Contains(t, stderr, "LCS table")

	_, _, err = execute(t, "-c", cfgPath, "--metrics-dir", "other", in, out)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "other", "runtime_metrics.csv"))
}

func TestRoot_Errors(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, sampleInput)
	out := filepath.Join(dir, "output.txt")

	single := filepath.Join(dir, "single.txt")
	require.NoError(t, os.WriteFile(single, []byte("S1 = ABC\n"), 0o644))

	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"MissingInput", []string{filepath.Join(dir, "nope.txt"), out}, input.ErrInputNotFound},
		{"InsufficientData", []string{single, out}, input.ErrInsufficientData},
		{"InvalidMirror", []string{"--mirror", "sideways", in, out}, config.ErrInvalidConfig},
		{"InvalidWorkers", []string{"--workers", "0", in, out}, config.ErrInvalidConfig},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := execute(t, tc.args...)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	t.Run("UncreatableOutputDir", func(t *testing.T) {
		_, _, err := execute(t, in, filepath.Join(blocker, "out.txt"))
		assert.ErrorIs(t, err, report.ErrOutputDirUncreatable)
	})
	t.Run("WrongArgCount", func(t *testing.T) {
		_, _, err := execute(t, in)
		assert.Error(t, err)
	})
	t.Run("UnknownLogLevel", func(t *testing.T) {
		_, _, err := execute(t, "--log-level", "loud", in, out)
		assert.ErrorContains(t, err, "unknown level")
	})
}
