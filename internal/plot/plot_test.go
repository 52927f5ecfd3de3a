package plot_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KavyaBanerj/LCS-dynamic-programming/internal/metrics"
	"github.com/KavyaBanerj/LCS-dynamic-programming/internal/plot"
)

func TestLegendLabel(t *testing.T) {
	assert.Equal(t, "(m = 7)  R² = 0.5000", plot.LegendLabel(plot.Group{M: 7, RSquared: 0.5}))
	assert.Equal(t, "(m = 3)  R² = -0.1007", plot.LegendLabel(plot.Group{M: 3, RSquared: -0.100694}))

	a, err := plot.Analyze([]metrics.Record{{PairID: "A-B", Len1: 2, Len2: 2, TotalOps: 9}})
	require.NoError(t, err)
	assert.Equal(t, "(m = 2)  R² = NaN", plot.LegendLabel(a.Groups[0]))
}

func TestWriteAdditional(t *testing.T) {
	var buf bytes.Buffer
	err := plot.WriteAdditional(&buf, []plot.AdditionalRow{
		{M: 3, N: 6, Ops: 28, Theoretical: 18, RSquared: 0.25},
	})
	require.NoError(t, err)
	assert.Equal(t, "str1_len,str2_len,tot_ops,theoretical_ops,r_squared\n3,6,28,18,0.25\n", buf.String())
}

// TestGenerate renders the chart and writes both auxiliary tables.
func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	metricsFile := filepath.Join(dir, "runtime_metrics.csv")
	require.NoError(t, metrics.WriteFile(metricsFile, sampleRecords()))

	plotFile := filepath.Join(dir, "ops.png")
	a, err := plot.Generate(metricsFile, plot.Options{Dir: dir, PlotFile: plotFile, DPI: 48}, nil)
	require.NoError(t, err)
	require.Len(t, a.Groups, 3)

	png, err := os.ReadFile(plotFile)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG\r\n\x1a\n")))

	combined, err := metrics.ReadFile(filepath.Join(dir, plot.CombinedFileName))
	require.NoError(t, err)
	assert.Equal(t, a.Combined, combined)

	additional, err := os.ReadFile(filepath.Join(dir, plot.AdditionalFileName))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(additional)), "\n")
	assert.Len(t, lines, 13)
	assert.Equal(t, strings.Join(plot.AdditionalHeader, ","), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "3,6,28,18,"))
}

// TestGenerate_SVG selects the vector backend from the extension.
func TestGenerate_SVG(t *testing.T) {
	dir := t.TempDir()
	metricsFile := filepath.Join(dir, "m.csv")
	require.NoError(t, metrics.WriteFile(metricsFile, sampleRecords()))

	plotFile := filepath.Join(dir, "ops.svg")
	_, err := plot.Generate(metricsFile, plot.Options{Dir: dir, PlotFile: plotFile}, nil)
	require.NoError(t, err)

	svg, err := os.ReadFile(plotFile)
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
}

func TestGenerate_NoMetrics(t *testing.T) {
	dir := t.TempDir()
	metricsFile := filepath.Join(dir, "m.csv")
	require.NoError(t, metrics.WriteFile(metricsFile, nil))

	plotFile := filepath.Join(dir, "ops.png")
	_, err := plot.Generate(metricsFile, plot.Options{Dir: dir, PlotFile: plotFile}, nil)
	assert.ErrorIs(t, err, plot.ErrNoMetrics)

	_, statErr := os.Stat(plotFile)
	assert.True(t, os.IsNotExist(statErr))
}

func TestGenerate_MalformedMetrics(t *testing.T) {
	dir := t.TempDir()
	metricsFile := filepath.Join(dir, "m.csv")
	content := strings.Join(metrics.Header, ",") + "\nS1-S2,x,6,4,56,12,0.1\n"
	require.NoError(t, os.WriteFile(metricsFile, []byte(content), 0o644))

	_, err := plot.Generate(metricsFile, plot.Options{Dir: dir, PlotFile: filepath.Join(dir, "p.png")}, nil)
	assert.ErrorIs(t, err, metrics.ErrMalformedRow)
}

func TestGenerate_UnknownFormat(t *testing.T) {
	dir := t.TempDir()
	metricsFile := filepath.Join(dir, "m.csv")
	require.NoError(t, metrics.WriteFile(metricsFile, sampleRecords()))

	_, err := plot.Generate(metricsFile, plot.Options{Dir: dir, PlotFile: filepath.Join(dir, "p.bmp")}, nil)
	assert.Error(t, err)
}
