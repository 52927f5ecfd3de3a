package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/KavyaBanerj/LCS-dynamic-programming/internal/fileutil"
	"github.com/KavyaBanerj/LCS-dynamic-programming/internal/input"
	"github.com/KavyaBanerj/LCS-dynamic-programming/internal/metrics"
)

// ErrOutputDirUncreatable indicates an output directory could not be created.
var ErrOutputDirUncreatable = errors.New("report: cannot create output directory")

// MetricsFileName is the metrics table written next to the report.
const MetricsFileName = "runtime_metrics.csv"

// ruleWidth is the width of the separator line after each block.
const ruleWidth = 75

// WriteBlock writes the report block of a single pair.
func WriteBlock(w io.Writer, p PairResult) error {
	rec := p.Record()
	_, err := fmt.Fprintf(w,
		"String 1: %s - %s\n"+
			"String 1 Length: %d\n"+
			"String 2: %s - %s\n"+
			"String 2 Length: %d\n"+
			"LCS: %s\n"+
			"LCS Length: %d\n"+
			"Total operations: %d\n"+
			"Character comparisons: %d\n"+
			"Runtime: %s seconds\n"+
			"%s\n\n",
		p.Name1, p.Seq1, rec.Len1,
		p.Name2, p.Seq2, rec.Len2,
		p.Result.LCS, rec.LCSLen,
		rec.TotalOps, rec.CharComps,
		metrics.FormatRuntime(rec.Runtime),
		strings.Repeat("=", ruleWidth),
	)

	return err
}

// WriteReport writes one block per result, in order.
func WriteReport(w io.Writer, results []PairResult) error {
	for _, p := range results {
		if err := WriteBlock(w, p); err != nil {
			return err
		}
	}

	return nil
}

// Paths names the files produced by Generate.
type Paths struct {
	Report  string
	Metrics string
}

// ResolvePaths derives the metrics path from the report path. A relative
// metricsDir is resolved against the report's directory.
func ResolvePaths(outputFile, metricsDir string) Paths {
	if !filepath.IsAbs(metricsDir) {
		metricsDir = filepath.Join(filepath.Dir(outputFile), metricsDir)
	}

	return Paths{Report: outputFile, Metrics: filepath.Join(metricsDir, MetricsFileName)}
}

// PrepareDirs creates the parent directories of every path in p.
func PrepareDirs(p Paths) error {
	for _, path := range []string{p.Report, p.Metrics} {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrOutputDirUncreatable, dir, err)
		}
	}

	return nil
}

// Generate runs every pair, then writes the report and the metrics table.
// Both files are staged in full before either is renamed into place; if
// any step fails, neither file is left behind.
func Generate(ctx context.Context, r *Runner, seqs input.Sequences, p Paths, logger *slog.Logger) ([]PairResult, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if err := PrepareDirs(p); err != nil {
		return nil, err
	}

	results, err := r.Run(ctx, seqs)
	if err != nil {
		return nil, err
	}

	report, err := fileutil.Stage(p.Report, 0o644, func(w io.Writer) error {
		return WriteReport(w, results)
	})
	if err != nil {
		return nil, fmt.Errorf("report: write %s: %w", p.Report, err)
	}
	table, err := fileutil.Stage(p.Metrics, 0o644, func(w io.Writer) error {
		return metrics.Write(w, Records(results))
	})
	if err != nil {
		report.Discard()
		return nil, fmt.Errorf("metrics: write %s: %w", p.Metrics, err)
	}

	logger.Info("Writing runtime metrics", "path", p.Metrics)
	if err := fileutil.CommitAll(table, report); err != nil {
		return nil, fmt.Errorf("report: commit outputs: %w", err)
	}
	logger.Info("Wrote report", "path", p.Report, "pairs", len(results))

	return results, nil
}
