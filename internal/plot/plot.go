package plot

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"

	"github.com/KavyaBanerj/LCS-dynamic-programming/internal/fileutil"
	"github.com/KavyaBanerj/LCS-dynamic-programming/internal/metrics"
)

// File names written into Options.Dir.
const (
	CombinedFileName   = "combined_metrics.csv"
	AdditionalFileName = "additional_metrics.csv"
)

// AdditionalHeader is the header of the additional metrics table.
var AdditionalHeader = []string{"str1_len", "str2_len", "tot_ops", "theoretical_ops", "r_squared"}

// Options configures Generate.
type Options struct {
	// Dir receives the combined and additional CSV tables.
	Dir string
	// PlotFile is the chart path; its extension selects the format.
	PlotFile string
	// DPI of PNG output; 0 means DefaultDPI.
	DPI int
}

// WriteAdditional emits AdditionalHeader followed by rows.
func WriteAdditional(w io.Writer, rows []AdditionalRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(AdditionalHeader); err != nil {
		return err
	}
	for _, r := range rows {
		err := cw.Write([]string{
			strconv.Itoa(r.M),
			strconv.Itoa(r.N),
			strconv.Itoa(r.Ops),
			strconv.Itoa(r.Theoretical),
			strconv.FormatFloat(r.RSquared, 'g', -1, 64),
		})
		if err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// Generate reads metricsFile, renders the chart and writes both auxiliary
// tables. logger may be nil.
func Generate(metricsFile string, opts Options, logger *slog.Logger) (*Analysis, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	recs, err := metrics.ReadFile(metricsFile)
	if err != nil {
		return nil, err
	}
	a, err := Analyze(recs)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, metricsFile)
	}
	for _, g := range a.Groups {
		logger.Debug("Plot group", "m", g.M, "points", len(g.Points), "r_squared", g.RSquared)
	}

	p, err := Chart(a)
	if err != nil {
		return nil, err
	}
	err = fileutil.WriteAtomic(opts.PlotFile, 0o644, func(w io.Writer) error {
		return Encode(w, p, opts.PlotFile, opts.DPI)
	})
	if err != nil {
		return nil, fmt.Errorf("plot: write %s: %w", opts.PlotFile, err)
	}
	logger.Info("Saved plot", "path", opts.PlotFile, "groups", len(a.Groups))

	combined := filepath.Join(opts.Dir, CombinedFileName)
	if err := metrics.WriteFile(combined, a.Combined); err != nil {
		return nil, err
	}

	additional := filepath.Join(opts.Dir, AdditionalFileName)
	err = fileutil.WriteAtomic(additional, 0o644, func(w io.Writer) error {
		return WriteAdditional(w, a.Additional())
	})
	if err != nil {
		return nil, fmt.Errorf("plot: write %s: %w", additional, err)
	}
	logger.Info("Wrote plot tables", "combined", combined, "additional", additional)

	return a, nil
}
