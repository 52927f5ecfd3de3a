// Package cli wires the lcs command: flags and config file into a Runner,
// then report, metrics and the optional plot.
package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/KavyaBanerj/LCS-dynamic-programming/internal/config"
	"github.com/KavyaBanerj/LCS-dynamic-programming/internal/input"
	"github.com/KavyaBanerj/LCS-dynamic-programming/internal/logging"
	"github.com/KavyaBanerj/LCS-dynamic-programming/internal/plot"
	"github.com/KavyaBanerj/LCS-dynamic-programming/internal/report"
)

// Version is reported by --version. Overridden at link time.
var Version = "dev"

const (
	flagPlot       = "plot"
	flagConfig     = "config"
	flagMetricsDir = "metrics-dir"
	flagPlotFile   = "plot-file"
	flagWorkers    = "workers"
	flagMirror     = "mirror"
	flagMaxCells   = "max-cells"
	flagLogLevel   = "log-level"
)

// NewRootCmd returns the lcs command. Each call builds fresh flag state,
// so tests can execute it repeatedly.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lcs [flags] <input_file> <output_file>",
		Short: "Longest common subsequence of every ordered pair of strings",
		Long: "Reads NAME = STRING lines, computes the longest common subsequence of every\n" +
			"ordered pair, and writes a text report plus a runtime metrics table.\n" +
			"With --plot, also charts observed against theoretical table operations.",
		Args:          cobra.ExactArgs(2),
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	def := config.Default()
	f := cmd.Flags()
	f.BoolP(flagPlot, "p", false, "Plot observed vs. theoretical operations")
	f.StringP(flagConfig, "c", "", "Path to a YAML config file")
	f.String(flagMetricsDir, def.MetricsDir, "Metrics directory, relative to the output file's directory")
	f.String(flagPlotFile, def.PlotFile, "Plot file, relative to the metrics directory")
	f.Int(flagWorkers, def.Workers, "Pairs processed concurrently")
	f.String(flagMirror, def.Mirror, `Mirrored order strategy: "recompute" or "transpose"`)
	f.Int(flagMaxCells, def.MaxCells, "Maximum table cells per pair, 0 for unlimited")
	f.String(flagLogLevel, def.LogLevel, "Log level: debug, info, warn or error")

	return cmd
}

// loadConfig reads --config and applies every flag the user set explicitly.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	f := cmd.Flags()
	path, _ := f.GetString(flagConfig)
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	if f.Changed(flagMetricsDir) {
		cfg.MetricsDir, _ = f.GetString(flagMetricsDir)
	}
	if f.Changed(flagPlotFile) {
		cfg.PlotFile, _ = f.GetString(flagPlotFile)
	}
	if f.Changed(flagWorkers) {
		cfg.Workers, _ = f.GetInt(flagWorkers)
	}
	if f.Changed(flagMirror) {
		cfg.Mirror, _ = f.GetString(flagMirror)
	}
	if f.Changed(flagMaxCells) {
		cfg.MaxCells, _ = f.GetInt(flagMaxCells)
	}
	if f.Changed(flagLogLevel) {
		cfg.LogLevel, _ = f.GetString(flagLogLevel)
	}

	return cfg, cfg.Validate()
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}
	inFile, outFile := args[0], args[1]

	seqs, err := input.Load(inFile, logger)
	if err != nil {
		return err
	}

	runner := report.NewRunner(logger, report.Options{
		Workers:  cfg.Workers,
		Mirror:   cfg.Mirror,
		MaxCells: cfg.MaxCells,
	})
	paths := report.ResolvePaths(outFile, cfg.MetricsDir)
	if _, err := report.Generate(cmd.Context(), runner, seqs, paths, logger); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Processing complete. Output written to %s.\n", outFile)

	if plotOn, _ := cmd.Flags().GetBool(flagPlot); !plotOn {
		return nil
	}
	metricsDir := filepath.Dir(paths.Metrics)
	plotFile := cfg.PlotFile
	if !filepath.IsAbs(plotFile) {
		plotFile = filepath.Join(metricsDir, plotFile)
	}
	logger.Info("Plotting runtime metric graph", "path", plotFile)
	_, err = plot.Generate(paths.Metrics, plot.Options{Dir: metricsDir, PlotFile: plotFile}, logger)

	return err
}
