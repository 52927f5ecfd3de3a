// Package lcsdp is the root of the LCS-dynamic-programming module: a small
// toolkit that computes the longest common subsequence of every ordered
// pair of named strings and measures how much work each table fill took.
//
// 🚀 What is in here?
//
//   - lcs/: the DP engine: table fill, backtrace, operation counters
//   - internal/input: NAME = STRING loader with per-line validation
//   - internal/report: pair scheduling, text report, metrics table
//   - internal/metrics: the runtime_metrics.csv record and codec
//   - internal/plot: observed vs. theoretical operations, R² per group
//   - internal/config: optional YAML settings
//   - internal/logging: slog logger backed by charm log
//   - internal/cli: the cobra command
//   - cmd/lcs: the binary
//
// Quick example:
//
//	X = ABCBDAB
//	Y = BDCABA
//
//	LCS(X, Y) = BDAB   (length 4, 56 table cells visited)
//	LCS(Y, X) = BCBA   (same length, different tie-break path)
//
// Run it:
//
//	go run ./cmd/lcs --plot input.txt results/output.txt
package lcsdp
