// Package report runs the LCS engine over every ordered pair of named
// sequences and writes the text report and the metrics table.
//
// For sequences in file order S1, S2, S3 the pairs are processed as
//
//	S1-S2, S2-S1, S1-S3, S3-S1, S2-S3, S3-S2
//
// Each ordered pair is an independent engine call unless the runner is in
// transpose mode, where the second order reuses the first order's table.
// Results are kept in this canonical order regardless of the number of
// workers. A pair whose table exceeds the cell limit is logged and left out
// of both outputs; every other failure aborts the run before any file is
// written.
package report
