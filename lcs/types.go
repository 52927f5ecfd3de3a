package lcs

import "errors"

var (
	// ErrAllocationExhausted indicates the table would exceed Options.MaxCells
	// or the addressable cell count.
	ErrAllocationExhausted = errors.New("lcs: table allocation exhausted")

	// ErrOutOfRange indicates a table index outside [0,Rows) x [0,Cols).
	ErrOutOfRange = errors.New("lcs: index out of range")
)

// Sequence is an ordered list of code points. Callers must not mutate a
// Sequence while it is being compared.
type Sequence []rune

// FromString converts s into a Sequence of its code points.
func FromString(s string) Sequence {
	return Sequence(s)
}

// String returns the sequence as a string.
func (s Sequence) String() string {
	return string(s)
}

// Options configures table construction.
//
// Fields:
//   - MaxCells: upper bound on (m+1)*(n+1). Zero or negative disables the
//     check; ComputeTable then only fails on int overflow.
type Options struct {
	MaxCells int
}

// DefaultOptions returns Options with no cell limit.
func DefaultOptions() Options {
	return Options{MaxCells: 0}
}

// Counters holds the instrumentation gathered while filling a table.
type Counters struct {
	// TotalOps is the number of visited cells, always (m+1)*(n+1).
	TotalOps int
	// CharComparisons is the number of cells where X[i-1] == Y[j-1].
	CharComparisons int
}

// Result bundles one reconstructed LCS with the counters of its table.
type Result struct {
	LCS             string
	Length          int
	TotalOps        int
	CharComparisons int
}
