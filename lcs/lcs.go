package lcs

import "fmt"

// LCS (Longest Common Subsequence)
//
// Algorithm Outline:
//  1. Let m = len(x), n = len(y). Allocate the (m+1)x(n+1) table L.
//  2. Visit every cell row by row, borders included:
//     L[i][0] = L[0][j] = 0
//     L[i][j] = L[i-1][j-1] + 1            when x[i-1] == y[j-1]
//     L[i][j] = max(L[i-1][j], L[i][j-1])  otherwise
//  3. Walk back from (m, n) to recover one maximal subsequence.
//
// Counting:
//   - TotalOps grows once per visited cell, so it ends at (m+1)(n+1).
//     Downstream metrics use it as the Θ(m·n) work proxy; keep it exact.
//   - CharComparisons grows only on matching cells (i, j >= 1).
//
// Errors:
//   - ErrAllocationExhausted: the table exceeds Options.MaxCells or int range.

// ComputeTable fills the LCS length table for x and y.
// opts may be nil, in which case no cell limit applies.
//
// Example:
//
//	t, cnt, err := ComputeTable(FromString("AXY"), FromString("AYZ"), nil)
//	// t.Length() == 2, cnt.TotalOps == 16, cnt.CharComparisons == 2
func ComputeTable(x, y Sequence, opts *Options) (*Table, Counters, error) {
	m, n := len(x), len(y)

	limit := 0
	if opts != nil {
		limit = opts.MaxCells
	}
	cells, err := cellCount(m, n, limit)
	if err != nil {
		return nil, Counters{}, err
	}

	t := newTable(m+1, n+1, cells)
	var cnt Counters
	stride := n + 1

	for i := 0; i <= m; i++ {
		row := i * stride
		for j := 0; j <= n; j++ {
			cnt.TotalOps++
			switch {
			case i == 0 || j == 0:
				t.data[row+j] = 0
			case x[i-1] == y[j-1]:
				cnt.CharComparisons++
				t.data[row+j] = t.data[row-stride+j-1] + 1
			default:
				t.data[row+j] = max(t.data[row-stride+j], t.data[row+j-1])
			}
		}
	}

	return t, cnt, nil
}

// Reconstruct walks t from (len(x), len(y)) back to a border and returns one
// LCS of x and y. t must have been built from exactly x and y (or be the
// Transpose of the table built from y and x).
//
// Tie-break: when the symbols differ and L[i-1][j] == L[i][j-1] the walk
// moves left (j--). Only a strictly greater upper cell moves up. Changing
// this to >= yields a different, equally long, subsequence.
//
// Complexity: O(m+n) time, O(min(m,n)) extra memory for the output.
func Reconstruct(t *Table, x, y Sequence) string {
	i, j := len(x), len(y)
	if t.Rows() != i+1 || t.Cols() != j+1 {
		panic(fmt.Sprintf("lcs: Reconstruct table is %d×%d, inputs need %d×%d", t.Rows(), t.Cols(), i+1, j+1))
	}

	out := make([]rune, 0, t.Length())
	for i > 0 && j > 0 {
		switch {
		case x[i-1] == y[j-1]:
			out = append(out, x[i-1])
			i, j = i-1, j-1
		case t.at(i-1, j) > t.at(i, j-1):
			i--
		default:
			j--
		}
	}

	// reverse in place
	for l, r := 0, len(out)-1; l < r; l, r = l+1, r-1 {
		out[l], out[r] = out[r], out[l]
	}

	return string(out)
}

// Compute runs ComputeTable and Reconstruct and drops the table.
func Compute(x, y Sequence, opts *Options) (Result, error) {
	t, cnt, err := ComputeTable(x, y, opts)
	if err != nil {
		return Result{}, err
	}
	s := Reconstruct(t, x, y)

	return Result{
		LCS:             s,
		Length:          t.Length(),
		TotalOps:        cnt.TotalOps,
		CharComparisons: cnt.CharComparisons,
	}, nil
}
