package lcs

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// tableErrorf wraps an underlying error with Table method context.
func tableErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Table.%s(%d,%d): %w", method, row, col, err)
}

// Table is the LCS length table stored row-major in a flat slice.
// L[i][j] holds the LCS length of X[:i] and Y[:j].
//
// A transposed Table shares its backing slice with the table it was derived
// from; At(i, j) on the view reads the base cell (j, i).
type Table struct {
	r, c       int   // stored rows and columns
	data       []int // flat backing storage, length == r*c
	transposed bool
}

// cellCount returns (m+1)*(n+1) or ErrAllocationExhausted when the product
// overflows int or exceeds maxCells (maxCells <= 0 means unlimited).
func cellCount(m, n, maxCells int) (int, error) {
	rows, cols := m+1, n+1
	if rows > math.MaxInt/cols {
		return 0, fmt.Errorf("%w: %d×%d table overflows int", ErrAllocationExhausted, rows, cols)
	}
	cells := rows * cols
	if maxCells > 0 && cells > maxCells {
		return 0, fmt.Errorf("%w: %s cells (%d×%d) exceeds limit of %s",
			ErrAllocationExhausted, humanize.Comma(int64(cells)), rows, cols, humanize.Comma(int64(maxCells)))
	}

	return cells, nil
}

// newTable allocates a zeroed rows×cols table.
// Complexity: O(rows*cols) time and memory.
func newTable(rows, cols, cells int) *Table {
	return &Table{r: rows, c: cols, data: make([]int, cells)}
}

// Rows returns the number of rows, len(X)+1.
func (t *Table) Rows() int {
	if t.transposed {
		return t.c
	}

	return t.r
}

// Cols returns the number of columns, len(Y)+1.
func (t *Table) Cols() int {
	if t.transposed {
		return t.r
	}

	return t.c
}

// offset maps view coordinates onto the flat buffer without bounds checks.
func (t *Table) offset(i, j int) int {
	if t.transposed {
		return j*t.c + i
	}

	return i*t.c + j
}

// at is the unchecked accessor used by the fill and walk loops.
func (t *Table) at(i, j int) int {
	return t.data[t.offset(i, j)]
}

// At returns L[i][j] or ErrOutOfRange.
// Complexity: O(1).
func (t *Table) At(i, j int) (int, error) {
	if i < 0 || i >= t.Rows() || j < 0 || j >= t.Cols() {
		return 0, tableErrorf("At", i, j, ErrOutOfRange)
	}

	return t.at(i, j), nil
}

// Length returns the bottom-right cell, the LCS length of the full inputs.
func (t *Table) Length() int {
	return t.at(t.Rows()-1, t.Cols()-1)
}

// Transpose returns a view of t with rows and columns swapped. No cells are
// copied; the view is the table ComputeTable(y, x) would have produced.
// Complexity: O(1).
func (t *Table) Transpose() *Table {
	return &Table{r: t.r, c: t.c, data: t.data, transposed: !t.transposed}
}

// SizeBytes estimates the memory held by the backing slice.
func (t *Table) SizeBytes() uint64 {
	return uint64(len(t.data)) * uint64(strconv.IntSize/8)
}

// String implements fmt.Stringer, one bracketed row per line.
// Complexity: O(r*c).
func (t *Table) String() string {
	var sb strings.Builder
	rows, cols := t.Rows(), t.Cols()
	for i := 0; i < rows; i++ {
		sb.WriteString("[")
		for j := 0; j < cols; j++ {
			sb.WriteString(strconv.Itoa(t.at(i, j)))
			if j < cols-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
