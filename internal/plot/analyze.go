// Package plot compares the observed operation counts of the metrics table
// with the theoretical m·n cost of the LCS table fill.
//
// Records are grouped by the length m of the first string. A record whose
// lengths differ also contributes a mirrored point to the group of the
// second length, since the fill cost is symmetric. Each group becomes one
// observed and one theoretical series in the rendered chart, together with
// the R² of the observed values against the theoretical ones.
package plot

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/KavyaBanerj/LCS-dynamic-programming/internal/metrics"
)

// ErrNoMetrics indicates an empty metrics table.
var ErrNoMetrics = errors.New("plot: no metrics to plot")

// Point is one (n, operations) sample of a group.
type Point struct {
	N           int
	Ops         int
	Theoretical int // m*n
}

// Group holds the points sharing the first-string length M, sorted by N.
type Group struct {
	M        int
	Points   []Point
	RSquared float64 // NaN with fewer than two points
}

// Analysis is the outcome of Analyze.
type Analysis struct {
	// Groups in order of first appearance of M.
	Groups []Group
	// Combined holds the input records and their mirrors, stably sorted by Len1.
	Combined []metrics.Record
}

// MirrorID names the mirrored record of a pair with lengths m and n.
func MirrorID(m, n int) string {
	return fmt.Sprintf("S%d-S%d", n, m)
}

// Analyze groups recs, adds mirrored points and computes per-group R².
func Analyze(recs []metrics.Record) (*Analysis, error) {
	if len(recs) == 0 {
		return nil, ErrNoMetrics
	}

	var (
		groups   []Group
		index    = make(map[int]int)
		combined = make([]metrics.Record, 0, 2*len(recs))
	)
	add := func(m, n, ops int) {
		gi, ok := index[m]
		if !ok {
			gi = len(groups)
			index[m] = gi
			groups = append(groups, Group{M: m})
		}
		groups[gi].Points = append(groups[gi].Points, Point{N: n, Ops: ops, Theoretical: m * n})
	}

	for _, r := range recs {
		m, n := r.Len1, r.Len2
		combined = append(combined, r)
		add(m, n, r.TotalOps)
		if m == n {
			continue
		}

		mirror := r
		mirror.Len1, mirror.Len2 = n, m
		mirror.PairID = MirrorID(m, n)
		combined = append(combined, mirror)
		add(n, m, r.TotalOps)
	}

	for i := range groups {
		g := &groups[i]
		slices.SortStableFunc(g.Points, func(a, b Point) int { return a.N - b.N })
		observed, theoretical := g.series()
		g.RSquared = RSquared(observed, theoretical)
	}
	slices.SortStableFunc(combined, func(a, b metrics.Record) int { return a.Len1 - b.Len1 })

	return &Analysis{Groups: groups, Combined: combined}, nil
}

// series splits g into observed and theoretical values.
func (g Group) series() (observed, theoretical []float64) {
	observed = make([]float64, len(g.Points))
	theoretical = make([]float64, len(g.Points))
	for i, p := range g.Points {
		observed[i] = float64(p.Ops)
		theoretical[i] = float64(p.Theoretical)
	}

	return observed, theoretical
}

// RSquared returns the coefficient of determination of theoretical as a
// predictor of observed, 1 - SS_res/SS_tot.
//
// Degenerate inputs:
//   - fewer than two points yield NaN;
//   - a constant observed series yields 1 on a perfect fit and 0 otherwise.
func RSquared(observed, theoretical []float64) float64 {
	if len(observed) != len(theoretical) {
		panic("plot: RSquared length mismatch")
	}
	if len(observed) < 2 {
		return math.NaN()
	}
	if slices.Min(observed) == slices.Max(observed) {
		if slices.Equal(observed, theoretical) {
			return 1
		}
		return 0
	}

	return stat.RSquaredFrom(theoretical, observed, nil)
}

// AdditionalRow is one line of the additional metrics table.
type AdditionalRow struct {
	M, N        int
	Ops         int
	Theoretical int
	RSquared    float64
}

// Additional flattens the groups into rows, stably sorted by M.
func (a *Analysis) Additional() []AdditionalRow {
	var rows []AdditionalRow
	for _, g := range a.Groups {
		for _, p := range g.Points {
			rows = append(rows, AdditionalRow{M: g.M, N: p.N, Ops: p.Ops, Theoretical: p.Theoretical, RSquared: g.RSquared})
		}
	}
	slices.SortStableFunc(rows, func(x, y AdditionalRow) int { return x.M - y.M })

	return rows
}
