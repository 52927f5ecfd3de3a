package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/KavyaBanerj/LCS-dynamic-programming/internal/config"
	"github.com/KavyaBanerj/LCS-dynamic-programming/internal/input"
	"github.com/KavyaBanerj/LCS-dynamic-programming/internal/metrics"
	"github.com/KavyaBanerj/LCS-dynamic-programming/lcs"
)

// Options configures a Runner.
type Options struct {
	// Workers is the number of pairs processed concurrently; values < 1 mean 1.
	Workers int
	// Mirror selects how the second order of a pair is produced:
	// config.MirrorRecompute or config.MirrorTranspose.
	Mirror string
	// MaxCells bounds each table; 0 means unlimited.
	MaxCells int
	// Now is the clock used for runtimes. Nil means time.Now.
	Now func() time.Time
}

// PairResult is the outcome of one ordered pair.
type PairResult struct {
	Name1, Seq1 string
	Name2, Seq2 string
	Result      lcs.Result
	Runtime     time.Duration
}

// PairID returns "{Name1}-{Name2}".
func (p PairResult) PairID() string {
	return metrics.PairID(p.Name1, p.Name2)
}

// Record converts p into a metrics row.
func (p PairResult) Record() metrics.Record {
	return metrics.Record{
		PairID:    p.PairID(),
		Len1:      len([]rune(p.Seq1)),
		Len2:      len([]rune(p.Seq2)),
		LCSLen:    p.Result.Length,
		TotalOps:  p.Result.TotalOps,
		CharComps: p.Result.CharComparisons,
		Runtime:   p.Runtime.Seconds(),
	}
}

// Records converts results into metrics rows, preserving order.
func Records(results []PairResult) []metrics.Record {
	out := make([]metrics.Record, len(results))
	for i, r := range results {
		out[i] = r.Record()
	}

	return out
}

// Runner drives the engine over all pairs. It holds no per-run state and
// may be reused.
type Runner struct {
	logger  *slog.Logger
	workers int
	mirror  string
	engine  lcs.Options
	now     func() time.Time
}

// NewRunner returns a Runner logging to logger, which may be nil.
func NewRunner(logger *slog.Logger, opts Options) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	mirror := opts.Mirror
	if mirror == "" {
		mirror = config.MirrorRecompute
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	engine := lcs.DefaultOptions()
	engine.MaxCells = opts.MaxCells

	return &Runner{logger: logger, workers: workers, mirror: mirror, engine: engine, now: now}
}

// combination is an unordered pair (a before b in file order) together with
// the slot of its forward result.
type combination struct {
	a, b input.Entry
	slot int
}

// combinations lists the unordered pairs of seqs in file order.
func combinations(seqs input.Sequences) []combination {
	var out []combination
	for i := 0; i < len(seqs); i++ {
		for j := i + 1; j < len(seqs); j++ {
			out = append(out, combination{a: seqs[i], b: seqs[j], slot: 2 * len(out)})
		}
	}

	return out
}

// Run processes every ordered pair of seqs and returns the successful
// results in canonical order. Pairs rejected with lcs.ErrAllocationExhausted
// are logged and omitted. Cancelling ctx stops scheduling new pairs.
func (r *Runner) Run(ctx context.Context, seqs input.Sequences) ([]PairResult, error) {
	combos := combinations(seqs)
	slots := make([]*PairResult, 2*len(combos))

	r.logger.Info("Processing strings", "sequences", len(seqs), "pairs", len(slots), "workers", r.workers, "mirror", r.mirror)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for _, c := range combos {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fwd, back, err := r.runCombination(c)
			if err != nil {
				return err
			}
			slots[c.slot], slots[c.slot+1] = fwd, back
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := make([]PairResult, 0, len(slots))
	for _, s := range slots {
		if s != nil {
			results = append(results, *s)
		}
	}

	return results, nil
}

// runCombination produces both orders of c. A nil result means that order
// was skipped.
func (r *Runner) runCombination(c combination) (fwd, back *PairResult, err error) {
	x, y := lcs.FromString(c.a.Value), lcs.FromString(c.b.Value)

	if r.mirror != config.MirrorTranspose {
		if fwd, err = r.runPair(c.a, c.b, x, y); err != nil {
			return nil, nil, err
		}
		if back, err = r.runPair(c.b, c.a, y, x); err != nil {
			return nil, nil, err
		}
		return fwd, back, nil
	}

	start := r.now()
	t, cnt, err := lcs.ComputeTable(x, y, &r.engine)
	if err != nil {
		return nil, nil, r.skip(err, c.a, c.b, c.b, c.a)
	}
	s := lcs.Reconstruct(t, x, y)
	fwd = r.finish(c.a, c.b, s, cnt, r.now().Sub(start), t)

	// The mirrored table is the transpose and both counters are symmetric.
	start = r.now()
	s = lcs.Reconstruct(t.Transpose(), y, x)
	back = r.finish(c.b, c.a, s, cnt, r.now().Sub(start), t)

	return fwd, back, nil
}

// runPair fills a fresh table for (e1, e2) and reconstructs its LCS.
func (r *Runner) runPair(e1, e2 input.Entry, x, y lcs.Sequence) (*PairResult, error) {
	start := r.now()
	t, cnt, err := lcs.ComputeTable(x, y, &r.engine)
	if err != nil {
		return nil, r.skip(err, e1, e2)
	}
	s := lcs.Reconstruct(t, x, y)

	return r.finish(e1, e2, s, cnt, r.now().Sub(start), t), nil
}

// finish assembles a PairResult and logs it.
func (r *Runner) finish(e1, e2 input.Entry, s string, cnt lcs.Counters, elapsed time.Duration, t *lcs.Table) *PairResult {
	res := &PairResult{
		Name1: e1.Key, Seq1: e1.Value,
		Name2: e2.Key, Seq2: e2.Value,
		Result: lcs.Result{
			LCS:             s,
			Length:          len([]rune(s)),
			TotalOps:        cnt.TotalOps,
			CharComparisons: cnt.CharComparisons,
		},
		Runtime: elapsed,
	}
	r.logger.Debug("LCS table", "pair", res.PairID(), "cells", humanize.Comma(int64(cnt.TotalOps)), "size", humanize.Bytes(t.SizeBytes()))
	r.logger.Info("Processed LCS", "first", e1.Key, "second", e2.Key)

	return res
}

// skip logs a pair-level allocation failure and swallows it; any other
// error is returned unchanged. pairs lists the (first, second) keys affected.
func (r *Runner) skip(err error, pairs ...input.Entry) error {
	if !errors.Is(err, lcs.ErrAllocationExhausted) {
		return fmt.Errorf("report: %w", err)
	}
	for i := 0; i+1 < len(pairs); i += 2 {
		r.logger.Error("Ran out of memory during LCS calculation for pair",
			"pair", metrics.PairID(pairs[i].Key, pairs[i+1].Key), "err", err)
	}

	return nil
}
