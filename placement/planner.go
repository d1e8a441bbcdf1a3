package placement

import (
	"context"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/vidcache/knapsack"
	"github.com/katalvlaran/vidcache/model"
	"github.com/katalvlaran/vidcache/routing"
)

// Planner runs the full placement pipeline. A Planner holds only options and
// may be reused across problems and goroutines.
type Planner struct {
	opts Options
}

// New returns a Planner configured by DefaultOptions overridden by opts.
func New(opts ...Option) *Planner {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Planner{opts: cfg}
}

// Options returns a copy of the resolved options.
func (pl *Planner) Options() Options {
	return pl.opts
}

// Plan validates p, routes every endpoint, builds candidate items, solves
// every cache concurrently (at most Options.Workers at a time) and assembles
// the per-cache video sets.
//
// Cancelling ctx stops caches that have not started yet; a solve already in
// progress runs to completion. The first solver error cancels the rest and
// is returned wrapped with its cache id.
//
// Complexity: O(R + Σ_c n_c² · maxGain_c) time; peak memory is bounded by
// Workers concurrent DP tables.
func (pl *Planner) Plan(ctx context.Context, p *model.Problem) (*Report, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProblem, err)
	}

	runID := uuid.NewString()
	log := logr.FromContextOrDiscard(ctx).WithValues("run", runID)

	// 1) Path selection and candidate items.
	routes := routing.Nearest(p)
	packs, err := BuildCandidates(p, routes, pl.opts)
	if err != nil {
		return nil, err
	}
	items := 0
	for _, pack := range packs {
		items += len(pack)
	}
	log.Info("candidates built",
		"caches", p.CacheCount,
		"capacity", p.CacheCapacity,
		"routedEndpoints", routing.Reachable(routes),
		"requests", len(p.Requests),
		"items", items,
		"objective", pl.opts.Objective.String(),
	)

	// 2) Independent per-cache solves.
	results := make([]knapsack.Result, p.CacheCount)
	stats := make([]CacheStats, p.CacheCount)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(pl.opts.Workers)
	for c := range packs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, st, err := pl.solveCache(c, packs[c], int64(p.CacheCapacity))
			if err != nil {
				return err
			}
			results[c], stats[c] = res, st
			log.V(1).Info("cache solved", "cache", c, "candidates", st.Candidates, "selected", st.Selected, "gain", st.Gain, "size", st.Size)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error(err, "placement aborted")
		return nil, err
	}

	// 3) Map selections back to video ids.
	assignments := Assemble(p, packs, results)
	for c := range stats {
		stats[c].Videos = len(assignments[c].VideoIDs)
	}
	score := Score(p, assignments)
	log.Info("placement complete", "score", score)

	return &Report{
		RunID:       runID,
		Assignments: assignments,
		Stats:       stats,
		Score:       score,
	}, nil
}

// solveCache runs the solver for one cache and reports to the observer.
func (pl *Planner) solveCache(c int, pack []knapsack.Item, capacity int64) (knapsack.Result, CacheStats, error) {
	start := time.Now()
	res, err := knapsack.Solve(pack, capacity, pl.opts.Solver...)
	st := CacheStats{
		CacheID:    c,
		Candidates: len(pack),
		Selected:   res.Count(),
		Gain:       res.Gain,
		Size:       res.Size,
		Cells:      res.Cells,
	}
	if pl.opts.Observer != nil {
		pl.opts.Observer.ObserveSolve(st, time.Since(start), err)
	}
	if err != nil {
		return knapsack.Result{}, st, fmt.Errorf("placement: cache %d: %w", c, err)
	}

	return res, st, nil
}
