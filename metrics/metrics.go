// Package metrics exposes Prometheus instrumentation for placement runs.
//
// Recorder implements placement.Observer: plug it in with
// placement.WithObserver and every cache solve updates the collectors below.
//
//	vidcache_solves_total{outcome}          counter   ok | error
//	vidcache_solve_duration_seconds          histogram per-cache solve time
//	vidcache_dp_cells                        histogram DP cells per solve
//	vidcache_cache_gain{cache}               gauge     optimal latency gain
//	vidcache_cache_used_size{cache}          gauge     storage used
//	vidcache_cache_candidates{cache}         gauge     items offered to the solver
package metrics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/vidcache/placement"
)

// Metric and label names.
const (
	SolvesTotal     = "vidcache_solves_total"
	SolveDuration   = "vidcache_solve_duration_seconds"
	DPCells         = "vidcache_dp_cells"
	CacheGain       = "vidcache_cache_gain"
	CacheUsedSize   = "vidcache_cache_used_size"
	CacheCandidates = "vidcache_cache_candidates"
	LabelOutcome    = "outcome"
	LabelCache      = "cache"
	OutcomeOK       = "ok"
	OutcomeError    = "error"
)

// Recorder holds the registered collectors.
type Recorder struct {
	solves     *prometheus.CounterVec
	duration   prometheus.Histogram
	cells      prometheus.Histogram
	gain       *prometheus.GaugeVec
	used       *prometheus.GaugeVec
	candidates *prometheus.GaugeVec
}

var _ placement.Observer = (*Recorder)(nil)

// NewRecorder creates the collectors and registers them with registry.
// Registering twice on the same registry fails with the registry's error.
func NewRecorder(registry prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		solves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: SolvesTotal,
				Help: "Total number of per-cache knapsack solves by outcome",
			},
			[]string{LabelOutcome},
		),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    SolveDuration,
			Help:    "Wall time of a single cache solve",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 10),
		}),
		cells: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    DPCells,
			Help:    "Dynamic-programming cells evaluated per cache solve",
			Buckets: prometheus.ExponentialBuckets(1024, 8, 9),
		}),
		gain: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: CacheGain,
				Help: "Optimal total latency gain selected for each cache",
			},
			[]string{LabelCache},
		),
		used: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: CacheUsedSize,
				Help: "Storage used by the selected videos of each cache",
			},
			[]string{LabelCache},
		),
		candidates: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: CacheCandidates,
				Help: "Candidate items offered to the solver for each cache",
			},
			[]string{LabelCache},
		),
	}

	for name, c := range map[string]prometheus.Collector{
		SolvesTotal:     r.solves,
		SolveDuration:   r.duration,
		DPCells:         r.cells,
		CacheGain:       r.gain,
		CacheUsedSize:   r.used,
		CacheCandidates: r.candidates,
	} {
		if err := registry.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register %s metric: %w", name, err)
		}
	}

	return r, nil
}

// ObserveSolve records one cache solve. Failed solves only bump the error
// counter and the duration; per-cache gauges keep their last good value.
func (r *Recorder) ObserveSolve(st placement.CacheStats, elapsed time.Duration, err error) {
	r.duration.Observe(elapsed.Seconds())
	if err != nil {
		r.solves.WithLabelValues(OutcomeError).Inc()
		return
	}
	r.solves.WithLabelValues(OutcomeOK).Inc()

	cache := strconv.Itoa(st.CacheID)
	r.candidates.WithLabelValues(cache).Set(float64(st.Candidates))
	r.gain.WithLabelValues(cache).Set(float64(st.Gain))
	r.used.WithLabelValues(cache).Set(float64(st.Size))
	if st.Cells > 0 {
		r.cells.Observe(float64(st.Cells))
	}
}
