package placement

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/katalvlaran/vidcache/knapsack"
	"github.com/katalvlaran/vidcache/model"
)

// Sentinel errors.
var (
	// ErrInvalidProblem wraps any model validation failure seen by Plan.
	ErrInvalidProblem = errors.New("placement: invalid problem")

	// ErrBadWorkers indicates a non-positive worker count passed to WithWorkers.
	ErrBadWorkers = errors.New("placement: workers must be positive")

	// ErrUnknownObjective indicates an objective name ParseObjective does not know.
	ErrUnknownObjective = errors.New("placement: unknown objective")

	// ErrUnknownPolicy indicates a policy name ParseNegativeGainPolicy does not know.
	ErrUnknownPolicy = errors.New("placement: unknown negative gain policy")

	// ErrGainOverflow indicates an item gain that does not fit in int64,
	// from volume weighting or from merging requests.
	ErrGainOverflow = errors.New("placement: item gain overflows int64")
)

// Objective selects what a candidate item is worth.
type Objective int

const (
	// LatencyGain values an item at data-center latency − cache latency.
	LatencyGain Objective = iota

	// WeightedByVolume multiplies LatencyGain by the request count.
	WeightedByVolume
)

// String returns the configuration name of o.
func (o Objective) String() string {
	switch o {
	case LatencyGain:
		return "latency"
	case WeightedByVolume:
		return "volume"
	default:
		return "unknown"
	}
}

// ParseObjective is the inverse of Objective.String.
func ParseObjective(s string) (Objective, error) {
	switch s {
	case "latency", "":
		return LatencyGain, nil
	case "volume":
		return WeightedByVolume, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownObjective, s)
	}
}

// NegativeGainPolicy decides the fate of requests whose nearest cache is
// slower than the data center.
type NegativeGainPolicy int

const (
	// ExcludeNegative drops such requests from every candidate list.
	ExcludeNegative NegativeGainPolicy = iota

	// ClampNegative keeps them with gain 0; the solver never picks them.
	ClampNegative
)

// String returns the configuration name of p.
func (p NegativeGainPolicy) String() string {
	switch p {
	case ExcludeNegative:
		return "exclude"
	case ClampNegative:
		return "clamp"
	default:
		return "unknown"
	}
}

// ParseNegativeGainPolicy is the inverse of NegativeGainPolicy.String.
func ParseNegativeGainPolicy(s string) (NegativeGainPolicy, error) {
	switch s {
	case "exclude", "":
		return ExcludeNegative, nil
	case "clamp":
		return ClampNegative, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// CacheStats summarises one cache's solve.
type CacheStats struct {
	CacheID    int
	Candidates int   // items offered to the solver
	Selected   int   // items chosen
	Videos     int   // distinct videos stored
	Gain       int64 // optimal total gain
	Size       int64 // storage used
	Cells      int64 // DP cells evaluated
}

// Report is the outcome of Planner.Plan.
type Report struct {
	RunID       string
	Assignments []model.CacheAssignment // one per cache id, ascending
	Stats       []CacheStats            // aligned with Assignments
	Score       int64                   // see Score
}

// Observer receives one call per cache solve, successful or not.
// Implementations must be safe for concurrent use.
type Observer interface {
	ObserveSolve(st CacheStats, elapsed time.Duration, err error)
}

// Options configures candidate building and the planner.
//
// Objective    – LatencyGain (default) or WeightedByVolume.
// NegativeGain – ExcludeNegative (default) or ClampNegative.
// MergeVideos  – one item per (cache, video) instead of per request. Default false.
// Workers      – concurrent cache solves. Default runtime.GOMAXPROCS(0).
// Solver       – options forwarded to knapsack.Solve.
// Observer     – optional solve hook (metrics). Default nil.
type Options struct {
	Objective    Objective
	NegativeGain NegativeGainPolicy
	MergeVideos  bool
	Workers      int
	Solver       []knapsack.Option
	Observer     Observer
}

// Option represents a functional option for configuring a Planner.
type Option func(*Options)

// WithObjective sets how candidate items are valued.
func WithObjective(o Objective) Option {
	return func(opts *Options) {
		opts.Objective = o
	}
}

// WithNegativeGain sets the negative-gain policy.
func WithNegativeGain(p NegativeGainPolicy) Option {
	return func(opts *Options) {
		opts.NegativeGain = p
	}
}

// WithMergeVideos folds duplicate (cache, video) requests into one item.
func WithMergeVideos() Option {
	return func(opts *Options) {
		opts.MergeVideos = true
	}
}

// WithWorkers bounds concurrent cache solves. The returned Option panics
// when applied (by New) if n ≤ 0.
func WithWorkers(n int) Option {
	return func(opts *Options) {
		if n <= 0 {
			panic(ErrBadWorkers.Error())
		}
		opts.Workers = n
	}
}

// WithSolverOptions appends options passed to every knapsack.Solve call.
func WithSolverOptions(so ...knapsack.Option) Option {
	return func(opts *Options) {
		opts.Solver = append(opts.Solver, so...)
	}
}

// WithObserver installs a solve hook.
func WithObserver(o Observer) Option {
	return func(opts *Options) {
		opts.Observer = o
	}
}

// DefaultOptions returns the historical behaviour: latency gain, negative
// gains excluded, no merging, one worker per CPU.
func DefaultOptions() Options {
	return Options{
		Objective:    LatencyGain,
		NegativeGain: ExcludeNegative,
		Workers:      runtime.GOMAXPROCS(0),
	}
}
