package knapsack

import (
	"errors"
	"math"
)

// Sentinel errors returned by Solve.
var (
	// ErrNegativeCapacity indicates a capacity below zero.
	ErrNegativeCapacity = errors.New("knapsack: capacity must be non-negative")

	// ErrNegativeGain indicates an item whose gain is below zero.
	ErrNegativeGain = errors.New("knapsack: item gain must be non-negative")

	// ErrNegativeSize indicates an item whose size is below zero.
	ErrNegativeSize = errors.New("knapsack: item size must be non-negative")

	// ErrTableTooLarge indicates the DP table would exceed Options.MaxCells.
	ErrTableTooLarge = errors.New("knapsack: dp table exceeds cell budget")

	// ErrBadMemoryMode indicates an unknown MemoryMode value.
	ErrBadMemoryMode = errors.New("knapsack: unknown memory mode")

	// ErrBadMaxCells indicates a non-positive cell budget passed to WithMaxCells.
	ErrBadMaxCells = errors.New("knapsack: MaxCells must be positive")

	// ErrNoFeasibleValue indicates the final row has no cell within capacity.
	// Cell v=0 is always feasible with size 0, so this is an internal fault.
	ErrNoFeasibleValue = errors.New("knapsack: no feasible value in final row")
)

// Item is one selectable unit: a gain earned by storing something of a size.
// Ref is opaque to the solver and lets callers map a selection back to its
// origin (the placement package stores a request index there).
type Item struct {
	Ref  int
	Gain int64
	Size int64
}

// Ratio returns Gain/Size, used only for ordering. A zero-size item with
// positive gain sorts last (+Inf); a zero-gain item sorts first.
func (it Item) Ratio() float64 {
	if it.Gain == 0 {
		return 0
	}
	if it.Size == 0 {
		return math.Inf(1)
	}
	return float64(it.Gain) / float64(it.Size)
}

// Cell is a DP table entry: either Infeasible (the zero value) or the minimum
// total size reaching the cell's gain.
type Cell struct {
	Size     int64
	Feasible bool
}

// Infeasible is the unreachable cell.
var Infeasible = Cell{}

// feasible returns a reachable cell of the given size.
func feasible(size int64) Cell {
	return Cell{Size: size, Feasible: true}
}

// add extends c by an item of size s. Infeasible stays Infeasible; a sum past
// MaxInt64 can never fit any capacity and is reported as Infeasible too.
func (c Cell) add(s int64) Cell {
	if !c.Feasible || c.Size > math.MaxInt64-s {
		return Infeasible
	}
	return feasible(c.Size + s)
}

// minCell treats Infeasible as +∞. Ties keep a, the "item skipped" side.
func minCell(a, b Cell) Cell {
	if !b.Feasible {
		return a
	}
	if !a.Feasible || b.Size < a.Size {
		return b
	}
	return a
}

// Result is the outcome of Solve.
type Result struct {
	// Selected[i] reports whether items[i] (in the sorted order Solve leaves
	// behind) is part of the optimum.
	Selected []bool

	// Gain is the optimal total gain; Size the minimal total size achieving it.
	Gain int64
	Size int64

	// Cells is the number of DP cells the forward pass evaluated.
	Cells int64
}

// Count returns how many items are selected.
func (r Result) Count() int {
	n := 0
	for _, s := range r.Selected {
		if s {
			n++
		}
	}
	return n
}

// MemoryMode controls what Solve retains for traceback.
//
//   - FullTable  — retain every row; traceback compares adjacent rows.
//   - ChoiceBits — retain two rows and a per-row bitset of "taken" decisions.
type MemoryMode int

const (
	// FullTable keeps all rows until traceback. Memory: O(n·vMax) cells.
	FullTable MemoryMode = iota

	// ChoiceBits keeps two rows plus n·vMax bits.
	ChoiceBits
)

// String returns the mode name used in configuration files.
func (m MemoryMode) String() string {
	switch m {
	case FullTable:
		return "full"
	case ChoiceBits:
		return "bits"
	default:
		return "unknown"
	}
}

// DefaultMaxCells bounds n·(vMax+1). At 16 bytes per cell FullTable stays
// near 1 GiB.
const DefaultMaxCells int64 = 1 << 26

// Options configures Solve.
//
// MemoryMode – FullTable (default) or ChoiceBits.
// MaxCells   – upper bound on n·(vMax+1); larger instances fail with
//
//	ErrTableTooLarge instead of allocating. Default DefaultMaxCells.
type Options struct {
	MemoryMode MemoryMode
	MaxCells   int64
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithMemoryMode selects how traceback information is kept.
func WithMemoryMode(mode MemoryMode) Option {
	return func(o *Options) {
		o.MemoryMode = mode
	}
}

// WithMaxCells sets the cell budget. The returned Option panics when
// applied if n ≤ 0.
func WithMaxCells(n int64) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadMaxCells.Error())
		}
		o.MaxCells = n
	}
}

// DefaultOptions returns FullTable with DefaultMaxCells.
func DefaultOptions() Options {
	return Options{
		MemoryMode: FullTable,
		MaxCells:   DefaultMaxCells,
	}
}
