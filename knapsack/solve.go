package knapsack

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// Solve selects the subset of items with maximum total Gain whose total Size
// does not exceed capacity. Each item is used at most once.
//
// items is sorted in place by ascending Ratio (stable) before solving, and
// Result.Selected is aligned with that sorted order. Callers that need the
// original order must keep their own copy or rely on Item.Ref.
//
// Steps:
//  1. Apply options; validate capacity and every item.
//  2. Zero items → empty Result, no error.
//  3. Sort by ratio; size the table (vMax = n·maxGain) against MaxCells.
//  4. Forward pass row by row; keep rows or choice bits per MemoryMode.
//  5. Pick the largest v whose final cell fits capacity.
//  6. Trace back from (n−1, v) to item 0.
//
// Complexity:
//
//	Time:   O(n · vMax)
//	Memory: O(n · vMax) cells (FullTable) or O(vMax) cells + O(n · vMax) bits (ChoiceBits)
func Solve(items []Item, capacity int64, opts ...Option) (Result, error) {
	// 1) Options and validation.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if capacity < 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrNegativeCapacity, capacity)
	}
	var maxGain int64
	for i, it := range items {
		if it.Gain < 0 {
			return Result{}, fmt.Errorf("%w: item %d (ref %d) gain=%d", ErrNegativeGain, i, it.Ref, it.Gain)
		}
		if it.Size < 0 {
			return Result{}, fmt.Errorf("%w: item %d (ref %d) size=%d", ErrNegativeSize, i, it.Ref, it.Size)
		}
		maxGain = max(maxGain, it.Gain)
	}

	// 2) Degenerate input.
	if len(items) == 0 {
		return Result{Selected: []bool{}}, nil
	}

	// 3) Deterministic row order, then table shape.
	slices.SortStableFunc(items, func(a, b Item) int {
		return cmp.Compare(a.Ratio(), b.Ratio())
	})
	width, cells, err := tableShape(len(items), maxGain, cfg.MaxCells)
	if err != nil {
		return Result{}, err
	}

	// 4–6) Mode-specific forward pass and traceback.
	var res Result
	switch cfg.MemoryMode {
	case FullTable:
		res, err = solveFull(items, capacity, width)
	case ChoiceBits:
		res, err = solveBits(items, capacity, width)
	default:
		return Result{}, fmt.Errorf("%w: %d", ErrBadMemoryMode, cfg.MemoryMode)
	}
	if err != nil {
		return Result{}, err
	}
	res.Cells = cells

	return res, nil
}

// tableShape returns the row width vMax+1 and the total cell count n·width,
// failing with ErrTableTooLarge when either overflows or exceeds maxCells.
func tableShape(n int, maxGain, maxCells int64) (int, int64, error) {
	rows := int64(n)
	if maxGain > 0 && rows > (math.MaxInt64-1)/maxGain {
		return 0, 0, fmt.Errorf("%w: %d items × max gain %d overflows", ErrTableTooLarge, n, maxGain)
	}
	width := rows*maxGain + 1
	if width > maxCells/rows || width > math.MaxInt {
		return 0, 0, fmt.Errorf("%w: %d rows × %d columns > %d", ErrTableTooLarge, n, width, maxCells)
	}

	return int(width), rows * width, nil
}

// firstRow seeds the table with item alone: v=0 at size 0 and v=gain at its size.
func firstRow(it Item, width int) []Cell {
	row := make([]Cell, width)
	row[0] = feasible(0)
	if g := int(it.Gain); g > 0 {
		row[g] = feasible(it.Size)
	}

	return row
}

// nextRow fills row from prev by either skipping or taking it. It reports the
// taken decision per cell through take when take is non-nil.
func nextRow(it Item, prev, row []Cell, take *bitset.BitSet) {
	u := int(it.Gain)
	for v := range row {
		c := prev[v]
		if v >= u {
			c = minCell(c, prev[v-u].add(it.Size))
		}
		row[v] = c
		if take != nil && c != prev[v] {
			take.Set(uint(v))
		}
	}
}

// optimum scans the final row for the largest v whose cell fits capacity.
func optimum(last []Cell, capacity int64) (int, Cell, error) {
	best := -1
	for v, c := range last {
		if c.Feasible && c.Size <= capacity {
			best = v
		}
	}
	if best < 0 {
		return 0, Infeasible, ErrNoFeasibleValue
	}

	return best, last[best], nil
}

// solveFull retains every row; row k is handed to rows once row k+1 exists.
func solveFull(items []Item, capacity int64, width int) (Result, error) {
	rows := make([][]Cell, 0, len(items))
	prev := firstRow(items[0], width)
	for _, it := range items[1:] {
		next := make([]Cell, width)
		nextRow(it, prev, next, nil)
		rows = append(rows, prev)
		prev = next
	}
	rows = append(rows, prev)

	v, cell, err := optimum(prev, capacity)
	if err != nil {
		return Result{}, err
	}
	gain := int64(v)

	// Walk back: an unchanged cell means item k was skipped.
	selected := make([]bool, len(items))
	for k := len(rows) - 1; k >= 1; k-- {
		if rows[k][v] == rows[k-1][v] {
			continue
		}
		selected[k] = true
		v -= int(items[k].Gain)
	}
	if err = settleFirst(items[0], v, selected); err != nil {
		return Result{}, err
	}

	return Result{Selected: selected, Gain: gain, Size: cell.Size}, nil
}

// solveBits keeps two rows and one bitset per item marking cells where taking
// the item strictly improved on skipping it.
func solveBits(items []Item, capacity int64, width int) (Result, error) {
	taken := make([]*bitset.BitSet, len(items))
	prev := firstRow(items[0], width)
	taken[0] = bitset.New(uint(width))
	if g := items[0].Gain; g > 0 {
		taken[0].Set(uint(g))
	}
	cur := make([]Cell, width)
	for k := 1; k < len(items); k++ {
		taken[k] = bitset.New(uint(width))
		nextRow(items[k], prev, cur, taken[k])
		prev, cur = cur, prev
	}

	v, cell, err := optimum(prev, capacity)
	if err != nil {
		return Result{}, err
	}
	gain := int64(v)

	selected := make([]bool, len(items))
	for k := len(items) - 1; k >= 1; k-- {
		if !taken[k].Test(uint(v)) {
			continue
		}
		selected[k] = true
		v -= int(items[k].Gain)
	}
	if err = settleFirst(items[0], v, selected); err != nil {
		return Result{}, err
	}

	return Result{Selected: selected, Gain: gain, Size: cell.Size}, nil
}

// settleFirst attributes the gain left after walking rows n−1..1 to item 0.
// Only 0 or item 0's own gain can remain.
func settleFirst(first Item, rest int, selected []bool) error {
	switch {
	case rest == 0:
		return nil
	case int64(rest) == first.Gain:
		selected[0] = true
		return nil
	default:
		return fmt.Errorf("%w: traceback left gain %d at row 0", ErrNoFeasibleValue, rest)
	}
}
