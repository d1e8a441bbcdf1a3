// Package knapsack solves the per-cache 0/1 knapsack exactly: choose the
// subset of candidate items with maximum total latency gain whose total size
// fits a capacity.
//
// 🚀 Formulation
//
//	The table is indexed by achieved total gain v ∈ [0, vMax] rather than by
//	consumed capacity. Cell (k, v) holds the minimum total size needed to reach
//	exactly gain v using items 0..k, or Infeasible. Gains are usually far
//	smaller-ranged than sizes, so the width n·maxGain stays well below the
//	capacity-indexed width.
//
//	  row 0:    T[0][0] = 0, T[0][g₀] = s₀, everything else Infeasible
//	  row k:    T[k][v] = min(T[k−1][v], T[k−1][v−gₖ] + sₖ)   (second term only if v ≥ gₖ)
//	  optimum:  largest v with T[n−1][v] feasible and ≤ capacity
//	  traceback: walking k = n−1..1, item k is taken iff T[k][v] ≠ T[k−1][v];
//	             whatever gain remains at row 0 belongs to item 0.
//
// ✨ Memory modes
//
//   - FullTable  — keep every row until traceback. Memory: O(n·vMax) cells.
//   - ChoiceBits — keep a rolling pair of rows plus one "taken" bit per cell.
//     Memory: O(vMax) cells + O(n·vMax) bits. Same selection as FullTable.
//
// Complexity:
//
//   - Time:   O(n · vMax) = O(n² · maxGain)
//   - Memory: see memory modes above.
//
// Items are sorted in place by ascending gain/size ratio before the forward
// pass; the sort is stable, so the row order (and hence the traceback) is
// deterministic for identical input.
//
// Errors:
//
//   - ErrNegativeCapacity  capacity < 0.
//   - ErrNegativeGain      an item has gain < 0 (callers filter these out).
//   - ErrNegativeSize      an item has size < 0.
//   - ErrTableTooLarge     n · (vMax+1) exceeds Options.MaxCells.
//   - ErrBadMemoryMode     unknown Options.MemoryMode.
//   - ErrNoFeasibleValue   the table lost its v=0 cell; a bug, never input-driven.
package knapsack
