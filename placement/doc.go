// Package placement turns a validated problem into per-cache video sets.
//
// Pipeline (strictly left to right):
//
//	Problem → routing.Nearest → BuildCandidates → knapsack.Solve (per cache) → Assemble
//
// Stages:
//
//   - BuildCandidates turns every routable request into a knapsack.Item for
//     the endpoint's nearest cache: gain = data-center latency − cache latency,
//     size = video size, Ref = request index.
//   - Each cache is solved independently; Planner fans the solves out over a
//     bounded errgroup. No state is shared between caches.
//   - Assemble maps the selected items back to video ids, deduplicated per
//     cache, one entry per cache id (empty caches included).
//
// Behavioural forks (Options):
//
//   - Objective: LatencyGain (default) ignores request volume, matching the
//     historical behaviour; WeightedByVolume multiplies gain by request count.
//   - NegativeGainPolicy: ExcludeNegative (default) drops requests whose cache
//     is slower than the data center; ClampNegative keeps them at gain 0.
//   - MergeVideos: fold requests for the same video at the same cache into a
//     single item (gains summed) instead of one item per request.
//
// Logging goes through the logr.Logger found in the context; per-cache lines
// are emitted at V(1).
package placement
