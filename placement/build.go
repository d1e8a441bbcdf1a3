package placement

import (
	"fmt"
	"math"

	"github.com/katalvlaran/vidcache/knapsack"
	"github.com/katalvlaran/vidcache/model"
	"github.com/katalvlaran/vidcache/routing"
)

// BuildCandidates returns one candidate list per cache id in [0, p.CacheCount).
//
// For each request, in request order:
//  1. No route for its endpoint → dropped silently.
//  2. gain = DataCenterLatency − route latency; negative gains follow
//     opts.NegativeGain; WeightedByVolume multiplies by the request count.
//  3. The item (Ref = request index, Size = video size) is appended to the
//     list of the route's cache, or folded into an existing item for the same
//     video when opts.MergeVideos is set.
//
// routes must come from routing.Nearest(p). Nothing is shared between the
// returned lists.
//
// Errors:
//   - ErrGainOverflow if weighting or merging pushes a gain past math.MaxInt64.
//
// Complexity: O(R) time, O(R) memory.
func BuildCandidates(p *model.Problem, routes []routing.Route, opts Options) ([][]knapsack.Item, error) {
	packs := make([][]knapsack.Item, p.CacheCount)

	// merged[cache][video] = position in packs[cache]; only when merging.
	var merged []map[int]int
	if opts.MergeVideos {
		merged = make([]map[int]int, p.CacheCount)
	}

	for rid, req := range p.Requests {
		route := routes[req.EndpointID]
		if !route.OK {
			continue
		}

		gain := int64(p.Endpoints[req.EndpointID].DataCenterLatency - route.Latency)
		if gain < 0 {
			if opts.NegativeGain == ExcludeNegative {
				continue
			}
			gain = 0
		}
		if opts.Objective == WeightedByVolume {
			count := int64(req.Count)
			if count > 0 && gain > math.MaxInt64/count {
				return nil, fmt.Errorf("%w: request %d: gain %d × count %d", ErrGainOverflow, rid, gain, count)
			}
			gain *= count
		}

		c := route.CacheID
		if merged != nil {
			if merged[c] == nil {
				merged[c] = make(map[int]int)
			}
			if at, ok := merged[c][req.VideoID]; ok {
				if packs[c][at].Gain > math.MaxInt64-gain {
					return nil, fmt.Errorf("%w: cache %d video %d", ErrGainOverflow, c, req.VideoID)
				}
				packs[c][at].Gain += gain
				continue
			}
			merged[c][req.VideoID] = len(packs[c])
		}
		packs[c] = append(packs[c], knapsack.Item{
			Ref:  rid,
			Gain: gain,
			Size: int64(p.VideoSizes[req.VideoID]),
		})
	}

	return packs, nil
}
