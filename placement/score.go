package placement

import (
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/katalvlaran/vidcache/model"
)

// Score rates a placement the way the original contest did: the average
// latency saved per request, in microseconds (milliseconds × 1000), floored.
//
// For each request the saving is Count × (Ld − L), where L is the lowest
// latency among the endpoint's connected caches that hold the video, or Ld
// when none does. Assignments naming unknown cache ids are ignored.
//
// Complexity: O(R · C_max) where C_max is the largest connection list.
func Score(p *model.Problem, assignments []model.CacheAssignment) int64 {
	stored := make([]sets.Set[int], p.CacheCount)
	for _, a := range assignments {
		if a.CacheID < 0 || a.CacheID >= p.CacheCount {
			continue
		}
		if stored[a.CacheID] == nil {
			stored[a.CacheID] = sets.New[int]()
		}
		stored[a.CacheID].Insert(a.VideoIDs...)
	}

	var saved, total int64
	for _, req := range p.Requests {
		ep := p.Endpoints[req.EndpointID]
		best := ep.DataCenterLatency
		for _, conn := range ep.Connections {
			if conn.Latency < best && stored[conn.CacheID].Has(req.VideoID) {
				best = conn.Latency
			}
		}
		saved += int64(req.Count) * int64(ep.DataCenterLatency-best)
		total += int64(req.Count)
	}
	if total == 0 {
		return 0
	}

	return saved * 1000 / total
}
