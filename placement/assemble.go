package placement

import (
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/katalvlaran/vidcache/knapsack"
	"github.com/katalvlaran/vidcache/model"
)

// Assemble maps each cache's selection back to video ids.
//
// packs[c] must be the (solver-sorted) slice whose Result is results[c]; the
// i-th flag of results[c].Selected refers to packs[c][i]. Video ids are
// deduplicated per cache and listed in ascending order. Every cache id in
// [0, p.CacheCount) gets an entry, empty or not.
func Assemble(p *model.Problem, packs [][]knapsack.Item, results []knapsack.Result) []model.CacheAssignment {
	out := make([]model.CacheAssignment, p.CacheCount)
	for c := range out {
		out[c] = model.CacheAssignment{CacheID: c, VideoIDs: []int{}}
		if c >= len(packs) || c >= len(results) {
			continue
		}
		videos := sets.New[int]()
		for i, sel := range results[c].Selected {
			if sel {
				videos.Insert(p.Requests[packs[c][i].Ref].VideoID)
			}
		}
		out[c].VideoIDs = sets.List(videos)
	}

	return out
}
