package placement_test

import (
	"sync"
	"time"

	"github.com/katalvlaran/vidcache/model"
	"github.com/katalvlaran/vidcache/placement"
)

// sample is the five-video, three-cache instance from the data set docs.
// Only endpoint 0 reaches caches; its nearest is cache 0 at latency 100.
func sample() *model.Problem {
	return &model.Problem{
		CacheCount:    3,
		CacheCapacity: 100,
		VideoSizes:    []int{50, 50, 80, 30, 110},
		Endpoints: []model.Endpoint{
			{DataCenterLatency: 1000, Connections: []model.Connection{{CacheID: 0, Latency: 100}, {CacheID: 2, Latency: 200}, {CacheID: 1, Latency: 300}}},
			{DataCenterLatency: 500},
		},
		Requests: []model.Request{
			{VideoID: 3, EndpointID: 0, Count: 1500},
			{VideoID: 0, EndpointID: 1, Count: 1000},
			{VideoID: 4, EndpointID: 0, Count: 500},
			{VideoID: 1, EndpointID: 0, Count: 1000},
		},
	}
}

// recorder is an Observer that keeps every call.
type recorder struct {
	mu    sync.Mutex
	stats []placement.CacheStats
	errs  []error
}

func (r *recorder) ObserveSolve(st placement.CacheStats, _ time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stats = append(r.stats, st)
	r.errs = append(r.errs, err)
}
