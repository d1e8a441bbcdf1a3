package model

import "fmt"

// Validate checks that p is internally consistent.
//
// Checks (in order):
//  1. p is non-nil.
//  2. CacheCount ≥ 0 and CacheCapacity ≥ 0.
//  3. Every video size ≥ 0.
//  4. Every endpoint latency ≥ 0; every connection targets a known cache
//     with latency ≥ 0.
//  5. Every request references a known video and endpoint, with Count > 0.
//
// The first violation is returned, wrapped with its position.
//
// Complexity: O(V + E + C + R), where C is the number of connections.
func (p *Problem) Validate() error {
	if p == nil {
		return ErrNilProblem
	}
	if p.CacheCount < 0 {
		return fmt.Errorf("%w: cache count %d", ErrBadDimension, p.CacheCount)
	}
	if p.CacheCapacity < 0 {
		return fmt.Errorf("%w: cache capacity %d", ErrBadDimension, p.CacheCapacity)
	}

	for v, size := range p.VideoSizes {
		if size < 0 {
			return fmt.Errorf("%w: video %d size=%d", ErrNegativeSize, v, size)
		}
	}

	for e, ep := range p.Endpoints {
		if ep.DataCenterLatency < 0 {
			return fmt.Errorf("%w: endpoint %d data center latency=%d", ErrNegativeLatency, e, ep.DataCenterLatency)
		}
		for _, c := range ep.Connections {
			if c.CacheID < 0 || c.CacheID >= p.CacheCount {
				return fmt.Errorf("%w: endpoint %d → cache %d (cache count %d)", ErrCacheOutOfRange, e, c.CacheID, p.CacheCount)
			}
			if c.Latency < 0 {
				return fmt.Errorf("%w: endpoint %d → cache %d latency=%d", ErrNegativeLatency, e, c.CacheID, c.Latency)
			}
		}
	}

	for i, r := range p.Requests {
		if r.VideoID < 0 || r.VideoID >= len(p.VideoSizes) {
			return fmt.Errorf("%w: request %d video=%d", ErrVideoOutOfRange, i, r.VideoID)
		}
		if r.EndpointID < 0 || r.EndpointID >= len(p.Endpoints) {
			return fmt.Errorf("%w: request %d endpoint=%d", ErrEndpointOutOfRange, i, r.EndpointID)
		}
		if r.Count <= 0 {
			return fmt.Errorf("%w: request %d count=%d", ErrBadRequestCount, i, r.Count)
		}
	}

	return nil
}
