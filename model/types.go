package model

// Connection is a (cache, latency) edge from an endpoint.
type Connection struct {
	CacheID int // index in [0, Problem.CacheCount)
	Latency int // endpoint → cache latency
}

// Endpoint is a viewer aggregation point. It always reaches the data center
// and reaches zero or more caches.
type Endpoint struct {
	DataCenterLatency int
	Connections       []Connection
}

// Request is a (video, endpoint, volume) triple: Count viewers behind
// EndpointID asked for VideoID.
type Request struct {
	VideoID    int
	EndpointID int
	Count      int
}

// Problem is the whole input instance. All caches share CacheCapacity.
type Problem struct {
	CacheCount    int
	CacheCapacity int
	VideoSizes    []int // indexed by video id
	Endpoints     []Endpoint
	Requests      []Request
}

// CacheAssignment lists the distinct videos stored on one cache.
type CacheAssignment struct {
	CacheID  int
	VideoIDs []int
}

// VideoCount returns the number of videos in p.
func (p *Problem) VideoCount() int { return len(p.VideoSizes) }

// EndpointCount returns the number of endpoints in p.
func (p *Problem) EndpointCount() int { return len(p.Endpoints) }

// TotalRequests sums Count over all requests.
func (p *Problem) TotalRequests() int64 {
	var total int64
	for _, r := range p.Requests {
		total += int64(r.Count)
	}
	return total
}
