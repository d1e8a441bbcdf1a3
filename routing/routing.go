package routing

import "github.com/katalvlaran/vidcache/model"

// Route is the chosen cache for one endpoint. OK is false when the endpoint
// has no cache connections at all; CacheID and Latency are then zero.
type Route struct {
	CacheID int
	Latency int
	OK      bool
}

// Nearest returns one Route per endpoint of p, in endpoint order.
func Nearest(p *model.Problem) []Route {
	routes := make([]Route, len(p.Endpoints))
	for e, ep := range p.Endpoints {
		routes[e] = nearest(ep.Connections)
	}

	return routes
}

// nearest returns the minimum-latency connection; the first one on ties.
func nearest(conns []model.Connection) Route {
	var best Route
	for _, c := range conns {
		if !best.OK || c.Latency < best.Latency {
			best = Route{CacheID: c.CacheID, Latency: c.Latency, OK: true}
		}
	}

	return best
}

// Reachable counts endpoints that have a route.
func Reachable(routes []Route) int {
	n := 0
	for _, r := range routes {
		if r.OK {
			n++
		}
	}

	return n
}
