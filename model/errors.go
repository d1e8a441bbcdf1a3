package model

import "errors"

// Sentinel errors returned by Validate. They are wrapped with index context
// via %w; use errors.Is to branch on them.
var (
	// ErrNilProblem indicates a nil *Problem.
	ErrNilProblem = errors.New("model: problem is nil")

	// ErrBadDimension indicates a negative cache count or capacity.
	ErrBadDimension = errors.New("model: negative dimension")

	// ErrNegativeSize indicates a video with negative size.
	ErrNegativeSize = errors.New("model: negative video size")

	// ErrNegativeLatency indicates a negative data-center or connection latency.
	ErrNegativeLatency = errors.New("model: negative latency")

	// ErrCacheOutOfRange indicates a connection to a cache id outside [0, CacheCount).
	ErrCacheOutOfRange = errors.New("model: cache id out of range")

	// ErrVideoOutOfRange indicates a request for an unknown video id.
	ErrVideoOutOfRange = errors.New("model: video id out of range")

	// ErrEndpointOutOfRange indicates a request from an unknown endpoint id.
	ErrEndpointOutOfRange = errors.New("model: endpoint id out of range")

	// ErrBadRequestCount indicates a request with a non-positive count.
	ErrBadRequestCount = errors.New("model: request count must be positive")
)
