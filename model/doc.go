// Package model holds the immutable problem description consumed by the
// cache-placement pipeline: videos, endpoints, their cache connections,
// viewer requests, and the shared cache capacity.
//
// What:
//
//   - Problem is loaded once (see package dataset) and treated as read-only.
//   - Validate checks every cross-reference so downstream stages can index
//     slices without bounds checks of their own.
//   - CacheAssignment is the per-cache output handed to the writer.
//
// Units:
//
//	Video sizes and CacheCapacity share one unit (megabytes in the usual
//	data sets). Latencies are milliseconds; only their differences matter.
//
// Errors:
//
//   - ErrNilProblem          problem pointer is nil.
//   - ErrBadDimension        a count or the capacity is negative.
//   - ErrNegativeSize        a video has negative size.
//   - ErrNegativeLatency     an endpoint or connection latency is negative.
//   - ErrCacheOutOfRange     a connection points outside [0, CacheCount).
//   - ErrVideoOutOfRange     a request names an unknown video.
//   - ErrEndpointOutOfRange  a request names an unknown endpoint.
//   - ErrBadRequestCount     a request count is not positive.
package model
