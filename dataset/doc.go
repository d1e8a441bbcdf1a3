// Package dataset reads problem instances and writes placements in the
// plain-text format of the original video-streaming data sets.
//
// Input (whitespace separated integers, line breaks are not significant):
//
//	V E R C X              videos, endpoints, request lines, caches, capacity
//	s_0 … s_{V-1}          video sizes
//	per endpoint:
//	  Ld K                 data-center latency, connection count
//	  K × (c Lc)           cache id, cache latency
//	R × (v e n)            video, endpoint, request count
//
// Output:
//
//	N                      number of cache lines
//	N × (c v_1 … v_k)      cache id followed by its video ids
//
// Errors:
//
//   - ErrUnexpectedEOF  input ended before the header-declared content.
//   - ErrBadToken       a token is not a decimal integer.
//   - model.Err*        the parsed problem failed validation.
package dataset
