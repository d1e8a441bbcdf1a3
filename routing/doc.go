// Package routing picks, for every endpoint, the single cheapest cache it
// can reach directly.
//
// This is a greedy nearest-connection lookup, not a shortest-path search:
// endpoints connect to caches by one hop, so the minimum over an endpoint's
// connection list is already the answer.
//
// Tie-breaking: among connections with equal latency the first one listed
// wins, so the outcome depends only on input order.
//
// Complexity: O(E + C) time, O(E) memory.
package routing
