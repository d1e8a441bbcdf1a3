// Package vidcache decides which videos each edge cache stores so that the
// aggregate latency seen by viewers drops as far as possible, without any
// cache exceeding its storage capacity.
//
// 🚀 What is in here?
//
//	A batch pipeline, one package per stage:
//		• model/     — the immutable problem: videos, endpoints, connections, requests
//		• dataset/   — text loader and result writer for the standard data sets
//		• routing/   — nearest cache per endpoint (greedy, one hop)
//		• knapsack/  — exact 0/1 knapsack, value-indexed DP with traceback
//		• placement/ — candidate items, concurrent per-cache solves, assembly, scoring
//		• metrics/   — Prometheus collectors for solves
//		• config/    — YAML configuration for the binary
//		• cmd/vidcache — the command-line tool
//
// ✨ Guarantees
//
//   - Exact: every cache gets the true optimum of its own knapsack.
//   - Deterministic: identical input gives identical output, whatever the worker count.
//   - Independent: caches share no mutable state and are solved in parallel.
//
// Quick picture:
//
//	endpoint ──100ms──▶ cache 0  ┐
//	    │                         ├─ each cache: max Σ gain, Σ size ≤ capacity
//	    └──1000ms──▶ data center  ┘
//
//	go install github.com/katalvlaran/vidcache/cmd/vidcache@latest
package vidcache
