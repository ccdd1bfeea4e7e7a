// SPDX-License-Identifier: MIT

// Package problem reads, writes, checks and generates matching problems.
//
// A Problem is the on-disk form of the three tables network.Build consumes:
// source capacities, sink capacities and per-unit arc costs. Problems are
// YAML documents:
//
//	name: two-depots
//	sources: {A: 1, B: 1}
//	sinks:   {C: 1, D: 1}
//	costs:
//	  - {from: A, to: C, cost: 10}
//	  - {from: B, to: D, cost: 10}
//
// Costs are a list rather than a map so that duplicate rows can be reported
// instead of silently overwritten.
//
// Generate builds random complete bipartite problems for load testing.
package problem
