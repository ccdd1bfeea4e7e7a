// Package flowmatch assigns supply to demand at minimum total cost.
//
// Given source nodes with a capacity to give, sink nodes with a capacity to
// take, and a per-unit cost on each source→sink arc, flowmatch moves as many
// units as possible (the smaller of total supply and total demand) while
// minimizing the summed per-unit cost, and reports the assignment together
// with its average per-arc cost.
//
// Packages:
//
//	network/  node and arc tables, validation, the balancing slack node
//	mcf/      min-cost flow solver: successive shortest paths, Johnson potentials
//	matching/ the end-to-end pipeline, solution extraction and cost evaluation
//	problem/  YAML problem files, validation and random generation
//	render/   text report of a matching
//	metrics/  Prometheus recorder for matching requests
//
// Quick example:
//
//	sources {A:1, B:1}, sinks {C:1, D:1}
//	A→C: 10   A→D: 15
//	B→C: 2    B→D: 10
//
// routes A→D and B→C: two units moved for a mean arc cost of 8.5.
//
//	go install github.com/katalvlaran/flowmatch/cmd/flowmatch@latest
package flowmatch
