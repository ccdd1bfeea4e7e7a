// SPDX-License-Identifier: MIT

// Package mcf computes minimum-cost flows on a balanced *network.Network.
//
// Given nodes with signed net requirements summing to zero and uncapacitated
// arcs with non-negative per-unit costs, Solve finds an integer flow such that,
// for every node, inflow − outflow equals its requirement, and Σ flow·cost is
// minimal.
//
// # Algorithm
//
// Successive shortest augmenting paths with node potentials (Johnson
// reweighting):
//
//  1. Every link contributes a forward residual edge (capacity "unbounded",
//     cost c) and a backward residual edge (capacity = flow sent, cost −c).
//  2. Potentials start at zero; all costs are non-negative so the first round
//     needs no Bellman–Ford bootstrap.
//  3. Each round runs one multi-root Dijkstra over reduced costs
//     c(u,v) + π(u) − π(v) from every node that still has supply to emit.
//  4. The nearest node with outstanding demand is the target; flow is pushed
//     along the shortest path by min(path capacity, root supply, target demand).
//  5. π(v) += dist(v) for every reached node, keeping reduced costs ≥ 0.
//  6. Repeat until every requirement is met.
//
// Forward capacity "unbounded" is represented by the network's total supply:
// no arc can ever carry more than that, so the value is exact and cannot overflow.
//
// # Determinism
//
// Nodes and links are visited in network layout order; relaxations only replace
// a label on a strictly shorter distance; ties between equally near targets go
// to the lowest node index. Repeated solves of identical input therefore push the
// same flows.
//
// # Complexity
//
//	Time:   O(A · (V + E) log V) where A is the number of augmentations (A ≤ total supply).
//	Memory: O(V + E).
//
// # Errors
//
//	ErrNilNetwork     - Solve received a nil network.
//	ErrUnbalanced     - node requirements do not sum to zero (call network.Balance first).
//	ErrNegativeCost   - a link has a negative cost.
//	ErrInfeasibleFlow - supply remains but no demand is reachable.
//	ErrCostOverflow   - distances or the total cost overflow int64.
//	ErrIterationLimit - Options.MaxAugmentations was reached.
//	context.Canceled / context.DeadlineExceeded - if ctx is done between rounds.
package mcf
