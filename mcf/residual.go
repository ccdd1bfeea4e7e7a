// SPDX-License-Identifier: MIT
//
// File: residual.go
// Role: Paired forward/backward residual edges over network links.
// Layout:
//   - edges[2k] is the forward edge of link k, edges[2k+1] its backward twin;
//     e^1 always addresses the twin.
//   - adj[u] lists residual edges leaving u in link order.

package mcf

import "github.com/katalvlaran/flowmatch/network"

// residualEdge is one direction of a link in the residual network.
type residualEdge struct {
	to   int
	cap  int64 // remaining capacity
	cost int64 // per-unit cost; negated on backward edges
}

type residual struct {
	edges []residualEdge
	adj   [][]int
}

// newResidual lays out the residual network of links over nodes 0..nodes-1.
// unbounded is the capacity given to every forward edge.
func newResidual(nodes int, links []network.Link, unbounded int64) *residual {
	r := &residual{
		edges: make([]residualEdge, 0, 2*len(links)),
		adj:   make([][]int, nodes),
	}
	for _, l := range links {
		fwd := len(r.edges)
		r.edges = append(r.edges,
			residualEdge{to: l.To, cap: unbounded, cost: l.Cost},
			residualEdge{to: l.From, cap: 0, cost: -l.Cost},
		)
		r.adj[l.From] = append(r.adj[l.From], fwd)
		r.adj[l.To] = append(r.adj[l.To], fwd+1)
	}

	return r
}

// tail returns the node edge e leaves from.
func (r *residual) tail(e int) int { return r.edges[e^1].to }

// push moves f units along edge e.
func (r *residual) push(e int, f int64) {
	r.edges[e].cap -= f
	r.edges[e^1].cap += f
}

// flow returns the units currently carried by link k.
func (r *residual) flow(k int) int64 { return r.edges[2*k+1].cap }
