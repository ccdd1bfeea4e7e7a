// SPDX-License-Identifier: MIT
//
// File: dijkstra.go
// Role: Multi-root Dijkstra over reduced costs, plus potential maintenance.

package mcf

import (
	"fmt"
	"math"

	"github.com/rhartert/sparsesets"
	"github.com/rhartert/yagh"
)

const unreached = math.MaxInt64

// pathFinder holds the state reused across Dijkstra rounds of one Solve call.
type pathFinder struct {
	res *residual

	pot  []int64 // node potentials π
	dist []int64 // reduced distance of the current round, unreached if not labeled
	prev []int   // residual edge into each labeled node, -1 for roots

	reached *sparsesets.Set // nodes labeled in the current round

	relaxations int
}

func newPathFinder(res *residual) *pathFinder {
	n := len(res.adj)
	pf := &pathFinder{
		res:     res,
		pot:     make([]int64, n),
		dist:    make([]int64, n),
		prev:    make([]int, n),
		reached: sparsesets.New(n),
	}
	for v := range pf.dist {
		pf.dist[v] = unreached
		pf.prev[v] = -1
	}

	return pf
}

// run labels every node reachable from the nodes with positive supply.
//
// Roots start at distance 0. An edge is relaxed only when it has residual
// capacity and strictly improves the head's label, so the first equally short
// path found is kept.
//
// Each round gets its own heap: yagh keeps the slot of a popped element, so a
// heap reused across rounds would mistake a re-labeled node for a queued one.
func (pf *pathFinder) run(supply []int64) error {
	pf.reset()
	h := yagh.New[int64](len(pf.dist))

	for v, s := range supply {
		if s > 0 {
			pf.label(h, v, 0, -1)
		}
	}

	for h.Size() > 0 {
		entry := h.Pop()
		u, d := entry.Elem, entry.Cost

		for _, e := range pf.res.adj[u] {
			edge := pf.res.edges[e]
			if edge.cap <= 0 {
				continue
			}
			v := edge.to

			rc, ok := pf.reducedCost(u, v, edge.cost)
			if !ok {
				return fmt.Errorf("%w: reduced cost of residual edge %d→%d", ErrCostOverflow, u, v)
			}
			nd, ok := addInt64(d, rc)
			if !ok || nd == unreached {
				return fmt.Errorf("%w: distance to node %d", ErrCostOverflow, v)
			}

			// Path roots -> u -> v is not better than the best known path.
			if nd >= pf.dist[v] {
				continue
			}
			pf.label(h, v, nd, e)
			pf.relaxations++
		}
	}

	return nil
}

// reducedCost returns cost + π(u) − π(v).
func (pf *pathFinder) reducedCost(u, v int, cost int64) (int64, bool) {
	c, ok := addInt64(cost, pf.pot[u])
	if !ok {
		return 0, false
	}

	return addInt64(c, -pf.pot[v])
}

func (pf *pathFinder) label(h *yagh.IntMap[int64], v int, d int64, via int) {
	if pf.dist[v] == unreached {
		pf.reached.Insert(v)
	}
	pf.dist[v] = d
	pf.prev[v] = via
	h.Put(v, d)
}

// reset clears the labels of the previous round in O(|reached|).
func (pf *pathFinder) reset() {
	for _, v := range pf.reached.Content() {
		pf.dist[v] = unreached
		pf.prev[v] = -1
	}
	pf.reached.Clear()
}

// nearest returns the labeled node with negative supply whose shortest path
// has the lowest real cost, lowest index on ties, together with that cost.
// The node is -1 if none was reached.
//
// Roots never lose supply-side status and always sit at distance 0, so their
// potential stays 0 and the real cost of a path to v is dist(v) + π(v).
func (pf *pathFinder) nearest(supply []int64) (int, int64, error) {
	best := -1
	var bestCost int64
	for v, s := range supply {
		if s >= 0 || pf.dist[v] == unreached {
			continue
		}
		c, ok := addInt64(pf.dist[v], pf.pot[v])
		if !ok {
			return -1, 0, fmt.Errorf("%w: path cost to node %d", ErrCostOverflow, v)
		}
		if best < 0 || c < bestCost {
			best, bestCost = v, c
		}
	}

	return best, bestCost, nil
}

// path returns the residual edges from a root to t, in reverse order, and the root.
func (pf *pathFinder) path(t int) ([]int, int) {
	var edges []int
	v := t
	for pf.prev[v] >= 0 {
		e := pf.prev[v]
		edges = append(edges, e)
		v = pf.res.tail(e)
	}

	return edges, v
}

// reweight applies π(v) += dist(v) to every node labeled this round, which keeps
// the reduced cost of every residual edge between labeled nodes non-negative.
// Unlabeled nodes cannot be reached from any remaining root, now or later.
func (pf *pathFinder) reweight() error {
	for _, v := range pf.reached.Content() {
		p, ok := addInt64(pf.pot[v], pf.dist[v])
		if !ok {
			return fmt.Errorf("%w: potential of node %d", ErrCostOverflow, v)
		}
		pf.pot[v] = p
	}

	return nil
}
