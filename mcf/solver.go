// SPDX-License-Identifier: MIT
//
// File: solver.go
// Role: Successive shortest augmenting paths driver.

package mcf

import (
	"context"
	"fmt"

	"github.com/katalvlaran/flowmatch/network"
)

// Solve computes a minimum-cost flow on the balanced network n.
//
// It returns:
//   - Flow.Amounts: flow per link, indexed like n.Links().
//   - Flow.TotalCost: Σ amount·cost, slack links included.
//   - err: non-nil on invalid input, infeasibility, overflow, cancellation or
//     when the augmentation bound is hit. There is no partial result.
//
// Preconditions and validation (in order):
//  1. n must be non-nil (ErrNilNetwork).
//  2. Requirements must sum to zero (ErrUnbalanced).
//  3. No link may have a negative cost (ErrNegativeCost).
//
// ctx is checked once per augmentation round.
func Solve(ctx context.Context, n *network.Network, opts ...Option) (*Flow, error) {
	// 1) Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.Logger

	// 2) Validate the network.
	if n == nil {
		return nil, ErrNilNetwork
	}
	nodes := n.Nodes()
	links := n.Links()

	// supply[v] > 0: units v must still emit; supply[v] < 0: units v must still absorb.
	supply := make([]int64, len(nodes))
	var balance, remaining int64
	var ok bool
	for v, nd := range nodes {
		supply[v] = -nd.Requirement
		if balance, ok = addInt64(balance, nd.Requirement); !ok {
			return nil, fmt.Errorf("%w: sum of requirements", ErrCostOverflow)
		}
		if supply[v] > 0 {
			if remaining, ok = addInt64(remaining, supply[v]); !ok {
				return nil, fmt.Errorf("%w: total supply", ErrCostOverflow)
			}
		}
	}
	if balance != 0 {
		return nil, fmt.Errorf("%w: requirements sum to %d", ErrUnbalanced, balance)
	}
	for _, l := range links {
		if l.Cost < 0 {
			return nil, fmt.Errorf("%w: link %d→%d cost=%d", ErrNegativeCost, l.From, l.To, l.Cost)
		}
	}

	// 3) Residual network; no link ever carries more than the total supply.
	res := newResidual(len(nodes), links, remaining)
	pf := newPathFinder(res)
	var stats Stats

	// 4) Augment until every requirement is met.
	for remaining > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if cfg.MaxAugmentations > 0 && stats.Augmentations >= cfg.MaxAugmentations {
			return nil, fmt.Errorf("%w: %d augmentations, %d units outstanding",
				ErrIterationLimit, stats.Augmentations, remaining)
		}

		if err := pf.run(supply); err != nil {
			return nil, err
		}
		t, unitCost, err := pf.nearest(supply)
		if err != nil {
			return nil, err
		}
		if t < 0 {
			return nil, fmt.Errorf("%w: %d units of supply cannot reach any demand",
				ErrInfeasibleFlow, remaining)
		}

		path, s := pf.path(t)
		f := min(supply[s], -supply[t])
		for _, e := range path {
			f = min(f, res.edges[e].cap)
		}
		for _, e := range path {
			res.push(e, f)
		}
		supply[s] -= f
		supply[t] += f
		remaining -= f
		stats.Augmentations++
		stats.Units += f

		log.V(1).Info("augment",
			"from", nodeName(nodes[s]), "to", nodeName(nodes[t]),
			"units", f, "hops", len(path), "unitCost", unitCost)

		if err := pf.reweight(); err != nil {
			return nil, err
		}
	}
	stats.Relaxations = pf.relaxations

	// 5) Read flows back from the backward residual edges.
	flow := &Flow{Amounts: make([]int64, len(links)), Stats: stats}
	for k, l := range links {
		amount := res.flow(k)
		flow.Amounts[k] = amount
		c, ok := mulInt64(amount, l.Cost)
		if !ok {
			return nil, fmt.Errorf("%w: cost of link %d→%d", ErrCostOverflow, l.From, l.To)
		}
		if flow.TotalCost, ok = addInt64(flow.TotalCost, c); !ok {
			return nil, fmt.Errorf("%w: total cost", ErrCostOverflow)
		}
	}

	log.Info("min-cost flow solved",
		"nodes", len(nodes), "links", len(links),
		"units", stats.Units, "augmentations", stats.Augmentations, "totalCost", flow.TotalCost)

	return flow, nil
}

func nodeName(nd network.Node) string {
	if nd.Role == network.RoleSlack {
		return "<slack>"
	}

	return nd.ID
}
