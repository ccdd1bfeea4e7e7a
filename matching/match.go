// SPDX-License-Identifier: MIT
//
// File: match.go
// Role: Builder → Balancer → Solver → Extractor → Evaluator pipeline.

package matching

import (
	"context"
	"time"

	"github.com/katalvlaran/flowmatch/mcf"
	"github.com/katalvlaran/flowmatch/network"
)

// Match computes the minimum-cost assignment of supply to demand and returns
// the Solution together with its average per-arc cost.
//
// It is Solve with a background context and default options.
func Match(sources, sinks network.Capacities, costs network.Costs) (Solution, float64, error) {
	res, err := Solve(context.Background(), sources, sinks, costs)
	if err != nil {
		return nil, 0, err
	}

	return res.Solution, res.AvgCost, nil
}

// Solve runs the full pipeline on one matching request.
//
// Implementation:
//   - Stage 1: network.Build validates the tables and lays out the network.
//   - Stage 2: network.Balance adds the slack node when supply ≠ demand.
//   - Stage 3: mcf.Solve computes the optimal flow.
//   - Stage 4: Extract drops slack and zero-flow links.
//   - Stage 5: AvgCost and TotalCost score the Solution.
//
// There is no partial result: Solve either returns a complete optimal Result or
// fails. An empty Solution (nothing could be or needed to be moved) fails with
// ErrEmptySolution because its average cost is undefined.
//
// The network is private to this call; concurrent Solve calls share nothing.
func Solve(ctx context.Context, sources, sinks network.Capacities, costs network.Costs, opts ...Option) (res *Result, err error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.Logger.WithName("matching")

	if cfg.Observer != nil {
		start := time.Now()
		defer func() { cfg.Observer.ObserveMatch(res, time.Since(start), err) }()
	}

	// 1) Build.
	n, err := network.Build(sources, sinks, costs)
	if err != nil {
		return nil, err
	}

	// 2) Balance.
	if err = network.Balance(n); err != nil {
		return nil, err
	}
	if slack, ok := n.Slack(); ok {
		log.V(1).Info("network balanced with slack node",
			"imbalance", n.Node(slack).Requirement, "slackCost", n.SlackCost())
	}

	// 3) Solve.
	flow, err := mcf.Solve(ctx, n,
		mcf.WithLogger(log.WithName("mcf")),
		mcf.WithMaxAugmentations(cfg.MaxAugmentations),
	)
	if err != nil {
		return nil, err
	}

	// 4) Extract.
	sol, slackUnits := Extract(n, flow)

	// 5) Evaluate.
	avg, err := AvgCost(sol, costs)
	if err != nil {
		return nil, err
	}
	total, err := TotalCost(sol, costs)
	if err != nil {
		return nil, err
	}

	res = &Result{
		Solution:   sol,
		AvgCost:    avg,
		TotalMoved: TotalMoved(sol),
		TotalCost:  total,
		SlackUnits: slackUnits,
		Roles:      n.Roles(),
		Stats:      flow.Stats,
	}
	log.Info("matched",
		"arcs", len(sol), "moved", res.TotalMoved, "avgCost", res.AvgCost, "slackUnits", slackUnits)

	return res, nil
}
