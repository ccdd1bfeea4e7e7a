// SPDX-License-Identifier: MIT
//
// File: builder.go
// Role: Turn supply, demand and cost tables into a Network.
// Determinism:
//   - Nodes and links are laid out in sorted order regardless of map iteration.

package network

import (
	"fmt"
	"sort"

	"go.uber.org/multierr"
)

// Build constructs a Network from the supply table, the demand table and the
// per-arc cost table.
//
// Implementation:
//   - Stage 1: Validate node tables (empty IDs, negative capacities, nodes in both roles).
//   - Stage 2: Lay out sources then sinks, each sorted by ID, with signed requirements.
//   - Stage 3: Validate every arc (declared endpoints, source→sink orientation, cost ≥ 0).
//   - Stage 4: Emit one Link per arc, sorted by (From, To).
//
// Every violation is reported; the returned error is a multierr combination and
// errors.Is matches ErrEmptyNodeID, ErrDuplicateNode, ErrInvalidCapacity and
// ErrInvalidEdge individually.
//
// Zero capacities are legal: such nodes take part in the network with a zero
// requirement.
//
// Complexity:
//   - Time O(V log V + E log E), Space O(V + E).
func Build(sources, sinks Capacities, costs Costs) (*Network, error) {
	var err error

	// 1) Node tables.
	srcIDs := sortedIDs(sources)
	snkIDs := sortedIDs(sinks)
	err = multierr.Append(err, checkNodes(sources, srcIDs))
	err = multierr.Append(err, checkNodes(sinks, snkIDs))
	for _, id := range srcIDs {
		if _, ok := sinks[id]; ok {
			err = multierr.Append(err, fmt.Errorf("%w: %q", ErrDuplicateNode, id))
		}
	}
	if err != nil {
		return nil, err
	}

	// 2) Layout.
	n := &Network{
		nodes:    make([]Node, 0, len(srcIDs)+len(snkIDs)+1),
		links:    make([]Link, 0, len(costs)),
		index:    make(map[string]int, len(srcIDs)+len(snkIDs)),
		nSources: len(srcIDs),
		nSinks:   len(snkIDs),
		slack:    -1,
	}
	for _, id := range srcIDs {
		n.index[id] = len(n.nodes)
		n.nodes = append(n.nodes, Node{ID: id, Role: RoleSource, Requirement: -sources[id]})
	}
	for _, id := range snkIDs {
		n.index[id] = len(n.nodes)
		n.nodes = append(n.nodes, Node{ID: id, Role: RoleSink, Requirement: sinks[id]})
	}

	// 3) Arcs, visited in a stable order so reported errors are reproducible.
	arcs := make([]Arc, 0, len(costs))
	for a := range costs {
		arcs = append(arcs, a)
	}
	sort.Slice(arcs, func(i, j int) bool {
		if arcs[i].From != arcs[j].From {
			return arcs[i].From < arcs[j].From
		}

		return arcs[i].To < arcs[j].To
	})
	for _, a := range arcs {
		link, linkErr := n.link(a, costs[a])
		if linkErr != nil {
			err = multierr.Append(err, linkErr)
			continue
		}
		n.links = append(n.links, link)
	}
	if err != nil {
		return nil, err
	}

	// 4) Links follow node order, not ID order.
	sortLinks(n.links)

	return n, nil
}

// link resolves one cost entry to a Link.
func (n *Network) link(a Arc, cost int64) (Link, error) {
	from, okFrom := n.index[a.From]
	to, okTo := n.index[a.To]
	switch {
	case !okFrom && !okTo:
		return Link{}, EdgeError{Arc: a, Reason: "references undeclared nodes"}
	case !okFrom:
		return Link{}, EdgeError{Arc: a, Reason: fmt.Sprintf("references undeclared node %q", a.From)}
	case !okTo:
		return Link{}, EdgeError{Arc: a, Reason: fmt.Sprintf("references undeclared node %q", a.To)}
	case n.nodes[from].Role != RoleSource || n.nodes[to].Role != RoleSink:
		return Link{}, EdgeError{Arc: a, Reason: "must run from a source to a sink"}
	case cost < 0:
		arc := a
		return Link{}, CapacityError{Arc: &arc, Value: cost}
	}

	return Link{From: from, To: to, Cost: cost}, nil
}

// checkNodes validates one capacity table whose keys are already sorted in ids.
func checkNodes(caps Capacities, ids []string) error {
	var err error
	for _, id := range ids {
		if id == "" {
			err = multierr.Append(err, ErrEmptyNodeID)
			continue
		}
		if c := caps[id]; c < 0 {
			err = multierr.Append(err, CapacityError{Node: id, Value: c})
		}
	}

	return err
}

func sortedIDs(caps Capacities) []string {
	ids := make([]string, 0, len(caps))
	for id := range caps {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

func sortLinks(links []Link) {
	sort.Slice(links, func(i, j int) bool {
		if links[i].From != links[j].From {
			return links[i].From < links[j].From
		}

		return links[i].To < links[j].To
	})
}
