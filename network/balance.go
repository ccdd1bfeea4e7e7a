// SPDX-License-Identifier: MIT
//
// File: balance.go
// Role: Make total supply equal total demand by adding one slack node.

package network

import (
	"fmt"
	"math"
)

// Balance equalizes total supply and total demand of n.
//
// With imbalance = TotalSupply − TotalDemand:
//
//	imbalance == 0: n is left unchanged.
//	imbalance  < 0: a slack node with Requirement = imbalance (an emitter of
//	                |imbalance| units) is appended, linked to every sink.
//	imbalance  > 0: a slack node with Requirement = imbalance (an absorber)
//	                is appended, linked from every source.
//
// Every slack link costs SlackCost = 1 + Σ real link costs. Balance is
// idempotent: calling it on a network that already has a slack node is a no-op.
//
// Errors:
//   - ErrCostOverflow if capacities or costs are too large to sum in int64.
//
// Complexity:
//   - Time O(V + E), Space O(V).
func Balance(n *Network) error {
	if n.slack >= 0 {
		return nil
	}

	imbalance, err := n.Imbalance()
	if err != nil {
		return err
	}
	if imbalance == 0 {
		return nil
	}

	slackCost, err := n.dominantCost()
	if err != nil {
		return err
	}

	n.slack = len(n.nodes)
	n.slackCost = slackCost
	n.nodes = append(n.nodes, Node{Role: RoleSlack, Requirement: imbalance})

	if imbalance < 0 {
		for i := n.nSources; i < n.nSources+n.nSinks; i++ {
			n.links = append(n.links, Link{From: n.slack, To: i, Cost: slackCost})
		}
	} else {
		for i := 0; i < n.nSources; i++ {
			n.links = append(n.links, Link{From: i, To: n.slack, Cost: slackCost})
		}
	}
	sortLinks(n.links)

	return nil
}

// dominantCost returns one more than the sum of all real link costs.
func (n *Network) dominantCost() (int64, error) {
	total := int64(1)
	for _, l := range n.links {
		if l.Cost > math.MaxInt64-total {
			return 0, fmt.Errorf("%w: sum of arc costs exceeds %d", ErrCostOverflow, int64(math.MaxInt64))
		}
		total += l.Cost
	}

	return total, nil
}

// sum adds the capacities of all nodes with the given role.
func (n *Network) sum(role Role) (int64, error) {
	var total int64
	for _, nd := range n.nodes {
		if nd.Role != role {
			continue
		}
		c := nd.Requirement
		if c < 0 {
			c = -c
		}
		if c > math.MaxInt64-total {
			return 0, fmt.Errorf("%w: total %s capacity exceeds %d", ErrCostOverflow, role, int64(math.MaxInt64))
		}
		total += c
	}

	return total, nil
}
