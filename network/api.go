// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only queries over a Network.
// Policy:
//   - Slices returned to callers are copies; a Network never leaks its storage.

package network

// Len returns the number of nodes, slack included.
func (n *Network) Len() int { return len(n.nodes) }

// Node returns the node at index i.
func (n *Network) Node(i int) Node { return n.nodes[i] }

// Nodes returns a copy of all nodes in layout order.
func (n *Network) Nodes() []Node {
	out := make([]Node, len(n.nodes))
	copy(out, n.nodes)

	return out
}

// Links returns a copy of all links sorted by (From, To).
func (n *Network) Links() []Link {
	out := make([]Link, len(n.links))
	copy(out, n.links)

	return out
}

// Index returns the position of the source or sink with the given ID.
// The slack node is never found by ID.
func (n *Network) Index(id string) (int, bool) {
	i, ok := n.index[id]

	return i, ok
}

// Slack returns the index of the slack node, if Balance added one.
func (n *Network) Slack() (int, bool) { return n.slack, n.slack >= 0 }

// SlackCost returns the cost of every slack link, or 0 when there is no slack node.
func (n *Network) SlackCost() int64 { return n.slackCost }

// IsSlackLink reports whether l touches the slack node.
func (n *Network) IsSlackLink(l Link) bool {
	return n.slack >= 0 && (l.From == n.slack || l.To == n.slack)
}

// Arc returns the user-facing arc of a link between a source and a sink.
// For slack links the slack side is the empty string.
func (n *Network) Arc(l Link) Arc {
	return Arc{From: n.nodes[l.From].ID, To: n.nodes[l.To].ID}
}

// TotalSupply returns the sum of all source capacities.
// It fails with ErrCostOverflow if the sum does not fit in int64.
func (n *Network) TotalSupply() (int64, error) { return n.sum(RoleSource) }

// TotalDemand returns the sum of all sink capacities.
// It fails with ErrCostOverflow if the sum does not fit in int64.
func (n *Network) TotalDemand() (int64, error) { return n.sum(RoleSink) }

// Imbalance returns TotalSupply − TotalDemand, or the overflow error of either sum.
func (n *Network) Imbalance() (int64, error) {
	supply, err := n.TotalSupply()
	if err != nil {
		return 0, err
	}
	demand, err := n.TotalDemand()
	if err != nil {
		return 0, err
	}

	return supply - demand, nil // both operands are non-negative
}

// Roles maps every source and sink ID to its role.
func (n *Network) Roles() map[string]Role {
	out := make(map[string]Role, len(n.index))
	for id, i := range n.index {
		out[id] = n.nodes[i].Role
	}

	return out
}
