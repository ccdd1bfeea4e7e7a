// SPDX-License-Identifier: MIT

// Package network builds the flow network solved by flowmatch: a bipartite set of
// source nodes (fixed supply) and sink nodes (fixed demand) joined by
// uncapacitated, cost-bearing arcs.
//
// A Network is built once per matching request with Build and discarded after
// solving. Build validates the three input tables and lays the nodes out in a
// deterministic order:
//
//	sources (sorted by ID) | sinks (sorted by ID) | slack (optional, always last)
//
// Each node carries a signed net requirement:
//
//	Requirement < 0: the node must emit that much net flow (sources),
//	Requirement > 0: the node must absorb that much net flow (sinks),
//	Requirement = 0: pure transshipment.
//
// # Balancing
//
// When total supply differs from total demand the network is not solvable as-is.
// Balance appends one synthetic slack node (RoleSlack) that emits or absorbs the
// difference, connected to every sink (slack emits) or from every source (slack
// absorbs) at SlackCost. SlackCost is one more than the sum of every real arc cost,
// so any path through the slack node is dearer than every real path combined and
// the solver only routes through it when nothing else is feasible.
//
// The slack node has an empty ID and is addressed by role only, so a user node
// named "RESERVOIR" (or anything else) can never collide with it.
//
// # Errors
//
//	ErrEmptyNodeID     - a node ID is the empty string.
//	ErrDuplicateNode   - a node is declared both as source and sink.
//	ErrInvalidCapacity - a capacity or cost is negative (CapacityError).
//	ErrInvalidEdge     - an arc references an undeclared node or runs sink→source (EdgeError).
//	ErrCostOverflow    - the real costs are too large to derive a finite SlackCost.
//
// Build reports every violation it finds, joined with go.uber.org/multierr;
// errors.Is works against each sentinel.
package network
