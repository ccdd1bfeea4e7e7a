// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node roles, input tables, Network storage and sentinel errors.

package network

import (
	"errors"
	"fmt"
)

// Sentinel errors for network construction.
var (
	// ErrEmptyNodeID indicates a source or sink declared with an empty ID.
	ErrEmptyNodeID = errors.New("network: node ID is empty")

	// ErrDuplicateNode indicates a node declared both as source and as sink.
	ErrDuplicateNode = errors.New("network: node declared as both source and sink")

	// ErrInvalidCapacity indicates a negative capacity or cost.
	ErrInvalidCapacity = errors.New("network: invalid capacity")

	// ErrInvalidEdge indicates an arc that does not run from a declared source
	// to a declared sink.
	ErrInvalidEdge = errors.New("network: invalid edge")

	// ErrCostOverflow indicates that cost arithmetic would overflow int64.
	ErrCostOverflow = errors.New("network: cost overflow")
)

// Role tags a node as source, sink or slack.
type Role uint8

const (
	// RoleSource marks a node with fixed supply.
	RoleSource Role = iota
	// RoleSink marks a node with fixed demand.
	RoleSink
	// RoleSlack marks the synthetic node absorbing or emitting the imbalance.
	RoleSlack
)

// String returns the lower-case role name.
func (r Role) String() string {
	switch r {
	case RoleSource:
		return "source"
	case RoleSink:
		return "sink"
	case RoleSlack:
		return "slack"
	default:
		return fmt.Sprintf("role(%d)", uint8(r))
	}
}

// Capacities maps a node ID to its declared supply (sources) or demand (sinks).
type Capacities map[string]int64

// Arc is a directed connection from a source (From) to a sink (To).
type Arc struct {
	From string
	To   string
}

// String renders the arc as "From→To".
func (a Arc) String() string { return a.From + "→" + a.To }

// Costs maps an arc to its per-unit transportation cost.
type Costs map[Arc]int64

// Node is one vertex of a Network.
//
// ID is empty for the slack node. Requirement is the signed net requirement:
// negative for emitters, positive for absorbers.
type Node struct {
	ID          string
	Role        Role
	Requirement int64
}

// Link is an arc of a Network addressed by node indices.
type Link struct {
	From int
	To   int
	Cost int64
}

// Network is a balanced-or-balanceable flow network.
//
// Nodes are stored sources first, then sinks, then the optional slack node.
// Links are sorted by (From, To). A Network is not safe for concurrent mutation;
// each solve owns its own instance.
type Network struct {
	nodes []Node
	links []Link
	index map[string]int // ID → position in nodes; never contains the slack node

	nSources int
	nSinks   int

	slack     int   // index of the slack node, -1 when absent
	slackCost int64 // cost of every slack link, 0 when absent
}

// EdgeError reports an arc that cannot be part of the network.
type EdgeError struct {
	Arc    Arc
	Reason string
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("%s: arc %q→%q %s", ErrInvalidEdge, e.Arc.From, e.Arc.To, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidEdge.
func (e EdgeError) Unwrap() error { return ErrInvalidEdge }

// CapacityError reports a negative capacity (Arc is nil) or cost (Node is empty).
type CapacityError struct {
	Node  string
	Arc   *Arc
	Value int64
}

func (e CapacityError) Error() string {
	if e.Arc != nil {
		return fmt.Sprintf("%s: negative cost on arc %q→%q: %d", ErrInvalidCapacity, e.Arc.From, e.Arc.To, e.Value)
	}

	return fmt.Sprintf("%s: negative capacity on node %q: %d", ErrInvalidCapacity, e.Node, e.Value)
}

// Unwrap lets errors.Is match ErrInvalidCapacity.
func (e CapacityError) Unwrap() error { return ErrInvalidCapacity }
