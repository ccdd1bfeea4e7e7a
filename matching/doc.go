// SPDX-License-Identifier: MIT

// Package matching is the entry point of flowmatch: it matches source nodes with
// fixed supply to sink nodes with fixed demand at minimum total transportation
// cost.
//
// The pipeline runs strictly left to right:
//
//	network.Build → network.Balance → mcf.Solve → Extract → AvgCost
//
// Match is the short form returning the Solution and its average cost; Solve
// returns a Result carrying the totals, units routed through the slack node,
// node roles (for rendering collaborators) and solver statistics.
//
// # Average cost
//
// AvgCost is the arithmetic mean of the declared per-unit cost of every arc
// present in the Solution. It is not weighted by the amount each arc carries
// and is not total expenditure divided by units moved; TotalCost provides the
// flow-weighted figure.
//
// # Unmatched quantity
//
// Units emitted or absorbed by the slack node never appear in the Solution.
// Result.SlackUnits reports how many there were.
package matching
