// SPDX-License-Identifier: MIT

package matching

import (
	"fmt"
	"math"
	"math/big"

	"github.com/katalvlaran/flowmatch/network"
)

// AvgCost returns the arithmetic mean of costs[e] over every arc e in s:
//
//	AvgCost = (Σ costs[e] for e in s) / |s|
//
// The mean is over arcs, not units: an arc moving 100 units counts as much as
// one moving 1.
//
// Errors:
//   - ErrEmptySolution if s has no arcs.
//   - network.ErrInvalidEdge if an arc of s has no declared cost.
func AvgCost(s Solution, costs network.Costs) (float64, error) {
	if len(s) == 0 {
		return 0, ErrEmptySolution
	}

	var sum int64
	for a := range s {
		c, ok := costs[a]
		if !ok {
			return 0, network.EdgeError{Arc: a, Reason: "has no declared cost"}
		}
		if c > math.MaxInt64-sum {
			return avgCostBig(s, costs), nil
		}
		sum += c
	}

	return float64(sum) / float64(len(s)), nil
}

// avgCostBig is AvgCost for sums beyond int64, accumulated exactly.
func avgCostBig(s Solution, costs network.Costs) float64 {
	sum := new(big.Int)
	for a := range s {
		sum.Add(sum, big.NewInt(costs[a]))
	}
	mean := new(big.Float).Quo(new(big.Float).SetInt(sum), big.NewFloat(float64(len(s))))
	f, _ := mean.Float64()

	return f
}

// TotalCost returns Σ amount·cost over s, the flow-weighted expenditure.
//
// Errors:
//   - network.ErrInvalidEdge if an arc of s has no declared cost.
//   - network.ErrCostOverflow if the total does not fit in int64.
func TotalCost(s Solution, costs network.Costs) (int64, error) {
	var total int64
	for a, amount := range s {
		c, ok := costs[a]
		if !ok {
			return 0, network.EdgeError{Arc: a, Reason: "has no declared cost"}
		}
		if c != 0 && amount > (math.MaxInt64-total)/c {
			return 0, fmt.Errorf("%w: total cost of solution", network.ErrCostOverflow)
		}
		total += amount * c
	}

	return total, nil
}
