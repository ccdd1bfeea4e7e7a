// SPDX-License-Identifier: MIT

package matching

import (
	"github.com/katalvlaran/flowmatch/mcf"
	"github.com/katalvlaran/flowmatch/network"
)

// Extract turns a solver flow into the externally visible Solution.
//
// Links touching the slack node are dropped whatever they carry, as are links
// with zero flow. The second return value is the number of units that went
// through the slack node.
func Extract(n *network.Network, f *mcf.Flow) (Solution, int64) {
	sol := make(Solution)
	var slackUnits int64
	for k, l := range n.Links() {
		amount := f.Amounts[k]
		if n.IsSlackLink(l) {
			slackUnits += amount
			continue
		}
		if amount == 0 {
			continue
		}
		sol[n.Arc(l)] = amount
	}

	return sol, slackUnits
}

// TotalMoved returns the sum of all amounts in s.
func TotalMoved(s Solution) int64 {
	var total int64
	for _, amount := range s {
		total += amount
	}

	return total
}
