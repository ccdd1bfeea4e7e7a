package matching_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flowmatch/matching"
	"github.com/katalvlaran/flowmatch/mcf"
	"github.com/katalvlaran/flowmatch/network"
)

func TestExtract_DropsSlackAndZeroFlow(t *testing.T) {
	n, err := network.Build(
		network.Capacities{"A": 3, "B": 1},
		network.Capacities{"C": 2},
		network.Costs{arc("A", "C"): 1, arc("B", "C"): 1},
	)
	require.NoError(t, err)
	require.NoError(t, network.Balance(n))

	// Links: A→C, A→slack, B→C, B→slack.
	f := &mcf.Flow{Amounts: []int64{2, 1, 0, 1}}
	sol, slackUnits := matching.Extract(n, f)

	if diff := cmp.Diff(matching.Solution{arc("A", "C"): 2}, sol); diff != "" {
		t.Errorf("Extract(): mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, int64(2), slackUnits)
	for a := range sol {
		require.NotEmpty(t, a.From, "solution never references the slack node")
		require.NotEmpty(t, a.To, "solution never references the slack node")
	}
}
