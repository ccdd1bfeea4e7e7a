package matching_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/flowmatch/matching"
	"github.com/katalvlaran/flowmatch/mcf"
	"github.com/katalvlaran/flowmatch/network"
)

func arc(from, to string) network.Arc { return network.Arc{From: from, To: to} }

// MatchSuite covers the end-to-end scenarios.
type MatchSuite struct {
	suite.Suite
}

// TestChooseClosestSingle: sources {A:1, B:1}, sinks {C:0, D:1}.
func (s *MatchSuite) TestChooseClosestSingle() {
	costs := network.Costs{arc("A", "C"): 10, arc("A", "D"): 15, arc("B", "C"): 10, arc("B", "D"): 10}

	sol, avg, err := matching.Match(network.Capacities{"A": 1, "B": 1}, network.Capacities{"C": 0, "D": 1}, costs)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(1), matching.TotalMoved(sol))
	require.Equal(s.T(), 10.0, avg)
	if diff := cmp.Diff(matching.Solution{arc("B", "D"): 1}, sol); diff != "" {
		s.T().Errorf("Match(): mismatch (-want +got):\n%s", diff)
	}
}

// TestChooseClosestMulti: sources {A:1, B:1}, sinks {C:1, D:1}.
func (s *MatchSuite) TestChooseClosestMulti() {
	costs := network.Costs{arc("A", "C"): 10, arc("A", "D"): 15, arc("B", "C"): 10, arc("B", "D"): 10}

	sol, avg, err := matching.Match(network.Capacities{"A": 1, "B": 1}, network.Capacities{"C": 1, "D": 1}, costs)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(2), matching.TotalMoved(sol))
	require.Equal(s.T(), 10.0, avg)
}

// TestChooseFurthestSingle: the mirror of the closest case.
func (s *MatchSuite) TestChooseFurthestSingle() {
	costs := network.Costs{arc("A", "C"): 10, arc("A", "D"): 10, arc("B", "C"): 10, arc("B", "D"): 15}

	sol, avg, err := matching.Match(network.Capacities{"A": 1, "B": 1}, network.Capacities{"C": 0, "D": 1}, costs)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(1), matching.TotalMoved(sol))
	require.Equal(s.T(), 10.0, avg)
}

// TestChooseFurthestMulti: sources {A:1, B:1}, sinks {C:1, D:1}, BC is cheap.
func (s *MatchSuite) TestChooseFurthestMulti() {
	costs := network.Costs{arc("A", "C"): 10, arc("A", "D"): 15, arc("B", "C"): 2, arc("B", "D"): 10}

	sol, avg, err := matching.Match(network.Capacities{"A": 1, "B": 1}, network.Capacities{"C": 1, "D": 1}, costs)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(2), matching.TotalMoved(sol))
	require.Equal(s.T(), 8.5, avg)
}

// TestChooseFurthestMultiV2: sources {A:1, B:1, C:4}, sinks {D:3, E:3}.
func (s *MatchSuite) TestChooseFurthestMultiV2() {
	costs := network.Costs{
		arc("A", "D"): 10, arc("A", "E"): 15,
		arc("B", "D"): 3, arc("B", "E"): 10,
		arc("C", "D"): 5, arc("C", "E"): 10,
	}

	res, err := matching.Solve(context.Background(),
		network.Capacities{"A": 1, "B": 1, "C": 4}, network.Capacities{"D": 3, "E": 3}, costs)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(6), res.TotalMoved)
	require.Equal(s.T(), 8.25, res.AvgCost)
	require.Equal(s.T(), int64(48), res.TotalCost)
	require.Zero(s.T(), res.SlackUnits)
}

// TestResultFields: roles, slack units and stats are reported.
func (s *MatchSuite) TestResultFields() {
	costs := network.Costs{arc("A", "C"): 10, arc("A", "D"): 15, arc("B", "C"): 10, arc("B", "D"): 10}

	res, err := matching.Solve(context.Background(),
		network.Capacities{"A": 1, "B": 1}, network.Capacities{"C": 0, "D": 1}, costs)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(1), res.SlackUnits)
	require.Equal(s.T(), int64(10), res.TotalCost)
	require.Equal(s.T(), map[string]network.Role{
		"A": network.RoleSource, "B": network.RoleSource,
		"C": network.RoleSink, "D": network.RoleSink,
	}, res.Roles)
	require.Equal(s.T(), 2, res.Stats.Augmentations)
}

// TestEmptySolution: nothing to move has no average.
func (s *MatchSuite) TestEmptySolution() {
	_, _, err := matching.Match(network.Capacities{"A": 0}, network.Capacities{"B": 5}, network.Costs{arc("A", "B"): 1})
	require.ErrorIs(s.T(), err, matching.ErrEmptySolution)
}

// TestErrorsPropagate: builder and solver errors reach the caller unchanged.
func (s *MatchSuite) TestErrorsPropagate() {
	_, _, err := matching.Match(network.Capacities{"A": 1}, network.Capacities{"B": 1}, network.Costs{arc("A", "Z"): 1})
	require.ErrorIs(s.T(), err, network.ErrInvalidEdge)

	_, _, err = matching.Match(network.Capacities{"A": -1}, network.Capacities{"B": 1}, nil)
	require.ErrorIs(s.T(), err, network.ErrInvalidCapacity)

	_, _, err = matching.Match(network.Capacities{"A": 1, "X": 1}, network.Capacities{"B": 2}, network.Costs{arc("A", "B"): 1})
	require.ErrorIs(s.T(), err, mcf.ErrInfeasibleFlow)

	_, err = matching.Solve(context.Background(),
		network.Capacities{"A": 1, "B": 1}, network.Capacities{"C": 1, "D": 1},
		network.Costs{arc("A", "C"): 1, arc("A", "D"): 1, arc("B", "C"): 1, arc("B", "D"): 1},
		matching.WithMaxAugmentations(1))
	require.ErrorIs(s.T(), err, mcf.ErrIterationLimit)
}

// TestIndependentRequests: concurrent solves share no state.
func (s *MatchSuite) TestIndependentRequests() {
	costs := network.Costs{arc("A", "C"): 10, arc("A", "D"): 15, arc("B", "C"): 2, arc("B", "D"): 10}
	done := make(chan float64, 8)
	for i := 0; i < cap(done); i++ {
		go func() {
			_, avg, err := matching.Match(network.Capacities{"A": 1, "B": 1}, network.Capacities{"C": 1, "D": 1}, costs)
			if err != nil {
				avg = -1
			}
			done <- avg
		}()
	}
	for i := 0; i < cap(done); i++ {
		require.Equal(s.T(), 8.5, <-done)
	}
}

func TestMatchSuite(t *testing.T) {
	suite.Run(t, new(MatchSuite))
}

type recordingObserver struct {
	calls []error
	last  *matching.Result
}

func (o *recordingObserver) ObserveMatch(res *matching.Result, _ time.Duration, err error) {
	o.calls = append(o.calls, err)
	o.last = res
}

func TestSolve_Observer(t *testing.T) {
	obs := &recordingObserver{}
	ctx := context.Background()

	_, err := matching.Solve(ctx, network.Capacities{"A": 2}, network.Capacities{"B": 2},
		network.Costs{arc("A", "B"): 3}, matching.WithObserver(obs))
	require.NoError(t, err)
	_, err = matching.Solve(ctx, network.Capacities{"A": 2}, network.Capacities{"B": 2},
		network.Costs{arc("A", "C"): 3}, matching.WithObserver(obs))
	require.Error(t, err)

	require.Len(t, obs.calls, 2)
	require.NoError(t, obs.calls[0])
	require.ErrorIs(t, obs.calls[1], network.ErrInvalidEdge)
	require.Nil(t, obs.last, "failed requests report no result")
}
