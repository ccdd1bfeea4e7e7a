package metrics_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flowmatch/matching"
	"github.com/katalvlaran/flowmatch/mcf"
	"github.com/katalvlaran/flowmatch/metrics"
	"github.com/katalvlaran/flowmatch/network"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))

	return m.GetCounter().GetValue()
}

func TestRecorder_ObserveMatch(t *testing.T) {
	r := metrics.NewRecorder()
	costs := network.Costs{{From: "A", To: "B"}: 3}

	_, err := matching.Solve(context.Background(),
		network.Capacities{"A": 5}, network.Capacities{"B": 2}, costs, matching.WithObserver(r))
	require.NoError(t, err)
	_, err = matching.Solve(context.Background(),
		network.Capacities{"A": 0}, network.Capacities{"B": 2}, costs, matching.WithObserver(r))
	require.ErrorIs(t, err, matching.ErrEmptySolution)

	require.Equal(t, 1.0, counterValue(t, r.MatchesTotal.WithLabelValues(metrics.StatusSuccess)))
	require.Equal(t, 1.0, counterValue(t, r.MatchesTotal.WithLabelValues(metrics.StatusEmpty)))
	require.Equal(t, 2.0, counterValue(t, r.UnitsMoved))
	require.Equal(t, 3.0, counterValue(t, r.SlackUnits))

	var m dto.Metric
	require.NoError(t, r.SolveDuration.Write(&m))
	require.Equal(t, uint64(2), m.GetHistogram().GetSampleCount())
}

func TestStatus(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, metrics.StatusSuccess},
		{network.EdgeError{Arc: network.Arc{From: "A", To: "B"}, Reason: "x"}, metrics.StatusInvalid},
		{fmt.Errorf("wrap: %w", network.ErrDuplicateNode), metrics.StatusInvalid},
		{fmt.Errorf("%w: stuck", mcf.ErrInfeasibleFlow), metrics.StatusInfeasible},
		{matching.ErrEmptySolution, metrics.StatusEmpty},
		{context.Canceled, metrics.StatusCanceled},
		{errors.New("boom"), metrics.StatusError},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, metrics.Status(tc.err), "Status(%v)", tc.err)
	}
}

func TestRecorder_WriteText(t *testing.T) {
	r := metrics.NewRecorder()
	r.ObserveMatch(&matching.Result{TotalMoved: 4, Stats: mcf.Stats{Augmentations: 2}}, time.Millisecond, nil)

	var buf bytes.Buffer
	require.NoError(t, r.WriteText(&buf))
	out := buf.String()
	require.Contains(t, out, `flowmatch_matches_total{status="success"} 1`)
	require.Contains(t, out, "flowmatch_units_moved_total 4")
	require.Contains(t, out, "# TYPE flowmatch_solve_duration_seconds histogram")
	require.Contains(t, out, "flowmatch_augmentations_count 1")
}

func TestRecorder_Independent(t *testing.T) {
	a, b := metrics.NewRecorder(), metrics.NewRecorder()
	a.ObserveMatch(nil, time.Millisecond, errors.New("boom"))

	require.Equal(t, 1.0, counterValue(t, a.MatchesTotal.WithLabelValues(metrics.StatusError)))
	require.Equal(t, 0.0, counterValue(t, b.MatchesTotal.WithLabelValues(metrics.StatusError)))
}
