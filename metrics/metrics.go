// SPDX-License-Identifier: MIT

// Package metrics records matching requests as Prometheus metrics.
//
// A Recorder owns a private registry, so several recorders can coexist in one
// process and tests never touch the global default registry.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/flowmatch/matching"
	"github.com/katalvlaran/flowmatch/mcf"
	"github.com/katalvlaran/flowmatch/network"
)

// Status label values of flowmatch_matches_total.
const (
	StatusSuccess    = "success"
	StatusInvalid    = "invalid_input"
	StatusInfeasible = "infeasible"
	StatusEmpty      = "empty"
	StatusCanceled   = "canceled"
	StatusError      = "error"
)

// Recorder holds the match metrics. It implements matching.Observer.
type Recorder struct {
	registry *prometheus.Registry

	MatchesTotal  *prometheus.CounterVec
	SolveDuration prometheus.Histogram
	Augmentations prometheus.Histogram
	UnitsMoved    prometheus.Counter
	SlackUnits    prometheus.Counter
}

var _ matching.Observer = (*Recorder)(nil)

// NewRecorder creates a Recorder with all metrics registered.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	r := &Recorder{registry: reg}

	r.MatchesTotal = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "flowmatch_matches_total",
			Help: "Total number of matching requests by outcome",
		},
		[]string{"status"},
	)
	r.SolveDuration = promauto.With(reg).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "flowmatch_solve_duration_seconds",
			Help:    "Matching request duration in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 0.5, 1.0, 5.0, 30.0},
		},
	)
	r.Augmentations = promauto.With(reg).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "flowmatch_augmentations",
			Help:    "Number of augmenting paths per successful request",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)
	r.UnitsMoved = promauto.With(reg).NewCounter(
		prometheus.CounterOpts{
			Name: "flowmatch_units_moved_total",
			Help: "Total units moved from sources to sinks",
		},
	)
	r.SlackUnits = promauto.With(reg).NewCounter(
		prometheus.CounterOpts{
			Name: "flowmatch_slack_units_total",
			Help: "Total units absorbed or supplied by the slack node",
		},
	)

	return r
}

// Registry returns the registry the metrics live in.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// ObserveMatch records one matching request.
func (r *Recorder) ObserveMatch(res *matching.Result, elapsed time.Duration, err error) {
	r.MatchesTotal.WithLabelValues(Status(err)).Inc()
	r.SolveDuration.Observe(elapsed.Seconds())
	if err != nil || res == nil {
		return
	}
	r.Augmentations.Observe(float64(res.Stats.Augmentations))
	r.UnitsMoved.Add(float64(res.TotalMoved))
	r.SlackUnits.Add(float64(res.SlackUnits))
}

// Status classifies a matching error into a status label value.
func Status(err error) string {
	switch {
	case err == nil:
		return StatusSuccess
	case errors.Is(err, network.ErrInvalidCapacity),
		errors.Is(err, network.ErrInvalidEdge),
		errors.Is(err, network.ErrEmptyNodeID),
		errors.Is(err, network.ErrDuplicateNode):
		return StatusInvalid
	case errors.Is(err, mcf.ErrInfeasibleFlow):
		return StatusInfeasible
	case errors.Is(err, matching.ErrEmptySolution):
		return StatusEmpty
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return StatusCanceled
	default:
		return StatusError
	}
}

// WriteText writes every metric in the text exposition format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: write %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
