// SPDX-License-Identifier: MIT

package matching

import (
	"errors"
	"time"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/flowmatch/mcf"
	"github.com/katalvlaran/flowmatch/network"
)

// ErrEmptySolution indicates that an average was requested over a Solution with
// no arcs.
var ErrEmptySolution = errors.New("matching: solution is empty")

// Solution maps each used source→sink arc to the positive amount moved along it.
type Solution map[network.Arc]int64

// Result is the full outcome of one matching request.
type Result struct {
	Solution   Solution
	AvgCost    float64 // unweighted mean of per-unit arc costs in Solution
	TotalMoved int64   // Σ amounts in Solution
	TotalCost  int64   // Σ amount·cost over Solution
	SlackUnits int64   // units routed through the slack node, absent from Solution

	// Roles maps every declared node ID to RoleSource or RoleSink.
	Roles map[string]network.Role

	Stats mcf.Stats
}

// Observer is notified once per Solve call, on success and on failure.
// res is nil when err is non-nil.
type Observer interface {
	ObserveMatch(res *Result, elapsed time.Duration, err error)
}

// Options configures Solve.
type Options struct {
	Logger           logr.Logger
	MaxAugmentations int
	Observer         Observer
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithLogger routes pipeline and solver logging to log.
func WithLogger(log logr.Logger) Option {
	return func(o *Options) { o.Logger = log }
}

// WithMaxAugmentations bounds the solver; see mcf.WithMaxAugmentations.
func WithMaxAugmentations(max int) Option {
	return func(o *Options) { o.MaxAugmentations = max }
}

// WithObserver registers obs to be notified of every request.
func WithObserver(obs Observer) Option {
	return func(o *Options) { o.Observer = obs }
}

// DefaultOptions returns Options with a discarding logger, no augmentation
// bound and no observer.
func DefaultOptions() Options {
	return Options{Logger: logr.Discard()}
}
