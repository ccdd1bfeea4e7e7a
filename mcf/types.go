// SPDX-License-Identifier: MIT

package mcf

import (
	"errors"

	"github.com/go-logr/logr"
)

// Sentinel errors returned by Solve.
var (
	// ErrNilNetwork indicates that a nil *network.Network was passed to Solve.
	ErrNilNetwork = errors.New("mcf: network is nil")

	// ErrUnbalanced indicates node requirements that do not sum to zero.
	ErrUnbalanced = errors.New("mcf: network is not balanced")

	// ErrNegativeCost indicates a link with a negative cost.
	ErrNegativeCost = errors.New("mcf: negative link cost")

	// ErrInfeasibleFlow indicates that no augmenting path exists while both
	// supply and demand remain.
	ErrInfeasibleFlow = errors.New("mcf: infeasible flow")

	// ErrCostOverflow indicates that a distance or total cost overflowed int64.
	ErrCostOverflow = errors.New("mcf: cost overflow")

	// ErrIterationLimit indicates that MaxAugmentations was exhausted.
	ErrIterationLimit = errors.New("mcf: augmentation limit reached")
)

// Options configures Solve.
//
// Logger           – receives one V(1) line per augmentation and a final summary.
// MaxAugmentations – upper bound on augmentations; 0 means unlimited.
type Options struct {
	Logger           logr.Logger
	MaxAugmentations int
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithLogger routes solver logging to log.
func WithLogger(log logr.Logger) Option {
	return func(o *Options) {
		o.Logger = log
	}
}

// WithMaxAugmentations bounds the number of augmentations. Values ≤ 0 disable
// the bound.
func WithMaxAugmentations(max int) Option {
	return func(o *Options) {
		if max < 0 {
			max = 0
		}
		o.MaxAugmentations = max
	}
}

// DefaultOptions returns Options with a discarding logger and no bound.
func DefaultOptions() Options {
	return Options{
		Logger:           logr.Discard(),
		MaxAugmentations: 0,
	}
}

// Stats describes the work done by one Solve call.
type Stats struct {
	Augmentations int   // paths along which flow was pushed
	Relaxations   int   // residual edges that improved a label
	Units         int64 // units moved from emitters to absorbers
}

// Flow is the optimal flow found by Solve.
//
// Amounts[i] is the flow on link i of network.Links(); TotalCost is Σ amount·cost
// over all links, slack links included.
type Flow struct {
	Amounts   []int64
	TotalCost int64
	Stats     Stats
}
