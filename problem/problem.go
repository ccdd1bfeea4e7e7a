// SPDX-License-Identifier: MIT

package problem

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/katalvlaran/flowmatch/network"
)

var (
	// ErrInvalidProblem indicates a Problem that fails field validation.
	ErrInvalidProblem = errors.New("problem: invalid problem")

	// ErrDuplicateCost indicates two cost rows for the same source→sink arc.
	ErrDuplicateCost = errors.New("problem: duplicate cost row")
)

// Problem is one matching request in file form.
type Problem struct {
	Name    string           `yaml:"name,omitempty"`
	Sources map[string]int64 `yaml:"sources" validate:"required,dive,keys,required,endkeys,gte=0"`
	Sinks   map[string]int64 `yaml:"sinks" validate:"required,dive,keys,required,endkeys,gte=0"`
	Costs   []Cost           `yaml:"costs" validate:"dive"`
}

// Cost is the per-unit cost of moving flow from a source to a sink.
type Cost struct {
	From string `yaml:"from" validate:"required"`
	To   string `yaml:"to" validate:"required"`
	Cost int64  `yaml:"cost" validate:"gte=0"`
}

// Arc returns the arc this row prices.
func (c Cost) Arc() network.Arc { return network.Arc{From: c.From, To: c.To} }

// Tables validates p and converts it into the inputs of network.Build.
// All duplicate cost rows are reported, joined with multierr.
func (p *Problem) Tables() (network.Capacities, network.Capacities, network.Costs, error) {
	if err := p.Validate(); err != nil {
		return nil, nil, nil, err
	}

	costs := make(network.Costs, len(p.Costs))
	var errs error
	for i, c := range p.Costs {
		a := c.Arc()
		if _, dup := costs[a]; dup {
			errs = multierr.Append(errs, fmt.Errorf("%w: row %d repeats %s", ErrDuplicateCost, i, a))
			continue
		}
		costs[a] = c.Cost
	}
	if errs != nil {
		return nil, nil, nil, errs
	}

	return network.Capacities(p.Sources), network.Capacities(p.Sinks), costs, nil
}
