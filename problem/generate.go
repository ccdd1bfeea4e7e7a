// SPDX-License-Identifier: MIT
//
// File: generate.go
// Role: Random complete bipartite problems.
// Determinism:
//   - Same rng seed and config → identical Problem.
//   - Sources are drawn first (i asc), then sinks (j asc), then costs (i asc, j asc).

package problem

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

var (
	// ErrTooFewNodes indicates a generator side size below 1.
	ErrTooFewNodes = errors.New("problem: too few nodes")

	// ErrInvalidRange indicates a negative bound or max < min.
	ErrInvalidRange = errors.New("problem: invalid range")

	// ErrNeedRandSource indicates Generate was called with a nil rng.
	ErrNeedRandSource = errors.New("problem: rng is required")
)

// Range is an inclusive integer interval.
type Range struct {
	Min, Max int64
}

func (r Range) valid() bool { return r.Min >= 0 && r.Max >= r.Min }

func (r Range) draw(rng *rand.Rand) int64 {
	span := r.Max - r.Min // Min ≥ 0, cannot overflow
	if span == math.MaxInt64 {
		return rng.Int63()
	}

	return r.Min + rng.Int63n(span+1)
}

// GenerateConfig sizes a generated problem.
type GenerateConfig struct {
	Name     string
	Sources  int
	Sinks    int
	Capacity Range
	Cost     Range
}

// DefaultGenerateConfig returns a 1000×1000 problem with capacities in
// [1,100] and costs in [1,3000].
func DefaultGenerateConfig() GenerateConfig {
	return GenerateConfig{
		Name:     "generated",
		Sources:  1000,
		Sinks:    1000,
		Capacity: Range{Min: 1, Max: 100},
		Cost:     Range{Min: 1, Max: 3000},
	}
}

// Generate returns a complete bipartite problem: every source "<i>-src" has a
// cost row to every sink "<j>-snk".
func Generate(rng *rand.Rand, cfg GenerateConfig) (*Problem, error) {
	if rng == nil {
		return nil, ErrNeedRandSource
	}
	if cfg.Sources < 1 || cfg.Sinks < 1 {
		return nil, fmt.Errorf("%w: sources=%d, sinks=%d (each must be ≥ 1)",
			ErrTooFewNodes, cfg.Sources, cfg.Sinks)
	}
	if !cfg.Capacity.valid() {
		return nil, fmt.Errorf("%w: capacity [%d,%d]", ErrInvalidRange, cfg.Capacity.Min, cfg.Capacity.Max)
	}
	if !cfg.Cost.valid() {
		return nil, fmt.Errorf("%w: cost [%d,%d]", ErrInvalidRange, cfg.Cost.Min, cfg.Cost.Max)
	}

	src := make([]string, cfg.Sources)
	snk := make([]string, cfg.Sinks)
	p := &Problem{
		Name:    cfg.Name,
		Sources: make(map[string]int64, cfg.Sources),
		Sinks:   make(map[string]int64, cfg.Sinks),
		Costs:   make([]Cost, 0, cfg.Sources*cfg.Sinks),
	}
	for i := range src {
		src[i] = fmt.Sprintf("%d-src", i)
		p.Sources[src[i]] = cfg.Capacity.draw(rng)
	}
	for j := range snk {
		snk[j] = fmt.Sprintf("%d-snk", j)
		p.Sinks[snk[j]] = cfg.Capacity.draw(rng)
	}
	for _, s := range src {
		for _, t := range snk {
			p.Costs = append(p.Costs, Cost{From: s, To: t, Cost: cfg.Cost.draw(rng)})
		}
	}

	return p, nil
}
