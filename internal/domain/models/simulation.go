package models

import (
	"errors"
	"fmt"

	"RegimeSim/pkg/validate"
)

// ErrInvalidConfig is returned for any configuration rejected before a run.
var ErrInvalidConfig = errors.New("invalid simulation config")

// HighVolatilityPeriod and HighVolatilityOffset place one flagged day in every
// block of 30: day indices 20, 50, 80, ...
const (
	HighVolatilityPeriod = 30
	HighVolatilityOffset = 20
)

// SimulationSpec carries raw parameters for NewSimulationConfig.
type SimulationSpec struct {
	Sims                 int `validate:"gt=0"`
	Steps                int `validate:"gte=0"`
	Signal               Normal
	SignalThreshold      float64
	NormalVolatility     Normal
	HighVolatility       Normal
	Buckets              BucketEdges
	PlayOnHighVolatility bool
}

// SimulationConfig is a validated, immutable set of run parameters.
// It is shared read-only by every trial of a run.
type SimulationConfig struct {
	sims                 int
	steps                int
	signal               Normal
	signalThreshold      float64
	normalVolatility     Normal
	highVolatility       Normal
	buckets              BucketEdges
	playOnHighVolatility bool
}

// NewSimulationConfig validates spec and freezes it.
func NewSimulationConfig(spec SimulationSpec) (SimulationConfig, error) {
	if err := validate.Struct(spec); err != nil {
		return SimulationConfig{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if spec.Buckets.Len() == 0 {
		return SimulationConfig{}, fmt.Errorf("%w: no histogram buckets", ErrInvalidConfig)
	}
	return SimulationConfig{
		sims:                 spec.Sims,
		steps:                spec.Steps,
		signal:               spec.Signal,
		signalThreshold:      spec.SignalThreshold,
		normalVolatility:     spec.NormalVolatility,
		highVolatility:       spec.HighVolatility,
		buckets:              spec.Buckets,
		playOnHighVolatility: spec.PlayOnHighVolatility,
	}, nil
}

func (c SimulationConfig) Sims() int                  { return c.sims }
func (c SimulationConfig) Steps() int                 { return c.steps }
func (c SimulationConfig) Signal() Normal             { return c.signal }
func (c SimulationConfig) SignalThreshold() float64   { return c.signalThreshold }
func (c SimulationConfig) NormalVolatility() Normal   { return c.normalVolatility }
func (c SimulationConfig) HighVolatility() Normal     { return c.highVolatility }
func (c SimulationConfig) Buckets() BucketEdges       { return c.buckets }
func (c SimulationConfig) PlayOnHighVolatility() bool { return c.playOnHighVolatility }

// WithPolicy returns a copy of c with the high-volatility policy set to play.
func (c SimulationConfig) WithPolicy(play bool) SimulationConfig {
	c.playOnHighVolatility = play
	return c
}
