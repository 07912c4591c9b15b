// Package environment provides static specifications of the
// environments that experiments may target. The specifications
// describe the observation and action layout of each environment so
// that the sections of an experiment referring to an environment can
// be checked against it, without ever simulating the environment.
package environment

import (
	"gonum.org/v1/gonum/spatial/r1"

	"github.com/samuelfneumann/expspec/utils/floatutils"
)

// Cardinality determines the cardinality of an action space (discrete
// or continuous)
type Cardinality string

const (
	Continuous Cardinality = "Continuous"
	Discrete   Cardinality = "Discrete"
)

// Spec describes the observation and action layout of a single
// environment.
//
// For environments with discrete actions, NumActions holds the number
// of available actions and ActionBounds is meaningless. For
// environments with continuous actions, ActionDim holds the number of
// action dimensions and ActionBounds bounds each dimension.
type Spec struct {
	ID                string        // Environment identifier, e.g. "CartPole-v1"
	ObservationDim    int           // Number of state observation features
	ObservationBounds []r1.Interval // Bounds on each observation feature
	ActionCardinality Cardinality
	NumActions        int         // Number of actions (discrete)
	ActionDim         int         // Number of action dimensions (continuous)
	ActionBounds      r1.Interval // Bounds on each action dimension (continuous)
	RewardRange       r1.Interval // Bounds on per-step rewards
	MaxEpisodeSteps   int         // Step limit before truncation, 0 for none
}

// DiscreteActions returns whether the environment has a discrete
// action space
func (s Spec) DiscreteActions() bool {
	return s.ActionCardinality == Discrete
}

// ClampAction clips value into the environment's action bounds. For
// environments with discrete actions the value is returned unchanged.
func (s Spec) ClampAction(value float64) float64 {
	if s.DiscreteActions() {
		return value
	}
	return floatutils.ClipInterval(value, s.ActionBounds)
}
