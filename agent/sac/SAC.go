// Package sac implements the hyperparameter configuration for the
// soft actor-critic agent.
package sac

import (
	"github.com/samuelfneumann/expspec/agent"
	"github.com/samuelfneumann/expspec/environment"
	"github.com/samuelfneumann/expspec/validate"
)

func init() {
	agent.Register(agent.SAC, &Config{})
}

// DefaultRewardScaling is the default multiplier on environment
// rewards
const DefaultRewardScaling float64 = 1.0

// Config implements a configuration for a SAC agent
type Config struct {
	// Adam step sizes for the actor, the twin critics, and the
	// entropy temperature
	PiLearningRate    float64 `yaml:"pi_learning_rate"`
	QvLearningRate    float64 `yaml:"qv_learning_rate"`
	AlphaLearningRate float64 `yaml:"alpha_learning_rate"`

	// Gradient norm clipping thresholds. Zero disables clipping.
	PiGradNormValue float64 `yaml:"pi_grad_norm_value"`
	QvGradNormValue float64 `yaml:"qv_grad_norm_value"`

	// Multiplier on environment rewards. The initial entropy
	// temperature is its reciprocal.
	RewardScaling float64 `yaml:"reward_scaling"`

	// Whether the entropy temperature is tuned automatically toward
	// the target entropy
	AlphaTuning bool `yaml:"alpha_tuning"`
}

// Type returns the type of agent the Config describes
func (c *Config) Type() agent.Type {
	return agent.SAC
}

// ApplyDefaults fills unset hyperparameters with their default values
func (c *Config) ApplyDefaults() {
	c.RewardScaling = DefaultRewardScaling
	c.AlphaTuning = true
}

// Validate checks the hyperparameters for consistency
func (c *Config) Validate() error {
	v := validate.New()
	v.PositiveFloat("pi_learning_rate", c.PiLearningRate)
	v.PositiveFloat("qv_learning_rate", c.QvLearningRate)
	if c.AlphaTuning {
		v.PositiveFloat("alpha_learning_rate", c.AlphaLearningRate)
	} else {
		v.NonNegativeFloat("alpha_learning_rate", c.AlphaLearningRate)
	}
	v.NonNegativeFloat("pi_grad_norm_value", c.PiGradNormValue)
	v.NonNegativeFloat("qv_grad_norm_value", c.QvGradNormValue)
	v.PositiveFloat("reward_scaling", c.RewardScaling)
	return v.Err()
}

// ActionSpace returns the cardinality of the action space the
// described agent acts in
func (c *Config) ActionSpace() environment.Cardinality {
	return environment.Continuous
}

// RequiresExploration returns whether the described agent needs an
// exploration strategy section. SAC samples actions from its learned
// stochastic policy and needs none.
func (c *Config) RequiresExploration() bool {
	return false
}

// InitialAlpha returns the initial entropy temperature, the
// reciprocal of the reward scaling
func (c *Config) InitialAlpha() float64 {
	if c.RewardScaling <= 0 {
		return 0
	}
	return 1.0 / c.RewardScaling
}
