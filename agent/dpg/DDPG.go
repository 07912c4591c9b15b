// Package dpg implements hyperparameter configurations for the
// deterministic policy gradient family of agents acting in continuous
// action spaces.
package dpg

import (
	"github.com/samuelfneumann/expspec/agent"
	"github.com/samuelfneumann/expspec/environment"
	"github.com/samuelfneumann/expspec/validate"
	"gonum.org/v1/gonum/spatial/r1"
)

func init() {
	agent.Register(agent.DDPG, &Config{})
}

// Default DDPG hyperparameters
const (
	DefaultNoiseScaleFactor      float64 = 1.0
	DefaultL2Lambda              float64 = 0.01
	DefaultPolicyUpdateFrequency int     = 1
)

// Config implements a configuration for a DDPG agent
type Config struct {
	// Adam step sizes for the actor and critic networks
	PiLearningRate float64 `yaml:"pi_learning_rate"`
	QvLearningRate float64 `yaml:"qv_learning_rate"`

	// Bounds that actions are clamped to as [low, high]
	ActionLimit []float64 `yaml:"action_limit"`

	// Multiplier on exploration noise before it is added to actions
	NoiseScaleFactor float64 `yaml:"noise_scale_factor"`

	// L2 regularization weight on the critic
	L2Lambda float64 `yaml:"l2_lambda"`

	// Gradient norm clipping thresholds. Zero disables clipping.
	PiGradNormValue float64 `yaml:"pi_grad_norm_value"`
	QvGradNormValue float64 `yaml:"qv_grad_norm_value"`

	// Actor updates happen once per this many critic updates
	PolicyUpdateFrequency int `yaml:"policy_update_frequency"`
}

// Type returns the type of agent the Config describes
func (c *Config) Type() agent.Type {
	return agent.DDPG
}

// ApplyDefaults fills unset hyperparameters with their default values
func (c *Config) ApplyDefaults() {
	c.NoiseScaleFactor = DefaultNoiseScaleFactor
	c.L2Lambda = DefaultL2Lambda
	c.PolicyUpdateFrequency = DefaultPolicyUpdateFrequency
}

// Validate checks the hyperparameters for consistency
func (c *Config) Validate() error {
	v := validate.New()
	v.PositiveFloat("pi_learning_rate", c.PiLearningRate)
	v.PositiveFloat("qv_learning_rate", c.QvLearningRate)

	if len(c.ActionLimit) != 2 {
		v.AddError("action_limit", "must contain exactly two values "+
			"[low, high]", c.ActionLimit)
	} else {
		v.Ordered("action_limit", c.ActionLimit[0], c.ActionLimit[1])
	}

	v.PositiveFloat("noise_scale_factor", c.NoiseScaleFactor)
	v.NonNegativeFloat("l2_lambda", c.L2Lambda)
	v.NonNegativeFloat("pi_grad_norm_value", c.PiGradNormValue)
	v.NonNegativeFloat("qv_grad_norm_value", c.QvGradNormValue)
	v.Positive("policy_update_frequency", c.PolicyUpdateFrequency)

	return v.Err()
}

// ActionSpace returns the cardinality of the action space the
// described agent acts in
func (c *Config) ActionSpace() environment.Cardinality {
	return environment.Continuous
}

// RequiresExploration returns whether the described agent needs an
// exploration strategy section
func (c *Config) RequiresExploration() bool {
	return true
}

// ActionBounds returns the action limit as an interval. The zero
// interval is returned when the action limit is invalid.
func (c *Config) ActionBounds() r1.Interval {
	if len(c.ActionLimit) != 2 {
		return r1.Interval{}
	}
	return r1.Interval{Min: c.ActionLimit[0], Max: c.ActionLimit[1]}
}
