// Package dqn implements hyperparameter configurations for the DQN
// family of value-based agents acting in discrete action spaces.
package dqn

import (
	"github.com/samuelfneumann/expspec/agent"
	"github.com/samuelfneumann/expspec/environment"
	"github.com/samuelfneumann/expspec/validate"
)

func init() {
	// Register the Config type so that specific sections can be
	// decoded into it through agent.Decode
	agent.Register(agent.DQN, &Config{})
}

// Config implements a configuration for a DQN agent
type Config struct {
	// Adam step size for the action-value network
	LearningRate float64 `yaml:"learning_rate"`

	// Gradient norm clipping threshold. Zero disables clipping.
	GradNormValue float64 `yaml:"grad_norm_value"`

	UseDoubleQ bool `yaml:"use_double_q"`
	UseDueling bool `yaml:"use_dueling"`
}

// Type returns the type of agent the Config describes
func (c *Config) Type() agent.Type {
	return agent.DQN
}

// ApplyDefaults fills unset hyperparameters with their default
// values. Every DQN default is the zero value: the learning rate is
// required, gradient clipping is off, and both the double-Q and
// dueling extensions are disabled.
func (c *Config) ApplyDefaults() {}

// Validate checks the hyperparameters for consistency
func (c *Config) Validate() error {
	v := validate.New()
	v.PositiveFloat("learning_rate", c.LearningRate)
	v.NonNegativeFloat("grad_norm_value", c.GradNormValue)
	return v.Err()
}

// ActionSpace returns the cardinality of the action space the
// described agent acts in
func (c *Config) ActionSpace() environment.Cardinality {
	return environment.Discrete
}

// RequiresExploration returns whether the described agent needs an
// exploration strategy section
func (c *Config) RequiresExploration() bool {
	return true
}
