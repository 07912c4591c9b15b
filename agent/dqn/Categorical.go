package dqn

import (
	"github.com/samuelfneumann/expspec/agent"
	"github.com/samuelfneumann/expspec/validate"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r1"
)

func init() {
	agent.Register(agent.CategoricalDQN, &CategoricalConfig{})
}

// Default categorical value distribution parameters
const (
	DefaultSupportDim int     = 51
	DefaultVMin       float64 = -10.0
	DefaultVMax       float64 = 10.0
)

// CategoricalConfig implements a configuration for a categorical DQN
// (C51) agent. Instead of a scalar action value, the agent learns a
// categorical distribution over SupportDim atoms evenly spaced
// across the value interval VLimit.
type CategoricalConfig struct {
	Config `yaml:",inline"`

	// Number of atoms in the value distribution support
	SupportDim int `yaml:"support_dim"`

	// Bounds of the value distribution support as [v_min, v_max]
	VLimit []float64 `yaml:"v_limit"`
}

// Type returns the type of agent the Config describes
func (c *CategoricalConfig) Type() agent.Type {
	return agent.CategoricalDQN
}

// ApplyDefaults fills unset hyperparameters with their default values
func (c *CategoricalConfig) ApplyDefaults() {
	c.Config.ApplyDefaults()
	c.SupportDim = DefaultSupportDim
	c.VLimit = []float64{DefaultVMin, DefaultVMax}
}

// Validate checks the hyperparameters for consistency
func (c *CategoricalConfig) Validate() error {
	v := validate.New()
	v.Prefixed("", c.Config.Validate())

	if c.SupportDim < 2 {
		v.AddError("support_dim", "at least two atoms are required",
			c.SupportDim)
	}
	if len(c.VLimit) != 2 {
		v.AddError("v_limit", "must contain exactly two values "+
			"[v_min, v_max]", c.VLimit)
	} else {
		v.Ordered("v_limit", c.VLimit[0], c.VLimit[1])
	}

	return v.Err()
}

// Atoms returns the support grid of the value distribution:
// SupportDim values evenly spaced from VLimit[0] through VLimit[1]
// inclusive. Atoms returns nil when the distributional
// hyperparameters are invalid.
func (c *CategoricalConfig) Atoms() []float64 {
	if c.SupportDim < 2 || len(c.VLimit) != 2 {
		return nil
	}

	atoms := make([]float64, c.SupportDim)
	floats.Span(atoms, c.VLimit[0], c.VLimit[1])
	return atoms
}

// DeltaZ returns the spacing between consecutive atoms of the value
// distribution support
func (c *CategoricalConfig) DeltaZ() float64 {
	if c.SupportDim < 2 || len(c.VLimit) != 2 {
		return 0
	}
	return (c.VLimit[1] - c.VLimit[0]) / float64(c.SupportDim-1)
}

// Support returns the value distribution support as an interval
func (c *CategoricalConfig) Support() r1.Interval {
	if len(c.VLimit) != 2 {
		return r1.Interval{}
	}
	return r1.Interval{Min: c.VLimit[0], Max: c.VLimit[1]}
}
