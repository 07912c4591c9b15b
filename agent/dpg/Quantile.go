package dpg

import (
	"github.com/samuelfneumann/expspec/agent"
	"github.com/samuelfneumann/expspec/validate"
)

func init() {
	agent.Register(agent.QuantileDDPG, &QuantileConfig{})
}

// DefaultQuantiles is the default number of quantiles of the critic's
// value distribution
const DefaultQuantiles int = 100

// QuantileConfig implements a configuration for a quantile regression
// DDPG agent. The critic learns SupportDim quantiles of the action
// value distribution at fixed cumulative density midpoints.
type QuantileConfig struct {
	Config `yaml:",inline"`

	// Number of quantiles of the value distribution
	SupportDim int `yaml:"support_dim"`
}

// Type returns the type of agent the Config describes
func (q *QuantileConfig) Type() agent.Type {
	return agent.QuantileDDPG
}

// ApplyDefaults fills unset hyperparameters with their default values
func (q *QuantileConfig) ApplyDefaults() {
	q.Config.ApplyDefaults()
	q.SupportDim = DefaultQuantiles
}

// Validate checks the hyperparameters for consistency
func (q *QuantileConfig) Validate() error {
	v := validate.New()
	v.Prefixed("", q.Config.Validate())
	v.Positive("support_dim", q.SupportDim)
	return v.Err()
}

// Midpoints returns the cumulative density midpoints of the quantile
// distribution: (i + 0.5) / SupportDim for i = 0 .. SupportDim-1.
// Midpoints returns nil when SupportDim is invalid.
func (q *QuantileConfig) Midpoints() []float64 {
	if q.SupportDim < 1 {
		return nil
	}

	midpoints := make([]float64, q.SupportDim)
	for i := range midpoints {
		midpoints[i] = (float64(i) + 0.5) / float64(q.SupportDim)
	}
	return midpoints
}
