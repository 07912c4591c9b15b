package dpg

import (
	"github.com/samuelfneumann/expspec/agent"
	"github.com/samuelfneumann/expspec/validate"
	"gonum.org/v1/gonum/spatial/r1"
)

func init() {
	agent.Register(agent.TD3, &TD3Config{})
}

// Default target policy smoothing parameters
const (
	DefaultTargetNoiseLimit float64 = 0.5
	DefaultTargetNoiseStd   float64 = 0.2
)

// TD3Config implements a configuration for a TD3 agent. TD3 extends
// DDPG with twin critics and target policy smoothing: during critic
// updates, target actions are perturbed with Gaussian noise of
// standard deviation TargetNoiseStd, clipped to the mirrored
// interval [-TargetNoiseLimit, TargetNoiseLimit].
type TD3Config struct {
	Config `yaml:",inline"`

	TargetNoiseLimit float64 `yaml:"target_noise_limit"`
	TargetNoiseStd   float64 `yaml:"target_noise_std"`
}

// Type returns the type of agent the Config describes
func (t *TD3Config) Type() agent.Type {
	return agent.TD3
}

// ApplyDefaults fills unset hyperparameters with their default values
func (t *TD3Config) ApplyDefaults() {
	t.Config.ApplyDefaults()
	t.TargetNoiseLimit = DefaultTargetNoiseLimit
	t.TargetNoiseStd = DefaultTargetNoiseStd
}

// Validate checks the hyperparameters for consistency
func (t *TD3Config) Validate() error {
	v := validate.New()
	v.Prefixed("", t.Config.Validate())
	v.PositiveFloat("target_noise_limit", t.TargetNoiseLimit)
	v.PositiveFloat("target_noise_std", t.TargetNoiseStd)
	return v.Err()
}

// TargetNoiseBounds returns the interval that target policy smoothing
// noise is clipped to
func (t *TD3Config) TargetNoiseBounds() r1.Interval {
	return r1.Interval{Min: -t.TargetNoiseLimit, Max: t.TargetNoiseLimit}
}
