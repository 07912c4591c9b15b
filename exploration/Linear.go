package exploration

import (
	"github.com/samuelfneumann/expspec/utils/floatutils"
	"github.com/samuelfneumann/expspec/validate"
)

// Default epsilon schedule endpoints
const (
	DefaultStartValue float64 = 1.0
	DefaultEndValue   float64 = 0.1
)

// LinearConfig implements a linearly annealed epsilon schedule for
// epsilon-greedy action selection. The epsilon value is interpolated
// from StartValue to EndValue over AnnealingSteps environment steps
// and stays at EndValue afterwards.
type LinearConfig struct {
	StartValue     float64 `yaml:"start_value"`
	EndValue       float64 `yaml:"end_value"`
	AnnealingSteps int     `yaml:"annealing_steps"`
}

// NewLinear returns a new linearly annealed epsilon schedule
func NewLinear(start, end float64, annealingSteps int) (*Strategy, error) {
	config := &LinearConfig{
		StartValue:     start,
		EndValue:       end,
		AnnealingSteps: annealingSteps,
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return New(Linear, config)
}

// ValidType returns whether the argument type can be described by
// this Config
func (l *LinearConfig) ValidType(t Type) bool {
	return t == Linear
}

// ApplyDefaults fills l with the default schedule parameters
func (l *LinearConfig) ApplyDefaults() {
	l.StartValue = DefaultStartValue
	l.EndValue = DefaultEndValue
	l.AnnealingSteps = DefaultAnnealingSteps
}

// Validate checks the schedule parameters for consistency
func (l *LinearConfig) Validate() error {
	v := validate.New()
	v.UnitInterval("start_value", l.StartValue)
	v.UnitInterval("end_value", l.EndValue)
	if l.EndValue > l.StartValue {
		v.AddError("end_value", "must not exceed start_value", l.EndValue)
	}
	v.Positive("annealing_steps", l.AnnealingSteps)
	return v.Err()
}

// Value returns the epsilon after step environment steps
func (l *LinearConfig) Value(step int) float64 {
	if l.AnnealingSteps <= 0 || step >= l.AnnealingSteps {
		return l.EndValue
	}
	t := float64(step) / float64(l.AnnealingSteps)
	return floatutils.Lerp(l.StartValue, l.EndValue, t)
}

// Continuous returns whether the strategy perturbs continuous actions
func (l *LinearConfig) Continuous() bool {
	return false
}
