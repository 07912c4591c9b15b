package exploration

import (
	"math"

	"github.com/samuelfneumann/expspec/validate"
)

// DefaultDecayFactor is the default multiplicative epsilon decay
// applied on each environment step
const DefaultDecayFactor float64 = 0.995

// ExponentialConfig implements a multiplicatively decayed epsilon
// schedule for epsilon-greedy action selection. On each environment
// step the epsilon value is multiplied by DecayFactor until it
// reaches EndValue, where it stays.
type ExponentialConfig struct {
	StartValue  float64 `yaml:"start_value"`
	EndValue    float64 `yaml:"end_value"`
	DecayFactor float64 `yaml:"decay_factor"`
}

// NewExponential returns a new multiplicatively decayed epsilon
// schedule
func NewExponential(start, end, decay float64) (*Strategy, error) {
	config := &ExponentialConfig{
		StartValue:  start,
		EndValue:    end,
		DecayFactor: decay,
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return New(Exponential, config)
}

// ValidType returns whether the argument type can be described by
// this Config
func (e *ExponentialConfig) ValidType(t Type) bool {
	return t == Exponential
}

// ApplyDefaults fills e with the default schedule parameters
func (e *ExponentialConfig) ApplyDefaults() {
	e.StartValue = DefaultStartValue
	e.EndValue = DefaultEndValue
	e.DecayFactor = DefaultDecayFactor
}

// Validate checks the schedule parameters for consistency
func (e *ExponentialConfig) Validate() error {
	v := validate.New()
	v.UnitInterval("start_value", e.StartValue)
	v.UnitInterval("end_value", e.EndValue)
	if e.EndValue > e.StartValue {
		v.AddError("end_value", "must not exceed start_value", e.EndValue)
	}
	if !(e.DecayFactor > 0 && e.DecayFactor <= 1) {
		v.AddError("decay_factor", "must be in (0, 1]", e.DecayFactor)
	}
	return v.Err()
}

// Value returns the epsilon after step environment steps
func (e *ExponentialConfig) Value(step int) float64 {
	if step < 0 {
		step = 0
	}
	value := e.StartValue * math.Pow(e.DecayFactor, float64(step))
	return math.Max(value, e.EndValue)
}

// Continuous returns whether the strategy perturbs continuous actions
func (e *ExponentialConfig) Continuous() bool {
	return false
}
