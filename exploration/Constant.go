package exploration

import (
	"github.com/samuelfneumann/expspec/validate"
)

// DefaultEpsilon is the default fixed exploration rate
const DefaultEpsilon float64 = 0.1

// ConstantConfig implements a fixed epsilon for epsilon-greedy action
// selection. The epsilon value never anneals.
type ConstantConfig struct {
	Fixed float64 `yaml:"value"`
}

// NewConstant returns a new fixed epsilon schedule
func NewConstant(epsilon float64) (*Strategy, error) {
	config := &ConstantConfig{Fixed: epsilon}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return New(Constant, config)
}

// ValidType returns whether the argument type can be described by
// this Config
func (c *ConstantConfig) ValidType(t Type) bool {
	return t == Constant
}

// ApplyDefaults fills c with the default epsilon
func (c *ConstantConfig) ApplyDefaults() {
	c.Fixed = DefaultEpsilon
}

// Validate checks the epsilon for consistency
func (c *ConstantConfig) Validate() error {
	v := validate.New()
	v.UnitInterval("value", c.Fixed)
	return v.Err()
}

// Value returns the epsilon after step environment steps
func (c *ConstantConfig) Value(step int) float64 {
	return c.Fixed
}

// Continuous returns whether the strategy perturbs continuous actions
func (c *ConstantConfig) Continuous() bool {
	return false
}
