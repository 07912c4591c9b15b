package normalizer

import (
	"github.com/samuelfneumann/expspec/validate"
)

// Default target range
const (
	DefaultLow  float64 = 0.0
	DefaultHigh float64 = 1.0
)

// ScaleConfig implements a normalizer that min-max scales
// observations into the target range [Low, High] using the
// environment's observation bounds
type ScaleConfig struct {
	Low  float64 `yaml:"low"`
	High float64 `yaml:"high"`
}

// NewScale returns a new min-max scaling state normalizer
func NewScale(low, high float64) (*Normalizer, error) {
	config := ScaleConfig{
		Low:  low,
		High: high,
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return newNormalizer(&config)
}

// Type returns the type of normalizer the Config describes
func (s *ScaleConfig) Type() Type {
	return Scale
}

// ApplyDefaults fills unset parameters with their default values
func (s *ScaleConfig) ApplyDefaults() {
	s.Low = DefaultLow
	s.High = DefaultHigh
}

// Validate checks the parameters for consistency
func (s *ScaleConfig) Validate() error {
	v := validate.New()
	v.Ordered("low", s.Low, s.High)
	return v.Err()
}

// Stateful returns whether the normalizer accumulates running
// statistics
func (s *ScaleConfig) Stateful() bool {
	return false
}
