package normalizer

import (
	"github.com/samuelfneumann/expspec/validate"
)

// Default running mean/std parameters
const (
	DefaultClip    float64 = 5.0
	DefaultEpsilon float64 = 1.0e-8
)

// RMSConfig implements a normalizer that standardizes observations
// with running mean and standard deviation estimates. Standardized
// values are clipped to [-Clip, Clip], and Epsilon guards the
// division when the running variance is near zero.
type RMSConfig struct {
	Clip    float64 `yaml:"clip"`
	Epsilon float64 `yaml:"epsilon"`
}

// NewRMS returns a new running mean/std state normalizer
func NewRMS(clip, epsilon float64) (*Normalizer, error) {
	config := RMSConfig{
		Clip:    clip,
		Epsilon: epsilon,
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return newNormalizer(&config)
}

// Type returns the type of normalizer the Config describes
func (r *RMSConfig) Type() Type {
	return RMS
}

// ApplyDefaults fills unset parameters with their default values
func (r *RMSConfig) ApplyDefaults() {
	r.Clip = DefaultClip
	r.Epsilon = DefaultEpsilon
}

// Validate checks the parameters for consistency
func (r *RMSConfig) Validate() error {
	v := validate.New()
	v.PositiveFloat("clip", r.Clip)
	v.PositiveFloat("epsilon", r.Epsilon)
	return v.Err()
}

// Stateful returns whether the normalizer accumulates running
// statistics
func (r *RMSConfig) Stateful() bool {
	return true
}
