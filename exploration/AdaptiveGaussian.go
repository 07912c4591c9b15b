package exploration

import (
	"github.com/samuelfneumann/expspec/utils/floatutils"
	"github.com/samuelfneumann/expspec/validate"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// AdaptiveGaussianConfig implements uncorrelated Gaussian action
// noise whose standard deviation is linearly annealed from Sigma to
// SigmaMin over AnnealingSteps environment steps.
type AdaptiveGaussianConfig struct {
	Mean           float64 `yaml:"mean"`
	Sigma          float64 `yaml:"sigma"`
	SigmaMin       float64 `yaml:"sigma_min"`
	AnnealingSteps int     `yaml:"annealing_steps"`
}

// NewAdaptiveGaussian returns a new annealed Gaussian action noise
// strategy
func NewAdaptiveGaussian(mean, sigma, sigmaMin float64,
	annealingSteps int) (*Strategy, error) {
	config := &AdaptiveGaussianConfig{
		Mean:           mean,
		Sigma:          sigma,
		SigmaMin:       sigmaMin,
		AnnealingSteps: annealingSteps,
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return New(AdaptiveGaussian, config)
}

// ValidType returns whether the argument type can be described by
// this Config
func (a *AdaptiveGaussianConfig) ValidType(t Type) bool {
	return t == AdaptiveGaussian
}

// ApplyDefaults fills a with the default noise parameters
func (a *AdaptiveGaussianConfig) ApplyDefaults() {
	a.Mean = 0.0
	a.Sigma = DefaultSigma
	a.SigmaMin = DefaultSigmaMin
	a.AnnealingSteps = DefaultAnnealingSteps
}

// Validate checks the noise parameters for consistency
func (a *AdaptiveGaussianConfig) Validate() error {
	v := validate.New()
	v.Finite("mean", a.Mean)
	v.PositiveFloat("sigma", a.Sigma)
	v.NonNegativeFloat("sigma_min", a.SigmaMin)
	if a.SigmaMin > a.Sigma {
		v.AddError("sigma_min", "must not exceed sigma", a.SigmaMin)
	}
	v.Positive("annealing_steps", a.AnnealingSteps)
	return v.Err()
}

// Value returns the noise standard deviation after step environment
// steps
func (a *AdaptiveGaussianConfig) Value(step int) float64 {
	if a.AnnealingSteps <= 0 || step >= a.AnnealingSteps {
		return a.SigmaMin
	}
	t := float64(step) / float64(a.AnnealingSteps)
	return floatutils.Lerp(a.Sigma, a.SigmaMin, t)
}

// Continuous returns whether the strategy perturbs continuous actions
func (a *AdaptiveGaussianConfig) Continuous() bool {
	return true
}

// Sampler returns a deterministically seeded source of noise values,
// annealed to the given step
func (a *AdaptiveGaussianConfig) Sampler(step int, seed uint64) func() float64 {
	src := rand.NewSource(seed)
	rng := distuv.Normal{Mu: a.Mean, Sigma: a.Value(step), Src: src}
	return rng.Rand
}
