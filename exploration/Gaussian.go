package exploration

import (
	"github.com/samuelfneumann/expspec/validate"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// GaussianConfig implements uncorrelated Gaussian action noise for
// deterministic policies in continuous action spaces. The noise
// standard deviation is fixed; it never anneals.
type GaussianConfig struct {
	Mean  float64 `yaml:"mean"`
	Sigma float64 `yaml:"sigma"`
}

// NewGaussian returns a new Gaussian action noise strategy
func NewGaussian(mean, sigma float64) (*Strategy, error) {
	config := &GaussianConfig{Mean: mean, Sigma: sigma}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return New(Gaussian, config)
}

// ValidType returns whether the argument type can be described by
// this Config
func (g *GaussianConfig) ValidType(t Type) bool {
	return t == Gaussian
}

// ApplyDefaults fills g with the default noise parameters
func (g *GaussianConfig) ApplyDefaults() {
	g.Mean = 0.0
	g.Sigma = DefaultSigma
}

// Validate checks the noise parameters for consistency
func (g *GaussianConfig) Validate() error {
	v := validate.New()
	v.Finite("mean", g.Mean)
	v.PositiveFloat("sigma", g.Sigma)
	return v.Err()
}

// Value returns the noise standard deviation after step environment
// steps
func (g *GaussianConfig) Value(step int) float64 {
	return g.Sigma
}

// Continuous returns whether the strategy perturbs continuous actions
func (g *GaussianConfig) Continuous() bool {
	return true
}

// Sampler returns a deterministically seeded source of noise values
func (g *GaussianConfig) Sampler(step int, seed uint64) func() float64 {
	src := rand.NewSource(seed)
	rng := distuv.Normal{Mu: g.Mean, Sigma: g.Value(step), Src: src}
	return rng.Rand
}
