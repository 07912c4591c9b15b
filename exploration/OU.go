package exploration

import (
	"math"

	"github.com/samuelfneumann/expspec/utils/floatutils"
	"github.com/samuelfneumann/expspec/validate"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// OUConfig implements temporally correlated action noise drawn from
// an Ornstein-Uhlenbeck process with mean reversion rate Theta and
// discretization step Dt. The noise standard deviation is linearly
// annealed from Sigma to SigmaMin over AnnealingSteps environment
// steps.
type OUConfig struct {
	Mean           float64 `yaml:"mean"`
	Sigma          float64 `yaml:"sigma"`
	SigmaMin       float64 `yaml:"sigma_min"`
	AnnealingSteps int     `yaml:"annealing_steps"`
	Theta          float64 `yaml:"theta"`
	Dt             float64 `yaml:"dt"`
}

// NewOU returns a new Ornstein-Uhlenbeck action noise strategy
func NewOU(mean, sigma, sigmaMin float64, annealingSteps int, theta,
	dt float64) (*Strategy, error) {
	config := &OUConfig{
		Mean:           mean,
		Sigma:          sigma,
		SigmaMin:       sigmaMin,
		AnnealingSteps: annealingSteps,
		Theta:          theta,
		Dt:             dt,
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return New(OU, config)
}

// ValidType returns whether the argument type can be described by
// this Config
func (o *OUConfig) ValidType(t Type) bool {
	return t == OU
}

// ApplyDefaults fills o with the default process parameters
func (o *OUConfig) ApplyDefaults() {
	o.Mean = 0.0
	o.Sigma = DefaultSigma
	o.SigmaMin = DefaultSigmaMin
	o.AnnealingSteps = DefaultAnnealingSteps
	o.Theta = DefaultTheta
	o.Dt = DefaultDt
}

// Validate checks the process parameters for consistency
func (o *OUConfig) Validate() error {
	v := validate.New()
	v.Finite("mean", o.Mean)
	v.PositiveFloat("sigma", o.Sigma)
	v.NonNegativeFloat("sigma_min", o.SigmaMin)
	if o.SigmaMin > o.Sigma {
		v.AddError("sigma_min", "must not exceed sigma", o.SigmaMin)
	}
	v.Positive("annealing_steps", o.AnnealingSteps)
	v.PositiveFloat("theta", o.Theta)
	v.PositiveFloat("dt", o.Dt)
	return v.Err()
}

// Value returns the noise standard deviation after step environment
// steps
func (o *OUConfig) Value(step int) float64 {
	if o.AnnealingSteps <= 0 || step >= o.AnnealingSteps {
		return o.SigmaMin
	}
	t := float64(step) / float64(o.AnnealingSteps)
	return floatutils.Lerp(o.Sigma, o.SigmaMin, t)
}

// Continuous returns whether the strategy perturbs continuous actions
func (o *OUConfig) Continuous() bool {
	return true
}

// Sampler returns a deterministically seeded source of noise values,
// annealed to the given step. Successive values are temporally
// correlated through the process state, which starts at Mean.
func (o *OUConfig) Sampler(step int, seed uint64) func() float64 {
	src := rand.NewSource(seed)
	rng := distuv.Normal{Mu: 0.0, Sigma: 1.0, Src: src}

	sigma := o.Value(step)
	x := o.Mean
	return func() float64 {
		x += o.Theta*(o.Mean-x)*o.Dt + sigma*math.Sqrt(o.Dt)*rng.Rand()
		return x
	}
}
