package dqn

import (
	"math"
	"testing"
)

const tolerance float64 = 1.0e-12

func validCategorical() *CategoricalConfig {
	config := &CategoricalConfig{}
	config.ApplyDefaults()
	config.LearningRate = 0.00025
	return config
}

func TestConfigValidate(t *testing.T) {
	config := &Config{LearningRate: 0.001}
	if err := config.Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}

	tests := []struct {
		name   string
		config Config
	}{
		{"missing learning rate", Config{}},
		{"negative learning rate", Config{LearningRate: -0.001}},
		{
			"negative grad norm",
			Config{LearningRate: 0.001, GradNormValue: -1.0},
		},
	}
	for _, test := range tests {
		if err := test.config.Validate(); err == nil {
			t.Errorf("expected validation error for %v", test.name)
		}
	}
}

func TestCategoricalValidate(t *testing.T) {
	if err := validCategorical().Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*CategoricalConfig)
	}{
		{
			"inverted value limits",
			func(c *CategoricalConfig) { c.VLimit = []float64{10, -10} },
		},
		{
			"equal value limits",
			func(c *CategoricalConfig) { c.VLimit = []float64{3, 3} },
		},
		{
			"single value limit",
			func(c *CategoricalConfig) { c.VLimit = []float64{-10} },
		},
		{
			"missing value limits",
			func(c *CategoricalConfig) { c.VLimit = nil },
		},
		{
			"single atom",
			func(c *CategoricalConfig) { c.SupportDim = 1 },
		},
		{
			"missing learning rate",
			func(c *CategoricalConfig) { c.LearningRate = 0 },
		},
	}
	for _, test := range tests {
		config := validCategorical()
		test.mutate(config)
		if err := config.Validate(); err == nil {
			t.Errorf("expected validation error for %v", test.name)
		}
	}
}

func TestCategoricalAtoms(t *testing.T) {
	config := validCategorical()

	atoms := config.Atoms()
	if len(atoms) != DefaultSupportDim {
		t.Fatalf("incorrect number of atoms \n\twant(%v) \n\thave(%v)",
			DefaultSupportDim, len(atoms))
	}
	if atoms[0] != DefaultVMin {
		t.Errorf("incorrect first atom \n\twant(%v) \n\thave(%v)",
			DefaultVMin, atoms[0])
	}
	if atoms[len(atoms)-1] != DefaultVMax {
		t.Errorf("incorrect last atom \n\twant(%v) \n\thave(%v)",
			DefaultVMax, atoms[len(atoms)-1])
	}

	deltaZ := config.DeltaZ()
	if math.Abs(deltaZ-0.4) > tolerance {
		t.Errorf("incorrect atom spacing \n\twant(%v) \n\thave(%v)", 0.4,
			deltaZ)
	}
	for i := 1; i < len(atoms); i++ {
		if math.Abs(atoms[i]-atoms[i-1]-deltaZ) > tolerance {
			t.Errorf("uneven atom spacing between %v and %v", atoms[i-1],
				atoms[i])
		}
	}
}

func TestCategoricalAtomsSmallSupport(t *testing.T) {
	config := validCategorical()
	config.SupportDim = 5
	config.VLimit = []float64{-2, 2}

	want := []float64{-2, -1, 0, 1, 2}
	atoms := config.Atoms()
	if len(atoms) != len(want) {
		t.Fatalf("incorrect number of atoms \n\twant(%v) \n\thave(%v)",
			len(want), len(atoms))
	}
	for i := range want {
		if math.Abs(atoms[i]-want[i]) > tolerance {
			t.Errorf("incorrect atom %v \n\twant(%v) \n\thave(%v)", i,
				want[i], atoms[i])
		}
	}
	if config.DeltaZ() != 1.0 {
		t.Errorf("incorrect atom spacing \n\twant(%v) \n\thave(%v)", 1.0,
			config.DeltaZ())
	}
}

func TestCategoricalAtomsInvalid(t *testing.T) {
	config := validCategorical()
	config.VLimit = nil

	if config.Atoms() != nil {
		t.Error("expected nil atoms for invalid value limits")
	}
	if config.DeltaZ() != 0 {
		t.Error("expected zero atom spacing for invalid value limits")
	}
}

func TestCategoricalSupport(t *testing.T) {
	config := validCategorical()

	support := config.Support()
	if support.Min != DefaultVMin || support.Max != DefaultVMax {
		t.Errorf("incorrect support \n\twant([%v, %v]) \n\thave([%v, %v])",
			DefaultVMin, DefaultVMax, support.Min, support.Max)
	}
}

func TestQuantileMidpoints(t *testing.T) {
	config := &QuantileConfig{SupportDim: 4}

	want := []float64{0.125, 0.375, 0.625, 0.875}
	midpoints := config.Midpoints()
	if len(midpoints) != len(want) {
		t.Fatalf("incorrect number of midpoints \n\twant(%v) \n\thave(%v)",
			len(want), len(midpoints))
	}
	for i := range want {
		if math.Abs(midpoints[i]-want[i]) > tolerance {
			t.Errorf("incorrect midpoint %v \n\twant(%v) \n\thave(%v)", i,
				want[i], midpoints[i])
		}
	}

	if (&QuantileConfig{}).Midpoints() != nil {
		t.Error("expected nil midpoints for zero quantiles")
	}
}

func TestQuantileDefaults(t *testing.T) {
	config := &QuantileConfig{}
	config.ApplyDefaults()

	if config.SupportDim != DefaultQuantiles {
		t.Errorf("incorrect default quantiles \n\twant(%v) \n\thave(%v)",
			DefaultQuantiles, config.SupportDim)
	}
}
