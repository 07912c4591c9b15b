package exploration

import (
	"math"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

const tolerance float64 = 1.0e-12

func TestStrategyUnmarshalYAML(t *testing.T) {
	data := `
type: linear
parameters:
  start_value: 0.9
  end_value: 0.05
  annealing_steps: 5000
`
	var s Strategy
	if err := yaml.Unmarshal([]byte(data), &s); err != nil {
		t.Fatalf("could not unmarshal strategy: %v", err)
	}

	if s.Type != Linear {
		t.Errorf("incorrect type \n\twant(%v) \n\thave(%v)", Linear, s.Type)
	}
	config, ok := s.Config.(*LinearConfig)
	if !ok {
		t.Fatalf("incorrect config type %T", s.Config)
	}
	if config.StartValue != 0.9 || config.EndValue != 0.05 {
		t.Errorf("incorrect endpoints \n\twant(%v, %v) \n\thave(%v, %v)",
			0.9, 0.05, config.StartValue, config.EndValue)
	}
	if config.AnnealingSteps != 5000 {
		t.Errorf("incorrect annealing steps \n\twant(%v) \n\thave(%v)",
			5000, config.AnnealingSteps)
	}
}

func TestStrategyUnmarshalDefaults(t *testing.T) {
	data := `
type: ou
parameters:
  sigma: 0.3
`
	var s Strategy
	if err := yaml.Unmarshal([]byte(data), &s); err != nil {
		t.Fatalf("could not unmarshal strategy: %v", err)
	}

	config := s.Config.(*OUConfig)
	if config.Sigma != 0.3 {
		t.Errorf("explicit sigma lost \n\twant(%v) \n\thave(%v)", 0.3,
			config.Sigma)
	}
	if config.Theta != DefaultTheta {
		t.Errorf("theta not defaulted \n\twant(%v) \n\thave(%v)",
			DefaultTheta, config.Theta)
	}
	if config.Dt != DefaultDt {
		t.Errorf("dt not defaulted \n\twant(%v) \n\thave(%v)", DefaultDt,
			config.Dt)
	}
	if config.AnnealingSteps != DefaultAnnealingSteps {
		t.Errorf("annealing steps not defaulted \n\twant(%v) \n\thave(%v)",
			DefaultAnnealingSteps, config.AnnealingSteps)
	}
}

func TestStrategyUnmarshalNoParameters(t *testing.T) {
	var s Strategy
	if err := yaml.Unmarshal([]byte("type: gaussian"), &s); err != nil {
		t.Fatalf("could not unmarshal strategy: %v", err)
	}

	config := s.Config.(*GaussianConfig)
	if config.Sigma != DefaultSigma {
		t.Errorf("sigma not defaulted \n\twant(%v) \n\thave(%v)",
			DefaultSigma, config.Sigma)
	}
}

func TestStrategyUnmarshalUnknownType(t *testing.T) {
	var s Strategy
	err := yaml.Unmarshal([]byte("type: boltzmann"), &s)
	if err == nil {
		t.Fatal("expected error for unknown strategy type")
	}
	if !strings.Contains(err.Error(), "boltzmann") {
		t.Errorf("error does not name the offending type: %v", err)
	}
	if !IsUnknownType(err) {
		t.Errorf("IsUnknownType does not report the error: %v", err)
	}
}

func TestStrategyUnmarshalUnknownParameter(t *testing.T) {
	data := `
type: linear
parameters:
  start_value: 1.0
  sigma: 0.2
`
	var s Strategy
	if err := yaml.Unmarshal([]byte(data), &s); err == nil {
		t.Fatal("expected error for unknown parameter key")
	}
}

func TestStrategyUnmarshalMissingType(t *testing.T) {
	var s Strategy
	if err := yaml.Unmarshal([]byte("parameters: {}"), &s); err == nil {
		t.Fatal("expected error for missing strategy type")
	}
}

func TestStrategyRoundTrip(t *testing.T) {
	strategy, err := NewOU(0.0, 0.25, 0.01, 200000, 0.15, 0.01)
	if err != nil {
		t.Fatalf("could not create strategy: %v", err)
	}

	data, err := yaml.Marshal(strategy)
	if err != nil {
		t.Fatalf("could not marshal strategy: %v", err)
	}

	var back Strategy
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("could not unmarshal strategy: %v", err)
	}

	if back.Type != OU {
		t.Errorf("incorrect type \n\twant(%v) \n\thave(%v)", OU, back.Type)
	}
	want := strategy.Config.(*OUConfig)
	have := back.Config.(*OUConfig)
	if *want != *have {
		t.Errorf("round trip changed config \n\twant(%v) \n\thave(%v)",
			*want, *have)
	}
}

func TestLinearValue(t *testing.T) {
	config := &LinearConfig{
		StartValue:     1.0,
		EndValue:       0.1,
		AnnealingSteps: 1000,
	}

	tests := []struct {
		step int
		want float64
	}{
		{0, 1.0},
		{250, 0.775},
		{500, 0.55},
		{1000, 0.1},
		{5000, 0.1},
		{-3, 1.0},
	}
	for _, test := range tests {
		have := config.Value(test.step)
		if math.Abs(have-test.want) > tolerance {
			t.Errorf("incorrect value at step %v \n\twant(%v) \n\thave(%v)",
				test.step, test.want, have)
		}
	}
}

func TestExponentialValue(t *testing.T) {
	config := &ExponentialConfig{
		StartValue:  1.0,
		EndValue:    0.125,
		DecayFactor: 0.5,
	}

	tests := []struct {
		step int
		want float64
	}{
		{0, 1.0},
		{1, 0.5},
		{2, 0.25},
		{3, 0.125},
		{10, 0.125},
	}
	for _, test := range tests {
		have := config.Value(test.step)
		if math.Abs(have-test.want) > tolerance {
			t.Errorf("incorrect value at step %v \n\twant(%v) \n\thave(%v)",
				test.step, test.want, have)
		}
	}
}

func TestConstantValue(t *testing.T) {
	config := &ConstantConfig{Fixed: 0.05}
	for _, step := range []int{0, 1, 1000000} {
		if have := config.Value(step); have != 0.05 {
			t.Errorf("incorrect value at step %v \n\twant(%v) \n\thave(%v)",
				step, 0.05, have)
		}
	}
}

func TestScheduleValidate(t *testing.T) {
	tests := []struct {
		name   string
		config Config
	}{
		{
			"end above start",
			&LinearConfig{StartValue: 0.1, EndValue: 0.5,
				AnnealingSteps: 100},
		},
		{
			"start above one",
			&LinearConfig{StartValue: 1.5, EndValue: 0.1,
				AnnealingSteps: 100},
		},
		{
			"negative end",
			&LinearConfig{StartValue: 1.0, EndValue: -0.1,
				AnnealingSteps: 100},
		},
		{
			"nonpositive annealing steps",
			&LinearConfig{StartValue: 1.0, EndValue: 0.1},
		},
		{
			"zero decay factor",
			&ExponentialConfig{StartValue: 1.0, EndValue: 0.1},
		},
		{
			"decay factor above one",
			&ExponentialConfig{StartValue: 1.0, EndValue: 0.1,
				DecayFactor: 1.5},
		},
		{
			"epsilon above one",
			&ConstantConfig{Fixed: 2.0},
		},
	}
	for _, test := range tests {
		if err := test.config.Validate(); err == nil {
			t.Errorf("expected validation error for %v", test.name)
		}
	}
}

func TestNoiseValidate(t *testing.T) {
	tests := []struct {
		name   string
		config Config
	}{
		{
			"nonpositive sigma",
			&GaussianConfig{Mean: 0.0, Sigma: 0.0},
		},
		{
			"sigma min above sigma",
			&AdaptiveGaussianConfig{Sigma: 0.1, SigmaMin: 0.2,
				AnnealingSteps: 100},
		},
		{
			"nonpositive theta",
			&OUConfig{Sigma: 0.2, AnnealingSteps: 100, Dt: 0.01},
		},
		{
			"nonpositive dt",
			&OUConfig{Sigma: 0.2, AnnealingSteps: 100, Theta: 0.15},
		},
		{
			"non-finite mean",
			&GaussianConfig{Mean: math.Inf(1), Sigma: 0.2},
		},
	}
	for _, test := range tests {
		if err := test.config.Validate(); err == nil {
			t.Errorf("expected validation error for %v", test.name)
		}
	}
}

func TestNoiseValueAnneals(t *testing.T) {
	config := &OUConfig{
		Sigma:          0.2,
		SigmaMin:       0.02,
		AnnealingSteps: 1000,
		Theta:          0.15,
		Dt:             0.01,
	}

	if have := config.Value(0); math.Abs(have-0.2) > tolerance {
		t.Errorf("incorrect initial sigma \n\twant(%v) \n\thave(%v)", 0.2,
			have)
	}
	if have := config.Value(500); math.Abs(have-0.11) > tolerance {
		t.Errorf("incorrect midpoint sigma \n\twant(%v) \n\thave(%v)", 0.11,
			have)
	}
	if have := config.Value(10000); math.Abs(have-0.02) > tolerance {
		t.Errorf("incorrect final sigma \n\twant(%v) \n\thave(%v)", 0.02,
			have)
	}
}

func TestSamplerDeterminism(t *testing.T) {
	configs := []NoiseSampler{
		&GaussianConfig{Mean: 0.0, Sigma: 0.2},
		&AdaptiveGaussianConfig{Sigma: 0.2, SigmaMin: 0.0,
			AnnealingSteps: 1000000},
		&OUConfig{Sigma: 0.2, AnnealingSteps: 1000000, Theta: 0.15,
			Dt: 0.01},
	}

	for _, config := range configs {
		first := config.Sampler(0, 42)
		second := config.Sampler(0, 42)
		for i := 0; i < 10; i++ {
			want := first()
			have := second()
			if want != have {
				t.Errorf("%T: equal seeds disagree at draw %v "+
					"\n\twant(%v) \n\thave(%v)", config, i, want, have)
			}
		}

		other := config.Sampler(0, 43)()
		if other == config.Sampler(0, 42)() {
			t.Errorf("%T: different seeds produced identical draws", config)
		}
	}
}

func TestNoiseSamplerCapability(t *testing.T) {
	for _, ty := range Types() {
		config, _, err := unmarshalConfig(typeNode(t, ty))
		if err != nil {
			t.Fatalf("could not construct %v config: %v", ty, err)
		}

		_, samples := config.(NoiseSampler)
		if samples != config.Continuous() {
			t.Errorf("%v: sampler capability %v but continuous %v", ty,
				samples, config.Continuous())
		}
	}
}

func typeNode(t *testing.T, ty Type) *yaml.Node {
	t.Helper()

	var node yaml.Node
	if err := yaml.Unmarshal([]byte("type: "+string(ty)), &node); err != nil {
		t.Fatalf("could not build node for %v: %v", ty, err)
	}
	return node.Content[0]
}

func TestPreview(t *testing.T) {
	strategy, err := NewLinear(1.0, 0.1, 1000)
	if err != nil {
		t.Fatalf("could not create strategy: %v", err)
	}

	points := Preview(strategy, 1000, 5)
	if len(points) != 5 {
		t.Fatalf("incorrect number of points \n\twant(%v) \n\thave(%v)", 5,
			len(points))
	}
	if points[0].Step != 0 || math.Abs(points[0].Value-1.0) > tolerance {
		t.Errorf("incorrect first point %+v", points[0])
	}
	if points[4].Step != 1000 || math.Abs(points[4].Value-0.1) > tolerance {
		t.Errorf("incorrect last point %+v", points[4])
	}

	if Preview(strategy, 1000, 1) != nil {
		t.Error("expected nil preview for a single point")
	}
}

func TestTypes(t *testing.T) {
	types := Types()
	if len(types) != 6 {
		t.Errorf("incorrect number of types \n\twant(%v) \n\thave(%v)", 6,
			len(types))
	}
	for i := 1; i < len(types); i++ {
		if types[i-1] >= types[i] {
			t.Errorf("types out of order: %v before %v", types[i-1],
				types[i])
		}
	}
}

func TestNewRejectsMismatchedType(t *testing.T) {
	if _, err := New(Linear, &GaussianConfig{Sigma: 0.2}); err == nil {
		t.Error("expected error for mismatched type and config")
	}
}

func BenchmarkOUSampler(b *testing.B) {
	strategy, err := NewOU(0.0, DefaultSigma, DefaultSigmaMin,
		DefaultAnnealingSteps, DefaultTheta, DefaultDt)
	if err != nil {
		b.Error(err)
	}
	sample := strategy.Config.(NoiseSampler).Sampler(0, 42)

	for i := 0; i < b.N; i++ {
		sample()
	}
}
