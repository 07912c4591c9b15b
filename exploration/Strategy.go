// Package exploration implements the exploration strategy section of
// an experiment. A strategy is polymorphic: its YAML form carries a
// type tag together with a parameter block whose schema depends on
// the type. Epsilon schedules drive epsilon-greedy action selection
// in discrete action spaces, while noise processes perturb the
// actions of deterministic policies in continuous action spaces.
package exploration

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"sort"

	"gopkg.in/yaml.v3"
)

var errUnknownType = errors.New("unknown exploration strategy type")

// IsUnknownType returns whether or not an error reports an
// exploration strategy type that no Config has been registered for.
func IsUnknownType(err error) bool {
	return errors.Is(err, errUnknownType)
}

// Type describes the different types of exploration strategies that
// are available
type Type string

// Available strategy types
const (
	Linear           Type = "linear"
	Exponential      Type = "exponential"
	Constant         Type = "constant"
	Gaussian         Type = "gaussian"
	AdaptiveGaussian Type = "adaptive_gaussian"
	OU               Type = "ou"
)

// Default noise process parameters
const (
	DefaultSigma          float64 = 0.2
	DefaultSigmaMin       float64 = 0.0
	DefaultAnnealingSteps int     = 1000000
	DefaultTheta          float64 = 0.15
	DefaultDt             float64 = 0.01
)

// Config describes the parameters of a single exploration strategy
// type and can evaluate the annealing the parameters describe.
type Config interface {
	// ValidType returns whether a specific strategy type can be
	// described by the Config
	ValidType(Type) bool

	// ApplyDefaults fills unset parameters with their default values
	ApplyDefaults()

	// Validate checks the parameters for consistency
	Validate() error

	// Value returns the exploration value after step environment
	// steps: the epsilon of an epsilon schedule, or the annealed
	// standard deviation of a noise process
	Value(step int) float64

	// Continuous returns whether the strategy perturbs continuous
	// actions rather than driving epsilon-greedy selection
	Continuous() bool
}

// NoiseSampler is implemented by strategies that generate additive
// action noise and can be sampled for previewing.
type NoiseSampler interface {
	// Sampler returns a deterministically seeded source of noise
	// values, annealed to the given step
	Sampler(step int, seed uint64) func() float64
}

// registeredTypes maps strategy types to the concrete types of their
// Configs for deserialization
var registeredTypes = map[Type]reflect.Type{
	Linear:           reflect.TypeOf(LinearConfig{}),
	Exponential:      reflect.TypeOf(ExponentialConfig{}),
	Constant:         reflect.TypeOf(ConstantConfig{}),
	Gaussian:         reflect.TypeOf(GaussianConfig{}),
	AdaptiveGaussian: reflect.TypeOf(AdaptiveGaussianConfig{}),
	OU:               reflect.TypeOf(OUConfig{}),
}

// Types returns all available strategy types in lexicographic order
func Types() []Type {
	types := make([]Type, 0, len(registeredTypes))
	for t := range registeredTypes {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// Strategy wraps a strategy Config together with its Type so that
// strategies can be YAML marshalled and unmarshalled without knowing
// the concrete parameter schema in advance.
type Strategy struct {
	Type
	Config
}

// New returns a new Strategy with the given type and configuration.
func New(t Type, c Config) (*Strategy, error) {
	if !c.ValidType(t) {
		return nil, fmt.Errorf("newStrategy: invalid strategy type %v for "+
			"configuration %T", t, c)
	}
	return &Strategy{Type: t, Config: c}, nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface
func (s *Strategy) UnmarshalYAML(value *yaml.Node) error {
	config, typeName, err := unmarshalConfig(value)
	if err != nil {
		return err
	}

	s.Type = typeName
	s.Config = config
	return nil
}

// MarshalYAML implements the yaml.Marshaler interface
func (s Strategy) MarshalYAML() (interface{}, error) {
	return struct {
		Type       Type   `yaml:"type"`
		Parameters Config `yaml:"parameters"`
	}{s.Type, s.Config}, nil
}

// unmarshalConfig uses reflection to unmarshal a strategy Config into
// its concrete registered type. Both the Config and its Type are
// returned. The parameter block is re-encoded and strictly decoded so
// that unknown parameter keys are rejected.
func unmarshalConfig(node *yaml.Node) (Config, Type, error) {
	var wire struct {
		Type       Type      `yaml:"type"`
		Parameters yaml.Node `yaml:"parameters"`
	}
	if err := decodeStrict(node, &wire); err != nil {
		return nil, "", err
	}
	if wire.Type == "" {
		return nil, "", fmt.Errorf("exploration strategy is missing a type")
	}

	ty, found := registeredTypes[wire.Type]
	if !found {
		return nil, "", fmt.Errorf("%w %q (available: %v)", errUnknownType,
			wire.Type, Types())
	}
	config := reflect.New(ty).Interface().(Config)
	config.ApplyDefaults()

	if !wire.Parameters.IsZero() && wire.Parameters.Tag != "!!null" {
		if err := decodeStrict(&wire.Parameters, config); err != nil {
			return nil, "", fmt.Errorf("invalid %v parameters: %w",
				wire.Type, err)
		}
	}

	return config, wire.Type, nil
}

// decodeStrict re-encodes node and decodes it into out, rejecting
// unknown fields
func decodeStrict(node *yaml.Node, out interface{}) error {
	raw, err := yaml.Marshal(node)
	if err != nil {
		return err
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	return dec.Decode(out)
}

// Point is a single sampled point of an annealing schedule
type Point struct {
	Step  int
	Value float64
}

// Preview samples the exploration value of s at count evenly spaced
// steps from 0 through horizon inclusive. Preview is intended for
// inspecting a schedule without running it.
func Preview(s *Strategy, horizon, count int) []Point {
	if count < 2 || horizon < 0 {
		return nil
	}

	points := make([]Point, count)
	for i := range points {
		step := i * horizon / (count - 1)
		points[i] = Point{Step: step, Value: s.Value(step)}
	}
	return points
}
