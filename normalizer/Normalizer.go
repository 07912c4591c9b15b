// Package normalizer implements the state normalizer section of an
// experiment. A normalizer is polymorphic: its YAML form carries a
// type tag together with a parameter block whose schema depends on
// the type. Normalizers describe how observations are rescaled
// before they reach the network; the section is optional and
// defaults to no normalization.
package normalizer

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"sort"

	"gopkg.in/yaml.v3"
)

var errUnknownType = errors.New("unknown state normalizer type")

// IsUnknownType returns whether or not an error reports a state
// normalizer type that no Config has been registered for.
func IsUnknownType(err error) bool {
	return errors.Is(err, errUnknownType)
}

// Type describes the different types of state normalizers that are
// available
type Type string

// Available normalizer types
const (
	None  Type = "none"
	RMS   Type = "rms"
	Scale Type = "scale"
	Image Type = "image"
)

// Config describes the parameters of a single normalizer type
type Config interface {
	// Type returns the type of normalizer the Config describes
	Type() Type

	// ApplyDefaults fills unset parameters with their default values
	ApplyDefaults()

	// Validate checks the parameters for consistency
	Validate() error

	// Stateful returns whether the normalizer accumulates running
	// statistics that belong in agent checkpoints
	Stateful() bool
}

// registeredTypes maps normalizer types to the concrete types of
// their Configs for deserialization
var registeredTypes = map[Type]reflect.Type{
	None:  reflect.TypeOf(NoneConfig{}),
	RMS:   reflect.TypeOf(RMSConfig{}),
	Scale: reflect.TypeOf(ScaleConfig{}),
	Image: reflect.TypeOf(ImageConfig{}),
}

// Types returns all available normalizer types in lexicographic order
func Types() []Type {
	types := make([]Type, 0, len(registeredTypes))
	for t := range registeredTypes {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// Normalizer wraps a normalizer Config together with its Type so that
// normalizers can be YAML marshalled and unmarshalled without knowing
// the concrete parameter schema in advance.
type Normalizer struct {
	Type
	Config
}

// newNormalizer returns a new Normalizer
func newNormalizer(c Config) (*Normalizer, error) {
	return &Normalizer{Type: c.Type(), Config: c}, nil
}

// Default returns the normalizer used when an experiment omits the
// state normalizer section
func Default() *Normalizer {
	n, _ := NewNone()
	return n
}

// String implements the fmt.Stringer interface
func (n *Normalizer) String() string {
	return fmt.Sprintf("{%v Normalizer: %v}", n.Type, n.Config)
}

// UnmarshalYAML implements the yaml.Unmarshaler interface
func (n *Normalizer) UnmarshalYAML(value *yaml.Node) error {
	config, typeName, err := unmarshalConfig(value)
	if err != nil {
		return err
	}

	n.Type = typeName
	n.Config = config
	return nil
}

// MarshalYAML implements the yaml.Marshaler interface
func (n Normalizer) MarshalYAML() (interface{}, error) {
	return struct {
		Type       Type   `yaml:"type"`
		Parameters Config `yaml:"parameters"`
	}{n.Type, n.Config}, nil
}

// unmarshalConfig uses reflection to unmarshal a normalizer Config
// into its concrete registered type. Both the Config and its Type are
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
		return nil, "", fmt.Errorf("state normalizer is missing a type")
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
