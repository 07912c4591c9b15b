package agent

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"sort"

	"gopkg.in/yaml.v3"
)

var errUnknownType = errors.New("unknown agent type")

// IsUnknownType returns whether or not an error reports an agent
// type that no Config has been registered for.
func IsUnknownType(err error) bool {
	return errors.Is(err, errUnknownType)
}

// Type represents a type of an agent. For example DQN, DDPG, SAC
type Type string

// Available agent types
const (
	// Value-based methods for discrete action spaces
	DQN            Type = "dqn"
	CategoricalDQN Type = "categorical_dqn"
	QuantileDQN    Type = "quantile_dqn"

	// Deterministic policy gradient methods for continuous action
	// spaces
	DDPG         Type = "ddpg"
	QuantileDDPG Type = "quantile_regression_ddpg"
	TD3          Type = "td3"

	// Stochastic policy methods for continuous action spaces
	SAC Type = "sac"
)

// Registered types with the package. Once a Type has been registered
// with this map, a specific section with that type can be decoded.
//
// No Types are registered with this package upon initialization.
// Each agent subpackage is in charge of registering its Types with
// the package separately to avoid circular imports.
var registeredTypes map[Type]reflect.Type

func init() {
	registeredTypes = make(map[Type]reflect.Type)
}

// Register registers an agent's Type with a concrete Config type so
// that specific sections of type agentType are decoded into the
// concrete type of config.
//
// Note that each package is required to register its own Configs with
// an agentType separately. This package registers no agentTypes with
// any Configs. This is to avoid circular imports.
func Register(agentType Type, config Config) {
	registeredTypes[agentType] = reflect.TypeOf(config).Elem()
}

// Registered returns all registered agent types in lexicographic
// order
func Registered() []Type {
	types := make([]Type, 0, len(registeredTypes))
	for t := range registeredTypes {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// Decode deserializes a specific section into the concrete Config
// registered for agentType. Defaults are applied first and the
// section is then strictly decoded over them, so unknown
// hyperparameter keys are rejected while omitted ones keep their
// default values. A nil or empty node yields a Config holding only
// defaults.
func Decode(agentType Type, node *yaml.Node) (Config, error) {
	ty, found := registeredTypes[agentType]
	if !found {
		return nil, fmt.Errorf("%w %q (available: %v)", errUnknownType,
			agentType, Registered())
	}

	config := reflect.New(ty).Interface().(Config)
	config.ApplyDefaults()

	if node != nil && !node.IsZero() && node.Tag != "!!null" {
		if err := decodeStrict(node, config); err != nil {
			return nil, fmt.Errorf("invalid %v configuration: %w",
				agentType, err)
		}
	}

	return config, nil
}

// DefaultConfig returns the Config registered for agentType with
// every hyperparameter at its default value
func DefaultConfig(agentType Type) (Config, error) {
	return Decode(agentType, nil)
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
