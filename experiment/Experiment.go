// Package experiment implements the experiment configuration
// document: loading, validating, comparing, and scaffolding the YAML
// files that describe reinforcement learning runs. An experiment
// bundles an agent type with its hyperparameters, an environment, a
// replay memory, an exploration strategy, a state normalizer, and a
// network body description.
package experiment

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/samuelfneumann/expspec/agent"
	"github.com/samuelfneumann/expspec/environment"
	"github.com/samuelfneumann/expspec/exploration"
	"github.com/samuelfneumann/expspec/memory"
	"github.com/samuelfneumann/expspec/network"
	"github.com/samuelfneumann/expspec/normalizer"
	"github.com/samuelfneumann/expspec/validate"
)

// Default common hyperparameters
const (
	DefaultUpdateFrequency int    = 1
	DefaultLogdir          string = "./out"
)

// Common holds the hyperparameters shared by every agent type
type Common struct {
	// Discount applied to future rewards
	DiscountFactor float64 `yaml:"discount_factor"`

	// Number of transitions sampled from memory per update
	BatchSize int `yaml:"batch_size"`

	// Total environment steps in the run
	MaxSteps int `yaml:"max_steps"`

	// Learn once per this many environment steps
	UpdateFrequency int `yaml:"update_frequency"`

	// Target network synchronization. With soft updates the target
	// tracks the online network through polyak averaging; otherwise
	// it is copied every TargetUpdateFrequency steps.
	UseSoftUpdate         bool     `yaml:"use_soft_update"`
	PolyakFactor          *float64 `yaml:"polyak_factor,omitempty"`
	TargetUpdateFrequency int      `yaml:"target_update_frequency,omitempty"`

	Seed   int64  `yaml:"seed"`
	Logdir string `yaml:"logdir"`
}

// ApplyDefaults fills unset hyperparameters with their default values
func (c *Common) ApplyDefaults() {
	c.UpdateFrequency = DefaultUpdateFrequency
	c.Logdir = DefaultLogdir
}

// Validate checks the hyperparameters for consistency
func (c Common) Validate() error {
	v := validate.New()
	v.UnitInterval("discount_factor", c.DiscountFactor)
	v.Positive("batch_size", c.BatchSize)
	v.Positive("max_steps", c.MaxSteps)
	v.Positive("update_frequency", c.UpdateFrequency)

	if c.UseSoftUpdate {
		if c.PolyakFactor == nil {
			v.AddError("polyak_factor",
				"required when use_soft_update is on", nil)
		} else if !(*c.PolyakFactor > 0 && *c.PolyakFactor <= 1) {
			v.AddError("polyak_factor", "must be in (0, 1]",
				*c.PolyakFactor)
		}
	} else if c.TargetUpdateFrequency <= 0 {
		v.AddError("target_update_frequency",
			"required when use_soft_update is off", c.TargetUpdateFrequency)
	}

	return v.Err()
}

// Experiment is a single named experiment configuration
type Experiment struct {
	// Name is the experiment's key within its file. It is set while
	// loading and is not part of the experiment body.
	Name string `yaml:"-"`

	AgentType agent.Type `yaml:"agent_type"`
	EnvID     string     `yaml:"env_id"`

	Common   Common       `yaml:"common"`
	Specific agent.Config `yaml:"-"`

	StateNormalizer *normalizer.Normalizer `yaml:"state_normalizer,omitempty"`
	Exploration     *exploration.Strategy  `yaml:"exploration_strategy,omitempty"`

	Memory memory.Config `yaml:"memory"`
	Body   network.Body  `yaml:"body"`
}

// experimentWire is the raw YAML form of an experiment. Sections
// whose decoding depends on defaults or on sibling fields are held as
// nodes and decoded in a second pass.
type experimentWire struct {
	AgentType       agent.Type             `yaml:"agent_type"`
	EnvID           string                 `yaml:"env_id"`
	Common          yaml.Node              `yaml:"common"`
	Specific        yaml.Node              `yaml:"specific"`
	StateNormalizer *normalizer.Normalizer `yaml:"state_normalizer"`
	Exploration     *exploration.Strategy  `yaml:"exploration_strategy"`
	Memory          yaml.Node              `yaml:"memory"`
	Body            network.Body           `yaml:"body"`
}

// UnmarshalYAML implements the yaml.Unmarshaler interface. Section
// defaults are applied before each section is strictly decoded, so
// explicit values always win and unknown keys are rejected. The
// specific section is decoded through the agent registry using the
// sibling agent_type.
func (e *Experiment) UnmarshalYAML(value *yaml.Node) error {
	var wire experimentWire
	if err := decodeStrict(value, &wire); err != nil {
		return err
	}
	if wire.AgentType == "" {
		return fmt.Errorf("experiment is missing an agent_type")
	}

	e.AgentType = wire.AgentType
	e.EnvID = wire.EnvID
	e.StateNormalizer = wire.StateNormalizer
	e.Exploration = wire.Exploration

	e.Common.ApplyDefaults()
	if err := decodeSection(&wire.Common, &e.Common); err != nil {
		return fmt.Errorf("invalid common section: %w", err)
	}

	e.Memory.ApplyDefaults()
	if err := decodeSection(&wire.Memory, &e.Memory); err != nil {
		return fmt.Errorf("invalid memory section: %w", err)
	}

	specific, err := agent.Decode(wire.AgentType, sectionNode(&wire.Specific))
	if err != nil {
		return err
	}
	e.Specific = specific

	e.Body = wire.Body
	e.Body.ApplyDefaults()

	return nil
}

// MarshalYAML implements the yaml.Marshaler interface, producing the
// canonical section order
func (e Experiment) MarshalYAML() (interface{}, error) {
	return struct {
		AgentType       agent.Type             `yaml:"agent_type"`
		EnvID           string                 `yaml:"env_id"`
		Common          Common                 `yaml:"common"`
		Specific        agent.Config           `yaml:"specific"`
		StateNormalizer *normalizer.Normalizer `yaml:"state_normalizer,omitempty"`
		Exploration     *exploration.Strategy  `yaml:"exploration_strategy,omitempty"`
		Memory          memory.Config          `yaml:"memory"`
		Body            network.Body           `yaml:"body"`
	}{
		AgentType:       e.AgentType,
		EnvID:           e.EnvID,
		Common:          e.Common,
		Specific:        e.Specific,
		StateNormalizer: e.StateNormalizer,
		Exploration:     e.Exploration,
		Memory:          e.Memory,
		Body:            e.Body,
	}, nil
}

// Normalizer returns the experiment's state normalizer, or the
// pass-through normalizer when the section was omitted
func (e *Experiment) Normalizer() *normalizer.Normalizer {
	if e.StateNormalizer == nil {
		return normalizer.Default()
	}
	return e.StateNormalizer
}

// EnvSpec returns the static specification of the experiment's
// environment, if the environment is in the catalog
func (e *Experiment) EnvSpec() (environment.Spec, bool) {
	return environment.Lookup(e.EnvID)
}

// Validate checks every section and the relations between sections.
// All failures are accumulated into a single validation error with
// full field paths.
func (e *Experiment) Validate() error {
	v := validate.New()

	if e.AgentType == "" {
		v.AddError("agent_type", "is required", nil)
	}
	v.NotEmpty("env_id", e.EnvID)

	v.Prefixed("common", e.Common.Validate())
	if e.Specific != nil {
		v.Prefixed("specific", e.Specific.Validate())
	}
	if e.StateNormalizer != nil && e.StateNormalizer.Config != nil {
		v.Prefixed("state_normalizer", e.StateNormalizer.Validate())
	}
	if e.Exploration != nil && e.Exploration.Config != nil {
		v.Prefixed("exploration_strategy", e.Exploration.Validate())
	}
	v.Prefixed("memory", e.Memory.Validate())
	v.Prefixed("body", e.Body.Validate())

	if e.Memory.Capacity > 0 && e.Common.BatchSize > e.Memory.Capacity {
		v.AddError("common.batch_size", "must not exceed memory.capacity",
			e.Common.BatchSize)
	}

	if e.Specific != nil {
		e.validateAgentCoherence(v)
	}

	return v.Err()
}

// validateAgentCoherence checks the relations between the agent type
// and the sections that depend on it
func (e *Experiment) validateAgentCoherence(v *validate.Validator) {
	continuous := e.Specific.ActionSpace() == environment.Continuous

	if e.Specific.RequiresExploration() && e.Exploration == nil {
		v.AddError("exploration_strategy",
			fmt.Sprintf("%v agents require an exploration strategy",
				e.Specific.Type()), nil)
	}
	if e.Exploration != nil && e.Exploration.Config != nil {
		if e.Exploration.Continuous() && !continuous {
			v.AddError("exploration_strategy.type",
				"action noise cannot drive a discrete-action agent",
				e.Exploration.Type)
		} else if !e.Exploration.Continuous() && continuous {
			v.AddError("exploration_strategy.type",
				"an epsilon schedule cannot perturb continuous actions",
				e.Exploration.Type)
		}
	}

	spec, known := e.EnvSpec()
	if !known {
		return
	}
	if e.Specific.ActionSpace() != spec.ActionCardinality {
		v.AddError("agent_type",
			fmt.Sprintf("%v agents need a %v action space but %v has a "+
				"%v one", e.Specific.Type(), e.Specific.ActionSpace(),
				e.EnvID, spec.ActionCardinality),
			e.AgentType)
	}
	if e.Body.Input.Primary != 0 &&
		e.Body.Input.Primary != spec.ObservationDim {
		v.AddError("body.input.primary",
			fmt.Sprintf("must match the %v observation dimension %v",
				e.EnvID, spec.ObservationDim),
			e.Body.Input.Primary)
	}
}

// Warnings returns non-fatal findings about the experiment: an
// env_id absent from the environment catalog, and an exploration
// strategy on an agent that ignores it
func (e *Experiment) Warnings() []string {
	var warnings []string
	if _, known := e.EnvSpec(); !known && e.EnvID != "" {
		warnings = append(warnings, fmt.Sprintf(
			"env_id %q is not in the environment catalog: "+
				"environment cross-checks skipped", e.EnvID))
	}
	if e.Specific != nil && !e.Specific.RequiresExploration() &&
		e.Exploration != nil {
		warnings = append(warnings, fmt.Sprintf(
			"%v agents ignore the exploration_strategy section",
			e.Specific.Type()))
	}
	return warnings
}

// sectionNode returns node unless it holds no content
func sectionNode(node *yaml.Node) *yaml.Node {
	if node.IsZero() || node.Tag == "!!null" {
		return nil
	}
	return node
}

// decodeSection strictly decodes a section node over out, leaving out
// untouched when the section was omitted
func decodeSection(node *yaml.Node, out interface{}) error {
	if sectionNode(node) == nil {
		return nil
	}
	return decodeStrict(node, out)
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
