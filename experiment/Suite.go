package experiment

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/samuelfneumann/expspec/validate"
)

// Suite is the ordered collection of experiments declared in one
// file. Experiments keep their declaration order.
type Suite struct {
	experiments []*Experiment
	byName      map[string]*Experiment
}

// Add appends an experiment to the suite. Experiment names must be
// unique within a suite.
func (s *Suite) Add(e *Experiment) error {
	if e.Name == "" {
		return fmt.Errorf("add: experiment has no name")
	}
	if _, found := s.byName[e.Name]; found {
		return fmt.Errorf("add: duplicate experiment %q", e.Name)
	}

	if s.byName == nil {
		s.byName = make(map[string]*Experiment)
	}
	s.experiments = append(s.experiments, e)
	s.byName[e.Name] = e
	return nil
}

// Len returns the number of experiments in the suite
func (s *Suite) Len() int {
	return len(s.experiments)
}

// Get returns the named experiment
func (s *Suite) Get(name string) (*Experiment, bool) {
	e, found := s.byName[name]
	return e, found
}

// Names returns the experiment names in declaration order
func (s *Suite) Names() []string {
	names := make([]string, len(s.experiments))
	for i, e := range s.experiments {
		names[i] = e.Name
	}
	return names
}

// Experiments returns the experiments in declaration order
func (s *Suite) Experiments() []*Experiment {
	return s.experiments
}

// Validate checks every experiment in the suite, accumulating all
// failures with experiment names prefixed onto field paths
func (s *Suite) Validate() error {
	v := validate.New()
	for _, e := range s.experiments {
		v.Prefixed(e.Name, e.Validate())
	}
	return v.Err()
}

// UnmarshalYAML implements the yaml.Unmarshaler interface. The
// document must be a mapping of experiment names to experiment
// bodies; declaration order is preserved.
func (s *Suite) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("an experiment file must map experiment names " +
			"to experiments")
	}

	s.experiments = nil
	s.byName = make(map[string]*Experiment)

	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode := value.Content[i]
		bodyNode := value.Content[i+1]

		var name string
		if err := keyNode.Decode(&name); err != nil {
			return fmt.Errorf("invalid experiment name: %w", err)
		}
		if _, found := s.byName[name]; found {
			return fmt.Errorf("duplicate experiment %q", name)
		}

		e := &Experiment{}
		if err := bodyNode.Decode(e); err != nil {
			return fmt.Errorf("experiment %q: %w", name, err)
		}
		e.Name = name

		s.experiments = append(s.experiments, e)
		s.byName[name] = e
	}

	return nil
}

// MarshalYAML implements the yaml.Marshaler interface, keeping the
// suite's declaration order
func (s Suite) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range s.experiments {
		var key yaml.Node
		key.SetString(e.Name)

		var body yaml.Node
		if err := body.Encode(e); err != nil {
			return nil, fmt.Errorf("experiment %q: %w", e.Name, err)
		}

		node.Content = append(node.Content, &key, &body)
	}
	return node, nil
}
