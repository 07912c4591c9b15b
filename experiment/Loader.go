package experiment

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/samuelfneumann/expspec/validate"
)

// LoadOptions adjusts how experiment files are loaded
type LoadOptions struct {
	// SkipValidation decodes the file without validating it, so that
	// broken files can still be inspected
	SkipValidation bool

	// Strict treats warnings, such as references to environments
	// outside the catalog, as errors
	Strict bool
}

// Load reads and validates the experiment file at path
func Load(path string) (*Suite, error) {
	return LoadWithOptions(path, LoadOptions{})
}

// LoadWithOptions reads the experiment file at path with opts
func LoadWithOptions(path string, opts LoadOptions) (*Suite, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	defer file.Close()

	suite, err := LoadReaderWithOptions(file, opts)
	if err != nil {
		return nil, fmt.Errorf("load %v: %w", path, err)
	}
	return suite, nil
}

// LoadReader reads and validates an experiment file from r
func LoadReader(r io.Reader) (*Suite, error) {
	return LoadReaderWithOptions(r, LoadOptions{})
}

// LoadReaderWithOptions reads an experiment file from r with opts
func LoadReaderWithOptions(r io.Reader, opts LoadOptions) (*Suite, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	suite := &Suite{}
	err := dec.Decode(suite)
	if errors.Is(err, io.EOF) {
		// An empty file holds no experiments
		return &Suite{}, nil
	}
	if err != nil {
		return nil, err
	}

	// Experiment files hold a single YAML document
	var trailing yaml.Node
	if err := dec.Decode(&trailing); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("experiment files must contain a single " +
			"YAML document")
	}

	v := validate.New()
	if !opts.SkipValidation {
		v.Prefixed("", suite.Validate())
	}
	if opts.Strict {
		for _, e := range suite.Experiments() {
			for _, warning := range e.Warnings() {
				v.AddError(e.Name, warning, nil)
			}
		}
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	return suite, nil
}

// Save writes the suite to path as YAML, creating or truncating the
// file
func Save(path string, s *Suite) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}
