package experiment

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samuelfneumann/expspec/agent"
)

// suiteDocument declares three experiments in deliberately
// non-alphabetical order
const suiteDocument string = `
zulu_dqn:
  agent_type: dqn
  env_id: CartPole-v1
  common:
    discount_factor: 0.99
    batch_size: 32
    max_steps: 10000
    target_update_frequency: 100
  specific:
    learning_rate: 0.001
  exploration_strategy:
    type: linear
  memory:
    capacity: 10000
  body:
    input:
      primary: 4
    layers:
      - layer_type: linear
        out_dim: 32
        activation: relu

alpha_categorical:
  agent_type: categorical_dqn
  env_id: CartPole-v1
  common:
    discount_factor: 0.99
    batch_size: 64
    max_steps: 100000
    target_update_frequency: 500
  specific:
    learning_rate: 0.0001
    v_limit: [-100.0, 100.0]
  exploration_strategy:
    type: linear
    parameters:
      end_value: 0.05
  memory:
    capacity: 50000
  body:
    input:
      primary: 4
    layers:
      - layer_type: linear
        out_dim: 128
        activation: relu
      - layer_type: linear
        out_dim: 128
        activation: relu

mike_sac:
  agent_type: sac
  env_id: Pendulum-v1
  common:
    discount_factor: 0.99
    batch_size: 64
    max_steps: 100000
    use_soft_update: true
    polyak_factor: 0.005
  specific:
    pi_learning_rate: 0.0003
    qv_learning_rate: 0.0003
    alpha_learning_rate: 0.0003
  memory:
    capacity: 100000
  body:
    input:
      primary: 3
    layers:
      - layer_type: linear
        out_dim: 256
        activation: relu
`

// writeFixture writes an experiment file into a temporary directory
// and returns its path
func writeFixture(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "experiments.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("could not write fixture: %v", err)
	}
	return path
}

func TestLoadPreservesOrder(t *testing.T) {
	suite, err := Load(writeFixture(t, suiteDocument))
	if err != nil {
		t.Fatalf("could not load suite: %v", err)
	}

	want := []string{"zulu_dqn", "alpha_categorical", "mike_sac"}
	names := suite.Names()
	if len(names) != len(want) {
		t.Fatalf("wrong number of experiments \n\twant(%v) \n\thave(%v)",
			len(want), len(names))
	}
	for i, name := range want {
		if names[i] != name {
			t.Errorf("wrong experiment at %d \n\twant(%v) \n\thave(%v)", i,
				name, names[i])
		}
	}
}

func TestLoadSetsNames(t *testing.T) {
	suite, err := Load(writeFixture(t, suiteDocument))
	if err != nil {
		t.Fatalf("could not load suite: %v", err)
	}

	e, found := suite.Get("mike_sac")
	if !found {
		t.Fatal("expected to find experiment mike_sac")
	}
	if e.Name != "mike_sac" {
		t.Errorf("wrong name \n\twant(%v) \n\thave(%v)", "mike_sac", e.Name)
	}

	if _, found := suite.Get("missing"); found {
		t.Error("expected lookup of a missing experiment to fail")
	}
}

func TestLoadValidatesByDefault(t *testing.T) {
	document := strings.Replace(suiteDocument, "capacity: 10000",
		"capacity: -1", 1)

	_, err := Load(writeFixture(t, document))
	if err == nil {
		t.Fatal("expected loading an invalid suite to fail")
	}
	if !strings.Contains(err.Error(), "zulu_dqn.memory.capacity") {
		t.Errorf("expected the error to carry the experiment name, got %q",
			err)
	}
}

func TestLoadSkipValidation(t *testing.T) {
	document := strings.Replace(suiteDocument, "capacity: 10000",
		"capacity: -1", 1)

	suite, err := LoadWithOptions(writeFixture(t, document),
		LoadOptions{SkipValidation: true})
	if err != nil {
		t.Fatalf("expected SkipValidation to load a broken suite, got %v",
			err)
	}
	if suite.Len() != 3 {
		t.Errorf("wrong number of experiments \n\twant(%v) \n\thave(%v)", 3,
			suite.Len())
	}
}

func TestLoadStrictEscalatesWarnings(t *testing.T) {
	document := strings.Replace(suiteDocument, "env_id: Pendulum-v1",
		"env_id: Hopper-v4", 1)
	path := writeFixture(t, document)

	if _, err := Load(path); err != nil {
		t.Fatalf("expected warnings to pass a default load, got %v", err)
	}

	_, err := LoadWithOptions(path, LoadOptions{Strict: true})
	if err == nil {
		t.Fatal("expected a strict load to fail on warnings")
	}
	if !strings.Contains(err.Error(), "Hopper-v4") {
		t.Errorf("expected the error to name the environment, got %q", err)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	for _, content := range []string{"", "# experiments go here\n"} {
		suite, err := Load(writeFixture(t, content))
		if err != nil {
			t.Fatalf("expected an empty file to load, got %v", err)
		}
		if suite.Len() != 0 {
			t.Errorf("expected an empty suite, got %v experiments",
				suite.Len())
		}
	}
}

func TestLoadRejectsTrailingDocuments(t *testing.T) {
	document := suiteDocument + "\n---\nanother: {}\n"

	_, err := Load(writeFixture(t, document))
	if err == nil {
		t.Fatal("expected a multi-document file to fail")
	}
	if !strings.Contains(err.Error(), "single YAML document") {
		t.Errorf("expected a single-document error, got %q", err)
	}
}

func TestLoadRejectsDuplicateNames(t *testing.T) {
	document := suiteDocument + strings.Replace(suiteDocument,
		"alpha_categorical", "alpha_repeat", 1)

	_, err := Load(writeFixture(t, document))
	if err == nil {
		t.Fatal("expected duplicate experiment names to fail")
	}
	if !strings.Contains(err.Error(), "duplicate experiment") {
		t.Errorf("expected a duplicate name error, got %q", err)
	}
}

func TestLoadRejectsNonMappingDocument(t *testing.T) {
	_, err := Load(writeFixture(t, "- one\n- two\n"))
	if err == nil {
		t.Fatal("expected a sequence document to fail")
	}
	if !strings.Contains(err.Error(), "map experiment names") {
		t.Errorf("expected a mapping error, got %q", err)
	}
}

func TestLoadUnknownAgentTypeFailsEvenUnvalidated(t *testing.T) {
	document := strings.Replace(suiteDocument, "agent_type: dqn",
		"agent_type: reinforce", 1)

	_, err := LoadWithOptions(writeFixture(t, document),
		LoadOptions{SkipValidation: true})
	if err == nil {
		t.Fatal("expected an unknown agent type to fail at decode time")
	}
	if !strings.Contains(err.Error(), "unknown agent type") {
		t.Errorf("expected an unknown agent type error, got %q", err)
	}
	if !agent.IsUnknownType(err) {
		t.Errorf("the agent type error is not detectable through "+
			"agent.IsUnknownType: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected loading a missing file to fail")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	first, err := Load(writeFixture(t, suiteDocument))
	if err != nil {
		t.Fatalf("could not load suite: %v", err)
	}

	path := filepath.Join(t.TempDir(), "saved.yaml")
	if err := Save(path, first); err != nil {
		t.Fatalf("could not save suite: %v", err)
	}

	second, err := Load(path)
	if err != nil {
		t.Fatalf("could not reload saved suite: %v", err)
	}

	if second.Len() != first.Len() {
		t.Fatalf("wrong number of experiments \n\twant(%v) \n\thave(%v)",
			first.Len(), second.Len())
	}
	for i, name := range first.Names() {
		if second.Names()[i] != name {
			t.Errorf("wrong experiment at %d \n\twant(%v) \n\thave(%v)", i,
				name, second.Names()[i])
		}

		a, _ := first.Get(name)
		b, _ := second.Get(name)
		if !Equal(a, b) {
			t.Errorf("experiment %v changed across a save round trip:\n%v",
				name, Diff(a, b))
		}
	}
}

func TestSuiteAdd(t *testing.T) {
	suite := &Suite{}

	e := decodeExperiment(t, categoricalDocument)
	e.Name = "one"
	if err := suite.Add(e); err != nil {
		t.Fatalf("could not add experiment: %v", err)
	}
	if err := suite.Add(e); err == nil {
		t.Error("expected adding a duplicate name to fail")
	}

	unnamed := decodeExperiment(t, categoricalDocument)
	if err := suite.Add(unnamed); err == nil {
		t.Error("expected adding an unnamed experiment to fail")
	}

	if suite.Len() != 1 {
		t.Errorf("wrong suite length \n\twant(%v) \n\thave(%v)", 1,
			suite.Len())
	}
}

func BenchmarkLoadReaderSuite(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := LoadReader(strings.NewReader(suiteDocument)); err != nil {
			b.Error(err)
		}
	}
}
