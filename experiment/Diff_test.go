package experiment

import (
	"strings"
	"testing"
)

func TestDiffEqualExperiments(t *testing.T) {
	a := decodeExperiment(t, categoricalDocument)
	b := decodeExperiment(t, categoricalDocument)

	if !Equal(a, b) {
		t.Errorf("expected identical experiments to compare equal:\n%v",
			Diff(a, b))
	}
	if report := Diff(a, b); report != "" {
		t.Errorf("expected an empty diff, got:\n%v", report)
	}
}

func TestDiffIgnoresNames(t *testing.T) {
	a := decodeExperiment(t, categoricalDocument)
	b := decodeExperiment(t, categoricalDocument)
	a.Name = "baseline"
	b.Name = "candidate"

	if !Equal(a, b) {
		t.Errorf("expected renamed experiments to compare equal:\n%v",
			Diff(a, b))
	}
}

func TestDiffReportsChangedFields(t *testing.T) {
	a := decodeExperiment(t, categoricalDocument)
	b := decodeExperiment(t, categoricalDocument)
	b.Common.BatchSize = 128
	b.Memory.Capacity = 100000

	if Equal(a, b) {
		t.Fatal("expected differing experiments to compare unequal")
	}

	report := Diff(a, b)
	for _, field := range []string{"BatchSize", "Capacity"} {
		if !strings.Contains(report, field) {
			t.Errorf("expected the diff to mention %v, got:\n%v", field,
				report)
		}
	}
}

func TestDiffSpecificSection(t *testing.T) {
	a := decodeExperiment(t, categoricalDocument)
	b := decodeExperiment(t, strings.Replace(categoricalDocument,
		"support_dim: 51", "support_dim: 101", 1))

	if Equal(a, b) {
		t.Fatal("expected differing support dims to compare unequal")
	}
	if report := Diff(a, b); !strings.Contains(report, "SupportDim") {
		t.Errorf("expected the diff to mention SupportDim, got:\n%v", report)
	}
}
