package experiment

import (
	"fmt"
	"strings"

	"github.com/samuelfneumann/expspec/agent/dpg"
	"github.com/samuelfneumann/expspec/agent/dqn"
	"github.com/samuelfneumann/expspec/agent/sac"
)

// Describe renders a one-experiment summary: the resolved
// configuration alongside the quantities it implies, such as
// distributional support atoms, schedule endpoints, and network
// shapes
func Describe(e *Experiment) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "experiment %v\n", e.Name)

	describeAgent(b, e)
	describeEnvironment(b, e)
	describeRun(b, e)
	describeMemory(b, e)
	describeExploration(b, e)
	describeBody(b, e)

	return b.String()
}

func describeLine(b *strings.Builder, label, format string,
	args ...interface{}) {
	fmt.Fprintf(b, "  %-13v", label+":")
	fmt.Fprintf(b, format, args...)
	fmt.Fprintln(b)
}

func describeAgent(b *strings.Builder, e *Experiment) {
	if e.Specific == nil {
		describeLine(b, "agent", "%v", e.AgentType)
		return
	}
	describeLine(b, "agent", "%v (%v actions)", e.Specific.Type(),
		strings.ToLower(string(e.Specific.ActionSpace())))

	switch c := e.Specific.(type) {
	case *dqn.CategoricalConfig:
		describeLine(b, "support", "%v atoms in [%.6g, %.6g], delta_z %.6g",
			c.SupportDim, c.Support().Min, c.Support().Max, c.DeltaZ())
	case *dqn.QuantileConfig:
		describeQuantiles(b, c.Midpoints())
	case *dpg.QuantileConfig:
		describeQuantiles(b, c.Midpoints())
		describeActionLimit(b, &c.Config)
	case *dpg.TD3Config:
		bounds := c.TargetNoiseBounds()
		describeLine(b, "target noise",
			"std %.6g clipped to [%.6g, %.6g]", c.TargetNoiseStd,
			bounds.Min, bounds.Max)
		describeActionLimit(b, &c.Config)
	case *dpg.Config:
		describeActionLimit(b, c)
	case *sac.Config:
		mode := "tuned"
		if !c.AlphaTuning {
			mode = "fixed"
		}
		describeLine(b, "entropy", "initial alpha %.6g (%v)",
			c.InitialAlpha(), mode)
	}
}

func describeQuantiles(b *strings.Builder, midpoints []float64) {
	if len(midpoints) == 0 {
		return
	}
	describeLine(b, "quantiles", "%v midpoints in [%.6g, %.6g]",
		len(midpoints), midpoints[0], midpoints[len(midpoints)-1])
}

func describeActionLimit(b *strings.Builder, c *dpg.Config) {
	if len(c.ActionLimit) != 2 {
		return
	}
	bounds := c.ActionBounds()
	describeLine(b, "action limit", "[%.6g, %.6g]", bounds.Min, bounds.Max)
}

func describeEnvironment(b *strings.Builder, e *Experiment) {
	spec, known := e.EnvSpec()
	if !known {
		describeLine(b, "environment", "%v (not in catalog)", e.EnvID)
		return
	}

	if spec.DiscreteActions() {
		describeLine(b, "environment", "%v (%v observations, %v discrete "+
			"actions)", e.EnvID, spec.ObservationDim, spec.NumActions)
		return
	}
	describeLine(b, "environment", "%v (%v observations, %v continuous "+
		"actions in [%.6g, %.6g])", e.EnvID, spec.ObservationDim,
		spec.ActionDim, spec.ActionBounds.Min, spec.ActionBounds.Max)
}

func describeRun(b *strings.Builder, e *Experiment) {
	describeLine(b, "run", "%v steps, batch %v, discount %v, seed %v",
		e.Common.MaxSteps, e.Common.BatchSize, e.Common.DiscountFactor,
		e.Common.Seed)

	if e.Common.UseSoftUpdate {
		if e.Common.PolyakFactor != nil {
			describeLine(b, "targets", "polyak averaging with factor %v",
				*e.Common.PolyakFactor)
		}
		return
	}
	describeLine(b, "targets", "hard copy every %v steps",
		e.Common.TargetUpdateFrequency)
}

func describeMemory(b *strings.Builder, e *Experiment) {
	extra := ""
	if e.Memory.Combined {
		extra = ", combined"
	}
	describeLine(b, "memory", "%v transitions on %v%v", e.Memory.Capacity,
		e.Memory.Device, extra)
}

func describeExploration(b *strings.Builder, e *Experiment) {
	s := e.Exploration
	if s == nil || s.Config == nil {
		describeLine(b, "exploration", "none")
		return
	}

	label := "epsilon"
	if s.Continuous() {
		label = "sigma"
	}
	describeLine(b, "exploration", "%v %v %.6g -> %.6g over %v steps",
		s.Type, label, s.Value(0), s.Value(e.Common.MaxSteps),
		e.Common.MaxSteps)
}

func describeBody(b *strings.Builder, e *Experiment) {
	shapes, err := e.Body.ForwardShapes()
	if err != nil {
		describeLine(b, "body", "invalid (%v)", err)
		return
	}

	widths := []string{fmt.Sprintf("%v", e.Body.Input.Primary)}
	for _, shape := range shapes {
		widths = append(widths, fmt.Sprintf("%v", shape.Out))
	}

	count, err := e.Body.ParameterCount()
	if err != nil {
		describeLine(b, "body", "%v", strings.Join(widths, " -> "))
		return
	}
	describeLine(b, "body", "%v (%v parameters)",
		strings.Join(widths, " -> "), count)
}
