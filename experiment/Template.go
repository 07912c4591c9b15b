package experiment

import (
	"fmt"
	"strings"

	"github.com/samuelfneumann/expspec/agent"
	"github.com/samuelfneumann/expspec/agent/dpg"
	"github.com/samuelfneumann/expspec/agent/dqn"
	"github.com/samuelfneumann/expspec/agent/sac"
	"github.com/samuelfneumann/expspec/environment"
	"github.com/samuelfneumann/expspec/exploration"
	"github.com/samuelfneumann/expspec/network"
	"github.com/samuelfneumann/expspec/normalizer"
)

// Canonical hyperparameters used by generated experiments. They are
// starting points for hand tuning, not recommendations.
const (
	templateLearningRate        float64 = 0.0001
	templatePolicyLearningRate  float64 = 0.0001
	templateCriticLearningRate  float64 = 0.001
	templateEntropyLearningRate float64 = 0.0003

	templateDiscountFactor  float64 = 0.99
	templateBatchSize       int     = 64
	templateMaxSteps        int     = 100000
	templateTargetFrequency int     = 500
	templatePolyakFactor    float64 = 0.005
	templateCapacity        int     = 50000
	templateAnnealingSteps  int     = 10000
	templateHiddenDim       int     = 128
)

// Template returns a complete, valid experiment for the given agent
// type and environment. Every section is populated with canonical
// values so the result can be saved and edited, or used as-is.
func Template(agentType agent.Type, envID string) (*Experiment, error) {
	spec, known := environment.Lookup(envID)
	if !known {
		return nil, fmt.Errorf("template: unknown environment %q "+
			"(available: %v)", envID, environment.IDs())
	}

	config, err := agent.DefaultConfig(agentType)
	if err != nil {
		return nil, fmt.Errorf("template: %w", err)
	}
	fillLearningRates(config, spec)

	e := &Experiment{
		Name:      templateName(agentType, envID),
		AgentType: agentType,
		EnvID:     envID,
		Specific:  config,
	}

	e.Common.ApplyDefaults()
	e.Common.DiscountFactor = templateDiscountFactor
	e.Common.BatchSize = templateBatchSize
	e.Common.MaxSteps = templateMaxSteps
	if config.ActionSpace() == environment.Continuous {
		// Actor-critic agents track their targets with Polyak
		// averaging, value-based agents with periodic hard copies
		polyak := templatePolyakFactor
		e.Common.UseSoftUpdate = true
		e.Common.PolyakFactor = &polyak
	} else {
		e.Common.TargetUpdateFrequency = templateTargetFrequency
	}

	e.Memory.ApplyDefaults()
	e.Memory.Capacity = templateCapacity

	e.StateNormalizer = normalizer.Default()

	strategy, err := templateExploration(config)
	if err != nil {
		return nil, fmt.Errorf("template: %w", err)
	}
	e.Exploration = strategy

	e.Body = network.Body{
		Input: network.Input{Primary: spec.ObservationDim},
		Layers: []network.LayerConfig{
			{Type: network.Linear, OutDim: templateHiddenDim,
				Activation: network.ReLU},
			{Type: network.Linear, OutDim: templateHiddenDim,
				Activation: network.ReLU},
		},
	}
	e.Body.ApplyDefaults()

	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("template: %w", err)
	}
	return e, nil
}

// fillLearningRates sets the per-family learning rates that have no
// sensible zero default
func fillLearningRates(config agent.Config, spec environment.Spec) {
	switch c := config.(type) {
	case *dqn.Config:
		c.LearningRate = templateLearningRate
	case *dqn.CategoricalConfig:
		c.LearningRate = templateLearningRate
	case *dqn.QuantileConfig:
		c.LearningRate = templateLearningRate
	case *dpg.Config:
		fillActorCritic(c, spec)
	case *dpg.QuantileConfig:
		fillActorCritic(&c.Config, spec)
	case *dpg.TD3Config:
		fillActorCritic(&c.Config, spec)
	case *sac.Config:
		c.PiLearningRate = templateEntropyLearningRate
		c.QvLearningRate = templateEntropyLearningRate
		c.AlphaLearningRate = templateEntropyLearningRate
	}
}

// fillActorCritic sets the deterministic policy gradient rates and
// takes the action limit from the environment
func fillActorCritic(c *dpg.Config, spec environment.Spec) {
	c.PiLearningRate = templatePolicyLearningRate
	c.QvLearningRate = templateCriticLearningRate
	if spec.ActionCardinality == environment.Continuous {
		c.ActionLimit = []float64{
			spec.ActionBounds.Min,
			spec.ActionBounds.Max,
		}
	}
}

// templateExploration chooses the exploration strategy matching the
// agent's action space, or none when the agent explores on its own
func templateExploration(config agent.Config) (*exploration.Strategy,
	error) {
	if !config.RequiresExploration() {
		return nil, nil
	}

	if config.ActionSpace() == environment.Continuous {
		return exploration.NewOU(0.0, exploration.DefaultSigma,
			exploration.DefaultSigmaMin, exploration.DefaultAnnealingSteps,
			exploration.DefaultTheta, exploration.DefaultDt)
	}
	return exploration.NewLinear(exploration.DefaultStartValue,
		exploration.DefaultEndValue, templateAnnealingSteps)
}

// templateName derives an experiment name like
// "categorical_dqn_cartpole_v1" from the agent type and environment
func templateName(agentType agent.Type, envID string) string {
	env := strings.ToLower(strings.ReplaceAll(envID, "-", "_"))
	return fmt.Sprintf("%v_%v", agentType, env)
}
