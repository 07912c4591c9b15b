// Package agent defines the agent-specific configuration interface
// and a registry of available agent types. Concrete hyperparameter
// schemas live in subpackages, one per agent family, and register
// themselves with this package upon initialization.
package agent

import (
	"github.com/samuelfneumann/expspec/environment"
)

// Config represents the agent-specific section of an experiment
type Config interface {
	// Type returns the type of agent the Config describes
	Type() Type

	// ApplyDefaults fills unset hyperparameters with their default
	// values
	ApplyDefaults()

	// Validate checks the hyperparameters for consistency
	Validate() error

	// ActionSpace returns the cardinality of the action space the
	// described agent acts in
	ActionSpace() environment.Cardinality

	// RequiresExploration returns whether the described agent needs
	// an exploration strategy section. Agents with stochastic
	// policies explore on their own and need none.
	RequiresExploration() bool
}
