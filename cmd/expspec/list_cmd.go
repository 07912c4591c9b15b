package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/samuelfneumann/expspec/agent"
	"github.com/samuelfneumann/expspec/environment"
)

var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "List registered agent types",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "AGENT\tACTIONS\tEXPLORATION")
		for _, agentType := range agent.Registered() {
			config, err := agent.DefaultConfig(agentType)
			if err != nil {
				return err
			}

			needs := "required"
			if !config.RequiresExploration() {
				needs = "built in"
			}
			fmt.Fprintf(w, "%v\t%v\t%v\n", agentType, config.ActionSpace(),
				needs)
		}
		return w.Flush()
	},
}

var envsCmd = &cobra.Command{
	Use:   "envs",
	Short: "List catalog environments",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "ENVIRONMENT\tOBSERVATIONS\tACTIONS\tSTEP LIMIT")
		for _, id := range environment.IDs() {
			spec, _ := environment.Lookup(id)
			fmt.Fprintf(w, "%v\t%v\t%v\t%v\n", id, spec.ObservationDim,
				describeActions(spec), describeStepLimit(spec))
		}
		return w.Flush()
	},
}

// describeActions summarizes an action space in one cell
func describeActions(spec environment.Spec) string {
	if spec.DiscreteActions() {
		return fmt.Sprintf("%v discrete", spec.NumActions)
	}
	return fmt.Sprintf("%v in [%v, %v]", spec.ActionDim,
		spec.ActionBounds.Min, spec.ActionBounds.Max)
}

func describeStepLimit(spec environment.Spec) string {
	if spec.MaxEpisodeSteps <= 0 {
		return "none"
	}
	return fmt.Sprintf("%v", spec.MaxEpisodeSteps)
}
