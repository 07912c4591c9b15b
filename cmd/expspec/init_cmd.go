package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/samuelfneumann/expspec/agent"
	"github.com/samuelfneumann/expspec/environment"
	"github.com/samuelfneumann/expspec/experiment"
	"github.com/samuelfneumann/expspec/internal/log"
)

var (
	initAgent  string
	initEnv    string
	initName   string
	initOutput string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a starter experiment file",
	Long: `Init generates a complete, valid experiment for an agent
and environment, with every section populated by canonical values.
The result is written to stdout unless an output file is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := experiment.Template(agent.Type(initAgent), initEnv)
		if agent.IsUnknownType(err) {
			return fmt.Errorf("%w; run 'expspec agents' to list them", err)
		}
		if err != nil {
			return err
		}
		if initName != "" {
			e.Name = initName
		}

		suite := &experiment.Suite{}
		if err := suite.Add(e); err != nil {
			return err
		}

		if initOutput == "" {
			data, err := yaml.Marshal(suite)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		}

		if err := experiment.Save(initOutput, suite); err != nil {
			return err
		}
		logger := log.WithComponent("init")
		logger.Info().
			Str(log.FieldFile, initOutput).
			Str(log.FieldAgent, initAgent).
			Str(log.FieldEnv, initEnv).
			Msg("wrote starter experiment file")
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&initAgent, "agent",
		string(agent.CategoricalDQN),
		"agent type for the generated experiment")
	initCmd.Flags().StringVar(&initEnv, "env", environment.CartPoleV1,
		"environment for the generated experiment")
	initCmd.Flags().StringVar(&initName, "name", "",
		"experiment name (derived from agent and environment when unset)")
	initCmd.Flags().StringVarP(&initOutput, "output", "o", "",
		"output file (stdout when unset)")
}
