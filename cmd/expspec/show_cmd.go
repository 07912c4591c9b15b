package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/samuelfneumann/expspec/experiment"
	"github.com/samuelfneumann/expspec/internal/log"
)

var (
	showFormat   string
	showDescribe bool
)

var showCmd = &cobra.Command{
	Use:   "show <file> [experiment]",
	Short: "Render experiments in canonical form",
	Long: `Show decodes an experiment file and renders it back with
defaults applied and sections in canonical order. Naming an
experiment renders only that experiment. With --describe, show prints
a summary of each experiment and its derived quantities instead.
Files that decode but fail validation are still rendered, with a
warning.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		suite, err := experiment.LoadWithOptions(args[0],
			experiment.LoadOptions{SkipValidation: true})
		if err != nil {
			return err
		}
		if err := suite.Validate(); err != nil {
			logger := log.WithComponent("show")
			logger.Warn().
				Str(log.FieldFile, args[0]).
				Err(err).
				Msg("experiment file fails validation")
		}

		if len(args) == 2 {
			e, found := suite.Get(args[1])
			if !found {
				return fmt.Errorf("no experiment %q in %v (have: %v)",
					args[1], args[0], suite.Names())
			}
			sub := &experiment.Suite{}
			if err := sub.Add(e); err != nil {
				return err
			}
			suite = sub
		}

		if showDescribe {
			for _, e := range suite.Experiments() {
				fmt.Fprint(cmd.OutOrStdout(), experiment.Describe(e))
			}
			return nil
		}

		switch showFormat {
		case "yaml":
			data, err := yaml.Marshal(suite)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
		case "json":
			data, err := suiteJSON(suite)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
		default:
			return fmt.Errorf("unknown format %q (want yaml or json)",
				showFormat)
		}
		return nil
	},
}

// suiteJSON renders the suite's canonical YAML form as indented JSON
func suiteJSON(suite *experiment.Suite) ([]byte, error) {
	data, err := yaml.Marshal(suite)
	if err != nil {
		return nil, err
	}

	var tree map[string]interface{}
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	return json.MarshalIndent(tree, "", "  ")
}

func init() {
	showCmd.Flags().StringVar(&showFormat, "format", "yaml",
		"output format (yaml or json)")
	showCmd.Flags().BoolVar(&showDescribe, "describe", false,
		"summarize experiments and their derived quantities")
}
