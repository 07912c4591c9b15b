package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/samuelfneumann/expspec/experiment"
	"github.com/samuelfneumann/expspec/internal/log"
)

var validateStrict bool

var validateCmd = &cobra.Command{
	Use:   "validate <file> [file...]",
	Short: "Validate experiment files",
	Long: `Validate decodes and checks every experiment in the given
files, reporting all problems at once. The exit status is non-zero
when any file fails.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.WithComponent("validate")

		invalid := 0
		for _, path := range args {
			suite, err := experiment.LoadWithOptions(path,
				experiment.LoadOptions{Strict: validateStrict})
			if err != nil {
				invalid++
				fmt.Fprintf(cmd.ErrOrStderr(), "%v: invalid\n", path)
				for _, line := range strings.Split(err.Error(), "; ") {
					fmt.Fprintf(cmd.ErrOrStderr(), "  %v\n", line)
				}
				continue
			}

			if !validateStrict {
				for _, e := range suite.Experiments() {
					for _, warning := range e.Warnings() {
						logger.Warn().
							Str(log.FieldFile, path).
							Str(log.FieldExperiment, e.Name).
							Msg(warning)
					}
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%v: ok (%v experiments)\n",
				path, suite.Len())
		}

		if invalid > 0 {
			return fmt.Errorf("%v of %v files failed validation", invalid,
				len(args))
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false,
		"treat warnings as errors")
}
