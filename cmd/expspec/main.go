// Expspec works with reinforcement learning experiment files:
// validating them, rendering them in canonical form, comparing them,
// scaffolding new ones, and watching them for changes.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/samuelfneumann/expspec/internal/log"
)

var (
	flagLogLevel string
	flagJSONLogs bool
)

var rootCmd = &cobra.Command{
	Use:   "expspec",
	Short: "Work with reinforcement learning experiment files",
	Long: `Expspec validates, renders, compares, and scaffolds the YAML
experiment files that describe reinforcement learning runs. An
experiment file maps experiment names to experiment bodies; each body
names an agent and an environment and configures the replay memory,
the exploration strategy, the state normalizer, and the network body.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.Configure(log.Config{
			Level:   flagLogLevel,
			Console: !flagJSONLogs,
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "",
		"minimum log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&flagJSONLogs, "json-logs", false,
		"emit JSON log lines instead of console output")

	rootCmd.AddCommand(validateCmd, showCmd, diffCmd, initCmd,
		scheduleCmd, agentsCmd, envsCmd, watchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
