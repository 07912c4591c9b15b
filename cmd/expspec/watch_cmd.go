package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/samuelfneumann/expspec/experiment"
	"github.com/samuelfneumann/expspec/internal/log"
)

var watchStrict bool

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Revalidate an experiment file on every change",
	Long: `Watch validates an experiment file, then revalidates it
every time it changes on disk, logging the outcome. Watch runs until
interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		logger := log.WithComponent("watch")

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt,
			syscall.SIGTERM)
		defer stop()

		watcher := experiment.NewWatcher(path,
			experiment.LoadOptions{Strict: watchStrict},
			func(suite *experiment.Suite, err error) {
				if err != nil {
					logger.Error().
						Err(err).
						Str(log.FieldFile, path).
						Msg("experiment file is invalid")
					return
				}

				logger.Info().
					Str(log.FieldFile, path).
					Int("experiments", suite.Len()).
					Msg("experiment file is valid")
				if watchStrict {
					return
				}
				for _, e := range suite.Experiments() {
					for _, warning := range e.Warnings() {
						logger.Warn().
							Str(log.FieldFile, path).
							Str(log.FieldExperiment, e.Name).
							Msg(warning)
					}
				}
			})

		logger.Info().Str(log.FieldFile, path).Msg("watching experiment file")
		return watcher.Watch(ctx)
	},
}

func init() {
	watchCmd.Flags().BoolVar(&watchStrict, "strict", false,
		"treat warnings as errors")
}
