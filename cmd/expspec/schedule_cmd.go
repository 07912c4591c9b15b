package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/samuelfneumann/expspec/experiment"
	"github.com/samuelfneumann/expspec/exploration"
)

var (
	scheduleSteps  int
	schedulePoints int
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule <file> <experiment>",
	Short: "Preview an exploration schedule",
	Long: `Schedule samples an experiment's exploration strategy over
the course of the run, printing the epsilon or noise scale at evenly
spaced steps together with summary statistics.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		suite, err := experiment.Load(args[0])
		if err != nil {
			return err
		}
		e, found := suite.Get(args[1])
		if !found {
			return fmt.Errorf("no experiment %q in %v (have: %v)", args[1],
				args[0], suite.Names())
		}
		if e.Exploration == nil {
			return fmt.Errorf("experiment %q has no exploration strategy",
				args[1])
		}

		horizon := scheduleSteps
		if horizon <= 0 {
			horizon = e.Common.MaxSteps
		}
		if schedulePoints < 2 {
			return fmt.Errorf("points must be at least 2, got %v",
				schedulePoints)
		}

		points := exploration.Preview(e.Exploration, horizon,
			schedulePoints)
		if len(points) == 0 {
			return fmt.Errorf("could not sample the schedule over %v steps",
				horizon)
		}

		label := "epsilon"
		if e.Exploration.Continuous() {
			label = "sigma"
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%v schedule for %v (%v)\n", label, args[1],
			e.Exploration.Type)
		values := make([]float64, len(points))
		for i, point := range points {
			values[i] = point.Value
			fmt.Fprintf(out, "%10d  %.6f\n", point.Step, point.Value)
		}

		fmt.Fprintf(out, "min %.6f  max %.6f  mean %.6f\n",
			floats.Min(values), floats.Max(values), stat.Mean(values, nil))
		return nil
	},
}

func init() {
	scheduleCmd.Flags().IntVar(&scheduleSteps, "steps", 0,
		"schedule horizon in steps (the experiment's max_steps when unset)")
	scheduleCmd.Flags().IntVar(&schedulePoints, "points", 11,
		"number of evenly spaced samples to print")
}
