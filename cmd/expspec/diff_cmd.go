package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samuelfneumann/expspec/experiment"
)

var diffExperiment string

var diffCmd = &cobra.Command{
	Use:   "diff <file> <file>",
	Short: "Compare experiments across two files",
	Long: `Diff compares experiments of the same name across two
files and reports every configuration difference. Experiments present
in only one file are reported as such. The exit status is non-zero
when anything differs, as with diff(1).`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		options := experiment.LoadOptions{SkipValidation: true}
		left, err := experiment.LoadWithOptions(args[0], options)
		if err != nil {
			return err
		}
		right, err := experiment.LoadWithOptions(args[1], options)
		if err != nil {
			return err
		}

		names := mergedNames(left, right)
		if diffExperiment != "" {
			names = []string{diffExperiment}
		}

		out := cmd.OutOrStdout()
		differences := 0
		for _, name := range names {
			a, inLeft := left.Get(name)
			b, inRight := right.Get(name)

			switch {
			case !inLeft && !inRight:
				return fmt.Errorf("no experiment %q in either file", name)
			case !inLeft:
				differences++
				fmt.Fprintf(out, "%v: only in %v\n", name, args[1])
			case !inRight:
				differences++
				fmt.Fprintf(out, "%v: only in %v\n", name, args[0])
			default:
				if report := experiment.Diff(a, b); report != "" {
					differences++
					fmt.Fprintf(out, "%v:\n%v\n", name, report)
				}
			}
		}

		if differences > 0 {
			return fmt.Errorf("%v experiments differ", differences)
		}
		fmt.Fprintln(out, "experiments are identical")
		return nil
	},
}

// mergedNames returns the union of both suites' experiment names,
// keeping the left file's declaration order
func mergedNames(left, right *experiment.Suite) []string {
	names := left.Names()
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		seen[name] = true
	}
	for _, name := range right.Names() {
		if !seen[name] {
			names = append(names, name)
		}
	}
	return names
}

func init() {
	diffCmd.Flags().StringVar(&diffExperiment, "experiment", "",
		"compare only the named experiment")
}
