package cli

import (
	"fmt"

	"github.com/denismitr/intset/internal/phases"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newPhasesCommand(a *app) *cobra.Command {
	var (
		only     []int
		failFast bool
	)

	cmd := &cobra.Command{
		Use:   "phases",
		Short: "Run the scenario phases against the set implementation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			options := []phases.RunOption{phases.Only(only...)}
			if failFast {
				options = append(options, phases.FailFast())
			}

			out := cmd.OutOrStdout()
			report, err := phases.Run(cmd.Context(), out, a.log, options...)

			fmt.Fprintln(out)
			if len(report.Passed) > 0 {
				color.New(color.FgGreen, color.Bold).Fprintf(out, "PASS %v\n", report.Passed)
			}
			for _, f := range report.Failed {
				color.New(color.FgRed, color.Bold).Fprintf(out, "FAIL phase %d: %s\n", f.ID, f.Err)
			}

			return err
		},
	}

	cmd.Flags().IntSliceVar(&only, "only", nil, "run only these phase ids (e.g. --only 3,5)")
	cmd.Flags().BoolVar(&failFast, "fail-fast", false, "stop at the first failed phase")

	return cmd
}
