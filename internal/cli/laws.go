package cli

import (
	"fmt"
	"strings"

	"github.com/denismitr/intset/internal/laws"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newLawsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "laws",
		Short: "Check the algebraic laws of the set operations on random operands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg.LawsCheck()
			out := cmd.OutOrStdout()

			summary, err := laws.Check(cmd.Context(), cfg, a.log)

			fmt.Fprintf(out, "laws: %s\n", strings.Join(summary.Laws, ", "))
			fmt.Fprintf(out, "trials: %d, checks: %d, seed: %d\n", summary.Trials, summary.Checks, cfg.Seed)

			if summary.OK() && err == nil {
				color.New(color.FgGreen, color.Bold).Fprintln(out, "all laws hold")
				return nil
			}

			for _, v := range summary.Failures {
				color.New(color.FgRed).Fprintln(out, v.Error())
			}

			a.log.Error("law check failed", zap.Error(err))
			return err
		},
	}

	flags := cmd.Flags()
	flags.Int("trials", 0, "number of random trials")
	flags.Int("concurrency", 0, "number of trial workers")
	flags.Int64("seed", 0, "random seed")
	flags.Int("max-size", 0, "maximum number of values per operand")
	flags.Int("max-value", 0, "operands draw values from [-max-value, max-value]")
	flags.Int("error-threshold", 0, "stop after this many violations (0 runs every trial)")
	flags.StringSlice("only", nil, "check only these laws: "+strings.Join(laws.Names(), ", "))

	bind := map[string]string{
		"laws.trials":          "trials",
		"laws.concurrency":     "concurrency",
		"laws.seed":            "seed",
		"laws.max_size":        "max-size",
		"laws.max_value":       "max-value",
		"laws.error_threshold": "error-threshold",
		"laws.only":            "only",
	}
	for key, flag := range bind {
		_ = a.v.BindPFlag(key, flags.Lookup(flag))
	}

	return cmd
}
