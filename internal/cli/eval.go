package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/denismitr/intset/set"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

var ErrUnknownOperation = errors.New("unknown operation")

type (
	setOp       func(a, b *set.IntSet, x int) *set.IntSet
	predicateOp func(a, b *set.IntSet) bool
)

var setOps = map[string]setOp{
	"union": func(a, b *set.IntSet, _ int) *set.IntSet {
		return set.Union(a, b)
	},
	"intersection": func(a, b *set.IntSet, _ int) *set.IntSet {
		return set.Intersection(a, b)
	},
	"difference": func(a, b *set.IntSet, _ int) *set.IntSet {
		return set.Difference(a, b)
	},
	"without": func(a, _ *set.IntSet, x int) *set.IntSet {
		return set.DifferenceWithValue(a, x)
	},
}

var predicateOps = map[string]predicateOp{
	"subset":        set.IsSubsetOrEqual,
	"proper-subset": set.IsProperSubset,
	"equal":         set.Equal,
	"not-equal":     set.NotEqual,
}

func operationNames() []string {
	names := append(lo.Keys(setOps), lo.Keys(predicateOps)...)
	slices.Sort(names)
	return names
}

func newEvalCommand() *cobra.Command {
	var (
		left, right []int
		value       int
	)

	cmd := &cobra.Command{
		Use:       "eval <operation>",
		Short:     "Evaluate one set operation",
		Long:      "Evaluate one set operation on --left and --right operands.\nOperations: " + strings.Join(operationNames(), ", "),
		Args:      cobra.ExactArgs(1),
		ValidArgs: operationNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return evaluate(cmd.OutOrStdout(), args[0], left, right, value)
		},
	}

	cmd.Flags().IntSliceVar(&left, "left", nil, "left operand values (e.g. --left 1,3,5)")
	cmd.Flags().IntSliceVar(&right, "right", nil, "right operand values")
	cmd.Flags().IntVar(&value, "value", 0, "value removed by the without operation")

	return cmd
}

func evaluate(w io.Writer, op string, left, right []int, value int) error {
	a, b := set.FromSlice(left), set.FromSlice(right)

	if fn, ok := setOps[op]; ok {
		result := fn(a, b, value)
		fmt.Fprintln(w, result)
		fmt.Fprintf(w, "cardinality: %d\n", result.Len())
		return nil
	}

	if fn, ok := predicateOps[op]; ok {
		fmt.Fprintln(w, fn(a, b))
		return nil
	}

	return errors.Wrapf(ErrUnknownOperation, "%q (expected one of %s)", op, strings.Join(operationNames(), ", "))
}

func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [values...]",
		Short: "Render the set built from the given values",
		Long:  "Render the set built from the given values. Put negative values after --, e.g. intset show -- -5 3.",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseInts(args)
			if err != nil {
				return err
			}

			s := set.FromSlice(values)
			fmt.Fprintln(cmd.OutOrStdout(), s)
			fmt.Fprintf(cmd.OutOrStdout(), "cardinality: %d\n", s.Len())
			return nil
		},
	}
}

func parseInts(args []string) ([]int, error) {
	var bad []string
	values := lo.FilterMap(args, func(arg string, _ int) (int, bool) {
		v, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil {
			bad = append(bad, arg)
			return 0, false
		}
		return v, true
	})

	if len(bad) > 0 {
		return nil, errors.Errorf("not integers: %s", strings.Join(bad, ", "))
	}

	return values, nil
}
