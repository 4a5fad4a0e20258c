package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Pure-Company/purefp"
)

var errUnknownOp = errors.New("unknown op")

// foldOps lists the reductions the fold command understands.
var foldOps = []string{"sum", "product", "length", "any", "all"}

func newFoldCmd(a *app) *cobra.Command {
	var (
		op      string
		iterate bool
	)

	cmd := &cobra.Command{
		Use:   "fold --op OP [VALUE...]",
		Short: "Reduce the arguments with a fold-derived operation",
		Long: `fold builds a list from its arguments and reduces it.

sum, product and length take numbers; any and all take booleans.
With --iter the reduction runs on the explicit-stack fold instead of the
recursive one.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := runFold(op, args, iterate)
			if err != nil {
				return err
			}
			a.log.Debug().Str("op", op).Int("values", len(args)).Bool("iter", iterate).Str("result", result).Msg("folded")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
			return err
		},
	}

	cmd.Flags().StringVar(&op, "op", "sum", "Operation ("+strings.Join(foldOps, ", ")+")")
	cmd.Flags().BoolVar(&iterate, "iter", false, "Use the explicit-stack fold")
	return cmd
}

func runFold(op string, args []string, iterate bool) (string, error) {
	switch op {
	case "sum", "product":
		xs, err := parseList(args, func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
		if err != nil {
			return "", err
		}
		m, derived := purefp.SumMonoid[float64](), purefp.Sum[float64]
		if op == "product" {
			m, derived = purefp.ProductMonoid[float64](), purefp.Product[float64]
		}
		return render(xs, m, derived, iterate), nil
	case "any", "all":
		xs, err := parseList(args, strconv.ParseBool)
		if err != nil {
			return "", err
		}
		m, derived := purefp.AnyMonoid(), purefp.AnyTrue
		if op == "all" {
			m, derived = purefp.AllMonoid(), purefp.AllTrue
		}
		return render(xs, m, derived, iterate), nil
	case "length":
		xs := purefp.FromSlice(args)
		if iterate {
			return strconv.Itoa(purefp.FoldIter(func(_ string, acc int) int { return 1 + acc }, 0, xs)), nil
		}
		return strconv.Itoa(purefp.Length(xs)), nil
	default:
		return "", fmt.Errorf("%w %q (want one of %s)", errUnknownOp, op, strings.Join(foldOps, ", "))
	}
}

// render reduces xs with the recursive derived operation, or with m on the
// explicit-stack fold when iterate is set.
func render[T any](xs purefp.List[T], m purefp.Monoid[T], derived func(purefp.List[T]) T, iterate bool) string {
	if iterate {
		return purefp.Sprint(purefp.FoldIter(m.Compose, m.Empty, xs)).String()
	}
	return purefp.Sprint(derived(xs)).String()
}

func parseList[T any](args []string, parse func(string) (T, error)) (purefp.List[T], error) {
	values := make([]T, len(args))
	for i, arg := range args {
		v, err := parse(arg)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		values[i] = v
	}
	return purefp.FromSlice(values), nil
}
