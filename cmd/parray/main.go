// Command parray is a demonstration and benchmark driver for the parray
// engine: parallel reduction, transformation and sorting over float64
// arrays.
package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/khaledbenmachiche/parray/array"
	"github.com/khaledbenmachiche/parray/internal/config"
	"github.com/khaledbenmachiche/parray/parallel"
	"github.com/khaledbenmachiche/parray/sort"
)

var (
	version = "0.1.0" // Set via ldflags: -X main.version=...

	log = logrus.New()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.WithError(err).Fatal("command failed")
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.Default()
	var cfgPath string

	rootCmd := &cobra.Command{
		Use:           "parray",
		Short:         "Fork-join parallel computations over float64 arrays",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgPath != "" {
				loaded, err := config.Load(cfgPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			parallel.SetMaxWorkers(cfg.Workers)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "YAML tuning file")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("parray v%s (workers: %d)\n", version, parallel.Workers())
		},
	})
	rootCmd.AddCommand(newReduceCmd())
	rootCmd.AddCommand(newTransformCmd())
	rootCmd.AddCommand(newSortCmd(&cfg))
	rootCmd.AddCommand(newBenchCmd(&cfg))
	return rootCmd
}

func newReduceCmd() *cobra.Command {
	var opName string
	var initial float64
	cmd := &cobra.Command{
		Use:   "reduce [values...]",
		Short: "Reduce values to a single scalar under an operator",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := parseValues(args)
			if err != nil {
				return err
			}
			op, err := parseOp(opName)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("initial") {
				initial = op.Identity()
			}
			result, err := array.Reduce(data, initial, op)
			if err != nil {
				return err
			}
			fmt.Println(result)
			return nil
		},
	}
	cmd.Flags().StringVar(&opName, "op", "sum", "reduction operator: sum, product, max, min")
	cmd.Flags().Float64Var(&initial, "initial", 0, "initial accumulator value (default: the operator's identity)")
	return cmd
}

func newTransformCmd() *cobra.Command {
	var fnName string
	cmd := &cobra.Command{
		Use:   "transform [values...]",
		Short: "Apply a unary function to every value",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := parseValues(args)
			if err != nil {
				return err
			}
			f, err := parseFunc(fnName)
			if err != nil {
				return err
			}
			out := make([]float64, len(data))
			if err := array.Transform(data, out, f); err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}
	cmd.Flags().StringVar(&fnName, "fn", "sqrt", "unary function: sqrt, square, abs, neg")
	return cmd
}

func newSortCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "sort [values...]",
		Short: "Sort values in ascending order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := parseValues(args)
			if err != nil {
				return err
			}
			if err := sort.SortWithLimits(data, sortDepth(cfg), cfg.Sort.Cutoff); err != nil {
				return err
			}
			fmt.Println(data)
			return nil
		},
	}
}

// sortDepth maps the config's "0 means default" convention to the
// engine's explicit depth budget, where 0 would force sequential
// execution.
func sortDepth(cfg *config.Config) int {
	if cfg.Sort.Depth > 0 {
		return cfg.Sort.Depth
	}
	return parallel.Workers()
}

func parseOp(name string) (array.Op, error) {
	switch name {
	case "sum":
		return array.Sum, nil
	case "product":
		return array.Product, nil
	case "max":
		return array.Max, nil
	case "min":
		return array.Min, nil
	}
	return 0, fmt.Errorf("unknown operator %q (want sum, product, max or min)", name)
}

func parseFunc(name string) (func(float64) float64, error) {
	switch name {
	case "sqrt":
		return math.Sqrt, nil
	case "square":
		return func(x float64) float64 { return x * x }, nil
	case "abs":
		return math.Abs, nil
	case "neg":
		return func(x float64) float64 { return -x }, nil
	}
	return nil, fmt.Errorf("unknown function %q (want sqrt, square, abs or neg)", name)
}

func parseValues(args []string) ([]float64, error) {
	values := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", arg, err)
		}
		values[i] = v
	}
	return values, nil
}
