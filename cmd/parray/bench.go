package main

import (
	"errors"
	"math"
	"math/rand"
	"slices"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/khaledbenmachiche/parray/array"
	"github.com/khaledbenmachiche/parray/internal/config"
	"github.com/khaledbenmachiche/parray/parallel"
	"github.com/khaledbenmachiche/parray/sort"
)

func newBenchCmd(cfg *config.Config) *cobra.Command {
	var size int
	var seed int64
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time reduce, transform and sort on random data",
		RunE: func(cmd *cobra.Command, args []string) error {
			if size == 0 {
				size = cfg.Bench.Size
			}
			if seed == 0 {
				seed = cfg.Bench.Seed
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			return runBench(cfg, size, seed)
		},
	}
	cmd.Flags().IntVar(&size, "size", 0, "elements per operation (default: config value)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default: config value or clock)")
	return cmd
}

func runBench(cfg *config.Config, size int, seed int64) error {
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, size)
	for i := range data {
		data[i] = rng.Float64() * 1000
	}
	log.WithFields(logrus.Fields{
		"size":    size,
		"seed":    seed,
		"workers": parallel.Workers(),
	}).Info("benchmark input ready")

	if err := benchReduce(data); err != nil {
		return err
	}
	if err := benchTransform(data); err != nil {
		return err
	}
	return benchSort(cfg, data)
}

func benchReduce(data []float64) error {
	start := time.Now()
	total, err := array.Reduce(data, 0, array.Sum)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	// The parallel combination order drifts from the sequential fold in
	// the last bits; report the drift instead of failing on it.
	drift := math.Abs(total - floats.Sum(data))
	log.WithFields(logrus.Fields{
		"op":      array.Sum.String(),
		"result":  total,
		"drift":   drift,
		"elapsed": elapsed,
	}).Info("reduce done")
	return nil
}

func benchTransform(data []float64) error {
	out := make([]float64, len(data))
	start := time.Now()
	if err := array.Transform(data, out, math.Sqrt); err != nil {
		return err
	}
	elapsed := time.Since(start)

	for i := range out {
		if out[i] != math.Sqrt(data[i]) {
			return errors.New("bench: transform output mismatch")
		}
	}
	log.WithFields(logrus.Fields{
		"fn":      "sqrt",
		"elapsed": elapsed,
	}).Info("transform done")
	return nil
}

func benchSort(cfg *config.Config, data []float64) error {
	cutoff := cfg.Sort.Cutoff
	if cutoff < 1 {
		cutoff = sort.DefaultCutoff
	}
	depth := sortDepth(cfg)

	work := slices.Clone(data)
	start := time.Now()
	if err := sort.SortWithLimits(work, depth, cutoff); err != nil {
		return err
	}
	elapsed := time.Since(start)

	if !slices.IsSorted(work) {
		return errors.New("bench: sort produced unsorted output")
	}
	log.WithFields(logrus.Fields{
		"cutoff":  cutoff,
		"depth":   depth,
		"elapsed": elapsed,
	}).Info("sort done")
	return nil
}
