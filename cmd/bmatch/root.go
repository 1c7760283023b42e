package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bmatch/driver"
)

var (
	resultsOutput string

	flagGreedy       bool
	flagGPA          bool
	flagNodeCentered bool
	flagAlgorithms   []string

	flagBs []int

	flagROMACount int

	flagSwaps            bool
	flagSwapsAndNormal   bool
	flagSwapsReverseSort bool
	flagGlobalSwaps      bool

	flagAggregationTypes []string
	flagThresholds       []float64

	flagSeed      int64
	flagOrderSeed int64

	flagSanityCheck bool
	flagVerbose     bool
)

// newRootCommand builds the bmatch CLI around a flat set of CLI-args flags.
func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "bmatch FILE",
		Short:        "Heuristic disjoint b-matching and proper edge coloring over weighted graphs",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         runRoot,
	}

	root.Flags().BoolVar(&flagGreedy, "greedy", false, "run the greedy-iterative family with its default sub-options")
	root.Flags().BoolVar(&flagGPA, "gpa", false, "run the GPA family with its default sub-options")
	root.Flags().BoolVar(&flagNodeCentered, "node-centered", false, "run the node-centered family with its default sub-options")
	root.Flags().StringArrayVarP(&flagAlgorithms, "algorithm", "a", nil,
		"explicit algorithm to run (repeatable): nodecentered, bgreedy-color|bmatching, bgreedy-extend, greedy-it|biterative, gpa-it|gpa, k-ec|k-edgecoloring")

	root.Flags().IntSliceVarP(&flagBs, "bs", "b", []int{1}, "color budget(s) to run with, each in [0,10]")

	root.Flags().IntVarP(&flagROMACount, "roma-iterations", "l", 0, "ROMA iteration count (implies ROMA wherever GPA runs)")

	root.Flags().BoolVar(&flagSwaps, "swaps", false, "run with the local-swap improvement pass")
	root.Flags().BoolVar(&flagSwapsAndNormal, "swaps-and-normal", false, "run both with and without swaps")
	root.Flags().BoolVar(&flagSwapsReverseSort, "swaps-reverse-sort", false, "visit swap candidates lightest-first")
	root.Flags().BoolVar(&flagGlobalSwaps, "global-swaps", false, "run global swaps instead of local swaps")

	root.Flags().StringArrayVarP(&flagAggregationTypes, "aggregation-type", "g", nil, "node-centered priority aggregation (repeatable): sum, max, avg, median, bsum")
	root.Flags().Float64SliceVarP(&flagThresholds, "threshold", "t", nil, "node-centered global weight threshold multiplier(s), applied as threshold*globalMax (repeatable)")

	root.Flags().Int64Var(&flagSeed, "seed", 1, "RNG seed for ROMA and GPA edge shuffling")
	root.Flags().Int64Var(&flagOrderSeed, "oseed", 0, "RNG seed shuffling the final algorithm run order; 0 disables shuffling")

	root.Flags().BoolVar(&flagSanityCheck, "sanity-check", false, "log matching invariant violations after every run")
	root.Flags().StringVar(&resultsOutput, "results-output", "", "path to append one CSV row per algorithm run")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	return root
}

func runRoot(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		log.SetLevel(log.DebugLevel)
	}

	algorithms := make([]string, 0, len(flagAlgorithms))
	for _, raw := range flagAlgorithms {
		canon, ok := driver.CanonicalAlgorithmName(raw)
		if !ok {
			return fmt.Errorf("bmatch: unknown algorithm %q", raw)
		}
		algorithms = append(algorithms, canon)
	}

	cfg := driver.Config{
		GraphFile:        args[0],
		ResultsOutput:    resultsOutput,
		Greedy:           flagGreedy,
		NodeCentered:     flagNodeCentered,
		GPA:              flagGPA,
		Algorithms:       algorithms,
		Bs:               flagBs,
		ROMACount:        flagROMACount,
		Swaps:            flagSwaps,
		SwapsAndNormal:   flagSwapsAndNormal,
		SwapsReverseSort: flagSwapsReverseSort,
		GlobalSwaps:      flagGlobalSwaps,
		AggregationTypes: flagAggregationTypes,
		Thresholds:       flagThresholds,
		Seed:             flagSeed,
		OrderSeed:        flagOrderSeed,
		SanityCheck:      flagSanityCheck,
	}

	return driver.Run(cfg, os.Stdout)
}
