package driver

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/katalvlaran/bmatch/bgreedy"
	"github.com/katalvlaran/bmatch/gpa"
	"github.com/katalvlaran/bmatch/greedyit"
	"github.com/katalvlaran/bmatch/kedgecoloring"
	"github.com/katalvlaran/bmatch/matching"
	"github.com/katalvlaran/bmatch/nodecentered"
)

// errNoAggregation is returned when node-centered is selected without any
// -g aggregation type.
var errNoAggregation = errors.New("driver: node-centered requires at least one aggregation type")

// BuildAlgorithms instantiates every algorithm configured by cfg: the three
// family toggles (mutually exclusive with an explicit Algorithms list,
// which replaces them entirely), then the explicit list's own per-algorithm
// fan-out. If cfg.OrderSeed is non-zero, the final list is Fisher-Yates
// shuffled with that seed.
func BuildAlgorithms(cfg Config) ([]matching.Algorithm, error) {
	var algos []matching.Algorithm

	if len(cfg.Algorithms) == 0 {
		if cfg.Greedy {
			algos = append(algos, greedyFamily(cfg)...)
		}
		if cfg.NodeCentered {
			algos = append(algos, nodeCenteredFamily(cfg)...)
		}
		if cfg.GPA {
			algos = append(algos, gpaFamily(cfg)...)
		}
	} else {
		for _, name := range cfg.Algorithms {
			instances, err := dispatchOne(cfg, name)
			if err != nil {
				return nil, err
			}
			algos = append(algos, instances...)
		}
	}

	if cfg.OrderSeed != 0 {
		rng := rand.New(rand.NewSource(cfg.OrderSeed))
		rng.Shuffle(len(algos), func(i, j int) { algos[i], algos[j] = algos[j], algos[i] })
	}

	return algos, nil
}

// greedyFamily is --greedy's default instantiation: bGreedy-Color plus one
// to three greedy-iterative variants depending on the swap flags.
func greedyFamily(cfg Config) []matching.Algorithm {
	algos := []matching.Algorithm{
		bgreedy.New(bgreedy.Config{}),
	}

	switch {
	case cfg.SwapsAndNormal:
		algos = append(algos,
			greedyit.New(greedyit.Config{Swaps: true, GlobalSwaps: true, ReverseSort: cfg.SwapsReverseSort}),
			greedyit.New(greedyit.Config{Swaps: true, GlobalSwaps: false, ReverseSort: cfg.SwapsReverseSort}),
			greedyit.New(greedyit.Config{Swaps: false}),
		)
	case cfg.Swaps:
		algos = append(algos,
			greedyit.New(greedyit.Config{Swaps: true, GlobalSwaps: true, ReverseSort: cfg.SwapsReverseSort}),
			greedyit.New(greedyit.Config{Swaps: true, ReverseSort: cfg.SwapsReverseSort}),
		)
	default:
		algos = append(algos, greedyit.New(greedyit.Config{}))
	}
	return algos
}

// nodeCenteredFamily is --node-centered's default instantiation: MAX, SUM,
// and B_SUM, each run once with the full-max recovery threshold and once
// without.
func nodeCenteredFamily(cfg Config) []matching.Algorithm {
	aggregates := []nodecentered.Aggregate{nodecentered.Max, nodecentered.Sum, nodecentered.BSum}
	var algos []matching.Algorithm
	for _, agg := range aggregates {
		algos = append(algos, nodecentered.New(nodecentered.Config{Aggregate: agg, Threshold: 1}))
	}
	for _, agg := range aggregates {
		algos = append(algos, nodecentered.New(nodecentered.Config{Aggregate: agg}))
	}
	return algos
}

// gpaFamily is --gpa's default instantiation.
func gpaFamily(cfg Config) []matching.Algorithm {
	var algos []matching.Algorithm

	if cfg.SwapsAndNormal {
		algos = append(algos,
			gpa.New(gpa.Config{Seed: cfg.Seed}),
			gpa.New(gpa.Config{Swaps: true, Seed: cfg.Seed}),
			gpa.New(gpa.Config{Swaps: true, GlobalSwaps: true, Seed: cfg.Seed}),
			gpa.New(gpa.Config{NumROMA: cfg.ROMACount, Seed: cfg.Seed}),
		)
		return algos
	}

	if cfg.Swaps {
		algos = append(algos,
			gpa.New(gpa.Config{Swaps: true, ReverseSort: cfg.SwapsReverseSort, NumROMA: cfg.ROMACount, Seed: cfg.Seed}),
			gpa.New(gpa.Config{Swaps: true, GlobalSwaps: true, ReverseSort: cfg.SwapsReverseSort, NumROMA: cfg.ROMACount, Seed: cfg.Seed}),
		)
		return algos
	}

	algos = append(algos, gpa.New(gpa.Config{Swaps: cfg.Swaps, GlobalSwaps: cfg.GlobalSwaps, ReverseSort: cfg.SwapsReverseSort, NumROMA: cfg.ROMACount, Seed: cfg.Seed}))
	return algos
}

// dispatchOne expands one explicit -a selection into its concrete
// instances, per the three-flag fan-out rules each algorithm family
// defines (§6.3).
func dispatchOne(cfg Config, name string) ([]matching.Algorithm, error) {
	switch name {
	case AlgoBGreedyColor:
		return bGreedyDispatch(cfg, false), nil
	case AlgoBGreedyExtend:
		return bGreedyDispatch(cfg, true), nil
	case AlgoGreedyIt:
		return greedyItDispatch(cfg), nil
	case AlgoNodeCentered:
		return nodeCenteredDispatch(cfg)
	case AlgoGPAIt:
		return gpaDispatch(cfg), nil
	case AlgoKEC:
		return kECDispatch(cfg), nil
	default:
		return nil, errors.Errorf("driver: unknown algorithm %q", name)
	}
}

func bGreedyDispatch(cfg Config, extend bool) []matching.Algorithm {
	if cfg.SwapsAndNormal {
		return []matching.Algorithm{
			bgreedy.New(bgreedy.Config{Extend: extend}),
			bgreedy.New(bgreedy.Config{Extend: extend, GlobalSwaps: true, ReverseSort: cfg.SwapsReverseSort}),
		}
	}
	return []matching.Algorithm{
		bgreedy.New(bgreedy.Config{Extend: extend, GlobalSwaps: cfg.GlobalSwaps, ReverseSort: cfg.SwapsReverseSort}),
	}
}

func greedyItDispatch(cfg Config) []matching.Algorithm {
	if cfg.SwapsAndNormal {
		algos := []matching.Algorithm{
			greedyit.New(greedyit.Config{Swaps: false, GlobalSwaps: cfg.GlobalSwaps}),
		}
		if cfg.GlobalSwaps {
			algos = append(algos, greedyit.New(greedyit.Config{Swaps: true, ReverseSort: cfg.SwapsReverseSort}))
		}
		algos = append(algos, greedyit.New(greedyit.Config{Swaps: true, GlobalSwaps: cfg.GlobalSwaps, ReverseSort: cfg.SwapsReverseSort}))
		return algos
	}
	return []matching.Algorithm{
		greedyit.New(greedyit.Config{Swaps: cfg.Swaps, GlobalSwaps: cfg.GlobalSwaps, ReverseSort: cfg.SwapsReverseSort}),
	}
}

func nodeCenteredDispatch(cfg Config) ([]matching.Algorithm, error) {
	if len(cfg.AggregationTypes) == 0 {
		return nil, errNoAggregation
	}
	var algos []matching.Algorithm
	for _, name := range cfg.AggregationTypes {
		agg, ok := aggregationByName[name]
		if !ok {
			return nil, errors.Errorf("driver: unknown aggregation type %q", name)
		}
		if len(cfg.Thresholds) == 0 {
			algos = append(algos, nodecentered.New(nodecentered.Config{Aggregate: nodecentered.Aggregate(agg)}))
			continue
		}
		for _, thresh := range cfg.Thresholds {
			algos = append(algos, nodecentered.New(nodecentered.Config{Aggregate: nodecentered.Aggregate(agg), Threshold: thresh}))
		}
	}
	return algos, nil
}

func gpaDispatch(cfg Config) []matching.Algorithm {
	if cfg.SwapsAndNormal {
		algos := []matching.Algorithm{
			gpa.New(gpa.Config{GlobalSwaps: cfg.GlobalSwaps, Seed: cfg.Seed}),
		}
		if cfg.GlobalSwaps {
			algos = append(algos, gpa.New(gpa.Config{Swaps: true, ReverseSort: cfg.SwapsReverseSort, Seed: cfg.Seed}))
		}
		algos = append(algos, gpa.New(gpa.Config{Swaps: true, GlobalSwaps: cfg.GlobalSwaps, ReverseSort: cfg.SwapsReverseSort, Seed: cfg.Seed}))
		if cfg.ROMACount > 0 {
			algos = append(algos, gpa.New(gpa.Config{GlobalSwaps: cfg.GlobalSwaps, NumROMA: cfg.ROMACount, Seed: cfg.Seed}))
		}
		return algos
	}
	if cfg.Swaps {
		algos := []matching.Algorithm{
			gpa.New(gpa.Config{Swaps: true, GlobalSwaps: cfg.GlobalSwaps, ReverseSort: cfg.SwapsReverseSort, Seed: cfg.Seed}),
		}
		if cfg.ROMACount > 0 {
			algos = append(algos, gpa.New(gpa.Config{NumROMA: cfg.ROMACount, Seed: cfg.Seed}))
		}
		return algos
	}
	return []matching.Algorithm{
		gpa.New(gpa.Config{Swaps: cfg.Swaps, GlobalSwaps: cfg.GlobalSwaps, ReverseSort: cfg.SwapsReverseSort, NumROMA: cfg.ROMACount, Seed: cfg.Seed}),
	}
}

func kECDispatch(cfg Config) []matching.Algorithm {
	base := func(globalSwaps bool) []matching.Algorithm {
		return []matching.Algorithm{
			kedgecoloring.New(kedgecoloring.Config{GlobalSwaps: globalSwaps, ReverseSort: cfg.SwapsReverseSort}),
			kedgecoloring.New(kedgecoloring.Config{CommonColor: true, GlobalSwaps: globalSwaps, ReverseSort: cfg.SwapsReverseSort}),
			kedgecoloring.New(kedgecoloring.Config{RotateLong: true, GlobalSwaps: globalSwaps, ReverseSort: cfg.SwapsReverseSort}),
			kedgecoloring.New(kedgecoloring.Config{CommonColor: true, RotateLong: true, GlobalSwaps: globalSwaps, ReverseSort: cfg.SwapsReverseSort}),
		}
	}

	if cfg.SwapsAndNormal {
		return append(base(false), base(true)...)
	}
	if cfg.Swaps {
		return base(true)
	}
	return base(false)
}
