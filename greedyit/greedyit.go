// Package greedyit implements the Greedy-Iterative b-matching heuristic:
// b independent rounds of a classic greedy maximum-weight-matching sweep
// over the same weight-sorted arc list, each round producing one of the b
// disjoint matchings.
package greedyit

import (
	"sort"

	"github.com/katalvlaran/bmatch/graph"
	"github.com/katalvlaran/bmatch/matching"
)

// Config selects the optional swap passes. Swaps and GlobalSwaps together
// select the global-swap variant (one pass after all b rounds); Swaps
// alone selects the local-swap variant (one pass after each round).
type Config struct {
	Swaps       bool
	GlobalSwaps bool
	ReverseSort bool
}

// Instance is one configured run of Greedy-Iterative.
type Instance struct {
	cfg   Config
	state *matching.State
	b     int
}

// New returns an unprepared Instance; call Prepare before Run.
func New(cfg Config) *Instance {
	return &Instance{cfg: cfg}
}

// Prepare wires the instance to snap with a budget of b colors. Always
// succeeds.
func (g *Instance) Prepare(snap *graph.Snapshot, b int) bool {
	g.state = matching.NewState(snap, b)
	g.b = b
	return true
}

// Run performs the b greedy rounds.
func (g *Instance) Run() {
	snap := g.state.Snapshot()

	var edges []graph.ArcID
	snap.ForEachArc(func(a graph.ArcID) bool {
		if snap.Weight(a) > 0 {
			edges = append(edges, a)
		}
		return true
	})
	sort.SliceStable(edges, func(i, j int) bool {
		return snap.Weight(edges[i]) > snap.Weight(edges[j])
	})

	for round := 0; round < g.b; round++ {
		roundColor := matching.Color(round)
		remaining := make([]graph.ArcID, 0, len(edges))
		matchedInRound := make([]graph.ArcID, 0, len(edges))

		for _, a := range edges {
			if g.state.EdgeColor(a) != matching.Uncolored {
				continue
			}
			arc := snap.ArcAt(a)
			if g.state.Mate(roundColor, arc.Tail) != graph.NoVertex ||
				g.state.Mate(roundColor, arc.Head) != graph.NoVertex {
				remaining = append(remaining, a)
				continue
			}
			_ = g.state.SetEdgeColor(a, roundColor)
			matchedInRound = append(matchedInRound, a)
		}

		if g.cfg.Swaps && !g.cfg.GlobalSwaps {
			// Keeping the full edge list for next round (rather than
			// shrinking to remaining) lets a round that changed the
			// coloring via swaps re-examine every arc, not just the ones
			// left unmatched before the swap.
			if !g.state.LocalSwap(matchedInRound, roundColor, g.cfg.ReverseSort) {
				edges = remaining
			}
		} else {
			edges = remaining
		}
	}

	if g.cfg.Swaps && g.cfg.GlobalSwaps {
		g.state.GlobalSwap(g.cfg.ReverseSort)
	}
}

// Deliver returns the total weight of the resulting matching.
func (g *Instance) Deliver() uint64 { return g.state.Deliver() }

// Name returns the full algorithm name, including the configured swap
// variant suffix.
func (g *Instance) Name() string {
	name := "Greedy-Iterative"
	if g.cfg.Swaps {
		if g.cfg.GlobalSwaps {
			name += "-swaps-global"
		} else {
			name += "-swaps-local"
		}
	}
	return name
}

// ShortName returns the same string as Name; this algorithm has no
// separate abbreviation.
func (g *Instance) ShortName() string { return g.Name() }

// Threshold always returns 0: Greedy-Iterative has no weight threshold.
func (g *Instance) Threshold() float64 { return 0 }

// SanityCheck reports every invariant violation found in the resulting
// matching.
func (g *Instance) SanityCheck() []string { return g.state.SanityCheck() }
