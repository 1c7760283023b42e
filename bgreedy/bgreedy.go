// Package bgreedy implements the bGreedy-Color and bGreedy-Extend
// b-matching heuristics: both first carve a degree-bounded subgraph H out
// of the heaviest arcs, then color H with misragries. bGreedy-Color then
// drops H's lightest color class when misragries needed one more color
// than the budget allows; bGreedy-Extend instead bounds H's degree by b-1
// and then greedily extends, trying every color in turn, with the arcs H
// left out.
package bgreedy

import (
	"sort"

	"github.com/katalvlaran/bmatch/graph"
	"github.com/katalvlaran/bmatch/matching"
	"github.com/katalvlaran/bmatch/misragries"
)

// Config selects the Extend variant and the optional global-swap pass.
type Config struct {
	Extend      bool
	GlobalSwaps bool
	ReverseSort bool
}

// Instance is one configured run of bGreedy.
type Instance struct {
	cfg   Config
	state *matching.State
	snap  *graph.Snapshot
	b     int
}

// New returns an unprepared Instance; call Prepare before Run.
func New(cfg Config) *Instance {
	return &Instance{cfg: cfg}
}

// Prepare wires the instance to snap with a budget of b colors. Fails if
// Extend is set and b < 2, since the extend pass needs at least one color
// slot beyond the degree-bounded subgraph's own budget.
func (g *Instance) Prepare(snap *graph.Snapshot, b int) bool {
	if g.cfg.Extend && b < 2 {
		return false
	}
	g.snap = snap
	g.state = matching.NewState(snap, b)
	g.b = b
	return true
}

// Run carves out the degree-bounded subgraph, colors it, and applies the
// configured extend or drop-lightest-color postprocessing.
func (g *Instance) Run() {
	snap := g.snap
	bound := g.b
	if g.cfg.Extend {
		bound = g.b - 1
	}

	var edges []graph.ArcID
	var zeroWeightArcs []graph.ArcID
	for a := 0; a < snap.NumArcs(); a++ {
		id := graph.ArcID(a)
		if snap.Weight(id) > 0 {
			edges = append(edges, id)
		} else {
			snap.Deactivate(id)
			zeroWeightArcs = append(zeroWeightArcs, id)
		}
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return snap.Weight(edges[i]) > snap.Weight(edges[j])
	})

	numMatched := make([]int, snap.NumVertices())
	var unmatchedArcs []graph.ArcID
	for _, a := range edges {
		arc := snap.ArcAt(a)
		if numMatched[arc.Head] < bound && numMatched[arc.Tail] < bound {
			numMatched[arc.Head]++
			numMatched[arc.Tail]++
		} else {
			unmatchedArcs = append(unmatchedArcs, a)
			snap.Deactivate(a)
		}
	}

	mg := misragries.New()
	mg.SetMaxDegree(bound)
	mg.Run(snap)

	if !g.cfg.Extend {
		if mg.NumColors() == bound+1 {
			dropLightestColor(mg, bound)
		}
	}
	_ = mg.ApplyTo(g.state)

	for _, a := range unmatchedArcs {
		snap.Activate(a)
	}

	if g.cfg.Extend {
		g.greedyExtend(unmatchedArcs)
	}

	for _, a := range zeroWeightArcs {
		snap.Activate(a)
	}

	if g.cfg.GlobalSwaps {
		g.state.GlobalSwap(g.cfg.ReverseSort)
	}
}

// dropLightestColor finds mg's color class of smallest total weight,
// uncolors it, and relabels the surplus color (bound, the one beyond the
// target budget) into the id it just freed, leaving exactly bound colors
// in use.
func dropLightestColor(mg *misragries.Instance, bound int) {
	colorWeight := make([]int64, bound+1)
	snap := mg.Snapshot()
	snap.ForEachArc(func(a graph.ArcID) bool {
		if c := mg.EdgeColor(a); c != matching.Uncolored {
			colorWeight[c] += snap.Weight(a)
		}
		return true
	})

	minColor := matching.Color(0)
	for c := 1; c <= bound; c++ {
		if colorWeight[c] < colorWeight[minColor] {
			minColor = matching.Color(c)
		}
	}

	surplus := matching.Color(bound)
	snap.ForEachArc(func(a graph.ArcID) bool {
		switch mg.EdgeColor(a) {
		case minColor:
			mg.Recolor(a, matching.Uncolored)
		case surplus:
			if surplus != minColor {
				mg.Recolor(a, minColor)
			}
		}
		return true
	})
}

// greedyExtend scans stashed, as-yet-uncolored arcs (still in weight-
// descending order) once per color, greedily matching any whose endpoints
// are both free in that color.
func (g *Instance) greedyExtend(edges []graph.ArcID) {
	for round := 0; round < g.b; round++ {
		roundColor := matching.Color(round)
		var remaining []graph.ArcID
		for _, a := range edges {
			if g.state.EdgeColor(a) != matching.Uncolored {
				continue
			}
			arc := g.snap.ArcAt(a)
			if g.state.Mate(roundColor, arc.Tail) != graph.NoVertex ||
				g.state.Mate(roundColor, arc.Head) != graph.NoVertex {
				remaining = append(remaining, a)
				continue
			}
			_ = g.state.SetEdgeColor(a, roundColor)
		}
		edges = remaining
	}
}

// Deliver returns the total weight of the resulting matching.
func (g *Instance) Deliver() uint64 { return g.state.Deliver() }

// Name returns the full algorithm name, including the global-swap suffix.
func (g *Instance) Name() string {
	base := "bGreedy-Color"
	if g.cfg.Extend {
		base = "bGreedy-Extend"
	}
	if g.cfg.GlobalSwaps {
		base += " + global swaps"
	}
	return base
}

// ShortName returns the compact identifier written to results CSV rows.
func (g *Instance) ShortName() string {
	base := "bgreedy_color"
	if g.cfg.Extend {
		base = "bgreedy_extend"
	}
	if g.cfg.GlobalSwaps {
		base += "-swaps-global"
	}
	return base
}

// Threshold always returns 0: bGreedy has no weight threshold.
func (g *Instance) Threshold() float64 { return 0 }

// SanityCheck reports every invariant violation found in the resulting
// matching.
func (g *Instance) SanityCheck() []string { return g.state.SanityCheck() }
