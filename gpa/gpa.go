// Package gpa implements the Greedy Path Algorithm: arcs are folded into a
// set of vertex-disjoint paths (and, for odd-length ones, cycles), and each
// path independently runs an exact maximum-weight-independent-set DP over
// its arc sequence to pick the heaviest possible matching along it. A
// round repeats this with the arcs left uncolored by every earlier round,
// once per available color.
package gpa

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/bmatch/graph"
	"github.com/katalvlaran/bmatch/matching"
)

// Config selects the optional local-improvement pass run after each round's
// path extraction: ROMA (if NumROMA > 0) takes priority over plain local
// swaps. Swaps and GlobalSwaps together replace the per-round local swaps
// with one global-swap pass after every round has matched; GlobalSwaps
// without Swaps has no effect.
type Config struct {
	Swaps       bool
	GlobalSwaps bool
	ReverseSort bool
	NumROMA     int
	Seed        int64
}

// Instance is one configured run of GPA.
type Instance struct {
	cfg   Config
	state *matching.State
	snap  *graph.Snapshot
	b     int

	rng          *rand.Rand
	allVertices  []graph.VertexID
	matchedRound []graph.ArcID
}

// New returns an unprepared Instance; call Prepare before Run.
func New(cfg Config) *Instance {
	return &Instance{cfg: cfg}
}

// Prepare wires the instance to snap with a budget of b colors.
func (g *Instance) Prepare(snap *graph.Snapshot, b int) bool {
	g.snap = snap
	g.state = matching.NewState(snap, b)
	g.b = b
	g.rng = rand.New(rand.NewSource(g.cfg.Seed))

	if g.cfg.NumROMA > 0 {
		g.allVertices = make([]graph.VertexID, snap.NumVertices())
		for vi := range g.allVertices {
			g.allVertices[vi] = graph.VertexID(vi)
		}
	}
	return true
}

// Run performs b rounds of path extraction and matching, each working over
// the arcs left unresolved by the previous round.
func (g *Instance) Run() {
	snap := g.snap

	var edges []graph.ArcID
	snap.ForEachArc(func(a graph.ArcID) bool {
		if snap.Weight(a) > 0 {
			edges = append(edges, a)
		}
		return true
	})

	g.rng.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })
	sort.SliceStable(edges, func(i, j int) bool {
		return snap.Weight(edges[i]) > snap.Weight(edges[j])
	})

	var edgesRemaining []graph.ArcID
	for round := 0; round < g.b; round++ {
		roundColor := matching.Color(round)
		ps := newPathSet(snap)

		edgesRemaining = edgesRemaining[:0]
		for _, a := range edges {
			if g.state.EdgeColor(a) != matching.Uncolored {
				continue
			}
			ps.addIfApplicable(a)
			edgesRemaining = append(edgesRemaining, a)
		}

		g.extractPathsApplyMatching(ps, roundColor)

		switch {
		case g.cfg.NumROMA > 0:
			g.state.ROMA(g.allVertices, roundColor, g.cfg.NumROMA, g.rng)
		case g.cfg.Swaps && !g.cfg.GlobalSwaps:
			g.state.LocalSwap(g.matchedRound, roundColor, g.cfg.ReverseSort)
		}

		g.matchedRound = g.matchedRound[:0]
		edges, edgesRemaining = edgesRemaining, edges
	}

	if g.cfg.Swaps && g.cfg.GlobalSwaps {
		g.state.GlobalSwap(g.cfg.ReverseSort)
	}
}

// extractPathsApplyMatching walks every path in ps by its canonical tail,
// linearizes it, and applies the heaviest matching the DP finds along it.
// Cycles are tried both ways (dropping the first arc, dropping the last)
// and the better of the two linearizations wins.
func (g *Instance) extractPathsApplyMatching(ps *pathSet, round matching.Color) {
	snap := g.snap
	n := snap.NumVertices()

	for vi := 0; vi < n; vi++ {
		v := graph.VertexID(vi)
		if !ps.IsActive(v) || ps.Tail(v) != v || ps.Length(v) == 0 {
			continue
		}

		if ps.IsCycle(v) {
			unpacked := unpackPath(ps, v)

			firstMatching, firstRating := maximumWeightMatching(snap, unpacked[1:])
			secondMatching, secondRating := maximumWeightMatching(snap, unpacked[:len(unpacked)-1])

			if firstRating > secondRating {
				g.applyMatching(firstMatching, round)
			} else {
				g.applyMatching(secondMatching, round)
			}
			continue
		}

		if ps.Length(v) == 1 {
			var a graph.ArcID
			if ps.NextVertex(ps.Tail(v)) == ps.Head(v) {
				a = ps.EdgeToNext(ps.Tail(v))
			} else {
				a = ps.EdgeToPrev(ps.Tail(v))
			}
			g.applyMatching([]graph.ArcID{a}, round)
			continue
		}

		unpacked := unpackPath(ps, v)
		matched, _ := maximumWeightMatching(snap, unpacked)
		g.applyMatching(matched, round)
	}
}

// maximumWeightMatching runs the arc-sequence DP: ratings[i] is the best
// total weight achievable among arcs[0..i], choosing arcs so that no two
// chosen arcs are adjacent in the sequence (adjacent arcs in a path share a
// vertex, so picking both would violate the matching property).
func maximumWeightMatching(snap *graph.Snapshot, arcs []graph.ArcID) ([]graph.ArcID, int64) {
	k := len(arcs)
	if k == 0 {
		return nil, 0
	}
	if k == 1 {
		return []graph.ArcID{arcs[0]}, snap.Weight(arcs[0])
	}

	ratings := make([]int64, k)
	decision := make([]bool, k)
	decision[0] = true
	ratings[0] = snap.Weight(arcs[0])
	w1 := snap.Weight(arcs[1])
	decision[1] = w1 >= ratings[0]
	if decision[1] {
		ratings[1] = w1
	} else {
		ratings[1] = ratings[0]
	}

	for i := 2; i < k; i++ {
		w := snap.Weight(arcs[i])
		if w+ratings[i-2] > ratings[i-1] {
			decision[i] = true
			ratings[i] = w + ratings[i-2]
		} else {
			decision[i] = false
			ratings[i] = ratings[i-1]
		}
	}

	final := ratings[k-2]
	if decision[k-1] {
		final = ratings[k-1]
	}

	var matched []graph.ArcID
	for i := k - 1; i >= 0; {
		if decision[i] {
			matched = append(matched, arcs[i])
			i -= 2
		} else {
			i--
		}
	}
	return matched, final
}

func (g *Instance) applyMatching(matched []graph.ArcID, round matching.Color) {
	for _, a := range matched {
		_ = g.state.SetEdgeColor(a, round)
		g.matchedRound = append(g.matchedRound, a)
	}
}

// Deliver returns the total weight of the resulting matching.
func (g *Instance) Deliver() uint64 { return g.state.Deliver() }

// Name returns the full algorithm name, reflecting the configured
// improvement pass.
func (g *Instance) Name() string {
	base := "GPA"
	switch {
	case g.cfg.NumROMA > 0:
		base += " + ROMA"
	case g.cfg.Swaps && g.cfg.GlobalSwaps:
		base += " + global swaps"
	case g.cfg.Swaps:
		base += " + local swaps"
	}
	return base
}

// ShortName returns the compact identifier written to results CSV rows.
func (g *Instance) ShortName() string {
	base := "gpa"
	switch {
	case g.cfg.NumROMA > 0:
		base += "_roma"
	case g.cfg.Swaps && g.cfg.GlobalSwaps:
		base += "_swaps-global"
	case g.cfg.Swaps:
		base += "_swaps-local"
	}
	return base
}

// Threshold always returns 0: GPA has no weight threshold.
func (g *Instance) Threshold() float64 { return 0 }

// SanityCheck reports every invariant violation found in the resulting
// matching.
func (g *Instance) SanityCheck() []string { return g.state.SanityCheck() }
