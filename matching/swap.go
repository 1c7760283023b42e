package matching

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/bmatch/graph"
)

// Swap attempts the single-edge 1-for-2 replacement: arc a, currently
// colored round, is uncolored and replaced by two currently-Uncolored arcs
// L and R — L incident to a.Tail, R incident to a.Head — chosen so their
// combined weight exceeds w(a). L is the heaviest Uncolored candidate at
// a.Tail whose far endpoint is free in round; R is the heaviest such
// candidate at a.Head whose far endpoint is both free in round and
// distinct from L's far endpoint (rejecting a triangle replacement). It
// reports whether a replacement was made.
//
// Scanning order matches the shared contract: outgoing then incoming of
// a.Tail, then outgoing then incoming of a.Head.
func (s *State) Swap(a graph.ArcID, round Color) bool {
	arc := s.snap.ArcAt(a)
	p, q := arc.Tail, arc.Head

	var bestL, bestR graph.ArcID = graph.NoArc, graph.NoArc
	var bestLWeight, bestRWeight int64
	var uPrime graph.VertexID = graph.NoVertex

	considerL := func(cand graph.ArcID) bool {
		if cand == a || s.edgeColor[cand] != Uncolored {
			return true
		}
		other := s.snap.Other(cand, p)
		if s.mate[round][other] != graph.NoVertex {
			return true
		}
		if w := s.snap.Weight(cand); w > bestLWeight {
			bestL, bestLWeight, uPrime = cand, w, other
		}
		return true
	}
	s.snap.ForEachOutgoing(p, considerL)
	s.snap.ForEachIncoming(p, considerL)

	if bestL == graph.NoArc {
		return false
	}

	considerR := func(cand graph.ArcID) bool {
		if cand == a || s.edgeColor[cand] != Uncolored {
			return true
		}
		other := s.snap.Other(cand, q)
		if other == uPrime {
			// would unmatch one edge of a triangle for the other two.
			return true
		}
		if s.mate[round][other] != graph.NoVertex {
			return true
		}
		if w := s.snap.Weight(cand); w > bestRWeight {
			bestR, bestRWeight = cand, w
		}
		return true
	}
	s.snap.ForEachOutgoing(q, considerR)
	s.snap.ForEachIncoming(q, considerR)

	if bestR == graph.NoArc {
		return false
	}
	if bestLWeight+bestRWeight <= arc.Weight {
		return false
	}

	s.UnsetEdgeColor(a)
	_ = s.SetEdgeColor(bestL, round)
	_ = s.SetEdgeColor(bestR, round)
	return true
}

// LocalSwap attempts Swap on every arc matched in round during the current
// construction round, visiting matchedThisRound in forward order or, when
// reverseSort is set, back to front. It returns whether any swap succeeded.
func (s *State) LocalSwap(matchedThisRound []graph.ArcID, round Color, reverseSort bool) bool {
	succ := false
	n := len(matchedThisRound)
	for i := 0; i < n; i++ {
		idx := i
		if reverseSort {
			idx = n - 1 - i
		}
		if s.Swap(matchedThisRound[idx], round) {
			succ = true
		}
	}
	return succ
}

// GlobalSwap runs once all b matchings exist: every colored arc is
// collected and sorted by weight (descending, or ascending when
// reverseSort is set), and for each a color free at both of its endpoints
// is computed; if one exists, Swap is attempted with that color as the
// target round. It returns whether any swap succeeded.
func (s *State) GlobalSwap(reverseSort bool) bool {
	var arcs []graph.ArcID
	s.snap.ForEachArc(func(a graph.ArcID) bool {
		if s.edgeColor[a] != Uncolored {
			arcs = append(arcs, a)
		}
		return true
	})

	sort.Slice(arcs, func(i, j int) bool {
		wi, wj := s.snap.Weight(arcs[i]), s.snap.Weight(arcs[j])
		if reverseSort {
			return wi < wj
		}
		return wi > wj
	})

	succ := false
	for _, a := range arcs {
		arc := s.snap.ArcAt(a)
		round := s.MatchingFreeColor(arc.Tail, arc.Head)
		if int(round) >= s.b {
			continue
		}
		if s.Swap(a, round) {
			succ = true
		}
	}
	return succ
}

// ROMA is the GPA-only iterated local-improvement pass: starting from a
// shuffled vertex order, it repeatedly attempts Swap on each vertex's
// current mate in round, restricting each following iteration to the
// vertices touched by a successful swap, for up to maxIter iterations or
// until no vertex changes. It returns whether any swap succeeded.
func (s *State) ROMA(vertices []graph.VertexID, round Color, maxIter int, rng *rand.Rand) bool {
	shuffled := make([]graph.VertexID, len(vertices))
	copy(shuffled, vertices)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	succ := false
	current := shuffled
	var changed []graph.VertexID

	for l := 0; len(current) > 0 && l < maxIter; l++ {
		for _, v := range current {
			a, ok := s.ArcToMate(round, v)
			if !ok {
				continue
			}
			arc := s.snap.ArcAt(a)
			p, q := arc.Tail, arc.Head
			if s.Swap(a, round) {
				succ = true
				changed = append(changed, p, q, s.mate[round][p], s.mate[round][q])
			}
		}
		current, changed = changed, nil
	}
	return succ
}
