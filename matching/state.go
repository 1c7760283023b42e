package matching

import (
	"fmt"

	"github.com/katalvlaran/bmatch/graph"
)

// State is the per-algorithm-instance bookkeeping shared by every matching
// heuristic: which color (if any) each arc carries, who each vertex is
// matched to in each color, and the running total weight. It holds no
// reference to any particular algorithm and is always driven externally,
// via SetEdgeColor/UnsetEdgeColor, by the algorithm embedding it.
type State struct {
	b    int
	snap *graph.Snapshot

	edgeColor []Color

	// mate[c][v] is the vertex v is matched to in color c, or
	// graph.NoVertex if v is free in that color.
	mate [][]graph.VertexID

	// arcToMate[c][v] is the arc realizing mate[c][v], or graph.NoArc.
	arcToMate [][]graph.ArcID

	totalWeight uint64
}

// NewState allocates a State over snap with b available colors. All arcs
// start Uncolored and all vertices start free in every color.
func NewState(snap *graph.Snapshot, b int) *State {
	n := snap.NumVertices()
	m := snap.NumArcs()

	edgeColor := make([]Color, m)
	for i := range edgeColor {
		edgeColor[i] = Uncolored
	}

	mate := make([][]graph.VertexID, b)
	arcToMate := make([][]graph.ArcID, b)
	for c := 0; c < b; c++ {
		mate[c] = make([]graph.VertexID, n)
		arcToMate[c] = make([]graph.ArcID, n)
		for v := 0; v < n; v++ {
			mate[c][v] = graph.NoVertex
			arcToMate[c][v] = graph.NoArc
		}
	}

	return &State{
		b:         b,
		snap:      snap,
		edgeColor: edgeColor,
		mate:      mate,
		arcToMate: arcToMate,
	}
}

// B returns the number of available colors.
func (s *State) B() int { return s.b }

// Snapshot returns the graph this state was built over.
func (s *State) Snapshot() *graph.Snapshot { return s.snap }

// EdgeColor returns the color currently assigned to arc a, or Uncolored.
func (s *State) EdgeColor(a graph.ArcID) Color { return s.edgeColor[a] }

// Mate returns the vertex v is matched to in color c, or graph.NoVertex.
func (s *State) Mate(c Color, v graph.VertexID) graph.VertexID { return s.mate[c][v] }

// ArcToMate returns the arc realizing v's mate in color c, and whether v
// has a mate in that color at all.
func (s *State) ArcToMate(c Color, v graph.VertexID) (graph.ArcID, bool) {
	a := s.arcToMate[c][v]
	return a, a != graph.NoArc
}

// MatchingFreeColor returns the smallest color in [0,b) free at both u and
// v, or Color(b) if none exists.
func (s *State) MatchingFreeColor(u, v graph.VertexID) Color {
	for c := 0; c < s.b; c++ {
		if s.mate[c][u] == graph.NoVertex && s.mate[c][v] == graph.NoVertex {
			return Color(c)
		}
	}
	return Color(s.b)
}

// SetEdgeColor assigns color c to arc a. Requires a to be currently
// Uncolored and both of its endpoints to be free in c.
func (s *State) SetEdgeColor(a graph.ArcID, c Color) error {
	if int(c) < 0 || int(c) >= s.b {
		return fmt.Errorf("%w: %d", ErrInvalidColor, c)
	}
	if s.edgeColor[a] != Uncolored {
		return ErrAlreadyColored
	}
	arc := s.snap.ArcAt(a)
	if s.mate[c][arc.Tail] != graph.NoVertex || s.mate[c][arc.Head] != graph.NoVertex {
		return ErrEndpointSaturated
	}

	s.mate[c][arc.Tail] = arc.Head
	s.mate[c][arc.Head] = arc.Tail
	s.arcToMate[c][arc.Tail] = a
	s.arcToMate[c][arc.Head] = a
	s.edgeColor[a] = c
	s.totalWeight += uint64(arc.Weight)
	return nil
}

// UnsetEdgeColor removes a's color assignment, if any. If an endpoint's
// mate entry for that color no longer points at a (the color slot was
// already reused by a different arc at that endpoint), that entry is left
// untouched.
func (s *State) UnsetEdgeColor(a graph.ArcID) {
	c := s.edgeColor[a]
	if c == Uncolored {
		return
	}
	arc := s.snap.ArcAt(a)

	if s.arcToMate[c][arc.Tail] == a {
		s.mate[c][arc.Tail] = graph.NoVertex
		s.arcToMate[c][arc.Tail] = graph.NoArc
	}
	if s.arcToMate[c][arc.Head] == a {
		s.mate[c][arc.Head] = graph.NoVertex
		s.arcToMate[c][arc.Head] = graph.NoArc
	}

	s.totalWeight -= uint64(arc.Weight)
	s.edgeColor[a] = Uncolored
}

// Deliver returns the total weight of all currently colored arcs.
func (s *State) Deliver() uint64 { return s.totalWeight }

// SanityCheck returns a human-readable description of every b-matching
// invariant violation found: a vertex with two distinct mates in the same
// color, a mate pointer whose arc disagrees with the recorded color, or a
// total weight that doesn't match the sum of colored arcs. An empty slice
// means the state is consistent.
func (s *State) SanityCheck() []string {
	var problems []string

	degree := make([][]int, s.b)
	for c := 0; c < s.b; c++ {
		degree[c] = make([]int, s.snap.NumVertices())
	}

	var sum uint64
	s.snap.ForEachArc(func(a graph.ArcID) bool {
		c := s.edgeColor[a]
		if c == Uncolored {
			return true
		}
		arc := s.snap.ArcAt(a)
		sum += uint64(arc.Weight)
		degree[c][arc.Tail]++
		degree[c][arc.Head]++

		if s.mate[c][arc.Tail] != arc.Head || s.mate[c][arc.Head] != arc.Tail {
			problems = append(problems, fmt.Sprintf(
				"arc %d colored %d but mate pointers disagree", a, c))
		}
		return true
	})

	for c := 0; c < s.b; c++ {
		for v := 0; v < s.snap.NumVertices(); v++ {
			if degree[c][v] > 1 {
				problems = append(problems, fmt.Sprintf(
					"vertex %d has %d arcs colored %d, expected at most 1", v, degree[c][v], c))
			}
		}
	}

	if sum != s.totalWeight {
		problems = append(problems, fmt.Sprintf(
			"total weight %d disagrees with sum of colored arcs %d", s.totalWeight, sum))
	}

	return problems
}
