package graph

// Snapshot is an immutable undirected, integer-weighted multigraph, indexed
// by dense vertex and arc ids. It is built once via Builder and is
// read-only thereafter, except for arc activation state: Deactivate/Activate
// hide/reveal an arc from traversal and Degree without ever renumbering
// vertices or arcs. This is the one piece of "mutable" state the matching
// algorithms are allowed to touch on a shared Snapshot, and each algorithm
// restores it before Run returns.
type Snapshot struct {
	arcs   []Arc
	active []bool

	// outgoing[v]/incoming[v] list every arc where v is Tail/Head
	// respectively, in insertion order, including currently-deactivated
	// arcs (filtered out lazily by the ForEach* visitors below).
	outgoing [][]ArcID
	incoming [][]ArcID

	degreeActive []int
	degreeTotal  []int
}

// NumVertices returns N, the number of vertices in [0, N).
func (s *Snapshot) NumVertices() int { return len(s.outgoing) }

// NumArcs returns M, the number of arcs in [0, M).
func (s *Snapshot) NumArcs() int { return len(s.arcs) }

// ArcAt returns the arc with the given id. Panics if id is out of range,
// since arc ids are only ever obtained from this Snapshot's own iteration
// and lookup methods.
func (s *Snapshot) ArcAt(a ArcID) Arc { return s.arcs[a] }

// Weight returns the weight of arc a.
func (s *Snapshot) Weight(a ArcID) int64 { return s.arcs[a].Weight }

// Tail returns the tail endpoint of arc a.
func (s *Snapshot) Tail(a ArcID) VertexID { return s.arcs[a].Tail }

// Head returns the head endpoint of arc a.
func (s *Snapshot) Head(a ArcID) VertexID { return s.arcs[a].Head }

// Other returns the endpoint of a other than v.
func (s *Snapshot) Other(a ArcID, v VertexID) VertexID { return s.arcs[a].Other(v) }

// Active reports whether arc a is currently visible to traversal.
func (s *Snapshot) Active(a ArcID) bool { return s.active[a] }

// Deactivate hides a from all traversal and Degree(v, false) until
// reactivated. A no-op if a is already inactive.
//
// Complexity: O(1).
func (s *Snapshot) Deactivate(a ArcID) {
	if !s.active[a] {
		return
	}
	s.active[a] = false
	arc := s.arcs[a]
	s.degreeActive[arc.Tail]--
	s.degreeActive[arc.Head]--
}

// Activate reverses a prior Deactivate. A no-op if a is already active.
//
// Complexity: O(1).
func (s *Snapshot) Activate(a ArcID) {
	if s.active[a] {
		return
	}
	s.active[a] = true
	arc := s.arcs[a]
	s.degreeActive[arc.Tail]++
	s.degreeActive[arc.Head]++
}

// Degree returns the number of arcs incident to v. If includeDeactivated
// is false (the common case), deactivated arcs are excluded.
//
// Complexity: O(1).
func (s *Snapshot) Degree(v VertexID, includeDeactivated bool) int {
	if includeDeactivated {
		return s.degreeTotal[v]
	}
	return s.degreeActive[v]
}

// FindArc returns any active arc between u and v, and whether one exists.
//
// Complexity: O(deg(u)).
func (s *Snapshot) FindArc(u, v VertexID) (ArcID, bool) {
	var found ArcID
	ok := false
	s.ForEachIncident(u, func(a ArcID) bool {
		if s.arcs[a].Other(u) == v {
			found, ok = a, true
			return false
		}
		return true
	})
	return found, ok
}

// ForEachArc visits every active arc exactly once, in ascending id order.
// The visitor returns false to stop iteration early.
func (s *Snapshot) ForEachArc(visit func(ArcID) bool) {
	for id := range s.arcs {
		a := ArcID(id)
		if s.active[a] {
			if !visit(a) {
				return
			}
		}
	}
}

// ForEachOutgoing visits every active arc with Tail==v, in insertion order.
func (s *Snapshot) ForEachOutgoing(v VertexID, visit func(ArcID) bool) {
	for _, a := range s.outgoing[v] {
		if s.active[a] {
			if !visit(a) {
				return
			}
		}
	}
}

// ForEachIncoming visits every active arc with Head==v, in insertion order.
func (s *Snapshot) ForEachIncoming(v VertexID, visit func(ArcID) bool) {
	for _, a := range s.incoming[v] {
		if s.active[a] {
			if !visit(a) {
				return
			}
		}
	}
}

// ForEachIncident visits every active arc touching v, outgoing first then
// incoming, matching the scanning order the swap kernel relies on.
func (s *Snapshot) ForEachIncident(v VertexID, visit func(ArcID) bool) {
	stop := false
	s.ForEachOutgoing(v, func(a ArcID) bool {
		if !visit(a) {
			stop = true
			return false
		}
		return true
	})
	if stop {
		return
	}
	s.ForEachIncoming(v, visit)
}
