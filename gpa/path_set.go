package gpa

import "github.com/katalvlaran/bmatch/graph"

// pathSet is a disjoint collection of vertex-disjoint simple paths (and, once
// closed, cycles) over a fixed vertex set, built incrementally by repeatedly
// joining arcs whose endpoints are both still path endpoints. Every vertex
// starts out as its own singleton path; vertexToPath maps each path endpoint
// to the canonical vertex that represents its path (the vertex the path was
// first created with), so path-level fields (head, tail, length, active) are
// only ever read and written through that representative. Only endpoints are
// migrated when paths join: an interior vertex may keep an entry that points
// at an absorbed, inactive path.
type pathSet struct {
	snap *graph.Snapshot

	vertexToPath []graph.VertexID
	head         []graph.VertexID
	tail         []graph.VertexID
	length       []int
	active       []bool

	next []graph.VertexID
	prev []graph.VertexID

	nextEdge []graph.ArcID
	prevEdge []graph.ArcID

	numPaths int
}

func newPathSet(snap *graph.Snapshot) *pathSet {
	n := snap.NumVertices()
	ps := &pathSet{
		snap:         snap,
		vertexToPath: make([]graph.VertexID, n),
		head:         make([]graph.VertexID, n),
		tail:         make([]graph.VertexID, n),
		length:       make([]int, n),
		active:       make([]bool, n),
		next:         make([]graph.VertexID, n),
		prev:         make([]graph.VertexID, n),
		nextEdge:     make([]graph.ArcID, n),
		prevEdge:     make([]graph.ArcID, n),
		numPaths:     n,
	}
	for vi := 0; vi < n; vi++ {
		v := graph.VertexID(vi)
		ps.vertexToPath[v] = v
		ps.head[v] = v
		ps.tail[v] = v
		ps.active[v] = true
		ps.next[v] = v
		ps.prev[v] = v
		ps.nextEdge[v] = graph.NoArc
		ps.prevEdge[v] = graph.NoArc
	}
	return ps
}

func (ps *pathSet) canonical(v graph.VertexID) graph.VertexID { return ps.vertexToPath[v] }

func (ps *pathSet) Head(v graph.VertexID) graph.VertexID { return ps.head[ps.canonical(v)] }
func (ps *pathSet) Tail(v graph.VertexID) graph.VertexID { return ps.tail[ps.canonical(v)] }
func (ps *pathSet) Length(v graph.VertexID) int          { return ps.length[ps.canonical(v)] }
func (ps *pathSet) IsActive(v graph.VertexID) bool       { return ps.active[ps.canonical(v)] }

func (ps *pathSet) IsCycle(v graph.VertexID) bool {
	c := ps.canonical(v)
	return ps.tail[c] == ps.head[c] && ps.length[c] > 0
}

func (ps *pathSet) NextVertex(v graph.VertexID) graph.VertexID { return ps.next[v] }
func (ps *pathSet) PrevVertex(v graph.VertexID) graph.VertexID { return ps.prev[v] }
func (ps *pathSet) EdgeToNext(v graph.VertexID) graph.ArcID    { return ps.nextEdge[v] }
func (ps *pathSet) EdgeToPrev(v graph.VertexID) graph.ArcID    { return ps.prevEdge[v] }

func (ps *pathSet) isEndpoint(v graph.VertexID) bool {
	return ps.next[v] == v || ps.prev[v] == v
}

// addIfApplicable tries to fold arc a into the path set: if both of its
// endpoints are still path endpoints belonging to two different (non-cycle)
// paths, it joins them into one longer path; if they are the two endpoints
// of the same odd-length path, it closes that path into a cycle. It reports
// whether the arc was used.
func (ps *pathSet) addIfApplicable(a graph.ArcID) bool {
	arc := ps.snap.ArcAt(a)
	s, t := arc.Tail, arc.Head

	if !ps.isEndpoint(s) || !ps.isEndpoint(t) {
		return false
	}
	if ps.IsCycle(s) || ps.IsCycle(t) {
		return false
	}

	pathS := ps.canonical(s)
	pt := ps.canonical(t)

	if pathS != pt {
		ps.length[pathS] = ps.length[pathS] + ps.length[pt] + 1

		switch {
		case ps.head[pathS] == s && ps.head[pt] == t:
			ps.vertexToPath[ps.tail[pt]] = pathS
			ps.head[pathS] = ps.tail[pt]
		case ps.head[pathS] == s && ps.tail[pt] == t:
			ps.vertexToPath[ps.head[pt]] = pathS
			ps.head[pathS] = ps.head[pt]
		case ps.tail[pathS] == s && ps.head[pt] == t:
			ps.vertexToPath[ps.tail[pt]] = pathS
			ps.tail[pathS] = ps.tail[pt]
		case ps.tail[pathS] == s && ps.tail[pt] == t:
			ps.vertexToPath[ps.head[pt]] = pathS
			ps.tail[pathS] = ps.head[pt]
		}

		if ps.next[s] == s {
			ps.next[s] = t
			ps.nextEdge[s] = a
		} else {
			ps.prev[s] = t
			ps.prevEdge[s] = a
		}
		if ps.next[t] == t {
			ps.next[t] = s
			ps.nextEdge[t] = a
		} else {
			ps.prev[t] = s
			ps.prevEdge[t] = a
		}

		ps.active[pt] = false
		ps.numPaths--
		return true
	}

	if ps.length[pathS]%2 == 1 {
		ps.length[pathS]++
		h, tl := ps.head[pathS], ps.tail[pathS]

		if ps.next[h] == h {
			ps.next[h] = tl
			ps.nextEdge[h] = a
		} else {
			ps.prev[h] = tl
			ps.prevEdge[h] = a
		}
		if ps.next[tl] == tl {
			ps.next[tl] = h
			ps.nextEdge[tl] = a
		} else {
			ps.prev[tl] = h
			ps.prevEdge[tl] = a
		}

		ps.tail[pathS] = h
		return true
	}

	return false
}

// unpackPath linearizes the path (or cycle) owning root into its sequence
// of connecting arcs, walking from its tail toward its head (for a cycle,
// starting one step past the tail since tail and head coincide there).
func unpackPath(ps *pathSet, root graph.VertexID) []graph.ArcID {
	head := ps.Head(root)
	prevV := ps.Tail(root)
	current := prevV

	var out []graph.ArcID
	if prevV == head {
		current = ps.NextVertex(prevV)
		out = append(out, ps.EdgeToNext(prevV))
	}

	for current != head {
		var next graph.VertexID
		var e graph.ArcID
		if ps.NextVertex(current) == prevV {
			next = ps.PrevVertex(current)
			e = ps.EdgeToPrev(current)
		} else {
			next = ps.NextVertex(current)
			e = ps.EdgeToNext(current)
		}
		out = append(out, e)
		prevV = current
		current = next
	}
	return out
}
