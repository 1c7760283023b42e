package graph

import "errors"

// Sentinel errors for the graph package. Compare with errors.Is, never by
// string content.
var (
	// ErrVertexNotFound indicates a vertex id outside [0, NumVertices()).
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrArcNotFound indicates an arc id outside [0, NumArcs()).
	ErrArcNotFound = errors.New("graph: arc not found")

	// ErrNegativeWeight indicates an arc was offered a negative weight.
	ErrNegativeWeight = errors.New("graph: negative edge weight")
)

// VertexID is a dense, stable vertex identifier in [0, N).
type VertexID int

// ArcID is a dense, stable arc identifier in [0, M).
type ArcID int

// NoVertex is the sentinel VertexID meaning "no such vertex" (e.g. an
// unmatched mate slot).
const NoVertex VertexID = -1

// NoArc is the sentinel ArcID meaning "no such arc".
const NoArc ArcID = -1

// Arc is one unordered edge of the graph, stored once and exposed from
// both endpoints by the Snapshot's traversal methods. A weight of 0 means
// the edge carries no matching value; algorithms skip such arcs entirely.
type Arc struct {
	ID     ArcID
	Tail   VertexID
	Head   VertexID
	Weight int64
}

// Other returns the endpoint of a other than v. Callers only invoke this
// on arcs already known to be incident to v (degenerate self-loops, if
// ever produced by malformed input, return v itself).
func (a Arc) Other(v VertexID) VertexID {
	if v == a.Tail {
		return a.Head
	}
	return a.Tail
}
