package graph_test

import (
	"testing"

	"github.com/katalvlaran/bmatch/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangle(t *testing.T) (*graph.Snapshot, [3]graph.ArcID) {
	t.Helper()
	b := graph.NewBuilder(3)
	a1, err := b.AddArc(0, 1, 10)
	require.NoError(t, err)
	a2, err := b.AddArc(1, 2, 20)
	require.NoError(t, err)
	a3, err := b.AddArc(0, 2, 30)
	require.NoError(t, err)
	return b.Build(), [3]graph.ArcID{a1, a2, a3}
}

func TestSnapshotBasics(t *testing.T) {
	s, arcs := triangle(t)

	assert.Equal(t, 3, s.NumVertices())
	assert.Equal(t, 3, s.NumArcs())
	assert.Equal(t, int64(10), s.Weight(arcs[0]))
	assert.Equal(t, 2, s.Degree(0, false))
	assert.Equal(t, 2, s.Degree(1, false))

	found, ok := s.FindArc(0, 2)
	require.True(t, ok)
	assert.Equal(t, arcs[2], found)

	_, ok = s.FindArc(1, 1)
	assert.False(t, ok)
}

func TestSnapshotDeactivateHidesArc(t *testing.T) {
	s, arcs := triangle(t)

	s.Deactivate(arcs[0])
	assert.False(t, s.Active(arcs[0]))
	assert.Equal(t, 1, s.Degree(0, false))
	assert.Equal(t, 2, s.Degree(0, true))

	var seen []graph.ArcID
	s.ForEachIncident(0, func(a graph.ArcID) bool {
		seen = append(seen, a)
		return true
	})
	assert.NotContains(t, seen, arcs[0])

	s.Activate(arcs[0])
	assert.True(t, s.Active(arcs[0]))
	assert.Equal(t, 2, s.Degree(0, false))
}

func TestSnapshotForEachArcStopsEarly(t *testing.T) {
	s, _ := triangle(t)

	count := 0
	s.ForEachArc(func(graph.ArcID) bool {
		count++
		return count < 2
	})
	assert.Equal(t, 2, count)
}

func TestArcOther(t *testing.T) {
	a := graph.Arc{Tail: 1, Head: 2}
	assert.Equal(t, graph.VertexID(2), a.Other(1))
	assert.Equal(t, graph.VertexID(1), a.Other(2))
}

func TestBuilderRejectsNegativeWeight(t *testing.T) {
	b := graph.NewBuilder(2)
	_, err := b.AddArc(0, 1, -5)
	assert.ErrorIs(t, err, graph.ErrNegativeWeight)
}

func TestBuilderRejectsUnknownVertex(t *testing.T) {
	b := graph.NewBuilder(2)
	_, err := b.AddArc(0, 5, 1)
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
}
