package matching_test

import (
	"testing"

	"github.com/katalvlaran/bmatch/graph"
	"github.com/katalvlaran/bmatch/matching"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangle(t *testing.T) (*graph.Snapshot, [3]graph.ArcID) {
	t.Helper()
	b := graph.NewBuilder(3)
	a01, err := b.AddArc(0, 1, 10)
	require.NoError(t, err)
	a12, err := b.AddArc(1, 2, 20)
	require.NoError(t, err)
	a02, err := b.AddArc(0, 2, 30)
	require.NoError(t, err)
	return b.Build(), [3]graph.ArcID{a01, a12, a02}
}

func TestSetEdgeColorAndMate(t *testing.T) {
	snap, arcs := triangle(t)
	s := matching.NewState(snap, 2)

	require.NoError(t, s.SetEdgeColor(arcs[0], 0))
	assert.Equal(t, matching.Color(0), s.EdgeColor(arcs[0]))
	assert.Equal(t, graph.VertexID(1), s.Mate(0, 0))
	assert.Equal(t, graph.VertexID(0), s.Mate(0, 1))
	assert.Equal(t, uint64(10), s.Deliver())
}

func TestSetEdgeColorRejectsDoubleColoring(t *testing.T) {
	snap, arcs := triangle(t)
	s := matching.NewState(snap, 2)

	require.NoError(t, s.SetEdgeColor(arcs[0], 0))
	assert.ErrorIs(t, s.SetEdgeColor(arcs[0], 0), matching.ErrAlreadyColored)
}

func TestSetEdgeColorRejectsSaturatedEndpoint(t *testing.T) {
	snap, arcs := triangle(t)
	s := matching.NewState(snap, 2)

	require.NoError(t, s.SetEdgeColor(arcs[0], 0)) // 0-1 colored 0
	// arcs[2] is 0-2; vertex 0 already has a mate in color 0.
	assert.ErrorIs(t, s.SetEdgeColor(arcs[2], 0), matching.ErrEndpointSaturated)
}

func TestSetEdgeColorRejectsInvalidColor(t *testing.T) {
	snap, arcs := triangle(t)
	s := matching.NewState(snap, 1)
	assert.ErrorIs(t, s.SetEdgeColor(arcs[0], 1), matching.ErrInvalidColor)
}

func TestUnsetEdgeColorClearsMates(t *testing.T) {
	snap, arcs := triangle(t)
	s := matching.NewState(snap, 1)

	require.NoError(t, s.SetEdgeColor(arcs[0], 0))
	s.UnsetEdgeColor(arcs[0])

	assert.Equal(t, matching.Uncolored, s.EdgeColor(arcs[0]))
	assert.Equal(t, graph.NoVertex, s.Mate(0, 0))
	assert.Equal(t, graph.NoVertex, s.Mate(0, 1))
	assert.Equal(t, uint64(0), s.Deliver())
}

func TestUnsetEdgeColorLeavesReassignedMateAlone(t *testing.T) {
	snap, arcs := triangle(t)
	s := matching.NewState(snap, 1)

	require.NoError(t, s.SetEdgeColor(arcs[0], 0)) // 0-1
	s.UnsetEdgeColor(arcs[0])
	require.NoError(t, s.SetEdgeColor(arcs[2], 0)) // 0-2, reuses vertex 0's slot

	// Unsetting the already-superseded arcs[0] again is a no-op since it
	// is already Uncolored; arcs[2]'s mate entries must survive.
	s.UnsetEdgeColor(arcs[0])
	assert.Equal(t, graph.VertexID(2), s.Mate(0, 0))
}

func TestMatchingFreeColor(t *testing.T) {
	snap, arcs := triangle(t)
	s := matching.NewState(snap, 2)

	require.NoError(t, s.SetEdgeColor(arcs[0], 0)) // 0-1 colored 0
	assert.Equal(t, matching.Color(1), s.MatchingFreeColor(0, 2))
	assert.Equal(t, matching.Color(1), s.MatchingFreeColor(0, 1))
}

func TestSanityCheckCleanState(t *testing.T) {
	snap, arcs := triangle(t)
	s := matching.NewState(snap, 2)
	require.NoError(t, s.SetEdgeColor(arcs[0], 0))
	require.NoError(t, s.SetEdgeColor(arcs[1], 1))
	assert.Empty(t, s.SanityCheck())
}
