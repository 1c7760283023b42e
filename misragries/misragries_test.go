package misragries_test

import (
	"testing"

	"github.com/katalvlaran/bmatch/graph"
	"github.com/katalvlaran/bmatch/matching"
	"github.com/katalvlaran/bmatch/misragries"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertProperColoring(t *testing.T, snap *graph.Snapshot, color func(graph.ArcID) matching.Color) {
	t.Helper()
	seen := map[graph.VertexID]map[matching.Color]bool{}
	snap.ForEachArc(func(a graph.ArcID) bool {
		c := color(a)
		require.NotEqual(t, matching.Uncolored, c, "arc %d left uncolored", a)
		arc := snap.ArcAt(a)
		for _, v := range []graph.VertexID{arc.Tail, arc.Head} {
			if seen[v] == nil {
				seen[v] = map[matching.Color]bool{}
			}
			assert.False(t, seen[v][c], "vertex %d sees color %d twice", v, c)
			seen[v][c] = true
		}
		return true
	})
}

func TestMisraGriesTriangleNeedsThreeColors(t *testing.T) {
	b := graph.NewBuilder(3)
	_, err := b.AddArc(0, 1, 1)
	require.NoError(t, err)
	_, err = b.AddArc(1, 2, 1)
	require.NoError(t, err)
	_, err = b.AddArc(0, 2, 1)
	require.NoError(t, err)
	snap := b.Build()

	m := misragries.New()
	m.Run(snap)

	assert.Equal(t, 3, m.NumColors())
	assertProperColoring(t, snap, m.EdgeColor)
}

func TestMisraGriesStarUsesDegreeManyColors(t *testing.T) {
	b := graph.NewBuilder(5)
	for leaf := graph.VertexID(1); leaf <= 4; leaf++ {
		_, err := b.AddArc(0, leaf, int64(leaf))
		require.NoError(t, err)
	}
	snap := b.Build()

	m := misragries.New()
	m.Run(snap)

	assert.LessOrEqual(t, m.NumColors(), 5)
	assertProperColoring(t, snap, m.EdgeColor)
}

func TestMisraGriesApplyToPopulatesState(t *testing.T) {
	b := graph.NewBuilder(3)
	a01, err := b.AddArc(0, 1, 1)
	require.NoError(t, err)
	a12, err := b.AddArc(1, 2, 1)
	require.NoError(t, err)
	a02, err := b.AddArc(0, 2, 1)
	require.NoError(t, err)
	snap := b.Build()

	m := misragries.New()
	m.Run(snap)

	state := matching.NewState(snap, m.NumColors())
	require.NoError(t, m.ApplyTo(state))
	assert.Empty(t, state.SanityCheck())
	assert.Equal(t, uint64(3), state.Deliver())

	_, _, _ = a01, a12, a02
}

func TestMisraGriesRespectsFixedMaxDegree(t *testing.T) {
	b := graph.NewBuilder(3)
	_, err := b.AddArc(0, 1, 1)
	require.NoError(t, err)
	_, err = b.AddArc(1, 2, 1)
	require.NoError(t, err)
	snap := b.Build()

	m := misragries.New()
	m.SetMaxDegree(5)
	m.Run(snap)

	assertProperColoring(t, snap, m.EdgeColor)
}
