package kedgecoloring_test

import (
	"testing"

	"github.com/katalvlaran/bmatch/graph"
	"github.com/katalvlaran/bmatch/kedgecoloring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weightedTriangle(t *testing.T, w01, w12, w02 int64) *graph.Snapshot {
	t.Helper()
	b := graph.NewBuilder(3)
	_, err := b.AddArc(0, 1, w01)
	require.NoError(t, err)
	_, err = b.AddArc(1, 2, w12)
	require.NoError(t, err)
	_, err = b.AddArc(0, 2, w02)
	require.NoError(t, err)
	return b.Build()
}

func TestKEdgeColoringCommonColorPicksHeaviestArcFirst(t *testing.T) {
	snap := weightedTriangle(t, 10, 20, 30)

	inst := kedgecoloring.New(kedgecoloring.Config{CommonColor: true})
	require.True(t, inst.Prepare(snap, 1))
	inst.Run()

	assert.Equal(t, uint64(30), inst.Deliver())
}

func TestKEdgeColoringBudgetLimitsTriangleToTwoColors(t *testing.T) {
	snap := weightedTriangle(t, 5, 5, 5)

	inst := kedgecoloring.New(kedgecoloring.Config{CommonColor: true})
	require.True(t, inst.Prepare(snap, 2))
	inst.Run()

	// Only 2 of the triangle's 3 edges can be properly colored with a
	// budget of 2 colors; the third is left uncolored.
	assert.Equal(t, uint64(10), inst.Deliver())
}

func TestKEdgeColoringFanRotationWithoutCommonColor(t *testing.T) {
	// A 4-cycle: with b=2 every edge should be colorable since the graph
	// is bipartite and 2-regular.
	b := graph.NewBuilder(4)
	_, err := b.AddArc(0, 1, 4)
	require.NoError(t, err)
	_, err = b.AddArc(1, 2, 3)
	require.NoError(t, err)
	_, err = b.AddArc(2, 3, 2)
	require.NoError(t, err)
	_, err = b.AddArc(3, 0, 1)
	require.NoError(t, err)
	snap := b.Build()

	inst := kedgecoloring.New(kedgecoloring.Config{})
	require.True(t, inst.Prepare(snap, 2))
	inst.Run()

	assert.Equal(t, uint64(10), inst.Deliver())
}

func TestKEdgeColoringLightestColorRunsWithoutPanicking(t *testing.T) {
	snap := weightedTriangle(t, 1, 2, 3)

	inst := kedgecoloring.New(kedgecoloring.Config{CommonColor: true, LightestColor: true, RotateLong: true})
	require.True(t, inst.Prepare(snap, 2))
	inst.Run()

	assert.GreaterOrEqual(t, inst.Deliver(), uint64(3))
}
