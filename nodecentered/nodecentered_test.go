package nodecentered_test

import (
	"testing"

	"github.com/katalvlaran/bmatch/graph"
	"github.com/katalvlaran/bmatch/nodecentered"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeCenteredTrianglePicksHeaviestAnchoredAtTopVertex(t *testing.T) {
	b := graph.NewBuilder(3)
	_, err := b.AddArc(0, 1, 10)
	require.NoError(t, err)
	_, err = b.AddArc(1, 2, 20)
	require.NoError(t, err)
	_, err = b.AddArc(0, 2, 30)
	require.NoError(t, err)
	snap := b.Build()

	inst := nodecentered.New(nodecentered.Config{Aggregate: nodecentered.Sum})
	require.True(t, inst.Prepare(snap, 1))
	inst.Run()

	// Vertex 2 has the highest SUM key (20+30=50) and is processed first,
	// claiming its heaviest arc (0,2)=30; that saturates vertices 0 and 2
	// for the single color, leaving (0,1) and (1,2) uncolorable.
	assert.Equal(t, uint64(30), inst.Deliver())
}

func TestNodeCenteredStarUsesBothColorsAtHub(t *testing.T) {
	b := graph.NewBuilder(5)
	_, err := b.AddArc(0, 1, 10)
	require.NoError(t, err)
	_, err = b.AddArc(0, 2, 20)
	require.NoError(t, err)
	_, err = b.AddArc(0, 3, 30)
	require.NoError(t, err)
	_, err = b.AddArc(0, 4, 40)
	require.NoError(t, err)
	snap := b.Build()

	inst := nodecentered.New(nodecentered.Config{Aggregate: nodecentered.Sum})
	require.True(t, inst.Prepare(snap, 2))
	inst.Run()

	// The hub has the highest key and goes first, claiming its two
	// heaviest arcs (40 and 30) before any leaf vertex gets a turn.
	assert.Equal(t, uint64(70), inst.Deliver())
}

func TestNodeCenteredThresholdRecoversIsolatedLightEdge(t *testing.T) {
	b := graph.NewBuilder(4)
	_, err := b.AddArc(0, 1, 100)
	require.NoError(t, err)
	_, err = b.AddArc(2, 3, 10)
	require.NoError(t, err)
	snap := b.Build()

	inst := nodecentered.New(nodecentered.Config{Aggregate: nodecentered.Sum, Threshold: 0.5})
	require.True(t, inst.Prepare(snap, 1))
	inst.Run()

	// globalThreshold = 0.5*100 = 50; (2,3)=10 falls below it and is skipped
	// in the first pass, but its endpoints are never saturated by anything
	// else, so the second pass recovers it.
	assert.Equal(t, uint64(110), inst.Deliver())
}

func TestNodeCenteredMaxAggregateIgnoresSecondaryWeight(t *testing.T) {
	b := graph.NewBuilder(3)
	_, err := b.AddArc(0, 1, 5)
	require.NoError(t, err)
	_, err = b.AddArc(0, 2, 50)
	require.NoError(t, err)
	snap := b.Build()

	inst := nodecentered.New(nodecentered.Config{Aggregate: nodecentered.Max})
	require.True(t, inst.Prepare(snap, 1))
	inst.Run()

	assert.Equal(t, "node_centered-MAX", inst.Name())
	assert.Equal(t, uint64(50), inst.Deliver())
}

func TestNodeCenteredBSumCapsAtBudget(t *testing.T) {
	b := graph.NewBuilder(4)
	_, err := b.AddArc(0, 1, 10)
	require.NoError(t, err)
	_, err = b.AddArc(0, 2, 20)
	require.NoError(t, err)
	_, err = b.AddArc(0, 3, 30)
	require.NoError(t, err)
	snap := b.Build()

	inst := nodecentered.New(nodecentered.Config{Aggregate: nodecentered.BSum})
	require.True(t, inst.Prepare(snap, 2))
	inst.Run()

	assert.Equal(t, "NC-B_SUM", inst.ShortName())
	assert.Equal(t, uint64(50), inst.Deliver())
}
