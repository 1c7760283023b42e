package bgreedy_test

import (
	"testing"

	"github.com/katalvlaran/bmatch/bgreedy"
	"github.com/katalvlaran/bmatch/graph"
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

func TestBGreedyColorTriangleSingleColor(t *testing.T) {
	snap := weightedTriangle(t, 10, 20, 30)

	inst := bgreedy.New(bgreedy.Config{})
	require.True(t, inst.Prepare(snap, 1))
	inst.Run()

	assert.Equal(t, uint64(30), inst.Deliver())
}

func TestBGreedyColorGlobalSwapsNoImprovementOnTriangle(t *testing.T) {
	snap := weightedTriangle(t, 10, 20, 30)

	inst := bgreedy.New(bgreedy.Config{GlobalSwaps: true})
	require.True(t, inst.Prepare(snap, 1))
	inst.Run()

	// A triangle replacement is always rejected (it would require reusing
	// an endpoint on both sides), so global swaps can't improve on 30.
	assert.Equal(t, uint64(30), inst.Deliver())
}

func TestBGreedyColorDropsLightestColorClass(t *testing.T) {
	snap := weightedTriangle(t, 5, 5, 5)

	inst := bgreedy.New(bgreedy.Config{})
	require.True(t, inst.Prepare(snap, 2))
	inst.Run()

	// All three triangle edges enter H at b=2; misragries needs 3 colors
	// for an odd cycle, one more than the budget, so the lightest class
	// (here a tie, broken toward the first color) is dropped.
	assert.Equal(t, uint64(10), inst.Deliver())
}

func TestBGreedyExtendReachesSameBoundOnTriangle(t *testing.T) {
	snap := weightedTriangle(t, 5, 5, 5)

	inst := bgreedy.New(bgreedy.Config{Extend: true})
	require.True(t, inst.Prepare(snap, 2))
	inst.Run()

	assert.Equal(t, uint64(10), inst.Deliver())
}

func TestBGreedyExtendRequiresAtLeastTwoColors(t *testing.T) {
	inst := bgreedy.New(bgreedy.Config{Extend: true})
	snap := weightedTriangle(t, 1, 1, 1)
	assert.False(t, inst.Prepare(snap, 1))
}
