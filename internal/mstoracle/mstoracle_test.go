package mstoracle_test

import (
	"testing"

	"github.com/slink-go/slink/data"
	"github.com/slink-go/slink/internal/mstoracle"
	"github.com/slink-go/slink/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func points(t *testing.T, pts [][]float64, dim int) data.Points {
	t.Helper()
	buf := make([]float64, 0, len(pts)*dim)
	for _, p := range pts {
		buf = append(buf, p...)
	}
	pd, err := data.NewLinearized(buf, len(pts), dim, dim)
	require.NoError(t, err)
	return pd
}

func TestMergeHeights_UnitSquare(t *testing.T) {
	pd := points(t, [][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, 2)
	_, dist := kernel.Select(kernel.Scalar)
	heights := mstoracle.MergeHeights(pd, dist)
	require.Len(t, heights, 3)
	for _, h := range heights {
		assert.InDelta(t, 1.0, h, 1e-9)
	}
}

func TestMergeHeights_SinglePointEmpty(t *testing.T) {
	pd := points(t, [][]float64{{0, 0}}, 2)
	_, dist := kernel.Select(kernel.Scalar)
	assert.Empty(t, mstoracle.MergeHeights(pd, dist))
}

func TestMergeHeights_TwoPoints(t *testing.T) {
	pd := points(t, [][]float64{{0, 0}, {3, 4}}, 2)
	_, dist := kernel.Select(kernel.Scalar)
	heights := mstoracle.MergeHeights(pd, dist)
	require.Len(t, heights, 1)
	assert.InDelta(t, 5.0, heights[0], 1e-9)
}
