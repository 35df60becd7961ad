package beamgrid

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderEnergizedExample(t *testing.T) {
	g := loadExample(t)
	tr, err := Trace(g, DefaultEntry)
	require.NoError(t, err)
	want, err := os.ReadFile("testdata/example_energized.txt")
	require.NoError(t, err)
	assert.Equal(t, string(want), RenderEnergized(g, tr.Tiles()))
}

func TestHeatmapMatchesScan(t *testing.T) {
	g := loadExample(t)
	heat, err := Heatmap(context.Background(), g)
	require.NoError(t, err)
	rep, err := Scan(context.Background(), g, ScanOptions{})
	require.NoError(t, err)

	sumHeat, sumCounts := 0, 0
	for _, h := range heat {
		assert.LessOrEqual(t, h, len(rep.Results))
		sumHeat += h
	}
	counts, err := rep.Counts()
	require.NoError(t, err)
	for _, c := range counts {
		sumCounts += c
	}
	assert.Equal(t, sumCounts, sumHeat)
}
