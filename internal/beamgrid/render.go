package beamgrid

import (
	"context"
	"fmt"
	"strings"
)

// RenderEnergized draws energized cells as '#' and dark cells as '.'.
func RenderEnergized(g *Grid, tiles []bool) string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			if tiles[r*g.width+c] {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Heatmap counts, per cell (row-major), how many boundary entries energize it.
func Heatmap(ctx context.Context, g *Grid) ([]int, error) {
	heat := make([]int, g.width*g.height)
	for _, st := range EntryStates(g) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		tr, err := Trace(g, st)
		if err != nil {
			return nil, fmt.Errorf("heatmap entry %v: %w", st, err)
		}
		for i, lit := range tr.Tiles() {
			if lit {
				heat[i]++
			}
		}
	}
	return heat, nil
}
