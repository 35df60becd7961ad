package beamgrid

import (
	"fmt"
)

// Traversal is the outcome of walking one beam from Start until every branch
// has either left the grid or reached a state it had already visited.
type Traversal struct {
	Start   State
	Visited *StateSet
	Exits   *StateSet // nil unless produced by TraceExits

	tiles     []bool
	energized int
}

// Energized returns the number of distinct cells the beam touched.
func (t *Traversal) Energized() int { return t.energized }

// Tiles returns the row-major per-cell energized bitmap. It must not be modified.
func (t *Traversal) Tiles() []bool { return t.tiles }

// Trace walks the beam entering at start and returns every state it reaches.
func Trace(g *Grid, start State) (*Traversal, error) {
	return walk(g, start, false)
}

// TraceExits is Trace that also records each state at which a branch leaves
// the grid, keyed by the direction it leaves in.
func TraceExits(g *Grid, start State) (*Traversal, error) {
	return walk(g, start, true)
}

func walk(g *Grid, start State, trackExits bool) (*Traversal, error) {
	if !g.InBounds(start.Pos) || int(start.Dir) >= numDirs {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}
	tr := &Traversal{Start: start, Visited: NewStateSet(g)}
	mode := "plain"
	if trackExits {
		tr.Exits = NewStateSet(g)
		mode = "exits"
	}

	stack := []State{start}
	for len(stack) > 0 {
		st := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !tr.Visited.Add(st) {
			if Debug {
				logBeam(Loop, st)
			}
			continue
		}
		tile := g.At(st.Pos)
		outs, err := Deflect(tile, st.Dir)
		if err != nil {
			return nil, &InvalidTileError{Tile: tile, Pos: st.Pos, HasPos: true}
		}
		if Debug {
			logBeam(classify(tile, outs), st)
		}
		// push in reverse so the first outgoing branch is walked first
		for i := len(outs) - 1; i >= 0; i-- {
			d := outs[i]
			next, ok := g.Neighbor(st.Pos, d)
			if !ok {
				if trackExits {
					tr.Exits.Add(State{Pos: st.Pos, Dir: d})
				}
				if Debug {
					logBeam(Exit, State{Pos: st.Pos, Dir: d})
				}
				continue
			}
			stack = append(stack, State{Pos: next, Dir: d})
		}
	}

	tr.tiles, tr.energized = tr.Visited.Positions()
	traversalsTotal.WithLabelValues(mode).Inc()
	energizedTiles.Observe(float64(tr.energized))
	return tr, nil
}
