package beamgrid

import "fmt"

// State is a beam at Pos heading in Dir.
type State struct {
	Pos Position
	Dir Direction
}

func (s State) String() string { return fmt.Sprintf("%v %v", s.Pos, s.Dir) }

// StateSet is a set of beam states on one grid, stored as a dense bitmap
// over height*width*4 slots.
type StateSet struct {
	width, height int
	bits          []bool
	n             int
}

// NewStateSet returns an empty set sized for g.
func NewStateSet(g *Grid) *StateSet {
	return &StateSet{
		width:  g.width,
		height: g.height,
		bits:   make([]bool, g.width*g.height*numDirs),
	}
}

func (s *StateSet) slot(st State) int {
	return (st.Pos.Row*s.width+st.Pos.Col)*numDirs + int(st.Dir)
}

// Add inserts st and reports whether it was not already present.
func (s *StateSet) Add(st State) bool {
	i := s.slot(st)
	if s.bits[i] {
		return false
	}
	s.bits[i] = true
	s.n++
	return true
}

// Has reports whether st is in the set.
func (s *StateSet) Has(st State) bool { return s.bits[s.slot(st)] }

// Len returns the number of states in the set.
func (s *StateSet) Len() int { return s.n }

// States lists members in row-major order, directions in canonical order.
func (s *StateSet) States() []State {
	out := make([]State, 0, s.n)
	for i, ok := range s.bits {
		if !ok {
			continue
		}
		cell := i / numDirs
		out = append(out, State{
			Pos: Position{cell / s.width, cell % s.width},
			Dir: Direction(i % numDirs),
		})
	}
	return out
}

// Positions returns a per-cell bitmap (row-major) of cells touched by any state,
// and how many cells are set.
func (s *StateSet) Positions() ([]bool, int) {
	cells := make([]bool, s.width*s.height)
	count := 0
	for c := range cells {
		base := c * numDirs
		if s.bits[base] || s.bits[base+1] || s.bits[base+2] || s.bits[base+3] {
			cells[c] = true
			count++
		}
	}
	return cells, count
}
