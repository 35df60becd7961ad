package beamgrid

import "fmt"

// Position is a (row, column) coordinate into a grid.
type Position struct {
	Row, Col int
}

// Step returns the position one cell away in direction d. The result may lie off-grid.
func (p Position) Step(d Direction) Position {
	return Position{p.Row + dRow[d], p.Col + dCol[d]}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
