package beamgrid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid parsing and beam tracing.
var (
	// ErrInvalidTile is returned when a cell holds a symbol outside . | - / \.
	ErrInvalidTile = errors.New("invalid tile")

	// ErrEmptyGrid is returned when the grid text has no rows or an empty first row.
	ErrEmptyGrid = errors.New("empty grid")

	// ErrRaggedGrid is returned when rows differ in length.
	ErrRaggedGrid = errors.New("ragged grid")

	// ErrStartOutOfBounds is returned when a traversal starts off-grid.
	ErrStartOutOfBounds = errors.New("start position out of bounds")

	// ErrBoundedCounts is returned when per-entry counts are asked of a scan
	// that answered some entries from the exit memo.
	ErrBoundedCounts = errors.New("scan counts include memo bounds")
)

// InvalidTileError carries the offending symbol and, when known, where it was met.
type InvalidTileError struct {
	Tile   Tile
	Pos    Position
	HasPos bool
}

func (e *InvalidTileError) Error() string {
	if e.HasPos {
		return fmt.Sprintf("invalid tile %q at %v", rune(e.Tile), e.Pos)
	}
	return fmt.Sprintf("invalid tile %q", rune(e.Tile))
}

func (e *InvalidTileError) Unwrap() error { return ErrInvalidTile }

// MalformedGridError describes a grid whose shape cannot be used.
type MalformedGridError struct {
	Row      int // offending row (0-based)
	Len      int // its length
	Expected int // length of the first row
	Err      error
}

func (e *MalformedGridError) Error() string {
	if errors.Is(e.Err, ErrEmptyGrid) {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v: row %d has %d tiles, expected %d", e.Err, e.Row, e.Len, e.Expected)
}

func (e *MalformedGridError) Unwrap() error { return e.Err }
