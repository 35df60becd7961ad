package beamgrid

import (
	"fmt"
	"strings"
)

// Direction is the heading of a beam on the grid.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// numDirs is the number of directions, used to size state bitmaps.
const numDirs = 4

// Directions lists all directions in their canonical order.
var Directions = [numDirs]Direction{Up, Down, Left, Right}

var (
	opposite = [numDirs]Direction{Up: Down, Down: Up, Left: Right, Right: Left}
	dRow     = [numDirs]int{Up: -1, Down: 1, Left: 0, Right: 0}
	dCol     = [numDirs]int{Up: 0, Down: 0, Left: -1, Right: 1}
	dirNames = [numDirs]string{Up: "up", Down: "down", Left: "left", Right: "right"}
)

// Opposite returns the reversed direction (Up<->Down, Left<->Right).
func (d Direction) Opposite() Direction { return opposite[d] }

// Horizontal reports whether d is Left or Right.
func (d Direction) Horizontal() bool { return d == Left || d == Right }

// Vertical reports whether d is Up or Down.
func (d Direction) Vertical() bool { return d == Up || d == Down }

func (d Direction) String() string {
	if int(d) < numDirs {
		return dirNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// ParseDirection accepts "up", "down", "left", "right" or their first letter, any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return Up, nil
	case "down", "d":
		return Down, nil
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// MarshalText lets directions appear as words in JSON and YAML configs.
func (d Direction) MarshalText() ([]byte, error) {
	if int(d) >= numDirs {
		return nil, fmt.Errorf("invalid direction %d", uint8(d))
	}
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(b []byte) error {
	v, err := ParseDirection(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
