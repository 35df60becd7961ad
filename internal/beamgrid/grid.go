package beamgrid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Grid is an immutable rectangular block of tiles stored row-major.
type Grid struct {
	cells  []Tile
	width  int
	height int
}

// NewGrid builds a grid from rows. Rows must be non-empty and of equal length.
// Tile symbols are not checked here; unknown symbols surface as ErrInvalidTile
// once a beam reaches them.
func NewGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, &MalformedGridError{Err: ErrEmptyGrid}
	}
	w := len(rows[0])
	g := &Grid{
		cells:  make([]Tile, 0, w*len(rows)),
		width:  w,
		height: len(rows),
	}
	for r, row := range rows {
		if len(row) != w {
			return nil, &MalformedGridError{Row: r, Len: len(row), Expected: w, Err: ErrRaggedGrid}
		}
		for i := 0; i < len(row); i++ {
			g.cells = append(g.cells, Tile(row[i]))
		}
	}
	DebugLog("Created grid %dx%d", g.height, g.width)
	return g, nil
}

// ParseGrid parses grid text: one line per row. CRLF line endings and blank
// lines before or after the grid are tolerated.
func ParseGrid(text string) (*Grid, error) {
	return ReadGrid(strings.NewReader(text))
}

// ReadGrid reads grid text from r.
func ReadGrid(r io.Reader) (*Grid, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read grid: %w", err)
	}
	// blank lines around the grid are dropped, inside it they make it ragged
	for len(rows) > 0 && rows[0] == "" {
		rows = rows[1:]
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	return NewGrid(rows)
}

// LoadGrid reads a grid from a file.
func LoadGrid(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := ReadGrid(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// InBounds reports whether p lies on the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// At returns the tile at p. p must be in bounds.
func (g *Grid) At(p Position) Tile {
	return g.cells[p.Row*g.width+p.Col]
}

// Neighbor returns the cell one step from p in direction d, and false if that step leaves the grid.
func (g *Grid) Neighbor(p Position, d Direction) (Position, bool) {
	n := p.Step(d)
	if !g.InBounds(n) {
		return Position{}, false
	}
	return n, true
}

// Validate checks every cell holds a known tile symbol.
func (g *Grid) Validate() error {
	for i, t := range g.cells {
		if !t.Valid() {
			return &InvalidTileError{Tile: t, Pos: g.position(i), HasPos: true}
		}
	}
	return nil
}

// String renders the grid back to its text form.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			b.WriteByte(byte(g.cells[r*g.width+c]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (g *Grid) index(p Position) int { return p.Row*g.width + p.Col }

func (g *Grid) position(i int) Position { return Position{i / g.width, i % g.width} }
