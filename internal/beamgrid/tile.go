package beamgrid

// Tile is a single grid symbol.
type Tile byte

const (
	Empty           Tile = '.'
	SplitVertical   Tile = '|'
	SplitHorizontal Tile = '-'
	MirrorSlash     Tile = '/'
	MirrorBackslash Tile = '\\'
)

// Valid reports whether t is one of the five known symbols.
func (t Tile) Valid() bool {
	switch t {
	case Empty, SplitVertical, SplitHorizontal, MirrorSlash, MirrorBackslash:
		return true
	}
	return false
}

// Outgoing direction tables. Shared and read-only.
var (
	straight  = [numDirs][]Direction{Up: {Up}, Down: {Down}, Left: {Left}, Right: {Right}}
	splitUD   = []Direction{Up, Down}
	splitLR   = []Direction{Left, Right}
	slash     [numDirs][]Direction
	backslash [numDirs][]Direction
)

func init() {
	// '/' turns Up<->Right and Down<->Left; '\' is the opposite of that.
	turn := [numDirs]Direction{Up: Right, Right: Up, Down: Left, Left: Down}
	for _, d := range Directions {
		slash[d] = []Direction{turn[d]}
		backslash[d] = []Direction{turn[d].Opposite()}
	}
}

// Deflect returns the directions a beam leaves tile t with when it arrives heading in.
// The result has one or two entries, in a fixed order; it must not be modified.
func Deflect(t Tile, in Direction) ([]Direction, error) {
	switch t {
	case Empty:
		return straight[in], nil
	case SplitVertical:
		if in.Horizontal() {
			return splitUD, nil
		}
		return straight[in], nil
	case SplitHorizontal:
		if in.Vertical() {
			return splitLR, nil
		}
		return straight[in], nil
	case MirrorSlash:
		return slash[in], nil
	case MirrorBackslash:
		return backslash[in], nil
	}
	return nil, &InvalidTileError{Tile: t}
}
