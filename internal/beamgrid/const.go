package beamgrid

const (
	DefaultInput      = "input/day16.txt"
	DefaultBenchIters = 10
	DefaultScale      = 8 // pixels per tile in PNG/GIF output
	DefaultGIFDelay   = 5 // 100ths of a second per frame
	DefaultGamma      = 0.75
	MaxBeamLogEvents  = 100_000 // events kept by the debug beam log; counts are always kept
)

// DefaultEntry is the fixed entry used for the single-beam count: top-left corner heading right.
var DefaultEntry = State{Pos: Position{0, 0}, Dir: Right}
