package beamgrid

// ExitMemo remembers, for every exit state a boundary traversal produced, the
// energized count of that traversal. A later entry at p heading d reuses the
// count stored under (p, d.Opposite()) instead of walking again.
//
// Reversing a beam along its path never splits it: splitters only emit along
// their own axis, so the reversed beam always passes straight through them.
// The reversed walk therefore stays inside the tiles of the traversal that
// recorded the exit, and a reused count is never below the true count of the
// entry it answers for. It is always a count some entry really achieves, so a
// maximum taken over all entries is exact.
//
// ExitMemo is not safe for concurrent use.
type ExitMemo struct {
	grid   *Grid
	scores map[State]int
	hits   int
	misses int
}

func NewExitMemo(g *Grid) *ExitMemo {
	return &ExitMemo{
		grid:   g,
		scores: make(map[State]int, 2*(g.width+g.height)),
	}
}

// Energized returns the energized count for a beam entering at start.
func (m *ExitMemo) Energized(start State) (int, error) {
	n, _, err := m.lookup(start)
	return n, err
}

// lookup also reports whether the count came from the memo.
func (m *ExitMemo) lookup(start State) (int, bool, error) {
	if n, ok := m.scores[State{Pos: start.Pos, Dir: start.Dir.Opposite()}]; ok {
		m.hits++
		memoLookups.WithLabelValues("hit").Inc()
		return n, true, nil
	}
	m.misses++
	memoLookups.WithLabelValues("miss").Inc()

	tr, err := TraceExits(m.grid, start)
	if err != nil {
		return 0, false, err
	}
	n := tr.Energized()
	// Only a beam coming in from outside retraces to its own entry when reversed.
	if m.entersFromEdge(start) {
		for _, ex := range tr.Exits.States() {
			m.scores[ex] = n
		}
	} else {
		DebugLogOnce("Memo: interior start %v walked but not memoized", start)
	}
	DebugLog("Memo miss %v: energized=%d exits=%d memo=%d", start, n, tr.Exits.Len(), len(m.scores))
	return n, false, nil
}

func (m *ExitMemo) entersFromEdge(start State) bool {
	_, inside := m.grid.Neighbor(start.Pos, start.Dir.Opposite())
	return !inside
}

// Len returns the number of exit states remembered.
func (m *ExitMemo) Len() int { return len(m.scores) }

func (m *ExitMemo) Hits() int   { return m.hits }
func (m *ExitMemo) Misses() int { return m.misses }
