package beamgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitMemoReusesReversedExit(t *testing.T) {
	g, err := ParseGrid("...\n.|.\n...")
	require.NoError(t, err)
	m := NewExitMemo(g)

	n, err := m.Energized(State{Position{1, 0}, Right})
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, 1, m.Misses())

	// Entering where the split beam left: answered from the memo.
	n, err = m.Energized(State{Position{0, 1}, Down})
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, 1, m.Hits())

	// A fresh walk from there passes the splitter along its axis.
	tr, err := Trace(g, State{Position{0, 1}, Down})
	require.NoError(t, err)
	assert.Equal(t, 3, tr.Energized())
}

func TestExitMemoMissStoresEveryExit(t *testing.T) {
	g := loadExample(t)
	m := NewExitMemo(g)
	start := State{Position{0, 0}, Right}
	n, err := m.Energized(start)
	require.NoError(t, err)

	tr, err := TraceExits(g, start)
	require.NoError(t, err)
	require.Equal(t, tr.Energized(), n)
	assert.Equal(t, tr.Exits.Len(), m.Len())
	for _, ex := range tr.Exits.States() {
		v, ok := m.scores[ex]
		require.True(t, ok, "exit %v not stored", ex)
		assert.Equal(t, n, v)
	}
}

func TestExitMemoIgnoresInteriorStarts(t *testing.T) {
	g := loadExample(t)
	m := NewExitMemo(g)
	_, err := m.Energized(State{Position{4, 4}, Right})
	require.NoError(t, err)
	assert.Zero(t, m.Len())
	assert.Equal(t, 1, m.Misses())
}
