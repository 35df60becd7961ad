package beamgrid

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGridShape(t *testing.T) {
	g, err := ParseGrid(".|.\r\n-./\r\n")
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, SplitVertical, g.At(Position{0, 1}))
	assert.Equal(t, MirrorSlash, g.At(Position{1, 2}))
	assert.Equal(t, ".|.\n-./\n", g.String())
}

func TestParseGridMalformed(t *testing.T) {
	_, err := ParseGrid("")
	assert.True(t, errors.Is(err, ErrEmptyGrid))

	_, err = ParseGrid("\n\n")
	assert.True(t, errors.Is(err, ErrEmptyGrid))

	_, err = ParseGrid("...\n\n...")
	require.True(t, errors.Is(err, ErrRaggedGrid))

	_, err = ParseGrid("...\n..\n...")
	require.True(t, errors.Is(err, ErrRaggedGrid))
	var me *MalformedGridError
	require.True(t, errors.As(err, &me))
	assert.Equal(t, 1, me.Row)
	assert.Equal(t, 2, me.Len)
	assert.Equal(t, 3, me.Expected)
}

func TestParseGridLeadingBlankLines(t *testing.T) {
	g, err := ParseGrid("\n\r\n.|.\n-./\n\n")
	require.NoError(t, err)
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, ".|.\n-./\n", g.String())
}

func TestGridNeighbor(t *testing.T) {
	g, err := ParseGrid("..\n..")
	require.NoError(t, err)

	n, ok := g.Neighbor(Position{0, 0}, Right)
	assert.True(t, ok)
	assert.Equal(t, Position{0, 1}, n)

	_, ok = g.Neighbor(Position{0, 0}, Up)
	assert.False(t, ok)
	_, ok = g.Neighbor(Position{0, 0}, Left)
	assert.False(t, ok)
	_, ok = g.Neighbor(Position{1, 1}, Down)
	assert.False(t, ok)
	_, ok = g.Neighbor(Position{1, 1}, Right)
	assert.False(t, ok)
}

func TestGridValidate(t *testing.T) {
	g, err := ParseGrid("..\n.x")
	require.NoError(t, err)
	err = g.Validate()
	require.True(t, errors.Is(err, ErrInvalidTile))
	var te *InvalidTileError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, Position{1, 1}, te.Pos)

	ex := loadExample(t)
	assert.NoError(t, ex.Validate())
}

func TestLoadGrid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.txt")
	require.NoError(t, os.WriteFile(path, []byte("./\n\\.\n"), 0o644))
	g, err := LoadGrid(path)
	require.NoError(t, err)
	assert.Equal(t, MirrorBackslash, g.At(Position{1, 0}))

	_, err = LoadGrid(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
