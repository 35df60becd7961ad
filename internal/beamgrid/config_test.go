package beamgrid

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigJSONDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "c.json", `{"input":"grid.txt"}`))
	require.NoError(t, err)
	assert.Equal(t, "grid.txt", cfg.Input)
	assert.Equal(t, DefaultEntry, cfg.Entry.State())
	assert.Equal(t, DefaultScale, cfg.Render.Scale)
	assert.Equal(t, DefaultGIFDelay, cfg.Render.GIFDelay)
	assert.Equal(t, DefaultGamma, cfg.Render.Gamma)
	assert.False(t, cfg.Memoize)
}

func TestLoadConfigYAML(t *testing.T) {
	body := `
input: testdata/example.txt
entry:
  row: 0
  col: 3
  dir: down
memoize: true
stats: true
render:
  text: true
  scale: 4
benchIters: 3
`
	cfg, err := LoadConfig(writeConfig(t, "c.yaml", body))
	require.NoError(t, err)
	assert.Equal(t, State{Position{0, 3}, Down}, cfg.Entry.State())
	assert.True(t, cfg.Memoize)
	assert.True(t, cfg.Stats)
	assert.True(t, cfg.Render.Text)
	assert.Equal(t, 4, cfg.Render.Scale)
	assert.Equal(t, 3, cfg.BenchIters)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "c.toml", `input = "x"`))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "c.yml", "entry:\n  dir: sideways\n"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "c.json", `{"entry":{"row":-1,"col":0,"dir":"up"}}`))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "c.json", `{"render":{"scale":-2}}`))
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
