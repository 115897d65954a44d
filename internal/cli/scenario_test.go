package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pipegrid/grid"
)

// writeFile drops content into a temp file and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

// TestLoadScenario_Valid parses a complete scenario and converts it to
// optimizer inputs.
func TestLoadScenario_Valid(t *testing.T) {
	path := writeFile(t, "scenario.yaml", `
grid:
  rows: 10
  cols: 12
source: {row: 5, col: 5}
consumers:
  - {row: 5, col: 8}
  - {row: 2, col: 3}
penalty: 4.5
seed: 42
`)

	sc, err := loadScenario(path)
	require.NoError(t, err)

	g, source, consumers, err := sc.inputs()
	require.NoError(t, err)
	assert.Equal(t, 10, g.Rows)
	assert.Equal(t, 12, g.Cols)
	assert.Equal(t, grid.Coord{Row: 5, Col: 5}, source)
	assert.Equal(t, []grid.Coord{{Row: 5, Col: 8}, {Row: 2, Col: 3}}, consumers)
	require.NotNil(t, sc.Penalty)
	assert.InDelta(t, 4.5, *sc.Penalty, 1e-12)
	require.NotNil(t, sc.Seed)
	assert.Equal(t, int64(42), *sc.Seed)
}

// TestLoadScenario_OptionalFields verifies penalty and seed stay nil when
// omitted, so config defaults apply.
func TestLoadScenario_OptionalFields(t *testing.T) {
	path := writeFile(t, "scenario.yaml", `
grid: {rows: 3, cols: 3}
source: {row: 1, col: 1}
consumers: [{row: 0, col: 0}]
`)

	sc, err := loadScenario(path)
	require.NoError(t, err)
	assert.Nil(t, sc.Penalty)
	assert.Nil(t, sc.Seed)
}

// TestLoadScenario_Invalid covers missing files, bad YAML and bad values.
func TestLoadScenario_Invalid(t *testing.T) {
	_, err := loadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = loadScenario(writeFile(t, "bad.yaml", "grid: ["))
	assert.Error(t, err)

	_, err = loadScenario(writeFile(t, "dims.yaml", `
grid: {rows: 0, cols: 5}
source: {row: 0, col: 0}
`))
	assert.ErrorIs(t, err, ErrBadScenario)

	_, err = loadScenario(writeFile(t, "penalty.yaml", `
grid: {rows: 5, cols: 5}
source: {row: 0, col: 0}
penalty: -1
`))
	assert.ErrorIs(t, err, ErrBadScenario)
}

// TestLoadConfig verifies defaults, file overrides, and validation.
func TestLoadConfig(t *testing.T) {
	// Empty path: built-in defaults.
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Zero(t, cfg.Penalty)
	assert.True(t, cfg.Render.Color)

	// File overrides.
	cfg, err = loadConfig(writeFile(t, "config.toml", `
penalty = 2.5
seed = 9

[render]
color = false
`))
	require.NoError(t, err)
	assert.InDelta(t, 2.5, cfg.Penalty, 1e-12)
	assert.Equal(t, int64(9), cfg.Seed)
	assert.False(t, cfg.Render.Color)

	// Negative penalty rejected.
	_, err = loadConfig(writeFile(t, "neg.toml", "penalty = -3.0\n"))
	assert.Error(t, err)
}
