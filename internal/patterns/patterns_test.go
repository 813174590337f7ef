package patterns

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-automata/internal/automata"
	"github.com/vovakirdan/tui-automata/internal/core"
)

func TestCatalog(t *testing.T) {
	cat := Catalog()
	ids := make([]string, len(cat))
	for i, p := range cat {
		ids[i] = p.ID
		assert.NotEmpty(t, p.Name, p.ID)
		_, err := p.Centered()
		assert.NoError(t, err, p.ID)
	}
	assert.IsIncreasing(t, ids)
	for _, want := range []string{"single", "block", "blinker", "glider", "r-pentomino"} {
		assert.Contains(t, ids, want)
	}
}

func TestCatalogPatternsBehave(t *testing.T) {
	block, ok := Lookup("block")
	require.True(t, ok)
	s, err := block.Plane(core.Pt(0, 0))
	require.NoError(t, err)
	assert.Equal(t, s.ActiveCells(), automata.Life{}.Simulate(s, 1).ActiveCells())

	pulsar, ok := Lookup("pulsar")
	require.True(t, ok)
	s, err = pulsar.Centered()
	require.NoError(t, err)
	assert.Equal(t, 48, s.Population())
	assert.Equal(t, s.ActiveCells(), automata.Life{}.Simulate(s, 3).ActiveCells())
}

func TestPatternElementary(t *testing.T) {
	p, ok := Lookup("blinker")
	require.True(t, ok)

	s, err := p.Elementary()
	require.NoError(t, err)
	assert.Equal(t, core.R(-1, 0, 3, 1), s.Viewport())
	assert.Equal(t, 3, s.Population())

	empty, err := Pattern{}.Elementary()
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Population())
}

func TestResolve(t *testing.T) {
	p, err := Resolve("glider")
	require.NoError(t, err)
	assert.Empty(t, p.FilePath)
	assert.Equal(t, core.MustSize(3, 3), p.Size())

	_, err = Resolve("no-such-pattern")
	assert.ErrorIs(t, err, ErrUnknownPattern)

	dir := t.TempDir()
	file := filepath.Join(dir, "toad.cells")
	require.NoError(t, os.WriteFile(file, []byte("!Name: Toad\n!Period 2 oscillator.\n.OOO\nOOO.\n"), 0o644))

	p, err = Resolve(file)
	require.NoError(t, err)
	assert.Equal(t, "toad", p.ID)
	assert.Equal(t, "Toad", p.Name)
	assert.Equal(t, "Period 2 oscillator.", p.Description)
	assert.Equal(t, []string{".OOO", "OOO."}, p.Rows)
	assert.Equal(t, file, p.FilePath)
}

func TestLoaderLoadAll(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	files := map[string]string{
		"b.yaml":         "id: beta\nname: Beta\nrows: [OO]\n",
		"nested/a.cells": "!Name: Alpha\nO\n",
		"broken.yaml":    "id: broken\nrows: [O?]\n",
		"empty.yml":      "id: empty\nrows: []\n",
		"notes.txt":      "not a pattern",
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}

	got, err := NewLoader(dir).LoadAll()
	require.NoError(t, err)
	require.Len(t, got, 2, "invalid and unsupported files are skipped")
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "beta", got[1].ID)

	_, err = NewLoader(filepath.Join(dir, "missing")).LoadAll()
	assert.Error(t, err)
}

func TestParseErrors(t *testing.T) {
	_, err := ParseYAML([]byte("rows: ["))
	assert.Error(t, err)

	_, err = ParseYAML([]byte("rows: [O.x]"))
	assert.ErrorIs(t, err, automata.ErrCorruptState)

	_, err = ParseCells([]byte("!only comments\n"))
	assert.Error(t, err)
}
