package sims

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-automata/internal/automata"
	"github.com/vovakirdan/tui-automata/internal/core"
	"github.com/vovakirdan/tui-automata/internal/patterns"
	"github.com/vovakirdan/tui-automata/internal/registry"
)

func TestRegistered(t *testing.T) {
	for _, id := range []string{"elementary", "life", "twod"} {
		sim, err := registry.Create(id)
		require.NoError(t, err, id)
		assert.Equal(t, id, sim.ID())
		require.NoError(t, sim.Reset(core.DefaultConfig()), id)
		assert.Positive(t, sim.Population(), id)
	}
}

func TestElementaryStepAndRender(t *testing.T) {
	sim := NewElementary()
	require.NoError(t, sim.Reset(core.DefaultConfig()))
	assert.Equal(t, "rule 90", sim.Rule())

	sim.Step(3)
	sim.Step(-1)
	assert.Equal(t, 3, sim.Generation())
	assert.Equal(t, 9, sim.Population())
	assert.Equal(t, core.R(-3, 0, 7, 4), sim.Focus())

	dst := core.NewScreen(7, 2)
	dst.Origin = core.Pt(-3, 0)
	sim.Render(dst)
	assert.Equal(t, core.Pt(-3, 2), dst.Origin, "window scrolls to the newest row")
	assert.Equal(t, " █   █ ", dst.Row(0))
	assert.Equal(t, "█ █ █ █", dst.Row(1))
}

func TestElementaryRecord(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Rule = 30
	sim := NewElementary()
	require.NoError(t, sim.Reset(cfg))
	sim.Step(5)

	data, err := sim.Encode("rule30")
	require.NoError(t, err)

	loaded := NewElementary()
	require.NoError(t, loaded.Decode(data))
	assert.Equal(t, "rule 30", loaded.Rule())
	assert.Equal(t, 5, loaded.Generation())
	assert.Equal(t, sim.State().String(), loaded.State().String())

	life := NewLife()
	assert.ErrorIs(t, life.Decode(data), automata.ErrCorruptState)
}

func TestParseWolfram(t *testing.T) {
	for in, want := range map[string]uint8{"90": 90, "rule 110": 110, " Rule30 ": 30, "0": 0, "255": 255} {
		got, err := parseWolfram(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, in := range []string{"256", "-1", "rule", "ninety"} {
		_, err := parseWolfram(in)
		assert.Error(t, err, in)
	}
}

func TestLifeBlinker(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Pattern = "blinker"
	sim := NewLife()
	require.NoError(t, sim.Reset(cfg))
	start := sim.State().ActiveCells()

	sim.Step(1)
	assert.Equal(t, []core.Point{core.Pt(0, -1), core.Pt(0, 0), core.Pt(0, 1)}, sim.State().ActiveCells())
	sim.Step(1)
	assert.Equal(t, start, sim.State().ActiveCells())
	assert.Equal(t, 2, sim.Generation())
	assert.Equal(t, "B3/S23", sim.Rule())

	dst := core.NewScreen(3, 3)
	dst.CenterOn(core.R(-1, -1, 3, 3))
	sim.Render(dst)
	assert.Equal(t, "   \n███\n   ", dst.String())
}

func TestTwoDimensionalReset(t *testing.T) {
	sim := NewTwoDimensional()
	assert.Equal(t, "default", sim.Rule())

	cfg := core.DefaultConfig()
	cfg.LifeRule = "s23/b36"
	require.NoError(t, sim.Reset(cfg))
	assert.Equal(t, "B36/S23", sim.Rule())

	cfg.LifeRule = "B9/S"
	assert.ErrorIs(t, sim.Reset(cfg), automata.ErrInvalidRule)
	assert.Equal(t, "B36/S23", sim.Rule(), "a failed reset keeps the engine")

	cfg.LifeRule = ""
	cfg.Pattern = "no-such-pattern"
	assert.ErrorIs(t, sim.Reset(cfg), patterns.ErrUnknownPattern)
}

func TestPlaneRecordKeepsRule(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.LifeRule = "B0/S8"
	cfg.Pattern = "block"
	sim := NewTwoDimensional()
	require.NoError(t, sim.Reset(cfg))
	sim.Step(1)
	require.Equal(t, automata.Active, sim.State().Outer())

	data, err := sim.Encode("flooded")
	require.NoError(t, err)

	loaded := NewTwoDimensional()
	require.NoError(t, loaded.Decode(data))
	assert.Equal(t, "B0/S8", loaded.Rule())
	assert.Equal(t, automata.Active, loaded.State().Outer())
	assert.Equal(t, 0, loaded.Generation())

	h, err := automata.PeekHeader(data)
	require.NoError(t, err)
	assert.Equal(t, automata.Header{Name: "flooded", Kind: "twod", Rule: "B0/S8"}, h)
}

func TestToggle(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Pattern = "single"

	life := NewLife()
	require.NoError(t, life.Reset(cfg))
	require.Equal(t, 1, life.Population())

	life.Toggle(core.Pt(5, 5))
	assert.Equal(t, 2, life.Population())
	assert.True(t, life.Focus().Contains(core.Pt(5, 5)))
	life.Toggle(core.Pt(5, 5))
	assert.Equal(t, 1, life.Population())

	elem := NewElementary()
	require.NoError(t, elem.Reset(cfg))
	elem.Toggle(core.Pt(2, 0))
	elem.Step(1)
	assert.Equal(t, automata.Active, elem.State().Get(core.Pt(3, 1)))
}
