package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchDefault(t *testing.T) {
	var cfg Config
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &cfg))
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	doc := "simulation:\n  kind: elementary\n  rule: 30\nserver:\n  idle_timeout: 90s\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "elementary", cfg.Simulation.Kind)
	assert.Equal(t, 30, cfg.Simulation.Rule)
	assert.Equal(t, "B3/S23", cfg.Simulation.LifeRule, "unset keys keep their default")
	assert.Equal(t, 90*time.Second, cfg.Server.IdleTimeout)
	assert.Equal(t, Default().Viewer, cfg.Viewer)
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	tests := map[string]string{
		"malformed":    "simulation: [",
		"rule range":   "simulation:\n  rule: 300\n",
		"life rule":    "simulation:\n  life_rule: B9\n",
		"tick rate":    "viewer:\n  tick_rate: 0\n",
		"unknown pace": "viewer:\n  speed: ludicrous\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadFallsBackToLocalThenEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	require.NoError(t, os.MkdirAll("configs", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("configs", "automata.yaml"), []byte("simulation:\n  kind: twod\n"), 0o644))
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "twod", cfg.Simulation.Kind)
}

func TestSpeedPreset(t *testing.T) {
	cfg := Default()
	ApplySpeedPreset(&cfg, SpeedTurbo)
	assert.Equal(t, MaxTickRate, cfg.Viewer.TickRate)
	assert.Equal(t, 4, cfg.Viewer.StepSize)
	assert.Equal(t, SpeedTurbo, cfg.Viewer.Speed)

	before := cfg
	ApplySpeedPreset(&cfg, "bogus")
	assert.Equal(t, before, cfg)
	assert.False(t, SpeedPreset("bogus").Valid())
}

func TestPace(t *testing.T) {
	p := NewPace(0, 0)
	assert.Equal(t, Pace{TickRate: 1, StepSize: 1}, p)

	p = NewPace(40, 1).Faster()
	assert.Equal(t, Pace{TickRate: MaxTickRate, StepSize: 1}, p)
	p = p.Faster()
	assert.Equal(t, Pace{TickRate: MaxTickRate, StepSize: 2}, p)

	p = p.Slower()
	assert.Equal(t, Pace{TickRate: MaxTickRate, StepSize: 1}, p)
	p = p.Slower()
	assert.Equal(t, Pace{TickRate: MaxTickRate / 2, StepSize: 1}, p)

	assert.Equal(t, 1, NewPace(1, 1).Slower().TickRate)
}

func TestRuntime(t *testing.T) {
	cfg := Default()
	cfg.Simulation.Rule = 110
	cfg.Simulation.Pattern = "glider"

	rc := cfg.Runtime(120, 0)
	assert.Equal(t, 120, rc.ScreenW)
	assert.Equal(t, 24, rc.ScreenH, "zero keeps the default height")
	assert.Equal(t, uint8(110), rc.Rule)
	assert.Equal(t, "B3/S23", rc.LifeRule)
	assert.Equal(t, "glider", rc.Pattern)
	assert.Equal(t, cfg.Viewer.TickRate, rc.TickRate)
}
