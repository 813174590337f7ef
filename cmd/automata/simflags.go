package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-automata/internal/config"
	"github.com/vovakirdan/tui-automata/internal/registry"
	"github.com/vovakirdan/tui-automata/internal/storage"
)

// simFlags are the simulation options shared by run and watch.
type simFlags struct {
	rule        int
	lifeRule    string
	pattern     string
	generations int
	speed       string
}

func (f *simFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.rule, "rule", 90, "Wolfram code for elementary automata (0-255)")
	cmd.Flags().StringVar(&f.lifeRule, "life-rule", "B3/S23", "Life-like rule for the twod simulation")
	cmd.Flags().StringVar(&f.pattern, "pattern", "", "Seed pattern name or file (.yaml, .cells)")
	cmd.Flags().IntVarP(&f.generations, "generations", "n", 32, "Generations to simulate")
	cmd.Flags().StringVar(&f.speed, "speed", "", "Viewer speed preset: slow, normal, fast, turbo")
}

// apply overrides cfg with the flags set on the command line.
func (f *simFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("rule") {
		cfg.Simulation.Rule = f.rule
	}
	if flags.Changed("life-rule") {
		cfg.Simulation.LifeRule = f.lifeRule
	}
	if flags.Changed("pattern") {
		cfg.Simulation.Pattern = f.pattern
	}
	if flags.Changed("generations") {
		cfg.Simulation.Generations = f.generations
	}
	if flags.Changed("speed") {
		preset := config.SpeedPreset(f.speed)
		if !preset.Valid() {
			return fmt.Errorf("unknown speed preset %q", f.speed)
		}
		config.ApplySpeedPreset(cfg, preset)
	}
	return cfg.Validate()
}

// kindArg returns the simulation named on the command line or in cfg.
func kindArg(args []string, cfg config.Config) (string, error) {
	kind := cfg.Simulation.Kind
	if len(args) > 0 {
		kind = args[0]
	}
	if !registry.Exists(kind) {
		return "", fmt.Errorf("unknown simulation %q, run 'automata list' to see available simulations", kind)
	}
	return kind, nil
}

// terminalSize returns the size of the controlling terminal, or 80x24.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// openStore opens the library. Commands that can work without one log a
// warning and continue with a nil store.
func openStore(cfg config.Config, required bool) (*storage.Store, error) {
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		if required {
			return nil, err
		}
		logger.Warn("could not open library", "path", cfg.Storage.Path, "error", err)
		return nil, nil
	}
	return store, nil
}
