package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-automata/internal/platform/tui"
	"github.com/vovakirdan/tui-automata/internal/registry"
)

var watchFlags simFlags

var watchCmd = &cobra.Command{
	Use:   "watch [kind]",
	Short: "Watch a simulation tick by tick",
	Long: `Start the interactive viewer. Every tick advances the simulation by the
step size; the speed preset or the +/- keys change the pace.

Controls:
  Space/P      - Pause
  N            - Single step (pauses)
  S            - Save the current state to the library
  +/-          - Faster/slower
  Arrows/hjkl  - Pan
  C            - Center on the pattern
  R            - Restart from the seed
  Q/Ctrl+C     - Quit

Examples:
  automata watch life
  automata watch elementary --rule 110
  automata watch twod --life-rule B36/S23 --speed fast`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchFlags.register(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := watchFlags.apply(cmd, &cfg); err != nil {
		return err
	}
	kind, err := kindArg(args, cfg)
	if err != nil {
		return err
	}

	width, height := terminalSize()
	rc := cfg.Runtime(width, height)

	sim, err := registry.Create(kind)
	if err != nil {
		return err
	}
	if err := sim.Reset(rc); err != nil {
		return err
	}

	// Saving still works without a library, it just reports the fact
	store, err := openStore(cfg, false)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	return tui.Run(sim, store, rc)
}
