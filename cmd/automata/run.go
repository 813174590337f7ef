package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-automata/internal/core"
	"github.com/vovakirdan/tui-automata/internal/registry"
)

var (
	runFlags simFlags
	flagSave string
)

var runCmd = &cobra.Command{
	Use:   "run [kind]",
	Short: "Simulate and print the final state",
	Long: `Simulate the given number of generations and print the resulting grid.
Without a kind the simulation from the configuration is used.

Elementary automata print their whole history, one generation per line.

Examples:
  automata run elementary --rule 30 -n 16
  automata run life --pattern glider -n 8
  automata run twod --life-rule B36/S23 --pattern r-pentomino -n 100
  automata run life --pattern ./my.cells -n 50 --save "my pattern"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	runFlags.register(runCmd)
	runCmd.Flags().StringVar(&flagSave, "save", "", "Save the final state to the library under this name")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := runFlags.apply(cmd, &cfg); err != nil {
		return err
	}
	kind, err := kindArg(args, cfg)
	if err != nil {
		return err
	}

	width, height := terminalSize()
	sim, err := registry.Create(kind)
	if err != nil {
		return err
	}
	if err := sim.Reset(cfg.Runtime(width, height)); err != nil {
		return err
	}
	sim.Step(cfg.Simulation.Generations)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s  %s  gen %d  pop %d\n", sim.Title(), sim.Rule(), sim.Generation(), sim.Population())
	fmt.Fprintln(out, renderState(sim, width))

	if flagSave == "" {
		return nil
	}

	store, err := openStore(cfg, true)
	if err != nil {
		return err
	}
	defer store.Close()

	data, err := sim.Encode(flagSave)
	if err != nil {
		return err
	}
	id, err := store.Save(data)
	if err != nil {
		return err
	}
	logger.Info("state saved", "id", id, "name", flagSave, "kind", kind)
	return nil
}

// renderState draws the simulation's focus rectangle, at most maxWidth
// columns wide, with trailing blanks trimmed.
func renderState(sim registry.Simulation, maxWidth int) string {
	focus := sim.Focus()
	if focus.Area() == 0 {
		return "(empty)"
	}

	screen := core.NewScreen(min(focus.Width(), max(maxWidth, 1)), focus.Height())
	screen.CenterOn(focus)
	sim.Render(screen)

	lines := strings.Split(screen.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}
