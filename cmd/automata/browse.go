package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-automata/internal/platform/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Pick simulations and saved states from a menu",
	Long: `Start the interactive menu. Pick a simulation to watch it, or press L to
open the library of saved states. Leaving the viewer returns to the menu.

Controls:
  Up/Down/j/k  - Navigate
  Enter        - Open
  L            - Library
  Q            - Quit

Examples:
  automata browse
  automata browse --db ./library.db`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func runBrowse(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := openStore(cfg, false)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	width, height := terminalSize()
	return tui.RunSession(store, cfg.Runtime(width, height))
}
