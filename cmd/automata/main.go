// automata runs cellular automata in the terminal.
//
// Usage:
//
//	automata list                 - List simulations, seed patterns and the library
//	automata run [kind]           - Simulate and print the final state
//	automata watch [kind]         - Watch a simulation tick by tick
//	automata browse               - Pick simulations and saved states interactively
//	automata library <command>    - Manage saved states
//	automata serve                - Start SSH server for remote viewing
//
// Global flags:
//
//	--config <path>  - Configuration file (default: ~/.automata/config.yaml)
//	--db <path>      - Library database path (default: ~/.automata/library.db)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-automata/internal/config"

	// Import simulations to register them
	_ "github.com/vovakirdan/tui-automata/internal/sims"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
	flagDebug  bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "automata",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "automata",
	Short: "Cellular automata in your terminal",
	Long: `automata simulates elementary (one-dimensional) automata, Conway's
Game of Life and other life-like rules on an unbounded grid.

Available commands:
  list     - Show simulations, seed patterns and library statistics
  run      - Simulate a number of generations and print the result
  watch    - Interactive viewer
  browse   - Menu of simulations and saved states
  library  - Manage saved states
  serve    - Start SSH server for remote viewing

Examples:
  automata list
  automata run elementary --rule 30 -n 16
  automata watch life --pattern glider
  automata library list life
  automata serve`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagDebug {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to configuration YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to library database (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(libraryCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the configuration and applies global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	logger.Debug("configuration loaded", "kind", cfg.Simulation.Kind, "library", cfg.Storage.Path)
	return cfg, nil
}
