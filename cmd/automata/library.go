package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-automata/internal/automata"
	"github.com/vovakirdan/tui-automata/internal/config"
	"github.com/vovakirdan/tui-automata/internal/platform/tui"
	"github.com/vovakirdan/tui-automata/internal/registry"
	"github.com/vovakirdan/tui-automata/internal/storage"
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Manage saved states",
	Long: `Saved states are YAML records kept in a SQLite library. The viewer saves
them with S; 'automata run --save' saves the result of a run.

Examples:
  automata library list life
  automata library show 3
  automata library export 3 glider.yaml
  automata library import glider.yaml
  automata library delete 3
  automata library browse`,
}

var libraryListCmd = &cobra.Command{
	Use:   "list [kind]",
	Short: "List saved states, newest first",
	Args:  cobra.MaximumNArgs(1),
	RunE: withStore(func(cmd *cobra.Command, args []string, _ config.Config, store *storage.Store) error {
		kind := ""
		if len(args) > 0 {
			kind = args[0]
		}
		entries, err := store.List(kind)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(entries) == 0 {
			fmt.Fprintln(out, "No saved states yet.")
			return nil
		}

		fmt.Fprintf(out, "  %-5s  %-10s  %-24s  %-10s  %s\n", "ID", "Kind", "Name", "Rule", "Saved")
		fmt.Fprintf(out, "  %-5s  %-10s  %-24s  %-10s  %s\n", "--", "----", "----", "----", "-----")
		for _, e := range entries {
			fmt.Fprintf(out, "  %-5d  %-10s  %-24s  %-10s  %s\n",
				e.ID, e.Kind, e.Name, e.Rule, e.CreatedAt.Format("2006-01-02 15:04"))
		}
		return nil
	}),
}

var libraryShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a saved state",
	Args:  cobra.ExactArgs(1),
	RunE: withStore(func(cmd *cobra.Command, args []string, cfg config.Config, store *storage.Store) error {
		entry, err := getEntry(store, args[0])
		if err != nil {
			return err
		}
		width, height := terminalSize()
		sim, err := registry.Restore(entry.Kind, cfg.Runtime(width, height), entry.Data)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "#%d %s  %s  %s  pop %d\n", entry.ID, entry.Name, sim.Title(), sim.Rule(), sim.Population())
		fmt.Fprintln(out, renderState(sim, width))
		return nil
	}),
}

var libraryDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved state",
	Args:  cobra.ExactArgs(1),
	RunE: withStore(func(_ *cobra.Command, args []string, _ config.Config, store *storage.Store) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := store.Delete(id); err != nil {
			return err
		}
		logger.Info("state deleted", "id", id)
		return nil
	}),
}

var libraryExportCmd = &cobra.Command{
	Use:   "export <id> <file>",
	Short: "Write a saved state to a YAML file",
	Args:  cobra.ExactArgs(2),
	RunE: withStore(func(_ *cobra.Command, args []string, _ config.Config, store *storage.Store) error {
		entry, err := getEntry(store, args[0])
		if err != nil {
			return err
		}
		if err := os.WriteFile(args[1], entry.Data, 0o644); err != nil {
			return fmt.Errorf("cannot write %s: %w", args[1], err)
		}
		logger.Info("state exported", "id", entry.ID, "file", args[1])
		return nil
	}),
}

var libraryImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Add a YAML record to the library",
	Args:  cobra.ExactArgs(1),
	RunE: withStore(func(_ *cobra.Command, args []string, _ config.Config, store *storage.Store) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("cannot read %s: %w", args[0], err)
		}
		if err := checkRecord(data); err != nil {
			return err
		}
		id, err := store.Save(data)
		if err != nil {
			return err
		}
		logger.Info("state imported", "id", id, "file", args[0])
		return nil
	}),
}

var libraryBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse saved states and open one in the viewer",
	Args:  cobra.NoArgs,
	RunE: withStore(func(_ *cobra.Command, _ []string, cfg config.Config, store *storage.Store) error {
		width, height := terminalSize()
		return tui.RunLibrary(store, cfg.Runtime(width, height))
	}),
}

func init() {
	libraryCmd.AddCommand(libraryListCmd)
	libraryCmd.AddCommand(libraryShowCmd)
	libraryCmd.AddCommand(libraryDeleteCmd)
	libraryCmd.AddCommand(libraryExportCmd)
	libraryCmd.AddCommand(libraryImportCmd)
	libraryCmd.AddCommand(libraryBrowseCmd)
}

// withStore opens the configured library around a command.
func withStore(fn func(*cobra.Command, []string, config.Config, *storage.Store) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store, err := openStore(cfg, true)
		if err != nil {
			return err
		}
		defer store.Close()
		return fn(cmd, args, cfg, store)
	}
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func getEntry(store *storage.Store, arg string) (storage.Entry, error) {
	id, err := parseID(arg)
	if err != nil {
		return storage.Entry{}, err
	}
	return store.Get(id)
}

// checkRecord rejects records no registered simulation can load.
func checkRecord(data []byte) error {
	header, err := automata.PeekHeader(data)
	if err != nil {
		return err
	}
	if !registry.Exists(header.Kind) {
		return fmt.Errorf("%w: unknown kind %q", automata.ErrCorruptState, header.Kind)
	}
	sim, err := registry.Create(header.Kind)
	if err != nil {
		return err
	}
	return sim.Decode(data)
}
