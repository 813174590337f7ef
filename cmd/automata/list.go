package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-automata/internal/patterns"
	"github.com/vovakirdan/tui-automata/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List simulations, seed patterns and saved states",
	Long: `Shows the registered simulations, the built-in seed patterns and how many
states of each kind the library holds.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	sims := registry.List()

	if len(sims) == 0 {
		fmt.Fprintln(out, "No simulations available.")
		return nil
	}

	fmt.Fprintln(out, "Simulations:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range sims {
		maxIDLen = max(maxIDLen, len(s.ID))
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, s := range sims {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, s.ID, s.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Seed patterns:")
	fmt.Fprintln(out)
	for _, p := range patterns.Catalog() {
		size := p.Size()
		fmt.Fprintf(out, "  %-18s %3dx%-3d %s\n", p.ID, size.Width(), size.Height(), p.Name)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg, false)
	if err != nil || store == nil {
		return err
	}
	defer store.Close()

	stats, err := store.Stats()
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	if len(stats) == 0 {
		fmt.Fprintln(out, "The library is empty.")
	} else {
		fmt.Fprintln(out, "Library:")
		fmt.Fprintln(out)
		kinds := make([]string, 0, len(stats))
		for kind := range stats {
			kinds = append(kinds, kind)
		}
		slices.Sort(kinds)
		for _, kind := range kinds {
			ks := stats[kind]
			fmt.Fprintf(out, "  %-*s  %4d saved, last %s\n", maxIDLen, kind, ks.Count, ks.LastSaved.Format("2006-01-02 15:04"))
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'automata watch <id>' to watch a simulation.")
	return nil
}
