package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-pulse/internal/games/neonpulse/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List available levels",
	Long: `Shows the built-in levels and every valid level file found under --levels-dir.
A directory level with the same ID as a built-in one replaces it.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a level file",
	Long: `Parses and validates a level file (.yaml or .yml) and prints a summary.
Validation errors are listed with their codes.

Examples:
  neonpulse check ./levels/tunnel.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func runLevels(_ *cobra.Command, _ []string) error {
	all, err := levels.All(flagLevelsDir)
	if err != nil {
		return err
	}

	maxIDLen := 2 // "ID" header
	for _, l := range all {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	const row = "  %-*s  %-24s  %5s  %6s  %-10s  %-18s  %s\n"
	fmt.Printf(row, maxIDLen, "ID", "Name", "BPM", "Spikes", "Difficulty", "Author", "Source")
	fmt.Printf(row, maxIDLen, "--", "----", "---", "------", "----------", "------", "------")
	for _, l := range all {
		fmt.Printf(row, maxIDLen, l.ID, l.Name, fmt.Sprintf("%.0f", l.BPM), fmt.Sprint(len(l.Spikes)),
			l.Meta("difficulty"), l.Meta("author"), l.Source())
	}

	fmt.Println()
	fmt.Println("Run 'neonpulse play --level <id>' to play a level.")
	return nil
}

func runCheck(_ *cobra.Command, args []string) error {
	lvl, err := levels.NewLoader("").LoadFile(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s: ok\n", args[0])
	fmt.Printf("  id:        %s\n", lvl.ID)
	fmt.Printf("  name:      %s\n", lvl.Name)
	fmt.Printf("  length:    %.0f\n", lvl.Length())
	fmt.Printf("  bpm:       %.0f\n", lvl.BPM)
	fmt.Printf("  platforms: %d\n", len(lvl.Platforms))
	fmt.Printf("  spikes:    %d\n", len(lvl.Spikes))
	fmt.Printf("  pads:      %d jump, %d speed, %d gravity\n", len(lvl.JumpPads), len(lvl.SpeedPads), len(lvl.GravityPads))
	fmt.Printf("  sections:  %d\n", len(lvl.Sections))

	keys := make([]string, 0, len(lvl.Metadata))
	for k := range lvl.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %-10s %s\n", k+":", lvl.Metadata[k])
	}
	return nil
}
