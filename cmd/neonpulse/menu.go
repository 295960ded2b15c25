package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-pulse/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a ruleset and level picker",
	Long: `Start in interactive menu mode.

Pick a level from the table, Tab to switch ruleset, Enter to play.
After a run ends and you quit, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate levels
  Tab          - Next ruleset
  Enter        - Play
  Q            - Quit

Examples:
  neonpulse menu
  neonpulse menu --fps 30`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg := terminalConfig()

	for {
		result, err := tui.RunMenu(flagLevelsDir, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = result.Config
		if result.Quit || result.GameID == "" {
			return
		}

		// Fresh effects for every run unless a seed was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := play(result.GameID, result.LevelID, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
