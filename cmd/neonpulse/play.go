package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-pulse/internal/core"
	"github.com/vovakirdan/neon-pulse/internal/games/neonpulse"
	"github.com/vovakirdan/neon-pulse/internal/games/neonpulse/levels"
	"github.com/vovakirdan/neon-pulse/internal/platform/tui"
	"github.com/vovakirdan/neon-pulse/internal/platform/window"
	"github.com/vovakirdan/neon-pulse/internal/registry"
)

var (
	flagLevel  string
	flagWindow bool
)

var playCmd = &cobra.Command{
	Use:   "play [ruleset]",
	Short: "Play a level",
	Long: `Start playing a level. The ruleset defaults to neonpulse; use
neonpulse_classic for the legacy loop without gravity pads.

Controls:
  Space/Up/W - Jump (hold to keep jumping on landing)
  R          - Restart
  P          - Pause
  Q          - Quit

Difficulty options:
  easy   - Slower run speed, hold-to-jump assist on
  normal - Config values
  hard   - Faster run speed, no hold-to-jump assist

Examples:
  neonpulse play
  neonpulse play neonpulse_classic
  neonpulse play --window --seed 42
  neonpulse play --level my_level --levels-dir ./levels`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", levels.DefaultID, "Level ID to play")
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Open a window instead of using the terminal")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := neonpulse.GameID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown ruleset %q (available: %s)", gameID, strings.Join(registry.IDs(), ", "))
	}

	// Fail early on a bad level instead of silently playing the default one.
	if _, err := levels.Find(flagLevel, flagLevelsDir); err != nil {
		return err
	}
	return play(gameID, flagLevel, terminalConfig())
}

// play runs one ruleset on one level until the player quits.
func play(gameID, levelID string, cfg core.RuntimeConfig) error {
	logger, closeLog, err := newLogger(!flagWindow)
	if err != nil {
		return err
	}
	defer closeLog()

	neonpulse.SetLogger(logger)
	neonpulse.SetLevel(levelID, flagLevelsDir)

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	logger.Info("starting", "ruleset", gameID, "level", levelID, "window", flagWindow)

	if flagWindow {
		src, ok := game.(window.Source)
		if !ok {
			return fmt.Errorf("ruleset %q cannot run in a window", gameID)
		}
		return window.Run(src, cfg, logger)
	}
	return tui.Run(game, cfg, logger)
}

// terminalConfig builds the runtime config from the terminal size and global flags.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
