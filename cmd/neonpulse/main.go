// neonpulse is an auto-scrolling rhythm platformer for the terminal and a window.
//
// Usage:
//
//	neonpulse play [--level id] [--window]  - Play a level
//	neonpulse menu                          - Pick a ruleset and level interactively
//	neonpulse list                          - List rulesets
//	neonpulse levels                        - List built-in and directory levels
//	neonpulse check <file>                  - Validate a level file
//	neonpulse config                        - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible effects
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - easy, normal or hard
//	--variant <name>      - pulse or classic
//	--levels-dir <path>   - Extra level directory (default: ~/.neonpulse/levels)
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-pulse/internal/config"
	"github.com/vovakirdan/neon-pulse/internal/games/neonpulse"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagVariant    string
	flagLevelsDir  string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "neonpulse",
	Short: "Neon Pulse - an auto-scrolling rhythm platformer",
	Long: `Neon Pulse is an auto-scrolling rhythm platformer. The runner moves on its own;
you time jumps to the beat, ride speed pads and flip gravity to reach the finish.

Available commands:
  play     - Play a level in the terminal or a window
  menu     - Interactive ruleset and level picker
  list     - Show available rulesets
  levels   - Show available levels
  check    - Validate a level file
  config   - Print the effective configuration

Examples:
  neonpulse play
  neonpulse play --window
  neonpulse play --difficulty easy --level neon_pulse
  neonpulse check ./my-level.yaml`,
	SilenceUsage:      true,
	PersistentPreRunE: applyGlobalFlags,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagVariant, "variant", "", "Ruleset variant: pulse, classic (default from config)")
	pf.StringVar(&flagLevelsDir, "levels-dir", config.UserLevelsDir(), "Directory with extra level files")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(configCmd)
}

// applyGlobalFlags validates the shared flags and hands them to the game package.
func applyGlobalFlags(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	switch flagVariant {
	case "", config.VariantPulse, config.VariantClassic:
	default:
		return fmt.Errorf("unknown variant %q (want %s or %s)", flagVariant, config.VariantPulse, config.VariantClassic)
	}
	if err := neonpulse.SetDifficultyPreset(flagDifficulty); err != nil {
		return err
	}
	neonpulse.SetConfigPath(flagConfig)
	neonpulse.SetVariant(flagVariant)
	return nil
}
