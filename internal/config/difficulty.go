package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI string to a preset. Empty means "keep config as is".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// SpeedScaleForPreset returns the run speed multiplier for a difficulty preset.
func SpeedScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.85
	case DifficultyHard:
		return 1.15
	default:
		return 1.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Easy turns the hold-to-jump assist on, hard turns it off.
func ApplyPreset(cfg *NeonConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Physics.RunSpeed *= SpeedScaleForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Assist.HoldToJump = true
	case DifficultyHard:
		cfg.Assist.HoldToJump = false
	}
}
