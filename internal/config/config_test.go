package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(GetDefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}

	def := DefaultNeonConfig()
	if cfg.Physics.Gravity != def.Physics.Gravity {
		t.Errorf("gravity = %v, expected %v", cfg.Physics.Gravity, def.Physics.Gravity)
	}
	if cfg.Physics.JumpVelocity != def.Physics.JumpVelocity {
		t.Errorf("jump_velocity = %v, expected %v", cfg.Physics.JumpVelocity, def.Physics.JumpVelocity)
	}
	if cfg.Rhythm.BPM != def.Rhythm.BPM {
		t.Errorf("bpm = %v, expected %v", cfg.Rhythm.BPM, def.Rhythm.BPM)
	}
	if cfg.Effects.DeathShake != 8 {
		t.Errorf("death_shake = %v, expected 8", cfg.Effects.DeathShake)
	}
	if !cfg.Assist.HoldToJump || !cfg.Rules.GravityPads {
		t.Error("pulse variant should enable hold-to-jump and gravity pads")
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("physics:\n  run_speed: 500\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Physics.RunSpeed != 500 {
		t.Errorf("run_speed = %v, expected 500", cfg.Physics.RunSpeed)
	}
	if cfg.Physics.Gravity != 2300 {
		t.Errorf("unspecified keys should keep defaults, gravity = %v", cfg.Physics.Gravity)
	}
}

func TestParseClassicVariant(t *testing.T) {
	cfg, err := Parse([]byte("variant: classic\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Physics.Gravity != 1800 {
		t.Errorf("classic gravity = %v, expected 1800", cfg.Physics.Gravity)
	}
	if cfg.Assist.HoldToJump || cfg.Rules.GravityPads {
		t.Error("classic variant should disable hold-to-jump and gravity pads")
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"bad variant", "variant: turbo\n", "variant"},
		{"zero bpm", "rhythm:\n  bpm: 0\n", "rhythm.bpm"},
		{"downward jump", "physics:\n  jump_velocity: 100\n", "jump_velocity"},
		{"no particles", "effects:\n  particle_capacity: 0\n", "particle_capacity"},
		{"not yaml", "physics: [", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if tc.want != "" && !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("rhythm:\n  bpm: 128\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Rhythm.BPM != 128 {
		t.Errorf("bpm = %v, expected 128", cfg.Rhythm.BPM)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom path should fail")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultNeonConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "jump_velocity: -760") {
		t.Errorf("marshaled config missing jump_velocity:\n%s", data)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		speed      float64
		holdToJump bool
	}{
		{DifficultyEasy, 420 * 0.85, true},
		{DifficultyNormal, 420, true},
		{DifficultyHard, 420 * 1.15, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultNeonConfig()
			ApplyPreset(&cfg, tc.preset)
			if math.Abs(cfg.Physics.RunSpeed-tc.speed) > 1e-9 {
				t.Errorf("run_speed = %v, expected %v", cfg.Physics.RunSpeed, tc.speed)
			}
			if cfg.Assist.HoldToJump != tc.holdToJump {
				t.Errorf("hold_to_jump = %v, expected %v", cfg.Assist.HoldToJump, tc.holdToJump)
			}
		})
	}

	cfg := DefaultNeonConfig()
	ApplyPreset(&cfg, "")
	if cfg.Physics.RunSpeed != 420 {
		t.Error("empty preset should not change the config")
	}

	if _, err := ParsePreset("insane"); err == nil {
		t.Error("ParsePreset should reject unknown names")
	}
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %v, %v", p, err)
	}
}
