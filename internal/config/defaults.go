package config

import (
	_ "embed"
)

//go:embed defaults/neonpulse.yaml
var defaultNeonYAML []byte

// DefaultNeonConfig returns the default Neon Pulse configuration.
func DefaultNeonConfig() NeonConfig {
	return NeonConfig{
		Variant: VariantPulse,
		Physics: NeonPhysics{
			Gravity:      2300,
			JumpVelocity: -760,
			RunSpeed:     420,
			FlipCooldown: 0.35,
			FlipInset:    0.5,
			MaxDT:        1.0 / 30.0,
		},
		Rhythm: NeonRhythm{
			BPM:          140,
			PulseDecay:   6,
			PhaseJitter:  0.03,
			FreezeOnStop: true,
		},
		Player: NeonPlayer{
			StartX: 100,
			StartY: 520,
			Width:  36,
			Height: 36,
		},
		Camera: NeonCamera{
			Lead: 280,
		},
		Collision: NeonCollision{
			ContactTolerance:   1,
			PlatformCullBehind: 300,
			PlatformCullAhead:  900,
			SpikeMargin:        20,
			CarryDamping:       0.08,
		},
		Effects: NeonEffects{
			DeathShake:       8,
			ShakeDecay:       24,
			ParticleDrag:     3,
			ParticleGravity:  500,
			ParticleCapacity: 400,
		},
		Assist: NeonAssist{
			HoldToJump: true,
		},
		Rules: NeonRules{
			GravityPads: true,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultNeonYAML
}
