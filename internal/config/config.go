// Package config provides YAML-based game configuration loading and
// difficulty presets for Neon Pulse.
package config

import (
	"errors"
	"fmt"
)

// Ruleset variants.
const (
	VariantPulse   = "pulse"   // Gravity pads and hold-to-jump enabled
	VariantClassic = "classic" // Original loop: lighter gravity, no gravity pads, no hold-to-jump
)

// NeonConfig contains all configuration for Neon Pulse.
type NeonConfig struct {
	Variant   string        `yaml:"variant"`
	Physics   NeonPhysics   `yaml:"physics"`
	Rhythm    NeonRhythm    `yaml:"rhythm"`
	Player    NeonPlayer    `yaml:"player"`
	Camera    NeonCamera    `yaml:"camera"`
	Collision NeonCollision `yaml:"collision"`
	Effects   NeonEffects   `yaml:"effects"`
	Assist    NeonAssist    `yaml:"assist"`
	Rules     NeonRules     `yaml:"rules"`
}

// NeonPhysics defines physics parameters in pixels and seconds.
type NeonPhysics struct {
	Gravity      float64 `yaml:"gravity"`       // Downward acceleration (px/s^2)
	JumpVelocity float64 `yaml:"jump_velocity"` // Base jump velocity, negative = up
	RunSpeed     float64 `yaml:"run_speed"`     // Horizontal auto-run speed (px/s)
	FlipCooldown float64 `yaml:"flip_cooldown"` // Seconds between gravity flips
	FlipInset    float64 `yaml:"flip_inset"`    // Gap left between player and surface after a flip
	MaxDT        float64 `yaml:"max_dt"`        // Upper bound on a single frame step
}

// NeonRhythm defines the beat clock.
type NeonRhythm struct {
	BPM          float64 `yaml:"bpm"`
	PulseDecay   float64 `yaml:"pulse_decay"`    // Exponential decay rate of the beat pulse
	PhaseJitter  float64 `yaml:"phase_jitter"`   // Pulse contribution to platform phase time
	FreezeOnStop bool    `yaml:"freeze_on_stop"` // Stop song time while crashed or finished
}

// NeonPlayer defines the player's spawn rectangle.
type NeonPlayer struct {
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// NeonCamera defines the horizontal follow camera.
type NeonCamera struct {
	Lead float64 `yaml:"lead"` // Distance kept between the camera's left edge and the player
}

// NeonCollision defines collision tolerances and culling windows.
type NeonCollision struct {
	ContactTolerance   float64 `yaml:"contact_tolerance"`
	PlatformCullBehind float64 `yaml:"platform_cull_behind"`
	PlatformCullAhead  float64 `yaml:"platform_cull_ahead"`
	SpikeMargin        float64 `yaml:"spike_margin"`
	CarryDamping       float64 `yaml:"carry_damping"`
}

// NeonEffects defines cosmetic effect parameters.
type NeonEffects struct {
	DeathShake       float64 `yaml:"death_shake"`
	ShakeDecay       float64 `yaml:"shake_decay"`
	ParticleDrag     float64 `yaml:"particle_drag"`
	ParticleGravity  float64 `yaml:"particle_gravity"`
	ParticleCapacity int     `yaml:"particle_capacity"`
}

// NeonAssist defines input assists.
type NeonAssist struct {
	HoldToJump bool `yaml:"hold_to_jump"` // Jump again on every landing while the key is held
}

// NeonRules toggles gameplay features that differ between variants.
type NeonRules struct {
	GravityPads bool `yaml:"gravity_pads"`
}

// Validate checks that the configuration can drive a simulation.
func (c NeonConfig) Validate() error {
	var errs []error
	if c.Variant != VariantPulse && c.Variant != VariantClassic {
		errs = append(errs, fmt.Errorf("variant: unknown value %q", c.Variant))
	}
	if c.Rhythm.BPM <= 0 {
		errs = append(errs, errors.New("rhythm.bpm: must be positive"))
	}
	if c.Physics.Gravity <= 0 {
		errs = append(errs, errors.New("physics.gravity: must be positive"))
	}
	if c.Physics.JumpVelocity >= 0 {
		errs = append(errs, errors.New("physics.jump_velocity: must be negative (up)"))
	}
	if c.Physics.MaxDT <= 0 {
		errs = append(errs, errors.New("physics.max_dt: must be positive"))
	}
	if c.Physics.FlipCooldown < 0 {
		errs = append(errs, errors.New("physics.flip_cooldown: must not be negative"))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player: width and height must be positive"))
	}
	if c.Effects.ParticleCapacity <= 0 {
		errs = append(errs, errors.New("effects.particle_capacity: must be positive"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ApplyVariant rewrites the ruleset-dependent values for the given variant.
func ApplyVariant(cfg *NeonConfig, variant string) {
	switch variant {
	case VariantClassic:
		cfg.Variant = VariantClassic
		cfg.Physics.Gravity = 1800
		cfg.Assist.HoldToJump = false
		cfg.Rules.GravityPads = false
	case VariantPulse:
		cfg.Variant = VariantPulse
		cfg.Rules.GravityPads = true
	}
}
