// Package core provides the simulation core for the Neon Pulse rhythm runner.
// This package is UI-agnostic and deterministic for a given seed and input sequence.
package core

import (
	"math"

	platformcore "github.com/vovakirdan/neon-pulse/internal/core"
)

// Shorthands for the platform primitives used throughout the simulation.
type (
	Rect  = platformcore.Rect
	Vec2  = platformcore.Vec2
	Color = platformcore.Color
)

// Axis selects the direction a moving platform oscillates along.
type Axis uint8

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

// String returns the string representation of an axis.
func (a Axis) String() string {
	switch a {
	case AxisVertical:
		return "vertical"
	case AxisHorizontal:
		return "horizontal"
	default:
		return "unknown"
	}
}

// Platform is a solid rectangle that oscillates sinusoidally around Base.
// A zero Amplitude makes it static.
type Platform struct {
	Base      Rect
	Amplitude float64 // Peak offset in pixels
	Speed     float64 // Oscillations per unit of phase time
	Axis      Axis
	Phase     float64 // Radians
	Color     Color
}

func (p Platform) angle(t float64) float64 {
	return p.Phase + t*p.Speed*2*math.Pi
}

// RectAt returns the platform rectangle at phase time t.
// Only the coordinate on the oscillation axis changes.
func (p Platform) RectAt(t float64) Rect {
	r := p.Base
	offset := p.Amplitude * math.Sin(p.angle(t))
	if p.Axis == AxisVertical {
		r.Y += offset
	} else {
		r.X += offset
	}
	return r
}

// VelocityAt returns the platform's velocity along its axis at phase time t,
// the derivative of the RectAt offset.
func (p Platform) VelocityAt(t float64) float64 {
	return math.Cos(p.angle(t)) * p.Amplitude * p.Speed * 2 * math.Pi
}

// Moving reports whether the platform oscillates at all.
func (p Platform) Moving() bool {
	return p.Amplitude != 0 && p.Speed != 0
}

// Spike is a triangular hazard. Up spikes stand on the floor and point up,
// the others hang from the ceiling and point down.
type Spike struct {
	Base  Rect
	Up    bool
	Color Color
}

// JumpPad launches the player with Strength times the base jump velocity.
type JumpPad struct {
	Rect     Rect
	Strength float64
	Color    Color
}

// SpeedPad multiplies the run speed for Duration seconds.
type SpeedPad struct {
	Rect       Rect
	Multiplier float64
	Duration   float64
	Color      Color
}

// GravityPad inverts gravity. FlipsUp only selects the arrow hint drawn on it.
type GravityPad struct {
	Rect    Rect
	FlipsUp bool
	Color   Color
}

// Section colors the background for a range of world X.
type Section struct {
	StartX float64
	EndX   float64
	Top    Color // Gradient start (top of the screen)
	Bottom Color // Gradient end
}

// Contains reports whether world x falls in [StartX, EndX).
func (s Section) Contains(x float64) bool {
	return x >= s.StartX && x < s.EndX
}

// ParallaxLayer is a field of background sprites scrolling at Speed times the camera.
type ParallaxLayer struct {
	Speed   float64
	Color   Color
	Density int
	SizeMin float64
	SizeMax float64
}

// Particle is a short-lived cosmetic spark owned by a ParticlePool.
type Particle struct {
	Pos   Vec2
	Vel   Vec2
	Life  float64 // Seconds remaining
	Size  float64
	Color Color
}

// Alpha returns the fade factor derived from remaining life.
func (p Particle) Alpha() float64 {
	return platformcore.Clamp(p.Life*2.5, 0, 1)
}
