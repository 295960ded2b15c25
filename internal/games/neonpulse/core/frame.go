package core

import (
	"fmt"
)

// frameMargin is how far outside the view entities are still included.
const frameMargin = 160

// Drawn is an entity rectangle with its color, in world coordinates.
type Drawn struct {
	Rect  Rect
	Color Color
}

// Spark is a particle as a front-end draws it.
type Spark struct {
	Pos   Vec2
	Size  float64
	Color Color // Alpha already faded by remaining life
}

// HUD holds the text values shown over the play field.
type HUD struct {
	Title           string
	BPM             float64
	SpeedActive     bool
	SpeedMultiplier float64
	SpeedRemaining  float64
	Crashed         bool
	Finished        bool
	Attempts        int
	Progress        float64 // 0..1
}

// SpeedText returns the boost readout, empty when no boost is active.
func (h HUD) SpeedText() string {
	if !h.SpeedActive {
		return ""
	}
	return fmt.Sprintf("SPEED x%.2f (%.1fs)", h.SpeedMultiplier, h.SpeedRemaining)
}

// Banner returns the centered message and its subtitle, empty while running.
func (h HUD) Banner() (title, sub string) {
	switch {
	case h.Finished:
		return "LEVEL COMPLETE!", "Press R to restart"
	case h.Crashed:
		return "Crashed! Press R to retry", ""
	default:
		return "", ""
	}
}

// Frame is a read-only snapshot of everything a front-end needs to draw one
// frame. Entities are limited to those near the view.
type Frame struct {
	ViewW, ViewH float64
	FloorY       float64
	CeilingY     float64

	Player     Rect
	Phase      Phase
	GravityDir int
	CameraX    float64
	ShakeX     float64
	ShakeY     float64
	Pulse      float64

	Section    Section
	HasSection bool
	Band       Color
	Sprites    []Sprite

	Platforms   []Drawn
	Spikes      []Spike
	JumpPads    []Drawn
	SpeedPads   []Drawn
	GravityPads []GravityPad
	Finish      Rect
	Particles   []Spark

	HUD HUD
}

// Alive reports whether the player has not crashed.
func (f *Frame) Alive() bool { return f.Phase != PhaseDead }

// Finished reports whether the level is complete.
func (f *Frame) Finished() bool { return f.Phase == PhaseFinished }

// ToView converts a world rectangle to view coordinates, shake included.
func (f *Frame) ToView(r Rect) Rect {
	return r.Translate(-f.CameraX+f.ShakeX, f.ShakeY)
}

// Frame builds the render snapshot of the current state.
func (s *Session) Frame() Frame {
	viewW, viewH := s.params.ViewW, s.params.ViewH
	f := Frame{
		ViewW:      viewW,
		ViewH:      viewH,
		FloorY:     s.level.FloorY,
		CeilingY:   s.level.CeilingY,
		Player:     s.player.Rect,
		Phase:      s.phase,
		GravityDir: s.gravity.Direction,
		CameraX:    s.camX,
		ShakeX:     s.shakeX,
		ShakeY:     s.shakeY,
		Pulse:      s.pulse,
		Finish:     s.level.Finish,
		HUD: HUD{
			Title:           s.level.Name,
			BPM:             s.params.BPM,
			SpeedActive:     s.speed.Active(),
			SpeedMultiplier: s.speed.Multiplier,
			SpeedRemaining:  s.speed.Remaining,
			Crashed:         s.phase == PhaseDead,
			Finished:        s.phase == PhaseFinished,
			Attempts:        s.attempts,
			Progress:        s.Progress(),
		},
	}

	f.Section, f.HasSection = s.level.SectionAt(s.camX + viewW*0.5)
	if f.HasSection {
		f.Band = BandColor(f.Section, s.pulse)
	}
	for _, layer := range s.level.Layers {
		f.Sprites = append(f.Sprites, ParallaxSprites(layer, s.camX, viewW, viewH, s.pulse)...)
	}

	visible := func(r Rect) bool {
		x := r.X - s.camX
		return x+r.W >= -frameMargin && x <= viewW+frameMargin
	}

	for _, pl := range s.level.Platforms {
		if r := pl.RectAt(s.phaseTime); visible(r) {
			f.Platforms = append(f.Platforms, Drawn{Rect: r, Color: pl.Color})
		}
	}
	for _, sp := range s.level.Spikes {
		if visible(sp.Base) {
			f.Spikes = append(f.Spikes, sp)
		}
	}
	for _, jp := range s.level.JumpPads {
		if visible(jp.Rect) {
			f.JumpPads = append(f.JumpPads, Drawn{Rect: jp.Rect, Color: jp.Color})
		}
	}
	for _, sp := range s.level.SpeedPads {
		if visible(sp.Rect) {
			f.SpeedPads = append(f.SpeedPads, Drawn{Rect: sp.Rect, Color: sp.Color})
		}
	}
	for _, gp := range s.level.GravityPads {
		if visible(gp.Rect) {
			f.GravityPads = append(f.GravityPads, gp)
		}
	}

	parts := s.particles.Particles()
	f.Particles = make([]Spark, len(parts))
	for i, pt := range parts {
		f.Particles[i] = Spark{
			Pos:   pt.Pos,
			Size:  pt.Size,
			Color: pt.Color.Fade(pt.Alpha()),
		}
	}
	return f
}
