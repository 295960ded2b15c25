package core

import (
	"math"
	"testing"

	platformcore "github.com/vovakirdan/neon-pulse/internal/core"
)

func TestBeatPulse(t *testing.T) {
	const bpm = 140
	spb := SecondsPerBeat(bpm)

	if got := BeatPulse(0, bpm, 6); got != 1 {
		t.Errorf("BeatPulse(0) = %v, expected 1", got)
	}
	if got := BeatPulse(spb*2.01, bpm, 6); got < 0.9 {
		t.Errorf("BeatPulse just after a beat = %v, expected a fresh pulse", got)
	}

	half := BeatPulse(spb*0.5, bpm, 6)
	if want := math.Exp(-6 * spb * 0.5); math.Abs(half-want) > 1e-12 {
		t.Errorf("BeatPulse(half beat) = %v, expected %v", half, want)
	}

	for i := range 200 {
		tt := float64(i) * 0.01
		p := BeatPulse(tt, bpm, 6)
		if p <= 0 || p > 1 {
			t.Fatalf("BeatPulse(%v) = %v, outside (0, 1]", tt, p)
		}
	}
}

func TestPhaseTime(t *testing.T) {
	if got := PhaseTime(2, 1, 0.03); math.Abs(got-2.03) > 1e-12 {
		t.Errorf("PhaseTime = %v, expected 2.03", got)
	}
	if got := PhaseTime(2, 0, 0.03); got != 2 {
		t.Errorf("PhaseTime with no pulse = %v, expected 2", got)
	}
}

func TestCurrentSection(t *testing.T) {
	sections := []Section{
		{StartX: 0, EndX: 100, Top: platformcore.ColorCyan},
		{StartX: 100, EndX: 200, Top: platformcore.ColorMagenta},
		{StartX: 50, EndX: 300, Top: platformcore.ColorGreen},
	}

	tests := []struct {
		x    float64
		want Color
	}{
		{0, platformcore.ColorCyan},
		{75, platformcore.ColorCyan}, // first match wins over the overlapping third
		{100, platformcore.ColorMagenta},
		{250, platformcore.ColorGreen},
		{5000, platformcore.ColorGreen}, // past the end falls back to the last
		{-10, platformcore.ColorGreen},
	}
	for _, tc := range tests {
		s, ok := CurrentSection(tc.x, sections)
		if !ok || s.Top != tc.want {
			t.Errorf("CurrentSection(%v) = %+v, %v; expected top %v", tc.x, s, ok, tc.want)
		}
	}

	if _, ok := CurrentSection(10, nil); ok {
		t.Error("CurrentSection with no sections should report false")
	}
}

func TestBandColor(t *testing.T) {
	s := Section{Bottom: platformcore.RGB(40, 10, 80)}
	if got := BandColor(s, 0); got != s.Bottom {
		t.Errorf("BandColor(pulse=0) = %v, expected %v", got, s.Bottom)
	}
	if got, want := BandColor(s, 1), platformcore.RGB(68, 20, 116); got != want {
		t.Errorf("BandColor(pulse=1) = %v, expected %v", got, want)
	}
}

func TestParallaxSprites(t *testing.T) {
	layer := ParallaxLayer{Speed: 0.12, Color: platformcore.ColorPurple, Density: 20, SizeMin: 6, SizeMax: 20}

	a := ParallaxSprites(layer, 1234, 1280, 720, 0.5)
	b := ParallaxSprites(layer, 1234, 1280, 720, 0.5)
	if len(a) != 20 {
		t.Fatalf("len = %d, expected 20", len(a))
	}

	round := 0
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sprite %d differs between identical calls", i)
		}
		sp := a[i]
		if sp.X < -640 || sp.X > 640+140 {
			t.Errorf("sprite %d X = %v out of range", i, sp.X)
		}
		if sp.Y < 0 || sp.Y > 720 {
			t.Errorf("sprite %d Y = %v out of range", i, sp.Y)
		}
		if sp.Size < layer.SizeMin-1e-9 || sp.Size > layer.SizeMax+1e-9 {
			t.Errorf("sprite %d size = %v out of range", i, sp.Size)
		}
		if math.Abs(sp.Alpha-0.30) > 1e-12 {
			t.Errorf("sprite %d alpha = %v, expected 0.30", i, sp.Alpha)
		}
		if sp.Round {
			round++
		}
	}
	// (i+20)%3 == 0 for i = 1, 4, ..., 19
	if round != 7 {
		t.Errorf("round sprites = %d, expected 7", round)
	}

	// The layer scrolls with the camera.
	moved := ParallaxSprites(layer, 1334, 1280, 720, 0.5)
	if moved[0].X == a[0].X {
		t.Error("sprites should move with the camera")
	}

	if got := ParallaxSprites(ParallaxLayer{}, 0, 1280, 720, 0); got != nil {
		t.Errorf("empty layer should produce no sprites, got %d", len(got))
	}
}
