package core

import (
	"math"

	platformcore "github.com/vovakirdan/neon-pulse/internal/core"
)

// SecondsPerBeat returns the beat length for a tempo.
func SecondsPerBeat(bpm float64) float64 {
	return 60 / bpm
}

// BeatPulse returns exp(-decay * time since the last beat), a value in (0, 1]
// that jumps to 1 on every beat boundary.
func BeatPulse(songTime, bpm, decay float64) float64 {
	spb := SecondsPerBeat(bpm)
	beat := math.Mod(songTime, spb)
	if beat < 0 {
		beat += spb
	}
	return math.Exp(-decay * beat)
}

// PhaseTime is the time parameter fed to platform oscillation: song time
// nudged forward by the beat pulse.
func PhaseTime(songTime, pulse, jitter float64) float64 {
	return songTime + pulse*jitter
}

// CurrentSection returns the first section containing x, or the last section
// when none does. ok is false only for an empty list.
func CurrentSection(x float64, sections []Section) (Section, bool) {
	if len(sections) == 0 {
		return Section{}, false
	}
	for _, s := range sections {
		if s.Contains(x) {
			return s, true
		}
	}
	return sections[len(sections)-1], true
}

// BandColor is the horizontal glow band color: the section's bottom color
// brightened with the pulse.
func BandColor(s Section, pulse float64) Color {
	return s.Bottom.Brighten(int(28*pulse), int(10*pulse), int(36*pulse))
}

// Sprite is one parallax background shape in screen coordinates.
type Sprite struct {
	X, Y  float64
	Size  float64
	Alpha float64
	Round bool // Circle when true, diamond otherwise
	Color Color
}

// ParallaxSprites lays out a layer's sprites for a camera position and view size.
// The layout is a pure function of its arguments.
func ParallaxSprites(layer ParallaxLayer, camX, viewW, viewH, pulse float64) []Sprite {
	count := layer.Density
	if count <= 0 {
		return nil
	}
	alpha := platformcore.Clamp(0.22+0.16*pulse, 0, 1)
	sprites := make([]Sprite, count)
	for i := range count {
		t := float64(i) / float64(count)
		x := math.Mod(camX*layer.Speed+t*9000, viewW)
		if x < 0 {
			x += viewW
		}
		sprites[i] = Sprite{
			X:     x - viewW*0.5 + t*140,
			Y:     (math.Sin(t*12.1)*0.5 + 0.5) * viewH,
			Size:  layer.SizeMin + (layer.SizeMax-layer.SizeMin)*(0.5+0.5*math.Sin(t*7.9)),
			Alpha: alpha,
			Round: (i+count)%3 == 0,
			Color: layer.Color,
		}
	}
	return sprites
}
