// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"

	platformcore "github.com/vovakirdan/neon-pulse/internal/core"
	"github.com/vovakirdan/neon-pulse/internal/games/neonpulse/core"
	"gopkg.in/yaml.v3"
)

// Defaults applied when a level file leaves a value out.
const (
	DefaultFloorY        = 560
	DefaultCeilingY      = 80
	DefaultFinishW       = 8
	DefaultFinishH       = 720
	DefaultSpikeSpacing  = 0.86
	DefaultLayerSizeMin  = 4
	DefaultLayerSizeMax  = 14
	DefaultPadStrength   = 1.45
	DefaultSpeedDuration = 0.9
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	BPM      float64           `yaml:"bpm,omitempty"`
	FloorY   float64           `yaml:"floor_y,omitempty"`
	CeilingY float64           `yaml:"ceiling_y,omitempty"`
	Finish   YAMLRect          `yaml:"finish"`
	Sections []YAMLSection     `yaml:"sections,omitempty"`
	Layers   []YAMLLayer       `yaml:"layers,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`

	Platforms     []YAMLPlatform     `yaml:"platforms,omitempty"`
	Spikes        []YAMLSpike        `yaml:"spikes,omitempty"`
	SpikeClusters []YAMLSpikeCluster `yaml:"spike_clusters,omitempty"`
	JumpPads      []YAMLJumpPad      `yaml:"jump_pads,omitempty"`
	SpeedPads     []YAMLSpeedPad     `yaml:"speed_pads,omitempty"`
	GravityPads   []YAMLGravityPad   `yaml:"gravity_pads,omitempty"`
}

// YAMLRect is an axis-aligned rectangle in world pixels.
type YAMLRect struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

func (r YAMLRect) rect() core.Rect {
	return core.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

// YAMLSection is a background color band over a world X range.
type YAMLSection struct {
	StartX float64 `yaml:"start_x"`
	EndX   float64 `yaml:"end_x"`
	Top    string  `yaml:"top"`
	Bottom string  `yaml:"bottom"`
}

// YAMLLayer is a parallax sprite layer.
type YAMLLayer struct {
	Speed   float64 `yaml:"speed"`
	Color   string  `yaml:"color"`
	Density int     `yaml:"density"`
	SizeMin float64 `yaml:"size_min,omitempty"`
	SizeMax float64 `yaml:"size_max,omitempty"`
}

// YAMLPlatform is a solid, optionally oscillating platform.
type YAMLPlatform struct {
	YAMLRect  `yaml:",inline"`
	Amplitude float64 `yaml:"amplitude,omitempty"`
	Speed     float64 `yaml:"speed,omitempty"`
	Axis      string  `yaml:"axis,omitempty"` // vertical (default) or horizontal
	Phase     float64 `yaml:"phase,omitempty"`
	Color     string  `yaml:"color"`
}

// YAMLSpike is a single spike.
type YAMLSpike struct {
	YAMLRect `yaml:",inline"`
	Up       bool   `yaml:"up"`
	Color    string `yaml:"color"`
}

// YAMLSpikeCluster is a row of identical spikes standing on the floor (up)
// or hanging from the ceiling.
type YAMLSpikeCluster struct {
	StartX  float64 `yaml:"start_x"`
	Count   int     `yaml:"count"`
	W       float64 `yaml:"w"`
	H       float64 `yaml:"h"`
	Up      bool    `yaml:"up"`
	Spacing float64 `yaml:"spacing,omitempty"` // Fraction of W between spike origins
	Color   string  `yaml:"color"`
}

// YAMLJumpPad is a jump pad.
type YAMLJumpPad struct {
	YAMLRect `yaml:",inline"`
	Strength float64 `yaml:"strength,omitempty"`
	Color    string  `yaml:"color"`
}

// YAMLSpeedPad is a speed pad.
type YAMLSpeedPad struct {
	YAMLRect   `yaml:",inline"`
	Multiplier float64 `yaml:"multiplier"`
	Duration   float64 `yaml:"duration,omitempty"`
	Color      string  `yaml:"color"`
}

// YAMLGravityPad is a gravity flip pad.
type YAMLGravityPad struct {
	YAMLRect `yaml:",inline"`
	FlipsUp  bool   `yaml:"flips_up"`
	Color    string `yaml:"color"`
}

// Level represents a parsed level ready for use.
type Level struct {
	core.Level
	Metadata map[string]string
}

// ParseYAML parses a YAML level file and expands spike clusters.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	lvl := core.Level{
		ID:       yl.ID,
		Name:     yl.Name,
		BPM:      yl.BPM,
		FloorY:   orDefault(yl.FloorY, DefaultFloorY),
		CeilingY: orDefault(yl.CeilingY, DefaultCeilingY),
		Finish:   yl.Finish.rect(),
	}
	if lvl.Name == "" {
		lvl.Name = lvl.ID
	}
	lvl.Finish.W = orDefault(lvl.Finish.W, DefaultFinishW)
	lvl.Finish.H = orDefault(lvl.Finish.H, DefaultFinishH)

	p := &parser{}

	for _, s := range yl.Sections {
		lvl.Sections = append(lvl.Sections, core.Section{
			StartX: s.StartX,
			EndX:   s.EndX,
			Top:    p.color(s.Top, "section top"),
			Bottom: p.color(s.Bottom, "section bottom"),
		})
	}
	for _, l := range yl.Layers {
		lvl.Layers = append(lvl.Layers, core.ParallaxLayer{
			Speed:   l.Speed,
			Color:   p.color(l.Color, "layer"),
			Density: l.Density,
			SizeMin: orDefault(l.SizeMin, DefaultLayerSizeMin),
			SizeMax: orDefault(l.SizeMax, DefaultLayerSizeMax),
		})
	}

	for _, pl := range yl.Platforms {
		lvl.Platforms = append(lvl.Platforms, core.Platform{
			Base:      pl.rect(),
			Amplitude: pl.Amplitude,
			Speed:     pl.Speed,
			Axis:      p.axis(pl.Axis),
			Phase:     pl.Phase,
			Color:     p.color(pl.Color, "platform"),
		})
	}

	for _, s := range yl.Spikes {
		lvl.Spikes = append(lvl.Spikes, core.Spike{Base: s.rect(), Up: s.Up, Color: p.color(s.Color, "spike")})
	}
	for i, c := range yl.SpikeClusters {
		if !p.cluster(i, c) {
			continue
		}
		lvl.Spikes = append(lvl.Spikes, ExpandCluster(c, lvl.FloorY, lvl.CeilingY, p.color(c.Color, "spike cluster"))...)
	}

	for _, j := range yl.JumpPads {
		lvl.JumpPads = append(lvl.JumpPads, core.JumpPad{
			Rect:     j.rect(),
			Strength: orDefault(j.Strength, DefaultPadStrength),
			Color:    p.color(j.Color, "jump pad"),
		})
	}
	for _, s := range yl.SpeedPads {
		lvl.SpeedPads = append(lvl.SpeedPads, core.SpeedPad{
			Rect:       s.rect(),
			Multiplier: s.Multiplier,
			Duration:   orDefault(s.Duration, DefaultSpeedDuration),
			Color:      p.color(s.Color, "speed pad"),
		})
	}
	for _, g := range yl.GravityPads {
		lvl.GravityPads = append(lvl.GravityPads, core.GravityPad{
			Rect:    g.rect(),
			FlipsUp: g.FlipsUp,
			Color:   p.color(g.Color, "gravity pad"),
		})
	}

	if p.err != nil {
		return Level{}, p.err
	}
	return Level{Level: lvl, Metadata: yl.Metadata}, nil
}

// ExpandCluster turns a spike cluster into individual spikes.
func ExpandCluster(c YAMLSpikeCluster, floorY, ceilingY float64, col core.Color) []core.Spike {
	spacing := orDefault(c.Spacing, DefaultSpikeSpacing)
	y := ceilingY
	if c.Up {
		y = floorY - c.H
	}
	if c.Count <= 0 {
		return nil
	}
	spikes := make([]core.Spike, 0, c.Count)
	for i := range c.Count {
		spikes = append(spikes, core.Spike{
			Base:  core.Rect{X: c.StartX + float64(i)*c.W*spacing, Y: y, W: c.W, H: c.H},
			Up:    c.Up,
			Color: col,
		})
	}
	return spikes
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

// parser collects the first conversion error so field parsing stays linear.
type parser struct {
	err error
}

func (p *parser) color(s, what string) core.Color {
	if s == "" {
		return platformcore.ColorWhite
	}
	c, err := platformcore.ParseColor(s)
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("%s color: %w", what, err)
	}
	return c
}

// cluster reports whether a spike cluster has a usable count and size.
func (p *parser) cluster(i int, c YAMLSpikeCluster) bool {
	var err error
	switch {
	case c.Count < 0:
		err = fmt.Errorf("spike cluster %d: negative count %d", i, c.Count)
	case c.Count > 0 && (c.W <= 0 || c.H <= 0):
		err = fmt.Errorf("spike cluster %d: size %gx%g must be positive", i, c.W, c.H)
	}
	if err != nil && p.err == nil {
		p.err = err
	}
	return err == nil
}

func (p *parser) axis(s string) core.Axis {
	switch s {
	case "", "vertical", "v":
		return core.AxisVertical
	case "horizontal", "h":
		return core.AxisHorizontal
	default:
		if p.err == nil {
			p.err = fmt.Errorf("platform axis: unknown value %q", s)
		}
		return core.AxisVertical
	}
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
