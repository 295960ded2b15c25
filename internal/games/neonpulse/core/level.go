package core

// Level is the immutable layout a session plays. It is built once at load
// time and never mutated by the simulation.
type Level struct {
	ID   string
	Name string

	FloorY   float64
	CeilingY float64
	BPM      float64 // Overrides the configured tempo when positive

	Platforms   []Platform
	Spikes      []Spike
	JumpPads    []JumpPad
	SpeedPads   []SpeedPad
	GravityPads []GravityPad
	Sections    []Section
	Layers      []ParallaxLayer
	Finish      Rect
}

// Length returns the world X of the finish line.
func (l *Level) Length() float64 {
	return l.Finish.X
}

// SectionAt returns the background section for world x.
func (l *Level) SectionAt(x float64) (Section, bool) {
	return CurrentSection(x, l.Sections)
}
