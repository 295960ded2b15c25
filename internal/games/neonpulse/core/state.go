package core

// Phase is the session's gameplay state.
type Phase uint8

const (
	PhaseRunning Phase = iota
	PhaseDead
	PhaseFinished
)

// String returns the string representation of a phase.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseDead:
		return "dead"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Player is the runner's kinematic state.
type Player struct {
	Rect         Rect
	Vel          Vec2
	Grounded     bool
	PrevGrounded bool // Grounded at the end of the previous step
}

// GravityState tracks gravity inversion. Direction is +1 (down) or -1 (up).
type GravityState struct {
	Direction int
	Cooldown  float64 // Seconds until a gravity pad may flip again, never negative
}

// Inverted reports whether gravity pulls towards the ceiling.
func (g GravityState) Inverted() bool {
	return g.Direction < 0
}

// SpeedModifier is the active speed pad effect.
type SpeedModifier struct {
	Multiplier float64
	Remaining  float64
}

// neutralSpeed is the modifier with no boost.
var neutralSpeed = SpeedModifier{Multiplier: 1}

// Active reports whether a boost is running.
func (m SpeedModifier) Active() bool {
	return m.Remaining > 0
}

// speedEpsilon absorbs float drift when a duration is consumed in dt slices.
const speedEpsilon = 1e-9

// tick consumes dt of the remaining duration, returning to neutral once it
// has fully elapsed.
func (m *SpeedModifier) tick(dt float64) {
	if m.Remaining <= 0 {
		*m = neutralSpeed
		return
	}
	m.Remaining -= dt
	if m.Remaining <= speedEpsilon {
		*m = neutralSpeed
	}
}

// Input is one frame of player intent.
type Input struct {
	JumpPressed    bool // Edge: the jump key went down this frame
	JumpHeld       bool // Level: the jump key is down
	RestartPressed bool // Edge
}

// StepResult reports what a step did.
type StepResult struct {
	Phase  Phase
	Events []Event
}

// Has reports whether the step emitted an event of kind k.
func (r StepResult) Has(k EventKind) bool {
	for _, ev := range r.Events {
		if ev.Kind == k {
			return true
		}
	}
	return false
}
