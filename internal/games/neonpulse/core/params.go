package core

// Params holds the tunable constants of a session.
type Params struct {
	// Physics
	Gravity      float64 // px/s^2, applied along the gravity direction
	JumpVelocity float64 // Negative = up under normal gravity
	RunSpeed     float64
	FlipCooldown float64
	FlipInset    float64

	// Rhythm
	BPM          float64
	PulseDecay   float64
	PhaseJitter  float64
	FreezeOnStop bool

	// Player spawn rectangle
	Start Rect

	CameraLead float64

	// Collision
	ContactTolerance float64
	CullBehind       float64
	CullAhead        float64
	SpikeMargin      float64
	CarryDamping     float64

	// Effects
	DeathShake       float64
	ShakeDecay       float64
	ParticleDrag     float64
	ParticleGravity  float64
	ParticleCapacity int

	// Rules
	HoldToJump  bool
	GravityPads bool

	// View size in world pixels, used for section lookup and culling
	ViewW float64
	ViewH float64
}

// DefaultParams returns the feature-complete tuning.
func DefaultParams() Params {
	return Params{
		Gravity:          2300,
		JumpVelocity:     -760,
		RunSpeed:         420,
		FlipCooldown:     0.35,
		FlipInset:        0.5,
		BPM:              140,
		PulseDecay:       6,
		PhaseJitter:      0.03,
		FreezeOnStop:     true,
		Start:            Rect{X: 100, Y: 520, W: 36, H: 36},
		CameraLead:       280,
		ContactTolerance: 1,
		CullBehind:       300,
		CullAhead:        900,
		SpikeMargin:      20,
		CarryDamping:     0.08,
		DeathShake:       8,
		ShakeDecay:       24,
		ParticleDrag:     3,
		ParticleGravity:  500,
		ParticleCapacity: 400,
		HoldToJump:       true,
		GravityPads:      true,
		ViewW:            1280,
		ViewH:            720,
	}
}
