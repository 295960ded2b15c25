package core

import (
	"math"
	"math/rand/v2"

	platformcore "github.com/vovakirdan/neon-pulse/internal/core"
)

// Origin selects where on the player rectangle a burst starts.
type Origin uint8

const (
	OriginBottomCenter Origin = iota
	OriginCenter
)

// Burst describes a batch of particles. Integer ranges are inclusive.
type Burst struct {
	Count      int
	AngleMin   int // Degrees
	AngleMax   int
	SpeedMin   int // Pixels per second
	SpeedMax   int
	Life       float64 // Minimum lifetime in seconds
	LifeJitter int     // Extra lifetime in hundredths of a second, 0..LifeJitter
	SizeMin    int
	SizeMax    int
	InvertY    bool // Negate the vertical component (dust kicked downward)
	Origin     Origin
	Alpha      float64
}

// Burst presets per event.
var (
	JumpBurst        = Burst{Count: 10, AngleMin: -100, AngleMax: -80, SpeedMin: 160, SpeedMax: 320, Life: 0.45, LifeJitter: 20, SizeMin: 2, SizeMax: 6, InvertY: true, Origin: OriginBottomCenter, Alpha: 0.9}
	JumpPadBurst     = Burst{Count: 16, AngleMin: -110, AngleMax: -70, SpeedMin: 220, SpeedMax: 420, Life: 0.5, LifeJitter: 20, SizeMin: 3, SizeMax: 7, InvertY: true, Origin: OriginBottomCenter, Alpha: 0.95}
	SpeedPadBurst    = Burst{Count: 12, AngleMin: -20, AngleMax: 20, SpeedMin: 80, SpeedMax: 260, Life: 0.35, LifeJitter: 10, SizeMin: 2, SizeMax: 4, Origin: OriginCenter, Alpha: 0.9}
	GravityFlipBurst = Burst{Count: 20, AngleMin: 0, AngleMax: 360, SpeedMin: 120, SpeedMax: 420, Life: 0.5, LifeJitter: 20, SizeMin: 2, SizeMax: 6, Origin: OriginCenter, Alpha: 0.9}
	FinishBurst      = Burst{Count: 60, AngleMin: 0, AngleMax: 360, SpeedMin: 120, SpeedMax: 480, Life: 0.8, LifeJitter: 30, SizeMin: 3, SizeMax: 7, Origin: OriginCenter, Alpha: 0.9}
)

// BurstFor returns the burst preset and color for an event.
// ok is false for events that spawn nothing.
func BurstFor(ev Event) (b Burst, c Color, ok bool) {
	switch ev.Kind {
	case EventJump:
		return JumpBurst, platformcore.ColorYellow, true
	case EventJumpPad:
		return JumpPadBurst, ev.Color, true
	case EventSpeedPad:
		return SpeedPadBurst, ev.Color, true
	case EventGravityFlip:
		return GravityFlipBurst, ev.Color, true
	case EventFinish:
		return FinishBurst, platformcore.ColorGreen, true
	default:
		return Burst{}, Color{}, false
	}
}

// ParticlePool is a fixed-capacity particle arena.
// Removal swaps the dead particle with the last one, so order is not stable.
type ParticlePool struct {
	items   []Particle
	rng     *rand.Rand
	drag    float64
	gravity float64
}

// NewParticlePool creates a pool that never holds more than capacity particles.
func NewParticlePool(capacity int, seed uint64, drag, gravity float64) *ParticlePool {
	if capacity < 1 {
		capacity = 1
	}
	return &ParticlePool{
		items:   make([]Particle, 0, capacity),
		rng:     newRand(seed),
		drag:    drag,
		gravity: gravity,
	}
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Len returns the number of live particles.
func (p *ParticlePool) Len() int {
	return len(p.items)
}

// Cap returns the pool capacity.
func (p *ParticlePool) Cap() int {
	return cap(p.items)
}

// Particles returns the live particles. The slice is only valid until the next
// Spawn, Update or Reset and must not be modified.
func (p *ParticlePool) Particles() []Particle {
	return p.items
}

// Spawn adds a particle. It reports false and drops the particle when full.
func (p *ParticlePool) Spawn(pt Particle) bool {
	if len(p.items) == cap(p.items) {
		return false
	}
	p.items = append(p.items, pt)
	return true
}

// Emit spawns a burst around the player rectangle and returns how many
// particles fit in the pool.
func (p *ParticlePool) Emit(b Burst, player Rect, c Color) int {
	origin := Vec2{X: player.X + player.W*0.5, Y: player.Y + player.H}
	if b.Origin == OriginCenter {
		origin = player.Center()
	}
	col := c.Fade(b.Alpha)

	spawned := 0
	for range b.Count {
		ang := float64(p.intRange(b.AngleMin, b.AngleMax)) * math.Pi / 180
		sp := float64(p.intRange(b.SpeedMin, b.SpeedMax))
		vy := math.Sin(ang) * sp
		if b.InvertY {
			vy = -vy
		}
		pt := Particle{
			Pos:   origin,
			Vel:   Vec2{X: math.Cos(ang) * sp, Y: vy},
			Life:  b.Life + float64(p.intRange(0, b.LifeJitter))*0.01,
			Size:  float64(p.intRange(b.SizeMin, b.SizeMax)),
			Color: col,
		}
		if !p.Spawn(pt) {
			break
		}
		spawned++
	}
	return spawned
}

// intRange returns a uniform integer in [lo, hi].
func (p *ParticlePool) intRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + p.rng.IntN(hi-lo+1)
}

// Update ages every particle by dt, drops expired ones and integrates the rest.
// Gravity always pulls particles down, whatever the gameplay gravity is.
func (p *ParticlePool) Update(dt float64) {
	for i := len(p.items) - 1; i >= 0; i-- {
		pt := &p.items[i]
		pt.Life -= dt
		if pt.Life <= 0 {
			last := len(p.items) - 1
			p.items[i] = p.items[last]
			p.items = p.items[:last]
			continue
		}
		pt.Pos = pt.Pos.Add(pt.Vel.Scale(dt))
		pt.Vel.X *= 1 - p.drag*dt
		pt.Vel.Y += p.gravity * dt
	}
}

// Reset empties the pool and reseeds its random source.
func (p *ParticlePool) Reset(seed uint64) {
	clear(p.items)
	p.items = p.items[:0]
	p.rng = newRand(seed)
}
