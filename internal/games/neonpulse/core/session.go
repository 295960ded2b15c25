package core

import (
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"
)

// Session owns all mutable state of one play-through of a level.
// It is not safe for concurrent use.
type Session struct {
	level  *Level
	params Params
	logger *log.Logger
	seed   uint64

	player   Player
	gravity  GravityState
	speed    SpeedModifier
	phase    Phase
	holdJump bool

	songTime  float64
	pulse     float64
	phaseTime float64
	camX      float64

	shake          float64
	shakeX, shakeY float64
	shakeRng       *rand.Rand

	attempts  int
	particles *ParticlePool
	events    []Event
}

// NewSession creates a session at the start of level. A positive level BPM
// overrides params.BPM. A nil logger discards all output.
func NewSession(level *Level, params Params, seed uint64, logger *log.Logger) *Session {
	if level.BPM > 0 {
		params.BPM = level.BPM
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		level:     level,
		params:    params,
		logger:    logger,
		seed:      seed,
		particles: NewParticlePool(params.ParticleCapacity, seed, params.ParticleDrag, params.ParticleGravity),
		events:    make([]Event, 0, 8),
	}
	s.reset()
	s.attempts = 1

	s.logger.Info("run started", "level", level.ID, "bpm", params.BPM, "seed", seed)
	return s
}

// reset puts every piece of session state back to its initial value.
func (s *Session) reset() {
	s.player = Player{Rect: s.params.Start}
	s.gravity = GravityState{Direction: 1}
	s.speed = neutralSpeed
	s.phase = PhaseRunning
	s.holdJump = false

	s.songTime = 0
	s.pulse = BeatPulse(0, s.params.BPM, s.params.PulseDecay)
	s.phaseTime = PhaseTime(0, s.pulse, s.params.PhaseJitter)
	s.camX = 0

	s.shake = 0
	s.shakeX, s.shakeY = 0, 0
	s.shakeRng = newRand(^s.seed)

	s.particles.Reset(s.seed)
}

// Restart returns to the start of the level and counts a new attempt.
func (s *Session) Restart() {
	prev := s.phase
	s.reset()
	s.attempts++
	s.logger.Info("restart", "after", prev, "attempt", s.attempts)
}

// Level returns the level being played.
func (s *Session) Level() *Level { return s.level }

// Params returns the effective tuning.
func (s *Session) Params() Params { return s.params }

// Player returns the player state.
func (s *Session) Player() Player { return s.player }

// Gravity returns the gravity state.
func (s *Session) Gravity() GravityState { return s.gravity }

// Speed returns the active speed modifier.
func (s *Session) Speed() SpeedModifier { return s.speed }

// Phase returns the gameplay phase.
func (s *Session) Phase() Phase { return s.phase }

// Alive reports whether the player has not crashed.
func (s *Session) Alive() bool { return s.phase != PhaseDead }

// Finished reports whether the finish line was reached.
func (s *Session) Finished() bool { return s.phase == PhaseFinished }

// SongTime returns the beat clock in seconds.
func (s *Session) SongTime() float64 { return s.songTime }

// Pulse returns the beat pulse of the last step.
func (s *Session) Pulse() float64 { return s.pulse }

// PhaseTime returns the platform oscillation time of the last step.
func (s *Session) PhaseTime() float64 { return s.phaseTime }

// CameraX returns the world X at the left edge of the view.
func (s *Session) CameraX() float64 { return s.camX }

// Shake returns the current death-shake magnitude.
func (s *Session) Shake() float64 { return s.shake }

// ShakeOffset returns the jittered view offset of the last step.
func (s *Session) ShakeOffset() (x, y float64) { return s.shakeX, s.shakeY }

// Attempts returns how many runs were started, including the current one.
func (s *Session) Attempts() int { return s.attempts }

// Particles returns the particle pool.
func (s *Session) Particles() *ParticlePool { return s.particles }

// Progress returns how far the player is between start and finish, in [0, 1].
func (s *Session) Progress() float64 {
	span := s.level.Finish.X - s.params.Start.X
	if span <= 0 {
		return 1
	}
	p := (s.player.Rect.X - s.params.Start.X) / span
	switch {
	case p < 0:
		return 0
	case p > 1 || s.phase == PhaseFinished:
		return 1
	default:
		return p
	}
}
