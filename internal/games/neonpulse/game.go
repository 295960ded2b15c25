// Package neonpulse adapts the Neon Pulse simulation to the platform's Game
// interface: it loads config and level data, steps the session at a fixed dt
// and projects the world onto a terminal Screen.
package neonpulse

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-pulse/internal/config"
	platformcore "github.com/vovakirdan/neon-pulse/internal/core"
	"github.com/vovakirdan/neon-pulse/internal/games/neonpulse/core"
	"github.com/vovakirdan/neon-pulse/internal/games/neonpulse/levels"
	"github.com/vovakirdan/neon-pulse/internal/registry"
)

// Registered game IDs.
const (
	GameID        = "neonpulse"
	ClassicGameID = "neonpulse_classic"
)

// Settings chosen on the command line, applied on every Reset.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	variantOverride  string
	levelID          = levels.DefaultID
	levelsDir        string
	logger           *log.Logger
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Empty keeps the config as is.
func SetDifficultyPreset(preset string) error {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	difficultyPreset = p
	return nil
}

// SetVariant forces a ruleset for the default game. Empty uses the config file's variant.
func SetVariant(variant string) {
	variantOverride = variant
}

// SetLevel selects the level by ID, looked up in dir first and then among
// the built-in levels.
func SetLevel(id, dir string) {
	if id == "" {
		id = levels.DefaultID
	}
	levelID = id
	levelsDir = dir
}

// SetLogger sets the logger handed to new sessions.
func SetLogger(l *log.Logger) {
	logger = l
}

// Game implements registry.Game for Neon Pulse.
type Game struct {
	id      string
	title   string
	variant string // Forced ruleset, empty follows config

	runtime platformcore.RuntimeConfig
	cfg     config.NeonConfig
	level   levels.Level
	session *core.Session
	paused  bool
	dt      float64
	err     error
}

// New creates the feature-complete game.
func New() *Game {
	return &Game{id: GameID, title: "Neon Pulse"}
}

// NewClassic creates the game with the legacy ruleset.
func NewClassic() *Game {
	return &Game{id: ClassicGameID, title: "Neon Pulse Classic", variant: config.VariantClassic}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset loads config and level and starts a fresh session.
func (g *Game) Reset(runtime platformcore.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false
	g.err = nil

	cfg, err := config.Load(configPath)
	if err != nil {
		g.logger().Warn("using default config", "err", err)
		cfg = config.DefaultNeonConfig()
	}
	variant := g.variant
	if variant == "" {
		variant = variantOverride
	}
	config.ApplyVariant(&cfg, variant)
	config.ApplyPreset(&cfg, difficultyPreset)
	g.cfg = cfg

	lvl, err := levels.Find(levelID, levelsDir)
	if err != nil {
		g.logger().Warn("falling back to the default level", "level", levelID, "err", err)
		lvl, err = levels.Default()
	}
	if err != nil {
		g.err = err
		g.session = nil
		return
	}
	g.level = lvl

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = platformcore.DefaultConfig().TickRate
	}
	g.dt = min(1/float64(tickRate), cfg.Physics.MaxDT)

	g.session = core.NewSession(&g.level.Level, paramsFromConfig(cfg), uint64(runtime.Seed), logger)
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if g.session == nil {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) && g.session.Phase() == core.PhaseRunning {
		g.paused = !g.paused
	}
	if g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	g.session.Step(inputFromFrame(in), g.dt)
	return platformcore.StepResult{State: g.State()}
}

// State returns the current game state. Score is level progress in percent.
func (g *Game) State() platformcore.GameState {
	if g.session == nil {
		return platformcore.GameState{GameOver: true}
	}
	return platformcore.GameState{
		Score:    int(g.session.Progress()*100 + 0.5),
		GameOver: g.session.Phase() != core.PhaseRunning,
		Won:      g.session.Finished(),
		Paused:   g.paused,
		Attempts: g.session.Attempts(),
	}
}

// Frame returns the render snapshot for pixel front-ends.
func (g *Game) Frame() core.Frame {
	if g.session == nil {
		return core.Frame{}
	}
	return g.session.Frame()
}

// Paused reports whether the game is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// Err returns the level loading error of the last Reset, if any.
func (g *Game) Err() error {
	return g.err
}

// Config returns the effective configuration of the current session.
func (g *Game) Config() config.NeonConfig {
	return g.cfg
}

// Level returns the level being played.
func (g *Game) Level() levels.Level {
	return g.level
}

func (g *Game) logger() *log.Logger {
	if logger == nil {
		return log.Default()
	}
	return logger
}

// inputFromFrame maps platform actions to the session's jump and restart input.
func inputFromFrame(in platformcore.InputFrame) core.Input {
	return core.Input{
		JumpPressed:    in.Has(platformcore.ActionJump),
		JumpHeld:       in.IsHeld(platformcore.ActionJump),
		RestartPressed: in.Has(platformcore.ActionRestart),
	}
}

// paramsFromConfig converts the YAML config into session parameters.
func paramsFromConfig(cfg config.NeonConfig) core.Params {
	p := core.DefaultParams()

	p.Gravity = cfg.Physics.Gravity
	p.JumpVelocity = cfg.Physics.JumpVelocity
	p.RunSpeed = cfg.Physics.RunSpeed
	p.FlipCooldown = cfg.Physics.FlipCooldown
	p.FlipInset = cfg.Physics.FlipInset

	p.BPM = cfg.Rhythm.BPM
	p.PulseDecay = cfg.Rhythm.PulseDecay
	p.PhaseJitter = cfg.Rhythm.PhaseJitter
	p.FreezeOnStop = cfg.Rhythm.FreezeOnStop

	p.Start = core.Rect{X: cfg.Player.StartX, Y: cfg.Player.StartY, W: cfg.Player.Width, H: cfg.Player.Height}
	p.CameraLead = cfg.Camera.Lead

	p.ContactTolerance = cfg.Collision.ContactTolerance
	p.CullBehind = cfg.Collision.PlatformCullBehind
	p.CullAhead = cfg.Collision.PlatformCullAhead
	p.SpikeMargin = cfg.Collision.SpikeMargin
	p.CarryDamping = cfg.Collision.CarryDamping

	p.DeathShake = cfg.Effects.DeathShake
	p.ShakeDecay = cfg.Effects.ShakeDecay
	p.ParticleDrag = cfg.Effects.ParticleDrag
	p.ParticleGravity = cfg.Effects.ParticleGravity
	p.ParticleCapacity = cfg.Effects.ParticleCapacity

	p.HoldToJump = cfg.Assist.HoldToJump
	p.GravityPads = cfg.Rules.GravityPads
	return p
}

// Register both rulesets with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
	registry.Register(ClassicGameID, func() registry.Game {
		return NewClassic()
	})
}
