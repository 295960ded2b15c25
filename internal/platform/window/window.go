// Package window provides the ebiten front-end: a 1280x720 pixel renderer
// with real key-held input.
package window

import (
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/neon-pulse/internal/core"
	npcore "github.com/vovakirdan/neon-pulse/internal/games/neonpulse/core"
)

// Source is a game that exposes its render snapshot.
type Source interface {
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Frame() npcore.Frame
	Paused() bool
}

// Logical resolution of the play field.
const (
	ViewW = 1280
	ViewH = 720
)

var (
	jumpKeys    = []ebiten.Key{ebiten.KeySpace, ebiten.KeyUp, ebiten.KeyW}
	restartKeys = []ebiten.Key{ebiten.KeyR}
	pauseKeys   = []ebiten.Key{ebiten.KeyP}
	quitKeys    = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}
)

// Game implements ebiten.Game on top of a Source.
type Game struct {
	src      Source
	logger   *log.Logger
	white    *ebiten.Image
	lastOver bool
}

// New creates the ebiten adapter for src.
func New(src Source, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default()
	}
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)
	return &Game{src: src, logger: logger, white: white}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	keys := sampleKeys()
	if keys.QuitPressed {
		return ebiten.Termination
	}

	res := g.src.Step(inputFrame(keys))
	if res.State.GameOver && !g.lastOver {
		g.logger.Debug("run ended", "won", res.State.Won, "progress", res.State.Score)
	}
	g.lastOver = res.State.GameOver
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	f := g.src.Frame()
	d := &drawer{dst: screen, f: &f, white: g.white}
	d.draw(g.src.Paused())
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ViewW, ViewH
}

func sampleKeys() keySnapshot {
	return keySnapshot{
		JumpPressed:    anyJustPressed(jumpKeys),
		JumpHeld:       anyPressed(jumpKeys),
		RestartPressed: anyJustPressed(restartKeys),
		PausePressed:   anyJustPressed(pauseKeys),
		QuitPressed:    anyJustPressed(quitKeys),
	}
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// Run resets src and opens the window. It returns when the window closes.
func Run(src Source, cfg core.RuntimeConfig, logger *log.Logger) error {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	src.Reset(cfg)

	ebiten.SetWindowSize(ViewW, ViewH)
	ebiten.SetWindowTitle(src.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TickRate)

	// RunGame returns nil when Update reports ebiten.Termination.
	return ebiten.RunGame(New(src, logger))
}
