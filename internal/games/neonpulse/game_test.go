package neonpulse

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/neon-pulse/internal/config"
	platformcore "github.com/vovakirdan/neon-pulse/internal/core"
	"github.com/vovakirdan/neon-pulse/internal/games/neonpulse/core"
	"github.com/vovakirdan/neon-pulse/internal/games/neonpulse/levels"
	"github.com/vovakirdan/neon-pulse/internal/registry"
)

// isolate points the game at the embedded default config and restores the
// package settings when the test ends.
func isolate(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "neonpulse.yaml")
	if err := os.WriteFile(path, config.GetDefaultYAML(), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() {
		SetConfigPath("")
		SetVariant("")
		SetLevel("", "")
		//nolint:errcheck // empty preset always parses
		SetDifficultyPreset("")
	})
}

func newGame(t *testing.T, g *Game) *Game {
	t.Helper()
	g.Reset(platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	if err := g.Err(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	return g
}

func idle() platformcore.InputFrame {
	return platformcore.NewInputFrame()
}

func press(a platformcore.Action) platformcore.InputFrame {
	f := platformcore.NewInputFrame()
	f.Set(a)
	return f
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{GameID, ClassicGameID} {
		if !registry.Exists(id) {
			t.Errorf("game %q not registered", id)
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
	}
}

func TestParamsFromDefaultConfig(t *testing.T) {
	got := paramsFromConfig(config.DefaultNeonConfig())
	if got != core.DefaultParams() {
		t.Errorf("params from default config differ:\n got %+v\nwant %+v", got, core.DefaultParams())
	}
}

func TestInputFromFrame(t *testing.T) {
	held := platformcore.NewInputFrame()
	held.Hold(platformcore.ActionJump)

	tests := []struct {
		name  string
		frame platformcore.InputFrame
		want  core.Input
	}{
		{"idle", idle(), core.Input{}},
		{"jump press", press(platformcore.ActionJump), core.Input{JumpPressed: true, JumpHeld: true}},
		{"jump held", held, core.Input{JumpHeld: true}},
		{"restart", press(platformcore.ActionRestart), core.Input{RestartPressed: true}},
		{"pause only", press(platformcore.ActionPause), core.Input{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := inputFromFrame(tc.frame); got != tc.want {
				t.Errorf("got %+v, expected %+v", got, tc.want)
			}
		})
	}
}

func TestResetState(t *testing.T) {
	isolate(t)
	g := newGame(t, New())

	st := g.State()
	if st.GameOver || st.Won || st.Paused || st.Score != 0 || st.Attempts != 1 {
		t.Errorf("fresh state = %+v", st)
	}
	if g.Level().ID != levels.DefaultID {
		t.Errorf("level = %q", g.Level().ID)
	}
	if math.Abs(g.dt-1.0/60) > 1e-12 {
		t.Errorf("dt = %v, expected 1/60", g.dt)
	}
}

func TestStepClampsDT(t *testing.T) {
	isolate(t)
	g := New()
	g.Reset(platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: 1})
	if math.Abs(g.dt-g.Config().Physics.MaxDT) > 1e-12 {
		t.Errorf("dt = %v, expected max_dt %v", g.dt, g.Config().Physics.MaxDT)
	}
}

func TestRunMovesPlayer(t *testing.T) {
	isolate(t)
	g := newGame(t, New())

	for range 60 {
		g.Step(idle())
	}
	x := g.Frame().Player.X
	if x < 500 || x > 540 {
		t.Errorf("after one second x = %v, expected about 520", x)
	}
	if g.State().Score <= 0 {
		t.Errorf("progress should be positive, got %d", g.State().Score)
	}
}

func TestPauseFreezes(t *testing.T) {
	isolate(t)
	g := newGame(t, New())

	g.Step(idle())
	g.Step(press(platformcore.ActionPause))
	if !g.State().Paused || !g.Paused() {
		t.Fatal("expected paused")
	}
	x := g.Frame().Player.X
	for range 30 {
		g.Step(idle())
	}
	if g.Frame().Player.X != x {
		t.Error("player moved while paused")
	}

	g.Step(press(platformcore.ActionPause))
	g.Step(idle())
	if g.Paused() || g.Frame().Player.X <= x {
		t.Error("unpause should resume the run")
	}
}

func TestCrashAndRestart(t *testing.T) {
	isolate(t)
	g := newGame(t, New())

	for range 600 {
		if g.State().GameOver {
			break
		}
		g.Step(idle())
	}
	st := g.State()
	if !st.GameOver || st.Won {
		t.Fatalf("running into the first spike should crash, state %+v", st)
	}

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Crashed!") {
		t.Error("crash banner not rendered")
	}

	// Pause is ignored once the run has stopped.
	g.Step(press(platformcore.ActionPause))
	if g.Paused() {
		t.Error("pause should not toggle after a crash")
	}

	g.Step(press(platformcore.ActionRestart))
	st = g.State()
	if st.GameOver || st.Attempts != 2 {
		t.Errorf("after restart state = %+v", st)
	}
}

func TestClassicVariant(t *testing.T) {
	isolate(t)
	g := newGame(t, NewClassic())

	cfg := g.Config()
	if cfg.Variant != config.VariantClassic || cfg.Rules.GravityPads || cfg.Assist.HoldToJump {
		t.Errorf("classic config = %+v", cfg)
	}
	if g.Title() != "Neon Pulse Classic" {
		t.Errorf("title = %q", g.Title())
	}
}

func TestVariantOverride(t *testing.T) {
	isolate(t)
	SetVariant(config.VariantClassic)
	g := newGame(t, New())
	if g.Config().Variant != config.VariantClassic {
		t.Errorf("variant = %q, expected classic", g.Config().Variant)
	}
}

func TestDifficultyPreset(t *testing.T) {
	isolate(t)
	if err := SetDifficultyPreset("insane"); err == nil {
		t.Error("unknown preset should be rejected")
	}
	if err := SetDifficultyPreset("hard"); err != nil {
		t.Fatal(err)
	}
	g := newGame(t, New())
	if math.Abs(g.Config().Physics.RunSpeed-420*1.15) > 1e-9 {
		t.Errorf("run speed = %v", g.Config().Physics.RunSpeed)
	}
}

func TestUnknownLevelFallsBack(t *testing.T) {
	isolate(t)
	SetLevel("does_not_exist", t.TempDir())
	g := newGame(t, New())
	if g.Level().ID != levels.DefaultID {
		t.Errorf("level = %q, expected fallback to %q", g.Level().ID, levels.DefaultID)
	}
}

func TestRenderHUD(t *testing.T) {
	isolate(t)
	g := newGame(t, New())
	g.Step(idle())

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)

	hud := strings.Split(screen.String(), "\n")[0]
	if !strings.Contains(hud, "Neon Pulse") || !strings.Contains(hud, "140 BPM") {
		t.Errorf("HUD row = %q", hud)
	}
	if !strings.Contains(hud, "ATTEMPT 1") {
		t.Errorf("attempts missing from %q", hud)
	}

	players := 0
	for y := range screen.Height() {
		for x := range screen.Width() {
			c := screen.GetCell(x, y)
			if c.Rune == PlayerChar && c.Fg.B == 255 {
				players++
			}
		}
	}
	if players == 0 {
		t.Error("player not drawn")
	}
	rails := 0
	for _, line := range strings.Split(screen.String(), "\n") {
		// Entities resting on a rail may cover a few of its cells
		if strings.Count(line, string(RailChar)) >= screen.Width()*3/4 {
			rails++
		}
	}
	if rails != 2 {
		t.Errorf("found %d rail rows, expected floor and ceiling", rails)
	}
}

func TestRenderPaused(t *testing.T) {
	isolate(t)
	g := newGame(t, New())
	g.Step(press(platformcore.ActionPause))

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("pause banner not rendered")
	}
}
