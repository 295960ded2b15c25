package levels

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/neon-pulse/internal/games/neonpulse/core"
	"github.com/vovakirdan/neon-pulse/internal/games/neonpulse/levels/formats"
)

const miniLevel = `
id: mini
name: Mini
bpm: 120
finish: {x: 1000}
sections:
  - {start_x: 0, end_x: 500, top: "#101010", bottom: "#200020"}
platforms:
  - {x: 300, y: 480, w: 100, h: 20, amplitude: 30, speed: 2, color: green}
  - {x: 600, y: 480, w: 100, h: 20, amplitude: 40, speed: 1, axis: horizontal, color: cyan}
spike_clusters:
  - {start_x: 400, count: 3, w: 40, h: 50, up: true, color: yellow}
  - {start_x: 700, count: 2, w: 30, h: 40, up: false, spacing: 1, color: magenta}
jump_pads:
  - {x: 200, y: 544, w: 60, h: 16, color: yellow}
speed_pads:
  - {x: 250, y: 552, w: 66, h: 8, multiplier: 1.5, color: green}
gravity_pads:
  - {x: 800, y: 536, w: 56, h: 16, flips_up: true, color: purple}
`

func writeLevel(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestBuiltinLevel(t *testing.T) {
	lvl, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}

	if lvl.ID != DefaultID || lvl.Name != "Neon Pulse" {
		t.Errorf("got %q (%q)", lvl.ID, lvl.Name)
	}
	if !lvl.Builtin() || lvl.Source() != "built-in" {
		t.Errorf("default level should be built-in, source %q", lvl.Source())
	}
	if lvl.BPM != 140 {
		t.Errorf("BPM = %v, expected 140", lvl.BPM)
	}
	if len(lvl.Platforms) != 13 {
		t.Errorf("platforms = %d, expected 13", len(lvl.Platforms))
	}
	if len(lvl.Spikes) != 121 {
		t.Errorf("spikes = %d, expected 121", len(lvl.Spikes))
	}
	if len(lvl.JumpPads) != 1 || len(lvl.SpeedPads) != 2 || len(lvl.GravityPads) != 2 {
		t.Errorf("pads = %d/%d/%d, expected 1/2/2", len(lvl.JumpPads), len(lvl.SpeedPads), len(lvl.GravityPads))
	}
	if len(lvl.Sections) != 4 || len(lvl.Layers) != 3 {
		t.Errorf("sections = %d, layers = %d", len(lvl.Sections), len(lvl.Layers))
	}
	if lvl.Finish.X != 9100 {
		t.Errorf("finish x = %v, expected 9100", lvl.Finish.X)
	}
	if lvl.Meta("difficulty") != "normal" || lvl.Meta("author") == "-" {
		t.Errorf("metadata = %v", lvl.Metadata)
	}
	if lvl.Meta("tempo") != "-" {
		t.Errorf("unset metadata key = %q, expected -", lvl.Meta("tempo"))
	}

	// First flip sends the player up, second brings it back down.
	if !lvl.GravityPads[0].FlipsUp || lvl.GravityPads[1].FlipsUp {
		t.Error("gravity pads should alternate up then down")
	}
}

func TestBuiltinSorted(t *testing.T) {
	lvls, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin() failed: %v", err)
	}
	if len(lvls) == 0 {
		t.Fatal("no built-in levels")
	}
	for i := 1; i < len(lvls); i++ {
		if lvls[i-1].ID >= lvls[i].ID {
			t.Errorf("levels not sorted: %s >= %s", lvls[i-1].ID, lvls[i].ID)
		}
	}
}

func TestParseMiniLevel(t *testing.T) {
	lvl, err := parse([]byte(miniLevel), ".yaml")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if lvl.FloorY != formats.DefaultFloorY || lvl.CeilingY != formats.DefaultCeilingY {
		t.Errorf("rails = %v/%v, expected defaults", lvl.FloorY, lvl.CeilingY)
	}
	if lvl.Finish.W != formats.DefaultFinishW || lvl.Finish.H != formats.DefaultFinishH {
		t.Errorf("finish = %+v, expected default size", lvl.Finish)
	}
	if lvl.JumpPads[0].Strength != formats.DefaultPadStrength {
		t.Errorf("jump strength = %v", lvl.JumpPads[0].Strength)
	}
	if lvl.SpeedPads[0].Duration != formats.DefaultSpeedDuration {
		t.Errorf("speed duration = %v", lvl.SpeedPads[0].Duration)
	}
	if lvl.Platforms[0].Axis != core.AxisVertical || lvl.Platforms[1].Axis != core.AxisHorizontal {
		t.Errorf("axes = %v, %v", lvl.Platforms[0].Axis, lvl.Platforms[1].Axis)
	}
	if len(lvl.Spikes) != 5 {
		t.Fatalf("spikes = %d, expected 5", len(lvl.Spikes))
	}
}

func TestExpandCluster(t *testing.T) {
	tests := []struct {
		name    string
		cluster formats.YAMLSpikeCluster
		wantXs  []float64
		wantY   float64
	}{
		{
			name:    "floor default spacing",
			cluster: formats.YAMLSpikeCluster{StartX: 400, Count: 3, W: 40, H: 50, Up: true},
			wantXs:  []float64{400, 434.4, 468.8},
			wantY:   510,
		},
		{
			name:    "ceiling explicit spacing",
			cluster: formats.YAMLSpikeCluster{StartX: 700, Count: 2, W: 30, H: 40, Spacing: 1},
			wantXs:  []float64{700, 730},
			wantY:   80,
		},
		{
			name:    "empty",
			cluster: formats.YAMLSpikeCluster{StartX: 0, Count: 0, W: 30, H: 40},
		},
		{
			name:    "negative count",
			cluster: formats.YAMLSpikeCluster{StartX: 0, Count: -1, W: 30, H: 40},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			spikes := formats.ExpandCluster(tc.cluster, 560, 80, core.Color{})
			if len(spikes) != len(tc.wantXs) {
				t.Fatalf("got %d spikes, expected %d", len(spikes), len(tc.wantXs))
			}
			for i, s := range spikes {
				if d := s.Base.X - tc.wantXs[i]; d > 1e-9 || d < -1e-9 {
					t.Errorf("spike %d x = %v, expected %v", i, s.Base.X, tc.wantXs[i])
				}
				if s.Base.Y != tc.wantY || s.Up != tc.cluster.Up {
					t.Errorf("spike %d y = %v up = %v", i, s.Base.Y, s.Up)
				}
			}
		})
	}
}

func TestValidateCodes(t *testing.T) {
	tests := []struct {
		name string
		body string
		code string
	}{
		{"missing id", "finish: {x: 100}", CodeMissingID},
		{"rails", "id: x\nfloor_y: 100\nceiling_y: 200\nfinish: {x: 100}", CodeRails},
		{"no finish", "id: x", CodeFinish},
		{"finish behind", "id: x\nfinish: {x: -5}", CodeFinish},
		{"section order", "id: x\nfinish: {x: 100}\nsections:\n  - {start_x: 50, end_x: 10}", CodeSectionOrder},
		{"section overlap", "id: x\nfinish: {x: 100}\nsections:\n  - {start_x: 0, end_x: 100}\n  - {start_x: 50, end_x: 200}", CodeSectionOrder},
		{"spike size", "id: x\nfinish: {x: 100}\nspikes:\n  - {x: 10, y: 500, w: 0, h: 20, up: true}", CodeSize},
		{"spike outside", "id: x\nfinish: {x: 100}\nspikes:\n  - {x: 10, y: 600, w: 20, h: 20, up: true}", CodeEntityOutside},
		{"speed pad", "id: x\nfinish: {x: 100}\nspeed_pads:\n  - {x: 10, y: 552, w: 60, h: 8, multiplier: 0}", CodeSpeedPad},
		{"jump pad", "id: x\nfinish: {x: 100}\njump_pads:\n  - {x: 10, y: 552, w: 60, h: 8, strength: -1}", CodeJumpPad},
		{"oscillation", "id: x\nfinish: {x: 100}\nplatforms:\n  - {x: 10, y: 400, w: 60, h: 8, amplitude: -3}", CodeOscillation},
		{"layer", "id: x\nfinish: {x: 100}\nlayers:\n  - {speed: 0.1, density: -1}", CodeLayer},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parse([]byte(tc.body), ".yaml")
			if err == nil {
				t.Fatal("expected a validation error")
			}
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error %v is not a ValidationError", err)
			}
			if !strings.Contains(err.Error(), "["+tc.code+"]") {
				t.Errorf("error %q does not carry code %s", err, tc.code)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		ext  string
	}{
		{"bad yaml", "id: [", ".yaml"},
		{"bad color", "id: x\nfinish: {x: 100}\nspikes:\n  - {x: 10, y: 500, w: 20, h: 20, color: nope}", ".yaml"},
		{"bad axis", "id: x\nfinish: {x: 100}\nplatforms:\n  - {x: 10, y: 400, w: 60, h: 8, axis: diagonal}", ".yml"},
		{"unsupported", "id: x", ".json"},
		{"negative cluster count", "id: x\nfinish: {x: 100}\nspike_clusters:\n  - {start_x: 10, count: -1, w: 20, h: 20, up: true}", ".yaml"},
		{"zero cluster size", "id: x\nfinish: {x: 100}\nspike_clusters:\n  - {start_x: 10, count: 3, w: 0, h: 20, up: true}", ".yaml"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parse([]byte(tc.body), tc.ext); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoaderLoadAll(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, "b.yaml", strings.Replace(miniLevel, "id: mini", "id: zeta", 1))
	writeLevel(t, dir, "a.yml", miniLevel)
	writeLevel(t, dir, "broken.yaml", "id: [")
	writeLevel(t, dir, "negative.yaml", "id: negative\nfinish: {x: 1000}\n"+
		"spike_clusters:\n  - {start_x: 300, count: -1, w: 40, h: 40, up: true}\n")
	writeLevel(t, dir, "notes.txt", "not a level")

	sub := filepath.Join(dir, "pack")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	writeLevel(t, sub, "c.yaml", strings.Replace(miniLevel, "id: mini", "id: alpha", 1))

	loader := NewLoader(dir)
	lvls, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	ids := make([]string, len(lvls))
	for i, lvl := range lvls {
		ids[i] = lvl.ID
	}
	want := []string{"alpha", "mini", "zeta"}
	if len(ids) != len(want) {
		t.Fatalf("ids = %v, expected %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %q, expected %q", i, ids[i], want[i])
		}
	}
	for _, lvl := range lvls {
		if lvl.Builtin() || lvl.FilePath == "" {
			t.Errorf("level %s should carry its file path", lvl.ID)
		}
	}

	lvl, err := loader.LoadByID("mini")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if filepath.Base(lvl.FilePath) != "a.yml" {
		t.Errorf("FilePath = %q", lvl.FilePath)
	}
	if _, err := loader.LoadByID("missing"); err == nil {
		t.Error("expected error for a missing level")
	}
}

func TestLoaderMissingDir(t *testing.T) {
	if _, err := NewLoader(filepath.Join(t.TempDir(), "nope")).LoadAll(); err == nil {
		t.Error("LoadAll on a missing dir should fail")
	}
}

func TestFindAndAll(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, "mini.yaml", miniLevel)
	override := strings.Replace(strings.Replace(miniLevel, "id: mini", "id: neon_pulse", 1), "name: Mini", "name: Override", 1)
	writeLevel(t, dir, "override.yaml", override)

	lvl, err := Find("neon_pulse", dir)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if lvl.Name != "Override" {
		t.Errorf("directory level should win, got %q", lvl.Name)
	}

	lvl, err = Find("neon_pulse", "")
	if err != nil || lvl.Name != "Neon Pulse" {
		t.Errorf("Find without dir = %q, %v", lvl.Name, err)
	}
	if _, err := Find("mini", ""); err == nil {
		t.Error("mini is not built in")
	}

	all, err := All(dir)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("All = %d levels, expected 2", len(all))
	}
	if all[0].ID != "neon_pulse" || all[0].Name != "Override" || all[1].ID != "mini" {
		t.Errorf("All order = %s(%s), %s", all[0].ID, all[0].Name, all[1].ID)
	}

	all, err = All(filepath.Join(dir, "absent"))
	if err != nil || len(all) != 1 {
		t.Errorf("All with missing dir = %d, %v", len(all), err)
	}
}
