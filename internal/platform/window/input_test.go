package window

import (
	"testing"

	"github.com/vovakirdan/neon-pulse/internal/core"
)

func TestInputFrame(t *testing.T) {
	tests := []struct {
		name                string
		keys                keySnapshot
		jump, held, restart bool
		pause               bool
	}{
		{"idle", keySnapshot{}, false, false, false, false},
		{"press", keySnapshot{JumpPressed: true, JumpHeld: true}, true, true, false, false},
		{"hold", keySnapshot{JumpHeld: true}, false, true, false, false},
		{"restart", keySnapshot{RestartPressed: true}, false, false, true, false},
		{"pause", keySnapshot{PausePressed: true}, false, false, false, true},
		{"quit only", keySnapshot{QuitPressed: true}, false, false, false, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := inputFrame(tc.keys)
			if f.Has(core.ActionJump) != tc.jump {
				t.Errorf("jump pressed = %v", f.Has(core.ActionJump))
			}
			if f.IsHeld(core.ActionJump) != tc.held {
				t.Errorf("jump held = %v", f.IsHeld(core.ActionJump))
			}
			if f.Has(core.ActionRestart) != tc.restart {
				t.Errorf("restart = %v", f.Has(core.ActionRestart))
			}
			if f.Has(core.ActionPause) != tc.pause {
				t.Errorf("pause = %v", f.Has(core.ActionPause))
			}
		})
	}
}
