package window

import (
	"github.com/vovakirdan/neon-pulse/internal/core"
)

// keySnapshot is the keyboard state sampled once per tick.
type keySnapshot struct {
	JumpPressed    bool // Any jump key went down this tick
	JumpHeld       bool // Any jump key is down
	RestartPressed bool
	PausePressed   bool
	QuitPressed    bool
}

// inputFrame converts a key snapshot to the platform input frame.
// A window reports real key releases, so the held level comes straight
// from the keyboard.
func inputFrame(k keySnapshot) core.InputFrame {
	f := core.NewInputFrame()
	if k.JumpPressed {
		f.Set(core.ActionJump)
	}
	if k.JumpHeld {
		f.Hold(core.ActionJump)
	}
	if k.RestartPressed {
		f.Set(core.ActionRestart)
	}
	if k.PausePressed {
		f.Set(core.ActionPause)
	}
	return f
}
