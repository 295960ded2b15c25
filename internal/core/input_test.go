package core

import "testing"

func TestInputFramePressAndHold(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionJump) || f.IsHeld(ActionJump) {
		t.Fatal("new frame should be empty")
	}

	f.Hold(ActionJump)
	if f.Has(ActionJump) {
		t.Error("holding should not report a press edge")
	}
	if !f.IsHeld(ActionJump) {
		t.Error("held key should report IsHeld")
	}

	f.Clear()
	f.Set(ActionJump)
	if !f.Has(ActionJump) || !f.IsHeld(ActionJump) {
		t.Error("a press implies the key is held")
	}

	f.Clear()
	if f.Has(ActionJump) || f.IsHeld(ActionJump) {
		t.Error("Clear should reset presses and holds")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionRestart) || f.IsHeld(ActionRestart) {
		t.Error("zero frame should report nothing")
	}
	f.Set(ActionRestart)
	f.Hold(ActionJump)
	if !f.Has(ActionRestart) || !f.IsHeld(ActionJump) {
		t.Error("zero frame should lazily allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionJump.String() != "Jump" {
		t.Errorf("ActionJump.String() = %s", ActionJump.String())
	}
	if Action(99).String() != "Unknown" {
		t.Error("unknown action should stringify as Unknown")
	}
}
