package levels

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/neon-pulse/internal/games/neonpulse/core"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validation codes.
const (
	CodeMissingID     = "MISSING_ID"
	CodeRails         = "INVALID_RAILS"
	CodeSize          = "INVALID_SIZE"
	CodeSectionOrder  = "SECTION_ORDER"
	CodeSpeedPad      = "INVALID_SPEED_PAD"
	CodeJumpPad       = "INVALID_JUMP_PAD"
	CodeLayer         = "INVALID_LAYER"
	CodeFinish        = "INVALID_FINISH"
	CodeOscillation   = "INVALID_OSCILLATION"
	CodeEntityOutside = "ENTITY_OUTSIDE"
)

// Validate checks a level for data the simulation cannot handle sensibly.
// All findings are returned joined; use errors.As to get a ValidationError.
func Validate(l *core.Level) error {
	v := &validator{}

	if l.ID == "" {
		v.add(CodeMissingID, "level has no id")
	}
	if l.CeilingY >= l.FloorY {
		v.add(CodeRails, "ceiling_y %.0f must be above floor_y %.0f", l.CeilingY, l.FloorY)
	}

	validateFinish(v, l)
	validateSections(v, l.Sections)

	for i, layer := range l.Layers {
		if layer.Density < 0 || layer.SizeMin < 0 || layer.SizeMax < layer.SizeMin {
			v.add(CodeLayer, "layer %d: density %d, size %.1f..%.1f", i, layer.Density, layer.SizeMin, layer.SizeMax)
		}
	}

	for i, p := range l.Platforms {
		v.size(p.Base, "platform %d", i)
		if p.Amplitude < 0 || p.Speed < 0 {
			v.add(CodeOscillation, "platform %d: amplitude and speed must not be negative", i)
		}
		v.inside(l, p.Base, "platform %d", i)
	}
	for i, s := range l.Spikes {
		v.size(s.Base, "spike %d", i)
		v.inside(l, s.Base, "spike %d", i)
	}
	for i, j := range l.JumpPads {
		v.size(j.Rect, "jump pad %d", i)
		if j.Strength <= 0 {
			v.add(CodeJumpPad, "jump pad %d: strength %.2f must be positive", i, j.Strength)
		}
	}
	for i, s := range l.SpeedPads {
		v.size(s.Rect, "speed pad %d", i)
		if s.Multiplier <= 0 || s.Duration <= 0 {
			v.add(CodeSpeedPad, "speed pad %d: multiplier %.2f and duration %.2f must be positive", i, s.Multiplier, s.Duration)
		}
	}
	for i, g := range l.GravityPads {
		v.size(g.Rect, "gravity pad %d", i)
	}

	return v.err()
}

func validateFinish(v *validator, l *core.Level) {
	f := l.Finish
	if f.W <= 0 || f.H <= 0 {
		v.add(CodeFinish, "finish line has no area")
		return
	}
	if f.X <= 0 {
		v.add(CodeFinish, "finish x %.0f must be ahead of the start", f.X)
	}
	if f.Bottom() <= l.CeilingY || f.Y >= l.FloorY {
		v.add(CodeFinish, "finish line does not cross the play field")
	}
}

func validateSections(v *validator, sections []core.Section) {
	for i, s := range sections {
		if s.EndX <= s.StartX {
			v.add(CodeSectionOrder, "section %d: end_x %.0f must exceed start_x %.0f", i, s.EndX, s.StartX)
		}
		if i > 0 && s.StartX < sections[i-1].EndX {
			v.add(CodeSectionOrder, "section %d starts at %.0f inside section %d", i, s.StartX, i-1)
		}
	}
}

// validator accumulates findings.
type validator struct {
	errs []error
}

func (v *validator) add(code, format string, args ...any) {
	v.errs = append(v.errs, ValidationError{Code: code, Message: fmt.Sprintf(format, args...)})
}

func (v *validator) size(r core.Rect, format string, args ...any) {
	if r.W <= 0 || r.H <= 0 {
		v.add(CodeSize, "%s: size %.1fx%.1f must be positive", fmt.Sprintf(format, args...), r.W, r.H)
	}
}

func (v *validator) inside(l *core.Level, r core.Rect, format string, args ...any) {
	if r.Bottom() <= l.CeilingY || r.Y >= l.FloorY {
		v.add(CodeEntityOutside, "%s: outside the rails", fmt.Sprintf(format, args...))
	}
}

func (v *validator) err() error {
	return errors.Join(v.errs...)
}
