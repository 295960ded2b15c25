package neonpulse

import (
	"fmt"
	"math"

	platformcore "github.com/vovakirdan/neon-pulse/internal/core"
	"github.com/vovakirdan/neon-pulse/internal/games/neonpulse/core"
)

// Visual characters for rendering
const (
	PlatformChar   = '█'
	SpikeUpChar    = '▲'
	SpikeDownChar  = '▼'
	JumpPadChar    = '▀'
	SpeedPadChar   = '»'
	GravityUpChar  = '⇡'
	GravityDnChar  = '⇣'
	FinishChar     = '▓'
	FinishAltChar  = '░'
	RailChar       = '═'
	PlayerChar     = '█'
	CrashedChar    = '✖'
	SparkChar      = '·'
	BigSparkChar   = '•'
	StarRoundChar  = '∙'
	StarDiamondChr = '◇'
)

var (
	playerColor   = platformcore.ColorCyan
	invertedColor = platformcore.ColorPurple
	crashedColor  = platformcore.ColorMagenta
	railColor     = platformcore.RGB(0, 180, 220)
	hudColor      = platformcore.ColorWhite
	hintColor     = platformcore.ColorGray
	finishColor   = platformcore.ColorWhite
)

// projector maps view pixels onto screen cells.
type projector struct {
	f     *core.Frame
	dst   *platformcore.Screen
	cellW float64
	cellH float64
}

func newProjector(f *core.Frame, dst *platformcore.Screen) *projector {
	return &projector{
		f:     f,
		dst:   dst,
		cellW: f.ViewW / float64(max(dst.Width(), 1)),
		cellH: f.ViewH / float64(max(dst.Height(), 1)),
	}
}

// cells returns the cell bounds of a world rectangle.
func (p *projector) cells(r core.Rect) (x, y, w, h int) {
	return p.f.ToView(r).Cells(p.cellW, p.cellH)
}

// point returns the cell of a view-space point.
func (p *projector) point(x, y float64) (int, int) {
	return int(math.Floor(x / p.cellW)), int(math.Floor(y / p.cellH))
}

func (p *projector) fill(r core.Rect, ch rune, c platformcore.Color) {
	x0, y0, w, h := p.cells(r)
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			p.dst.SetFg(x, y, ch, c)
		}
	}
}

// blend composites a translucent color over the background of a cell.
func (p *projector) blend(x, y int, c platformcore.Color) platformcore.Color {
	return c.Over(p.dst.GetCell(x, y).Bg)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.session == nil {
		msg := "no level loaded"
		if g.err != nil {
			msg = g.err.Error()
		}
		drawCenteredMessage(dst, "NEON PULSE", msg)
		return
	}

	f := g.session.Frame()
	p := newProjector(&f, dst)

	p.drawBackground()
	p.drawSprites()
	p.drawRails()
	p.drawFinish()
	p.drawPads()
	p.drawPlatforms()
	p.drawSpikes()
	p.drawParticles()
	p.drawPlayer()
	p.drawHUD()

	if title, sub := f.HUD.Banner(); title != "" {
		drawCenteredMessage(dst, title, sub)
	} else if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawBackground paints the section gradient and the beat band.
func (p *projector) drawBackground() {
	f := p.f
	top, bottom := platformcore.ColorBlack, platformcore.ColorBlack
	if f.HasSection {
		top, bottom = f.Section.Top, f.Section.Bottom
	}

	bandH := f.ViewH / 8
	bandTop := f.ViewH/2 - bandH/2
	w, h := p.dst.Width(), p.dst.Height()

	for y := range h {
		cy := (float64(y) + 0.5) * p.cellH
		row := top.Blend(bottom, cy/f.ViewH)
		for x := range w {
			bg := row
			if f.HasSection && cy >= bandTop && cy < bandTop+bandH {
				t := (float64(x) + 0.5) / float64(w)
				bg = f.Band.Fade(0.08 + 0.16*t).Over(row)
			}
			p.dst.SetBg(x, y, bg)
		}
	}
}

func (p *projector) drawSprites() {
	for _, s := range p.f.Sprites {
		x, y := p.point(s.X+p.f.ShakeX, s.Y+p.f.ShakeY)
		ch := StarDiamondChr
		if s.Round {
			ch = StarRoundChar
		}
		p.dst.SetFg(x, y, ch, p.blend(x, y, s.Color.Fade(s.Alpha)))
	}
}

func (p *projector) drawRails() {
	f := p.f
	_, floorRow := p.point(0, f.FloorY+f.ShakeY)
	_, ceilRow := p.point(0, f.CeilingY+f.ShakeY)
	w := p.dst.Width()
	p.dst.DrawHLine(0, floorRow, w, RailChar, railColor)
	p.dst.DrawHLine(0, ceilRow, w, RailChar, railColor)
}

func (p *projector) drawFinish() {
	x0, y0, w, h := p.cells(p.f.Finish)
	for y := y0; y < y0+h; y++ {
		ch := FinishChar
		if y%2 == 1 {
			ch = FinishAltChar
		}
		for x := x0; x < x0+w; x++ {
			p.dst.SetFg(x, y, ch, finishColor)
		}
	}
}

func (p *projector) drawPads() {
	for _, jp := range p.f.JumpPads {
		p.fill(jp.Rect, JumpPadChar, jp.Color)
	}
	for _, sp := range p.f.SpeedPads {
		p.fill(sp.Rect, SpeedPadChar, sp.Color)
	}
	for _, gp := range p.f.GravityPads {
		ch := GravityDnChar
		if gp.FlipsUp {
			ch = GravityUpChar
		}
		p.fill(gp.Rect, ch, gp.Color)
	}
}

func (p *projector) drawPlatforms() {
	for _, pl := range p.f.Platforms {
		p.fill(pl.Rect, PlatformChar, pl.Color)
	}
}

func (p *projector) drawSpikes() {
	for _, s := range p.f.Spikes {
		ch := SpikeDownChar
		if s.Up {
			ch = SpikeUpChar
		}
		p.fill(s.Base, ch, s.Color)
	}
}

func (p *projector) drawParticles() {
	for _, s := range p.f.Particles {
		v := p.f.ToView(core.Rect{X: s.Pos.X, Y: s.Pos.Y})
		x, y := p.point(v.X, v.Y)
		ch := SparkChar
		if s.Size >= 5 {
			ch = BigSparkChar
		}
		p.dst.SetFg(x, y, ch, p.blend(x, y, s.Color))
	}
}

func (p *projector) drawPlayer() {
	f := p.f
	c := playerColor
	if f.GravityDir < 0 {
		c = invertedColor
	}
	c = c.Blend(platformcore.ColorWhite, f.Pulse*0.35)

	ch := PlayerChar
	if !f.Alive() {
		ch, c = CrashedChar, crashedColor
	}
	p.fill(f.Player, ch, c)
}

func (p *projector) drawHUD() {
	h := p.f.HUD
	w := p.dst.Width()

	title := fmt.Sprintf(" %s  %.0f BPM ", h.Title, h.BPM)
	p.dst.DrawTextFg(1, 0, title, hudColor)

	status := fmt.Sprintf(" ATTEMPT %d  %3.0f%% ", h.Attempts, h.Progress*100)
	p.dst.DrawTextFg(w-len(status)-1, 0, status, hudColor)

	p.dst.DrawTextFg(1, 1, " SPACE jump  R restart  P pause  Q quit ", hintColor)
	if speed := h.SpeedText(); speed != "" {
		p.dst.DrawTextFg(w-len(speed)-2, 1, speed, platformcore.ColorGreen)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *platformcore.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	if subtitle == "" {
		boxH = 3
	}
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := platformcore.NewRect(float64(boxX), float64(boxY), float64(boxW), float64(boxH))
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.SetBg(x, y, platformcore.ColorBlack)
		}
	}

	dst.DrawTextCentered(boxY+1, title, hudColor)
	if subtitle != "" {
		dst.DrawTextCentered(boxY+3, subtitle, hintColor)
	}
}
