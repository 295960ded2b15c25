package window

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/neon-pulse/internal/core"
	npcore "github.com/vovakirdan/neon-pulse/internal/games/neonpulse/core"
)

// gradientStep is the strip height of the background gradient, in pixels.
const gradientStep = 8

var (
	railA      = core.RGB(0, 200, 255)
	railB      = core.RGB(200, 0, 255)
	playerFill = core.ColorCyan
	deadFill   = core.ColorMagenta
	finishFill = core.ColorGreen
	bannerText = core.RGB(255, 60, 60)
)

// drawer paints one Frame onto the screen.
type drawer struct {
	dst   *ebiten.Image
	f     *npcore.Frame
	white *ebiten.Image
}

func (d *drawer) draw(paused bool) {
	d.background()
	d.sprites()
	d.rails()
	d.finish()
	d.pads()
	d.platforms()
	d.spikes()
	d.particles()
	d.player()
	d.hud(paused)
}

// rect fills a world rectangle, shifted into view.
func (d *drawer) rect(r npcore.Rect, c core.Color) {
	v := d.f.ToView(r)
	vector.FillRect(d.dst, float32(v.X), float32(v.Y), float32(v.W), float32(v.H), c, false)
}

func (d *drawer) outline(r npcore.Rect, width float32, c core.Color) {
	v := d.f.ToView(r)
	vector.StrokeRect(d.dst, float32(v.X), float32(v.Y), float32(v.W), float32(v.H), width, c, false)
}

// triangle fills a triangle given in view coordinates.
func (d *drawer) triangle(x0, y0, x1, y1, x2, y2 float64, c core.Color) {
	var path vector.Path
	path.MoveTo(float32(x0), float32(y0))
	path.LineTo(float32(x1), float32(y1))
	path.LineTo(float32(x2), float32(y2))
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	a := float32(c.A) / 255
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 0, 0
		vs[i].ColorR = float32(c.R) / 255 * a
		vs[i].ColorG = float32(c.G) / 255 * a
		vs[i].ColorB = float32(c.B) / 255 * a
		vs[i].ColorA = a
	}
	d.dst.DrawTriangles(vs, is, d.white, nil)
}

func (d *drawer) background() {
	f := d.f
	top, bottom := core.ColorBlack, core.ColorBlack
	if f.HasSection {
		top, bottom = f.Section.Top, f.Section.Bottom
	}
	for y := 0.0; y < f.ViewH; y += gradientStep {
		c := top.Blend(bottom, (y+gradientStep/2)/f.ViewH)
		vector.FillRect(d.dst, 0, float32(y), float32(f.ViewW), gradientStep, c, false)
	}

	if !f.HasSection {
		return
	}
	bandH := f.ViewH / 8
	bandY := f.ViewH/2 - bandH/2
	const strips = 32
	stripW := f.ViewW / strips
	for i := range strips {
		t := (float64(i) + 0.5) / strips
		c := f.Band.Fade(0.08 + 0.16*t)
		vector.FillRect(d.dst, float32(float64(i)*stripW), float32(bandY), float32(stripW)+1, float32(bandH), c, false)
	}
}

func (d *drawer) sprites() {
	for _, s := range d.f.Sprites {
		x, y := s.X+d.f.ShakeX, s.Y+d.f.ShakeY
		c := s.Color.Fade(s.Alpha)
		if s.Round {
			vector.DrawFilledCircle(d.dst, float32(x), float32(y), float32(s.Size), c, true)
			continue
		}
		// Diamond as two triangles
		d.triangle(x, y-s.Size, x+s.Size, y, x, y+s.Size, c)
		d.triangle(x, y-s.Size, x, y+s.Size, x-s.Size, y, c)
	}
}

func (d *drawer) rails() {
	f := d.f
	const h = 6
	const strips = 16
	w := f.ViewW / strips
	for i := range strips {
		t := float64(i) / (strips - 1)
		floor := railA.Blend(railB, t)
		ceil := railB.Blend(railA, t)
		x := float32(float64(i)*w + f.ShakeX)
		vector.FillRect(d.dst, x, float32(f.FloorY+f.ShakeY), float32(w)+1, h, floor, false)
		vector.FillRect(d.dst, x, float32(f.CeilingY-h+f.ShakeY), float32(w)+1, h, ceil, false)
	}
}

func (d *drawer) finish() {
	f := d.f
	v := f.ToView(f.Finish)
	vector.FillRect(d.dst, float32(v.X), 0, 4, float32(f.ViewH), finishFill.Fade(0.95), false)
	ebitenutil.DebugPrintAt(d.dst, "FINISH", int(v.X)-18, int(f.ViewH/2)-12)
}

func (d *drawer) pads() {
	for _, sp := range d.f.SpeedPads {
		d.rect(sp.Rect, sp.Color.Fade(0.95))
		d.outline(sp.Rect, 2, core.ColorWhite.Fade(0.06))
	}
	for _, jp := range d.f.JumpPads {
		d.rect(jp.Rect, jp.Color.Fade(0.95))
		d.outline(jp.Rect, 2, core.ColorWhite.Fade(0.06))
	}
	for _, gp := range d.f.GravityPads {
		d.rect(gp.Rect, gp.Color.Fade(0.9))
		v := d.f.ToView(gp.Rect)
		cx := v.X + v.W/2
		// Arrow hint pointing where the flip sends the player
		if gp.FlipsUp {
			d.triangle(cx-8, v.Y-4, cx+8, v.Y-4, cx, v.Y-18, core.ColorWhite.Fade(0.8))
		} else {
			d.triangle(cx-8, v.Bottom()+4, cx+8, v.Bottom()+4, cx, v.Bottom()+18, core.ColorWhite.Fade(0.8))
		}
	}
}

func (d *drawer) platforms() {
	for _, p := range d.f.Platforms {
		fill := p.Color.Blend(core.ColorWhite, d.f.Pulse*0.15)
		d.rect(p.Rect, fill)
		d.outline(p.Rect, 3, p.Color.Brighten(40, 40, 40))
		glow := npcore.Rect{X: p.Rect.X, Y: p.Rect.Bottom(), W: p.Rect.W, H: 6}
		d.rect(glow, p.Color.Fade(0.28))
	}
}

func (d *drawer) spikes() {
	edge := core.ColorBlack.Fade(0.15)
	for _, s := range d.f.Spikes {
		v := d.f.ToView(s.Base)
		if s.Up {
			d.triangle(v.X, v.Bottom(), v.Right(), v.Bottom(), v.X+v.W/2, v.Y, s.Color)
		} else {
			d.triangle(v.X, v.Y, v.Right(), v.Y, v.X+v.W/2, v.Bottom(), s.Color)
		}
		vector.StrokeLine(d.dst, float32(v.X), float32(v.Bottom()), float32(v.Right()), float32(v.Bottom()), 1, edge, false)
	}
}

func (d *drawer) particles() {
	for _, p := range d.f.Particles {
		v := d.f.ToView(npcore.Rect{X: p.Pos.X, Y: p.Pos.Y})
		vector.DrawFilledCircle(d.dst, float32(v.X), float32(v.Y), float32(p.Size), p.Color, true)
	}
}

func (d *drawer) player() {
	f := d.f
	fill := playerFill.Blend(core.ColorWhite, f.Pulse*0.35)
	if !f.Alive() {
		fill = deadFill
	}
	halo := npcore.Rect{X: f.Player.X - 6, Y: f.Player.Y - 6, W: f.Player.W + 12, H: f.Player.H + 12}
	d.rect(halo, core.ColorCyan.Fade(0.03+0.05*f.Pulse))
	d.rect(f.Player, fill)
	d.outline(f.Player, 3, core.ColorWhite.Fade(0.7))
}

func (d *drawer) hud(paused bool) {
	h := d.f.HUD
	ebitenutil.DebugPrintAt(d.dst, h.Title, 24, 20)
	ebitenutil.DebugPrintAt(d.dst, fmt.Sprintf("BPM: %.0f", h.BPM), 24, 40)
	ebitenutil.DebugPrintAt(d.dst, "Jump: Space/Up | Restart: R | Pause: P", 24, 56)
	if s := h.SpeedText(); s != "" {
		ebitenutil.DebugPrintAt(d.dst, s, 24, 72)
	}
	status := fmt.Sprintf("ATTEMPT %d  %3.0f%%", h.Attempts, h.Progress*100)
	ebitenutil.DebugPrintAt(d.dst, status, int(d.f.ViewW)-24-len(status)*6, 20)

	title, sub := h.Banner()
	if title == "" && paused {
		title, sub = "PAUSED", "Press P to resume"
	}
	if title == "" {
		return
	}
	cx, cy := int(d.f.ViewW/2), int(d.f.ViewH/3)
	boxW := float32(max(len(title), len(sub))*6 + 40)
	vector.FillRect(d.dst, float32(cx)-boxW/2, float32(cy-12), boxW, 48, core.ColorBlack.Fade(0.6), false)
	vector.StrokeRect(d.dst, float32(cx)-boxW/2, float32(cy-12), boxW, 48, 2, bannerText, false)
	ebitenutil.DebugPrintAt(d.dst, title, cx-len(title)*3, cy)
	if sub != "" {
		ebitenutil.DebugPrintAt(d.dst, sub, cx-len(sub)*3, cy+16)
	}
}
