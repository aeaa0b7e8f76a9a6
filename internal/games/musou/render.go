package musou

import (
	"fmt"
	"math"

	"github.com/vovakirdan/musou/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar    = '█'
	ShieldChar    = '█'
	BombChar      = '●'
	DudChar       = '○'
	GravityChar   = '·'
	EMPChar       = '░'
	ExplosionChar = '*'
	FlareChar     = '✶'
)

var (
	enemyGlyphs  = [enemyVariants]rune{'Ψ', 'Ж', '¥'}
	bombPalette  = [bombTints]core.Color{core.ColorRed, core.ColorGreen, core.ColorBlue, core.ColorYellow, core.ColorMagenta, core.ColorCyan}
	facingArrows = map[Dir]rune{
		{1, 0}: '→', {1, -1}: '↗', {0, -1}: '↑', {-1, -1}: '↖',
		{-1, 0}: '←', {-1, 1}: '↙', {0, 1}: '↓', {1, 1}: '↘',
	}
	beamGlyphs = [4]rune{'─', '╱', '│', '╲'}
)

// viewport maps world coordinates to screen cells below the HUD row.
type viewport struct {
	sx, sy float64
	top    int
	w, h   int
}

func newViewport(dst *core.Screen, arena core.Bounds) viewport {
	return viewport{
		sx:  float64(dst.Width()) / arena.W,
		sy:  float64(dst.Height()-1) / arena.H,
		top: 1,
		w:   dst.Width(),
		h:   dst.Height(),
	}
}

// cells returns the screen rectangle covered by a world box, at least one
// cell large and clipped to the arena rows.
func (v viewport) cells(b core.Box) core.Rect {
	x0 := int(math.Floor(b.X * v.sx))
	y0 := int(math.Floor(b.Y*v.sy)) + v.top
	x1 := int(math.Ceil(b.Right() * v.sx))
	y1 := int(math.Ceil(b.Bottom()*v.sy)) + v.top

	x0 = core.Clamp(x0, 0, v.w-1)
	x1 = core.Clamp(x1, x0+1, v.w)
	y0 = core.Clamp(y0, v.top, v.h-1)
	y1 = core.Clamp(y1, y0+1, v.h)
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	g.renderSnapshot(dst, g.Snapshot())
}

func (g *Game) renderSnapshot(dst *core.Screen, snap Snapshot) {
	dst.Clear()
	if dst.Width() < 20 || dst.Height() < 6 {
		dst.DrawText(0, 0, "Terminal too small")
		return
	}

	vp := newViewport(dst, snap.Arena)
	arenaRect := core.NewRect(0, vp.top, dst.Width(), dst.Height()-vp.top)
	if snap.EMPFlash {
		dst.DrawRect(arenaRect, EMPChar, core.ColorBrightYellow)
	}

	for _, e := range snap.Entities {
		r := vp.cells(e.Box)
		switch e.Kind {
		case KindGravity:
			dst.DrawRect(arenaRect, GravityChar, core.ColorGray)
		case KindShield:
			dst.DrawRect(r, ShieldChar, core.ColorBlue)
		case KindEnemy:
			c := core.ColorGreen
			if e.Jammed {
				c = core.ColorGray
			}
			dst.DrawRect(r, enemyGlyphs[e.Variant%enemyVariants], c)
		case KindBomb:
			if e.Inactive {
				dst.DrawRect(r, DudChar, core.ColorGray)
			} else {
				dst.DrawRect(r, BombChar, bombPalette[e.Variant%bombTints])
			}
		case KindBeam:
			dst.DrawRect(r, beamGlyph(e.Angle), core.ColorBrightYellow)
		case KindExplosion:
			if e.Frame == 0 {
				dst.DrawRect(r, ExplosionChar, core.ColorOrange)
			} else {
				dst.DrawRect(r, FlareChar, core.ColorBrightRed)
			}
		case KindPlayer:
			g.drawPlayer(dst, r, e, snap.Tick)
		}
	}

	g.drawHUD(dst, snap)

	if snap.Paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if snap.GameOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score))
	}
}

// drawPlayer renders the player block with a facing arrow in its center.
func (g *Game) drawPlayer(dst *core.Screen, r core.Rect, e EntityView, tick int) {
	c := core.ColorCyan
	switch {
	case e.Mood == MoodDefeat:
		c = core.ColorRed
	case e.Hyper && tick/5%2 == 0:
		c = core.ColorMagenta
	case e.Hyper:
		c = core.ColorBrightMagenta
	case e.Mood == MoodTriumph:
		c = core.ColorBrightYellow
	}
	dst.DrawRect(r, PlayerChar, c)
	if arrow, ok := facingArrows[e.Facing]; ok {
		dst.SetColored(r.X+r.W/2, r.Y+r.H/2, arrow, core.ColorWhite)
	}
}

// beamGlyph picks the line character closest to the beam angle.
func beamGlyph(angle float64) rune {
	a := math.Mod(angle, 180)
	if a < 0 {
		a += 180
	}
	idx := int(math.Round(a/45)) % 4
	return beamGlyphs[idx]
}

// drawHUD draws the score, running timers and ability costs on the top row.
func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	status := fmt.Sprintf(" Score: %d ", snap.Score)
	if p, ok := snap.Find(KindPlayer); ok && p.Hyper {
		status += fmt.Sprintf("| Hyper %d ", p.Life)
	}
	if s, ok := snap.Find(KindShield); ok {
		status += fmt.Sprintf("| Shield %d ", s.Life)
	}
	if f, ok := snap.Find(KindGravity); ok {
		status += fmt.Sprintf("| Gravity %d ", f.Life)
	}
	dst.DrawTextColored(1, 0, status, core.ColorBrightCyan)

	costs := fmt.Sprintf(" S:%d I:%d E:%d ⏎:%d ",
		g.cfg.Shield.Cost, g.cfg.Hyper.Cost, g.cfg.EMP.Cost, g.cfg.Gravity.Cost)
	x := dst.Width() - len([]rune(costs)) - 1
	if x > len(status)+2 {
		dst.DrawTextColored(x, 0, costs, core.ColorGray)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightRed)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
