package game

import (
	"fmt"
	"image/color"

	"github.com/Garsondee/Cannon-Ball/internal/cannon"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// hudPanel is one boxed readout along the top of the board.
type hudPanel struct {
	x, y  float32
	label string
}

// HUD readouts, left to right.
var hudPanels = [3]hudPanel{
	{x: 212, y: 10, label: "LEVEL"},
	{x: 330, y: 4, label: "BOMBS"},
	{x: 460, y: 4, label: "SCORE"},
}

const (
	hudPanelW = 110
	hudPanelH = 28
	hudPad    = 6
)

// hudValues returns the level, ammo and score readouts in panel order.
func hudValues(s *cannon.Session) [3]string {
	return [3]string{
		fmt.Sprintf("%d", s.Tracker().Level()),
		fmt.Sprintf("%d", s.Ammo()),
		fmt.Sprintf("%d", s.Tracker().Score()),
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	values := hudValues(g.session)
	for i, p := range hudPanels {
		vector.FillRect(screen, p.x, p.y, hudPanelW, hudPanelH, colPanel, false)
		vector.StrokeRect(screen, p.x, p.y, hudPanelW, hudPanelH, 1, colPanelEdge, false)
		g.drawText(screen, p.label, float64(p.x+hudPad), float64(p.y+hudPad), 1, colPanelEdge)
		g.drawText(screen, values[i], float64(p.x+hudPanelW/2+hudPad), float64(p.y+hudPad), 1, color.White)
	}
	if g.session.Ammo() <= 2 && g.session.Screen() == cannon.Playing && g.session.TickCount()/20%2 == 0 {
		b := hudPanels[1]
		vector.StrokeRect(screen, b.x-1, b.y-1, hudPanelW+2, hudPanelH+2, 2, colTNT, false)
	}
}

// drawText draws s with its top-left corner at (x, y) in the HUD face.
func (g *Game) drawText(dst *ebiten.Image, s string, x, y, scale float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, g.face, op)
}

// drawTextScaled draws s horizontally centred on cx with its top at y.
func (g *Game) drawTextScaled(dst *ebiten.Image, s string, cx, y, scale float64, c color.Color) {
	w, _ := text.Measure(s, g.face, 0)
	g.drawText(dst, s, cx-w*scale/2, y, scale, c)
}

// drawLabel centres s inside r.
func (g *Game) drawLabel(dst *ebiten.Image, s string, r cannon.Rect) {
	const scale = 2
	_, h := text.Measure(s, g.face, 0)
	cx := float64(r.X) + float64(r.W)/2
	cy := float64(r.Y) + (float64(r.H)-h*scale)/2
	g.drawTextScaled(dst, s, cx, cy, scale, color.White)
}
