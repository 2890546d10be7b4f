package termui

import (
	"fmt"

	"github.com/Garsondee/Cannon-Ball/internal/cannon"
	"github.com/gdamore/tcell/v2"
)

var (
	styleSky    = tcell.StyleDefault.Background(tcell.NewRGBColor(24, 38, 64)).Foreground(tcell.ColorWhite)
	styleHUD    = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorLightSteelBlue)
	styleChest  = styleSky.Foreground(tcell.ColorGoldenrod)
	styleTNT    = styleSky.Foreground(tcell.ColorRed)
	styleBall   = styleSky.Foreground(tcell.ColorSilver).Bold(true)
	styleCannon = styleSky.Foreground(tcell.ColorGray)
	styleButton = tcell.StyleDefault.Background(tcell.NewRGBColor(40, 70, 110)).Foreground(tcell.ColorWhite).Bold(true)
	stylePanel  = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleAlert  = stylePanel.Foreground(tcell.ColorRed).Bold(true)
)

// gameOverRect is the game-over panel in arena units.
var gameOverRect = cannon.Rect{X: 150, Y: 150, W: 300, H: 200}

// toArena maps the centre of a terminal cell to arena coordinates.
func toArena(cx, cy, cols, rows int) (x, y int) {
	if cols <= 0 || rows <= 0 {
		return 0, 0
	}
	x = (2*cx + 1) * cannon.ArenaWidth / (2 * cols)
	y = (2*cy + 1) * cannon.ArenaHeight / (2 * rows)
	return x, y
}

// toCells maps an arena rectangle onto the cell grid, covering at least
// one cell.
func toCells(r cannon.Rect, cols, rows int) (x0, y0, x1, y1 int) {
	x0 = r.X * cols / cannon.ArenaWidth
	y0 = r.Y * rows / cannon.ArenaHeight
	x1 = (r.X + r.W) * cols / cannon.ArenaWidth
	y1 = (r.Y + r.H) * rows / cannon.ArenaHeight
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return clamp(x0, cols), clamp(y0, rows), clamp(x1, cols), clamp(y1, rows)
}

func clamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if v > n {
		return n
	}
	return v
}

// Draw renders the current screen.
func (u *UI) Draw() {
	u.screen.Fill(' ', styleSky)
	switch u.session.Screen() {
	case cannon.MainMenu:
		u.drawMenu()
	case cannon.Playing:
		u.drawBoard()
	case cannon.GameOver:
		u.drawBoard()
		u.drawGameOver()
	}
	u.screen.Show()
}

func (u *UI) drawMenu() {
	cols, rows := u.screen.Size()
	u.centre("CANNON BALL", 140*rows/cannon.ArenaHeight, styleChest.Bold(true))
	u.centre("arrows move  space fires  m mutes  q quits", 210*rows/cannon.ArenaHeight, styleSky)
	u.button(cannon.NewGameRegion, "NEW GAME", cols, rows)
	u.button(cannon.ExitRegion, "EXIT", cols, rows)
}

func (u *UI) button(r cannon.Rect, label string, cols, rows int) {
	x0, y0, x1, y1 := toCells(r, cols, rows)
	u.fill(x0, y0, x1, y1, ' ', styleButton)
	u.text((x0+x1-len(label))/2, (y0+y1-1)/2, label, styleButton)
}

func (u *UI) drawBoard() {
	cols, rows := u.screen.Size()

	for _, t := range u.session.Targets() {
		x0, y0, x1, y1 := toCells(t.Rect(), cols, rows)
		glyph, style := '$', styleChest
		if t.Kind() == cannon.TNT {
			glyph, style = 'T', styleTNT
		}
		u.fill(x0, y0, x1, y1, glyph, style)
	}

	l := u.session.Launcher()
	x0, y0, x1, y1 := toCells(l.Rect(), cols, rows)
	wheel := [2]rune{'o', '*'}[l.Frame()%2]
	u.fill(x0, y0, x1, y1, '=', styleCannon)
	if x1-x0 >= 2 {
		u.screen.SetContent(x0, y1-1, wheel, nil, styleCannon)
		u.screen.SetContent(x1-1, y1-1, wheel, nil, styleCannon)
	}
	barrelX, barrel := x0, '\\'
	if l.Direction() == cannon.Right {
		barrelX, barrel = x1-1, '/'
	}
	u.screen.SetContent(barrelX, y0, barrel, nil, styleCannon)

	if p := u.session.Projectile(); p.State() == cannon.Moving {
		bx, by, _, _ := toCells(p.HitBox(), cols, rows)
		u.screen.SetContent(bx, by, '●', nil, styleBall)
	}

	u.drawHUD(cols)
}

func (u *UI) drawHUD(cols int) {
	tr := u.session.Tracker()
	line := fmt.Sprintf(" LEVEL %d   BOMBS %d   SCORE %d ", tr.Level(), u.session.Ammo(), tr.Score())
	x := cols - len(line)
	if x < 0 {
		x = 0
	}
	u.text(x, 0, line, styleHUD)
}

func (u *UI) drawGameOver() {
	cols, rows := u.screen.Size()
	x0, y0, x1, y1 := toCells(gameOverRect, cols, rows)
	u.fill(x0, y0, x1, y1, ' ', stylePanel)
	sm := u.session.Summary()
	mid := (y0 + y1) / 2
	u.centre("GAME OVER", mid-2, styleAlert)
	u.centre(fmt.Sprintf("score %d  level %d", sm.Score, sm.Level), mid, stylePanel)
	u.centre("q quits", mid+2, stylePanel)
}

func (u *UI) fill(x0, y0, x1, y1 int, r rune, style tcell.Style) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			u.screen.SetContent(x, y, r, nil, style)
		}
	}
}

func (u *UI) text(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		u.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (u *UI) centre(s string, y int, style tcell.Style) {
	cols, _ := u.screen.Size()
	u.text((cols-len([]rune(s)))/2, y, s, style)
}
