package game

import (
	"fmt"
	"image/color"

	"github.com/Garsondee/Cannon-Ball/internal/cannon"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

const (
	// Game-over panel placement over the board.
	gameOverX = 150
	gameOverY = 150
	gameOverW = 300
	gameOverH = 200

	tntFrameTicks = 8  // ticks each TNT fuse frame is shown
	statusTicks   = 90 // how long the clipboard status line stays up
)

// Options configures the ebiten frontend.
type Options struct {
	Seed  int64
	Cues  cannon.CueSink
	Debug bool // start with the event overlay visible
}

// Game adapts a cannon.Session to ebiten's Update/Draw/Layout loop.
type Game struct {
	session *cannon.Session
	feed    *cannon.EventFeed
	sprites *sprites
	face    *text.GoXFace

	showDebug bool

	// Clipboard export feedback, shown on the game-over panel.
	status      string
	statusTicks int
	copyText    func(string) error

	// Reused per-frame buffers.
	pressed  []ebiten.Key
	released []ebiten.Key
	events   []cannon.InputEvent
}

// New builds the frontend and its session on the main menu.
func New(opts Options) *Game {
	feed := cannon.NewEventFeed()
	return &Game{
		session: cannon.NewSession(cannon.Options{
			Seed: opts.Seed,
			Cues: opts.Cues,
			Feed: feed,
		}),
		feed:      feed,
		sprites:   newSprites(),
		face:      text.NewGoXFace(basicfont.Face7x13),
		showDebug: opts.Debug,
		copyText:  writeClipboard,
	}
}

// Session exposes the underlying session, e.g. for a final summary.
func (g *Game) Session() *cannon.Session { return g.session }

func (g *Game) Update() error {
	g.pressed = inpututil.AppendJustPressedKeys(g.pressed[:0])
	g.released = inpututil.AppendJustReleasedKeys(g.released[:0])
	g.handleFrontendKeys(g.pressed)

	g.events = translateKeys(g.events[:0], g.pressed, g.released)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.events = append(g.events, cannon.PointerDown(x, y))
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.events = append(g.events, cannon.InputEvent{Kind: cannon.EventPointerUp, X: x, Y: y})
	}
	if ebiten.IsWindowBeingClosed() {
		g.events = append(g.events, cannon.Quit())
	}

	if !g.session.Tick(g.events) {
		return ebiten.Termination
	}
	if g.statusTicks > 0 {
		g.statusTicks--
	}
	return nil
}

// handleFrontendKeys processes keys that never reach the session.
func (g *Game) handleFrontendKeys(pressed []ebiten.Key) {
	for _, k := range pressed {
		switch k {
		case ebiten.KeyF1:
			g.showDebug = !g.showDebug
		case ebiten.KeyM:
			g.session.ToggleMute()
		case ebiten.KeyC:
			if g.session.Screen() == cannon.GameOver {
				g.copyScore()
			}
		}
	}
}

// copyScore puts the final summary on the system clipboard.
func (g *Game) copyScore() {
	if err := copySummary(g.copyText, g.session.Summary()); err != nil {
		g.setStatus("clipboard unavailable")
		return
	}
	g.setStatus("score copied")
}

func (g *Game) setStatus(s string) {
	g.status = s
	g.statusTicks = statusTicks
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.session.Screen() {
	case cannon.MainMenu:
		g.drawMenu(screen)
	case cannon.Playing:
		g.drawBoard(screen)
		g.drawHUD(screen)
	case cannon.GameOver:
		g.drawBoard(screen)
		g.drawHUD(screen)
		g.drawGameOver(screen)
	}
	if g.showDebug {
		g.drawDebug(screen)
	}
}

func (g *Game) drawMenu(screen *ebiten.Image) {
	screen.DrawImage(g.sprites.menu, nil)
	g.drawTextScaled(screen, "CANNON BALL", cannon.ArenaWidth/2, 140, 4, colGold)
	g.drawTextScaled(screen, "arrows move  space fires  M mutes", cannon.ArenaWidth/2, 210, 2, color.White)
	g.drawLabel(screen, "NEW GAME", cannon.NewGameRegion)
	g.drawLabel(screen, "EXIT", cannon.ExitRegion)
}

func (g *Game) drawBoard(screen *ebiten.Image) {
	screen.DrawImage(g.sprites.background, nil)

	tntFrame := (g.session.TickCount() / tntFrameTicks) % cannon.TNTFrames
	for _, t := range g.session.Targets() {
		x, y := t.Position()
		img := g.sprites.chest
		if t.Kind() == cannon.TNT {
			img = g.sprites.tnt[tntFrame]
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(x), float64(y))
		screen.DrawImage(img, op)
	}

	if p := g.session.Projectile(); p.State() == cannon.Moving {
		x, y := p.Position()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, y)
		screen.DrawImage(g.sprites.ball, op)
	}

	l := g.session.Launcher()
	op := &ebiten.DrawImageOptions{GeoM: facing(l.Direction(), cannon.LauncherWidth)}
	op.GeoM.Translate(l.X(), cannon.LauncherY)
	screen.DrawImage(g.sprites.cannon[l.Frame()%len(g.sprites.cannon)], op)
}

// facing returns the transform that turns a right-facing sprite of width w
// toward d.
func facing(d cannon.Direction, w float64) ebiten.GeoM {
	var m ebiten.GeoM
	if d == cannon.Left {
		m.Scale(-1, 1)
		m.Translate(w, 0)
	}
	return m
}

func (g *Game) drawGameOver(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(gameOverX, gameOverY)
	screen.DrawImage(g.sprites.gameOver, op)

	cx := float64(gameOverX + gameOverW/2)
	g.drawTextScaled(screen, "GAME OVER", cx, gameOverY+40, 3, colTNT)
	for i, line := range gameOverLines(g.session.Summary()) {
		g.drawTextScaled(screen, line, cx, gameOverY+90+float64(i)*22, 1, color.White)
	}
	if g.statusTicks > 0 {
		g.drawTextScaled(screen, g.status, cx, gameOverY+gameOverH-20, 1, colFuse)
	}
}

// gameOverLines is the summary shown on the game-over panel.
func gameOverLines(sm cannon.Summary) []string {
	return []string{
		fmt.Sprintf("score %d   level %d", sm.Score, sm.Level),
		fmt.Sprintf("%d shots, %d hits", sm.Shots, sm.Hits),
		"C copies your score",
	}
}

// drawDebug renders the tick counter and the recent event feed.
func (g *Game) drawDebug(screen *ebiten.Image) {
	p := g.session.Projectile()
	x, y := p.Position()
	vx, vy := p.Velocity()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("T=%d %s ball=(%.0f,%.0f) v=(%.0f,%.0f) %s",
		g.session.TickCount(), g.session.Screen(), x, y, vx, vy, p.State()), 4, cannon.ArenaHeight-18)
	drawFeedPanel(screen, g.feed, cannon.ArenaWidth-feedPanelWidth, cannon.LauncherY)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return cannon.ArenaWidth, cannon.ArenaHeight
}
