package game

import (
	"image/color"

	"github.com/Garsondee/Cannon-Ball/internal/cannon"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Palette.
var (
	colSky       = color.RGBA{R: 24, G: 38, B: 64, A: 255}
	colSkyBand   = color.RGBA{R: 30, G: 48, B: 78, A: 255}
	colGround    = color.RGBA{R: 70, G: 52, B: 34, A: 255}
	colRail      = color.RGBA{R: 120, G: 110, B: 96, A: 255}
	colIron      = color.RGBA{R: 46, G: 48, B: 54, A: 255}
	colIronLight = color.RGBA{R: 96, G: 100, B: 110, A: 255}
	colWood      = color.RGBA{R: 128, G: 82, B: 40, A: 255}
	colWoodDark  = color.RGBA{R: 84, G: 52, B: 24, A: 255}
	colGold      = color.RGBA{R: 232, G: 190, B: 60, A: 255}
	colTNT       = color.RGBA{R: 196, G: 40, B: 36, A: 255}
	colFuse      = color.RGBA{R: 255, G: 210, B: 90, A: 255}
	colPanel     = color.RGBA{R: 10, G: 14, B: 22, A: 220}
	colPanelEdge = color.RGBA{R: 90, G: 120, B: 160, A: 220}
	colButton    = color.RGBA{R: 40, G: 70, B: 110, A: 255}
)

// sprites holds every image the frontend draws, rendered procedurally once.
type sprites struct {
	background *ebiten.Image
	cannon     [2]*ebiten.Image // rolling frames, drawn facing right
	ball       *ebiten.Image
	chest      *ebiten.Image
	tnt        [cannon.TNTFrames]*ebiten.Image
	menu       *ebiten.Image
	gameOver   *ebiten.Image
}

func newSprites() *sprites {
	sp := &sprites{
		background: newBackground(),
		ball:       newBall(),
		chest:      newChest(),
		menu:       newMenu(),
		gameOver:   newGameOverPanel(),
	}
	for i := range sp.cannon {
		sp.cannon[i] = newCannon(i)
	}
	for i := range sp.tnt {
		sp.tnt[i] = newTNT(i)
	}
	return sp
}

func newBackground() *ebiten.Image {
	img := ebiten.NewImage(cannon.ArenaWidth, cannon.ArenaHeight)
	img.Fill(colSky)
	for y := 0; y < cannon.LauncherY; y += 40 {
		vector.FillRect(img, 0, float32(y), cannon.ArenaWidth, 20, colSkyBand, false)
	}
	groundY := float32(cannon.LauncherY + 56)
	vector.FillRect(img, 0, groundY, cannon.ArenaWidth, cannon.ArenaHeight-groundY, colGround, false)
	vector.StrokeLine(img, 0, groundY, cannon.ArenaWidth, groundY, 3, colRail, false)
	for x := float32(0); x < cannon.ArenaWidth; x += 24 {
		vector.FillRect(img, x, groundY+4, 12, 4, colWoodDark, false)
	}
	return img
}

// newCannon draws the cart-mounted barrel. Frame 1 rotates the wheel spokes.
func newCannon(frame int) *ebiten.Image {
	const w, h = cannon.LauncherWidth, 58
	img := ebiten.NewImage(w, h)

	// Cart bed.
	vector.FillRect(img, 4, 30, 56, 12, colWood, false)
	vector.StrokeRect(img, 4, 30, 56, 12, 1, colWoodDark, false)

	// Barrel angled up and to the right.
	var p vector.Path
	p.MoveTo(14, 34)
	p.LineTo(52, 6)
	p.LineTo(60, 14)
	p.LineTo(24, 40)
	p.Close()
	drawPath(img, &p, colIron)
	vector.FillCircle(img, 56, 10, 5, colIronLight, false)
	vector.FillCircle(img, 56, 10, 3, colIron, false)

	// Wheels.
	for _, cx := range []float32{16, 48} {
		vector.FillCircle(img, cx, 46, 10, colWoodDark, false)
		vector.StrokeCircle(img, cx, 46, 10, 2, colIron, false)
		if frame == 0 {
			vector.StrokeLine(img, cx-9, 46, cx+9, 46, 2, colWood, false)
			vector.StrokeLine(img, cx, 37, cx, 55, 2, colWood, false)
		} else {
			vector.StrokeLine(img, cx-6, 40, cx+6, 52, 2, colWood, false)
			vector.StrokeLine(img, cx+6, 40, cx-6, 52, 2, colWood, false)
		}
	}
	return img
}

func newBall() *ebiten.Image {
	const s = cannon.ProjectileSize
	img := ebiten.NewImage(s, s)
	vector.FillCircle(img, s/2, s/2, s/2, colIron, true)
	vector.FillCircle(img, s/2-3, s/2-3, 3, colIronLight, true)
	return img
}

func newChest() *ebiten.Image {
	const s = cannon.TargetSize
	img := ebiten.NewImage(s, s)
	vector.FillRect(img, 4, 18, 56, 42, colWood, false)
	vector.FillRect(img, 4, 10, 56, 14, colWoodDark, false)
	for _, x := range []float32{12, 48} {
		vector.FillRect(img, x, 10, 4, 50, colGold, false)
	}
	vector.FillRect(img, 26, 22, 12, 12, colGold, false)
	vector.FillRect(img, 30, 26, 4, 6, colWoodDark, false)
	vector.StrokeRect(img, 4, 10, 56, 50, 2, colWoodDark, false)
	return img
}

// newTNT draws the crate with its fuse spark at one of four positions.
func newTNT(frame int) *ebiten.Image {
	const s = cannon.TargetSize
	img := ebiten.NewImage(s, s)
	for i := float32(0); i < 3; i++ {
		vector.FillRect(img, 10+i*16, 16, 12, 44, colTNT, false)
		vector.StrokeRect(img, 10+i*16, 16, 12, 44, 1, colWoodDark, false)
	}
	vector.FillRect(img, 6, 32, 52, 10, colWood, false)
	vector.StrokeLine(img, 32, 16, 32, 4, 2, colRail, false)

	sparks := [cannon.TNTFrames][2]float32{{32, 4}, {35, 2}, {32, 0}, {29, 2}}
	sp := sparks[frame%cannon.TNTFrames]
	vector.FillCircle(img, sp[0], sp[1]+2, 3, colFuse, true)
	return img
}

// newMenu draws the title card with the new game and exit buttons at the
// session's hit regions.
func newMenu() *ebiten.Image {
	img := ebiten.NewImage(cannon.ArenaWidth, cannon.ArenaHeight)
	img.Fill(colSky)
	vector.FillRect(img, 60, 90, 480, 160, colPanel, false)
	vector.StrokeRect(img, 60, 90, 480, 160, 3, colPanelEdge, false)
	for _, r := range []cannon.Rect{cannon.NewGameRegion, cannon.ExitRegion} {
		vector.FillRect(img, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), colButton, false)
		vector.StrokeRect(img, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 3, colPanelEdge, false)
	}
	return img
}

func newGameOverPanel() *ebiten.Image {
	img := ebiten.NewImage(gameOverW, gameOverH)
	vector.FillRect(img, 0, 0, gameOverW, gameOverH, colPanel, false)
	vector.StrokeRect(img, 1, 1, gameOverW-2, gameOverH-2, 3, colTNT, false)
	return img
}

// drawPath fills p with a solid colour.
func drawPath(dst *ebiten.Image, p *vector.Path, c color.Color) {
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(c)
	vector.FillPath(dst, p, &vector.FillOptions{}, op)
}
