package game

import (
	"fmt"
	"image/color"

	"github.com/Garsondee/Cannon-Ball/internal/cannon"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	feedPanelWidth = 300
	feedPanelTop   = 40
	feedLineHeight = 14
	feedHighlight  = 3 // newest entries drawn on a lit row
)

// categoryColors tints the marker dot of each feed row.
var categoryColors = map[string]color.RGBA{
	"fire":   {R: 255, G: 160, B: 60, A: 255},
	"bounce": {R: 120, G: 160, B: 255, A: 255},
	"hit":    {R: 90, G: 220, B: 110, A: 255},
	"score":  {R: 90, G: 220, B: 110, A: 255},
	"level":  {R: 232, G: 190, B: 60, A: 255},
	"ammo":   {R: 210, G: 70, B: 70, A: 255},
	"state":  {R: 220, G: 220, B: 220, A: 255},
}

// feedLine formats one row of the event panel.
func feedLine(e cannon.LogEntry) string {
	return fmt.Sprintf("%5d %-6s %s %s", e.Tick, e.Category, e.Key, e.Value)
}

// drawFeedPanel renders the newest feed entries in a column at panelX,
// from feedPanelTop down to bottom. The newest entry is the last row.
func drawFeedPanel(screen *ebiten.Image, feed *cannon.EventFeed, panelX, bottom int) {
	h := bottom - feedPanelTop
	x, y := float32(panelX), float32(feedPanelTop)

	vector.FillRect(screen, x, y, feedPanelWidth, float32(h), color.RGBA{R: 6, G: 8, B: 14, A: 210}, false)
	vector.StrokeLine(screen, x, y, x, y+float32(h), 1, colPanelEdge, false)
	vector.FillRect(screen, x, y, feedPanelWidth, 16, color.RGBA{R: 20, G: 30, B: 48, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "EVENTS  (F1)", panelX+8, feedPanelTop)

	visible := feed.Tail((h - 20) / feedLineHeight)
	row := feedPanelTop + 20
	for i, e := range visible {
		if i >= len(visible)-feedHighlight {
			vector.FillRect(screen, x+2, float32(row), feedPanelWidth-4, feedLineHeight, color.RGBA{R: 30, G: 40, B: 60, A: 160}, false)
		}
		dot, ok := categoryColors[e.Category]
		if !ok {
			dot = color.RGBA{R: 140, G: 140, B: 140, A: 255}
		}
		vector.FillRect(screen, x+5, float32(row+5), 3, 5, dot, false)
		ebitenutil.DebugPrintAt(screen, feedLine(e), panelX+12, row)
		row += feedLineHeight
	}
}
