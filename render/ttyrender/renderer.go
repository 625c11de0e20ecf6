// Package ttyrender draws the game's display list in a terminal with tcell.
// Every tile takes one row and two columns, so wide glyphs fit.
package ttyrender

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/plus3/oxide/game"
)

// CellWidth is the number of terminal columns used by one tile.
const CellWidth = 2

type glyph struct {
	text  string
	style tcell.Style
}

var (
	base = tcell.StyleDefault.Background(tcell.ColorBlack)

	glyphs = map[int]glyph{
		game.TileFloor:        {"·", base.Foreground(tcell.ColorDimGray)},
		game.TileFloorCracked: {",", base.Foreground(tcell.ColorDimGray)},
		game.TileWall:         {"▓▓", base.Foreground(tcell.ColorSlateGray)},
		game.TileStairs:       {">", base.Foreground(tcell.ColorGoldenrod).Bold(true)},
		game.SprPlayer:        {"🧙", base},
		game.SprSlime:         {"🟢", base},
		game.SprGhost:         {"👻", base},
		game.SprCrate:         {"📦", base},
		game.SprSpikes:        {"^^", base.Foreground(tcell.ColorSilver)},
		game.SprHeart:         {"♥", base.Foreground(tcell.ColorRed)},
		game.SprSlash:         {"💥", base},
	}
	unknown = glyph{"??", base.Foreground(tcell.ColorFuchsia)}
)

// Renderer draws canvases to a tcell screen.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Cell returns the terminal position of the tile containing pixel x, y,
// rounding to the nearest tile.
func Cell(x, y int) (int, int) {
	half := game.TileSize / 2
	return floorDiv(x+half, game.TileSize) * CellWidth, floorDiv(y+half, game.TileSize)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// Draw paints canvas and a status line below it, then shows the screen.
func (r *Renderer) Draw(canvas *game.Canvas, status string) {
	r.screen.Clear()

	for _, op := range canvas.Ops {
		cx, cy := Cell(op.X, op.Y)
		if cx < 0 || cy < 0 || cx >= game.MapWidth*CellWidth || cy >= game.MapHeight {
			continue
		}
		g, ok := glyphs[op.Tile]
		if !ok {
			g = unknown
		}
		r.putGlyph(cx, cy, g.text, g.style)
	}

	r.putText(0, game.MapHeight+1, status, base.Foreground(tcell.ColorSilver))
	r.screen.Show()
}

// putGlyph fills one tile. Narrow glyphs are drawn rune by rune and padded;
// a wide glyph covers both columns on its own.
func (r *Renderer) putGlyph(x, y int, text string, style tcell.Style) {
	if runewidth.StringWidth(text) >= CellWidth {
		runes := []rune(text)
		if runewidth.RuneWidth(runes[0]) == CellWidth {
			r.screen.SetContent(x, y, runes[0], runes[1:], style)
			return
		}
	}

	col := 0
	for _, ch := range text {
		if col >= CellWidth {
			break
		}
		r.screen.SetContent(x+col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
	for ; col < CellWidth; col++ {
		r.screen.SetContent(x+col, y, ' ', nil, style)
	}
}

func (r *Renderer) putText(x, y int, s string, style tcell.Style) {
	sw, _ := r.screen.Size()
	for _, ch := range s {
		if x >= sw {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
}
