// Package ebitenrender draws the game's display list with Ebiten and reads
// the keyboard for it.
package ebitenrender

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/oxide/game"
)

// ScreenWidth and ScreenHeight are the size of the offscreen target. The
// target is scaled to fill the window.
const (
	ScreenWidth  = game.MapWidth * game.TileSize
	ScreenHeight = game.MapHeight * game.TileSize
)

// Renderer draws canvases into an offscreen image of the map's pixel size.
type Renderer struct {
	tiles  *Tileset
	target *ebiten.Image
}

func NewRenderer() *Renderer {
	return &Renderer{
		tiles:  NewTileset(),
		target: ebiten.NewImage(ScreenWidth, ScreenHeight),
	}
}

// Draw paints canvas onto screen, scaled to the screen's size.
func (r *Renderer) Draw(screen *ebiten.Image, canvas *game.Canvas) {
	r.target.Fill(color.Black)

	for _, op := range canvas.Ops {
		opts := &ebiten.DrawImageOptions{}
		opts.GeoM.Translate(float64(op.X), float64(op.Y))
		r.target.DrawImage(r.tiles.Tile(op.Tile), opts)
	}

	bounds := screen.Bounds()
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(
		float64(bounds.Dx())/float64(ScreenWidth),
		float64(bounds.Dy())/float64(ScreenHeight),
	)
	opts.Filter = ebiten.FilterNearest
	screen.DrawImage(r.target, opts)
}

var keymap = map[game.Key][]ebiten.Key{
	game.KeyUp:        {ebiten.KeyArrowUp, ebiten.KeyW},
	game.KeyDown:      {ebiten.KeyArrowDown, ebiten.KeyS},
	game.KeyLeft:      {ebiten.KeyArrowLeft, ebiten.KeyA},
	game.KeyRight:     {ebiten.KeyArrowRight, ebiten.KeyD},
	game.KeyPrevLevel: {ebiten.KeyComma},
	game.KeyNextLevel: {ebiten.KeyPeriod},
}

// Input reads the Ebiten keyboard state. It is only valid during Update.
type Input struct {
	// Disabled makes every key read as up, for frames where another layer
	// owns the keyboard.
	Disabled bool
}

func (in Input) Down(k game.Key) bool {
	if in.Disabled {
		return false
	}
	for _, key := range keymap[k] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

func (in Input) Pressed(k game.Key) bool {
	if in.Disabled {
		return false
	}
	for _, key := range keymap[k] {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}
