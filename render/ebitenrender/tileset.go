package ebitenrender

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/oxide/game"
)

var (
	colorFloor   = color.RGBA{46, 38, 52, 255}
	colorCrack   = color.RGBA{30, 24, 36, 255}
	colorWall    = color.RGBA{110, 98, 120, 255}
	colorMortar  = color.RGBA{70, 60, 80, 255}
	colorStairs  = color.RGBA{200, 180, 120, 255}
	colorPlayer  = color.RGBA{120, 200, 255, 255}
	colorSlime   = color.RGBA{120, 220, 110, 255}
	colorGhost   = color.RGBA{220, 220, 240, 200}
	colorCrate   = color.RGBA{160, 110, 60, 255}
	colorSpikes  = color.RGBA{190, 190, 200, 255}
	colorHeart   = color.RGBA{230, 60, 80, 255}
	colorSlash   = color.RGBA{255, 240, 200, 220}
	colorMissing = color.RGBA{255, 0, 255, 255}
)

// Tileset holds one image per tile id, drawn procedurally.
type Tileset struct {
	tiles   map[int]*ebiten.Image
	missing *ebiten.Image
}

// NewTileset draws every tile the game knows about.
func NewTileset() *Tileset {
	ts := &Tileset{tiles: make(map[int]*ebiten.Image)}

	ts.add(game.TileFloor, drawFloor(false))
	ts.add(game.TileFloorCracked, drawFloor(true))
	ts.add(game.TileWall, drawWall)
	ts.add(game.TileStairs, drawStairs)
	ts.add(game.SprPlayer, drawCreature(colorPlayer))
	ts.add(game.SprSlime, drawSlime)
	ts.add(game.SprGhost, drawCreature(colorGhost))
	ts.add(game.SprCrate, drawCrate)
	ts.add(game.SprSpikes, drawSpikes)
	ts.add(game.SprHeart, drawHeart)
	ts.add(game.SprSlash, drawSlash)

	ts.missing = ebiten.NewImage(game.TileSize, game.TileSize)
	ts.missing.Fill(colorMissing)
	return ts
}

func (ts *Tileset) add(id int, draw func(img *ebiten.Image)) {
	img := ebiten.NewImage(game.TileSize, game.TileSize)
	draw(img)
	ts.tiles[id] = img
}

// Tile returns the image for id, or a placeholder for unknown ids.
func (ts *Tileset) Tile(id int) *ebiten.Image {
	if img, ok := ts.tiles[id]; ok {
		return img
	}
	return ts.missing
}

const size = float32(game.TileSize)

func drawFloor(cracked bool) func(img *ebiten.Image) {
	return func(img *ebiten.Image) {
		img.Fill(colorFloor)
		if cracked {
			vector.StrokeLine(img, 3, 4, 8, 9, 1, colorCrack, false)
			vector.StrokeLine(img, 8, 9, 7, 13, 1, colorCrack, false)
		}
	}
}

func drawWall(img *ebiten.Image) {
	img.Fill(colorWall)
	vector.StrokeLine(img, 0, size/2, size, size/2, 1, colorMortar, false)
	vector.StrokeLine(img, size/2, 0, size/2, size/2, 1, colorMortar, false)
	vector.StrokeLine(img, size/4, size/2, size/4, size, 1, colorMortar, false)
}

func drawStairs(img *ebiten.Image) {
	img.Fill(colorFloor)
	for i := float32(0); i < 4; i++ {
		vector.DrawFilledRect(img, 2+i*2, 3+i*3, size-4-i*4, 2, colorStairs, false)
	}
}

func drawCreature(c color.RGBA) func(img *ebiten.Image) {
	return func(img *ebiten.Image) {
		vector.DrawFilledCircle(img, size/2, size/2-2, 4, c, false)
		vector.DrawFilledRect(img, 4, size/2+1, size-8, size/2-2, c, false)
	}
}

func drawSlime(img *ebiten.Image) {
	vector.DrawFilledCircle(img, size/2, size-5, 6, colorSlime, false)
	vector.DrawFilledRect(img, 2, size-5, size-4, 4, colorSlime, false)
}

func drawCrate(img *ebiten.Image) {
	vector.DrawFilledRect(img, 1, 1, size-2, size-2, colorCrate, false)
	vector.StrokeRect(img, 1, 1, size-2, size-2, 1, colorCrack, false)
	vector.StrokeLine(img, 1, 1, size-1, size-1, 1, colorCrack, false)
}

func drawSpikes(img *ebiten.Image) {
	for i := float32(0); i < 4; i++ {
		x := 2 + i*3.5
		vector.StrokeLine(img, x, size-2, x+1.5, 4, 1, colorSpikes, false)
		vector.StrokeLine(img, x+1.5, 4, x+3, size-2, 1, colorSpikes, false)
	}
}

func drawHeart(img *ebiten.Image) {
	vector.DrawFilledCircle(img, 5, 6, 3, colorHeart, false)
	vector.DrawFilledCircle(img, 11, 6, 3, colorHeart, false)
	vector.DrawFilledRect(img, 3, 6, 10, 3, colorHeart, false)
	vector.DrawFilledRect(img, 5, 9, 6, 2, colorHeart, false)
	vector.DrawFilledRect(img, 7, 11, 2, 2, colorHeart, false)
}

func drawSlash(img *ebiten.Image) {
	vector.StrokeLine(img, 2, size-2, size-2, 2, 2, colorSlash, false)
	vector.StrokeLine(img, 5, size-2, size-2, 5, 1, colorSlash, false)
}
