package game

import "github.com/rotisserie/eris"

const (
	TileSize  = 16
	MapWidth  = 16
	MapHeight = 12
)

// Tile ids shared by maps and sprites. Renderers decide what each id looks
// like.
const (
	TileFloor = iota
	TileWall
	TileFloorCracked
	TileStairs
)

const (
	SprPlayer = 8 + iota
	SprSlime
	SprGhost
	SprCrate
	SprSpikes
	SprHeart
	SprSlash
)

// TileMap is a MapWidth by MapHeight grid of tile ids, stored row-major.
type TileMap struct {
	tiles [MapWidth * MapHeight]byte
}

// ParseTileMap reads a map stored as one byte per tile.
func ParseTileMap(data []byte) (*TileMap, error) {
	if len(data) != MapWidth*MapHeight {
		return nil, eris.Errorf("map has %d tiles, want %d", len(data), MapWidth*MapHeight)
	}
	m := &TileMap{}
	copy(m.tiles[:], data)
	return m, nil
}

// At returns the tile at column tx, row ty. Tiles outside the map are walls.
func (m *TileMap) At(tx, ty int) int {
	if tx < 0 || ty < 0 || tx >= MapWidth || ty >= MapHeight {
		return TileWall
	}
	return int(m.tiles[ty*MapWidth+tx])
}

// Set replaces the tile at column tx, row ty. Out of range writes are ignored.
func (m *TileMap) Set(tx, ty, tile int) {
	if tx < 0 || ty < 0 || tx >= MapWidth || ty >= MapHeight {
		return
	}
	m.tiles[ty*MapWidth+tx] = byte(tile)
}

// Solid reports whether the tile at column tx, row ty blocks movement.
func (m *TileMap) Solid(tx, ty int) bool {
	return m.At(tx, ty) == TileWall
}

// Blocked reports whether the pixel rectangle at x, y with size w, h touches
// any solid tile.
func (m *TileMap) Blocked(x, y, w, h int) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	for ty := floorDiv(y, TileSize); ty <= floorDiv(y+h-1, TileSize); ty++ {
		for tx := floorDiv(x, TileSize); tx <= floorDiv(x+w-1, TileSize); tx++ {
			if m.Solid(tx, ty) {
				return true
			}
		}
	}
	return false
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// Rect is an axis-aligned pixel rectangle.
type Rect struct {
	X, Y, W, H int
}

// Overlaps reports whether r and o share at least one pixel.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

func bounds(p Pos, c Collider) Rect {
	return Rect{X: p.X, Y: p.Y, W: c.W, H: c.H}
}
