package game

// Key is a logical input key. Hosts map their own key codes onto these.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyPrevLevel
	KeyNextLevel
	keyCount
)

// Input is the keyboard state for one frame.
type Input interface {
	// Down reports whether k is held.
	Down(k Key) bool
	// Pressed reports whether k went down this frame.
	Pressed(k Key) bool
}

// Keys is an Input driven by explicit events. Hosts without a polling
// keyboard API feed it and call EndFrame after every update.
type Keys struct {
	down    [keyCount]bool
	pressed [keyCount]bool
}

func (k *Keys) Down(key Key) bool {
	return key >= 0 && key < keyCount && k.down[key]
}

func (k *Keys) Pressed(key Key) bool {
	return key >= 0 && key < keyCount && k.pressed[key]
}

// Press marks key as pressed this frame and held.
func (k *Keys) Press(key Key) {
	if key < 0 || key >= keyCount {
		return
	}
	if !k.down[key] {
		k.pressed[key] = true
	}
	k.down[key] = true
}

// Release marks key as no longer held.
func (k *Keys) Release(key Key) {
	if key < 0 || key >= keyCount {
		return
	}
	k.down[key] = false
}

// EndFrame clears the per-frame pressed state.
func (k *Keys) EndFrame() {
	k.pressed = [keyCount]bool{}
}

// Reset releases every key.
func (k *Keys) Reset() {
	*k = Keys{}
}

// DrawOp draws one tile with its top-left corner at pixel X, Y.
type DrawOp struct {
	Tile int
	X, Y int
}

// Canvas collects the draw operations of one frame, in painter's order.
type Canvas struct {
	Ops []DrawOp
}

func (c *Canvas) Draw(tile, x, y int) {
	c.Ops = append(c.Ops, DrawOp{Tile: tile, X: x, Y: y})
}

// Reset empties the canvas, keeping its capacity.
func (c *Canvas) Reset() {
	c.Ops = c.Ops[:0]
}

// Context is shared by every system of a tick.
type Context struct {
	Map    *TileMap
	Input  Input
	Canvas *Canvas
}

func (ctx *Context) down(k Key) bool {
	return ctx.Input != nil && ctx.Input.Down(k)
}

func (ctx *Context) pressed(k Key) bool {
	return ctx.Input != nil && ctx.Input.Pressed(k)
}

func (ctx *Context) draw(tile, x, y int) {
	if ctx.Canvas != nil {
		ctx.Canvas.Draw(tile, x, y)
	}
}
