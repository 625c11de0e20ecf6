package ttyrender_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/oxide/game"
	"github.com/plus3/oxide/render/ttyrender"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, ss.Init())
	ss.SetSize(80, 24)
	t.Cleanup(ss.Fini)
	return ss
}

func runeAt(ss tcell.SimulationScreen, x, y int) rune {
	cells, w, _ := ss.GetContents()
	cell := cells[y*w+x]
	if len(cell.Runes) == 0 {
		return 0
	}
	return cell.Runes[0]
}

func TestCell(t *testing.T) {
	tests := []struct {
		x, y   int
		cx, cy int
	}{
		{0, 0, 0, 0},
		{7, 7, 0, 0},
		{8, 8, 2, 1},
		{17, 15, 2, 1},
		{-9, 0, -2, 0},
	}
	for _, tt := range tests {
		cx, cy := ttyrender.Cell(tt.x, tt.y)
		assert.Equal(t, tt.cx, cx, "x for %d,%d", tt.x, tt.y)
		assert.Equal(t, tt.cy, cy, "y for %d,%d", tt.x, tt.y)
	}
}

func TestRendererDraw(t *testing.T) {
	ss := newSimScreen(t)
	r := ttyrender.NewRenderer(ss)

	canvas := &game.Canvas{}
	canvas.Draw(game.TileWall, 0, 0)
	canvas.Draw(game.TileFloor, game.TileSize, 0)
	canvas.Draw(game.SprSpikes, game.TileSize, 0)
	canvas.Draw(game.TileFloor, -100, 0)

	r.Draw(canvas, "level 1")

	assert.Equal(t, '▓', runeAt(ss, 0, 0))
	assert.Equal(t, '▓', runeAt(ss, 1, 0))
	assert.Equal(t, '^', runeAt(ss, 2, 0), "later ops paint over earlier ones")
	assert.Equal(t, 'l', runeAt(ss, 0, game.MapHeight+1))
	assert.Equal(t, '1', runeAt(ss, 6, game.MapHeight+1))
}

func TestInputHold(t *testing.T) {
	in := ttyrender.NewInput()

	quit := in.Handle(tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone))
	require.False(t, quit)
	assert.True(t, in.Down(game.KeyRight))
	assert.True(t, in.Pressed(game.KeyRight))

	in.EndFrame()
	assert.True(t, in.Down(game.KeyRight))
	assert.False(t, in.Pressed(game.KeyRight))

	// A repeat while held keeps the key down without a new press.
	in.Handle(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	assert.False(t, in.Pressed(game.KeyRight))

	for i := 0; i < ttyrender.HoldFrames; i++ {
		in.EndFrame()
	}
	assert.False(t, in.Down(game.KeyRight))
}

func TestInputQuitAndLevels(t *testing.T) {
	in := ttyrender.NewInput()

	assert.True(t, in.Handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.True(t, in.Handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))

	assert.False(t, in.Handle(tcell.NewEventKey(tcell.KeyRune, '.', tcell.ModNone)))
	assert.True(t, in.Pressed(game.KeyNextLevel))
	assert.False(t, in.Pressed(game.KeyPrevLevel))

	assert.False(t, in.Handle(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)))
}
