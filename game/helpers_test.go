package game_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/oxide/ecs"
	"github.com/plus3/oxide/game"
)

// openMap returns a floor-only map with walls at the given tile coordinates.
func openMap(t *testing.T, walls ...[2]int) *game.TileMap {
	t.Helper()
	m, err := game.ParseTileMap(make([]byte, game.MapWidth*game.MapHeight))
	require.NoError(t, err)
	for _, wall := range walls {
		m.Set(wall[0], wall[1], game.TileWall)
	}
	return m
}

// newWorld returns a world with every game component registered and only the
// given systems added.
func newWorld(systems ...ecs.System[game.Context]) *game.World {
	w := ecs.NewWorld[game.Context]()
	game.RegisterComponents(w)
	for _, system := range systems {
		w.System(system)
	}
	return w
}

// assertPanicsWith runs fn and checks that it panics with an error matching
// target.
func assertPanicsWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic matching %v", target)
		err, ok := r.(error)
		require.True(t, ok, "expected panic with an error, got %T: %v", r, r)
		assert.True(t, errors.Is(err, target), "expected %v, got %v", target, err)
	}()
	fn()
}

func position(w *game.World, e ecs.Entity) game.Pos {
	pos := ecs.Get[game.Pos](w)
	defer pos.Release()
	return pos.Must(e)
}

func component[T any](w *game.World, e ecs.Entity) (T, bool) {
	col := ecs.Get[T](w)
	defer col.Release()
	return col.Get(e)
}

func level(entities ...string) []byte {
	body := ""
	for i, e := range entities {
		if i > 0 {
			body += ","
		}
		body += e
	}
	return []byte(fmt.Sprintf(`{"map": 0, "entities": [%s]}`, body))
}
