package game_test

import (
	"testing"

	"github.com/plus3/oxide/ecs"
	"github.com/plus3/oxide/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLevel(t *testing.T) {
	w := newWorld()
	data := []byte(`{
		"map": 1,
		"entities": [
			[
				{"type": "pos", "x": 32, "y": 48},
				{"type": "vel", "x": 0, "y": 0},
				{"type": "spr", "id": 8},
				{"type": "player"},
				{"type": "collider", "w": 14, "h": 12},
				{"type": "health", "val": 5}
			],
			[
				{"type": "pos", "x": 100, "y": 100},
				{"type": "healthmod", "val": -2},
				{"type": "follow", "id": 0}
			],
			[
				{"type": "push"}
			]
		]
	}`)

	mapID, err := game.LoadLevel(w, data)
	require.NoError(t, err)
	assert.Equal(t, 1, mapID)
	require.Equal(t, 3, w.Len())

	assert.Equal(t, map[string]any{
		"game.Pos":      game.Pos{X: 32, Y: 48},
		"game.Vel":      game.Vel{},
		"game.Spr":      game.Spr(8),
		"game.Player":   game.Player{},
		"game.Collider": game.Collider{W: 14, H: 12},
		"game.Health":   game.Health(5),
	}, w.Inspect(0))

	mod, ok := component[game.HealthMod](w, 1)
	require.True(t, ok)
	assert.Equal(t, game.HealthMod{Health: -2, Cooldown: 0}, mod)

	follow, ok := component[game.Follow](w, 1)
	require.True(t, ok)
	assert.Equal(t, game.Follow(0), follow)

	_, ok = component[game.Push](w, 2)
	assert.True(t, ok)
}

func TestLoadLevelMalformed(t *testing.T) {
	w := newWorld()

	_, err := game.LoadLevel(w, []byte(`{"map": 0, "entities": [`))
	assert.Error(t, err)

	_, err = game.LoadLevel(w, []byte(`{"map": "zero"}`))
	assert.Error(t, err)

	assert.Equal(t, 0, w.Len())
}

func TestLoadLevelUnknownComponent(t *testing.T) {
	w := newWorld()

	assertPanicsWith(t, ecs.ErrUnknownComponent, func() {
		game.LoadLevel(w, level(`[{"type": "pos"}]`, `[{"type": "teleporter"}]`))
	})
	assert.Equal(t, 1, w.Len(), "entities before the broken one are kept")
}

func TestParseLevelKeepsFileOrder(t *testing.T) {
	lvl, err := game.ParseLevel(level(`[{"type": "player"}]`, `[{"type": "spr", "id": 3}]`))
	require.NoError(t, err)

	require.Len(t, lvl.Entities, 2)
	assert.Equal(t, "player", lvl.Entities[0][0].Type)
	assert.Equal(t, game.Spr(3), lvl.Entities[1][0].Component())
}
