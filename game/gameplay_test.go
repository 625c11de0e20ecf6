package game_test

import (
	"testing"

	"github.com/plus3/oxide/ecs"
	"github.com/plus3/oxide/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyVelocitiesCollision(t *testing.T) {
	w := newWorld(game.ApplyVelocities)
	ctx := &game.Context{Map: openMap(t, [2]int{5, 0})}

	e := w.Spawn(game.Pos{X: 79, Y: 0}, game.Vel{X: 1, Y: 1}, game.Collider{W: 1, H: 1})
	w.Tick(ctx)

	assert.Equal(t, game.Pos{X: 79, Y: 1}, position(w, e), "x is blocked by the wall, y is free")
}

func TestApplyVelocitiesWithoutCollider(t *testing.T) {
	w := newWorld(game.ApplyVelocities)
	ctx := &game.Context{Map: openMap(t, [2]int{5, 0})}

	ghost := w.Spawn(game.Pos{X: 79, Y: 0}, game.Vel{X: 1, Y: 0})
	still := w.Spawn(game.Pos{X: 10, Y: 10})

	w.Tick(ctx)
	w.Tick(ctx)

	assert.Equal(t, game.Pos{X: 81, Y: 0}, position(w, ghost))
	assert.Equal(t, game.Pos{X: 10, Y: 10}, position(w, still))
}

func TestUpdateHealthDamage(t *testing.T) {
	w := newWorld(game.UpdateHealth)
	ctx := &game.Context{}

	target := w.Spawn(game.Pos{X: 0, Y: 0}, game.Collider{W: 16, H: 16}, game.Health(10))
	spikes := w.Spawn(game.Pos{X: 8, Y: 8}, game.Collider{W: 16, H: 16}, game.HealthMod{Health: -1})

	health := func() game.Health {
		h, _ := component[game.Health](w, target)
		return h
	}
	cooldown := func() int {
		m, _ := component[game.HealthMod](w, spikes)
		return m.Cooldown
	}

	w.Tick(ctx)
	require.Equal(t, game.Health(9), health())
	require.Equal(t, game.HealthModCooldown, cooldown())

	for i := 1; i <= game.HealthModCooldown; i++ {
		w.Tick(ctx)
		assert.Equal(t, game.Health(9), health(), "tick %d", i)
		assert.Equal(t, game.HealthModCooldown-i, cooldown(), "tick %d", i)
	}

	w.Tick(ctx)
	assert.Equal(t, game.Health(8), health())
	assert.Equal(t, game.HealthModCooldown, cooldown())
}

func TestUpdateHealthSkipsSelfAndDead(t *testing.T) {
	w := newWorld(game.UpdateHealth)

	slime := w.Spawn(game.Pos{}, game.Collider{W: 16, H: 16}, game.Health(3), game.HealthMod{Health: -1})
	corpse := w.Spawn(game.Pos{}, game.Health(3))
	far := w.Spawn(game.Pos{X: 100}, game.Collider{W: 16, H: 16}, game.Health(3))

	w.Tick(&game.Context{})

	for _, e := range []ecs.Entity{slime, corpse, far} {
		h, ok := component[game.Health](w, e)
		require.True(t, ok)
		assert.Equal(t, game.Health(3), h, "entity %d", e)
	}
	mod, _ := component[game.HealthMod](w, slime)
	assert.Zero(t, mod.Cooldown, "a modifier that hit nothing stays ready")
}

func TestUpdateHealthHitsEveryOverlap(t *testing.T) {
	w := newWorld(game.UpdateHealth)

	a := w.Spawn(game.Pos{}, game.Collider{W: 16, H: 16}, game.Health(5))
	b := w.Spawn(game.Pos{X: 4}, game.Collider{W: 16, H: 16}, game.Health(5))
	w.Spawn(game.Pos{X: 2}, game.Collider{W: 4, H: 4}, game.HealthMod{Health: 2})

	w.Tick(&game.Context{})

	ha, _ := component[game.Health](w, a)
	hb, _ := component[game.Health](w, b)
	assert.Equal(t, game.Health(7), ha)
	assert.Equal(t, game.Health(7), hb)
}

func TestMoveFollowers(t *testing.T) {
	w := newWorld(game.MoveFollowers)

	player := w.Spawn(game.Pos{X: 10, Y: -5}, game.Player{})
	follower := w.Spawn(game.Pos{}, game.Vel{}, game.Spr(game.SprSlime), game.Follow(player))
	dead := w.Spawn(game.Pos{}, game.Vel{}, game.Follow(player))
	aligned := w.Spawn(game.Pos{X: 10, Y: 0}, game.Vel{X: 3, Y: 3}, game.Spr(game.SprGhost), game.Follow(player))

	w.Tick(&game.Context{})

	vel, _ := component[game.Vel](w, follower)
	assert.Equal(t, game.Vel{X: 1, Y: -1}, vel)

	vel, _ = component[game.Vel](w, dead)
	assert.Equal(t, game.Vel{}, vel, "followers without a sprite do not move")

	vel, _ = component[game.Vel](w, aligned)
	assert.Equal(t, game.Vel{X: 0, Y: -1}, vel)
}

func TestMoveFollowersMissingTarget(t *testing.T) {
	w := newWorld(game.MoveFollowers)

	target := w.Spawn(game.Player{})
	w.Spawn(game.Pos{}, game.Vel{}, game.Spr(game.SprSlime), game.Follow(target))

	assertPanicsWith(t, ecs.ErrMissingComponent, func() {
		w.Tick(&game.Context{})
	})
	assert.Equal(t, 0, w.CollectStats().LiveBorrows)

	w = newWorld(game.MoveFollowers)
	w.Spawn(game.Pos{}, game.Vel{}, game.Spr(game.SprSlime), game.Follow(42))
	assertPanicsWith(t, ecs.ErrMissingComponent, func() {
		w.Tick(&game.Context{})
	})
}

func TestPlayerInput(t *testing.T) {
	w := newWorld(game.PlayerInput)

	player := w.Spawn(game.Vel{}, game.Player{})
	npc := w.Spawn(game.Vel{})

	var keys game.Keys
	keys.Press(game.KeyLeft)
	keys.Press(game.KeyDown)
	w.Tick(&game.Context{Input: &keys})

	vel, _ := component[game.Vel](w, player)
	assert.Equal(t, game.Vel{X: -game.PlayerSpeed, Y: game.PlayerSpeed}, vel)

	vel, _ = component[game.Vel](w, npc)
	assert.Equal(t, game.Vel{}, vel)

	// No input source leaves velocities alone.
	w.Tick(&game.Context{})
	vel, _ = component[game.Vel](w, player)
	assert.Equal(t, game.Vel{X: -game.PlayerSpeed, Y: game.PlayerSpeed}, vel)
}

func TestMovePushables(t *testing.T) {
	t.Run("push", func(t *testing.T) {
		w := newWorld(game.ApplyVelocities, game.MovePushables)
		ctx := &game.Context{Map: openMap(t)}

		player := w.Spawn(game.Pos{X: 16, Y: 16}, game.Vel{X: 1}, game.Player{}, game.Collider{W: 16, H: 16})
		crate := w.Spawn(game.Pos{X: 32, Y: 16}, game.Collider{W: 16, H: 16}, game.Push{})

		w.Tick(ctx)

		assert.Equal(t, game.Pos{X: 17, Y: 16}, position(w, player))
		assert.Equal(t, game.Pos{X: 33, Y: 16}, position(w, crate))
	})

	t.Run("blocked", func(t *testing.T) {
		w := newWorld(game.ApplyVelocities, game.MovePushables)
		ctx := &game.Context{Map: openMap(t, [2]int{3, 1})}

		player := w.Spawn(game.Pos{X: 16, Y: 16}, game.Vel{X: 1}, game.Player{}, game.Collider{W: 16, H: 16})
		crate := w.Spawn(game.Pos{X: 32, Y: 16}, game.Collider{W: 16, H: 16}, game.Push{})

		w.Tick(ctx)

		assert.Equal(t, game.Pos{X: 16, Y: 16}, position(w, player))
		assert.Equal(t, game.Pos{X: 32, Y: 16}, position(w, crate))
	})

	t.Run("not touching", func(t *testing.T) {
		w := newWorld(game.ApplyVelocities, game.MovePushables)
		ctx := &game.Context{Map: openMap(t)}

		w.Spawn(game.Pos{X: 0, Y: 0}, game.Vel{X: 1}, game.Player{}, game.Collider{W: 16, H: 16})
		crate := w.Spawn(game.Pos{X: 64, Y: 0}, game.Collider{W: 16, H: 16}, game.Push{})

		w.Tick(ctx)

		assert.Equal(t, game.Pos{X: 64, Y: 0}, position(w, crate))
	})
}

func TestDecelerate(t *testing.T) {
	w := newWorld(game.Decelerate)

	e := w.Spawn(game.Vel{X: 3, Y: -2})
	w.Spawn(game.Pos{})

	w.Tick(&game.Context{})
	vel, _ := component[game.Vel](w, e)
	assert.Equal(t, game.Vel{X: 2, Y: -1}, vel)

	w.Tick(&game.Context{})
	w.Tick(&game.Context{})
	vel, _ = component[game.Vel](w, e)
	assert.Equal(t, game.Vel{}, vel)
}

func TestRemoveDead(t *testing.T) {
	w := newWorld(game.RemoveDead)

	dead := w.Spawn(game.Pos{X: 4}, game.Spr(game.SprSlime), game.Collider{W: 16, H: 16}, game.Health(0))
	alive := w.Spawn(game.Pos{}, game.Spr(game.SprPlayer), game.Collider{W: 16, H: 16}, game.Health(1))
	crate := w.Spawn(game.Pos{}, game.Spr(game.SprCrate), game.Collider{W: 16, H: 16})

	w.Tick(&game.Context{})

	assert.Equal(t, 3, w.Len(), "dead entities keep their row")
	assert.Equal(t, game.Pos{X: 4}, position(w, dead))

	_, hasSpr := component[game.Spr](w, dead)
	_, hasCol := component[game.Collider](w, dead)
	assert.False(t, hasSpr)
	assert.False(t, hasCol)

	for _, e := range []ecs.Entity{alive, crate} {
		_, hasSpr = component[game.Spr](w, e)
		assert.True(t, hasSpr, "entity %d", e)
	}
}
