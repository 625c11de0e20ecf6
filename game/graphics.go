package game

import "github.com/plus3/oxide/ecs"

// AttackFlashTicks is how long a modifier shows its attack after hitting.
const AttackFlashTicks = 8

// DrawMap draws every tile of the current map.
func DrawMap(_ *World, ctx *Context) {
	if ctx.Map == nil {
		return
	}
	for ty := 0; ty < MapHeight; ty++ {
		for tx := 0; tx < MapWidth; tx++ {
			ctx.draw(ctx.Map.At(tx, ty), tx*TileSize, ty*TileSize)
		}
	}
}

// DrawSprites draws every entity that has both a position and a sprite.
func DrawSprites(w *World, ctx *Context) {
	pos := ecs.Get[Pos](w)
	spr := ecs.Get[Spr](w)

	for e, p := range pos.All() {
		if p == nil {
			continue
		}
		s, ok := spr.Get(e)
		if !ok {
			continue
		}
		ctx.draw(int(s), p.X, p.Y)
	}
}

// DrawAttack draws a slash over living modifiers that hit something in the
// last AttackFlashTicks ticks.
func DrawAttack(w *World, ctx *Context) {
	q := ecs.Fetch[struct {
		Pos ecs.Read[Pos]
		Mod ecs.Read[HealthMod]
		Spr ecs.Read[Spr]
	}](w)

	for e := range w.Entities() {
		mod, ok := q.Mod.Get(e)
		if !ok || mod.Cooldown <= HealthModCooldown-AttackFlashTicks {
			continue
		}
		p, ok := q.Pos.Get(e)
		if !ok || !q.Spr.Has(e) {
			continue
		}
		ctx.draw(SprSlash, p.X, p.Y)
	}
}

// DrawHealth draws one heart per hit point of the player along the top edge
// of the screen.
func DrawHealth(w *World, ctx *Context) {
	q := ecs.Fetch[struct {
		Health ecs.Read[Health]
		Player ecs.Read[Player]
	}](w)

	for e := range w.Entities() {
		health, ok := q.Health.Get(e)
		if !ok || !q.Player.Has(e) {
			continue
		}
		for i := 0; i < int(health) && i < MapWidth; i++ {
			ctx.draw(SprHeart, i*TileSize, 0)
		}
		return
	}
}

// RegisterSystems adds the game's systems in run order. Drawing happens
// first so the frame shows the state the player reacted to.
func RegisterSystems(w *World) {
	w.System(DrawMap)
	w.System(DrawSprites)
	w.System(DrawAttack)
	w.System(DrawHealth)
	w.System(PlayerInput)
	w.System(MoveFollowers)
	w.System(ApplyVelocities)
	w.System(MovePushables)
	w.System(UpdateHealth)
	w.System(Decelerate)
	w.System(RemoveDead)
}
