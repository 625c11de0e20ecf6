package game

import "github.com/plus3/oxide/ecs"

const (
	PlayerSpeed = 1
	// HealthModCooldown is the number of ticks a modifier waits after
	// applying before it can apply again.
	HealthModCooldown = 30
)

// World is the ECS world the game runs on.
type World = ecs.World[Context]

// PlayerInput sets the velocity of every player from the arrow keys.
func PlayerInput(w *World, ctx *Context) {
	q := ecs.Fetch[struct {
		Vel    ecs.Write[Vel]
		Player ecs.Read[Player]
	}](w)

	for e := range w.Entities() {
		vel := q.Vel.At(e)
		if vel == nil || !q.Player.Has(e) {
			continue
		}
		if ctx.down(KeyUp) {
			vel.Y = -PlayerSpeed
		}
		if ctx.down(KeyDown) {
			vel.Y = PlayerSpeed
		}
		if ctx.down(KeyLeft) {
			vel.X = -PlayerSpeed
		}
		if ctx.down(KeyRight) {
			vel.X = PlayerSpeed
		}
	}
}

// MoveFollowers steers every living follower one unit per axis toward its
// target. A target without a position is a broken level and aborts the tick.
func MoveFollowers(w *World, _ *Context) {
	q := ecs.Fetch[struct {
		Vel    ecs.Write[Vel]
		Pos    ecs.Read[Pos]
		Follow ecs.Read[Follow]
		Spr    ecs.Read[Spr]
	}](w)

	for e := range w.Entities() {
		vel := q.Vel.At(e)
		follow, ok := q.Follow.Get(e)
		if vel == nil || !ok || !q.Spr.Has(e) {
			continue
		}
		pos, ok := q.Pos.Get(e)
		if !ok {
			continue
		}

		target := q.Pos.Must(ecs.Entity(follow))
		vel.X = sign(target.X - pos.X)
		vel.Y = sign(target.Y - pos.Y)
	}
}

// ApplyVelocities moves entities by their velocity, one axis at a time.
// Entities with a collider do not move along an axis if the new position
// would overlap a solid tile.
func ApplyVelocities(w *World, ctx *Context) {
	q := ecs.Fetch[struct {
		Pos      ecs.Write[Pos]
		Vel      ecs.Read[Vel]
		Collider ecs.Read[Collider]
	}](w)

	for e := range w.Entities() {
		pos := q.Pos.At(e)
		vel, ok := q.Vel.Get(e)
		if pos == nil || !ok {
			continue
		}
		collider, solid := q.Collider.Get(e)
		blocked := func(x, y int) bool {
			return solid && ctx.Map != nil && ctx.Map.Blocked(x, y, collider.W, collider.H)
		}

		if vel.X != 0 && !blocked(pos.X+vel.X, pos.Y) {
			pos.X += vel.X
		}
		if vel.Y != 0 && !blocked(pos.X, pos.Y+vel.Y) {
			pos.Y += vel.Y
		}
	}
}

// MovePushables pushes every pushable overlapping a player by the player's
// velocity. When the pushable cannot move the player is moved back instead.
func MovePushables(w *World, ctx *Context) {
	q := ecs.Fetch[struct {
		Pos      ecs.Write[Pos]
		Vel      ecs.Read[Vel]
		Collider ecs.Read[Collider]
		Push     ecs.Read[Push]
		Player   ecs.Read[Player]
	}](w)

	blocked := func(p Pos, c Collider) bool {
		return ctx.Map != nil && ctx.Map.Blocked(p.X, p.Y, c.W, c.H)
	}

	for player := range w.Entities() {
		playerPos := q.Pos.At(player)
		playerVel, hasVel := q.Vel.Get(player)
		playerCol, alive := q.Collider.Get(player)
		if playerPos == nil || !hasVel || !alive || !q.Player.Has(player) {
			continue
		}

		for crate := range w.Entities() {
			cratePos := q.Pos.At(crate)
			crateCol, ok := q.Collider.Get(crate)
			if crate == player || cratePos == nil || !ok || !q.Push.Has(crate) {
				continue
			}
			if !bounds(*playerPos, playerCol).Overlaps(bounds(*cratePos, crateCol)) {
				continue
			}

			if playerVel.X != 0 {
				next := Pos{X: cratePos.X + playerVel.X, Y: cratePos.Y}
				if blocked(next, crateCol) {
					playerPos.X -= playerVel.X
				} else {
					cratePos.X = next.X
				}
			}
			if playerVel.Y != 0 {
				next := Pos{X: cratePos.X, Y: cratePos.Y + playerVel.Y}
				if blocked(next, crateCol) {
					playerPos.Y -= playerVel.Y
				} else {
					cratePos.Y = next.Y
				}
			}
		}
	}
}

// UpdateHealth applies every ready modifier to the living entities it
// overlaps and counts down the cooldown of the others. A modifier that hit
// something waits HealthModCooldown ticks before it can apply again.
func UpdateHealth(w *World, _ *Context) {
	q := ecs.Fetch[struct {
		Health   ecs.Write[Health]
		Mod      ecs.Write[HealthMod]
		Pos      ecs.Read[Pos]
		Collider ecs.Read[Collider]
	}](w)

	for source := range w.Entities() {
		mod := q.Mod.At(source)
		if mod == nil {
			continue
		}
		if mod.Cooldown > 0 {
			mod.Cooldown--
			continue
		}

		sourcePos, ok := q.Pos.Get(source)
		sourceCol, alive := q.Collider.Get(source)
		if !ok || !alive {
			continue
		}
		area := bounds(sourcePos, sourceCol)

		hit := false
		for target := range w.Entities() {
			health := q.Health.At(target)
			if target == source || health == nil {
				continue
			}
			pos, ok := q.Pos.Get(target)
			col, alive := q.Collider.Get(target)
			if !ok || !alive || !area.Overlaps(bounds(pos, col)) {
				continue
			}
			*health += Health(mod.Health)
			hit = true
		}
		if hit {
			mod.Cooldown = HealthModCooldown
		}
	}
}

// Decelerate moves every velocity one unit toward zero on each axis.
func Decelerate(w *World, _ *Context) {
	vel := ecs.GetMut[Vel](w)
	for _, v := range vel.All() {
		if v == nil {
			continue
		}
		v.X -= sign(v.X)
		v.Y -= sign(v.Y)
	}
}

// RemoveDead takes the sprite and collider away from every entity whose
// health ran out. The entity itself stays in storage.
func RemoveDead(w *World, _ *Context) {
	q := ecs.Fetch[struct {
		Health   ecs.Read[Health]
		Spr      ecs.Write[Spr]
		Collider ecs.Write[Collider]
	}](w)

	for e := range w.Entities() {
		health, ok := q.Health.Get(e)
		if !ok || health > 0 {
			continue
		}
		q.Spr.Clear(e)
		q.Collider.Clear(e)
	}
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
