package game

import "github.com/plus3/oxide/ecs"

// Pos is a pixel position.
type Pos struct {
	X, Y int
}

// Vel is a per-tick pixel velocity.
type Vel struct {
	X, Y int
}

// Spr is the tile drawn at an entity's position. Entities without a sprite
// are treated as dead.
type Spr int

// Player marks the entity controlled by keyboard input.
type Player struct{}

// Collider is the size of an entity's bounding box, anchored at its Pos.
type Collider struct {
	W, H int
}

// Health is an entity's remaining hit points.
type Health int

// HealthMod is applied to the Health of every entity overlapping the
// modifier, at most once per cooldown window.
type HealthMod struct {
	Health   int
	Cooldown int
}

// Follow steers an entity toward the position of the target entity.
type Follow ecs.Entity

// Push marks an entity that players can push around.
type Push struct{}

// RegisterComponents registers every component kind used by the game.
func RegisterComponents(p ecs.Provider) {
	ecs.Register[Pos](p)
	ecs.Register[Vel](p)
	ecs.Register[Spr](p)
	ecs.Register[Player](p)
	ecs.Register[Collider](p)
	ecs.Register[Health](p)
	ecs.Register[HealthMod](p)
	ecs.Register[Follow](p)
	ecs.Register[Push](p)
}
