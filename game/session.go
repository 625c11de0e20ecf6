package game

import (
	"github.com/plus3/oxide/ecs"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// Catalog holds the raw level files and maps a session can load. Level files
// refer to maps by their index in Maps.
type Catalog struct {
	Levels [][]byte
	Maps   [][]byte
}

// Session runs one level at a time and switches levels on request.
type Session struct {
	catalog Catalog
	logger  zerolog.Logger
	level   int
	world   *World
	ctx     Context
	canvas  Canvas
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithSessionLogger sets the logger used by the session and its worlds.
func WithSessionLogger(logger zerolog.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// NewSession creates a session and loads the first level.
func NewSession(catalog Catalog, opts ...SessionOption) (*Session, error) {
	if len(catalog.Levels) == 0 {
		return nil, eris.New("catalog has no levels")
	}
	s := &Session{
		catalog: catalog,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.Load(0); err != nil {
		return nil, err
	}
	return s, nil
}

// Load replaces the world with a fresh copy of level. The index wraps around
// the catalog in both directions.
func (s *Session) Load(level int) error {
	n := len(s.catalog.Levels)
	level = ((level % n) + n) % n

	world := ecs.NewWorld[Context](ecs.WithLogger(s.logger))
	RegisterComponents(world)
	RegisterSystems(world)

	mapID, err := LoadLevel(world, s.catalog.Levels[level])
	if err != nil {
		return eris.Wrapf(err, "failed to load level %d", level)
	}
	if mapID < 0 || mapID >= len(s.catalog.Maps) {
		return eris.Errorf("level %d uses map %d, catalog has %d maps", level, mapID, len(s.catalog.Maps))
	}
	tiles, err := ParseTileMap(s.catalog.Maps[mapID])
	if err != nil {
		return eris.Wrapf(err, "failed to load map %d", mapID)
	}

	s.level = level
	s.world = world
	s.ctx = Context{Map: tiles, Canvas: &s.canvas}
	s.canvas.Reset()

	s.logger.Info().
		Int("level", level).
		Int("map", mapID).
		Int("entities", world.Len()).
		Msg("level loaded")
	return nil
}

// Update runs one tick with the given input, then handles level switching.
// A level is restarted once its player has died.
func (s *Session) Update(input Input) error {
	s.canvas.Reset()
	s.ctx.Input = input
	s.world.Tick(&s.ctx)

	switch {
	case s.ctx.pressed(KeyPrevLevel):
		return s.Load(s.level - 1)
	case s.ctx.pressed(KeyNextLevel):
		return s.Load(s.level + 1)
	}

	if _, ok := s.Player(); ok && !s.PlayerAlive() {
		s.logger.Info().Int("level", s.level).Msg("player died, restarting level")
		return s.Load(s.level)
	}
	return nil
}

// Player returns the first entity with a Player component.
func (s *Session) Player() (ecs.Entity, bool) {
	var (
		player ecs.Entity
		found  bool
	)
	s.world.Execute(func(w *World) {
		players := ecs.Get[Player](w)
		for e := range w.Entities() {
			if players.Has(e) {
				player, found = e, true
				return
			}
		}
	})
	return player, found
}

// PlayerAlive reports whether the player still has a sprite.
func (s *Session) PlayerAlive() bool {
	player, ok := s.Player()
	if !ok {
		return false
	}
	alive := false
	s.world.Execute(func(w *World) {
		alive = ecs.Get[Spr](w).Has(player)
	})
	return alive
}

// Level returns the index of the current level.
func (s *Session) Level() int {
	return s.level
}

// World returns the world of the current level.
func (s *Session) World() *World {
	return s.world
}

// Context returns the context passed to systems.
func (s *Session) Context() *Context {
	return &s.ctx
}

// Canvas returns the draw operations of the last update.
func (s *Session) Canvas() *Canvas {
	return &s.canvas
}
