package ecs

import "github.com/rs/zerolog"

// LogComponents emits one event listing the registered component kinds.
func (s *Storage) LogComponents(level zerolog.Level) {
	arrayLogger := zerolog.Arr()
	for i, col := range s.ordered {
		dictLogger := zerolog.Dict()
		dictLogger = dictLogger.Int("component_id", i)
		dictLogger = dictLogger.Str("component_name", col.kind().String())
		dictLogger = dictLogger.Int("present", col.present())
		arrayLogger = arrayLogger.Dict(dictLogger)
	}
	s.logger.WithLevel(level).
		Int("total_components", len(s.ordered)).
		Int("total_entities", s.entities).
		Array("components", arrayLogger).
		Send()
}

// LogSystems emits one event listing the registered systems in run order.
func (w *World[C]) LogSystems(level zerolog.Level) {
	arrayLogger := zerolog.Arr()
	for _, name := range w.SystemNames() {
		arrayLogger = arrayLogger.Str(name)
	}
	w.logger.WithLevel(level).
		Int("total_systems", len(w.systems)).
		Array("systems", arrayLogger).
		Send()
}

// LogEntity emits the components of one entity.
func (s *Storage) LogEntity(level zerolog.Level, e Entity) {
	s.logger.WithLevel(level).
		Int("entity_id", int(e)).
		Interface("components", s.Inspect(e)).
		Send()
}
