package ecs

import (
	"context"
	"path/filepath"
	"reflect"
	"runtime"
	"time"
)

// SchedulerStats provides statistics about system execution.
type SchedulerStats struct {
	SystemCount     int
	Ticks           int64
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// World owns the component storage and the ordered list of systems run on
// every tick. C is the type of the read-only context shared by all systems.
type World[C any] struct {
	*Storage
	systems     []System[C]
	systemStats []*systemStatsInternal
	commands    *Commands
	ticks       int64
}

// NewWorld creates an empty world.
func NewWorld[C any](opts ...Option) *World[C] {
	return &World[C]{
		Storage:  NewStorage(opts...),
		systems:  make([]System[C], 0),
		commands: newCommands(),
	}
}

// System appends a system to the run order. Systems run in the order they
// were added; adding the same function twice runs it twice.
func (w *World[C]) System(system System[C]) {
	w.systems = append(w.systems, system)

	name := systemName(system)
	w.systemStats = append(w.systemStats, &systemStatsInternal{
		name:        name,
		minDuration: time.Duration(1<<63 - 1),
	})

	w.logger.Debug().Str("system", name).Int("order", len(w.systems)-1).Msg("system registered")
}

func systemName(system any) string {
	fn := runtime.FuncForPC(reflect.ValueOf(system).Pointer())
	if fn == nil {
		return "unknown"
	}
	return filepath.Base(fn.Name())
}

// Commands returns the buffer flushed at the end of every tick.
func (w *World[C]) Commands() *Commands {
	return w.commands
}

// Tick runs every system once, in registration order, then flushes the
// command buffer. Each system runs in its own borrow scope. A panic inside a
// system aborts the tick.
func (w *World[C]) Tick(ctx *C) {
	for i, system := range w.systems {
		stats := w.systemStats[i]

		start := time.Now()
		w.scoped(func() {
			system(w, ctx)
		})
		duration := time.Since(start)

		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}

		w.logger.Trace().Str("system", stats.name).Dur("duration", duration).Msg("system executed")
	}

	w.ticks++
	w.scoped(func() {
		w.commands.Flush(w.Storage)
	})
}

// Execute runs fn once inside a borrow scope, like a system that is not part
// of the tick.
func (w *World[C]) Execute(fn func(w *World[C])) {
	w.scoped(func() {
		fn(w)
	})
}

// Run ticks the world at the given interval until ctx is cancelled.
func (w *World[C]) Run(ctx context.Context, interval time.Duration, app *C) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Tick(app)
		}
	}
}

// Ticks returns the number of completed ticks.
func (w *World[C]) Ticks() int64 {
	return w.ticks
}

// SystemNames returns the names of the registered systems in run order.
func (w *World[C]) SystemNames() []string {
	names := make([]string, len(w.systemStats))
	for i, stats := range w.systemStats {
		names[i] = stats.name
	}
	return names
}

// Stats returns statistics about system execution.
func (w *World[C]) Stats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(w.systems),
		Ticks:       w.ticks,
		Systems:     make([]SystemStats, len(w.systemStats)),
	}

	var totalExecs int64
	for i, internal := range w.systemStats {
		avgDuration := time.Duration(0)
		minDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
			minDuration = internal.minDuration
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
