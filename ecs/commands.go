package ecs

// Commands buffers work that cannot happen while systems hold column
// handles. The world flushes it after the last system of a tick.
type Commands struct {
	spawns []*EntityBuilder
	defers []deferCommand
}

func newCommands() *Commands {
	return &Commands{}
}

type deferCommand struct {
	fn func()
}

// Defer queues a function to run after the tick.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, deferCommand{fn: fn})
}

// Entity queues the construction of an entity. The builder runs immediately;
// the entity is inserted when the buffer is flushed.
func (c *Commands) Entity(build func(b *EntityBuilder)) {
	b := newEntityBuilder()
	if build != nil {
		build(b)
	}
	c.spawns = append(c.spawns, b)
}

// Spawn queues an entity with the given components.
func (c *Commands) Spawn(components ...any) {
	c.Entity(func(b *EntityBuilder) {
		for _, component := range components {
			b.With(component)
		}
	})
}

// Pending returns the number of queued operations.
func (c *Commands) Pending() int {
	return len(c.spawns) + len(c.defers)
}

// Flush resets the buffer and applies the queued operations to storage: all
// spawns in queue order, then all deferred funcs in queue order. A fatal
// spawn or deferred func panics out of Flush and the operations queued after
// it are discarded.
func (c *Commands) Flush(storage *Storage) {
	spawns := c.spawns
	defers := c.defers
	c.spawns = nil
	c.defers = nil

	for _, b := range spawns {
		storage.insert(b)
	}

	for _, df := range defers {
		df.fn()
	}
}
