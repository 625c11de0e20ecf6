package ecs

import "reflect"

// Entity is the permanent row index of an entity in every column. Indices
// are assigned sequentially and never reused.
type Entity int

type pendingComponent struct {
	kind  reflect.Type
	value any
}

// EntityBuilder collects the components of an entity before the storage
// inserts it. Builders are only handed out by Storage.Entity and
// Commands.Entity.
type EntityBuilder struct {
	components map[typeKey]pendingComponent
}

func newEntityBuilder() *EntityBuilder {
	return &EntityBuilder{components: make(map[typeKey]pendingComponent)}
}

// With adds component to the entity. Passing a pointer stores the value it
// points to. A second component of the same kind replaces the first.
func (b *EntityBuilder) With(component any) *EntityBuilder {
	kind := kindOf(component)
	b.components[keyOf(kind)] = pendingComponent{kind: kind, value: component}
	return b
}

// Len returns the number of distinct component kinds added so far.
func (b *EntityBuilder) Len() int {
	return len(b.components)
}
