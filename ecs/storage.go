package ecs

import (
	"iter"
	"reflect"

	"github.com/kamstrup/intmap"
	"github.com/rs/zerolog"
)

// Provider gives access to a Storage. It is implemented by *Storage and by
// *World, so the generic accessors accept either.
type Provider interface {
	storage() *Storage
}

// Storage maps every registered component kind to its column and keeps all
// columns the same length as the number of entities.
type Storage struct {
	columns  *intmap.Map[typeKey, iColumn]
	ordered  []iColumn
	entities int
	live     int
	scopes   []*borrowScope
	logger   zerolog.Logger
}

// Option configures a Storage or a World.
type Option func(s *Storage)

// WithLogger sets the logger used for registration, construction and system
// diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Storage) {
		s.logger = logger
	}
}

// NewStorage creates an empty storage with no registered components.
func NewStorage(opts ...Option) *Storage {
	s := &Storage{
		columns: intmap.New[typeKey, iColumn](32),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Storage) storage() *Storage {
	return s
}

// Logger returns the storage logger.
func (s *Storage) Logger() *zerolog.Logger {
	return &s.logger
}

// Register creates the column for component kind T. Registration is only
// legal before the first entity exists and each kind may be registered once.
func Register[T any](p Provider) {
	s := p.storage()
	t := reflect.TypeFor[T]()
	checkKind(t)

	if s.entities > 0 {
		panic(wrapf(ErrRegistryLocked, "register %s with %d entities", t, s.entities))
	}
	key := keyOf(t)
	if _, ok := s.columns.Get(key); ok {
		panic(wrapf(ErrDuplicateComponent, "%s", t))
	}

	col := newColumn[T]()
	s.columns.Put(key, col)
	s.ordered = append(s.ordered, col)

	s.logger.Debug().Str("component", t.String()).Int("component_id", len(s.ordered)-1).Msg("component registered")
}

// IsRegistered reports whether T has a column.
func IsRegistered[T any](p Provider) bool {
	_, ok := p.storage().columns.Get(keyOf(reflect.TypeFor[T]()))
	return ok
}

// Kinds returns the registered component kinds in registration order.
func (s *Storage) Kinds() []reflect.Type {
	kinds := make([]reflect.Type, len(s.ordered))
	for i, col := range s.ordered {
		kinds[i] = col.kind()
	}
	return kinds
}

// Entity creates a new entity from the components added by build and returns
// its index.
func (s *Storage) Entity(build func(b *EntityBuilder)) Entity {
	b := newEntityBuilder()
	if build != nil {
		build(b)
	}
	return s.insert(b)
}

// Spawn creates a new entity with the given components.
func (s *Storage) Spawn(components ...any) Entity {
	return s.Entity(func(b *EntityBuilder) {
		for _, component := range components {
			b.With(component)
		}
	})
}

// insert appends one slot to every column. The row is validated before any
// column is touched, so a failed insert leaves the storage unchanged.
func (s *Storage) insert(b *EntityBuilder) Entity {
	if s.live > 0 {
		panic(wrapf(ErrBorrowConflict, "entity construction while %d column handles are live", s.live))
	}
	for key, pending := range b.components {
		if _, ok := s.columns.Get(key); !ok {
			panic(wrapf(ErrUnknownComponent, "%s", pending.kind))
		}
	}

	for _, col := range s.ordered {
		pending, ok := b.components[keyOf(col.kind())]
		if ok {
			col.appendSlot(pending.value)
		} else {
			col.appendSlot(nil)
		}
	}

	entity := Entity(s.entities)
	s.entities++

	s.logger.Trace().Int("entity_id", int(entity)).Int("components", len(b.components)).Msg("entity created")
	return entity
}

// Len returns the number of entities created so far.
func (s *Storage) Len() int {
	return s.entities
}

// Entities yields every entity index in ascending order. The range is fixed
// when iteration starts.
func (s *Storage) Entities() iter.Seq[Entity] {
	n := s.entities
	return func(yield func(Entity) bool) {
		for i := 0; i < n; i++ {
			if !yield(Entity(i)) {
				return
			}
		}
	}
}
