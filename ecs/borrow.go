package ecs

import (
	"fmt"
	"iter"
	"reflect"
)

// borrowState tracks the live handles of one column: either any number of
// readers or a single writer.
type borrowState struct {
	readers int
	writer  bool
}

func (b borrowState) String() string {
	switch {
	case b.writer:
		return "exclusive"
	case b.readers > 0:
		return fmt.Sprintf("shared(%d)", b.readers)
	default:
		return "free"
	}
}

// lease is one acquired borrow. Releasing it twice is a no-op.
type lease struct {
	storage  *Storage
	col      iColumn
	write    bool
	released bool
}

func (l *lease) release() {
	if l == nil || l.released {
		return
	}
	l.released = true
	st := l.col.state()
	if l.write {
		st.writer = false
	} else {
		st.readers--
	}
	l.storage.live--
}

func (l *lease) check(kind reflect.Type) {
	if l == nil {
		panic(wrapf(ErrInvalidFetch, "%s handle was never acquired", kind))
	}
	if l.released {
		panic(wrapf(ErrBorrowConflict, "%s handle used after release", kind))
	}
}

// borrowScope collects the leases acquired while it is the innermost scope.
type borrowScope struct {
	leases []*lease
}

func (s *Storage) acquire(col iColumn, write bool) *lease {
	st := col.state()
	if write {
		if st.writer || st.readers > 0 {
			panic(wrapf(ErrBorrowConflict, "cannot borrow %s mutably, it is already borrowed %s", col.kind(), st))
		}
		st.writer = true
	} else {
		if st.writer {
			panic(wrapf(ErrBorrowConflict, "cannot borrow %s, it is already borrowed %s", col.kind(), st))
		}
		st.readers++
	}
	s.live++

	l := &lease{storage: s, col: col, write: write}
	if n := len(s.scopes); n > 0 {
		s.scopes[n-1].leases = append(s.scopes[n-1].leases, l)
	}
	return l
}

// scoped runs fn inside a new borrow scope. Every handle acquired while the
// scope is innermost is released when fn returns or panics.
func (s *Storage) scoped(fn func()) {
	s.scopes = append(s.scopes, &borrowScope{})
	defer s.closeScope()
	fn()
}

func (s *Storage) closeScope() {
	n := len(s.scopes)
	scope := s.scopes[n-1]
	s.scopes = s.scopes[:n-1]
	for _, l := range scope.leases {
		l.release()
	}
}

// Read is a shared handle over the column of kind T.
type Read[T any] struct {
	col   *column[T]
	lease *lease
}

// Get acquires a shared handle over the column of T. It panics if T is not
// registered or if the column is currently borrowed mutably.
func Get[T any](p Provider) Read[T] {
	s := p.storage()
	col := lookup[T](s)
	return Read[T]{col: col, lease: s.acquire(col, false)}
}

func (r Read[T]) column() *column[T] {
	r.lease.check(reflect.TypeFor[T]())
	return r.col
}

// Len returns the number of slots in the column, which is the entity count.
func (r Read[T]) Len() int {
	return r.column().len()
}

// Has reports whether entity e carries a T.
func (r Read[T]) Has(e Entity) bool {
	return r.column().has(int(e))
}

// Get returns a copy of the T of entity e and whether it is present.
func (r Read[T]) Get(e Entity) (T, bool) {
	ptr := r.column().get(int(e))
	if ptr == nil {
		var zero T
		return zero, false
	}
	return *ptr, true
}

// Must returns the T of entity e and panics if the entity has none.
func (r Read[T]) Must(e Entity) T {
	v, ok := r.Get(e)
	if !ok {
		panic(wrapf(ErrMissingComponent, "entity %d has no %s", e, reflect.TypeFor[T]()))
	}
	return v
}

// All yields every entity in index order with a pointer to a copy of its T,
// or nil when the entity has none. The copy is only valid until the next
// step. Each step checks the handle, like Write.All.
func (r Read[T]) All() iter.Seq2[Entity, *T] {
	r.column()
	return func(yield func(Entity, *T) bool) {
		var v T
		for i := 0; i < r.col.len(); i++ {
			ptr := r.column().get(i)
			if ptr == nil {
				if !yield(Entity(i), nil) {
					return
				}
				continue
			}
			v = *ptr
			if !yield(Entity(i), &v) {
				return
			}
		}
	}
}

// Release gives the borrow back before the end of its scope.
func (r Read[T]) Release() {
	r.lease.release()
}

func (r *Read[T]) fetch(s *Storage) {
	*r = Get[T](s)
}

func (r *Read[T]) release() {
	r.lease.release()
}

// Write is an exclusive handle over the column of kind T.
type Write[T any] struct {
	col   *column[T]
	lease *lease
}

// GetMut acquires an exclusive handle over the column of T. It panics if T is
// not registered or if any other handle to the column is live.
func GetMut[T any](p Provider) Write[T] {
	s := p.storage()
	col := lookup[T](s)
	return Write[T]{col: col, lease: s.acquire(col, true)}
}

func (w Write[T]) column() *column[T] {
	w.lease.check(reflect.TypeFor[T]())
	return w.col
}

// Len returns the number of slots in the column.
func (w Write[T]) Len() int {
	return w.column().len()
}

// Has reports whether entity e carries a T.
func (w Write[T]) Has(e Entity) bool {
	return w.column().has(int(e))
}

// Get returns a copy of the T of entity e and whether it is present.
func (w Write[T]) Get(e Entity) (T, bool) {
	ptr := w.column().get(int(e))
	if ptr == nil {
		var zero T
		return zero, false
	}
	return *ptr, true
}

// At returns a pointer to the T of entity e, or nil if it has none. The
// pointer must not be kept past the handle's release.
func (w Write[T]) At(e Entity) *T {
	return w.column().get(int(e))
}

// Must is At for entities that are required to carry a T.
func (w Write[T]) Must(e Entity) *T {
	ptr := w.At(e)
	if ptr == nil {
		panic(wrapf(ErrMissingComponent, "entity %d has no %s", e, reflect.TypeFor[T]()))
	}
	return ptr
}

// Set stores v as the T of entity e.
func (w Write[T]) Set(e Entity, v T) {
	w.column().set(int(e), v)
}

// Clear removes the T of entity e. The entity keeps its index.
func (w Write[T]) Clear(e Entity) {
	w.column().clear(int(e))
}

// All yields every entity in index order with a pointer to its T, or nil
// when the entity has none. Each step checks the handle, so releasing it
// inside the loop panics on the next step.
func (w Write[T]) All() iter.Seq2[Entity, *T] {
	w.column()
	return func(yield func(Entity, *T) bool) {
		for i := 0; i < w.col.len(); i++ {
			if !yield(Entity(i), w.column().get(i)) {
				return
			}
		}
	}
}

// Release gives the borrow back before the end of its scope.
func (w Write[T]) Release() {
	w.lease.release()
}

func (w *Write[T]) fetch(s *Storage) {
	*w = GetMut[T](s)
}

func (w *Write[T]) release() {
	w.lease.release()
}

func lookup[T any](s *Storage) *column[T] {
	t := reflect.TypeFor[T]()
	col, ok := s.columns.Get(keyOf(t))
	if !ok {
		panic(wrapf(ErrUnknownComponent, "%s", t))
	}
	return col.(*column[T])
}
