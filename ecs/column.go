package ecs

import "reflect"

const (
	blockSize = 64
)

// column stores every value of one component kind, one slot per entity.
// Slots live in fixed-size blocks so growing the column never moves the
// values already stored, and pointers handed out by Write stay valid while
// the column grows.
type column[T any] struct {
	typ    reflect.Type
	blocks []*[blockSize]T
	filled []*[blockSize]bool
	length int
	count  int
	borrow borrowState
}

func newColumn[T any]() *column[T] {
	return &column[T]{typ: reflect.TypeFor[T]()}
}

// appendSlot adds a slot holding item, or an absent slot when item is nil.
func (c *column[T]) appendSlot(item any) {
	index := c.length
	c.length++

	blockIdx := index / blockSize
	slotIdx := index % blockSize

	if blockIdx >= len(c.blocks) {
		c.blocks = append(c.blocks, new([blockSize]T))
		c.filled = append(c.filled, new([blockSize]bool))
	}

	if item == nil {
		return
	}

	var concreteItem T
	if ptr, ok := item.(*T); ok {
		concreteItem = *ptr
	} else if val, ok := item.(T); ok {
		concreteItem = val
	} else {
		panic(wrapf(ErrInvalidComponent, "cannot store %T in %s column", item, c.typ))
	}

	c.blocks[blockIdx][slotIdx] = concreteItem
	c.filled[blockIdx][slotIdx] = true
	c.count++
}

func (c *column[T]) kind() reflect.Type {
	return c.typ
}

func (c *column[T]) len() int {
	return c.length
}

func (c *column[T]) present() int {
	return c.count
}

func (c *column[T]) state() *borrowState {
	return &c.borrow
}

func (c *column[T]) value(index int) (any, bool) {
	ptr := c.get(index)
	if ptr == nil {
		return nil, false
	}
	return *ptr, true
}

// has reports whether the slot at index holds a value.
func (c *column[T]) has(index int) bool {
	if index < 0 || index >= c.length {
		return false
	}
	return c.filled[index/blockSize][index%blockSize]
}

// get returns a pointer to the value at index, or nil if the slot is absent.
func (c *column[T]) get(index int) *T {
	if !c.has(index) {
		return nil
	}
	return &c.blocks[index/blockSize][index%blockSize]
}

// set stores v at index. Out of range indices are a programming error.
func (c *column[T]) set(index int, v T) {
	if index < 0 || index >= c.length {
		panic(wrapf(ErrMissingComponent, "entity %d out of range for %s column of length %d", index, c.typ, c.length))
	}
	blockIdx := index / blockSize
	slotIdx := index % blockSize
	if !c.filled[blockIdx][slotIdx] {
		c.filled[blockIdx][slotIdx] = true
		c.count++
	}
	c.blocks[blockIdx][slotIdx] = v
}

// clear marks a slot as absent. The slot itself stays in place.
func (c *column[T]) clear(index int) {
	if !c.has(index) {
		return
	}
	blockIdx := index / blockSize
	slotIdx := index % blockSize
	c.filled[blockIdx][slotIdx] = false
	var zero T
	c.blocks[blockIdx][slotIdx] = zero
	c.count--
}
