package ecs

import "reflect"

// iColumn is the type-erased view of a column used by the storage map.
type iColumn interface {
	// appendSlot adds one slot at the end of the column. A nil item leaves
	// the slot absent.
	appendSlot(item any)
	kind() reflect.Type
	len() int
	present() int
	value(index int) (any, bool)
	state() *borrowState
}
