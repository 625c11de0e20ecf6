package ecs

import (
	"reflect"
	"unsafe"
)

// iface represents the internal memory layout of an interface{}.
type iface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

// typeKey identifies a component kind. It is the address of the runtime type
// descriptor behind a reflect.Type, which is unique and stable per type for
// the lifetime of the process.
type typeKey uint64

func keyOf(t reflect.Type) typeKey {
	ptr := (*iface)(unsafe.Pointer(&t)).data
	return typeKey(uintptr(ptr))
}

// kindOf resolves the component kind of a value. Pointers are stored by their
// element type, so Pos{} and &Pos{} name the same kind.
func kindOf(component any) reflect.Type {
	t := reflect.TypeOf(component)
	if t == nil {
		panic(wrapf(ErrInvalidComponent, "nil component"))
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	checkKind(t)
	return t
}

// checkKind rejects kinds that are not value types.
func checkKind(t reflect.Type) {
	switch t.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		panic(wrapf(ErrInvalidComponent, "%s: components cannot be pointers, maps, channels, functions or interfaces", t))
	}
}
