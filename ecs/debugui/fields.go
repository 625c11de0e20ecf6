package debugui

import (
	"reflect"
	"sync"
)

// FieldInfo describes one exported field of a component struct.
type FieldInfo struct {
	Name      string
	Index     int
	IsPointer bool
	IsStruct  bool
	IsSlice   bool
	IsMap     bool
}

// ReflectionCache remembers the exported fields of struct types so the
// inspector does not walk the same type every frame.
type ReflectionCache struct {
	fields sync.Map
}

func (rc *ReflectionCache) GetFields(t reflect.Type) []FieldInfo {
	if cached, ok := rc.fields.Load(t); ok {
		return cached.([]FieldInfo)
	}

	var fields []FieldInfo
	if t.Kind() == reflect.Struct {
		for field := range fieldsOf(t) {
			fieldType := field.Type
			isPointer := fieldType.Kind() == reflect.Ptr
			if isPointer {
				fieldType = fieldType.Elem()
			}

			fields = append(fields, FieldInfo{
				Name:      field.Name,
				Index:     field.Index[0],
				IsPointer: isPointer,
				IsStruct:  fieldType.Kind() == reflect.Struct,
				IsSlice:   fieldType.Kind() == reflect.Slice,
				IsMap:     fieldType.Kind() == reflect.Map,
			})
		}
	}

	actual, _ := rc.fields.LoadOrStore(t, fields)
	return actual.([]FieldInfo)
}

func fieldsOf(t reflect.Type) func(yield func(reflect.StructField) bool) {
	return func(yield func(reflect.StructField) bool) {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			if !yield(field) {
				return
			}
		}
	}
}

var globalReflectionCache = &ReflectionCache{}
