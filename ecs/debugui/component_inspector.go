package debugui

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/oxide/ecs"
)

// ComponentInspector prints every component of the selected entity. Values
// are copies taken between ticks, so the inspector never edits the world.
type ComponentInspector struct{}

func NewComponentInspector() *ComponentInspector {
	return &ComponentInspector{}
}

func (ci *ComponentInspector) Render(src Source, selected ecs.Entity, ok bool) {
	if !imgui.BeginV("Component Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if !ok {
		imgui.Text("No entity selected")
		imgui.End()
		return
	}

	if int(selected) >= src.Len() {
		imgui.Text(fmt.Sprintf("Entity %d not found", selected))
		imgui.End()
		return
	}

	components := src.Inspect(selected)
	imgui.Text(fmt.Sprintf("Entity: %d", selected))
	imgui.Text(fmt.Sprintf("Components: %d", len(components)))
	imgui.Separator()

	if len(components) == 0 {
		imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.0, 1.0), "No components (despawned)")
	}

	names := make([]string, 0, len(components))
	for name := range components {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if imgui.TreeNodeStr(name) {
			for _, line := range DescribeValue(components[name]) {
				imgui.Text(line)
			}
			imgui.TreePop()
		}
	}

	imgui.End()
}

// DescribeValue formats a component as one "field: value" line per exported
// field. Nested structs are flattened with dotted names; non-struct values
// yield a single line.
func DescribeValue(v any) []string {
	val := reflect.ValueOf(v)
	if !val.IsValid() {
		return []string{"<invalid>"}
	}
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return []string{"nil"}
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return []string{fmt.Sprintf("%v", val.Interface())}
	}

	var lines []string
	describeFields(&lines, "", val)
	if len(lines) == 0 {
		lines = append(lines, "(marker)")
	}
	return lines
}

func describeFields(lines *[]string, prefix string, val reflect.Value) {
	for _, field := range globalReflectionCache.GetFields(val.Type()) {
		fieldVal := val.Field(field.Index)
		name := prefix + field.Name

		if field.IsPointer {
			if fieldVal.IsNil() {
				*lines = append(*lines, fmt.Sprintf("%s: nil", name))
				continue
			}
			fieldVal = fieldVal.Elem()
		}

		switch {
		case field.IsStruct:
			describeFields(lines, name+".", fieldVal)
		case field.IsSlice:
			*lines = append(*lines, fmt.Sprintf("%s: [%d items]", name, fieldVal.Len()))
		case field.IsMap:
			*lines = append(*lines, fmt.Sprintf("%s: map[%d items]", name, fieldVal.Len()))
		default:
			*lines = append(*lines, fmt.Sprintf("%s: %v", name, fieldVal.Interface()))
		}
	}
}
