// Package debugui provides a Dear ImGui inspector for ECS worlds.
// It shows storage and scheduler statistics, lists entities and prints the
// components of the selected one.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/oxide/ecs"
)

// Source is the part of a world the inspector reads. *ecs.World satisfies
// it for any context type.
type Source interface {
	Len() int
	CollectStats() ecs.StorageStats
	Stats() *ecs.SchedulerStats
	Inspect(e ecs.Entity) map[string]any
}

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard
// input this frame.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// CurrentInputState reads the capture state of the current ImGui context.
func CurrentInputState() ImguiInputState {
	io := imgui.CurrentIO()
	return ImguiInputState{
		WantCaptureMouse:    io.WantCaptureMouse(),
		WantCaptureKeyboard: io.WantCaptureKeyboard(),
	}
}

// Inspector groups the debug windows. Render must be called between the
// backend's BeginFrame and EndFrame, outside of any tick.
type Inspector struct {
	Visible     bool
	Performance *PerformanceStats
	Systems     *SystemTimings
	Entities    *EntityBrowser
	Components  *ComponentInspector
}

func NewInspector() *Inspector {
	return &Inspector{
		Performance: NewPerformanceStats(120),
		Systems:     NewSystemTimings(),
		Entities:    NewEntityBrowser(100),
		Components:  NewComponentInspector(),
	}
}

// Toggle shows or hides every window.
func (i *Inspector) Toggle() {
	i.Visible = !i.Visible
}

// Render draws the inspector windows for src. deltaTime is the time since
// the previous frame in seconds.
func (i *Inspector) Render(src Source, deltaTime float32) {
	if !i.Visible {
		return
	}

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 300), imgui.CondOnce)
	i.Performance.Render(src, deltaTime)

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 320), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 260), imgui.CondOnce)
	i.Systems.Render(src.Stats())

	imgui.SetNextWindowPosV(imgui.NewVec2(340, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 400), imgui.CondOnce)
	i.Entities.Render(src)

	imgui.SetNextWindowPosV(imgui.NewVec2(710, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 400), imgui.CondOnce)
	selected, ok := i.Entities.Selected()
	i.Components.Render(src, selected, ok)
}
