// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/oxide/ecs/debugui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
// Use this to integrate Dear ImGui rendering into Ebiten game loops.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// Overlay draws an inspector on top of an Ebiten game.
type Overlay struct {
	Backend   ImguiBackend
	Inspector *debugui.Inspector
	timer     *debugui.FrameTimer
}

// NewOverlay creates the backend and its window. It replaces the window
// settings made through ebiten directly.
func NewOverlay(title string, width, height int) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return &Overlay{
		Backend:   ImguiBackend{EbitenBackend: backend},
		Inspector: debugui.NewInspector(),
		timer:     debugui.NewFrameTimer(),
	}
}

// Update builds one ImGui frame for src. Call it from the game's Update,
// after the world has ticked.
func (o *Overlay) Update(src debugui.Source) {
	o.Backend.BeginFrame()
	o.Inspector.Render(src, o.timer.GetDeltaTime())
	o.Backend.EndFrame()
}

// WantsKeyboard reports whether ImGui consumed the keyboard last frame.
func (o *Overlay) WantsKeyboard() bool {
	return o.Inspector.Visible && debugui.CurrentInputState().WantCaptureKeyboard
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	o.Backend.Draw(screen)
}

func (o *Overlay) Layout(outsideWidth, outsideHeight int) {
	o.Backend.Layout(outsideWidth, outsideHeight)
}
