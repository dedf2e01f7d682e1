// Package debugui provides Dear ImGui debug panels for a running snake game:
// scheduler performance, a live state inspector with game controls, and a
// board view drawn straight from the engine snapshot.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/snake/snake"
)

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
// Frontends should not forward input to the game while it is.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay renders every debug window for one scheduler. Call Render once per
// frame between the ImGui backend's BeginFrame and EndFrame.
type Overlay struct {
	scheduler *snake.Scheduler
	timer     *FrameTimer
	input     InputState

	stats     *PerformanceStats
	inspector *StateInspector
	board     *BoardViewer
}

func NewOverlay(scheduler *snake.Scheduler) *Overlay {
	return &Overlay{
		scheduler: scheduler,
		timer:     NewFrameTimer(),
		stats:     NewPerformanceStats(120),
		inspector: NewStateInspector(),
		board:     NewBoardViewer(),
	}
}

func (o *Overlay) Render() {
	io := imgui.CurrentIO()
	o.input.WantCaptureMouse = io.WantCaptureMouse()
	o.input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	snap := o.scheduler.Engine().Snapshot()
	o.stats.Render(o.scheduler.GetStats(), snap, o.timer.GetDeltaTime())
	o.inspector.Render(snap, o.scheduler.Commands())
	o.board.Render(snap)
}

// InputState returns the capture state observed during the last Render.
func (o *Overlay) InputState() InputState {
	return o.input
}
