package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/snake/snake"
)

type StateInspector struct {
	showText bool
}

func NewStateInspector() *StateInspector {
	return &StateInspector{}
}

// Render lists every snapshot field and offers the game controls. Controls go
// through the command buffer so they are applied at the next tick boundary.
func (si *StateInspector) Render(snap snake.Snapshot, commands *snake.Commands) {
	if !imgui.BeginV("State Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	val := reflect.ValueOf(snap)
	for _, field := range globalReflectionCache.GetFields(val.Type()) {
		fieldVal := val.Field(field.Index)
		if !field.IsSlice {
			imgui.Text(fmt.Sprintf("%s: %s", field.Name, formatValue(fieldVal)))
			continue
		}
		if imgui.TreeNodeStr(fmt.Sprintf("%s: %s", field.Name, formatValue(fieldVal))) {
			for i := 0; i < fieldVal.Len(); i++ {
				imgui.BulletText(fmt.Sprintf("%d: %v", i, fieldVal.Index(i).Interface()))
			}
			imgui.TreePop()
		}
	}

	imgui.Separator()

	if imgui.Button("Pause/Start") {
		commands.Apply(snake.ActionPause)
	}
	imgui.SameLine()
	if imgui.Button("New Game") {
		commands.Apply(snake.ActionNewGame)
	}
	imgui.SameLine()
	if imgui.Button("Reset Score") {
		commands.Apply(snake.ActionResetScore)
	}

	for _, d := range []snake.Direction{snake.Up, snake.Down, snake.Left, snake.Right} {
		if imgui.Button(d.String()) {
			commands.QueueDirection(d)
		}
		if d != snake.Right {
			imgui.SameLine()
		}
	}

	imgui.Checkbox("Show board as text", &si.showText)
	if si.showText {
		imgui.Text(BoardText(snap))
	}

	imgui.End()
}
