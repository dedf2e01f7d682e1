package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/snake/snake"
	"github.com/plus3/snake/snake/debugui"
	debugui_ebiten "github.com/plus3/snake/snake/debugui/ebiten"
	"github.com/plus3/snake/snake/input"
)

const (
	cellSize        = 32
	hudHeight       = 48
	debugPanelWidth = 640

	// mouseTouchID tracks left-button drags alongside real touches.
	mouseTouchID = -1
)

// Game implements ebiten.Game. It forwards input to the scheduler's command
// buffer and draws the latest snapshot; the scheduler owns the tick timer.
type Game struct {
	scheduler *snake.Scheduler
	gridSize  int
	touches   *input.TouchTracker
	quit      <-chan struct{}

	imguiBackend *debugui_ebiten.ImguiBackend
	overlay      *debugui.Overlay
}

func NewGame(scheduler *snake.Scheduler, gridSize int) *Game {
	return &Game{
		scheduler: scheduler,
		gridSize:  gridSize,
		touches:   input.NewTouchTracker(),
	}
}

// EnableDebug draws the ImGui overlay next to the board.
func (g *Game) EnableDebug(backend *debugui_ebiten.ImguiBackend, overlay *debugui.Overlay) {
	g.imguiBackend = backend
	g.overlay = overlay
}

func (g *Game) Width() int {
	return g.gridSize * cellSize
}

func (g *Game) Height() int {
	return g.gridSize*cellSize + hudHeight
}

func (g *Game) Update() error {
	select {
	case <-g.quit:
		return ebiten.Termination
	default:
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	captured := debugui.InputState{}
	if g.overlay != nil {
		g.imguiBackend.BeginFrame()
		g.overlay.Render()
		g.imguiBackend.EndFrame()
		captured = g.overlay.InputState()
	}

	commands := g.scheduler.Commands()
	if !captured.WantCaptureKeyboard {
		for _, action := range pressedActions() {
			commands.Apply(action)
		}
	}
	if !captured.WantCaptureMouse {
		state := g.scheduler.Engine().State()
		for _, action := range g.pointerActions(state) {
			commands.Apply(action)
		}
	}
	return nil
}

// pointerActions turns touches, left-button drags and the wheel into steering.
func (g *Game) pointerActions(state snake.State) []snake.Action {
	var actions []snake.Action
	add := func(a snake.Action, ok bool) {
		if ok {
			actions = append(actions, a)
		}
	}

	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		g.touches.Press(int(id), float64(x), float64(y))
	}
	for _, id := range ebiten.AppendTouchIDs(nil) {
		if inpututil.IsTouchJustReleased(id) || inpututil.TouchPressDuration(id) <= 1 {
			continue
		}
		x, y := ebiten.TouchPosition(id)
		add(g.touches.Move(int(id), float64(x), float64(y), state))
	}
	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		add(g.touches.End(int(id), state))
	}

	cx, cy := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.touches.Press(mouseTouchID, float64(cx), float64(cy))
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		add(g.touches.Release(mouseTouchID, float64(cx), float64(cy), state))
	}

	xoff, yoff := ebiten.Wheel()
	add(input.Wheel(xoff, yoff, state))
	return actions
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawGame(screen, g.scheduler.Engine().Snapshot())

	if g.imguiBackend != nil {
		g.imguiBackend.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imguiBackend != nil {
		g.imguiBackend.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return g.Width(), g.Height()
}
