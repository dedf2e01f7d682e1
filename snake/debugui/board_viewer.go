package debugui

import (
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/snake/snake"
)

var cellColors = map[snake.Cell]imgui.Vec4{
	snake.CellEmpty: imgui.NewVec4(0.15, 0.15, 0.15, 1),
	snake.CellFood:  imgui.NewVec4(0.9, 0.2, 0.2, 1),
	snake.CellHead:  imgui.NewVec4(0.3, 0.9, 0.3, 1),
	snake.CellBody:  imgui.NewVec4(0.2, 0.6, 0.2, 1),
	snake.CellTail:  imgui.NewVec4(0.15, 0.45, 0.15, 1),
}

var cellGlyphs = map[snake.Cell]byte{
	snake.CellEmpty: '.',
	snake.CellFood:  '*',
	snake.CellHead:  '@',
	snake.CellBody:  'o',
	snake.CellTail:  '~',
}

type BoardViewer struct {
	cellSize float32
}

func NewBoardViewer() *BoardViewer {
	return &BoardViewer{cellSize: 12}
}

func (bv *BoardViewer) Render(snap snake.Snapshot) {
	if !imgui.BeginV("Board", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	drawList := imgui.WindowDrawList()
	origin := imgui.CursorScreenPos()
	for y := 0; y < snap.GridSize; y++ {
		for x := 0; x < snap.GridSize; x++ {
			cell := snap.CellAt(snake.Position{X: x, Y: y})
			minX := origin.X + float32(x)*bv.cellSize
			minY := origin.Y + float32(y)*bv.cellSize
			drawList.AddRectFilled(
				imgui.NewVec2(minX+1, minY+1),
				imgui.NewVec2(minX+bv.cellSize, minY+bv.cellSize),
				imgui.ColorU32Vec4(cellColors[cell]),
			)
		}
	}
	side := float32(snap.GridSize) * bv.cellSize
	imgui.Dummy(imgui.NewVec2(side, side))

	imgui.End()
}

// BoardText draws the board as one line of glyphs per row.
func BoardText(snap snake.Snapshot) string {
	var b strings.Builder
	b.Grow(snap.GridSize * (snap.GridSize + 1))
	for y := 0; y < snap.GridSize; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < snap.GridSize; x++ {
			b.WriteByte(cellGlyphs[snap.CellAt(snake.Position{X: x, Y: y})])
		}
	}
	return b.String()
}
