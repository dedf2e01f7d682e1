package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/snake/snake"
)

var (
	backgroundColor = color.RGBA{R: 18, G: 18, B: 24, A: 255}
	gridColor       = color.RGBA{R: 30, G: 30, B: 40, A: 255}
	hudColor        = color.RGBA{R: 10, G: 10, B: 14, A: 255}
	foodColor       = color.RGBA{R: 230, G: 70, B: 70, A: 255}
	headColor       = color.RGBA{R: 120, G: 230, B: 120, A: 255}
	bodyColor       = color.RGBA{R: 70, G: 180, B: 90, A: 255}
	tailColor       = color.RGBA{R: 50, G: 130, B: 70, A: 255}
)

func drawGame(screen *ebiten.Image, snap snake.Snapshot) {
	screen.Fill(backgroundColor)

	side := float32(snap.GridSize * cellSize)
	vector.DrawFilledRect(screen, 0, 0, side, hudHeight, hudColor, false)

	for i := 0; i <= snap.GridSize; i++ {
		offset := float32(i * cellSize)
		vector.DrawFilledRect(screen, offset, hudHeight, 1, side, gridColor, false)
		vector.DrawFilledRect(screen, 0, hudHeight+offset, side, 1, gridColor, false)
	}

	if snap.HasFood {
		drawCell(screen, snap.Food, foodColor, 6)
	}
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		c := bodyColor
		switch i {
		case 0:
			c = headColor
		case len(snap.Snake) - 1:
			c = tailColor
		}
		drawCell(screen, snap.Snake[i], c, 2)
	}

	drawHUD(screen, snap)
}

func drawCell(screen *ebiten.Image, p snake.Position, c color.Color, inset float32) {
	x := float32(p.X*cellSize) + inset
	y := float32(hudHeight+p.Y*cellSize) + inset
	size := float32(cellSize) - 2*inset
	vector.DrawFilledRect(screen, x, y, size, size, c, false)
}

func drawHUD(screen *ebiten.Image, snap snake.Snapshot) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d   High: %d   Length: %d", snap.Score, snap.HighScore, snap.Length()), 8, 6)
	ebitenutil.DebugPrintAt(screen, statusLine(snap), 8, 24)
}

func statusLine(snap snake.Snapshot) string {
	switch snap.State {
	case snake.NotStarted:
		return "Press SPACE or ENTER to start"
	case snake.Paused:
		return "Paused. SPACE to resume"
	case snake.GameOver:
		return fmt.Sprintf("Game over with %d points. ENTER to play again", snap.Score)
	}
	return fmt.Sprintf("Speed: %dms   N: new game   Backspace: reset high score", snap.Speed.Milliseconds())
}
