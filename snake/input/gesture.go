// Package input turns pointer gestures into snake actions. Swipes and scrolls
// resolve to the dominant axis once they travel past a threshold, and are only
// honoured while a game is Running.
package input

import (
	"math"

	"github.com/plus3/snake/snake"
)

const (
	// SwipeThreshold is the distance in pixels a touch must travel between
	// press and release to count as a swipe.
	SwipeThreshold = 30.0
	// ScrollThreshold is the per-event scroll distance in pixels.
	ScrollThreshold = 5.0
	// WheelLineHeight converts wheel notches into pixels.
	WheelLineHeight = 40.0
)

// Swipe maps a press-to-release delta in screen coordinates (+y is down).
func Swipe(dx, dy float64, state snake.State) (snake.Action, bool) {
	return resolve(dx, dy, SwipeThreshold, state)
}

// Scroll maps a scroll delta. Positive dy scrolls the content down and steers
// the snake down.
func Scroll(dx, dy float64, state snake.State) (snake.Action, bool) {
	return resolve(dx, dy, ScrollThreshold, state)
}

// Wheel maps a mouse wheel offset in notches, as reported by the windowing
// layer (+y away from the user), onto Scroll.
func Wheel(xoff, yoff float64, state snake.State) (snake.Action, bool) {
	return Scroll(xoff*WheelLineHeight, -yoff*WheelLineHeight, state)
}

func resolve(dx, dy, threshold float64, state snake.State) (snake.Action, bool) {
	if state != snake.Running {
		return snake.ActionNone, false
	}

	absX, absY := math.Abs(dx), math.Abs(dy)
	if absX <= threshold && absY <= threshold {
		return snake.ActionNone, false
	}

	var d snake.Direction
	switch {
	case absX > absY && dx > 0:
		d = snake.Right
	case absX > absY:
		d = snake.Left
	case dy > 0:
		d = snake.Down
	default:
		d = snake.Up
	}
	return snake.DirectionAction(d), true
}
