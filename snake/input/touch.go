package input

import "github.com/plus3/snake/snake"

type point struct {
	x, y float64
}

type contact struct {
	start point
	last  point
}

// TouchTracker follows active touches by ID. Release turns the whole stroke
// into a swipe; Move turns each increment into a scroll, in content-drag
// direction (dragging up scrolls down).
type TouchTracker struct {
	contacts map[int]*contact
}

func NewTouchTracker() *TouchTracker {
	return &TouchTracker{
		contacts: make(map[int]*contact),
	}
}

// Press starts tracking a touch.
func (t *TouchTracker) Press(id int, x, y float64) {
	p := point{x, y}
	t.contacts[id] = &contact{start: p, last: p}
}

// Move reports a scroll action for the distance travelled since the last move.
func (t *TouchTracker) Move(id int, x, y float64, state snake.State) (snake.Action, bool) {
	c, ok := t.contacts[id]
	if !ok {
		return snake.ActionNone, false
	}
	dx, dy := c.last.x-x, c.last.y-y
	c.last = point{x, y}
	return Scroll(dx, dy, state)
}

// Release stops tracking a touch and reports the swipe it made, if any.
func (t *TouchTracker) Release(id int, x, y float64, state snake.State) (snake.Action, bool) {
	c, ok := t.contacts[id]
	if !ok {
		return snake.ActionNone, false
	}
	delete(t.contacts, id)
	return Swipe(x-c.start.x, y-c.start.y, state)
}

// End releases a touch at the last position passed to Press or Move, for
// platforms that no longer report the position once the finger lifts.
func (t *TouchTracker) End(id int, state snake.State) (snake.Action, bool) {
	c, ok := t.contacts[id]
	if !ok {
		return snake.ActionNone, false
	}
	return t.Release(id, c.last.x, c.last.y, state)
}

// Active returns the number of touches being tracked.
func (t *TouchTracker) Active() int {
	return len(t.contacts)
}
