package snake

import "github.com/kamstrup/intmap"

// body is the snake, head first, with a cell index for O(1) overlap checks.
type body struct {
	size     int
	segments []Position
	cells    *intmap.Map[int, struct{}]
}

func newBody(size int, start Position) *body {
	b := &body{
		size:     size,
		segments: make([]Position, 0, size),
		cells:    intmap.New[int, struct{}](size * size),
	}
	b.pushHead(start)
	return b
}

func (b *body) head() Position {
	return b.segments[0]
}

func (b *body) len() int {
	return len(b.segments)
}

func (b *body) occupied(p Position) bool {
	if !p.Within(b.size) {
		return false
	}
	_, ok := b.cells.Get(p.index(b.size))
	return ok
}

// full reports whether every cell of the grid is covered.
func (b *body) full() bool {
	return b.cells.Len() >= b.size*b.size
}

func (b *body) pushHead(p Position) {
	b.segments = append(b.segments, Position{})
	copy(b.segments[1:], b.segments)
	b.segments[0] = p
	b.cells.Put(p.index(b.size), struct{}{})
}

func (b *body) popTail() {
	last := len(b.segments) - 1
	b.cells.Del(b.segments[last].index(b.size))
	b.segments = b.segments[:last]
}

func (b *body) clone() []Position {
	out := make([]Position, len(b.segments))
	copy(out, b.segments)
	return out
}
