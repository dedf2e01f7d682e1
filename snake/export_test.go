package snake

// Arrange lays out an arbitrary running board. Test-only.
func (e *Engine) Arrange(segments []Position, dir Direction, food Position, score, highScore int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.body = newBody(e.cfg.GridSize, segments[0])
	for _, seg := range segments[1:] {
		e.body.segments = append(e.body.segments, seg)
		e.body.cells.Put(seg.index(e.cfg.GridSize), struct{}{})
	}
	e.direction = dir
	e.pending = dir
	e.food = food
	e.hasFood = true
	e.score = score
	e.highScore = highScore
	e.state = Running
}

// Occupied exposes the body index for consistency checks.
func (e *Engine) Occupied(p Position) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.body.occupied(p)
}
