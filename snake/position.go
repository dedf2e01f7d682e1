package snake

// Position is a cell on the grid. (0,0) is the top-left corner.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p moved by delta.
func (p Position) Add(delta Position) Position {
	return Position{X: p.X + delta.X, Y: p.Y + delta.Y}
}

// Step returns the neighbouring cell in direction d.
func (p Position) Step(d Direction) Position {
	return p.Add(d.Delta())
}

// Within reports whether p lies inside a size x size grid.
func (p Position) Within(size int) bool {
	return p.X >= 0 && p.X < size && p.Y >= 0 && p.Y < size
}

// index flattens p into a row-major cell number.
func (p Position) index(size int) int {
	return p.Y*size + p.X
}
