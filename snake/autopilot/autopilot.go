// Package autopilot plays Snake on its own. It heads for the food along a
// shortest path through free cells and, when the food is unreachable, turns
// toward the largest open region instead.
package autopilot

import "github.com/plus3/snake/snake"

var headings = [...]snake.Direction{snake.Up, snake.Right, snake.Down, snake.Left}

// Next picks the heading for the next tick. It never returns the opposite of
// the snapshot's committed direction.
func Next(snap snake.Snapshot) snake.Direction {
	g := newGrid(snap)
	head := snap.Head()

	if snap.HasFood {
		if d, ok := g.firstStepTo(head, snap.Food, snap.Direction); ok {
			return d
		}
	}

	best, bestArea := snap.Direction, -1
	for _, d := range headings {
		if d == snap.Direction.Opposite() {
			continue
		}
		next := head.Step(d)
		if !g.free(next) {
			continue
		}
		if area := g.reachable(next); area > bestArea {
			best, bestArea = d, area
		}
	}
	return best
}

// grid marks the cells a move can enter on the next tick.
type grid struct {
	size    int
	blocked []bool
}

func newGrid(snap snake.Snapshot) *grid {
	g := &grid{
		size:    snap.GridSize,
		blocked: make([]bool, snap.GridSize*snap.GridSize),
	}
	for _, seg := range snap.Snake {
		if seg.Within(g.size) {
			g.blocked[g.index(seg)] = true
		}
	}
	return g
}

func (g *grid) index(p snake.Position) int {
	return p.Y*g.size + p.X
}

func (g *grid) free(p snake.Position) bool {
	return p.Within(g.size) && !g.blocked[g.index(p)]
}

// firstStepTo runs a breadth-first search from head and returns the first
// heading of a shortest path to target.
func (g *grid) firstStepTo(head, target snake.Position, current snake.Direction) (snake.Direction, bool) {
	first := make([]int8, len(g.blocked))
	for i := range first {
		first[i] = -1
	}

	queue := make([]snake.Position, 0, len(g.blocked))
	for i, d := range headings {
		if d == current.Opposite() {
			continue
		}
		next := head.Step(d)
		if !g.free(next) || first[g.index(next)] >= 0 {
			continue
		}
		first[g.index(next)] = int8(i)
		queue = append(queue, next)
	}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if p == target {
			return headings[first[g.index(p)]], true
		}
		for _, d := range headings {
			next := p.Step(d)
			if !g.free(next) || first[g.index(next)] >= 0 {
				continue
			}
			first[g.index(next)] = first[g.index(p)]
			queue = append(queue, next)
		}
	}
	return 0, false
}

// reachable counts the free cells connected to start.
func (g *grid) reachable(start snake.Position) int {
	seen := make([]bool, len(g.blocked))
	seen[g.index(start)] = true
	stack := []snake.Position{start}
	count := 0

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		for _, d := range headings {
			next := p.Step(d)
			if !g.free(next) || seen[g.index(next)] {
				continue
			}
			seen[g.index(next)] = true
			stack = append(stack, next)
		}
	}
	return count
}

// Pilot is a System that steers the engine after every step. Register it on a
// scheduler to let the game play itself.
type Pilot struct {
	// Restart starts a new game as soon as the current one ends.
	Restart bool

	Decisions int64
	Restarts  int64
}

func (p *Pilot) Execute(frame *snake.TickFrame) {
	if p.Restart && frame.Snapshot.State == snake.GameOver {
		frame.Engine.Reset()
		p.Restarts++
		return
	}
	if frame.Snapshot.State != snake.Running {
		return
	}
	d := Next(frame.Snapshot)
	if d != frame.Snapshot.Direction {
		frame.Engine.QueueDirection(d)
	}
	p.Decisions++
}
