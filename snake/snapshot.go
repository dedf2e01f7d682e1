package snake

import (
	"encoding/json"
	"time"
)

// Snapshot is a read-only copy of an engine's state. Renderers draw from it.
type Snapshot struct {
	GameID    string        `json:"game_id"`
	GridSize  int           `json:"grid_size"`
	Snake     []Position    `json:"snake"`
	Food      Position      `json:"food"`
	HasFood   bool          `json:"has_food"`
	Direction Direction     `json:"direction"`
	Score     int           `json:"score"`
	HighScore int           `json:"high_score"`
	Speed     time.Duration `json:"-"`
	State     State         `json:"state"`
	Ticks     uint64        `json:"ticks"`
}

// Head returns the first segment.
func (s Snapshot) Head() Position {
	if len(s.Snake) == 0 {
		return Position{}
	}
	return s.Snake[0]
}

// Tail returns the last segment.
func (s Snapshot) Tail() Position {
	if len(s.Snake) == 0 {
		return Position{}
	}
	return s.Snake[len(s.Snake)-1]
}

// Length returns the number of segments.
func (s Snapshot) Length() int {
	return len(s.Snake)
}

// Occupies reports whether p is covered by the snake.
func (s Snapshot) Occupies(p Position) bool {
	for _, seg := range s.Snake {
		if seg == p {
			return true
		}
	}
	return false
}

// Cell classifies a grid position for drawing.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellFood
	CellHead
	CellBody
	CellTail
)

// CellAt classifies p. The head wins over the tail for a single segment snake.
func (s Snapshot) CellAt(p Position) Cell {
	for i, seg := range s.Snake {
		if seg != p {
			continue
		}
		switch {
		case i == 0:
			return CellHead
		case i == len(s.Snake)-1:
			return CellTail
		default:
			return CellBody
		}
	}
	if s.HasFood && s.Food == p {
		return CellFood
	}
	return CellEmpty
}

// MarshalJSON adds the speed in milliseconds, which is what clients display.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	type plain Snapshot
	return json.Marshal(struct {
		plain
		SpeedMS int64 `json:"speed_ms"`
	}{
		plain:   plain(s),
		SpeedMS: s.Speed.Milliseconds(),
	})
}
