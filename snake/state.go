package snake

import "fmt"

// State is the engine's lifecycle phase.
type State uint8

const (
	NotStarted State = iota
	Running
	Paused
	GameOver
)

var stateNames = [...]string{
	NotStarted: "not_started",
	Running:    "running",
	Paused:     "paused",
	GameOver:   "game_over",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Outcome describes what a single Tick did.
type Outcome uint8

const (
	// OutcomeSkipped means the engine was not Running and nothing changed.
	OutcomeSkipped Outcome = iota
	OutcomeMoved
	OutcomeAte
	OutcomeWallCollision
	OutcomeSelfCollision
	// OutcomeBoardFull means food was eaten and no empty cell remains for the next one.
	OutcomeBoardFull
)

var outcomeNames = [...]string{
	OutcomeSkipped:       "skipped",
	OutcomeMoved:         "moved",
	OutcomeAte:           "ate",
	OutcomeWallCollision: "wall_collision",
	OutcomeSelfCollision: "self_collision",
	OutcomeBoardFull:     "board_full",
}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return fmt.Sprintf("Outcome(%d)", uint8(o))
}

// Ended reports whether this outcome moved the engine into GameOver.
func (o Outcome) Ended() bool {
	return o == OutcomeWallCollision || o == OutcomeSelfCollision || o == OutcomeBoardFull
}

// Grew reports whether the snake gained a segment.
func (o Outcome) Grew() bool {
	return o == OutcomeAte || o == OutcomeBoardFull
}
