package snake

import "fmt"

// Action is a player intent, resolved against the engine state when applied.
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	// ActionPause starts a fresh board, restarts a finished one, or toggles pause.
	ActionPause
	// ActionConfirm starts a fresh board or restarts a finished one.
	ActionConfirm
	ActionNewGame
	// ActionResetScore clears the high score and starts a new game.
	ActionResetScore
)

var actionNames = [...]string{
	ActionNone:       "none",
	ActionUp:         "up",
	ActionDown:       "down",
	ActionLeft:       "left",
	ActionRight:      "right",
	ActionPause:      "pause",
	ActionConfirm:    "confirm",
	ActionNewGame:    "new_game",
	ActionResetScore: "reset_score",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

// Direction returns the heading of a movement action.
func (a Action) Direction() (Direction, bool) {
	switch a {
	case ActionUp:
		return Up, true
	case ActionDown:
		return Down, true
	case ActionLeft:
		return Left, true
	case ActionRight:
		return Right, true
	}
	return 0, false
}

// DirectionAction is the inverse of Action.Direction.
func DirectionAction(d Direction) Action {
	switch d {
	case Up:
		return ActionUp
	case Down:
		return ActionDown
	case Left:
		return ActionLeft
	case Right:
		return ActionRight
	}
	return ActionNone
}
