package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/snake/snake"
)

var keyActions = []struct {
	keys   []ebiten.Key
	action snake.Action
}{
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, snake.ActionUp},
	{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, snake.ActionDown},
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, snake.ActionLeft},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, snake.ActionRight},
	{[]ebiten.Key{ebiten.KeySpace}, snake.ActionPause},
	{[]ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}, snake.ActionConfirm},
	{[]ebiten.Key{ebiten.KeyN}, snake.ActionNewGame},
	{[]ebiten.Key{ebiten.KeyBackspace}, snake.ActionResetScore},
}

// pressedActions returns the actions for keys pressed this tick, in table order.
func pressedActions() []snake.Action {
	var actions []snake.Action
	for _, binding := range keyActions {
		for _, key := range binding.keys {
			if inpututil.IsKeyJustPressed(key) {
				actions = append(actions, binding.action)
				break
			}
		}
	}
	return actions
}
