package snake_test

import (
	"sync"
	"testing"

	"github.com/plus3/snake/snake"
	"github.com/stretchr/testify/assert"
)

func TestCommands(t *testing.T) {
	t.Run("flush applies actions in arrival order", func(t *testing.T) {
		engine := newTestEngine(t, snake.DefaultConfig())
		commands := snake.NewScheduler(engine).Commands()

		commands.Apply(snake.ActionConfirm)
		commands.QueueDirection(snake.Up)
		commands.Apply(snake.ActionPause)
		assert.Equal(t, 3, commands.Pending())

		assert.Equal(t, 3, commands.Flush(engine))
		assert.Equal(t, 0, commands.Pending())
		assert.Equal(t, snake.Paused, engine.State())

		engine.TogglePause()
		engine.Tick()
		assert.Equal(t, snake.Position{X: 6, Y: 5}, engine.Snapshot().Head())
	})

	t.Run("direction before start is dropped at flush time", func(t *testing.T) {
		engine := newTestEngine(t, snake.DefaultConfig())
		commands := snake.NewScheduler(engine).Commands()

		commands.QueueDirection(snake.Down)
		commands.Apply(snake.ActionConfirm)
		commands.Flush(engine)

		engine.Tick()
		assert.Equal(t, snake.Position{X: 7, Y: 6}, engine.Snapshot().Head())
	})

	t.Run("none is not buffered", func(t *testing.T) {
		engine := newTestEngine(t, snake.DefaultConfig())
		commands := snake.NewScheduler(engine).Commands()

		commands.Apply(snake.ActionNone)
		assert.Equal(t, 0, commands.Pending())
		assert.Equal(t, 0, commands.Flush(engine))
	})

	t.Run("concurrent producers", func(t *testing.T) {
		engine := newTestEngine(t, snake.DefaultConfig())
		commands := snake.NewScheduler(engine).Commands()

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					commands.QueueDirection(snake.Up)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 800, commands.Pending())
		assert.Equal(t, 800, commands.Flush(engine))
	})
}
