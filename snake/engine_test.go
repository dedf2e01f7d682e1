package snake_test

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/plus3/snake/snake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, cfg snake.Config) *snake.Engine {
	t.Helper()
	ids := 0
	engine, err := snake.NewEngine(cfg,
		snake.WithLogger(slog.New(slog.DiscardHandler)),
		snake.WithIDGenerator(func() string {
			ids++
			return fmt.Sprintf("game-%d", ids)
		}),
	)
	require.NoError(t, err)
	return engine
}

func seeded(seed uint64) snake.Config {
	cfg := snake.DefaultConfig()
	cfg.Seed = seed
	return cfg
}

func TestNewEngine(t *testing.T) {
	t.Run("starting board", func(t *testing.T) {
		engine := newTestEngine(t, snake.DefaultConfig())
		snap := engine.Snapshot()

		assert.Equal(t, snake.NotStarted, snap.State)
		assert.Equal(t, []snake.Position{{X: 6, Y: 6}}, snap.Snake)
		assert.Equal(t, snake.Position{X: 9, Y: 9}, snap.Food)
		assert.True(t, snap.HasFood)
		assert.Equal(t, snake.Right, snap.Direction)
		assert.Equal(t, 0, snap.Score)
		assert.Equal(t, 250*time.Millisecond, snap.Speed)
		assert.Equal(t, 12, snap.GridSize)
		assert.NotEmpty(t, snap.GameID)
	})

	t.Run("rejects invalid config", func(t *testing.T) {
		cfg := snake.DefaultConfig()
		cfg.GridSize = 1
		_, err := snake.NewEngine(cfg)
		assert.ErrorIs(t, err, snake.ErrInvalidConfig)
	})

	t.Run("rejects a board too large to allocate", func(t *testing.T) {
		cfg := snake.DefaultConfig()
		cfg.GridSize = math.MaxInt32
		engine, err := snake.NewEngine(cfg)
		assert.ErrorIs(t, err, snake.ErrInvalidConfig)
		assert.Nil(t, engine)
	})

	t.Run("default game ids are unique", func(t *testing.T) {
		engine, err := snake.NewEngine(snake.DefaultConfig(), snake.WithLogger(slog.New(slog.DiscardHandler)))
		require.NoError(t, err)
		first := engine.Snapshot().GameID
		engine.Reset()
		assert.NotEqual(t, first, engine.Snapshot().GameID)
	})
}

func TestTickBeforeStart(t *testing.T) {
	engine := newTestEngine(t, snake.DefaultConfig())
	before := engine.Snapshot()

	assert.Equal(t, snake.OutcomeSkipped, engine.Tick())
	assert.Equal(t, before, engine.Snapshot())
	assert.False(t, engine.QueueDirection(snake.Up), "direction input is ignored before start")
}

func TestTickScenarios(t *testing.T) {
	t.Run("eating grows the snake and moves the food", func(t *testing.T) {
		engine := newTestEngine(t, seeded(7))
		engine.Arrange([]snake.Position{{X: 6, Y: 6}}, snake.Right, snake.Position{X: 7, Y: 6}, 0, 0)

		assert.Equal(t, snake.OutcomeAte, engine.Tick())

		snap := engine.Snapshot()
		assert.Equal(t, []snake.Position{{X: 7, Y: 6}, {X: 6, Y: 6}}, snap.Snake)
		assert.Equal(t, 10, snap.Score)
		assert.False(t, snap.Occupies(snap.Food))
		assert.True(t, snap.Food.Within(snap.GridSize))
		assert.Equal(t, 247*time.Millisecond, snap.Speed)
		assert.Equal(t, snake.Running, snap.State)
	})

	t.Run("wall collision ends the game without moving", func(t *testing.T) {
		engine := newTestEngine(t, snake.DefaultConfig())
		engine.Arrange([]snake.Position{{X: 0, Y: 0}}, snake.Left, snake.Position{X: 9, Y: 9}, 0, 0)

		assert.Equal(t, snake.OutcomeWallCollision, engine.Tick())

		snap := engine.Snapshot()
		assert.Equal(t, snake.GameOver, snap.State)
		assert.Equal(t, []snake.Position{{X: 0, Y: 0}}, snap.Snake)
	})

	t.Run("plain move drops the tail", func(t *testing.T) {
		engine := newTestEngine(t, snake.DefaultConfig())
		engine.Arrange(
			[]snake.Position{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 5, Y: 7}},
			snake.Up, snake.Position{X: 0, Y: 0}, 0, 0,
		)

		assert.Equal(t, snake.OutcomeMoved, engine.Tick())
		assert.Equal(t,
			[]snake.Position{{X: 5, Y: 4}, {X: 5, Y: 5}, {X: 5, Y: 6}},
			engine.Snapshot().Snake,
		)
	})

	t.Run("game over commits a better high score", func(t *testing.T) {
		engine := newTestEngine(t, snake.DefaultConfig())
		engine.Arrange([]snake.Position{{X: 0, Y: 0}}, snake.Left, snake.Position{X: 9, Y: 9}, 30, 20)

		engine.Tick()
		assert.Equal(t, 30, engine.Snapshot().HighScore)
	})

	t.Run("game over keeps a better existing high score", func(t *testing.T) {
		engine := newTestEngine(t, snake.DefaultConfig())
		engine.Arrange([]snake.Position{{X: 0, Y: 0}}, snake.Left, snake.Position{X: 9, Y: 9}, 10, 40)

		engine.Tick()
		assert.Equal(t, 40, engine.Snapshot().HighScore)
	})

	t.Run("moving into the current tail is a collision", func(t *testing.T) {
		engine := newTestEngine(t, snake.DefaultConfig())
		segments := []snake.Position{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}}
		engine.Arrange(segments, snake.Up, snake.Position{X: 0, Y: 0}, 0, 0)

		require.True(t, engine.QueueDirection(snake.Right))
		assert.Equal(t, snake.OutcomeSelfCollision, engine.Tick())
		assert.Equal(t, segments, engine.Snapshot().Snake)
	})

	t.Run("filling the board ends the game", func(t *testing.T) {
		cfg := snake.DefaultConfig()
		cfg.GridSize = 2
		cfg.Start = snake.Position{X: 0, Y: 0}
		cfg.StartFood = snake.Position{X: 1, Y: 0}
		engine := newTestEngine(t, cfg)
		engine.Arrange(
			[]snake.Position{{X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0}},
			snake.Up, snake.Position{X: 1, Y: 0}, 0, 0,
		)

		assert.Equal(t, snake.OutcomeBoardFull, engine.Tick())

		snap := engine.Snapshot()
		assert.Equal(t, snake.GameOver, snap.State)
		assert.False(t, snap.HasFood)
		assert.Equal(t, 4, snap.Length())
		assert.Equal(t, 10, snap.Score)
		assert.Equal(t, 10, snap.HighScore)
	})
}

func TestQueueDirection(t *testing.T) {
	t.Run("opposite of committed direction is ignored", func(t *testing.T) {
		engine := newTestEngine(t, snake.DefaultConfig())
		engine.Start()

		assert.False(t, engine.QueueDirection(snake.Left))
		engine.Tick()
		assert.Equal(t, snake.Position{X: 7, Y: 6}, engine.Snapshot().Head())
	})

	t.Run("last accepted request wins", func(t *testing.T) {
		engine := newTestEngine(t, snake.DefaultConfig())
		engine.Start()

		assert.True(t, engine.QueueDirection(snake.Up))
		assert.True(t, engine.QueueDirection(snake.Down))
		engine.Tick()

		snap := engine.Snapshot()
		assert.Equal(t, snake.Down, snap.Direction)
		assert.Equal(t, snake.Position{X: 6, Y: 7}, snap.Head())
	})

	t.Run("guard uses the committed direction, not the queued one", func(t *testing.T) {
		engine := newTestEngine(t, snake.DefaultConfig())
		engine.Start()

		assert.True(t, engine.QueueDirection(snake.Up))
		assert.False(t, engine.QueueDirection(snake.Left), "left still reverses the committed heading")
	})

	t.Run("accepted while paused and applied after resume", func(t *testing.T) {
		engine := newTestEngine(t, snake.DefaultConfig())
		engine.Start()
		engine.TogglePause()

		assert.True(t, engine.QueueDirection(snake.Up))
		assert.Equal(t, snake.OutcomeSkipped, engine.Tick())
		assert.Equal(t, snake.Position{X: 6, Y: 6}, engine.Snapshot().Head())

		engine.TogglePause()
		engine.Tick()
		assert.Equal(t, snake.Position{X: 6, Y: 5}, engine.Snapshot().Head())
	})

	t.Run("invalid direction is rejected", func(t *testing.T) {
		engine := newTestEngine(t, snake.DefaultConfig())
		engine.Start()
		assert.False(t, engine.QueueDirection(snake.Direction(9)))
	})
}

func TestGameOverIsTerminal(t *testing.T) {
	engine := newTestEngine(t, snake.DefaultConfig())
	engine.Arrange([]snake.Position{{X: 0, Y: 0}}, snake.Left, snake.Position{X: 9, Y: 9}, 20, 0)
	engine.Tick()
	frozen := engine.Snapshot()
	require.Equal(t, snake.GameOver, frozen.State)

	assert.False(t, engine.QueueDirection(snake.Down))
	engine.TogglePause()
	engine.Start()
	for range 5 {
		assert.Equal(t, snake.OutcomeSkipped, engine.Tick())
	}
	assert.Equal(t, frozen, engine.Snapshot())

	engine.Reset()
	snap := engine.Snapshot()
	assert.Equal(t, snake.Running, snap.State)
	assert.Equal(t, []snake.Position{{X: 6, Y: 6}}, snap.Snake)
	assert.Equal(t, snake.Position{X: 9, Y: 9}, snap.Food)
	assert.Equal(t, snake.Right, snap.Direction)
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, 20, snap.HighScore)
	assert.Equal(t, 250*time.Millisecond, snap.Speed)
	assert.Equal(t, uint64(0), snap.Ticks)
	assert.NotEqual(t, frozen.GameID, snap.GameID)
}

func TestTogglePause(t *testing.T) {
	engine := newTestEngine(t, snake.DefaultConfig())

	engine.TogglePause()
	assert.Equal(t, snake.NotStarted, engine.State(), "pause does not start a game")

	engine.Start()
	engine.TogglePause()
	assert.Equal(t, snake.Paused, engine.State())

	before := engine.Snapshot()
	engine.Tick()
	assert.Equal(t, before, engine.Snapshot())

	engine.TogglePause()
	assert.Equal(t, snake.Running, engine.State())
}

func TestApply(t *testing.T) {
	over := func(t *testing.T) *snake.Engine {
		engine := newTestEngine(t, snake.DefaultConfig())
		engine.Arrange([]snake.Position{{X: 0, Y: 0}}, snake.Left, snake.Position{X: 9, Y: 9}, 50, 0)
		engine.Tick()
		return engine
	}

	t.Run("pause starts a fresh board", func(t *testing.T) {
		engine := newTestEngine(t, snake.DefaultConfig())
		engine.Apply(snake.ActionPause)
		assert.Equal(t, snake.Running, engine.State())
	})

	t.Run("pause toggles a running game", func(t *testing.T) {
		engine := newTestEngine(t, snake.DefaultConfig())
		engine.Start()
		engine.Apply(snake.ActionPause)
		assert.Equal(t, snake.Paused, engine.State())
		engine.Apply(snake.ActionPause)
		assert.Equal(t, snake.Running, engine.State())
	})

	t.Run("pause restarts a finished game", func(t *testing.T) {
		engine := over(t)
		engine.Apply(snake.ActionPause)
		snap := engine.Snapshot()
		assert.Equal(t, snake.Running, snap.State)
		assert.Equal(t, 0, snap.Score)
		assert.Equal(t, 50, snap.HighScore)
	})

	t.Run("confirm starts and restarts but never pauses", func(t *testing.T) {
		engine := newTestEngine(t, snake.DefaultConfig())
		engine.Apply(snake.ActionConfirm)
		assert.Equal(t, snake.Running, engine.State())
		engine.Apply(snake.ActionConfirm)
		assert.Equal(t, snake.Running, engine.State())

		engine = over(t)
		engine.Apply(snake.ActionConfirm)
		assert.Equal(t, snake.Running, engine.State())
	})

	t.Run("new game resets from any state", func(t *testing.T) {
		engine := newTestEngine(t, snake.DefaultConfig())
		engine.Start()
		engine.Tick()
		engine.Apply(snake.ActionNewGame)
		assert.Equal(t, []snake.Position{{X: 6, Y: 6}}, engine.Snapshot().Snake)
		assert.Equal(t, snake.Running, engine.State())
	})

	t.Run("reset score clears the high score", func(t *testing.T) {
		engine := over(t)
		require.Equal(t, 50, engine.Snapshot().HighScore)
		engine.Apply(snake.ActionResetScore)
		snap := engine.Snapshot()
		assert.Equal(t, 0, snap.HighScore)
		assert.Equal(t, snake.Running, snap.State)
	})

	t.Run("direction actions queue directions", func(t *testing.T) {
		engine := newTestEngine(t, snake.DefaultConfig())
		engine.Start()
		engine.Apply(snake.ActionDown)
		engine.Tick()
		assert.Equal(t, snake.Down, engine.Snapshot().Direction)
	})

	t.Run("none is a no-op", func(t *testing.T) {
		engine := newTestEngine(t, snake.DefaultConfig())
		before := engine.Snapshot()
		engine.Apply(snake.ActionNone)
		assert.Equal(t, before, engine.Snapshot())
	})
}

func TestResetHighScore(t *testing.T) {
	engine := newTestEngine(t, snake.DefaultConfig())
	engine.Arrange([]snake.Position{{X: 0, Y: 0}}, snake.Left, snake.Position{X: 9, Y: 9}, 30, 0)
	engine.Tick()

	engine.ResetHighScore()
	snap := engine.Snapshot()
	assert.Equal(t, 0, snap.HighScore)
	assert.Equal(t, snake.Running, snap.State)
}

func TestSpeedFloor(t *testing.T) {
	cfg := snake.DefaultConfig()
	cfg.InitialSpeed = 60 * time.Millisecond
	engine := newTestEngine(t, cfg)

	want := []time.Duration{57, 54, 51, 50, 50, 50}
	for i, ms := range want {
		engine.Arrange([]snake.Position{{X: 1, Y: 1}}, snake.Right, snake.Position{X: 2, Y: 1}, 0, 0)
		require.Equal(t, snake.OutcomeAte, engine.Tick(), "meal %d", i)
		assert.Equal(t, ms*time.Millisecond, engine.Speed(), "meal %d", i)
	}
}

func TestSeededFoodIsReproducible(t *testing.T) {
	play := func() []snake.Position {
		engine := newTestEngine(t, seeded(42))
		var foods []snake.Position
		for range 8 {
			engine.Arrange([]snake.Position{{X: 3, Y: 3}}, snake.Right, snake.Position{X: 4, Y: 3}, 0, 0)
			engine.Tick()
			foods = append(foods, engine.Snapshot().Food)
		}
		return foods
	}

	assert.Equal(t, play(), play())
}

func TestWithRand(t *testing.T) {
	b, err := snake.NewEngine(snake.DefaultConfig(),
		snake.WithLogger(slog.New(slog.DiscardHandler)),
		snake.WithRand(rand.New(rand.NewPCG(1, 2))),
	)
	require.NoError(t, err)
	c, err := snake.NewEngine(snake.DefaultConfig(),
		snake.WithLogger(slog.New(slog.DiscardHandler)),
		snake.WithRand(rand.New(rand.NewPCG(1, 2))),
	)
	require.NoError(t, err)

	for _, e := range []*snake.Engine{b, c} {
		e.Arrange([]snake.Position{{X: 3, Y: 3}}, snake.Right, snake.Position{X: 4, Y: 3}, 0, 0)
		e.Tick()
	}
	assert.Equal(t, b.Snapshot().Food, c.Snapshot().Food)
}

// TestRandomPlayInvariants drives the engine with random input across many
// games and checks the movement, growth, food and score rules after every tick.
func TestRandomPlayInvariants(t *testing.T) {
	engine := newTestEngine(t, seeded(1234))
	inputs := rand.New(rand.NewPCG(99, 100))
	engine.Start()

	games := 0
	for step := 0; step < 5000; step++ {
		prev := engine.Snapshot()
		engine.QueueDirection(snake.Direction(inputs.IntN(4)))

		outcome := engine.Tick()
		snap := engine.Snapshot()

		switch {
		case outcome.Ended() && !outcome.Grew():
			assert.Equal(t, prev.Snake, snap.Snake, "collision must not move the snake")
			assert.Equal(t, snake.GameOver, snap.State)
		case outcome == snake.OutcomeMoved || outcome.Grew():
			head, prevHead := snap.Head(), prev.Head()
			dist := abs(head.X-prevHead.X) + abs(head.Y-prevHead.Y)
			assert.Equal(t, 1, dist, "heads of successive ticks must be adjacent")
			assert.Equal(t, prevHead.Step(snap.Direction), head)
			assert.NotEqual(t, prev.Direction.Opposite(), snap.Direction, "snake reversed")
			if outcome.Grew() {
				assert.Equal(t, prev.Length()+1, snap.Length())
				assert.Equal(t, prev.Score+10, snap.Score)
			} else {
				assert.Equal(t, prev.Length(), snap.Length())
				assert.Equal(t, prev.Score, snap.Score)
			}
		}

		assert.Zero(t, snap.Score%10, "score must be a multiple of the reward")
		if snap.HasFood {
			assert.False(t, snap.Occupies(snap.Food), "food on the snake")
		}
		seen := make(map[snake.Position]bool, snap.Length())
		for _, seg := range snap.Snake {
			assert.False(t, seen[seg], "duplicate segment %v", seg)
			assert.True(t, seg.Within(snap.GridSize))
			assert.True(t, engine.Occupied(seg))
			seen[seg] = true
		}

		if snap.State == snake.GameOver {
			games++
			assert.GreaterOrEqual(t, snap.HighScore, snap.Score)
			engine.Reset()
		}
	}

	assert.Greater(t, games, 0, "random play should end at least one game")
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
