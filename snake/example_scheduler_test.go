package snake_test

import (
	"context"
	"fmt"
	"time"

	"github.com/plus3/snake/snake"
)

type HUDSystem struct{}

func (s *HUDSystem) Execute(frame *snake.TickFrame) {
	head := frame.Snapshot.Head()
	fmt.Printf("%-8s head=(%d,%d) state=%s\n", frame.Outcome, head.X, head.Y, frame.Snapshot.State)
}

// ExampleScheduler demonstrates feeding input through the command buffer.
// Buffered actions are applied in order right before the tick, and every
// registered system sees the resulting snapshot.
func ExampleScheduler() {
	engine, err := snake.NewEngine(snake.DefaultConfig())
	if err != nil {
		panic(err)
	}

	scheduler := snake.NewScheduler(engine)
	scheduler.Register(&HUDSystem{})

	scheduler.Commands().Apply(snake.ActionConfirm)
	scheduler.Once(0)

	scheduler.Commands().QueueDirection(snake.Up)
	scheduler.Once(0)

	scheduler.Commands().Apply(snake.ActionPause)
	scheduler.Once(0)

	fmt.Println("ticks:", scheduler.GetStats().Ticks)

	// Output:
	// moved    head=(7,6) state=running
	// moved    head=(7,5) state=running
	// skipped  head=(7,5) state=paused
	// ticks: 2
}

// ExampleScheduler_Run demonstrates the real-time loop. The timer only runs
// while the game is Running, so an engine that was never started does not tick.
func ExampleScheduler_Run() {
	engine, err := snake.NewEngine(snake.DefaultConfig())
	if err != nil {
		panic(err)
	}
	scheduler := snake.NewScheduler(engine)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	scheduler.Run(ctx)

	fmt.Println("Scheduler stopped, ticks:", scheduler.GetStats().Ticks)
	// Output:
	// Scheduler stopped, ticks: 0
}
