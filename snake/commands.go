package snake

import "sync"

// Commands buffers player actions coming from input handlers on other
// goroutines. The scheduler flushes the buffer into the engine, in arrival
// order, right before each tick.
type Commands struct {
	mu      sync.Mutex
	actions []Action
	wake    chan struct{}
}

func newCommands() *Commands {
	return &Commands{
		wake: make(chan struct{}, 1),
	}
}

// Apply queues an action.
func (c *Commands) Apply(a Action) {
	if a == ActionNone {
		return
	}
	c.mu.Lock()
	c.actions = append(c.actions, a)
	c.mu.Unlock()

	select {
	case c.wake <- struct{}{}:
	default:
	}
}

// QueueDirection queues a direction change.
func (c *Commands) QueueDirection(d Direction) {
	c.Apply(DirectionAction(d))
}

// Pending returns the number of buffered actions.
func (c *Commands) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.actions)
}

// Flush applies all buffered actions to the engine under a single lock, so a
// tick observes either none or all of them. It reports how many were applied.
func (c *Commands) Flush(engine *Engine) int {
	c.mu.Lock()
	actions := c.actions
	c.actions = nil
	c.mu.Unlock()

	if len(actions) == 0 {
		return 0
	}

	engine.mu.Lock()
	for _, a := range actions {
		engine.applyLocked(a)
	}
	engine.mu.Unlock()

	return len(actions)
}
