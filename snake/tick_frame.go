package snake

import "time"

// TickFrame is handed to each System after a scheduler step.
type TickFrame struct {
	// Elapsed is the wall time since the previous step.
	Elapsed time.Duration
	// Outcome is OutcomeSkipped when the step only applied inputs.
	Outcome  Outcome
	Snapshot Snapshot
	Engine   *Engine
}

func newTickFrame(elapsed time.Duration, outcome Outcome, engine *Engine) *TickFrame {
	return &TickFrame{
		Elapsed:  elapsed,
		Outcome:  outcome,
		Snapshot: engine.Snapshot(),
		Engine:   engine,
	}
}
