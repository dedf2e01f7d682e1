package snake

import (
	"context"
	"reflect"
	"sync"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Ticks           int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler drives an Engine: it ticks at the engine's current speed, applies
// buffered Commands at tick boundaries and runs registered systems after each step.
type Scheduler struct {
	engine   *Engine
	commands *Commands
	systems  []System

	mu          sync.Mutex
	systemStats []*systemStatsInternal
	ticks       int64
	lastStep    time.Time
}

// NewScheduler creates a scheduler for the given engine.
func NewScheduler(engine *Engine) *Scheduler {
	return &Scheduler{
		engine:   engine,
		commands: newCommands(),
		systems:  make([]System, 0),
	}
}

// Engine returns the driven engine.
func (s *Scheduler) Engine() *Engine {
	return s.engine
}

// Commands returns the input buffer. Use it instead of calling the engine
// directly while Run is active, so state changes wake the loop.
func (s *Scheduler) Commands() *Commands {
	return s.commands
}

// Register adds a system. Systems run in registration order.
// Register must not be called concurrently with Run.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.mu.Lock()
	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
	s.mu.Unlock()
}

// Once applies buffered commands, ticks the engine and runs every system.
func (s *Scheduler) Once(elapsed time.Duration) Outcome {
	s.commands.Flush(s.engine)
	outcome := s.engine.Tick()

	s.mu.Lock()
	if outcome != OutcomeSkipped {
		s.ticks++
	}
	s.mu.Unlock()

	s.execute(newTickFrame(elapsed, outcome, s.engine))
	return outcome
}

// flush applies buffered commands and, if any were applied, lets systems see
// the new state without ticking.
func (s *Scheduler) flush(elapsed time.Duration) {
	if s.commands.Flush(s.engine) == 0 {
		return
	}
	s.execute(newTickFrame(elapsed, OutcomeSkipped, s.engine))
}

func (s *Scheduler) execute(frame *TickFrame) {
	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		s.mu.Lock()
		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
		s.mu.Unlock()
	}
}

// Run drives the engine until the context is cancelled. The timer is armed
// with the engine's speed only while the game is Running and is re-armed after
// every tick, so a speed change applies to the very next tick. A command that
// changes the speed, such as a new game, re-arms it as well. Pausing, game
// over and the start screen leave the timer stopped until a command wakes the loop.
func (s *Scheduler) Run(ctx context.Context) {
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	armed := false
	var armedSpeed time.Duration
	s.lastStep = time.Now()

	for {
		s.flush(time.Since(s.lastStep))

		running := s.engine.State() == Running
		speed := s.engine.Speed()
		switch {
		case running && (!armed || speed != armedSpeed):
			timer.Reset(speed)
			armed = true
			armedSpeed = speed
		case !running && armed:
			timer.Stop()
			armed = false
		}

		select {
		case <-ctx.Done():
			return
		case <-s.commands.wake:
		case now := <-timer.C:
			armed = false
			elapsed := now.Sub(s.lastStep)
			s.lastStep = now
			s.Once(elapsed)
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := &SchedulerStats{
		SystemCount: len(s.systemStats),
		Ticks:       s.ticks,
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
