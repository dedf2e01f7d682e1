// Package snake implements the Snake game engine: grid movement, collisions,
// growth, speed progression and the start/pause/game-over state machine,
// plus a re-armable scheduler that drives it in real time.
package snake

import (
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Engine owns a single game of Snake. All methods are safe for concurrent use;
// a mutex serializes inputs against ticks so a tick never sees a half-applied change.
type Engine struct {
	mu sync.Mutex

	cfg    Config
	rng    *rand.Rand
	logger *slog.Logger
	newID  func() string

	state     State
	body      *body
	food      Position
	hasFood   bool
	direction Direction
	pending   Direction
	score     int
	highScore int
	speed     time.Duration
	ticks     uint64
	gameID    string
}

// Option customizes an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for lifecycle events.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithRand overrides the food placement RNG. Config.Seed is ignored when set.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// WithIDGenerator overrides how game IDs are minted.
func WithIDGenerator(fn func() string) Option {
	return func(e *Engine) {
		e.newID = fn
	}
}

// NewEngine validates cfg and returns an engine in the NotStarted state with
// the starting board already laid out.
func NewEngine(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:    cfg,
		logger: slog.Default(),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = newRand(cfg.Seed)
	}

	e.layoutLocked()
	e.state = NotStarted
	return e, nil
}

// layoutLocked re-initializes every per-game field. The high score is untouched.
func (e *Engine) layoutLocked() {
	e.body = newBody(e.cfg.GridSize, e.cfg.Start)
	e.food = e.cfg.StartFood
	e.hasFood = true
	e.direction = Right
	e.pending = Right
	e.score = 0
	e.speed = e.cfg.InitialSpeed
	e.ticks = 0
	e.gameID = e.newID()
}

// Start leaves NotStarted. It has no effect in any other state.
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.startLocked()
}

func (e *Engine) startLocked() {
	if e.state != NotStarted {
		return
	}
	e.state = Running
	e.logger.Info("game started", "game_id", e.gameID)
}

// Reset lays out a fresh board and enters Running. The high score survives.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.resetLocked()
}

func (e *Engine) resetLocked() {
	previous := e.gameID
	e.layoutLocked()
	e.state = Running
	e.logger.Info("game reset", "game_id", e.gameID, "previous_game_id", previous, "high_score", e.highScore)
}

// ResetHighScore clears the session high score and starts a new game.
func (e *Engine) ResetHighScore() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.highScore = 0
	e.resetLocked()
}

// TogglePause switches between Running and Paused.
func (e *Engine) TogglePause() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.togglePauseLocked()
}

func (e *Engine) togglePauseLocked() {
	switch e.state {
	case Running:
		e.state = Paused
	case Paused:
		e.state = Running
	default:
		return
	}
	e.logger.Debug("pause toggled", "game_id", e.gameID, "state", e.state)
}

// QueueDirection stores d for the next tick. It is ignored when d reverses the
// committed direction, or when no game is in progress. The result reports
// whether the request was stored.
func (e *Engine) QueueDirection(d Direction) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.queueLocked(d)
}

func (e *Engine) queueLocked(d Direction) bool {
	if !d.Valid() {
		return false
	}
	if e.state != Running && e.state != Paused {
		return false
	}
	if d == e.direction.Opposite() {
		return false
	}
	e.pending = d
	return true
}

// Apply resolves a player action against the current state.
func (e *Engine) Apply(a Action) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.applyLocked(a)
}

func (e *Engine) applyLocked(a Action) {
	if d, ok := a.Direction(); ok {
		e.queueLocked(d)
		return
	}

	switch a {
	case ActionPause:
		switch e.state {
		case NotStarted:
			e.startLocked()
		case GameOver:
			e.resetLocked()
		default:
			e.togglePauseLocked()
		}
	case ActionConfirm:
		switch e.state {
		case NotStarted:
			e.startLocked()
		case GameOver:
			e.resetLocked()
		}
	case ActionNewGame:
		e.resetLocked()
	case ActionResetScore:
		e.highScore = 0
		e.resetLocked()
	}
}

// Tick advances the snake by one cell. It does nothing unless the engine is Running.
func (e *Engine) Tick() Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != Running {
		return OutcomeSkipped
	}

	e.ticks++
	e.direction = e.pending
	head := e.body.head().Step(e.direction)

	if !head.Within(e.cfg.GridSize) {
		return e.endLocked(OutcomeWallCollision)
	}
	if e.body.occupied(head) {
		return e.endLocked(OutcomeSelfCollision)
	}

	e.body.pushHead(head)

	if !e.hasFood || head != e.food {
		e.body.popTail()
		return OutcomeMoved
	}

	e.score += e.cfg.FoodReward
	e.speed = max(e.cfg.MinSpeed, e.speed-e.cfg.SpeedStep)

	food, ok := placeFood(e.rng, e.body)
	if !ok {
		e.hasFood = false
		return e.endLocked(OutcomeBoardFull)
	}
	e.food = food
	return OutcomeAte
}

func (e *Engine) endLocked(reason Outcome) Outcome {
	e.state = GameOver
	if e.score > e.highScore {
		e.highScore = e.score
	}
	e.logger.Info("game over",
		"game_id", e.gameID,
		"reason", reason,
		"score", e.score,
		"high_score", e.highScore,
		"length", e.body.len(),
		"ticks", e.ticks,
	)
	return reason
}

// State returns the current lifecycle phase.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Speed returns the interval the next tick should be scheduled after.
func (e *Engine) Speed() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.speed
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}

// Snapshot returns a copy of the game for rendering.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	return Snapshot{
		GameID:    e.gameID,
		GridSize:  e.cfg.GridSize,
		Snake:     e.body.clone(),
		Food:      e.food,
		HasFood:   e.hasFood,
		Direction: e.direction,
		Score:     e.score,
		HighScore: e.highScore,
		Speed:     e.speed,
		State:     e.state,
		Ticks:     e.ticks,
	}
}
