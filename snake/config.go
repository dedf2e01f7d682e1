package snake

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned by Config.Validate and NewEngine.
var ErrInvalidConfig = errors.New("invalid snake config")

// Config holds the tunables of a game. DefaultConfig matches the classic board.
type Config struct {
	GridSize     int           `yaml:"grid_size"`
	InitialSpeed time.Duration `yaml:"initial_speed"`
	SpeedStep    time.Duration `yaml:"speed_step"`
	MinSpeed     time.Duration `yaml:"min_speed"`
	FoodReward   int           `yaml:"food_reward"`
	Start        Position      `yaml:"start"`
	StartFood    Position      `yaml:"start_food"`

	// Seed makes food placement reproducible when non-zero.
	Seed uint64 `yaml:"seed"`
}

const (
	DefaultGridSize     = 12
	DefaultInitialSpeed = 250 * time.Millisecond
	DefaultSpeedStep    = 3 * time.Millisecond
	DefaultMinSpeed     = 50 * time.Millisecond
	DefaultFoodReward   = 10

	// MaxGridSize bounds the board side length.
	MaxGridSize = 1024
)

// DefaultConfig returns the standard 12x12 game.
func DefaultConfig() Config {
	return Config{
		GridSize:     DefaultGridSize,
		InitialSpeed: DefaultInitialSpeed,
		SpeedStep:    DefaultSpeedStep,
		MinSpeed:     DefaultMinSpeed,
		FoodReward:   DefaultFoodReward,
		Start:        Position{X: 6, Y: 6},
		StartFood:    Position{X: 9, Y: 9},
	}
}

// Cells is the number of cells on the board.
func (c Config) Cells() int {
	return c.GridSize * c.GridSize
}

// Validate checks that the config describes a playable board.
func (c Config) Validate() error {
	switch {
	case c.GridSize < 2:
		return fmt.Errorf("%w: grid_size must be at least 2, got %d", ErrInvalidConfig, c.GridSize)
	case c.GridSize > MaxGridSize:
		return fmt.Errorf("%w: grid_size must be at most %d, got %d", ErrInvalidConfig, MaxGridSize, c.GridSize)
	case c.InitialSpeed <= 0:
		return fmt.Errorf("%w: initial_speed must be positive", ErrInvalidConfig)
	case c.MinSpeed <= 0 || c.MinSpeed > c.InitialSpeed:
		return fmt.Errorf("%w: min_speed must be in (0, initial_speed], got %s", ErrInvalidConfig, c.MinSpeed)
	case c.SpeedStep < 0:
		return fmt.Errorf("%w: speed_step must not be negative", ErrInvalidConfig)
	case c.FoodReward <= 0:
		return fmt.Errorf("%w: food_reward must be positive", ErrInvalidConfig)
	case !c.Start.Within(c.GridSize):
		return fmt.Errorf("%w: start %v is outside the grid", ErrInvalidConfig, c.Start)
	case !c.StartFood.Within(c.GridSize):
		return fmt.Errorf("%w: start_food %v is outside the grid", ErrInvalidConfig, c.StartFood)
	case c.Start == c.StartFood:
		return fmt.Errorf("%w: start_food overlaps the start segment", ErrInvalidConfig)
	}
	return nil
}
