// Package config provides unified configuration for the snake binaries.
//
// Configuration is loaded with a layered approach:
//  1. Built-in defaults
//  2. .env file in the working directory (optional)
//  3. YAML config file (discovered or explicitly specified)
//  4. Environment variable overrides (SNAKE_ prefix)
//  5. Validation
package config

import (
	"log/slog"

	"github.com/plus3/snake/snake"
)

// Config holds all configuration for a snake process.
type Config struct {
	Game          snake.Config        `yaml:"game"`
	Server        ServerConfig        `yaml:"server"`
	Observability ObservabilityConfig `yaml:"observability"`
	Debug         DebugConfig         `yaml:"debug"`
}

// ServerConfig holds the spectator HTTP server settings.
type ServerConfig struct {
	Enabled        bool     `yaml:"enabled"`         // default: false
	Addr           string   `yaml:"addr"`            // default: ":8080"
	AllowedOrigins []string `yaml:"allowed_origins"` // default: ["*"]
}

// ObservabilityConfig holds monitoring settings.
type ObservabilityConfig struct {
	Metrics MetricsConfig `yaml:"metrics"`
}

// MetricsConfig holds Prometheus metrics endpoint settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"` // default: true
	Path    string `yaml:"path"`    // default: "/metrics"
}

// DebugConfig holds developer tooling settings.
type DebugConfig struct {
	Imgui    bool   `yaml:"imgui"`     // default: false
	LogLevel string `yaml:"log_level"` // debug, info, warn, error; default: "info"
}

// Level parses LogLevel.
func (d DebugConfig) Level() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(d.LogLevel))
	return level, err
}

// Defaults returns a Config populated with all default values.
func Defaults() Config {
	return Config{
		Game: snake.DefaultConfig(),
		Server: ServerConfig{
			Addr:           ":8080",
			AllowedOrigins: []string{"*"},
		},
		Observability: ObservabilityConfig{
			Metrics: MetricsConfig{
				Enabled: true,
				Path:    "/metrics",
			},
		},
		Debug: DebugConfig{
			LogLevel: "info",
		},
	}
}
