package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DotEnvFile is read from the working directory when present. Its values never
// override variables already set in the process environment.
const DotEnvFile = ".env"

// Load loads configuration from a layered set of sources.
//
// The loading order is:
//  1. Built-in defaults
//  2. .env file (values are only used where the process env is unset)
//  3. YAML config file (explicit path, SNAKE_CONFIG env, ./snake.yaml)
//  4. SNAKE_* environment variable overrides
//  5. Validation
func Load(configPath string) (*Config, error) {
	cfg := Defaults()

	env, err := newEnv(DotEnvFile)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", DotEnvFile, err)
	}

	filePath := discoverConfigFile(configPath, env)
	if filePath != "" {
		if err := loadYAMLFile(filePath, &cfg); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", filePath, err)
		}
	}

	if err := applyEnvOverrides(&cfg, env); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return &cfg, nil
}

// env looks variables up in the process environment, then in a .env file.
type env struct {
	dotenv map[string]string
}

func newEnv(dotenvPath string) (*env, error) {
	values, err := godotenv.Read(dotenvPath)
	if errors.Is(err, fs.ErrNotExist) {
		return &env{dotenv: map[string]string{}}, nil
	}
	if err != nil {
		return nil, err
	}
	return &env{dotenv: values}, nil
}

func (e *env) get(key string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return e.dotenv[key]
}

// discoverConfigFile finds the config file path using the discovery order:
// 1. Explicit configPath argument
// 2. SNAKE_CONFIG environment variable
// 3. ./snake.yaml in the current directory
//
// Returns empty string if no config file is found.
func discoverConfigFile(configPath string, e *env) string {
	if configPath != "" {
		return configPath
	}

	if envPath := e.get("SNAKE_CONFIG"); envPath != "" {
		return envPath
	}

	if _, err := os.Stat("snake.yaml"); err == nil {
		return "snake.yaml"
	}

	return ""
}

// loadYAMLFile reads and parses a YAML file into the Config struct.
// Fields not present in the YAML retain their current (default) values.
func loadYAMLFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// applyEnvOverrides maps SNAKE_* variables onto config fields. A variable that
// is set but malformed is an error rather than silently ignored.
func applyEnvOverrides(cfg *Config, e *env) error {
	var errs []error

	setInt := func(key string, dst *int) {
		if v := e.get(key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = n
		}
	}
	setDuration := func(key string, dst *time.Duration) {
		if v := e.get(key); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = d
		}
	}
	setBool := func(key string, dst *bool) {
		if v := e.get(key); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = b
		}
	}

	setInt("SNAKE_GRID_SIZE", &cfg.Game.GridSize)
	setDuration("SNAKE_INITIAL_SPEED", &cfg.Game.InitialSpeed)
	setDuration("SNAKE_SPEED_STEP", &cfg.Game.SpeedStep)
	setDuration("SNAKE_MIN_SPEED", &cfg.Game.MinSpeed)
	setInt("SNAKE_FOOD_REWARD", &cfg.Game.FoodReward)
	if v := e.get("SNAKE_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("SNAKE_SEED: %w", err))
		} else {
			cfg.Game.Seed = seed
		}
	}

	setBool("SNAKE_SERVER_ENABLED", &cfg.Server.Enabled)
	if v := e.get("SNAKE_SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := e.get("SNAKE_ALLOWED_ORIGINS"); v != "" {
		cfg.Server.AllowedOrigins = splitList(v)
	}

	setBool("SNAKE_METRICS_ENABLED", &cfg.Observability.Metrics.Enabled)
	if v := e.get("SNAKE_METRICS_PATH"); v != "" {
		cfg.Observability.Metrics.Path = v
	}

	setBool("SNAKE_DEBUG_IMGUI", &cfg.Debug.Imgui)
	if v := e.get("SNAKE_LOG_LEVEL"); v != "" {
		cfg.Debug.LogLevel = v
	}

	return errors.Join(errs...)
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
