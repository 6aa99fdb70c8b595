// Package config reads process settings from MATCHSTICKS_* environment
// variables. Command-line flags override them in cmd/.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings shared by the CLI and the web server.
type Config struct {
	Addr      string `env:"MATCHSTICKS_ADDR"       envDefault:":8080"`
	PuzzleDir string `env:"MATCHSTICKS_PUZZLE_DIR" envDefault:"./puzzles"`
	LogLevel  string `env:"MATCHSTICKS_LOG_LEVEL"  envDefault:"info"`
	Workers   int    `env:"MATCHSTICKS_WORKERS"    envDefault:"1"`
	Lang      string `env:"MATCHSTICKS_LANG"       envDefault:"en"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Level maps debug|info|warn|error to a slog level; anything else is info.
func Level(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
