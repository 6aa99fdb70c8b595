package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{Addr: ":8080", PuzzleDir: "./puzzles", LogLevel: "info", Workers: 1, Lang: "en"}, cfg)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MATCHSTICKS_ADDR", "127.0.0.1:9000")
	t.Setenv("MATCHSTICKS_WORKERS", "4")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, 4, cfg.Workers)
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("MATCHSTICKS_WORKERS", "many")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, Level("DEBUG"))
	assert.Equal(t, slog.LevelWarn, Level("warn"))
	assert.Equal(t, slog.LevelError, Level(" error "))
	assert.Equal(t, slog.LevelInfo, Level("chatty"))
}
