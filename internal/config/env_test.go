package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv_Defaults(t *testing.T) {
	env, err := LoadEnv()
	require.NoError(t, err)

	assert.Equal(t, "8080", env.HTTPPort)
	assert.Equal(t, ":8080", env.Addr())
	assert.Equal(t, "./data/kanban.db", env.DBPath)
	assert.True(t, env.SeedSample)
	assert.Equal(t, slog.LevelInfo, env.SlogLevel())
}

func TestLoadEnv_Overrides(t *testing.T) {
	t.Setenv("KANBAN_HTTP_HOST", "127.0.0.1")
	t.Setenv("KANBAN_HTTP_PORT", "9000")
	t.Setenv("KANBAN_DB_PATH", "/tmp/board.db")
	t.Setenv("KANBAN_LOG_LEVEL", "debug")
	t.Setenv("KANBAN_SEED_SAMPLE", "false")

	env, err := LoadEnv()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", env.Addr())
	assert.Equal(t, "/tmp/board.db", env.DBPath)
	assert.False(t, env.SeedSample)
	assert.Equal(t, slog.LevelDebug, env.SlogLevel())
}

func TestLoadEnv_InvalidBool(t *testing.T) {
	t.Setenv("KANBAN_SEED_SAMPLE", "maybe")

	_, err := LoadEnv()
	assert.Error(t, err)
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			env := &Env{LogLevel: tt.in}
			assert.Equal(t, tt.want, env.SlogLevel())
		})
	}

	var nilEnv *Env
	assert.Equal(t, slog.LevelInfo, nilEnv.SlogLevel())
}
