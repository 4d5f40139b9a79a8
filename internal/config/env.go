// Package config loads service settings from the environment.
package config

import (
	"fmt"
	"log/slog"

	"github.com/kelseyhightower/envconfig"
)

type Env struct {
	HTTPHost   string `envconfig:"HTTP_HOST" default:""`
	HTTPPort   string `envconfig:"HTTP_PORT" default:"8080"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
	DBPath     string `envconfig:"DB_PATH" default:"./data/kanban.db"`
	SeedSample bool   `envconfig:"SEED_SAMPLE" default:"true"`
}

const namespace = "KANBAN"

func LoadEnv() (*Env, error) {
	var env Env
	if err := envconfig.Process(namespace, &env); err != nil {
		return nil, fmt.Errorf("failed to load env: %w", err)
	}
	return &env, nil
}

// Addr is the listen address for the HTTP server.
func (e *Env) Addr() string {
	return e.HTTPHost + ":" + e.HTTPPort
}

// SlogLevel parses LogLevel, falling back to info for unknown values.
func (e *Env) SlogLevel() slog.Level {
	if e == nil {
		return slog.LevelInfo
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(e.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
