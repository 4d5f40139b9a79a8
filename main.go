package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"kanban/internal/config"
	"kanban/internal/handlers"
	"kanban/internal/store"
)

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: env.SlogLevel()}))
	slog.SetDefault(logger)

	if err := run(env, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(env *config.Env, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Ensure data directory exists
	if err := os.MkdirAll(filepath.Dir(env.DBPath), 0755); err != nil {
		return err
	}

	s, err := store.NewSQLiteStore(env.DBPath)
	if err != nil {
		return err
	}
	defer s.Close()

	state, err := store.LoadBoard(ctx, s, env.SeedSample, time.Now())
	if err != nil {
		return err
	}
	logger.Info("board loaded", "tasks", state.Len(), "db", env.DBPath)

	h := handlers.New(s, state, logger)

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	r.Route("/api", func(r chi.Router) {
		r.Get("/board", h.GetBoard)
		r.Put("/filters", h.SetFilters)
		r.Put("/sort", h.SetSort)
		r.Post("/clear", h.ClearAll)

		r.Get("/tasks", h.ListTasks)
		r.Post("/tasks", h.CreateTask)
		r.Post("/tasks/reorder", h.ReorderTasks)
		r.Get("/tasks/{id}", h.GetTask)
		r.Patch("/tasks/{id}", h.UpdateTask)
		r.Delete("/tasks/{id}", h.DeleteTask)
		r.Post("/tasks/{id}/status", h.SetTaskStatus)
		r.Post("/tasks/{id}/move", h.MoveTask)

		r.Post("/selection/mode", h.SetSelectionMode)
		r.Post("/selection/toggle/{id}", h.ToggleSelect)
		r.Post("/selection/all", h.SelectAll)
		r.Delete("/selection", h.ClearSelection)
		r.Post("/selection/move", h.BulkMove)
		r.Post("/selection/delete", h.BulkDelete)

		r.Get("/export", h.Export)
		r.Post("/import", h.Import)
	})

	srv := &http.Server{
		Addr:              env.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
