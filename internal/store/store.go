package store

import (
	"context"
	"errors"

	"kanban/internal/board"
)

// SnapshotKey is the key the board snapshot is stored under.
const SnapshotKey = "kanban-store"

var (
	// ErrNotFound is returned by Get for a key that was never written.
	ErrNotFound = errors.New("key not found")
	// ErrNoSnapshot is returned by LoadSnapshot before the first save.
	ErrNoSnapshot = errors.New("no snapshot stored")
)

// Store defines the interface for data persistence operations.
type Store interface {
	// Raw key-value access
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error

	// Board snapshot
	LoadSnapshot(ctx context.Context) (board.Snapshot, error)
	SaveSnapshot(ctx context.Context, snap board.Snapshot) error

	// Lifecycle
	Close() error
}
