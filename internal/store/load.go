package store

import (
	"context"
	"errors"
	"time"

	"kanban/internal/board"
)

// LoadBoard restores the saved board. A board that was never saved, or was
// saved empty, gets the sample tasks when seed is set.
func LoadBoard(ctx context.Context, s Store, seed bool, now time.Time) (board.State, error) {
	state := board.New(nil)

	snap, err := s.LoadSnapshot(ctx)
	switch {
	case err == nil:
		state = board.FromSnapshot(snap)
	case !errors.Is(err, ErrNoSnapshot):
		return board.State{}, err
	}

	if seed && state.Len() == 0 {
		state = state.Upsert(SampleTasks(now))
	}
	return state, nil
}
