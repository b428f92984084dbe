package i

import (
	"context"

	"github.com/beka-birhanu/linetrace-api/puzzle"
)

// DailyPuzzleStore hands out the shared puzzle for a given day,
// creating it at most once across all server instances.
type DailyPuzzleStore interface {
	// GetOrCreate returns the stored snapshot for the day, calling
	// create under a distributed lock when no snapshot exists yet.
	GetOrCreate(ctx context.Context, day string, create func() (*puzzle.Snapshot, error)) (*puzzle.Snapshot, error)
}
