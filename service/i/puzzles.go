package i

import (
	"context"

	"github.com/beka-birhanu/linetrace-api/puzzle"
	"github.com/beka-birhanu/linetrace-api/puzzle/maze"
	"github.com/beka-birhanu/linetrace-api/puzzle/rules"
	"github.com/google/uuid"
)

// PuzzleService is the application surface for creating, fetching and
// judging puzzles.
type PuzzleService interface {
	// Create generates and persists a fresh puzzle.
	Create(ctx context.Context, width, height, requiredPoints int) (*puzzle.Snapshot, error)

	// Get fetches a stored puzzle by ID.
	Get(ctx context.Context, id uuid.UUID) (*puzzle.Snapshot, error)

	// Solution returns the reference solution for a stored puzzle.
	Solution(ctx context.Context, id uuid.UUID) ([]maze.Position, error)

	// Attempt judges a player path against a stored puzzle and records
	// a leaderboard solve when the verdict passes.
	Attempt(ctx context.Context, id uuid.UUID, player string, path []maze.Position) (rules.Verdict, error)

	// Daily returns the shared puzzle of the day.
	Daily(ctx context.Context) (*puzzle.Snapshot, error)

	// TopSolvers lists the leaderboard, best first.
	TopSolvers(ctx context.Context, n int64) ([]Score, error)
}
