package i

import (
	"context"
	"errors"

	"github.com/beka-birhanu/linetrace-api/domain"
	"github.com/beka-birhanu/linetrace-api/puzzle"
	"github.com/google/uuid"
)

// ErrPuzzleNotFound is returned by PuzzleRepo implementations when no
// snapshot exists for an ID, so callers can tell a missing puzzle
// from a storage failure.
var ErrPuzzleNotFound = errors.New("puzzle not found")

// UserRepo defines the interface for user persistence operations.
type UserRepo interface {
	// Save inserts or updates a user in the repository.
	// If the user already exists, it updates the record. Otherwise, it creates a new one.
	Save(user *domain.User) error

	// ByID retrieves a user by their unique ID.
	// Returns an error if the user is not found or in case of an unexpected error.
	ByID(id uuid.UUID) (*domain.User, error)

	// ByUsername retrieves a user by their username.
	// Returns an error if the user is not found or in case of an unexpected error.
	ByUsername(username string) (*domain.User, error)
}

// PuzzleRepo defines the interface for puzzle snapshot persistence.
type PuzzleRepo interface {
	// Save inserts or updates a puzzle snapshot.
	Save(ctx context.Context, snapshot *puzzle.Snapshot) error

	// ByID retrieves a puzzle snapshot by puzzle ID.
	// Returns ErrPuzzleNotFound when the snapshot does not exist, or
	// another error in case of an unexpected failure.
	ByID(ctx context.Context, id uuid.UUID) (*puzzle.Snapshot, error)
}
