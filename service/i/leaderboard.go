package i

import "context"

// Score is one leaderboard row: a player and their solve count.
type Score struct {
	Player string `json:"player"`
	Solved int64  `json:"solved"`
}

// Leaderboard tracks successful solves per player.
type Leaderboard interface {
	// RecordSolve increments the player's solve count.
	RecordSolve(ctx context.Context, player string) error

	// Top returns up to n players ordered by solve count, best first.
	Top(ctx context.Context, n int64) ([]Score, error)
}
