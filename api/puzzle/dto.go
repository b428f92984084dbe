// Package puzzleapi provides structures and utilities for serving
// puzzles and judging submitted traces.
package puzzleapi

import (
	"github.com/beka-birhanu/linetrace-api/puzzle"
	"github.com/beka-birhanu/linetrace-api/puzzle/maze"
	"github.com/beka-birhanu/linetrace-api/puzzle/rules"
	"github.com/beka-birhanu/linetrace-api/service/i"
	"github.com/google/uuid"
)

// CreatePuzzleRequest asks for a fresh puzzle of the given size.
// An omitted or zero required_points gets the default waypoint count;
// a negative value asks for a puzzle without waypoints.
type CreatePuzzleRequest struct {
	Width          int `json:"width" binding:"required,min=3"`
	Height         int `json:"height" binding:"required,min=3"`
	RequiredPoints int `json:"required_points"`
}

// PuzzleResponse is the playable view of a puzzle. The reference
// solution is never included; clients fetch it explicitly.
type PuzzleResponse struct {
	ID       uuid.UUID         `json:"id"`
	Width    int               `json:"width"`
	Height   int               `json:"height"`
	Cells    [][]maze.CellKind `json:"cells"`
	Start    maze.Position     `json:"start"`
	End      maze.Position     `json:"end"`
	Required []maze.Position   `json:"required,omitempty"`
}

// newPuzzleResponse strips the solution from a snapshot.
func newPuzzleResponse(s *puzzle.Snapshot) *PuzzleResponse {
	return &PuzzleResponse{
		ID:       s.ID,
		Width:    s.Width,
		Height:   s.Height,
		Cells:    s.Cells,
		Start:    s.Start,
		End:      s.End,
		Required: s.Required,
	}
}

// SolutionResponse carries the reference solution path.
type SolutionResponse struct {
	Solution []maze.Position `json:"solution"`
}

// AttemptRequest carries a player-traced path for judgment.
type AttemptRequest struct {
	Path []maze.Position `json:"path" binding:"required"`
}

// VerdictResponse mirrors the rules engine verdict.
type VerdictResponse struct {
	Passed      bool           `json:"passed"`
	Message     string         `json:"message"`
	RuleResults []rules.Result `json:"rule_results"`
}

// LeaderboardResponse lists the top solvers, best first.
type LeaderboardResponse struct {
	Scores []i.Score `json:"scores"`
}
