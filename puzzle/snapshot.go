package puzzle

import (
	"errors"
	"time"

	"github.com/beka-birhanu/linetrace-api/puzzle/maze"
	"github.com/beka-birhanu/linetrace-api/puzzle/rules"
	"github.com/google/uuid"
)

// ErrMalformedSnapshot is returned when a stored record cannot be
// rebuilt into a puzzle.
var ErrMalformedSnapshot = errors.New("malformed puzzle snapshot")

// Snapshot is the flat persisted form of a puzzle: the cell matrix
// plus placed points and the reference solution. Restoring a snapshot
// is a pure data round-trip; generation never reruns.
type Snapshot struct {
	ID        uuid.UUID         `json:"id" bson:"_id"`
	Width     int               `json:"width" bson:"width"`
	Height    int               `json:"height" bson:"height"`
	Cells     [][]maze.CellKind `json:"cells" bson:"cells"`
	Start     maze.Position     `json:"start" bson:"start"`
	End       maze.Position     `json:"end" bson:"end"`
	Required  []maze.Position   `json:"required,omitempty" bson:"required,omitempty"`
	Solution  []maze.Position   `json:"solution,omitempty" bson:"solution,omitempty"`
	CreatedAt time.Time         `json:"created_at" bson:"createdAt"`
}

// Snapshot captures the puzzle as a flat record. The cell matrix and
// point slices are copied so the snapshot stays valid after the
// puzzle is discarded.
func (p *Puzzle) Snapshot() *Snapshot {
	return &Snapshot{
		ID:        p.ID,
		Width:     p.Grid.Width,
		Height:    p.Grid.Height,
		Cells:     p.Grid.Clone().Cells,
		Start:     p.Start,
		End:       p.End,
		Required:  copyPositions(p.Required),
		Solution:  copyPositions(p.Solution),
		CreatedAt: time.Now().UTC(),
	}
}

// FromSnapshot rebuilds a puzzle from its persisted form without
// re-running generation.
func FromSnapshot(s *Snapshot, opts rules.Options) (*Puzzle, error) {
	if s == nil || s.Width <= 0 || s.Height <= 0 || len(s.Cells) != s.Height {
		return nil, ErrMalformedSnapshot
	}

	cells := make([][]maze.CellKind, s.Height)
	for i, row := range s.Cells {
		if len(row) != s.Width {
			return nil, ErrMalformedSnapshot
		}
		cells[i] = make([]maze.CellKind, s.Width)
		copy(cells[i], row)
	}

	return &Puzzle{
		ID: s.ID,
		Grid: &maze.Grid{
			Width:  s.Width,
			Height: s.Height,
			Cells:  cells,
		},
		Start:    s.Start,
		End:      s.End,
		Required: copyPositions(s.Required),
		Solution: copyPositions(s.Solution),
		engine:   rules.NewEngine(opts),
	}, nil
}

func copyPositions(src []maze.Position) []maze.Position {
	if src == nil {
		return nil
	}
	dst := make([]maze.Position, len(src))
	copy(dst, src)
	return dst
}
