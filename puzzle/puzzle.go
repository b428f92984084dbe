/*
Package puzzle assembles line-trace puzzles: a generated maze grid,
placed start/end/waypoint cells, a solver-computed reference solution
and a rules engine to judge player paths against all of it.

Each puzzle owns its grid exclusively. Solving and validation only
read it; a caller wanting a fresh puzzle discards the old one and
builds a new one.
*/
package puzzle

import (
	"math/rand"

	"github.com/beka-birhanu/linetrace-api/puzzle/maze"
	"github.com/beka-birhanu/linetrace-api/puzzle/rules"
	"github.com/beka-birhanu/linetrace-api/puzzle/solver"
	"github.com/google/uuid"
)

// Config holds the parameters for building a new puzzle.
type Config struct {
	Width  int
	Height int
	// RequiredPoints is the number of mandatory waypoints. Zero falls
	// back to maze.DefaultRequiredPoints; negative means none.
	RequiredPoints int
	// Seed fixes the random source; zero draws a time-based seed.
	Seed int64
	// Rules configures adjacency mode and movement tolerance for
	// validation.
	Rules rules.Options
}

// Puzzle is one playable level: the grid, its placed points and the
// reference solution. Solution is nil when the solver found no route,
// which callers may treat as a cue to regenerate.
type Puzzle struct {
	ID       uuid.UUID
	Grid     *maze.Grid
	Start    maze.Position
	End      maze.Position
	Required []maze.Position
	Solution []maze.Position

	engine *rules.Engine
}

// New generates a grid, places its points and computes the reference
// solution with BFS. Generation and placement share one seeded random
// source so a fixed Config.Seed reproduces the exact same puzzle.
func New(cfg Config) (*Puzzle, error) {
	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}

	grid, err := maze.Generate(cfg.Width, cfg.Height, rng)
	if err != nil {
		return nil, err
	}

	placement, err := maze.PlacePoints(grid, cfg.RequiredPoints, rng)
	if err != nil {
		return nil, err
	}

	return &Puzzle{
		ID:       uuid.New(),
		Grid:     grid,
		Start:    placement.Start,
		End:      placement.End,
		Required: placement.Required,
		Solution: solver.SolveBFS(grid, placement.Start, placement.End),
		engine:   rules.NewEngine(cfg.Rules),
	}, nil
}

// Validate judges a player path against the puzzle's grid and placed
// points. Repeated calls on the same path yield identical verdicts.
func (p *Puzzle) Validate(path []maze.Position) rules.Verdict {
	return p.engine.Validate(&rules.Context{
		Grid:     p.Grid,
		Start:    p.Start,
		End:      p.End,
		Required: p.Required,
		Path:     path,
	})
}

// Engine exposes the rules engine so callers can toggle rules for
// variant game modes.
func (p *Puzzle) Engine() *rules.Engine {
	return p.engine
}
