package maze

import (
	"errors"
	"math/rand"
	"time"
)

// DefaultRequiredPoints is the number of mandatory waypoints placed
// when the caller does not ask for a specific count.
const DefaultRequiredPoints = 2

// cornerMargin bounds the start candidate subset: cells within this
// many cells of an edge on both axes are considered corner-ish.
const cornerMargin = 3

// ErrTooFewPathCells is returned when a grid cannot host distinct
// start and end cells. It signals a degenerate maze; callers should
// regenerate.
var ErrTooFewPathCells = errors.New("grid has fewer than 2 path cells")

// Placement holds the anchor cells and mandatory waypoints chosen for
// a grid. Required points are tracked here, out-of-band, so they never
// block pathing through their cells.
type Placement struct {
	Start    Position   `json:"start" bson:"start"`
	End      Position   `json:"end" bson:"end"`
	Required []Position `json:"required,omitempty" bson:"required,omitempty"`
}

// PlacePoints selects start, end and requiredCount waypoints on the
// grid and tags the start/end cells with their kinds. The start is
// drawn from corner-ish path cells, the end is the path cell farthest
// from it by Manhattan distance (first maximal cell in scan order),
// and waypoints are drawn uniformly from the remaining path cells
// until the count is met or candidates run out. A requiredCount of
// zero falls back to DefaultRequiredPoints; a negative count places
// no waypoints at all. A nil rng falls back to a time-seeded source.
func PlacePoints(g *Grid, requiredCount int, rng *rand.Rand) (*Placement, error) {
	cells := g.PathCells()
	if len(cells) < 2 {
		return nil, ErrTooFewPathCells
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	switch {
	case requiredCount == 0:
		requiredCount = DefaultRequiredPoints
	case requiredCount < 0:
		requiredCount = 0
	}

	start := pickStart(g, cells, rng)
	end := pickEnd(cells, start)
	required := pickRequired(cells, start, end, requiredCount, rng)

	g.Cells[start.Row][start.Col] = Start
	g.Cells[end.Row][end.Col] = End

	return &Placement{
		Start:    start,
		End:      end,
		Required: required,
	}, nil
}

// pickStart draws uniformly from the corner-ish candidate subset,
// falling back to the first discovered path cell when no candidate is
// near enough to the edges.
func pickStart(g *Grid, cells []Position, rng *rand.Rand) Position {
	nearEdge := func(v, size int) bool {
		return v <= cornerMargin || v >= size-1-cornerMargin
	}

	var candidates []Position
	for _, c := range cells {
		if nearEdge(c.Row, g.Height) && nearEdge(c.Col, g.Width) {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return cells[0]
	}
	return candidates[rng.Intn(len(candidates))]
}

// pickEnd scans all path cells and keeps the first one maximizing
// Manhattan distance from the start. The tie-break is deterministic
// given scan order, not randomized.
func pickEnd(cells []Position, start Position) Position {
	end := cells[0]
	best := -1
	for _, c := range cells {
		if c == start {
			continue
		}
		if d := start.ManhattanTo(c); d > best {
			best = d
			end = c
		}
	}
	return end
}

// pickRequired draws count distinct path cells, excluding start, end
// and already-chosen cells, until the count is reached or the pool is
// exhausted.
func pickRequired(cells []Position, start, end Position, count int, rng *rand.Rand) []Position {
	pool := make([]Position, 0, len(cells))
	for _, c := range cells {
		if c != start && c != end {
			pool = append(pool, c)
		}
	}

	var required []Position
	for len(required) < count && len(pool) > 0 {
		i := rng.Intn(len(pool))
		required = append(required, pool[i])
		pool[i] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]
	}
	return required
}
