/*
Package maze provides the grid model and procedural generation for
line-trace puzzles.

A grid is a rectangular lattice of cells, each of which is a wall or
part of the traversable path network. Generation runs a randomized
recursive backtracker over odd-dimensioned grids so that wall cells sit
strictly between path cells on both axes, producing a perfect maze:
exactly one simple route between any two path cells.

Randomness is always injected as a *rand.Rand so generation and point
placement are reproducible under a fixed seed.
*/
package maze

import (
	"errors"
	"math/rand"
	"strings"
	"time"
)

const minDimension = 3

// ErrDimensionTooSmall is returned when a requested grid, after odd
// normalization, cannot host a wall lattice.
var ErrDimensionTooSmall = errors.New("maze dimensions must be at least 3")

// directions lists the four carve directions in a fixed order so that
// generation is fully determined by the injected random source.
var directions = []Position{
	{Row: -1, Col: 0}, // North
	{Row: 1, Col: 0},  // South
	{Row: 0, Col: 1},  // East
	{Row: 0, Col: -1}, // West
}

// Grid is a rectangular lattice of cells. It is built once by Generate
// and treated as immutable afterwards, except for the single start/end
// tagging done by PlacePoints.
type Grid struct {
	Width  int          // Width of the grid (number of columns)
	Height int          // Height of the grid (number of rows)
	Cells  [][]CellKind // Row-major matrix of cell kinds
}

// Generate builds a maze grid of roughly the requested size. Even
// dimensions are normalized to the next odd value up. A nil rng falls
// back to a time-seeded source.
func Generate(width, height int, rng *rand.Rand) (*Grid, error) {
	width = normalizeOdd(width)
	height = normalizeOdd(height)
	if min(width, height) < minDimension {
		return nil, ErrDimensionTooSmall
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	cells := make([][]CellKind, height)
	for i := range cells {
		cells[i] = make([]CellKind, width)
	}

	grid := &Grid{
		Width:  width,
		Height: height,
		Cells:  cells,
	}
	grid.carve(rng)
	return grid, nil
}

// carve runs a randomized recursive backtracker with an explicit
// stack, starting at (1,1). Neighbors sit two cells away so the wall
// cell between them can be opened, keeping the border intact.
func (g *Grid) carve(rng *rand.Rand) {
	start := Position{Row: 1, Col: 1}
	g.Cells[start.Row][start.Col] = Path

	visited := map[Position]struct{}{start: {}}
	stack := []Position{start}

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		candidates := g.unvisitedCarveTargets(current, visited)
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1] // backtrack
			continue
		}

		next := candidates[rng.Intn(len(candidates))]
		between := Position{
			Row: (current.Row + next.Row) / 2,
			Col: (current.Col + next.Col) / 2,
		}
		g.Cells[between.Row][between.Col] = Path
		g.Cells[next.Row][next.Col] = Path

		visited[next] = struct{}{}
		stack = append(stack, next)
	}
}

// unvisitedCarveTargets returns the unvisited cells exactly two steps
// away from pos in each axis direction, strictly inside the border.
func (g *Grid) unvisitedCarveTargets(pos Position, visited map[Position]struct{}) []Position {
	var result []Position
	for _, delta := range directions {
		target := Position{Row: pos.Row + 2*delta.Row, Col: pos.Col + 2*delta.Col}
		if target.Row < 1 || target.Row > g.Height-2 || target.Col < 1 || target.Col > g.Width-2 {
			continue
		}
		if _, seen := visited[target]; !seen {
			result = append(result, target)
		}
	}
	return result
}

// InBound reports whether the given coordinates fall inside the grid.
func (g *Grid) InBound(row, col int) bool {
	return row >= 0 && row < g.Height && col >= 0 && col < g.Width
}

// KindAt returns the kind of the cell at the given position. Positions
// outside the grid read as Wall.
func (g *Grid) KindAt(p Position) CellKind {
	if !g.InBound(p.Row, p.Col) {
		return Wall
	}
	return g.Cells[p.Row][p.Col]
}

// PathCells collects every Path-kind cell in row-major scan order.
func (g *Grid) PathCells() []Position {
	var result []Position
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			if g.Cells[row][col] == Path {
				result = append(result, Position{Row: row, Col: col})
			}
		}
	}
	return result
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([][]CellKind, g.Height)
	for i := range cells {
		cells[i] = make([]CellKind, g.Width)
		copy(cells[i], g.Cells[i])
	}
	return &Grid{
		Width:  g.Width,
		Height: g.Height,
		Cells:  cells,
	}
}

// String provides a textual representation of the grid.
func (g *Grid) String() string {
	var output strings.Builder
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			switch g.Cells[row][col] {
			case Wall:
				output.WriteString("##")
			case Start:
				output.WriteString("S ")
			case End:
				output.WriteString("E ")
			default:
				output.WriteString("  ")
			}
		}
		output.WriteByte('\n')
	}
	return output.String()
}

// normalizeOdd bumps even values to the next odd value upward.
func normalizeOdd(v int) int {
	if v%2 == 0 {
		return v + 1
	}
	return v
}
