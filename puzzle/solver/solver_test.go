package solver

import (
	"math/rand"
	"testing"

	"github.com/beka-birhanu/linetrace-api/puzzle/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// corridorGrid builds a 5x5 grid whose only route is the L-shaped
// corridor (1,1)->(3,1)->(3,3).
func corridorGrid() *maze.Grid {
	W, P := maze.Wall, maze.Path
	return &maze.Grid{
		Width:  5,
		Height: 5,
		Cells: [][]maze.CellKind{
			{W, W, W, W, W},
			{W, P, W, P, W},
			{W, P, W, P, W},
			{W, P, P, P, W},
			{W, W, W, W, W},
		},
	}
}

// splitGrid builds a grid with two disconnected path regions.
func splitGrid() *maze.Grid {
	W, P := maze.Wall, maze.Path
	return &maze.Grid{
		Width:  5,
		Height: 5,
		Cells: [][]maze.CellKind{
			{W, W, W, W, W},
			{W, P, W, P, W},
			{W, P, W, P, W},
			{W, P, W, P, W},
			{W, W, W, W, W},
		},
	}
}

func TestSolveBFS(t *testing.T) {
	t.Run("finds the corridor route", func(t *testing.T) {
		start := maze.Position{Row: 1, Col: 1}
		end := maze.Position{Row: 1, Col: 3}

		path := SolveBFS(corridorGrid(), start, end)
		require.NotNil(t, path)
		assert.Equal(t, start, path[0])
		assert.Equal(t, end, path[len(path)-1])
		assert.Len(t, path, 7, "shortest route runs the full corridor")
		assertContinuous(t, path)
	})

	t.Run("returns nil when regions are disconnected", func(t *testing.T) {
		path := SolveBFS(splitGrid(), maze.Position{Row: 1, Col: 1}, maze.Position{Row: 1, Col: 3})
		assert.Nil(t, path)
	})

	t.Run("returns nil for a wall endpoint", func(t *testing.T) {
		path := SolveBFS(corridorGrid(), maze.Position{Row: 0, Col: 0}, maze.Position{Row: 1, Col: 3})
		assert.Nil(t, path)
	})

	t.Run("trivial path when start equals end", func(t *testing.T) {
		p := maze.Position{Row: 1, Col: 1}
		assert.Equal(t, []maze.Position{p}, SolveBFS(corridorGrid(), p, p))
	})
}

func TestSolveAStar(t *testing.T) {
	t.Run("finds the corridor route", func(t *testing.T) {
		start := maze.Position{Row: 1, Col: 1}
		end := maze.Position{Row: 1, Col: 3}

		path := SolveAStar(corridorGrid(), start, end)
		require.NotNil(t, path)
		assert.Equal(t, start, path[0])
		assert.Equal(t, end, path[len(path)-1])
		assertContinuous(t, path)
	})

	t.Run("returns nil when regions are disconnected", func(t *testing.T) {
		path := SolveAStar(splitGrid(), maze.Position{Row: 1, Col: 1}, maze.Position{Row: 1, Col: 3})
		assert.Nil(t, path)
	})
}

// Both strategies must agree on reachability and produce rule-clean
// paths over generated mazes.
func TestSolversAgree(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		rng := rand.New(rand.NewSource(seed))
		grid, err := maze.Generate(17, 13, rng)
		require.NoError(t, err)
		placement, err := maze.PlacePoints(grid, 0, rng)
		require.NoError(t, err)

		bfs := SolveBFS(grid, placement.Start, placement.End)
		astar := SolveAStar(grid, placement.Start, placement.End)

		require.NotNil(t, bfs, "a perfect maze connects all path cells (seed %d)", seed)
		require.NotNil(t, astar, "a perfect maze connects all path cells (seed %d)", seed)

		// In a perfect maze the start-to-end route is unique, so the
		// strategies must return the very same path.
		assert.Equal(t, bfs, astar, "seed %d", seed)

		for _, path := range [][]maze.Position{bfs, astar} {
			assertContinuous(t, path)
			for _, p := range path {
				assert.NotEqual(t, maze.Wall, grid.KindAt(p))
			}
		}
	}
}

func assertContinuous(t *testing.T, path []maze.Position) {
	t.Helper()
	for i := 1; i < len(path); i++ {
		assert.True(t, path[i-1].AdjacentTo(path[i]),
			"steps %d and %d are not adjacent: %v %v", i-1, i, path[i-1], path[i])
	}
}
