/*
Package solver computes reference solutions over maze grids.

Two interchangeable strategies are provided: breadth-first search for
unweighted shortest paths in edge count, and A* with a Euclidean
heuristic. Both walk the grid 4-directionally, treat wall cells as
impassable and report an unreachable end as a nil path.
*/
package solver

import (
	"github.com/beka-birhanu/linetrace-api/puzzle/maze"
)

// steps lists the four axis moves in a fixed order so that expansion
// order, and therefore tie-breaking, is deterministic.
var steps = []maze.Position{
	{Row: -1, Col: 0}, // North
	{Row: 1, Col: 0},  // South
	{Row: 0, Col: 1},  // East
	{Row: 0, Col: -1}, // West
}

// SolveBFS finds the shortest path in edge count from start to end
// using a FIFO frontier. Returns nil when no path exists.
func SolveBFS(g *maze.Grid, start, end maze.Position) []maze.Position {
	if !passable(g, start) || !passable(g, end) {
		return nil
	}

	frontier := []maze.Position{start}
	visited := map[maze.Position]struct{}{start: {}}
	cameFrom := map[maze.Position]maze.Position{}

	for len(frontier) > 0 {
		current := frontier[0]
		frontier = frontier[1:]

		if current == end {
			return reconstruct(cameFrom, start, end)
		}

		for _, delta := range steps {
			next := maze.Position{Row: current.Row + delta.Row, Col: current.Col + delta.Col}
			if !passable(g, next) {
				continue
			}
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = struct{}{}
			cameFrom[next] = current
			frontier = append(frontier, next)
		}
	}

	return nil
}

// SolveAStar finds a path from start to end guided by the Euclidean
// distance heuristic. On equal f-scores the first minimal member found
// in open-set scan order wins. Returns nil when no path exists.
func SolveAStar(g *maze.Grid, start, end maze.Position) []maze.Position {
	if !passable(g, start) || !passable(g, end) {
		return nil
	}

	// The open set is kept as a slice so the scan-order tie-break is
	// stable; membership is mirrored in a map for O(1) lookups.
	open := []maze.Position{start}
	inOpen := map[maze.Position]struct{}{start: {}}
	closed := map[maze.Position]struct{}{}

	gScore := map[maze.Position]float64{start: 0}
	fScore := map[maze.Position]float64{start: start.EuclideanTo(end)}
	cameFrom := map[maze.Position]maze.Position{}

	for len(open) > 0 {
		best := 0
		for i := 1; i < len(open); i++ {
			if fScore[open[i]] < fScore[open[best]] {
				best = i
			}
		}
		current := open[best]
		open = append(open[:best], open[best+1:]...)
		delete(inOpen, current)

		if current == end {
			return reconstruct(cameFrom, start, end)
		}
		closed[current] = struct{}{}

		for _, delta := range steps {
			next := maze.Position{Row: current.Row + delta.Row, Col: current.Col + delta.Col}
			if !passable(g, next) {
				continue
			}
			if _, done := closed[next]; done {
				continue
			}

			tentative := gScore[current] + 1
			if known, seen := gScore[next]; seen && tentative >= known {
				continue
			}

			gScore[next] = tentative
			fScore[next] = tentative + next.EuclideanTo(end)
			cameFrom[next] = current
			if _, queued := inOpen[next]; !queued {
				inOpen[next] = struct{}{}
				open = append(open, next)
			}
		}
	}

	return nil
}

// passable reports whether a position is inside the grid and not a
// wall. Start and end kinds are traversable like plain path cells.
func passable(g *maze.Grid, p maze.Position) bool {
	return g.InBound(p.Row, p.Col) && g.KindAt(p).Passable()
}

// reconstruct walks the predecessor chain back from end to start.
func reconstruct(cameFrom map[maze.Position]maze.Position, start, end maze.Position) []maze.Position {
	path := []maze.Position{end}
	for current := end; current != start; {
		current = cameFrom[current]
		path = append(path, current)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
