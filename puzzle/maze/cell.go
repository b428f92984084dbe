package maze

import "math"

// CellKind is the single role a grid cell plays. Every cell holds
// exactly one kind; Start and End are tagged during point placement.
type CellKind uint8

const (
	Wall CellKind = iota // Impassable cell.
	Path                 // Traversable cell.
	Start                // The unique anchor cell a trace must begin on.
	End                  // The unique anchor cell a trace must finish on.
)

// String returns a human-readable name for the cell kind.
func (k CellKind) String() string {
	switch k {
	case Wall:
		return "wall"
	case Path:
		return "path"
	case Start:
		return "start"
	case End:
		return "end"
	default:
		return "unknown"
	}
}

// Passable reports whether a trace may occupy a cell of this kind.
func (k CellKind) Passable() bool {
	return k != Wall
}

// Position represents the position of a cell in the grid.
type Position struct {
	Row int `json:"row" bson:"row"`
	Col int `json:"col" bson:"col"`
}

// ManhattanTo returns the Manhattan distance to another position.
func (p Position) ManhattanTo(o Position) int {
	return abs(p.Row-o.Row) + abs(p.Col-o.Col)
}

// ChebyshevTo returns the Chebyshev distance to another position.
// Under this metric all eight surrounding cells are at distance one.
func (p Position) ChebyshevTo(o Position) int {
	return max(abs(p.Row-o.Row), abs(p.Col-o.Col))
}

// EuclideanTo returns the straight-line distance to another position.
func (p Position) EuclideanTo(o Position) float64 {
	dr := float64(p.Row - o.Row)
	dc := float64(p.Col - o.Col)
	return math.Sqrt(dr*dr + dc*dc)
}

// AdjacentTo reports whether the other position is a single
// 4-directional step away.
func (p Position) AdjacentTo(o Position) bool {
	return p.ManhattanTo(o) == 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
