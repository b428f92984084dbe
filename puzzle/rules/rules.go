/*
Package rules validates player-traced paths against a composable set
of rules.

Each rule implements a single Evaluate capability over a shared
context; the engine holds an ordered collection of rules and evaluates
every enabled one, even after a failure, so callers can inspect all
violations rather than just the first.
*/
package rules

import (
	"fmt"

	"github.com/beka-birhanu/linetrace-api/puzzle/maze"
)

// Rule names for the built-in rules; used to enable, disable and
// remove rules on the engine.
const (
	StartEndRuleName       = "start_end"
	ContinuityRuleName     = "continuity"
	WallCollisionRuleName  = "no_wall_collision"
	RequiredPointsRuleName = "required_points"
)

// AdjacencyMode selects the metric used to judge consecutive steps.
type AdjacencyMode uint8

const (
	// FourDirectional treats the four axis neighbors as one step away.
	FourDirectional AdjacencyMode = iota
	// EightDirectional additionally treats diagonal neighbors as one
	// step away, for movement-resolution variants.
	EightDirectional
)

// Options configures the judgment parameters the source left
// ambiguous: adjacency mode and the explicit step-distance tolerance.
type Options struct {
	Adjacency AdjacencyMode
	// Tolerance is the maximum allowed distance between consecutive
	// path positions under the selected metric. Zero means the default
	// of 1 (strict cell-to-cell adjacency).
	Tolerance int
}

func (o Options) tolerance() int {
	if o.Tolerance <= 0 {
		return 1
	}
	return o.Tolerance
}

// Context carries everything a rule may inspect: the grid, the placed
// points and the player path under judgment. Rules only read from it.
type Context struct {
	Grid     *maze.Grid
	Start    maze.Position
	End      maze.Position
	Required []maze.Position
	Path     []maze.Position
}

// Result is the outcome of evaluating one rule.
type Result struct {
	Rule    string `json:"rule"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

// Rule judges one aspect of a player path.
type Rule interface {
	// Name identifies the rule on the engine.
	Name() string
	// Evaluate judges the path in the given context.
	Evaluate(*Context) Result
}

// StartEndRule checks that the path is anchored on the start cell and
// finishes on the end cell.
type StartEndRule struct{}

func (StartEndRule) Name() string { return StartEndRuleName }

func (r StartEndRule) Evaluate(ctx *Context) Result {
	if len(ctx.Path) == 0 {
		return fail(r.Name(), "path is empty")
	}
	if ctx.Path[0] != ctx.Start {
		return fail(r.Name(), "path does not begin on the start cell")
	}
	if ctx.Path[len(ctx.Path)-1] != ctx.End {
		return fail(r.Name(), "path does not finish on the end cell")
	}
	return pass(r.Name())
}

// ContinuityRule checks that every consecutive pair of positions is
// within the configured movement tolerance.
type ContinuityRule struct {
	Opts Options
}

func (ContinuityRule) Name() string { return ContinuityRuleName }

func (r ContinuityRule) Evaluate(ctx *Context) Result {
	for i := 1; i < len(ctx.Path); i++ {
		prev, cur := ctx.Path[i-1], ctx.Path[i]

		var dist int
		switch r.Opts.Adjacency {
		case EightDirectional:
			dist = prev.ChebyshevTo(cur)
		default:
			dist = prev.ManhattanTo(cur)
		}

		if dist > r.Opts.tolerance() {
			return fail(r.Name(), fmt.Sprintf("gap between step %d (%d,%d) and step %d (%d,%d)",
				i-1, prev.Row, prev.Col, i, cur.Row, cur.Col))
		}
	}
	return pass(r.Name())
}

// WallCollisionRule checks that no path position maps to a wall cell
// or falls outside the grid bounds.
type WallCollisionRule struct{}

func (WallCollisionRule) Name() string { return WallCollisionRuleName }

func (r WallCollisionRule) Evaluate(ctx *Context) Result {
	for i, p := range ctx.Path {
		if !ctx.Grid.InBound(p.Row, p.Col) {
			return fail(r.Name(), fmt.Sprintf("step %d (%d,%d) is outside the grid", i, p.Row, p.Col))
		}
		if !ctx.Grid.KindAt(p).Passable() {
			return fail(r.Name(), fmt.Sprintf("step %d (%d,%d) crosses a wall", i, p.Row, p.Col))
		}
	}
	return pass(r.Name())
}

// RequiredPointsRule checks that every required waypoint appears at
// least once among the path positions.
type RequiredPointsRule struct{}

func (RequiredPointsRule) Name() string { return RequiredPointsRuleName }

func (r RequiredPointsRule) Evaluate(ctx *Context) Result {
	onPath := make(map[maze.Position]struct{}, len(ctx.Path))
	for _, p := range ctx.Path {
		onPath[p] = struct{}{}
	}

	missing := 0
	for _, req := range ctx.Required {
		if _, ok := onPath[req]; !ok {
			missing++
		}
	}
	if missing > 0 {
		return fail(r.Name(), fmt.Sprintf("%d required point(s) not visited", missing))
	}
	return pass(r.Name())
}

func pass(name string) Result {
	return Result{Rule: name, Passed: true, Message: "ok"}
}

func fail(name, message string) Result {
	return Result{Rule: name, Passed: false, Message: message}
}
