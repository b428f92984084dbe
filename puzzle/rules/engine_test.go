package rules

import (
	"testing"

	"github.com/beka-birhanu/linetrace-api/puzzle/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testContext builds a 5x5 grid with a straight open column:
// (1,1)=Start, (2,1)=Path, (3,1)=End.
func testContext(path []maze.Position) *Context {
	W, P := maze.Wall, maze.Path
	grid := &maze.Grid{
		Width:  5,
		Height: 5,
		Cells: [][]maze.CellKind{
			{W, W, W, W, W},
			{W, maze.Start, W, P, W},
			{W, P, W, P, W},
			{W, maze.End, P, P, W},
			{W, W, W, W, W},
		},
	}
	return &Context{
		Grid:  grid,
		Start: maze.Position{Row: 1, Col: 1},
		End:   maze.Position{Row: 3, Col: 1},
		Path:  path,
	}
}

func straightPath() []maze.Position {
	return []maze.Position{
		{Row: 1, Col: 1},
		{Row: 2, Col: 1},
		{Row: 3, Col: 1},
	}
}

func TestEngineValidate(t *testing.T) {
	engine := NewEngine(Options{})

	t.Run("valid start-to-end path passes", func(t *testing.T) {
		verdict := engine.Validate(testContext(straightPath()))
		assert.True(t, verdict.Passed)
		assert.Equal(t, SuccessMessage, verdict.Message)
		assert.Len(t, verdict.RuleResults, 4)
	})

	t.Run("gap in the path fails continuity with a gap message", func(t *testing.T) {
		verdict := engine.Validate(testContext([]maze.Position{
			{Row: 1, Col: 1},
			{Row: 2, Col: 1},
			{Row: 3, Col: 3}, // not adjacent to the previous step
			{Row: 3, Col: 2},
			{Row: 3, Col: 1},
		}))
		assert.False(t, verdict.Passed)
		assert.Contains(t, verdict.Message, "gap")
	})

	t.Run("missing required point fails and reports the count", func(t *testing.T) {
		ctx := testContext(straightPath())
		ctx.Required = []maze.Position{{Row: 3, Col: 3}}

		verdict := engine.Validate(ctx)
		assert.False(t, verdict.Passed)
		assert.Contains(t, verdict.Message, "1 required point")
	})

	t.Run("empty path fails with a distinct message", func(t *testing.T) {
		verdict := engine.Validate(testContext(nil))
		assert.False(t, verdict.Passed)
		assert.Equal(t, "path is empty", verdict.Message)
	})

	t.Run("all enabled rules are evaluated even after a failure", func(t *testing.T) {
		ctx := testContext(nil)
		ctx.Required = []maze.Position{{Row: 3, Col: 3}}

		verdict := engine.Validate(ctx)
		require.Len(t, verdict.RuleResults, 4)

		failed := 0
		for _, r := range verdict.RuleResults {
			if !r.Passed {
				failed++
			}
		}
		assert.Equal(t, 2, failed, "start_end and required_points both report")
		assert.Equal(t, "path is empty", verdict.Message, "first failure wins the headline")
	})

	t.Run("repeated validation yields identical verdicts", func(t *testing.T) {
		ctx := testContext(straightPath())
		assert.Equal(t, engine.Validate(ctx), engine.Validate(ctx))
	})
}

func TestEngineConfiguration(t *testing.T) {
	t.Run("disabled rules are skipped", func(t *testing.T) {
		engine := NewEngine(Options{})
		engine.Disable(RequiredPointsRuleName)

		ctx := testContext(straightPath())
		ctx.Required = []maze.Position{{Row: 3, Col: 3}}

		verdict := engine.Validate(ctx)
		assert.True(t, verdict.Passed)
		assert.Len(t, verdict.RuleResults, 3)

		engine.Enable(RequiredPointsRuleName)
		assert.False(t, engine.Validate(ctx).Passed)
	})

	t.Run("unknown names are no-ops", func(t *testing.T) {
		engine := NewEngine(Options{})
		engine.Disable("no_such_rule")
		engine.Enable("no_such_rule")
		engine.Remove("no_such_rule")
		assert.Len(t, engine.Rules(), 4)
	})

	t.Run("removed rules no longer report", func(t *testing.T) {
		engine := NewEngine(Options{})
		engine.Remove(ContinuityRuleName)
		assert.Equal(t,
			[]string{StartEndRuleName, WallCollisionRuleName, RequiredPointsRuleName},
			engine.Rules())
	})
}
