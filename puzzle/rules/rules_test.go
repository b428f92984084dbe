package rules

import (
	"testing"

	"github.com/beka-birhanu/linetrace-api/puzzle/maze"
	"github.com/stretchr/testify/assert"
)

func TestStartEndRule(t *testing.T) {
	rule := StartEndRule{}

	t.Run("wrong anchor cells fail", func(t *testing.T) {
		ctx := testContext([]maze.Position{{Row: 2, Col: 1}, {Row: 3, Col: 1}})
		assert.False(t, rule.Evaluate(ctx).Passed)

		ctx = testContext([]maze.Position{{Row: 1, Col: 1}, {Row: 2, Col: 1}})
		result := rule.Evaluate(ctx)
		assert.False(t, result.Passed)
		assert.Contains(t, result.Message, "finish")
	})

	t.Run("anchored path passes", func(t *testing.T) {
		assert.True(t, rule.Evaluate(testContext(straightPath())).Passed)
	})
}

func TestContinuityRule(t *testing.T) {
	diagonal := []maze.Position{
		{Row: 1, Col: 1},
		{Row: 2, Col: 2},
		{Row: 3, Col: 3},
	}

	t.Run("diagonal steps fail under 4-directional adjacency", func(t *testing.T) {
		rule := ContinuityRule{Opts: Options{Adjacency: FourDirectional}}
		assert.False(t, rule.Evaluate(testContext(diagonal)).Passed)
	})

	t.Run("diagonal steps pass under 8-directional adjacency", func(t *testing.T) {
		rule := ContinuityRule{Opts: Options{Adjacency: EightDirectional}}
		assert.True(t, rule.Evaluate(testContext(diagonal)).Passed)
	})

	t.Run("tolerance widens the allowed step distance", func(t *testing.T) {
		jump := []maze.Position{{Row: 1, Col: 1}, {Row: 3, Col: 1}}
		strict := ContinuityRule{Opts: Options{Tolerance: 1}}
		loose := ContinuityRule{Opts: Options{Tolerance: 2}}

		assert.False(t, strict.Evaluate(testContext(jump)).Passed)
		assert.True(t, loose.Evaluate(testContext(jump)).Passed)
	})

	t.Run("single-step and empty paths pass vacuously", func(t *testing.T) {
		rule := ContinuityRule{}
		assert.True(t, rule.Evaluate(testContext(nil)).Passed)
		assert.True(t, rule.Evaluate(testContext([]maze.Position{{Row: 1, Col: 1}})).Passed)
	})
}

func TestWallCollisionRule(t *testing.T) {
	rule := WallCollisionRule{}

	t.Run("wall cell fails", func(t *testing.T) {
		ctx := testContext([]maze.Position{{Row: 1, Col: 1}, {Row: 1, Col: 2}})
		result := rule.Evaluate(ctx)
		assert.False(t, result.Passed)
		assert.Contains(t, result.Message, "wall")
	})

	t.Run("out-of-bounds position fails", func(t *testing.T) {
		ctx := testContext([]maze.Position{{Row: 1, Col: 1}, {Row: 1, Col: -1}})
		result := rule.Evaluate(ctx)
		assert.False(t, result.Passed)
		assert.Contains(t, result.Message, "outside")
	})

	t.Run("open route passes", func(t *testing.T) {
		assert.True(t, rule.Evaluate(testContext(straightPath())).Passed)
	})
}

func TestRequiredPointsRule(t *testing.T) {
	rule := RequiredPointsRule{}

	t.Run("reports how many points are still missing", func(t *testing.T) {
		ctx := testContext(straightPath())
		ctx.Required = []maze.Position{{Row: 3, Col: 2}, {Row: 3, Col: 3}}

		result := rule.Evaluate(ctx)
		assert.False(t, result.Passed)
		assert.Contains(t, result.Message, "2 required point(s)")
	})

	t.Run("visited points satisfy the rule", func(t *testing.T) {
		ctx := testContext(straightPath())
		ctx.Required = []maze.Position{{Row: 2, Col: 1}}
		assert.True(t, rule.Evaluate(ctx).Passed)
	})

	t.Run("no required points passes vacuously", func(t *testing.T) {
		assert.True(t, rule.Evaluate(testContext(straightPath())).Passed)
	})
}
