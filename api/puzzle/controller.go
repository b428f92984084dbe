package puzzleapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/beka-birhanu/linetrace-api/api/identity"
	"github.com/beka-birhanu/linetrace-api/puzzle/maze"
	"github.com/beka-birhanu/linetrace-api/service"
	"github.com/beka-birhanu/linetrace-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultLeaderboardSize = 10

// Controller serves puzzle creation, retrieval and attempt judgment.
type Controller struct {
	puzzleService i.PuzzleService
}

// NewController initializes a puzzle Controller.
func NewController(ps i.PuzzleService) (*Controller, error) {
	if ps == nil {
		return nil, errors.New("puzzle controller requires a puzzle service")
	}
	return &Controller{
		puzzleService: ps,
	}, nil
}

// RegisterPublic registers public routes.
func (pc *Controller) RegisterPublic(route *gin.RouterGroup) {}

// RegisterProtected registers protected routes.
func (pc *Controller) RegisterProtected(route *gin.RouterGroup) {
	puzzles := route.Group("/puzzles")
	{
		puzzles.POST("/", pc.create)
		puzzles.GET("/daily", pc.daily)
		puzzles.GET("/:ID", pc.get)
		puzzles.GET("/:ID/solution", pc.solution)
		puzzles.POST("/:ID/attempts", pc.attempt)
	}
	route.GET("/leaderboard", pc.leaderboard)
}

// lookupFailure writes the response for a failed snapshot lookup.
// Missing puzzles and missing solutions are the client's problem;
// anything else is a storage failure and stays opaque.
func lookupFailure(ctx *gin.Context, err error) {
	if errors.Is(err, i.ErrPuzzleNotFound) || errors.Is(err, service.ErrNoSolution) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "unexpected error"})
}

// create handles puzzle creation requests.
func (pc *Controller) create(ctx *gin.Context) {
	var request CreatePuzzleRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snapshot, err := pc.puzzleService.Create(ctx, request.Width, request.Height, request.RequiredPoints)
	if err != nil {
		if errors.Is(err, service.ErrDimensionTooLarge) || errors.Is(err, maze.ErrDimensionTooSmall) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while creating the puzzle"})
		return
	}

	ctx.JSON(http.StatusCreated, newPuzzleResponse(snapshot))
}

// get retrieves a stored puzzle.
func (pc *Controller) get(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return
	}

	snapshot, err := pc.puzzleService.Get(ctx, id)
	if err != nil {
		lookupFailure(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newPuzzleResponse(snapshot))
}

// solution retrieves the reference solution of a stored puzzle.
func (pc *Controller) solution(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return
	}

	solution, err := pc.puzzleService.Solution(ctx, id)
	if err != nil {
		lookupFailure(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, &SolutionResponse{Solution: solution})
}

// attempt judges a submitted path.
func (pc *Controller) attempt(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return
	}

	var request AttemptRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player := identity.ClaimedUsername(ctx)
	verdict, err := pc.puzzleService.Attempt(ctx, id, player, request.Path)
	if err != nil {
		lookupFailure(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, &VerdictResponse{
		Passed:      verdict.Passed,
		Message:     verdict.Message,
		RuleResults: verdict.RuleResults,
	})
}

// daily serves the shared puzzle of the day.
func (pc *Controller) daily(ctx *gin.Context) {
	snapshot, err := pc.puzzleService.Daily(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while preparing the daily puzzle"})
		return
	}

	ctx.JSON(http.StatusOK, newPuzzleResponse(snapshot))
}

// leaderboard lists the top solvers.
func (pc *Controller) leaderboard(ctx *gin.Context) {
	n := int64(defaultLeaderboardSize)
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		n = parsed
	}

	scores, err := pc.puzzleService.TopSolvers(ctx, n)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while reading the leaderboard"})
		return
	}

	ctx.JSON(http.StatusOK, &LeaderboardResponse{Scores: scores})
}
