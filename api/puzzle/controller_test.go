package puzzleapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/beka-birhanu/linetrace-api/puzzle"
	"github.com/beka-birhanu/linetrace-api/puzzle/maze"
	"github.com/beka-birhanu/linetrace-api/puzzle/rules"
	"github.com/beka-birhanu/linetrace-api/service"
	"github.com/beka-birhanu/linetrace-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPuzzleService returns canned results so handler tests can focus
// on request parsing and status mapping.
type stubPuzzleService struct {
	snapshot  *puzzle.Snapshot
	createErr error
	lookupErr error
}

func (s *stubPuzzleService) Create(_ context.Context, _, _, _ int) (*puzzle.Snapshot, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.snapshot, nil
}

func (s *stubPuzzleService) Get(_ context.Context, _ uuid.UUID) (*puzzle.Snapshot, error) {
	if s.lookupErr != nil {
		return nil, s.lookupErr
	}
	return s.snapshot, nil
}

func (s *stubPuzzleService) Solution(_ context.Context, _ uuid.UUID) ([]maze.Position, error) {
	if s.lookupErr != nil {
		return nil, s.lookupErr
	}
	return s.snapshot.Solution, nil
}

func (s *stubPuzzleService) Attempt(_ context.Context, _ uuid.UUID, _ string, _ []maze.Position) (rules.Verdict, error) {
	if s.lookupErr != nil {
		return rules.Verdict{}, s.lookupErr
	}
	return rules.Verdict{Passed: true, Message: rules.SuccessMessage}, nil
}

func (s *stubPuzzleService) Daily(_ context.Context) (*puzzle.Snapshot, error) {
	if s.lookupErr != nil {
		return nil, s.lookupErr
	}
	return s.snapshot, nil
}

func (s *stubPuzzleService) TopSolvers(_ context.Context, _ int64) ([]i.Score, error) {
	return nil, nil
}

func newTestRouter(t *testing.T, svc i.PuzzleService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	controller, err := NewController(svc)
	require.NoError(t, err)

	engine := gin.New()
	controller.RegisterProtected(engine.Group("/v1"))
	return engine
}

func serve(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestControllerStatusMapping(t *testing.T) {
	puzzleURL := "/v1/puzzles/" + uuid.NewString()

	t.Run("missing puzzle maps to 404", func(t *testing.T) {
		router := newTestRouter(t, &stubPuzzleService{lookupErr: i.ErrPuzzleNotFound})

		assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, puzzleURL, "").Code)
		assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, puzzleURL+"/solution", "").Code)
		assert.Equal(t, http.StatusNotFound,
			serve(router, http.MethodPost, puzzleURL+"/attempts", `{"path":[{"row":1,"col":1}]}`).Code)
	})

	t.Run("missing solution maps to 404", func(t *testing.T) {
		router := newTestRouter(t, &stubPuzzleService{lookupErr: service.ErrNoSolution})
		assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, puzzleURL+"/solution", "").Code)
	})

	t.Run("storage failures map to 500", func(t *testing.T) {
		router := newTestRouter(t, &stubPuzzleService{lookupErr: errors.New("connection reset")})

		assert.Equal(t, http.StatusInternalServerError, serve(router, http.MethodGet, puzzleURL, "").Code)
		assert.Equal(t, http.StatusInternalServerError, serve(router, http.MethodGet, puzzleURL+"/solution", "").Code)
		assert.Equal(t, http.StatusInternalServerError,
			serve(router, http.MethodPost, puzzleURL+"/attempts", `{"path":[{"row":1,"col":1}]}`).Code)
	})

	t.Run("create distinguishes bad requests from storage failures", func(t *testing.T) {
		tooLarge := newTestRouter(t, &stubPuzzleService{createErr: service.ErrDimensionTooLarge})
		assert.Equal(t, http.StatusBadRequest,
			serve(tooLarge, http.MethodPost, "/v1/puzzles/", `{"width":500,"height":500}`).Code)

		tooSmall := newTestRouter(t, &stubPuzzleService{createErr: maze.ErrDimensionTooSmall})
		assert.Equal(t, http.StatusBadRequest,
			serve(tooSmall, http.MethodPost, "/v1/puzzles/", `{"width":3,"height":3}`).Code)

		broken := newTestRouter(t, &stubPuzzleService{createErr: errors.New("write timeout")})
		assert.Equal(t, http.StatusInternalServerError,
			serve(broken, http.MethodPost, "/v1/puzzles/", `{"width":11,"height":11}`).Code)
	})

	t.Run("malformed puzzle IDs map to 400", func(t *testing.T) {
		router := newTestRouter(t, &stubPuzzleService{})
		assert.Equal(t, http.StatusBadRequest, serve(router, http.MethodGet, "/v1/puzzles/not-a-uuid", "").Code)
	})
}
