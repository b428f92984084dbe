package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/linetrace-api/puzzle"
	"github.com/beka-birhanu/linetrace-api/puzzle/maze"
	"github.com/beka-birhanu/linetrace-api/puzzle/rules"
	"github.com/beka-birhanu/linetrace-api/service/i"
	"github.com/google/uuid"
)

const (
	defaultMaxDimension   = 99
	defaultDailyDimension = 21
	dailyKeyLayout        = "2006-01-02"
)

// Puzzle service errors.
var (
	ErrDimensionTooLarge = errors.New("requested dimensions exceed the maximum")
	ErrNoSolution        = errors.New("puzzle has no recorded solution")
)

// PuzzlesOptions tunes the puzzle service.
type PuzzlesOptions struct {
	// MaxDimension caps requested widths and heights. Zero or negative
	// falls back to the default of 99.
	MaxDimension int

	// DailyWidth and DailyHeight size the shared daily puzzle. Zero
	// falls back to 21x21.
	DailyWidth  int
	DailyHeight int

	// RequiredPoints for the daily puzzle. Zero falls back to the
	// placement default; negative means none.
	RequiredPoints int

	// Rules configures validation adjacency and tolerance.
	Rules rules.Options
}

// Puzzles implements i.PuzzleService on top of the snapshot repo, the
// user repo, the leaderboard and the daily store.
type Puzzles struct {
	repo        i.PuzzleRepo
	users       i.UserRepo
	leaderboard i.Leaderboard
	daily       i.DailyPuzzleStore
	logger      i.Logger
	opts        *PuzzlesOptions
}

// NewPuzzles creates the puzzle application service. The user repo,
// leaderboard and daily store may each be nil, disabling the feature
// they back.
func NewPuzzles(repo i.PuzzleRepo, users i.UserRepo, leaderboard i.Leaderboard, daily i.DailyPuzzleStore, logger i.Logger, opts *PuzzlesOptions) (*Puzzles, error) {
	if repo == nil || logger == nil {
		return nil, errors.New("puzzle service requires a repo and logger")
	}

	if opts == nil {
		opts = &PuzzlesOptions{}
	}
	if opts.MaxDimension <= 0 {
		opts.MaxDimension = defaultMaxDimension
	}
	if opts.DailyWidth <= 0 {
		opts.DailyWidth = defaultDailyDimension
	}
	if opts.DailyHeight <= 0 {
		opts.DailyHeight = defaultDailyDimension
	}

	return &Puzzles{
		repo:        repo,
		users:       users,
		leaderboard: leaderboard,
		daily:       daily,
		logger:      logger,
		opts:        opts,
	}, nil
}

// Create generates a puzzle, persists its snapshot and returns it.
func (s *Puzzles) Create(ctx context.Context, width, height, requiredPoints int) (*puzzle.Snapshot, error) {
	if max(width, height) > s.opts.MaxDimension {
		return nil, ErrDimensionTooLarge
	}

	p, err := puzzle.New(puzzle.Config{
		Width:          width,
		Height:         height,
		RequiredPoints: requiredPoints,
		Rules:          s.opts.Rules,
	})
	if err != nil {
		return nil, err
	}

	if p.Solution == nil {
		// Cannot happen for a perfect maze, but surfaced rather than
		// stored silently.
		s.logger.Warning(fmt.Sprintf("puzzle %s generated without a solution", p.ID))
	}

	snapshot := p.Snapshot()
	if err := s.repo.Save(ctx, snapshot); err != nil {
		return nil, err
	}

	s.logger.Info(fmt.Sprintf("created puzzle %s (%dx%d, %d required)",
		p.ID, snapshot.Width, snapshot.Height, len(snapshot.Required)))
	return snapshot, nil
}

// Get fetches a stored puzzle snapshot.
func (s *Puzzles) Get(ctx context.Context, id uuid.UUID) (*puzzle.Snapshot, error) {
	return s.repo.ByID(ctx, id)
}

// Solution returns the reference solution of a stored puzzle.
func (s *Puzzles) Solution(ctx context.Context, id uuid.UUID) ([]maze.Position, error) {
	snapshot, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if snapshot.Solution == nil {
		return nil, ErrNoSolution
	}
	return snapshot.Solution, nil
}

// Attempt judges a player path against a stored puzzle. A passing
// verdict is recorded on the leaderboard and the player's solve
// count; the verdict itself is returned either way.
func (s *Puzzles) Attempt(ctx context.Context, id uuid.UUID, player string, path []maze.Position) (rules.Verdict, error) {
	snapshot, err := s.repo.ByID(ctx, id)
	if err != nil {
		return rules.Verdict{}, err
	}

	p, err := puzzle.FromSnapshot(snapshot, s.opts.Rules)
	if err != nil {
		return rules.Verdict{}, err
	}

	verdict := p.Validate(path)
	if verdict.Passed && player != "" {
		s.recordSolve(ctx, player)
	}
	return verdict, nil
}

// recordSolve credits a passing attempt on the leaderboard and the
// player's persistent solve count. Bookkeeping failures are logged,
// never surfaced; the verdict already stands.
func (s *Puzzles) recordSolve(ctx context.Context, player string) {
	if s.leaderboard != nil {
		if err := s.leaderboard.RecordSolve(ctx, player); err != nil {
			s.logger.Error(fmt.Sprintf("recording solve for %s: %v", player, err))
		}
	}

	if s.users == nil {
		return
	}
	user, err := s.users.ByUsername(player)
	if err != nil {
		s.logger.Error(fmt.Sprintf("loading user %s to credit a solve: %v", player, err))
		return
	}
	user.Solved++
	if err := s.users.Save(user); err != nil {
		s.logger.Error(fmt.Sprintf("saving solve count for %s: %v", player, err))
	}
}

// Daily returns the shared puzzle of the day, generating and storing
// it when this instance is the first to ask.
func (s *Puzzles) Daily(ctx context.Context) (*puzzle.Snapshot, error) {
	if s.daily == nil {
		return nil, errors.New("daily puzzles are not configured")
	}

	day := time.Now().UTC().Format(dailyKeyLayout)
	return s.daily.GetOrCreate(ctx, day, func() (*puzzle.Snapshot, error) {
		p, err := puzzle.New(puzzle.Config{
			Width:          s.opts.DailyWidth,
			Height:         s.opts.DailyHeight,
			RequiredPoints: s.opts.RequiredPoints,
			Rules:          s.opts.Rules,
		})
		if err != nil {
			return nil, err
		}

		snapshot := p.Snapshot()
		if err := s.repo.Save(ctx, snapshot); err != nil {
			return nil, err
		}
		s.logger.Info(fmt.Sprintf("generated daily puzzle %s for %s", p.ID, day))
		return snapshot, nil
	})
}

// TopSolvers lists the leaderboard, best first.
func (s *Puzzles) TopSolvers(ctx context.Context, n int64) ([]i.Score, error) {
	if s.leaderboard == nil {
		return nil, errors.New("leaderboard is not configured")
	}
	return s.leaderboard.Top(ctx, n)
}
