package ports

import (
	"context"
	"errors"
	"time"

	"svw.info/matchsticks/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int // candidate expressions evaluated
	Duration time.Duration
}

// Solver finds every single-stick move that makes a statement true.
type Solver interface {
	Solve(ctx context.Context, e domain.Expression) ([]domain.Move, Stats, error)
}

// Generator creates new puzzles at a target difficulty.
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Validator checks whether a statement holds and which equality signs fail.
type Validator interface {
	Validate(ctx context.Context, e domain.Expression) (ok bool, failing []int, err error)
}

// Hinter reveals part of a solution, up to the given level.
type Hinter interface {
	Hint(ctx context.Context, e domain.Expression, level domain.HintLevel) (domain.Hint, bool, error)
}

// ErrInvalidID is returned by a Library for ids that cannot name a puzzle.
var ErrInvalidID = errors.New("invalid puzzle id")

// Library reads stored puzzles. Load fails with an error wrapping
// os.ErrNotExist for unknown ids.
type Library interface {
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
