package solver

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"svw.info/matchsticks/internal/catalog"
	"svw.info/matchsticks/internal/domain"
	"svw.info/matchsticks/internal/ports"
)

// SingleMoveSolver exhaustively tries every single-stick move of a statement
// and keeps those that make it true.
type SingleMoveSolver struct {
	Catalog *catalog.Catalog
	// Workers > 1 searches source positions concurrently.
	Workers int
	Logger  *slog.Logger
}

func NewSingleMoveSolver(c *catalog.Catalog) *SingleMoveSolver {
	return &SingleMoveSolver{Catalog: c, Workers: 1}
}

// partial is the outcome of searching from one source position.
type partial struct {
	moves   []domain.Move
	nodes   int
	invalid int
}

// Solve returns the repairing moves ordered by source, destination and the
// replacement codes. Moves sharing those four fields are reported once, with
// the first statement found. Candidates that fail to evaluate are skipped;
// only a statement evaluating to boolean true counts, never a bare number.
func (s *SingleMoveSolver) Solve(ctx context.Context, e domain.Expression) ([]domain.Move, ports.Stats, error) {
	start := time.Now()
	parts := make([]partial, e.Len())

	if s.Workers > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(s.Workers)
		for src := range e.Len() {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				parts[src] = s.searchFrom(e, src)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, ports.Stats{Duration: time.Since(start)}, err
		}
	} else {
		for src := range e.Len() {
			if err := ctx.Err(); err != nil {
				return nil, ports.Stats{Duration: time.Since(start)}, err
			}
			parts[src] = s.searchFrom(e, src)
		}
	}

	var moves []domain.Move
	nodes, invalid := 0, 0
	for _, p := range parts {
		moves = append(moves, p.moves...)
		nodes += p.nodes
		invalid += p.invalid
	}
	slices.SortFunc(moves, compareMoves)

	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	s.logger().Debug("search",
		"puzzle", e.DisplayCode(),
		"positions", e.Len(),
		"candidates", nodes,
		"invalid", invalid,
		"moves", len(moves),
		"dur", st.Duration,
	)
	return moves, st, nil
}

func (s *SingleMoveSolver) searchFrom(e domain.Expression, src int) partial {
	var p partial
	seen := make(map[domain.MoveKey]struct{})
	for cand := range CandidatesFrom(s.Catalog, e, src) {
		p.nodes++
		v, err := cand.Expr.Evaluate()
		if err != nil {
			p.invalid++
			continue
		}
		if !v.IsTrue() {
			continue
		}
		m := cand.Move()
		if _, dup := seen[m.Key()]; dup {
			continue
		}
		seen[m.Key()] = struct{}{}
		p.moves = append(p.moves, m)
	}
	return p
}

func (s *SingleMoveSolver) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}

func compareMoves(a, b domain.Move) int {
	return cmp.Or(
		cmp.Compare(a.Source, b.Source),
		cmp.Compare(a.Dest, b.Dest),
		cmp.Compare(a.SourceCode, b.SourceCode),
		cmp.Compare(a.DestCode, b.DestCode),
	)
}
