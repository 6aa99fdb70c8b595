package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"svw.info/matchsticks/internal/domain"
	"svw.info/matchsticks/internal/notation"
	"svw.info/matchsticks/internal/ports"
	"svw.info/matchsticks/internal/solver"
)

const (
	maxAttempts = 32
	maxScored   = 24 // broken variants graded per equation
)

var errNoPuzzle = errors.New("no puzzle could be generated")

type scored struct {
	cand    solver.Candidate
	repairs int
}

// Generate picks a true equation a±b=c, breaks it with one stick move and
// grades the broken variants by how many repairs they admit: easy puzzles
// have the most, hard ones the fewest, expert ones the fewest among moves
// that cross glyphs.
func (g *ReverseMoveGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))
	nodes := 0

	for range maxAttempts {
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		base, err := notation.Parse(g.Catalog, randomEquation(rng))
		if err != nil {
			return nil, ports.Stats{}, err
		}

		// 1) every well-formed false statement one move away
		var broken []solver.Candidate
		seen := map[string]struct{}{}
		for cand := range solver.Candidates(g.Catalog, base) {
			nodes++
			v, err := cand.Expr.Evaluate()
			if err != nil || !v.IsBool() || v.IsTrue() {
				continue
			}
			key := strings.Join(cand.Expr.Names(), ",")
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			broken = append(broken, cand)
		}
		if len(broken) == 0 {
			continue
		}
		rng.Shuffle(len(broken), func(i, j int) { broken[i], broken[j] = broken[j], broken[i] })
		broken = broken[:min(len(broken), maxScored)]

		// 2) grade by number of repairs
		grades := make([]scored, 0, len(broken))
		for _, cand := range broken {
			moves, st, err := g.Solver.Solve(ctx, cand.Expr)
			nodes += st.Nodes
			if err != nil {
				return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
			}
			grades = append(grades, scored{cand: cand, repairs: len(moves)})
		}
		slices.SortStableFunc(grades, func(a, b scored) int { return a.repairs - b.repairs })

		pick := choose(grades, diff)
		p := &domain.Puzzle{
			ID:         uuid.NewString(),
			Seed:       seed,
			Difficulty: diff,
			Text:       pick.cand.Expr.DisplayCode(),
			Glyphs:     pick.cand.Expr.Names(),
			CreatedAt:  time.Now().UnixNano(),
			Notes:      fmt.Sprintf("%d repair(s); broken from %s", pick.repairs, base.DisplayCode()),
		}
		return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
	}
	return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, errNoPuzzle
}

// choose expects grades sorted by ascending repairs.
func choose(grades []scored, diff domain.Difficulty) scored {
	switch diff {
	case domain.Easy:
		return grades[len(grades)-1]
	case domain.Medium:
		return grades[len(grades)/2]
	case domain.Expert:
		for _, s := range grades {
			if s.cand.Source != s.cand.Dest {
				return s
			}
		}
		return grades[0]
	default: // Hard
		return grades[0]
	}
}

// randomEquation returns a true single-digit equation such as "7-3=4".
func randomEquation(rng *rand.Rand) string {
	a := rng.Intn(10)
	if rng.Intn(2) == 0 {
		b := rng.Intn(10 - a)
		return fmt.Sprintf("%d+%d=%d", a, b, a+b)
	}
	b := rng.Intn(a + 1)
	return fmt.Sprintf("%d-%d=%d", a, b, a-b)
}
