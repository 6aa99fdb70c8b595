package hint

import (
	"context"
	"fmt"

	"svw.info/matchsticks/internal/domain"
	"svw.info/matchsticks/internal/ports"
)

// FirstMove hints at the first repair the solver reports.
type FirstMove struct {
	Solver ports.Solver
}

func NewFirstMove(s ports.Solver) *FirstMove { return &FirstMove{Solver: s} }

// Hint reveals the first repair up to level. It reports false when no
// single-stick move repairs the statement.
func (h *FirstMove) Hint(ctx context.Context, e domain.Expression, level domain.HintLevel) (domain.Hint, bool, error) {
	moves, _, err := h.Solver.Solve(ctx, e)
	if err != nil {
		return domain.Hint{}, false, err
	}
	if len(moves) == 0 {
		return domain.Hint{}, false, nil
	}
	m := moves[0]
	src := glyphLabel(e.At(m.Source))
	switch {
	case level <= domain.HintSource:
		return domain.Hint{
			Message:   fmt.Sprintf("Take a stick from the %s", src),
			Positions: []int{m.Source},
			Level:     domain.HintSource,
		}, true, nil
	case level == domain.HintMove:
		if m.Source == m.Dest {
			return domain.Hint{
				Message:   fmt.Sprintf("Move a stick within the %s", src),
				Positions: []int{m.Source},
				Level:     domain.HintMove,
			}, true, nil
		}
		return domain.Hint{
			Message:   fmt.Sprintf("Move a stick from the %s to the %s", src, glyphLabel(e.At(m.Dest))),
			Positions: []int{m.Source, m.Dest},
			Level:     domain.HintMove,
		}, true, nil
	default:
		return domain.Hint{
			Message:   fmt.Sprintf("%s becomes %s", e.DisplayCode(), m.Display),
			Positions: []int{m.Source, m.Dest},
			Level:     domain.HintSolution,
		}, true, nil
	}
}

func glyphLabel(s *domain.Symbol) string {
	switch {
	case s.Display() == "":
		return "gap"
	case s.Kind() == domain.KindDigit:
		return "digit " + s.Display()
	default:
		return "sign " + s.Display()
	}
}
