package validator

import (
	"context"
	"errors"
	"fmt"

	"svw.info/matchsticks/internal/domain"
)

// ErrNotAStatement is returned for expressions without an equality sign.
var ErrNotAStatement = errors.New("expression has no equality sign")

type StatementValidator struct{}

func New() *StatementValidator { return &StatementValidator{} }

// Validate reports whether e is a true statement. failing lists the
// positions of the equality signs whose pairwise test does not hold.
func (v *StatementValidator) Validate(ctx context.Context, e domain.Expression) (bool, []int, error) {
	if err := ctx.Err(); err != nil {
		return false, nil, err
	}
	clauses := e.Clauses()
	if clauses[0].Equality < 0 {
		return false, nil, ErrNotAStatement
	}
	failing := make([]int, 0, len(clauses))
	for _, c := range clauses {
		res, err := c.Expr.Evaluate()
		if err != nil {
			return false, nil, fmt.Errorf("clause at %d: %w", c.Equality, err)
		}
		if !res.IsTrue() {
			failing = append(failing, c.Equality)
		}
	}
	return len(failing) == 0, failing, nil
}
