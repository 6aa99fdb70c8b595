package generator

import (
	"svw.info/matchsticks/internal/catalog"
	"svw.info/matchsticks/internal/ports"
)

// ReverseMoveGenerator creates puzzles by knocking one stick out of place in
// a true equation, so every puzzle it returns has at least one repair.
type ReverseMoveGenerator struct {
	Catalog *catalog.Catalog
	Solver  ports.Solver
}

// NewReverseMoveGenerator wires a generator that grades puzzles with the given solver.
func NewReverseMoveGenerator(c *catalog.Catalog, s ports.Solver) *ReverseMoveGenerator {
	return &ReverseMoveGenerator{Catalog: c, Solver: s}
}

// Note: The Generate method is implemented in reverse_move.go.
