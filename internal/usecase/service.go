package usecase

import (
	"context"
	"errors"

	"svw.info/matchsticks/internal/catalog"
	"svw.info/matchsticks/internal/domain"
	"svw.info/matchsticks/internal/notation"
	"svw.info/matchsticks/internal/ports"
)

type Service struct {
	Catalog   *catalog.Catalog
	Solver    ports.Solver
	Generator ports.Generator
	Validator ports.Validator
	Hinter    ports.Hinter
	Library   ports.Library
}

func NewService(c *catalog.Catalog, s ports.Solver, g ports.Generator, v ports.Validator, h ports.Hinter, lib ports.Library) *Service {
	return &Service{Catalog: c, Solver: s, Generator: g, Validator: v, Hinter: h, Library: lib}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// GlyphInfo describes one glyph of the alphabet for clients.
type GlyphInfo struct {
	Name    string         `json:"name"`
	Kind    string         `json:"kind"`
	Code    string         `json:"code"`
	Display string         `json:"display"`
	Sticks  []domain.Stick `json:"sticks"`
}

// Resolve draws a puzzle with the catalog's glyphs.
func (u *Service) Resolve(p *domain.Puzzle) (domain.Expression, error) {
	if u.Catalog == nil {
		return domain.Expression{}, errNotConfigured
	}
	return notation.FromPuzzle(u.Catalog, p)
}

func (u *Service) Solve(ctx context.Context, p *domain.Puzzle) ([]domain.Move, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	e, err := u.Resolve(p)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	return u.Solver.Solve(ctx, e)
}

func (u *Service) Generate(ctx context.Context, seed int64, d domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed, d)
}

func (u *Service) Validate(ctx context.Context, p *domain.Puzzle) (bool, []int, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	e, err := u.Resolve(p)
	if err != nil {
		return false, nil, err
	}
	return u.Validator.Validate(ctx, e)
}

func (u *Service) Hint(ctx context.Context, p *domain.Puzzle, level domain.HintLevel) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	e, err := u.Resolve(p)
	if err != nil {
		return domain.Hint{}, false, err
	}
	return u.Hinter.Hint(ctx, e, level)
}

func (u *Service) Glyphs() ([]GlyphInfo, error) {
	if u.Catalog == nil {
		return nil, errNotConfigured
	}
	syms := u.Catalog.Symbols()
	out := make([]GlyphInfo, len(syms))
	for i, s := range syms {
		out[i] = GlyphInfo{
			Name:    s.Name(),
			Kind:    s.Kind().String(),
			Code:    s.Code(),
			Display: s.Display(),
			Sticks:  s.Shape().Sticks(),
		}
	}
	return out, nil
}

// Library
func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Library == nil {
		return nil, errNotConfigured
	}
	return u.Library.Load(ctx, id)
}
func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Library == nil {
		return nil, errNotConfigured
	}
	return u.Library.List(ctx)
}
