package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"svw.info/matchsticks/internal/domain"
	"svw.info/matchsticks/internal/ports"
)

// FS is a read-only puzzle library laid out as {dir}/{difficulty}/{id}.json,
// with files directly under dir accepted as a legacy flat layout.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

// record leaves Difficulty nil when the file does not name one.
type record struct {
	domain.Puzzle
	Difficulty *domain.Difficulty `json:"difficulty"`
}

func (r record) puzzle(fallbackID string, fallback domain.Difficulty) domain.Puzzle {
	p := r.Puzzle
	if p.ID == "" {
		p.ID = fallbackID
	}
	p.Difficulty = fallback
	if r.Difficulty != nil {
		p.Difficulty = *r.Difficulty
	}
	return p
}

type bucket struct {
	path   string
	diff   domain.Difficulty
	legacy bool
}

func (s *FS) buckets() []bucket {
	return []bucket{
		{filepath.Join(s.dir, "easy"), domain.Easy, false},
		{filepath.Join(s.dir, "medium"), domain.Medium, false},
		{filepath.Join(s.dir, "hard"), domain.Hard, false},
		{filepath.Join(s.dir, "expert"), domain.Expert, false},
		{s.dir, domain.Medium, true},
	}
}

func (s *FS) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	id = strings.TrimSpace(id)
	if id == "" || id != filepath.Base(id) || strings.HasPrefix(id, ".") {
		return nil, fmt.Errorf("%w: %q", ports.ErrInvalidID, id)
	}
	for _, b := range s.buckets() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := os.ReadFile(filepath.Join(b.path, id+".json"))
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		var rec record
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("puzzle %s: %w", id, err)
		}
		// missing difficulty is inferred from the folder; legacy files are medium
		out := rec.puzzle(id, b.diff)
		return &out, nil
	}
	return nil, os.ErrNotExist
}

// List scans every bucket. Unreadable or malformed files are skipped.
func (s *FS) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	var out []domain.PuzzleMeta
	for _, b := range s.buckets() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ents, err := os.ReadDir(b.path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, e := range ents {
			name := e.Name()
			if e.IsDir() || !strings.HasSuffix(name, ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(b.path, name))
			if err != nil {
				continue
			}
			var rec record
			if err := json.Unmarshal(data, &rec); err != nil {
				continue
			}
			p := rec.puzzle(strings.TrimSuffix(name, ".json"), b.diff)
			out = append(out, domain.PuzzleMeta{
				ID:         p.ID,
				Name:       p.Name,
				Difficulty: p.Difficulty,
				CreatedAt:  p.CreatedAt,
			})
		}
	}
	return out, nil
}
