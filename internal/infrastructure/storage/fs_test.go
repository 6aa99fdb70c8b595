package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/matchsticks/internal/domain"
	"svw.info/matchsticks/internal/ports"
)

func write(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestLoadFromDifficultyFolder(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "hard", "p1.json"), `{"id":"p1","name":"six","text":"6+4=4"}`)

	p, err := NewFS(dir).Load(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "6+4=4", p.Text)
	assert.Equal(t, domain.Hard, p.Difficulty)
	assert.Equal(t, "six", p.Name)
}

func TestLoadLegacyFlatLayout(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "old.json"), `{"glyphs":["blank","seven","blank"]}`)

	p, err := NewFS(dir).Load(context.Background(), "old")
	require.NoError(t, err)
	assert.Equal(t, "old", p.ID)
	assert.Equal(t, domain.Medium, p.Difficulty)
	assert.Equal(t, []string{"blank", "seven", "blank"}, p.Glyphs)
}

func TestLoadExplicitDifficultyWins(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "easy", "x.json"), `{"id":"x","text":"1+1","difficulty":"expert"}`)

	p, err := NewFS(dir).Load(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, domain.Expert, p.Difficulty)
}

func TestLoadUnknownDifficulty(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "y.json"), `{"text":"1+1","difficulty":"impossible"}`)

	_, err := NewFS(dir).Load(context.Background(), "y")
	assert.Error(t, err)
}

func TestLoadMissing(t *testing.T) {
	_, err := NewFS(t.TempDir()).Load(context.Background(), "nope")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadRejectsPaths(t *testing.T) {
	fs := NewFS(t.TempDir())
	for _, id := range []string{"", "../secret", "a/b", ".hidden"} {
		_, err := fs.Load(context.Background(), id)
		assert.ErrorIs(t, err, ports.ErrInvalidID, id)
	}
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "easy", "a.json"), `{"id":"a","text":"0+4=4","createdAt":1}`)
	write(t, filepath.Join(dir, "expert", "b.json"), `{"id":"b","text":"5+5=8"}`)
	write(t, filepath.Join(dir, "flat.json"), `{"text":"7=0"}`)
	write(t, filepath.Join(dir, "medium", "broken.json"), `{not json`)
	write(t, filepath.Join(dir, "medium", "readme.txt"), `ignored`)

	got, err := NewFS(dir).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.PuzzleMeta{
		{ID: "a", Difficulty: domain.Easy, CreatedAt: 1},
		{ID: "b", Difficulty: domain.Expert},
		{ID: "flat", Difficulty: domain.Medium},
	}, got)
}

func TestListMissingDir(t *testing.T) {
	got, err := NewFS(filepath.Join(t.TempDir(), "absent")).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}
