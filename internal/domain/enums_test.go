package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDifficulty(t *testing.T) {
	for _, d := range []Difficulty{Easy, Medium, Hard, Expert} {
		got, err := ParseDifficulty(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
	got, err := ParseDifficulty(" HARD ")
	require.NoError(t, err)
	assert.Equal(t, Hard, got)

	got, err = ParseDifficulty("")
	require.NoError(t, err)
	assert.Equal(t, Medium, got)

	_, err = ParseDifficulty("brutal")
	assert.Error(t, err)
}

func TestPuzzleDifficultyJSON(t *testing.T) {
	b, err := json.Marshal(Puzzle{ID: "p", Difficulty: Easy})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"p","difficulty":"easy"}`, string(b))

	var p Puzzle
	require.NoError(t, json.Unmarshal([]byte(`{"difficulty":"expert"}`), &p))
	assert.Equal(t, Expert, p.Difficulty)
	assert.Error(t, json.Unmarshal([]byte(`{"difficulty":"brutal"}`), &p))
}
