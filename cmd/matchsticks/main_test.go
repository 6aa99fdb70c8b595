package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunText(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run(context.Background(), []string{"-puzzle", "6+4=4"}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 11)
	assert.Equal(t, "6/6: 0+4=4", lines[0])
	assert.Contains(t, lines, "+/6: 8-4=4")
	assert.Contains(t, lines, "6/4: 5+4=9")
	assert.True(t, strings.HasPrefix(lines[10], "6+4=4: 10 move(s) from "), lines[10])
}

func TestRunGlyphs(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run(context.Background(), []string{"-glyphs", "blank,one,blank,plus,blank,one,blank"}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())
	assert.True(t, strings.HasPrefix(out.String(), "+/+: 1=1\n"), out.String())
}

func TestRunLibrary(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "easy"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "easy", "p1.json"), []byte(`{"text":"2=4"}`), 0o644))

	var out, errOut bytes.Buffer
	code := run(context.Background(), []string{"-id", "p1", "-puzzle-dir", dir}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())
	assert.True(t, strings.HasPrefix(out.String(), "2=4: 0 move(s)"), out.String())

	code = run(context.Background(), []string{"-id", "p2", "-puzzle-dir", dir}, &out, &errOut)
	assert.Equal(t, 1, code)
}

func TestRunSummaryGroupsLargeCounts(t *testing.T) {
	cases := []struct {
		lang string
		want string
	}{
		{"en", "8888888888=8888888888: 79 move(s) from 2,769 candidates in "},
		{"de", "8888888888=8888888888: 79 move(s) from 2.769 candidates in "},
	}
	for _, tc := range cases {
		t.Run(tc.lang, func(t *testing.T) {
			var out, errOut bytes.Buffer
			code := run(context.Background(), []string{"-lang", tc.lang, "-puzzle", "8888888888=8888888888"}, &out, &errOut)
			require.Equal(t, 0, code, errOut.String())
			lines := strings.Split(strings.TrimSpace(out.String()), "\n")
			require.Len(t, lines, 80)
			assert.True(t, strings.HasPrefix(lines[79], tc.want), lines[79])
		})
	}
}

func TestRunLangFromEnv(t *testing.T) {
	t.Setenv("MATCHSTICKS_LANG", "not a tag")
	var out, errOut bytes.Buffer
	assert.Equal(t, 2, run(context.Background(), []string{"-puzzle", "1+1"}, &out, &errOut))
	assert.Contains(t, errOut.String(), "invalid -lang")
}

func TestRunErrors(t *testing.T) {
	var out, errOut bytes.Buffer
	assert.Equal(t, 2, run(context.Background(), nil, &out, &errOut))
	assert.Equal(t, 1, run(context.Background(), []string{"-puzzle", "6x4"}, &out, &errOut))
	assert.Contains(t, errOut.String(), "unknown glyph")
	assert.Equal(t, 2, run(context.Background(), []string{"-nope"}, &out, &errOut))
}
