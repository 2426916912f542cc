package roster

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/ssassign/score"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0600))
	return p
}

func TestRead(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts Options
		want []string
	}{
		{"unix endings", "Elm\nOak\n", DefaultOptions(), []string{"Elm", "Oak"}},
		{"windows endings", "Elm\r\nOak\r\n", DefaultOptions(), []string{"Elm", "Oak"}},
		{"no trailing newline", "Elm\nOak", DefaultOptions(), []string{"Elm", "Oak"}},
		{"blank lines dropped", "\n  \nElm\n\n\nOak\n\n", DefaultOptions(), []string{"Elm", "Oak"}},
		{"trimmed", "  Main Street \t\n", DefaultOptions(), []string{"Main Street"}},
		{"nfkc", "Ｅｌｍ\n", Options{Normalize: true}, []string{"Elm"}},
		{"no normalise keeps width", "Ｅｌｍ\n", DefaultOptions(), []string{"Ｅｌｍ"}},
		{"empty", "", DefaultOptions(), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(strings.NewReader(tt.in), tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRead_TrimmedNamesScoreOnTrimmedLength(t *testing.T) {
	got, err := Read(strings.NewReader("Elm \nAnna\n"), DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []string{"Elm", "Anna"}, got)

	assert.Equal(t, 3, score.RawLen(got[0]))
	assert.Equal(t, 2.0, score.Score(got[0], "Al"), "len 3 and 2 share no factor")
	assert.False(t, DefaultOptions().Normalize)
}

func TestRead_Strict(t *testing.T) {
	in := "Elm\n123\nOak\n"

	got, err := Read(strings.NewReader(in), Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Elm", "123", "Oak"}, got)

	_, err = Read(strings.NewReader(in), Options{Strict: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, score.ErrDegenerateName)
	assert.Contains(t, err.Error(), "line 2")
}

func TestRead_NilReader(t *testing.T) {
	_, err := Read(nil, DefaultOptions())
	assert.Error(t, err)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "Elm", Normalize(" Elm\x00 "))
	assert.Equal(t, "fi", Normalize("ﬁ")) // ligature
	assert.Equal(t, "", Normalize("\t\r"))
}

func TestLoad(t *testing.T) {
	p := writeFile(t, "streets.txt", "Elm\r\nOak\r\n")
	got, err := Load(p, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"Elm", "Oak"}, got)

	_, err = Load("", DefaultOptions())
	assert.ErrorIs(t, err, ErrNoPath)

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"), DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadPair(t *testing.T) {
	sp := writeFile(t, "streets.txt", "Elm\nOak\n")
	dp := writeFile(t, "drivers.txt", "Al\nBo\n")

	streets, drivers, err := LoadPair(context.Background(), sp, dp, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"Elm", "Oak"}, streets)
	assert.Equal(t, []string{"Al", "Bo"}, drivers)
}

func TestLoadPair_Errors(t *testing.T) {
	sp := writeFile(t, "streets.txt", "Elm\n")

	_, _, err := LoadPair(context.Background(), sp, "", DefaultOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoPath)
	assert.Contains(t, err.Error(), "drivers")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = LoadPair(ctx, sp, sp, DefaultOptions())
	assert.ErrorIs(t, err, context.Canceled)
}
