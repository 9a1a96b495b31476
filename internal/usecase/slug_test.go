package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func alwaysFree(context.Context, string) (bool, error) { return false, nil }

func takenSet(taken ...string) ExistsFunc {
	set := make(map[string]bool, len(taken))
	for _, t := range taken {
		set[t] = true
	}
	return func(_ context.Context, candidate string) (bool, error) {
		return set[candidate], nil
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Hello, World!!!":               "hello-world",
		"  Multiple   Spaces -- here ":  "multiple-spaces-here",
		"Class 10 Results 2024":         "class-10-results-2024",
		"Annual\tDay\nCelebration":      "annual-day-celebration",
		"Ünïcödé Tëxt":                  "ncd-txt",
		"already-a-slug":                "already-a-slug",
		"!!!":                           "",
		"   ":                           "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), "input %q", in)
	}
}

func TestGenerateUniqueSlugUnused(t *testing.T) {
	slug, err := GenerateUniqueSlug(context.Background(), "Hello, World!!!", alwaysFree)
	require.NoError(t, err)
	assert.Equal(t, "hello-world", slug)
}

func TestGenerateUniqueSlugTaken(t *testing.T) {
	slug, err := GenerateUniqueSlug(context.Background(), "Hello, World!!!", takenSet("hello-world"))
	require.NoError(t, err)
	assert.Equal(t, "hello-world-1", slug)
}

func TestGenerateUniqueSlugKeepsCounting(t *testing.T) {
	exists := takenSet("news", "news-1", "news-2", "news-3")
	slug, err := GenerateUniqueSlug(context.Background(), "News", exists)
	require.NoError(t, err)
	assert.Equal(t, "news-4", slug)
}

func TestGenerateUniqueSlugEmptyInput(t *testing.T) {
	called := false
	exists := func(context.Context, string) (bool, error) {
		called = true
		return false, nil
	}

	_, err := GenerateUniqueSlug(context.Background(), "?!  ...", exists)
	assert.ErrorIs(t, err, ErrEmptySlug)
	assert.False(t, called, "lookup must not run for an empty slug")
}

func TestGenerateUniqueSlugLookupError(t *testing.T) {
	boom := errors.New("db down")
	exists := func(context.Context, string) (bool, error) { return false, boom }

	_, err := GenerateUniqueSlug(context.Background(), "title", exists)
	assert.ErrorIs(t, err, boom)
}
