package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugWhitespace   = regexp.MustCompile(`\s+`)
	slugHyphens      = regexp.MustCompile(`-+`)
)

// ExistsFunc reports whether candidate is already taken within one
// collection. Callers updating a document exclude its own id.
type ExistsFunc func(ctx context.Context, candidate string) (bool, error)

// Slugify lowercases and trims text, drops everything outside [a-z0-9\s-],
// turns whitespace runs into hyphens and collapses repeated hyphens.
func Slugify(text string) string {
	s := strings.TrimSpace(strings.ToLower(text))
	s = slugInvalidChars.ReplaceAllString(s, "")
	s = slugWhitespace.ReplaceAllString(s, "-")
	return slugHyphens.ReplaceAllString(s, "-")
}

// GenerateUniqueSlug returns Slugify(text), suffixed with -1, -2, ... until
// exists reports the candidate free. Text that normalizes to nothing fails
// with ErrEmptySlug before any lookup.
func GenerateUniqueSlug(ctx context.Context, text string, exists ExistsFunc) (string, error) {
	base := Slugify(text)
	if base == "" {
		return "", ErrEmptySlug
	}

	candidate := base
	for i := 1; ; i++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}
