package translate

import (
	"context"

	"github.com/danielplaskur/wortschatz/internal/dictionary"
)

// LocalSource answers lookups from the on-disk dictionary store.
type LocalSource struct {
	store *dictionary.Store
}

// NewLocalSource creates a source backed by the given dictionary store.
func NewLocalSource(store *dictionary.Store) *LocalSource {
	return &LocalSource{store: store}
}

// Name returns the source identifier.
func (s *LocalSource) Name() string { return "dictionary" }

// Lookup performs an exact, case-insensitive match against the store.
func (s *LocalSource) Lookup(ctx context.Context, word string) (Entry, bool, error) {
	variants, score, err := s.store.Lookup(ctx, word)
	if err != nil {
		return Entry{}, false, err
	}
	if len(variants) == 0 {
		return Entry{}, false, nil
	}
	return Entry{Source: s.Name(), Variants: variants, Score: score}, true, nil
}
