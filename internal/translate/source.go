package translate

import (
	"context"
	"strings"
)

// VariantSeparator joins translation variants in all-variants output and
// in the persisted frequency table.
const VariantSeparator = " | "

// Entry is a candidate translation produced by a single source. Variants
// are ordered by relevance, best first.
type Entry struct {
	Source   string
	Variants []string
	Score    float64
}

// Best returns the highest-ranked variant.
func (e Entry) Best() string {
	if len(e.Variants) == 0 {
		return ""
	}
	return e.Variants[0]
}

// Joined returns every variant joined by the variant separator.
func (e Entry) Joined() string {
	return strings.Join(e.Variants, VariantSeparator)
}

// Source is a single translation lookup capability. Lookup returns the
// entry and true when the source knows the word; an unknown word is not an
// error. Errors signal infrastructure failures (network, database); the
// resolver logs them and falls through to the next source.
type Source interface {
	Name() string
	Lookup(ctx context.Context, word string) (Entry, bool, error)
}
