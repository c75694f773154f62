package translate

import (
	"context"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/danielplaskur/wortschatz/internal/segment"
)

// Mode selects how a resolved entry is rendered.
type Mode int

const (
	// SingleBest returns only the highest-ranked variant. Sentence
	// translation uses this.
	SingleBest Mode = iota
	// AllVariants returns every variant joined by the separator. The
	// vocabulary export uses this.
	AllVariants
)

type cached struct {
	entry Entry
	found bool
}

// Resolver walks an ordered chain of sources and caches the first answer
// per word for the lifetime of the process. The cache stores the full
// entry, so single-best and all-variants renderings of the same word are
// always consistent and neither mode can shadow the other. Not safe for
// concurrent use.
type Resolver struct {
	sources []Source
	cache   map[string]cached
}

// NewResolver creates a resolver over the given sources, queried strictly
// in the order supplied.
func NewResolver(sources ...Source) *Resolver {
	return &Resolver{
		sources: sources,
		cache:   make(map[string]cached),
	}
}

// ResolveEntry resolves a word through the chain, returning the winning
// entry and whether any source knew the word. Negative results are cached
// too: once every source has missed, the word stays unknown for the rest
// of the run even if a source would answer later.
func (r *Resolver) ResolveEntry(ctx context.Context, word string) (Entry, bool) {
	key := strings.ToLower(word)
	if c, ok := r.cache[key]; ok {
		return c.entry, c.found
	}

	for _, src := range r.sources {
		entry, ok, err := src.Lookup(ctx, key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %s lookup for %q failed: %v\n", src.Name(), word, err)
			continue
		}
		if !ok {
			continue
		}
		r.cache[key] = cached{entry: entry, found: true}
		return entry, true
	}

	r.cache[key] = cached{}
	return Entry{}, false
}

// Resolve returns the translation for a word in the requested mode, or the
// word itself, unchanged, when no source knows it. It never returns an
// empty string.
func (r *Resolver) Resolve(ctx context.Context, word string, mode Mode) string {
	entry, ok := r.ResolveEntry(ctx, word)
	if !ok {
		return word
	}
	var text string
	if mode == AllVariants {
		text = entry.Joined()
	} else {
		text = entry.Best()
	}
	if text == "" {
		return word
	}
	return text
}

// TranslateSentence substitutes every word of a sentence with its
// single-best translation, mirroring the casing of the source token.
// Unknown words are left as-is.
func (r *Resolver) TranslateSentence(ctx context.Context, sentence string) string {
	return segment.WordPattern.ReplaceAllStringFunc(sentence, func(token string) string {
		translated := r.Resolve(ctx, token, SingleBest)
		if translated == token {
			return token
		}
		return PreserveCase(token, translated)
	})
}

// PreserveCase maps the casing shape of src onto dst: an all-caps source
// uppercases the whole translation, a title-case source capitalizes its
// first rune.
func PreserveCase(src, dst string) string {
	if dst == "" {
		return dst
	}
	if src != strings.ToLower(src) && src == strings.ToUpper(src) {
		return strings.ToUpper(dst)
	}
	first := []rune(src)[0]
	if unicode.IsUpper(first) {
		runes := []rune(dst)
		runes[0] = unicode.ToUpper(runes[0])
		return string(runes)
	}
	return dst
}
