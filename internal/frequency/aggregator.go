package frequency

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/danielplaskur/wortschatz/internal/segment"
	"github.com/danielplaskur/wortschatz/internal/translate"
)

// DefaultMinLength is the minimum word length counted by the aggregator.
const DefaultMinLength = 3

// Aggregator turns logged sentences into merged, translated vocabulary
// records. A nil resolver skips translation fill and leaves new words with
// an empty translation for a later offline pass.
type Aggregator struct {
	resolver  *translate.Resolver
	minLength int
}

// NewAggregator creates an aggregator. minLength values below 1 fall back
// to the default.
func NewAggregator(resolver *translate.Resolver, minLength int) *Aggregator {
	if minLength < 1 {
		minLength = DefaultMinLength
	}
	return &Aggregator{resolver: resolver, minLength: minLength}
}

// Count tokenizes the given lines with the capture-time rule and counts
// case-folded words, discarding those below the minimum length or in the
// whitelist.
func (a *Aggregator) Count(lines []string, whitelist Whitelist) map[string]int {
	counts := make(map[string]int)
	for _, line := range lines {
		for _, word := range segment.Words(line) {
			if utf8.RuneCountInString(word) < a.minLength {
				continue
			}
			if whitelist.Contains(word) {
				continue
			}
			counts[word]++
		}
	}
	return counts
}

// Merge folds new counts into the prior table. Prior counts are summed,
// never overwritten, and prior translations are kept. Words still lacking
// a translation are resolved in all-variants mode. The result is sorted by
// frequency descending, ties alphabetical.
func (a *Aggregator) Merge(ctx context.Context, counts map[string]int, prior []Record) []Record {
	merged := make(map[string]Record, len(prior)+len(counts))
	for _, rec := range prior {
		rec.Word = strings.ToLower(rec.Word)
		merged[rec.Word] = rec
	}
	for word, n := range counts {
		rec := merged[word]
		rec.Word = word
		rec.Frequency += n
		merged[word] = rec
	}

	records := make([]Record, 0, len(merged))
	for _, rec := range merged {
		if rec.Translation == "" && a.resolver != nil {
			if entry, ok := a.resolver.ResolveEntry(ctx, rec.Word); ok {
				rec.Translation = entry.Joined()
			}
		}
		records = append(records, rec)
	}
	SortRecords(records)
	return records
}

// Aggregate runs one full pass: count the session lines, merge with the
// prior table, and return the ranked records.
func (a *Aggregator) Aggregate(ctx context.Context, lines []string, prior []Record, whitelist Whitelist) []Record {
	return a.Merge(ctx, a.Count(lines, whitelist), prior)
}
