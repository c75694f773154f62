package frequency

import (
	"regexp"
	"sort"
	"strings"

	"github.com/danielplaskur/wortschatz/internal/translate"
)

var variantSplit = regexp.MustCompile(`\s*\|\s*`)

// MergeTables combines several vocabulary tables into one. Frequencies for
// the same word (case-insensitive) are summed and translation variant sets
// are unioned, sorted alphabetically for a stable joined form.
func MergeTables(tables ...[]Record) []Record {
	type bucket struct {
		freq     int
		variants []string
		seen     map[string]struct{}
	}

	buckets := make(map[string]*bucket)
	for _, table := range tables {
		for _, rec := range table {
			word := strings.ToLower(strings.TrimSpace(rec.Word))
			if word == "" {
				continue
			}
			b := buckets[word]
			if b == nil {
				b = &bucket{seen: make(map[string]struct{})}
				buckets[word] = b
			}
			b.freq += rec.Frequency
			for _, v := range variantSplit.Split(rec.Translation, -1) {
				if v = strings.TrimSpace(v); v == "" {
					continue
				}
				if _, dup := b.seen[v]; dup {
					continue
				}
				b.seen[v] = struct{}{}
				b.variants = append(b.variants, v)
			}
		}
	}

	records := make([]Record, 0, len(buckets))
	for word, b := range buckets {
		sort.Strings(b.variants)
		records = append(records, Record{
			Word:        word,
			Frequency:   b.freq,
			Translation: strings.Join(b.variants, translate.VariantSeparator),
		})
	}
	SortRecords(records)
	return records
}
