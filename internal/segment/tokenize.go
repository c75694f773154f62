package segment

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// WordPattern matches vocabulary candidates: letters including German
// umlauts and ß, with hyphenated compounds allowed, at least two characters.
var WordPattern = regexp.MustCompile(`[A-Za-zÄÖÜäöüß-]{2,}`)

// Words extracts lowercase vocabulary tokens from raw text. Leading and
// trailing hyphens (OCR line-break artifacts) are stripped; tokens that
// fall below two characters after stripping are discarded.
func Words(text string) []string {
	var words []string
	for _, m := range WordPattern.FindAllString(text, -1) {
		w := strings.ToLower(strings.Trim(m, "-"))
		if utf8.RuneCountInString(w) >= 2 {
			words = append(words, w)
		}
	}
	return words
}
