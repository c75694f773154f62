package frequency

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"
)

var letterOnly = regexp.MustCompile(`[^a-zA-ZäöüÄÖÜß]`)

// Whitelist holds lowercase words excluded from counting and training.
type Whitelist map[string]struct{}

// LoadWhitelist reads the whitelist file, one word per line. Blank lines
// and '#' comments are skipped; entries are stripped to letters and
// lowercased. A missing file yields an empty whitelist.
func LoadWhitelist(path string) (Whitelist, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return Whitelist{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open whitelist %s: %w", path, err)
	}
	defer f.Close()

	wl := Whitelist{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if word := letterOnly.ReplaceAllString(strings.ToLower(line), ""); word != "" {
			wl[word] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read whitelist %s: %w", path, err)
	}
	return wl, nil
}

// Contains reports whether the (lowercase) word is whitelisted.
func (w Whitelist) Contains(word string) bool {
	_, ok := w[word]
	return ok
}

// AppendToWhitelist adds one word to the whitelist file, creating the file
// if needed. Used by the offline translation fill when a word is skipped.
func AppendToWhitelist(path, word string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open whitelist %s: %w", path, err)
	}
	defer f.Close()
	if _, err := fmt.Fprintf(f, "%s\n", strings.ToLower(word)); err != nil {
		return fmt.Errorf("append to whitelist %s: %w", path, err)
	}
	return nil
}
