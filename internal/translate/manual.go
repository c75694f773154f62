package translate

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// ManualSource asks a human for the translation. It blocks on input, so it
// belongs at the end of the chain in offline batch workflows, never in the
// live capture path.
type ManualSource struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewManualSource creates a source that prompts on out and reads one line
// per word from in.
func NewManualSource(in io.Reader, out io.Writer) *ManualSource {
	return &ManualSource{in: bufio.NewScanner(in), out: out}
}

// Name returns the source identifier.
func (s *ManualSource) Name() string { return "manual" }

// Lookup prompts for a translation. An empty answer means the user has no
// translation to offer and counts as unknown.
func (s *ManualSource) Lookup(ctx context.Context, word string) (Entry, bool, error) {
	fmt.Fprintf(s.out, "Translation for '%s' (empty to skip): ", word)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return Entry{}, false, fmt.Errorf("read manual translation: %w", err)
		}
		return Entry{}, false, nil
	}
	answer := strings.TrimSpace(s.in.Text())
	if answer == "" {
		return Entry{}, false, nil
	}
	return Entry{Source: s.Name(), Variants: []string{answer}}, true, nil
}
