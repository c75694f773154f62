package segment

import "strings"

// Sentence is an ordered sequence of original-case tokens ending in a
// terminator. It is immutable once emitted by the Segmenter.
type Sentence struct {
	Tokens []string
}

// Text returns the sentence with tokens joined by single spaces.
func (s Sentence) Text() string {
	return strings.Join(s.Tokens, " ")
}

// Config controls per-observation deduplication behavior.
type Config struct {
	// SkipUnchangedFrames skips an observation whose raw text is identical
	// to the immediately preceding one (the screen did not change).
	SkipUnchangedFrames bool

	// DedupeFullHistory drops a finalized sentence that matches any earlier
	// emission in this run, not just the immediately preceding one.
	DedupeFullHistory bool
}

// DefaultConfig returns the segmenter configuration used by the capture loop.
func DefaultConfig() Config {
	return Config{SkipUnchangedFrames: true}
}

// Segmenter turns a stream of raw OCR observations into finalized
// sentences. It owns exactly one in-progress sentence buffer and is not
// safe for concurrent use.
type Segmenter struct {
	cfg         Config
	lastRaw     string
	buffer      []string
	lastEmitted string
	emitted     map[string]struct{}
}

// New creates a Segmenter with the given configuration.
func New(cfg Config) *Segmenter {
	s := &Segmenter{cfg: cfg}
	if cfg.DedupeFullHistory {
		s.emitted = make(map[string]struct{})
	}
	return s
}

// Observe consumes one raw OCR observation and returns the sentences it
// completed, in order. Empty observations and repeated frames are no-ops.
// A terminator that OCR detached into its own token is glued onto the
// preceding token. Tokens after the last terminator stay buffered for the
// next cycle; a trailing fragment with no terminator is never emitted.
func (s *Segmenter) Observe(raw string) []Sentence {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	if s.cfg.SkipUnchangedFrames && raw == s.lastRaw {
		return nil
	}
	s.lastRaw = raw

	var out []Sentence
	for _, tok := range strings.Fields(raw) {
		if isBareTerminator(tok) && len(s.buffer) > 0 {
			s.buffer[len(s.buffer)-1] += tok
		} else {
			s.buffer = append(s.buffer, tok)
		}
		if !endsSentence(tok) {
			continue
		}
		sent := Sentence{Tokens: append([]string(nil), s.buffer...)}
		s.buffer = s.buffer[:0]
		if s.isDuplicate(sent) {
			continue
		}
		s.remember(sent)
		out = append(out, sent)
	}
	return out
}

// Pending returns the buffered tokens of the in-progress sentence. The
// capture loop uses it for diagnostics only; a pending fragment is lost at
// shutdown.
func (s *Segmenter) Pending() []string {
	return append([]string(nil), s.buffer...)
}

func (s *Segmenter) isDuplicate(sent Sentence) bool {
	text := sent.Text()
	if s.emitted != nil {
		_, seen := s.emitted[text]
		return seen
	}
	return text == s.lastEmitted
}

func (s *Segmenter) remember(sent Sentence) {
	text := sent.Text()
	s.lastEmitted = text
	if s.emitted != nil {
		s.emitted[text] = struct{}{}
	}
}

// endsSentence reports whether the token carries a sentence terminator.
func endsSentence(tok string) bool {
	return strings.HasSuffix(tok, ".") || strings.HasSuffix(tok, "?")
}

// isBareTerminator reports whether the token is punctuation only, with no
// word attached.
func isBareTerminator(tok string) bool {
	for _, r := range tok {
		if r != '.' && r != '?' {
			return false
		}
	}
	return true
}
