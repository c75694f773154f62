package capture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/danielplaskur/wortschatz/internal/segment"
	"github.com/danielplaskur/wortschatz/internal/session"
	"github.com/danielplaskur/wortschatz/internal/translate"
)

// Recognizer produces one raw text observation per capture cycle. An empty
// string means nothing was recognized this cycle. Returning io.EOF ends
// the run cleanly once the input is exhausted.
type Recognizer interface {
	Recognize(ctx context.Context) (string, error)
}

// Event is the live notification emitted per finalized sentence.
type Event struct {
	Original   string
	Translated string
}

// Config holds the runner settings.
type Config struct {
	// Interval between capture cycles.
	Interval time.Duration
	// OnSentence is called for every finalized sentence, in order.
	OnSentence func(Event)
}

// Runner owns one pass of the live pipeline. The resolver may be nil for
// record-only runs; the log may be nil when nothing should be persisted.
type Runner struct {
	recognizer Recognizer
	segmenter  *segment.Segmenter
	resolver   *translate.Resolver
	log        *session.Log
	cfg        Config
}

// NewRunner wires the live pipeline together.
func NewRunner(rec Recognizer, seg *segment.Segmenter, res *translate.Resolver, log *session.Log, cfg Config) *Runner {
	if cfg.Interval <= 0 {
		cfg.Interval = 1500 * time.Millisecond
	}
	return &Runner{recognizer: rec, segmenter: seg, resolver: res, log: log, cfg: cfg}
}

// Run executes capture cycles until the context is cancelled or the
// recognizer reports io.EOF. Recognition failures are logged and skipped;
// a session log write failure aborts the run so no data loss goes
// unnoticed.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	for {
		if err := r.step(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (r *Runner) step(ctx context.Context) error {
	raw, err := r.recognizer.Recognize(ctx)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return io.EOF
		}
		// A garbled or failed capture is a skipped cycle, not a fatal error.
		fmt.Fprintf(os.Stderr, "Warning: recognition failed: %v\n", err)
		return nil
	}

	for _, sent := range r.segmenter.Observe(raw) {
		ev := Event{Original: sent.Text()}
		if r.resolver != nil {
			ev.Translated = r.resolver.TranslateSentence(ctx, ev.Original)
		}
		if r.cfg.OnSentence != nil {
			r.cfg.OnSentence(ev)
		}
		if r.log != nil {
			if err := r.log.Append(ev.Original); err != nil {
				return err
			}
		}
	}
	return nil
}
