package capture

import (
	"context"
	"fmt"

	"github.com/danielplaskur/wortschatz/internal/frequency"
	"github.com/danielplaskur/wortschatz/internal/session"
)

// Flusher merges a finished session log into the durable frequency table.
// Flush is idempotent: the first call does the merge, later calls are
// no-ops, so an interrupt handler and a normal shutdown path can both call
// it.
type Flusher struct {
	aggregator    *frequency.Aggregator
	sessionPath   string
	tablePath     string
	whitelistPath string
	done          bool
}

// NewFlusher creates a flusher for one session.
func NewFlusher(agg *frequency.Aggregator, sessionPath, tablePath, whitelistPath string) *Flusher {
	return &Flusher{
		aggregator:    agg,
		sessionPath:   sessionPath,
		tablePath:     tablePath,
		whitelistPath: whitelistPath,
	}
}

// Flush reads whatever the session logged, merges it with the prior table
// and rewrites the table. The prior table stays intact on disk until the
// new one is complete, so a failed flush can be retried.
func (f *Flusher) Flush(ctx context.Context) error {
	if f.done {
		return nil
	}

	lines, err := session.ReadLines(f.sessionPath)
	if err != nil {
		return err
	}
	prior, err := frequency.ReadTable(f.tablePath)
	if err != nil {
		return err
	}
	whitelist, err := frequency.LoadWhitelist(f.whitelistPath)
	if err != nil {
		return err
	}

	records := f.aggregator.Aggregate(ctx, lines, prior, whitelist)
	if err := frequency.WriteTable(f.tablePath, records); err != nil {
		return fmt.Errorf("flush frequency table: %w", err)
	}
	f.done = true
	return nil
}
