// Package session persists finalized sentences for one capture run as an
// append-only UTF-8 text file, one sentence per line. The log is the sole
// input to the frequency aggregation that runs at shutdown, so a crashed
// run still yields a best-effort vocabulary table.
package session

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Filename returns the session log name for a run started at t, matching
// the session-DD.MM.YYYY-HH-MM.txt naming of earlier recordings.
func Filename(t time.Time) string {
	return fmt.Sprintf("session-%s.txt", t.Format("02.01.2006-15-04"))
}

// Log is an append-only sentence log. Lines are flushed per append; the
// file is never rewritten during a run.
type Log struct {
	f    *os.File
	path string
}

// OpenLog opens (or creates) the log for appending.
func OpenLog(path string) (*Log, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open session log %s: %w", path, err)
	}
	return &Log{f: f, path: path}, nil
}

// Append writes one finalized sentence as a line. A failed write is a
// persistence failure and must stop the run rather than drop data
// silently.
func (l *Log) Append(sentence string) error {
	if _, err := fmt.Fprintf(l.f, "%s\n", sentence); err != nil {
		return fmt.Errorf("append to session log %s: %w", l.path, err)
	}
	return nil
}

// Path returns the log file location.
func (l *Log) Path() string {
	return l.path
}

// Close closes the underlying file.
func (l *Log) Close() error {
	return l.f.Close()
}

// ReadLines returns the non-empty lines of a session log. A missing file
// yields no lines, so flushing after a run that never logged works.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open session log %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read session log %s: %w", path, err)
	}
	return lines, nil
}

// Glob lists the session logs in a directory, sorted by name. The
// timestamped naming makes that chronological order.
func Glob(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "session-*.txt"))
	if err != nil {
		return nil, fmt.Errorf("list session logs in %s: %w", dir, err)
	}
	sort.Strings(matches)
	return matches, nil
}
