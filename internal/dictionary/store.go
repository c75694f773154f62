package dictionary

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `CREATE TABLE IF NOT EXISTS translation (
	written_rep TEXT NOT NULL,
	trans_list  TEXT NOT NULL,
	score       REAL NOT NULL DEFAULT 1,
	is_good     INTEGER NOT NULL DEFAULT 1
)`

// Candidates with equal score fall back to rowid order. That tie-break is
// arbitrary but stable across runs, which is all the resolver needs.
const lookupQuery = `SELECT trans_list, score FROM translation
	WHERE is_good = 1 AND lower(written_rep) = lower(?)
	ORDER BY score DESC, rowid ASC LIMIT 1`

// Store is a read-mostly handle on the dictionary database. Manually
// confirmed translations may be written back so later runs resolve them
// locally.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens an existing dictionary store. A missing or unreadable file is
// a configuration error and fails before any processing begins.
func Open(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("dictionary store unreachable: %w", err)
	}
	return open(path)
}

// Create makes a new dictionary store with an empty translation table.
func Create(path string) (*Store, error) {
	return open(path)
}

func open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary store %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init dictionary schema: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

// Lookup returns the translation variants for a word, taken from the
// highest-scoring good entry, or nil when the word is unknown.
func (s *Store) Lookup(ctx context.Context, word string) ([]string, float64, error) {
	var transList string
	var score float64
	err := s.db.QueryRowContext(ctx, lookupQuery, word).Scan(&transList, &score)
	switch {
	case err == sql.ErrNoRows:
		return nil, 0, nil
	case err != nil:
		return nil, 0, fmt.Errorf("lookup %q: %w", word, err)
	}
	return SplitVariants(transList), score, nil
}

// Has reports whether the exact word/translation pair already exists.
func (s *Store) Has(ctx context.Context, word, translation string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM translation
		WHERE is_good = 1 AND lower(written_rep) = lower(?) AND lower(trans_list) = lower(?)`,
		word, translation).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check %q: %w", word, err)
	}
	return n > 0, nil
}

// Add inserts a confirmed translation unless the exact pair is already
// present. New entries get score 1 and are marked good.
func (s *Store) Add(ctx context.Context, word, translation string) error {
	exists, err := s.Has(ctx, word, translation)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO translation (written_rep, trans_list, score, is_good)
		VALUES (?, ?, 1, 1)`,
		strings.ToLower(word), strings.ToLower(translation))
	if err != nil {
		return fmt.Errorf("add translation for %q: %w", word, err)
	}
	return nil
}

// Insert adds a raw dictionary row with explicit score and quality flag,
// for import tooling and tests.
func (s *Store) Insert(ctx context.Context, word, transList string, score float64, good bool) error {
	g := 0
	if good {
		g = 1
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO translation (written_rep, trans_list, score, is_good)
		VALUES (?, ?, ?, ?)`, word, transList, score, g)
	if err != nil {
		return fmt.Errorf("insert %q: %w", word, err)
	}
	return nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// SplitVariants splits a pipe-separated trans_list value into its trimmed,
// non-empty variants.
func SplitVariants(transList string) []string {
	var variants []string
	for _, v := range strings.Split(transList, "|") {
		if v = strings.TrimSpace(v); v != "" {
			variants = append(variants, v)
		}
	}
	return variants
}
