package dictionary

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Create(filepath.Join(t.TempDir(), "de-en.sqlite3"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenMissingStore(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "missing.sqlite3")); err == nil {
		t.Fatal("Open() on a missing store must fail at startup")
	}
}

func TestLookup(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	rows := []struct {
		word      string
		transList string
		score     float64
		good      bool
	}{
		{"Haus", "house | building", 10, true},
		{"haus", "mansion", 5, true},
		{"haus", "shack", 99, false},
		{"gehen", "to go", 1, true},
	}
	for _, row := range rows {
		if err := store.Insert(ctx, row.word, row.transList, row.score, row.good); err != nil {
			t.Fatalf("Insert(%q) error = %v", row.word, err)
		}
	}

	tests := []struct {
		name         string
		word         string
		wantVariants []string
		wantScore    float64
	}{
		{
			name:         "highest score wins, bad entries ignored",
			word:         "haus",
			wantVariants: []string{"house", "building"},
			wantScore:    10,
		},
		{
			name:         "lookup is case-insensitive",
			word:         "HAUS",
			wantVariants: []string{"house", "building"},
			wantScore:    10,
		},
		{
			name:         "single variant",
			word:         "gehen",
			wantVariants: []string{"to go"},
			wantScore:    1,
		},
		{
			name:         "unknown word",
			word:         "xyzabc",
			wantVariants: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			variants, score, err := store.Lookup(ctx, tt.word)
			if err != nil {
				t.Fatalf("Lookup(%q) error = %v", tt.word, err)
			}
			if !reflect.DeepEqual(variants, tt.wantVariants) {
				t.Errorf("Lookup(%q) variants = %v, want %v", tt.word, variants, tt.wantVariants)
			}
			if score != tt.wantScore {
				t.Errorf("Lookup(%q) score = %v, want %v", tt.word, score, tt.wantScore)
			}
		})
	}
}

func TestLookupTieBreakIsStable(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Insert(ctx, "baum", "tree", 3, true); err != nil {
		t.Fatal(err)
	}
	if err := store.Insert(ctx, "baum", "timber", 3, true); err != nil {
		t.Fatal(err)
	}

	// Equal scores fall back to insertion order, run after run.
	for i := 0; i < 5; i++ {
		variants, _, err := store.Lookup(ctx, "baum")
		if err != nil {
			t.Fatalf("Lookup() error = %v", err)
		}
		if !reflect.DeepEqual(variants, []string{"tree"}) {
			t.Fatalf("Lookup() variants = %v, want the first inserted row", variants)
		}
	}
}

func TestAdd(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Add(ctx, "Hund", "dog"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	// Adding the same pair again is a no-op, not a duplicate row.
	if err := store.Add(ctx, "hund", "DOG"); err != nil {
		t.Fatalf("Add() repeat error = %v", err)
	}

	variants, _, err := store.Lookup(ctx, "hund")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if !reflect.DeepEqual(variants, []string{"dog"}) {
		t.Errorf("Lookup() variants = %v, want %v", variants, []string{"dog"})
	}

	has, err := store.Has(ctx, "hund", "dog")
	if err != nil || !has {
		t.Errorf("Has() = %v, %v, want true, nil", has, err)
	}
}

func TestSplitVariants(t *testing.T) {
	tests := []struct {
		transList string
		want      []string
	}{
		{"house | building", []string{"house", "building"}},
		{"house|building", []string{"house", "building"}},
		{"house", []string{"house"}},
		{" | house | ", []string{"house"}},
		{"", nil},
	}

	for _, tt := range tests {
		if got := SplitVariants(tt.transList); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitVariants(%q) = %v, want %v", tt.transList, got, tt.want)
		}
	}
}
