package cli

import (
	"reflect"
	"testing"
	"time"
)

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	// Test default values
	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"Dictionary", flags.Dictionary, "de-en.sqlite3"},
		{"WordsFile", flags.WordsFile, "words.csv"},
		{"Whitelist", flags.Whitelist, "whitelist.txt"},
		{"SessionDir", flags.SessionDir, "."},
		{"Interval", flags.Interval, 1500 * time.Millisecond},
		{"Languages", flags.Languages, []string{"deu", "eng"}},
		{"PageSegMode", flags.PageSegMode, 3},
		{"MinLength", flags.MinLength, 3},
		{"MergePattern", flags.MergePattern, "words_*.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.expected) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	if !flags.SkipUnchanged {
		t.Error("SkipUnchanged should default to true")
	}

	// Test boolean defaults (should be false)
	boolTests := []struct {
		name  string
		value bool
	}{
		{"Stdin", flags.Stdin},
		{"DedupeHistory", flags.DedupeHistory},
		{"NoRemote", flags.NoRemote},
		{"KeepInputs", flags.KeepInputs},
	}

	for _, tt := range boolTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value {
				t.Errorf("%s should default to false", tt.name)
			}
		})
	}
}
