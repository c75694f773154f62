package cli

import "time"

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	Dictionary string
	WordsFile  string
	Whitelist  string
	SessionDir string

	// Capture flags
	FramesDir     string
	Stdin         bool
	Interval      time.Duration
	Languages     []string
	PageSegMode   int
	SkipUnchanged bool
	DedupeHistory bool
	NoRemote      bool

	// Aggregation flags
	MinLength int

	// Merge flags
	MergePattern string
	KeepInputs   bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Dictionary:    "de-en.sqlite3",
		WordsFile:     "words.csv",
		Whitelist:     "whitelist.txt",
		SessionDir:    ".",
		Interval:      1500 * time.Millisecond,
		Languages:     []string{"deu", "eng"},
		PageSegMode:   3,
		SkipUnchanged: true,
		MinLength:     3,
		MergePattern:  "words_*.csv",
	}
}
