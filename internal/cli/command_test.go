package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wortschatz.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestApplyConfigFromFile(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	flags := NewFlags()
	CreateRootCommand(flags)

	cfg := writeConfigFile(t, `dictionary:
  path: /data/de-en.sqlite3
output:
  words: /data/words.csv
token:
  min_length: 4
`)
	InitConfig(cfg)
	ApplyConfig(flags)

	if flags.Dictionary != "/data/de-en.sqlite3" {
		t.Errorf("Dictionary = %q, want config value", flags.Dictionary)
	}
	if flags.WordsFile != "/data/words.csv" {
		t.Errorf("WordsFile = %q, want config value", flags.WordsFile)
	}
	if flags.MinLength != 4 {
		t.Errorf("MinLength = %d, want 4", flags.MinLength)
	}
	// Keys absent from the file keep their flag defaults.
	if flags.Whitelist != "whitelist.txt" {
		t.Errorf("Whitelist = %q, want default", flags.Whitelist)
	}
	if flags.SessionDir != "." {
		t.Errorf("SessionDir = %q, want default", flags.SessionDir)
	}
}

func TestApplyConfigFlagOverridesFile(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	cfg := writeConfigFile(t, "dictionary:\n  path: /data/de-en.sqlite3\n")
	InitConfig(cfg)
	if err := cmd.PersistentFlags().Set("dictionary", "override.sqlite3"); err != nil {
		t.Fatal(err)
	}
	ApplyConfig(flags)

	if flags.Dictionary != "override.sqlite3" {
		t.Errorf("Dictionary = %q, want explicit flag to win over config file", flags.Dictionary)
	}
}

func TestApplyConfigFromEnvironment(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	flags := NewFlags()
	CreateRootCommand(flags)

	t.Setenv("WORTSCHATZ_OUTPUT_WORDS", "env-words.csv")
	cfg := writeConfigFile(t, "output:\n  words: /data/words.csv\n")
	InitConfig(cfg)
	ApplyConfig(flags)

	if flags.WordsFile != "env-words.csv" {
		t.Errorf("WordsFile = %q, want environment to win over config file", flags.WordsFile)
	}
}
