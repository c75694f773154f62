package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/danielplaskur/wortschatz/internal/dictionary"
	"github.com/danielplaskur/wortschatz/internal/frequency"
	"github.com/danielplaskur/wortschatz/internal/session"
	"github.com/danielplaskur/wortschatz/internal/translate"
)

func newFrequencyCommand(flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "frequency [session-file...]",
		Short: "Aggregate session logs into the vocabulary table",
		Long: `frequency tokenizes the given session logs (default: every
session-*.txt in the session directory), counts word occurrences, merges
them additively into the vocabulary table and fills missing translations
from the local dictionary.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFrequency(flags, args)
		},
	}
}

func runFrequency(flags *Flags, args []string) error {
	files := args
	if len(files) == 0 {
		var err error
		files, err = session.Glob(flags.SessionDir)
		if err != nil {
			return err
		}
	}
	if len(files) == 0 {
		return fmt.Errorf("no session logs found in %s", flags.SessionDir)
	}

	store, err := dictionary.Open(flags.Dictionary)
	if err != nil {
		return err
	}
	defer store.Close()
	resolver := translate.NewResolver(translate.NewLocalSource(store))

	var lines []string
	for _, file := range files {
		fileLines, err := session.ReadLines(file)
		if err != nil {
			return err
		}
		lines = append(lines, fileLines...)
	}

	prior, err := frequency.ReadTable(flags.WordsFile)
	if err != nil {
		return err
	}
	whitelist, err := frequency.LoadWhitelist(flags.Whitelist)
	if err != nil {
		return err
	}

	agg := frequency.NewAggregator(resolver, flags.MinLength)
	records := agg.Aggregate(context.Background(), lines, prior, whitelist)
	if err := frequency.WriteTable(flags.WordsFile, records); err != nil {
		return err
	}

	fmt.Printf("Aggregated %d session log(s): %d words in %s\n", len(files), len(records), flags.WordsFile)
	return nil
}

func newMergeCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge partial vocabulary tables into the main one",
		Long: `merge combines every table matching the pattern into the main
vocabulary table: frequencies are summed and translation variants unioned.
Merged input files are removed unless --keep is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(flags)
		},
	}
	cmd.Flags().StringVar(&flags.MergePattern, "pattern", flags.MergePattern, "Glob pattern of tables to merge")
	cmd.Flags().BoolVar(&flags.KeepInputs, "keep", false, "Keep merged input files")
	return cmd
}

func runMerge(flags *Flags) error {
	files, err := filepath.Glob(flags.MergePattern)
	if err != nil {
		return fmt.Errorf("bad merge pattern %q: %w", flags.MergePattern, err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no tables match %q", flags.MergePattern)
	}

	outAbs, _ := filepath.Abs(flags.WordsFile)
	tables := make([][]frequency.Record, 0, len(files))
	var merged []string
	for _, file := range files {
		if abs, _ := filepath.Abs(file); abs == outAbs {
			continue
		}
		table, err := frequency.ReadTable(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping %s: %v\n", file, err)
			continue
		}
		tables = append(tables, table)
		merged = append(merged, file)
	}
	if len(tables) == 0 {
		return fmt.Errorf("no readable tables match %q", flags.MergePattern)
	}

	records := frequency.MergeTables(tables...)
	if err := frequency.WriteTable(flags.WordsFile, records); err != nil {
		return err
	}

	if !flags.KeepInputs {
		for _, file := range merged {
			if err := os.Remove(file); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not remove %s: %v\n", file, err)
			}
		}
	}

	fmt.Printf("Merged %d table(s): %d words in %s\n", len(merged), len(records), flags.WordsFile)
	return nil
}
