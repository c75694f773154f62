package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/danielplaskur/wortschatz/internal/dictionary"
	"github.com/danielplaskur/wortschatz/internal/frequency"
	"github.com/danielplaskur/wortschatz/internal/translate"
)

func newTranslateCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate",
		Short: "Fill missing translations in the vocabulary table",
		Long: `translate walks the vocabulary table and resolves every word that has
no translation yet: local dictionary first, then the remote service, then
an interactive prompt. Answering the prompt with an empty line skips the
word, moves it to the whitelist and drops it from the table. Manual
answers are written back to the dictionary store so later runs resolve
them locally. Progress is saved on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslateFill(flags)
		},
	}
	cmd.Flags().BoolVar(&flags.NoRemote, "no-remote", false, "Disable the remote translation fallback")
	return cmd
}

func runTranslateFill(flags *Flags) error {
	store, err := dictionary.Open(flags.Dictionary)
	if err != nil {
		return err
	}
	defer store.Close()

	sources := []translate.Source{translate.NewLocalSource(store)}
	if key := GetOpenAIKey(); key != "" && !flags.NoRemote {
		sources = append(sources, translate.NewRemoteSource(key))
	}
	sources = append(sources, translate.NewManualSource(os.Stdin, os.Stdout))
	resolver := translate.NewResolver(sources...)

	records, err := frequency.ReadTable(flags.WordsFile)
	if err != nil {
		return err
	}

	missing := 0
	for _, rec := range records {
		if rec.Translation == "" {
			missing++
		}
	}
	if missing == 0 {
		fmt.Println("All words already have translations.")
		return nil
	}
	fmt.Printf("Found %d word(s) that need translation\n", missing)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kept := records[:0]
	resolved, skipped := 0, 0
	interrupted := false
	for _, rec := range records {
		if interrupted || rec.Translation != "" {
			kept = append(kept, rec)
			continue
		}
		select {
		case <-ctx.Done():
			interrupted = true
			kept = append(kept, rec)
			continue
		default:
		}

		entry, ok := resolver.ResolveEntry(ctx, rec.Word)
		if !ok {
			if err := frequency.AppendToWhitelist(flags.Whitelist, rec.Word); err != nil {
				return err
			}
			fmt.Printf("Skipped '%s', added to whitelist\n", rec.Word)
			skipped++
			continue
		}

		rec.Translation = entry.Joined()
		if entry.Source == "manual" {
			// Persist the confirmed answer so later runs resolve it locally.
			if err := store.Add(ctx, rec.Word, entry.Best()); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not save %q to dictionary: %v\n", rec.Word, err)
			}
		}
		fmt.Printf("%s = %s (%s)\n", rec.Word, rec.Translation, entry.Source)
		resolved++
		kept = append(kept, rec)
	}

	if err := frequency.WriteTable(flags.WordsFile, kept); err != nil {
		return err
	}

	if interrupted {
		fmt.Printf("\nInterrupted: progress saved to %s\n", flags.WordsFile)
	}
	fmt.Printf("Translated %d word(s), skipped %d\n", resolved, skipped)
	return nil
}
