package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/danielplaskur/wortschatz/internal/capture"
	"github.com/danielplaskur/wortschatz/internal/dictionary"
	"github.com/danielplaskur/wortschatz/internal/frequency"
	"github.com/danielplaskur/wortschatz/internal/ocr"
	"github.com/danielplaskur/wortschatz/internal/segment"
	"github.com/danielplaskur/wortschatz/internal/session"
	"github.com/danielplaskur/wortschatz/internal/translate"
)

func newCaptureCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "capture",
		Short: "Translate recognized screen text live and build vocabulary on exit",
		Long: `capture runs the live pipeline: each cycle one raw text observation is
taken from the frame directory (OCR) or stdin, segmented into sentences,
translated word by word and printed. Originals are appended to a session
log. On interrupt the session is aggregated into the vocabulary table.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCapture(flags, true)
		},
	}
	addCaptureFlags(cmd, flags)
	return cmd
}

func newRecordCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record recognized sentences to a session log without translating",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCapture(flags, false)
		},
	}
	addCaptureFlags(cmd, flags)
	return cmd
}

func addCaptureFlags(cmd *cobra.Command, flags *Flags) {
	cmd.Flags().StringVar(&flags.FramesDir, "frames", "", "Directory of captured frame images to OCR")
	cmd.Flags().BoolVar(&flags.Stdin, "stdin", false, "Read raw text observations from stdin instead of running OCR")
	cmd.Flags().DurationVar(&flags.Interval, "interval", flags.Interval, "Capture interval")
	cmd.Flags().StringSliceVar(&flags.Languages, "lang", flags.Languages, "Tesseract language packs")
	cmd.Flags().IntVar(&flags.PageSegMode, "psm", flags.PageSegMode, "Tesseract page segmentation mode")
	cmd.Flags().BoolVar(&flags.SkipUnchanged, "skip-unchanged", flags.SkipUnchanged, "Skip frames whose raw text did not change")
	cmd.Flags().BoolVar(&flags.DedupeHistory, "dedupe-history", false, "Suppress sentences already emitted at any point this run")
	cmd.Flags().BoolVar(&flags.NoRemote, "no-remote", false, "Disable the remote translation fallback")
}

func runCapture(flags *Flags, translateLive bool) error {
	var resolver *translate.Resolver
	var store *dictionary.Store
	if translateLive {
		var err error
		store, err = dictionary.Open(flags.Dictionary)
		if err != nil {
			return err
		}
		defer store.Close()

		sources := []translate.Source{translate.NewLocalSource(store)}
		if key := GetOpenAIKey(); key != "" && !flags.NoRemote {
			sources = append(sources, translate.NewRemoteSource(key))
		}
		resolver = translate.NewResolver(sources...)
	}

	recognizer, err := buildRecognizer(flags)
	if err != nil {
		return err
	}

	sessionPath := filepath.Join(flags.SessionDir, session.Filename(time.Now()))
	log, err := session.OpenLog(sessionPath)
	if err != nil {
		return err
	}

	seg := segment.New(segment.Config{
		SkipUnchangedFrames: flags.SkipUnchanged,
		DedupeFullHistory:   flags.DedupeHistory,
	})
	runner := capture.NewRunner(recognizer, seg, resolver, log, capture.Config{
		Interval: flags.Interval,
		OnSentence: func(ev capture.Event) {
			if ev.Translated != "" {
				fmt.Printf("%s\n=> %s\n\n", ev.Original, ev.Translated)
			} else {
				fmt.Println(ev.Original)
			}
		},
	})

	fmt.Fprintf(os.Stderr, "Capturing every %s, press Ctrl+C to stop...\n", flags.Interval)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	runErr := runner.Run(ctx)
	stop()

	if err := log.Close(); err != nil && runErr == nil {
		runErr = fmt.Errorf("close session log: %w", err)
	}
	fmt.Fprintf(os.Stderr, "\nSession saved to %s\n", sessionPath)

	if translateLive {
		// Best-effort vocabulary even after an interrupt: aggregate whatever
		// the session logged before the stop. The flush resolves strictly
		// from the local dictionary; remote lookups stay in the live loop.
		agg := frequency.NewAggregator(translate.NewResolver(translate.NewLocalSource(store)), flags.MinLength)
		flusher := capture.NewFlusher(agg, sessionPath, flags.WordsFile, flags.Whitelist)
		if err := flusher.Flush(context.Background()); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Vocabulary table updated: %s\n", flags.WordsFile)
	}
	return runErr
}

func buildRecognizer(flags *Flags) (capture.Recognizer, error) {
	switch {
	case flags.Stdin:
		return capture.NewLineRecognizer(os.Stdin), nil
	case flags.FramesDir != "":
		engine := ocr.NewEngine(flags.Languages, flags.PageSegMode)
		return ocr.NewFrameRecognizer(ocr.NewDirSource(flags.FramesDir), engine), nil
	default:
		return nil, fmt.Errorf("no capture input: use --frames or --stdin (screen grabbing is left to an external capture tool)")
	}
}
