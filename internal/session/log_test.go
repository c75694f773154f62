package session

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestFilename(t *testing.T) {
	ts := time.Date(2025, time.March, 7, 21, 5, 30, 0, time.UTC)
	if got, want := Filename(ts), "session-07.03.2025-21-05.txt"; got != want {
		t.Errorf("Filename() = %q, want %q", got, want)
	}
}

func TestLogAppendAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session-test.txt")

	log, err := OpenLog(path)
	if err != nil {
		t.Fatalf("OpenLog() error = %v", err)
	}
	sentences := []string{"Hallo Welt.", "Wie geht es dir?"}
	for _, s := range sentences {
		if err := log.Append(s); err != nil {
			t.Fatalf("Append(%q) error = %v", s, err)
		}
	}
	if err := log.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	lines, err := ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines() error = %v", err)
	}
	if !reflect.DeepEqual(lines, sentences) {
		t.Errorf("ReadLines() = %v, want %v", lines, sentences)
	}
}

func TestLogAppendsAcrossReopens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session-test.txt")

	for _, s := range []string{"Erster Satz.", "Zweiter Satz."} {
		log, err := OpenLog(path)
		if err != nil {
			t.Fatal(err)
		}
		if err := log.Append(s); err != nil {
			t.Fatal(err)
		}
		log.Close()
	}

	lines, err := ReadLines(path)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Erster Satz.", "Zweiter Satz."}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("ReadLines() = %v, want %v", lines, want)
	}
}

func TestReadLinesMissingFile(t *testing.T) {
	lines, err := ReadLines(filepath.Join(t.TempDir(), "absent.txt"))
	if err != nil {
		t.Fatalf("ReadLines() error = %v", err)
	}
	if lines != nil {
		t.Errorf("ReadLines() = %v, want no lines", lines)
	}
}

func TestGlob(t *testing.T) {
	dir := t.TempDir()
	names := []string{
		"session-02.01.2025-09-00.txt",
		"session-01.01.2025-10-30.txt",
		"words.csv",
	}
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := Glob(dir)
	if err != nil {
		t.Fatalf("Glob() error = %v", err)
	}
	want := []string{
		filepath.Join(dir, "session-01.01.2025-10-30.txt"),
		filepath.Join(dir, "session-02.01.2025-09-00.txt"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Glob() = %v, want %v", got, want)
	}
}
