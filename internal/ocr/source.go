package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FrameSource yields image frames for recognition. Next returns nil bytes
// when no new frame is available yet.
type FrameSource interface {
	Next(ctx context.Context) ([]byte, error)
}

// DirSource reads frames from a directory that an external screen-capture
// collaborator writes into. Files are consumed once each, in name order,
// which is chronological for timestamped capture filenames.
type DirSource struct {
	dir  string
	seen map[string]struct{}
}

// NewDirSource creates a source over the given directory.
func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir, seen: make(map[string]struct{})}
}

// Next returns the oldest unconsumed frame, or nil when the directory has
// nothing new.
func (s *DirSource) Next(ctx context.Context) ([]byte, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read frame directory %s: %w", s.dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !isFrameFile(e.Name()) {
			continue
		}
		if _, ok := s.seen[e.Name()]; ok {
			continue
		}
		names = append(names, e.Name())
	}
	if len(names) == 0 {
		return nil, nil
	}
	sort.Strings(names)

	name := names[0]
	s.seen[name] = struct{}{}
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return nil, fmt.Errorf("read frame %s: %w", name, err)
	}
	return data, nil
}

func isFrameFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg", ".bmp", ".tif", ".tiff":
		return true
	}
	return false
}

// FrameRecognizer pairs a frame source with the OCR engine to satisfy the
// capture loop's Recognizer contract.
type FrameRecognizer struct {
	source FrameSource
	engine *Engine
}

// NewFrameRecognizer creates the recognizer.
func NewFrameRecognizer(source FrameSource, engine *Engine) *FrameRecognizer {
	return &FrameRecognizer{source: source, engine: engine}
}

// Recognize fetches the next frame and runs OCR on it. A cycle with no new
// frame yields an empty observation.
func (r *FrameRecognizer) Recognize(ctx context.Context) (string, error) {
	frame, err := r.source.Next(ctx)
	if err != nil {
		return "", err
	}
	if frame == nil {
		return "", nil
	}
	return r.engine.Recognize(ctx, frame)
}
