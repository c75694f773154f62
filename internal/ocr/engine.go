package ocr

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// DefaultLanguages is the Tesseract language set for German screen text
// with occasional English mixed in.
var DefaultLanguages = []string{"deu", "eng"}

// Engine recognizes text in image frames using gosseract. A fresh client
// is created per frame; setup cost is negligible next to the capture
// interval.
type Engine struct {
	languages     []string
	pageSegMode   int
	clientFactory func() *gosseract.Client
}

// NewEngine creates an engine with the given language hints and Tesseract
// page segmentation mode (0 keeps the Tesseract default).
func NewEngine(languages []string, pageSegMode int) *Engine {
	if len(languages) == 0 {
		languages = DefaultLanguages
	}
	return &Engine{
		languages:     languages,
		pageSegMode:   pageSegMode,
		clientFactory: gosseract.NewClient,
	}
}

// Recognize runs OCR over one frame and returns the trimmed text.
func (e *Engine) Recognize(ctx context.Context, frame []byte) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	c := e.clientFactory()
	defer c.Close()

	if err := c.SetImageFromBytes(frame); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	if err := c.SetLanguage(e.languages...); err != nil {
		return "", fmt.Errorf("set languages: %w", err)
	}
	if e.pageSegMode > 0 {
		if err := c.SetPageSegMode(gosseract.PageSegMode(e.pageSegMode)); err != nil {
			return "", fmt.Errorf("set page segmentation mode: %w", err)
		}
	}

	text, err := c.Text()
	if err != nil {
		return "", fmt.Errorf("recognize frame: %w", err)
	}
	return strings.TrimSpace(text), nil
}
