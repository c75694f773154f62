package capture

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// LineRecognizer reads one raw observation per line from a reader,
// typically stdin fed by an external OCR tool. It reports io.EOF when the
// input ends so the runner stops instead of spinning.
type LineRecognizer struct {
	scanner *bufio.Scanner
}

// NewLineRecognizer creates a recognizer over r.
func NewLineRecognizer(r io.Reader) *LineRecognizer {
	return &LineRecognizer{scanner: bufio.NewScanner(r)}
}

// Recognize returns the next line of input.
func (r *LineRecognizer) Recognize(ctx context.Context) (string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", fmt.Errorf("read observation: %w", err)
		}
		return "", io.EOF
	}
	return r.scanner.Text(), nil
}
