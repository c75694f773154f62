// Package segment reconstructs clean sentences from noisy frame-by-frame
// OCR output. It suppresses repeated frames, accumulates tokens across
// capture cycles until a sentence terminator appears, and drops sentences
// that were already emitted. It also provides the word tokenization rule
// shared with the frequency aggregation step.
package segment
