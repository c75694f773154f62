// Package ocr adapts a local Tesseract install (via gosseract) to the
// capture loop's Recognizer contract. It is deliberately thin: frame
// acquisition and image preprocessing live outside the pipeline, this
// package only turns frame bytes into text.
package ocr
