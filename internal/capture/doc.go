// Package capture drives the live loop: it polls a Recognizer for raw OCR
// text at a fixed interval, feeds the segmenter, translates and announces
// each finalized sentence, and appends originals to the session log. The
// pipeline is single-threaded; one cycle fully completes before the next
// begins. A Flusher merges the finished session into the durable frequency
// table and is safe to call more than once.
package capture
