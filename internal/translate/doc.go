// Package translate resolves German words to English through a prioritized
// chain of sources: the local dictionary store, a remote translation
// service, and (in batch workflows only) an interactive prompt. Results
// are cached for the lifetime of the process, and words no source knows
// are passed through unchanged so partially translated sentences stay
// readable.
package translate
