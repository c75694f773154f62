// Package frequency builds and maintains the persistent vocabulary table.
// It tokenizes logged sentences, counts word occurrences, merges counts
// additively with the table from earlier runs, fills in missing
// translations, and writes the result as a CSV sorted by frequency.
package frequency
