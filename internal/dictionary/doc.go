// Package dictionary wraps a wikdict-style SQLite translation store. The
// store holds one table, translation(written_rep, trans_list, score,
// is_good), with trans_list carrying pipe-separated English variants for a
// German headword. Lookups are exact and case-insensitive.
package dictionary
