// Package journal derives the statistics shown next to journal entries:
// entries written today, the daily streak, the overall mood of recent
// entries and short previews.
//
// Entries are caller-owned values. Nothing here reads or writes storage.
package journal
