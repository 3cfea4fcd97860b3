// Package storage provides SQLite persistence for parsed tournament
// reports.
//
// The storage package maps a report onto a small relational schema:
// tournaments (deduplicated by name and date), players keyed by their
// normalized external ID, per-tournament sections with sequential ids,
// per-section participation rows, and one game row per decodable round
// result with the opponent resolved by printed position.
package storage
