// Package store persists the results ledger: one row per CLI run of a
// day's puzzle, carrying both answers and how long each part took.
//
// Backing storage is SQLite with WAL mode; the schema is embedded and
// applied idempotently on open. Run ids are UUIDv7 so the ledger sorts
// chronologically by id as well as by timestamp.
package store
