// Package store keeps a history of verification runs in SQLite.
//
// Each run stores the report as JSON next to indexed columns (profile,
// outcome, timestamp) and a SHA-256 digest of the graph's edge list, so
// repeated runs of one profile can be compared for drift.
package store
