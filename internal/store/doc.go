// Package store provides SQLite-backed archival of completed mining runs.
//
// Only final results are stored: the run parameters, every frequent itemset
// by level and every rule, in emission order. Nothing from inside the
// level-wise loop is persisted.
//
// # Critical Patterns
//
// Logical Ordering
//   - Runs are ordered by seq INTEGER (insertion order), NEVER timestamps
//   - Itemsets by (level, position); rules by position
//   - All queries include an explicit ORDER BY so reads are deterministic
//
// Idempotent Writes
//   - SaveRun with an existing ID is a no-op returning the stored summary
//
// Content Identity
//   - Each run carries ir.ResultDigest, so identical results from different
//     runs can be found with RunsByDigest
//
// # Connection Settings
//
// Pragmas travel in the DSN so go-sqlite3 sets them on every connection:
// journal_mode=WAL, synchronous=NORMAL, busy_timeout=5000 and
// foreign_keys=1. The pool holds a single connection.
package store
