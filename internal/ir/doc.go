// Package ir provides the data model shared by every basket package.
//
// This package contains type definitions and value helpers only. All other
// internal packages import ir; ir imports nothing internal.
//
// Key design constraints:
//   - Items are normalized once, at the ingestion boundary (NormalizeItem)
//   - Itemsets are immutable sorted sets; every operation returns a new value
//   - Transactions are read-only sets once constructed
//   - Support and confidence are derived values carried on results, never
//     inputs to further mining
//   - All JSON tags use snake_case
package ir
