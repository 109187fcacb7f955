// Package engine implements level-wise frequent itemset mining and
// association rule derivation over an in-memory transaction corpus.
//
// ARCHITECTURE:
//
// Components, leaves first:
//   - Support / Count: fraction (count) of transactions that are supersets
//     of an itemset.
//   - FrequentSingles: frequent 1-itemsets from per-item transaction counts.
//   - Candidates: distinct k-itemsets from pairwise unions of (k-1)-itemsets.
//   - FilterFrequent: candidates meeting minimum support.
//   - Engine.FrequentLevels: the level-wise driver.
//   - Rules: every non-trivial antecedent/consequent split of each frequent
//     itemset of size >= 2 that meets minimum confidence.
//
// Mining Flow:
//  1. Validate thresholds and corpus (ValidationError, no partial results)
//  2. Level 1 from item counts; empty level terminates immediately
//  3. Level k from candidates of level k-1, filtered by support
//  4. The first empty level terminates the loop and is not recorded
//  5. Rules derived from levels 2..K against the full corpus
//
// The engine performs no I/O. The corpus is read-only throughout; every
// level and rule slice is freshly allocated and never mutated after it is
// returned.
//
// CRITICAL PATTERNS:
//
// Deterministic Ordering:
// Levels hold itemsets sorted by Itemset.Compare. Rules are emitted in level
// order, then source itemset order, then antecedent size, then lexicographic
// antecedent order. No map iteration order leaks into results.
//
// Inclusive Thresholds:
// An itemset is frequent iff support >= minSupport. A rule is kept iff
// confidence >= minConfidence. Confidence is computed from counts so the
// boundary is exact.
package engine
