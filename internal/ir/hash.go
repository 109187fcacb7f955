package ir

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
)

// DomainResult is the domain prefix for result digests.
// The version suffix enables future algorithm migration.
const DomainResult = "basket/result/v1"

// hashWithDomain computes SHA-256 with domain separation.
// Format: SHA256(domain + 0x00 + data)
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// formatThreshold renders a threshold for canonical encoding, which forbids floats.
func formatThreshold(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ResultDigest computes a content-addressed digest of a mining result.
//
// Only exact integer data takes part: counts, item names and the thresholds
// formatted as shortest round-trip strings. Derived floats (support,
// confidence) follow from the counts and are excluded, so the digest is
// identical for identical inputs on every platform.
func ResultDigest(r *Result) (string, error) {
	levels := make([]any, len(r.Levels))
	for i, lvl := range r.Levels {
		sets := make([]any, len(lvl.Itemsets))
		for j, fi := range lvl.Itemsets {
			sets[j] = map[string]any{
				"items": fi.Itemset,
				"count": fi.Count,
			}
		}
		levels[i] = map[string]any{
			"k":        lvl.K,
			"itemsets": sets,
		}
	}

	rules := make([]any, len(r.Rules))
	for i, rule := range r.Rules {
		rules[i] = map[string]any{
			"antecedent":       rule.Antecedent,
			"consequent":       rule.Consequent,
			"union_count":      rule.UnionCount,
			"antecedent_count": rule.AntecedentCount,
		}
	}

	obj := map[string]any{
		"schema_version":    SchemaVersion,
		"transaction_count": r.TransactionCount,
		"min_support":       formatThreshold(r.Thresholds.MinSupport),
		"min_confidence":    formatThreshold(r.Thresholds.MinConfidence),
		"levels":            levels,
		"rules":             rules,
	}

	canonical, err := MarshalCanonical(obj)
	if err != nil {
		return "", fmt.Errorf("ResultDigest: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainResult, canonical), nil
}

// MustResultDigest is like ResultDigest but panics on error.
func MustResultDigest(r *Result) string {
	d, err := ResultDigest(r)
	if err != nil {
		panic(fmt.Sprintf("MustResultDigest: %v", err))
	}
	return d
}
