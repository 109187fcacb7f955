package engine

import (
	"slices"

	"github.com/roach88/basket/internal/ir"
)

// Candidates builds the distinct k-itemsets obtainable as the union of an
// unordered pair of (k-1)-itemsets from prev.
//
// A union is kept only when it has exactly k members, that is when the pair
// shares exactly k-2 items. Duplicates are removed by set equality,
// not by generating pair. This is the naive O(n^2) self-join without
// prefix-join or subset pruning. The output is sorted by Itemset.Compare.
func Candidates(prev []ir.Itemset, k int) []ir.Itemset {
	seen := make(map[string]struct{})
	var out []ir.Itemset

	for i := 0; i < len(prev); i++ {
		for j := i + 1; j < len(prev); j++ {
			candidate := prev[i].Union(prev[j])
			if candidate.Len() != k {
				continue
			}
			key := candidate.Key()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, candidate)
		}
	}

	slices.SortFunc(out, ir.Itemset.Compare)
	return out
}
