package engine

import "github.com/roach88/basket/internal/ir"

// antecedents returns every non-empty proper subset of s: 2^k - 2 itemsets
// for k members. Order is by increasing size, then lexicographic member
// order, which is stable for a given itemset.
func antecedents(s ir.Itemset) []ir.Itemset {
	items := s.Items()
	n := len(items)
	if n < 2 {
		return nil
	}

	out := make([]ir.Itemset, 0, (1<<n)-2)
	for size := 1; size < n; size++ {
		combinations(n, size, func(idx []int) {
			members := make([]ir.Item, size)
			for i, j := range idx {
				members[i] = items[j]
			}
			out = append(out, ir.NewItemset(members...))
		})
	}
	return out
}

// combinations calls fn with each size-r index combination of 0..n-1 in
// lexicographic order. fn must not retain idx.
func combinations(n, r int, fn func(idx []int)) {
	idx := make([]int, r)
	for i := range idx {
		idx[i] = i
	}
	for {
		fn(idx)

		// Rightmost index that can still advance.
		i := r - 1
		for i >= 0 && idx[i] == n-r+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < r; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
