package engine

import (
	"slices"

	"github.com/roach88/basket/internal/ir"
)

// FrequentSingles returns the frequent 1-itemsets of the corpus, sorted by item.
//
// Each item is counted once per transaction (a transaction is a set).
// An item is kept iff count/total >= minSupport.
func FrequentSingles(transactions []ir.Transaction, minSupport float64) []ir.FrequentItemset {
	counts := make(map[ir.Item]int)
	for _, tx := range transactions {
		for _, item := range tx.Items() {
			counts[item]++
		}
	}

	items := make([]ir.Item, 0, len(counts))
	for item := range counts {
		items = append(items, item)
	}
	slices.Sort(items)

	total := len(transactions)
	out := make([]ir.FrequentItemset, 0, len(items))
	for _, item := range items {
		support := ratio(counts[item], total)
		if support >= minSupport {
			out = append(out, ir.FrequentItemset{
				Itemset: ir.NewItemset(item),
				Count:   counts[item],
				Support: support,
			})
		}
	}
	return out
}
