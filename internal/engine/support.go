package engine

import "github.com/roach88/basket/internal/ir"

// Count returns how many transactions are supersets of itemset.
func Count(itemset ir.Itemset, transactions []ir.Transaction) int {
	n := 0
	for _, tx := range transactions {
		if tx.ContainsAll(itemset) {
			n++
		}
	}
	return n
}

// Support returns the fraction of transactions that are supersets of
// itemset, in [0, 1].
//
// An empty corpus has no support data and yields 0.0 rather than NaN.
func Support(itemset ir.Itemset, transactions []ir.Transaction) float64 {
	return ratio(Count(itemset, transactions), len(transactions))
}

// ratio divides two counts, returning 0 for a zero denominator.
func ratio(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total)
}
