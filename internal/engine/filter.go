package engine

import "github.com/roach88/basket/internal/ir"

// FilterFrequent keeps the candidates whose support meets minSupport.
// Candidate order is preserved.
func FilterFrequent(candidates []ir.Itemset, transactions []ir.Transaction, minSupport float64) []ir.FrequentItemset {
	total := len(transactions)
	out := make([]ir.FrequentItemset, 0, len(candidates))
	for _, candidate := range candidates {
		count := Count(candidate, transactions)
		support := ratio(count, total)
		if support >= minSupport {
			out = append(out, ir.FrequentItemset{
				Itemset: candidate,
				Count:   count,
				Support: support,
			})
		}
	}
	return out
}
