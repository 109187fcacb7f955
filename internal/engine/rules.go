package engine

import "github.com/roach88/basket/internal/ir"

// Rules derives the association rules of every frequent itemset of size
// >= 2 in levels whose confidence meets minConfidence (inclusive).
//
// Support and confidence are recomputed against transactions rather than
// read from the level data. Level 1 contributes nothing.
func Rules(levels []ir.Level, transactions []ir.Transaction, minConfidence float64) ([]ir.Rule, error) {
	if err := ValidateThreshold("min_confidence", minConfidence); err != nil {
		return nil, err
	}
	if err := ValidateCorpus(transactions); err != nil {
		return nil, err
	}
	return deriveRules(levels, transactions, minConfidence), nil
}

func deriveRules(levels []ir.Level, transactions []ir.Transaction, minConfidence float64) []ir.Rule {
	total := len(transactions)
	rules := []ir.Rule{}

	for _, lvl := range levels {
		for _, fi := range lvl.Itemsets {
			source := fi.Itemset
			if source.Len() < 2 {
				continue
			}
			unionCount := Count(source, transactions)

			for _, antecedent := range antecedents(source) {
				antecedentCount := Count(antecedent, transactions)
				// Only reachable with minSupport = 0.
				if antecedentCount == 0 {
					continue
				}
				confidence := ratio(unionCount, antecedentCount)
				if confidence < minConfidence {
					continue
				}
				rules = append(rules, ir.Rule{
					Antecedent:      antecedent,
					Consequent:      source.Minus(antecedent),
					UnionCount:      unionCount,
					AntecedentCount: antecedentCount,
					Support:         ratio(unionCount, total),
					Confidence:      confidence,
				})
			}
		}
	}
	return rules
}
