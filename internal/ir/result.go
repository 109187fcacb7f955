package ir

// Thresholds are the two inclusive mining thresholds, both in [0, 1].
type Thresholds struct {
	MinSupport    float64 `json:"min_support"`
	MinConfidence float64 `json:"min_confidence"`
}

// FrequentItemset is an itemset that met minimum support, together with
// the absolute count and support computed when it was found.
type FrequentItemset struct {
	Itemset Itemset `json:"items"`
	Count   int     `json:"count"`
	Support float64 `json:"support"`
}

// Level holds the frequent itemsets of size K in sorted order.
type Level struct {
	K        int               `json:"k"`
	Itemsets []FrequentItemset `json:"itemsets"`
}

// Sets returns the bare itemsets of the level.
func (l Level) Sets() []Itemset {
	out := make([]Itemset, len(l.Itemsets))
	for i, fi := range l.Itemsets {
		out[i] = fi.Itemset
	}
	return out
}

// Rule is an association rule Antecedent => Consequent.
//
// Antecedent and Consequent are non-empty and disjoint; their union is the
// frequent itemset the rule was derived from. Confidence equals
// UnionCount / AntecedentCount.
type Rule struct {
	Antecedent      Itemset `json:"antecedent"`
	Consequent      Itemset `json:"consequent"`
	UnionCount      int     `json:"union_count"`
	AntecedentCount int     `json:"antecedent_count"`
	Support         float64 `json:"support"`
	Confidence      float64 `json:"confidence"`
}

// Source returns the frequent itemset the rule partitions.
func (r Rule) Source() Itemset {
	return r.Antecedent.Union(r.Consequent)
}

// String renders the rule as "{a} => {b}".
func (r Rule) String() string {
	return r.Antecedent.String() + " => " + r.Consequent.String()
}

// Result is the complete output of one mining run.
type Result struct {
	TransactionCount int        `json:"transaction_count"`
	Thresholds       Thresholds `json:"thresholds"`
	Levels           []Level    `json:"levels"`
	Rules            []Rule     `json:"rules"`
}

// Level returns the level holding k-itemsets, if one was recorded.
func (r *Result) Level(k int) (Level, bool) {
	if k < 1 || k > len(r.Levels) {
		return Level{}, false
	}
	return r.Levels[k-1], true
}

// Find looks up a frequent itemset by set equality across all levels.
func (r *Result) Find(s Itemset) (FrequentItemset, bool) {
	lvl, ok := r.Level(s.Len())
	if !ok {
		return FrequentItemset{}, false
	}
	for _, fi := range lvl.Itemsets {
		if fi.Itemset.Equal(s) {
			return fi, true
		}
	}
	return FrequentItemset{}, false
}

// FindRule looks up a rule by antecedent and consequent.
func (r *Result) FindRule(antecedent, consequent Itemset) (Rule, bool) {
	for _, rule := range r.Rules {
		if rule.Antecedent.Equal(antecedent) && rule.Consequent.Equal(consequent) {
			return rule, true
		}
	}
	return Rule{}, false
}

// ItemsetCount returns the number of frequent itemsets across all levels.
func (r *Result) ItemsetCount() int {
	n := 0
	for _, lvl := range r.Levels {
		n += len(lvl.Itemsets)
	}
	return n
}
