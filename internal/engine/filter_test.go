package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/basket/internal/ir"
	"github.com/roach88/basket/internal/testutil"
)

func TestFilterFrequent(t *testing.T) {
	candidates := []ir.Itemset{
		ir.NewItemset("beer", "bread"),
		ir.NewItemset("beer", "diaper"),
		ir.NewItemset("bread", "milk"),
		ir.NewItemset("cola", "eggs"),
	}

	got := FilterFrequent(candidates, testutil.ClassicCorpus(), 0.6)
	assert.Equal(t, []ir.FrequentItemset{
		{Itemset: ir.NewItemset("beer", "diaper"), Count: 3, Support: 0.6},
		{Itemset: ir.NewItemset("bread", "milk"), Count: 3, Support: 0.6},
	}, got)
}

func TestFilterFrequentMatchesIndependentTests(t *testing.T) {
	corpus := testutil.ClassicCorpus()
	candidates := Candidates([]ir.Itemset{
		ir.NewItemset("beer"), ir.NewItemset("bread"), ir.NewItemset("cola"),
		ir.NewItemset("diaper"), ir.NewItemset("eggs"), ir.NewItemset("milk"),
	}, 2)

	kept := make(map[string]bool)
	for _, fi := range FilterFrequent(candidates, corpus, 0.4) {
		kept[fi.Itemset.Key()] = true
	}
	for _, c := range candidates {
		assert.Equal(t, Support(c, corpus) >= 0.4, kept[c.Key()], "candidate %s", c)
	}
}

func TestFilterFrequentEmpty(t *testing.T) {
	assert.Empty(t, FilterFrequent(nil, testutil.ClassicCorpus(), 0.1))
}
