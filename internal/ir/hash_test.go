package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *Result {
	return &Result{
		TransactionCount: 5,
		Thresholds:       Thresholds{MinSupport: 0.6, MinConfidence: 0.6},
		Levels: []Level{
			{K: 1, Itemsets: []FrequentItemset{
				{Itemset: NewItemset("bread"), Count: 4, Support: 0.8},
				{Itemset: NewItemset("milk"), Count: 4, Support: 0.8},
			}},
			{K: 2, Itemsets: []FrequentItemset{
				{Itemset: NewItemset("bread", "milk"), Count: 3, Support: 0.6},
			}},
		},
		Rules: []Rule{
			{
				Antecedent:      NewItemset("bread"),
				Consequent:      NewItemset("milk"),
				UnionCount:      3,
				AntecedentCount: 4,
				Support:         0.6,
				Confidence:      0.75,
			},
		},
	}
}

func TestResultDigestDeterminism(t *testing.T) {
	d1, err := ResultDigest(sampleResult())
	require.NoError(t, err)
	d2, err := ResultDigest(sampleResult())
	require.NoError(t, err)

	assert.Equal(t, d1, d2, "ResultDigest must be deterministic")
	assert.Len(t, d1, 64, "SHA-256 hex is 64 characters")
}

func TestResultDigestChangesWithInput(t *testing.T) {
	base := MustResultDigest(sampleResult())

	countChanged := sampleResult()
	countChanged.Levels[1].Itemsets[0].Count = 4

	thresholdChanged := sampleResult()
	thresholdChanged.Thresholds.MinConfidence = 0.7

	ruleDropped := sampleResult()
	ruleDropped.Rules = nil

	assert.NotEqual(t, base, MustResultDigest(countChanged))
	assert.NotEqual(t, base, MustResultDigest(thresholdChanged))
	assert.NotEqual(t, base, MustResultDigest(ruleDropped))
}

func TestResultDigestIgnoresDerivedFloats(t *testing.T) {
	base := MustResultDigest(sampleResult())

	r := sampleResult()
	r.Rules[0].Confidence = 0.7499999999
	assert.Equal(t, base, MustResultDigest(r))
}

func TestHashWithDomainSeparation(t *testing.T) {
	data := []byte("payload")
	assert.NotEqual(t, hashWithDomain("a", data), hashWithDomain("b", data))
	// Domain/data boundary is unambiguous thanks to the NUL separator.
	assert.NotEqual(t, hashWithDomain("ab", []byte("c")), hashWithDomain("a", []byte("bc")))
}
