package testutil

import (
	"github.com/roach88/basket/internal/ir"
)

// ClassicRows returns the five-basket market corpus used throughout the tests.
//
// Expected at minSupport=0.6: {bread} {milk} {diaper} at 0.8, {beer} at 0.6;
// {beer,diaper} {bread,diaper} {bread,milk} {diaper,milk} at 0.6; no 3-itemsets.
func ClassicRows() [][]string {
	return [][]string{
		{"bread", "milk"},
		{"bread", "diaper", "beer", "eggs"},
		{"milk", "diaper", "beer", "cola"},
		{"bread", "milk", "diaper", "beer"},
		{"bread", "milk", "diaper", "cola"},
	}
}

// ClassicCorpus returns ClassicRows as transactions.
func ClassicCorpus() []ir.Transaction {
	return Transactions(ClassicRows()...)
}

// Transactions builds transactions from token rows, panicking on malformed rows.
func Transactions(rows ...[]string) []ir.Transaction {
	out := make([]ir.Transaction, len(rows))
	for i, row := range rows {
		out[i] = ir.MustTransaction(row...)
	}
	return out
}
