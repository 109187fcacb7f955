package ir

import (
	"fmt"
	"slices"
)

// Transaction is a read-only set of distinct items observed together.
type Transaction struct {
	items map[Item]struct{}
}

// NewTransaction normalizes the raw tokens into a transaction.
// Duplicate tokens collapse. Any token that normalizes to nothing is
// rejected with an error wrapping ErrEmptyItem.
func NewTransaction(tokens ...string) (Transaction, error) {
	items := make(map[Item]struct{}, len(tokens))
	for i, tok := range tokens {
		item, err := NormalizeItem(tok)
		if err != nil {
			return Transaction{}, fmt.Errorf("token %d: %w", i, err)
		}
		items[item] = struct{}{}
	}
	return Transaction{items: items}, nil
}

// MustTransaction is like NewTransaction but panics on error.
func MustTransaction(tokens ...string) Transaction {
	t, err := NewTransaction(tokens...)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of distinct items.
func (t Transaction) Len() int {
	return len(t.items)
}

// Has reports whether item occurs in the transaction.
func (t Transaction) Has(item Item) bool {
	_, ok := t.items[item]
	return ok
}

// ContainsAll reports whether the transaction is a superset of s.
func (t Transaction) ContainsAll(s Itemset) bool {
	if s.Len() > len(t.items) {
		return false
	}
	for _, item := range s.items {
		if _, ok := t.items[item]; !ok {
			return false
		}
	}
	return true
}

// Items returns the members in sorted order.
func (t Transaction) Items() []Item {
	out := make([]Item, 0, len(t.items))
	for item := range t.items {
		out = append(out, item)
	}
	slices.Sort(out)
	return out
}

// Itemset returns the transaction's members as an itemset.
func (t Transaction) Itemset() Itemset {
	return Itemset{items: t.Items()}
}
