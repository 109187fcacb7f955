package ir

import (
	"encoding/json"
	"slices"
	"strconv"
	"strings"
)

// Itemset is an immutable set of distinct items, kept sorted.
// The zero value is the empty itemset.
type Itemset struct {
	items []Item
}

// NewItemset builds an itemset from already-normalized items.
// Duplicates collapse; the input slice is not retained.
func NewItemset(items ...Item) Itemset {
	if len(items) == 0 {
		return Itemset{}
	}
	sorted := slices.Clone(items)
	slices.Sort(sorted)
	return Itemset{items: slices.Compact(sorted)}
}

// NewItemsetFromStrings builds an itemset from already-normalized strings,
// such as values read back from the store.
func NewItemsetFromStrings(values ...string) Itemset {
	items := make([]Item, len(values))
	for i, v := range values {
		items[i] = Item(v)
	}
	return NewItemset(items...)
}

// ParseItemset normalizes raw tokens and builds an itemset.
func ParseItemset(tokens ...string) (Itemset, error) {
	items := make([]Item, 0, len(tokens))
	for _, tok := range tokens {
		item, err := NormalizeItem(tok)
		if err != nil {
			return Itemset{}, err
		}
		items = append(items, item)
	}
	return NewItemset(items...), nil
}

// MustParseItemset is like ParseItemset but panics on error.
func MustParseItemset(tokens ...string) Itemset {
	s, err := ParseItemset(tokens...)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of items.
func (s Itemset) Len() int {
	return len(s.items)
}

// IsEmpty reports whether the itemset has no items.
func (s Itemset) IsEmpty() bool {
	return len(s.items) == 0
}

// Items returns a copy of the members in sorted order.
func (s Itemset) Items() []Item {
	return slices.Clone(s.items)
}

// Strings returns the members as plain strings in sorted order.
func (s Itemset) Strings() []string {
	out := make([]string, len(s.items))
	for i, item := range s.items {
		out[i] = string(item)
	}
	return out
}

// Key returns a string uniquely identifying the set of members.
// Two itemsets have the same key iff they are equal.
func (s Itemset) Key() string {
	// Length-prefixed so no item content can collide with a boundary.
	var b strings.Builder
	for _, item := range s.items {
		b.WriteString(strconv.Itoa(len(item)))
		b.WriteByte(':')
		b.WriteString(string(item))
	}
	return b.String()
}

// Contains reports whether item is a member.
func (s Itemset) Contains(item Item) bool {
	_, found := slices.BinarySearch(s.items, item)
	return found
}

// Equal reports set equality.
func (s Itemset) Equal(other Itemset) bool {
	return slices.Equal(s.items, other.items)
}

// Union returns a new itemset holding the members of both.
func (s Itemset) Union(other Itemset) Itemset {
	out := make([]Item, 0, len(s.items)+len(other.items))
	i, j := 0, 0
	for i < len(s.items) && j < len(other.items) {
		switch {
		case s.items[i] < other.items[j]:
			out = append(out, s.items[i])
			i++
		case s.items[i] > other.items[j]:
			out = append(out, other.items[j])
			j++
		default:
			out = append(out, s.items[i])
			i++
			j++
		}
	}
	out = append(out, s.items[i:]...)
	out = append(out, other.items[j:]...)
	return Itemset{items: out}
}

// Minus returns a new itemset with the members of other removed.
func (s Itemset) Minus(other Itemset) Itemset {
	out := make([]Item, 0, len(s.items))
	for _, item := range s.items {
		if !other.Contains(item) {
			out = append(out, item)
		}
	}
	return Itemset{items: out}
}

// Disjoint reports whether the two itemsets share no member.
func (s Itemset) Disjoint(other Itemset) bool {
	for _, item := range s.items {
		if other.Contains(item) {
			return false
		}
	}
	return true
}

// Compare orders itemsets by size, then lexicographically by members.
func (s Itemset) Compare(other Itemset) int {
	if len(s.items) != len(other.items) {
		if len(s.items) < len(other.items) {
			return -1
		}
		return 1
	}
	return slices.Compare(s.items, other.items)
}

// String renders the itemset as "{a, b, c}".
func (s Itemset) String() string {
	return "{" + strings.Join(s.Strings(), ", ") + "}"
}

// MarshalJSON encodes the itemset as a sorted array of strings.
func (s Itemset) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Strings())
}

// UnmarshalJSON decodes a JSON array of already-normalized strings.
func (s *Itemset) UnmarshalJSON(data []byte) error {
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	*s = NewItemsetFromStrings(values...)
	return nil
}
