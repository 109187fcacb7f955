package store

import (
	"encoding/json"
	"fmt"

	"github.com/roach88/basket/internal/ir"
)

// marshalItemset converts an itemset to canonical JSON TEXT for storage.
func marshalItemset(s ir.Itemset) (string, error) {
	data, err := ir.MarshalCanonical(s)
	if err != nil {
		return "", fmt.Errorf("marshal itemset: %w", err)
	}
	return string(data), nil
}

// unmarshalItemset parses a stored JSON array back into an itemset.
// Stored items are already normalized.
func unmarshalItemset(text string) (ir.Itemset, error) {
	var values []string
	if err := json.Unmarshal([]byte(text), &values); err != nil {
		return ir.Itemset{}, fmt.Errorf("unmarshal itemset: %w", err)
	}
	return ir.NewItemsetFromStrings(values...), nil
}
