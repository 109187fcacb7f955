package engine

import "github.com/roach88/basket/internal/ir"

// ValidateThreshold checks that value lies within [0, 1]. NaN is rejected.
func ValidateThreshold(name string, value float64) error {
	if !(value >= 0 && value <= 1) {
		return NewThresholdError(name, value)
	}
	return nil
}

// ValidateThresholds checks both thresholds, support first.
func ValidateThresholds(th ir.Thresholds) error {
	if err := ValidateThreshold("min_support", th.MinSupport); err != nil {
		return err
	}
	return ValidateThreshold("min_confidence", th.MinConfidence)
}

// ValidateCorpus rejects an empty corpus.
func ValidateCorpus(transactions []ir.Transaction) error {
	if len(transactions) == 0 {
		return NewEmptyCorpusError()
	}
	return nil
}

// ParseTransactions normalizes raw token rows into transactions.
//
// This is the ingestion boundary: tokens are trimmed, NFC-normalized and
// lower-cased here. The first row holding an empty token fails the whole
// batch with a MALFORMED_TRANSACTION error; nothing is silently dropped.
func ParseTransactions(rows [][]string) ([]ir.Transaction, error) {
	out := make([]ir.Transaction, 0, len(rows))
	for i, row := range rows {
		tx, err := ir.NewTransaction(row...)
		if err != nil {
			return nil, NewMalformedError(i, err)
		}
		out = append(out, tx)
	}
	return out, nil
}
