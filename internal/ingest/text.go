package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// ReadText parses comma-separated transactions from r.
func ReadText(r io.Reader) (*Corpus, error) {
	raw, err := readText(r)
	if err != nil {
		return nil, err
	}
	return build(raw)
}

// readText uses encoding/csv so quoted items may contain commas.
// csv.Reader already skips empty lines.
func readText(r io.Reader) (rows, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	var out rows
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return rows{}, fmt.Errorf("parse transactions: %w", err)
		}
		if isBlank(record) {
			continue
		}
		line, _ := reader.FieldPos(0)
		out.tokens = append(out.tokens, record)
		out.lines = append(out.lines, line)
	}
}

// isBlank reports a line holding only whitespace, e.g. "   ".
func isBlank(record []string) bool {
	return len(record) == 1 && trimmedEmpty(record[0])
}
