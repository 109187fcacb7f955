package ingest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/roach88/basket/internal/engine"
	"github.com/roach88/basket/internal/ir"
)

// Options controls how a source file is read.
type Options struct {
	// Sheet selects the workbook sheet. Empty means the first sheet.
	// Ignored for text sources.
	Sheet string
}

// Corpus is a parsed transaction source.
type Corpus struct {
	// Source is the path the corpus was read from.
	Source string

	// Transactions holds one entry per non-blank line or row.
	Transactions []ir.Transaction

	// Lines holds the 1-based source line (or sheet row) of each transaction.
	Lines []int
}

// DistinctItems returns the number of distinct items across the corpus.
func (c *Corpus) DistinctItems() int {
	seen := make(map[ir.Item]struct{})
	for _, tx := range c.Transactions {
		for _, item := range tx.Items() {
			seen[item] = struct{}{}
		}
	}
	return len(seen)
}

// rows is the raw shape produced by every reader.
type rows struct {
	tokens [][]string
	lines  []int
}

// IsWorkbook reports whether path names a spreadsheet source.
func IsWorkbook(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return true
	}
	return false
}

// LoadFile reads and parses the corpus at path, picking the reader by extension.
func LoadFile(path string, opts Options) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transactions: %w", err)
	}
	defer f.Close()

	var corpus *Corpus
	if IsWorkbook(path) {
		corpus, err = ReadWorkbook(f, opts.Sheet)
	} else {
		corpus, err = ReadText(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	corpus.Source = path
	return corpus, nil
}

// build converts raw rows, translating a malformed index into a line number.
func build(raw rows) (*Corpus, error) {
	txs, err := engine.ParseTransactions(raw.tokens)
	if err != nil {
		var ve *engine.ValidationError
		if errors.As(err, &ve) && ve.Index >= 0 && ve.Index < len(raw.lines) {
			return nil, fmt.Errorf("line %d: %w", raw.lines[ve.Index], err)
		}
		return nil, err
	}
	return &Corpus{Transactions: txs, Lines: raw.lines}, nil
}
