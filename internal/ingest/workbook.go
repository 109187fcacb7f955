package ingest

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadWorkbook parses transactions from the given sheet of an .xlsx stream.
// An empty sheet name selects the first sheet.
func ReadWorkbook(r io.Reader, sheet string) (*Corpus, error) {
	raw, err := readWorkbook(r, sheet)
	if err != nil {
		return nil, err
	}
	return build(raw)
}

func readWorkbook(r io.Reader, sheet string) (rows, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return rows{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return rows{}, fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	cells, err := f.GetRows(sheet)
	if err != nil {
		return rows{}, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	var out rows
	for i, row := range cells {
		row = trimTrailingBlank(row)
		if len(row) == 0 {
			continue
		}
		// Blank cells inside a row are kept so the row is rejected as
		// malformed with its row number.
		out.tokens = append(out.tokens, row)
		out.lines = append(out.lines, i+1)
	}
	return out, nil
}

// trimTrailingBlank drops blank cells at the end of a ragged row.
func trimTrailingBlank(row []string) []string {
	end := len(row)
	for end > 0 && trimmedEmpty(row[end-1]) {
		end--
	}
	return row[:end]
}

func trimmedEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}
