package ingest

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/roach88/basket/internal/engine"
	"github.com/roach88/basket/internal/ir"
)

const classicText = `bread, milk
bread,diaper,beer,eggs

Milk, Diaper, Beer, Cola
bread,milk,diaper,beer
   
BREAD,milk,diaper,cola
`

func TestReadText(t *testing.T) {
	corpus, err := ReadText(strings.NewReader(classicText))
	require.NoError(t, err)

	require.Len(t, corpus.Transactions, 5)
	assert.Equal(t, []int{1, 2, 4, 5, 7}, corpus.Lines)
	assert.Equal(t, []ir.Item{"beer", "cola", "diaper", "milk"}, corpus.Transactions[2].Items())
	assert.Equal(t, 6, corpus.DistinctItems())
}

func TestReadTextQuotedItem(t *testing.T) {
	corpus, err := ReadText(strings.NewReader(`"salt, sea",pepper` + "\n"))
	require.NoError(t, err)
	require.Len(t, corpus.Transactions, 1)
	assert.Equal(t, []ir.Item{"pepper", "salt, sea"}, corpus.Transactions[0].Items())
}

func TestReadTextMalformedReportsLine(t *testing.T) {
	_, err := ReadText(strings.NewReader("bread,milk\n\nbread,,milk\n"))
	require.Error(t, err)
	assert.True(t, engine.IsMalformedError(err))
	assert.ErrorIs(t, err, ir.ErrEmptyItem)
	assert.Contains(t, err.Error(), "line 3")
}

func TestReadTextEmpty(t *testing.T) {
	corpus, err := ReadText(strings.NewReader("\n\n"))
	require.NoError(t, err)
	assert.Empty(t, corpus.Transactions)
}

func TestLoadFileText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.txt")
	require.NoError(t, os.WriteFile(path, []byte(classicText), 0644))

	corpus, err := LoadFile(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, path, corpus.Source)
	assert.Len(t, corpus.Transactions, 5)
}

func TestLoadFileNotFound(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.txt"), Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func writeWorkbook(t *testing.T, sheet string, data [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
	}
	for i, row := range data {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "baskets.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadFileWorkbook(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", [][]any{
		{"Bread", "Milk"},
		{},
		{"bread", "diaper", "beer", "", " "},
	})

	corpus, err := LoadFile(path, Options{})
	require.NoError(t, err)
	require.Len(t, corpus.Transactions, 2)
	assert.Equal(t, []int{1, 3}, corpus.Lines)
	assert.Equal(t, []ir.Item{"beer", "bread", "diaper"}, corpus.Transactions[1].Items())
}

func TestLoadFileWorkbookBlankCellInsideRow(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", [][]any{
		{"bread", "milk"},
		{},
		{"bread", "", "diaper", "beer"},
	})

	_, err := LoadFile(path, Options{})
	require.Error(t, err)
	assert.True(t, engine.IsMalformedError(err))
	assert.Contains(t, err.Error(), "line 3")
}

func TestReadWorkbook(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", [][]any{
		{"eggs", "cola"},
		{" ", ""},
		{"Cola"},
	})
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	corpus, err := ReadWorkbook(bytes.NewReader(data), "")
	require.NoError(t, err)
	require.Len(t, corpus.Transactions, 2)
	assert.Equal(t, []int{1, 3}, corpus.Lines)
	assert.Equal(t, 2, corpus.DistinctItems())

	_, err = ReadWorkbook(strings.NewReader("not a workbook"), "")
	assert.Error(t, err)
}

func TestTrimTrailingBlank(t *testing.T) {
	tests := []struct {
		name string
		row  []string
		want []string
	}{
		{"no blanks", []string{"a", "b"}, []string{"a", "b"}},
		{"trailing", []string{"a", "", "  "}, []string{"a"}},
		{"inner kept", []string{"a", "", "b", ""}, []string{"a", "", "b"}},
		{"all blank", []string{"", " "}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, trimTrailingBlank(tt.row))
		})
	}
}

func TestLoadFileWorkbookNamedSheet(t *testing.T) {
	path := writeWorkbook(t, "Baskets", [][]any{
		{"eggs", "cola"},
	})

	corpus, err := LoadFile(path, Options{Sheet: "Baskets"})
	require.NoError(t, err)
	require.Len(t, corpus.Transactions, 1)
	assert.Equal(t, []ir.Item{"cola", "eggs"}, corpus.Transactions[0].Items())

	_, err = LoadFile(path, Options{Sheet: "Nope"})
	assert.Error(t, err)
}

func TestIsWorkbook(t *testing.T) {
	assert.True(t, IsWorkbook("a/b.xlsx"))
	assert.True(t, IsWorkbook("B.XLSM"))
	assert.False(t, IsWorkbook("transactions.txt"))
	assert.False(t, IsWorkbook("transactions.csv"))
}
