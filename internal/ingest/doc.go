// Package ingest reads transaction corpora from files.
//
// Two sources are supported:
//   - Text: one transaction per line, items separated by commas. Blank lines
//     are skipped; an empty item between commas is malformed.
//   - Workbook (.xlsx/.xlsm): one transaction per row of a sheet. Blank cells
//     and blank rows are layout, not data, and are skipped.
//
// Raw tokens are handed to engine.ParseTransactions, which owns
// normalization. Malformed rows are reported with their source line or row.
package ingest
