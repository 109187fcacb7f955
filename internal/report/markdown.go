package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/roach88/basket/internal/ir"
)

// MarkdownTitle is the H1 heading of every Markdown report.
const MarkdownTitle = "Association Mining Report"

// WriteMarkdown renders r as a Markdown document with one table per level
// and a rules table.
func WriteMarkdown(w io.Writer, r *ir.Result) error {
	md := markdown.NewMarkdown(w)

	md.H1(MarkdownTitle)
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Parameter", "Value"},
		Rows: [][]string{
			{"Transactions", strconv.Itoa(r.TransactionCount)},
			{"Min support", formatRatio(r.Thresholds.MinSupport)},
			{"Min confidence", formatRatio(r.Thresholds.MinConfidence)},
			{"Frequent itemsets", strconv.Itoa(r.ItemsetCount())},
			{"Rules", strconv.Itoa(len(r.Rules))},
		},
	})
	md.PlainText("")

	writeLevels(md, r)
	writeRules(md, r)

	return md.Build()
}

func writeLevels(md *markdown.Markdown, r *ir.Result) {
	if len(r.Levels) == 0 {
		md.H2("Frequent Itemsets")
		md.PlainText("")
		md.PlainText("No frequent itemsets.")
		md.PlainText("")
		return
	}

	for _, lvl := range r.Levels {
		rows := make([][]string, len(lvl.Itemsets))
		for i, fi := range lvl.Itemsets {
			rows[i] = []string{
				cell(fi.Itemset.String()),
				strconv.Itoa(fi.Count),
				formatRatio(fi.Support),
			}
		}

		md.H2(fmt.Sprintf("Frequent %d-itemsets", lvl.K))
		md.PlainText("")
		md.Table(markdown.TableSet{
			Header: []string{"Itemset", "Count", "Support"},
			Rows:   rows,
		})
		md.PlainText("")
	}
}

func writeRules(md *markdown.Markdown, r *ir.Result) {
	md.H2("Association Rules")
	md.PlainText("")

	if len(r.Rules) == 0 {
		md.PlainText("No association rules.")
		return
	}

	rows := make([][]string, len(r.Rules))
	for i, rule := range r.Rules {
		rows[i] = []string{
			cell(rule.Antecedent.String()),
			cell(rule.Consequent.String()),
			formatRatio(rule.Support),
			formatRatio(rule.Confidence),
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Antecedent", "Consequent", "Support", "Confidence"},
		Rows:   rows,
	})
}

// cell escapes pipes so item names cannot break the table layout.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// WriteMarkdownTable renders a titled table. Cells are escaped.
func WriteMarkdownTable(w io.Writer, title string, header []string, rows [][]string) error {
	md := markdown.NewMarkdown(w)
	md.H1(title)
	md.PlainText("")

	escaped := make([][]string, len(rows))
	for i, row := range rows {
		escaped[i] = make([]string, len(row))
		for j, v := range row {
			escaped[i][j] = cell(v)
		}
	}
	md.Table(markdown.TableSet{Header: header, Rows: escaped})

	return md.Build()
}
