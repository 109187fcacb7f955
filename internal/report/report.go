// Package report renders mining results for people.
//
// Text output follows the classic console format:
//
//	Frequent 2-itemsets:
//	  {bread, milk} (support: 0.60)
//
//	Association rules:
//	  {bread} => {milk} (support: 0.60, confidence: 0.75)
//
// Markdown output renders the same data as tables. Machine-readable JSON is
// produced by the CLI envelope, not here.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/roach88/basket/internal/ir"
)

// WriteText renders r in the plain text console format.
func WriteText(w io.Writer, r *ir.Result) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Transactions: %d  min support: %.2f  min confidence: %.2f\n",
		r.TransactionCount, r.Thresholds.MinSupport, r.Thresholds.MinConfidence)

	if len(r.Levels) == 0 {
		b.WriteString("\nNo frequent itemsets.\n")
	}
	for _, lvl := range r.Levels {
		fmt.Fprintf(&b, "\nFrequent %d-itemsets:\n", lvl.K)
		for _, fi := range lvl.Itemsets {
			fmt.Fprintf(&b, "  %s (support: %.2f)\n", fi.Itemset, fi.Support)
		}
	}

	if len(r.Rules) == 0 {
		b.WriteString("\nNo association rules.\n")
	} else {
		b.WriteString("\nAssociation rules:\n")
		for _, rule := range r.Rules {
			fmt.Fprintf(&b, "  %s (support: %.2f, confidence: %.2f)\n", rule, rule.Support, rule.Confidence)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Text renders r with WriteText into a string.
func Text(r *ir.Result) string {
	var b strings.Builder
	_ = WriteText(&b, r)
	return b.String()
}

func formatRatio(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
