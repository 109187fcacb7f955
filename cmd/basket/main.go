// Command basket mines frequent itemsets and association rules from
// transaction files.
package main

import (
	"os"

	"github.com/roach88/basket/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		cli.ReportError(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
