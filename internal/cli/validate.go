package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/basket/internal/engine"
)

// ValidateOptions holds flags for the validate command.
type ValidateOptions struct {
	*RootOptions
	Sheet string
}

// ValidationResult is the JSON payload of the validate command.
type ValidationResult struct {
	Valid         bool   `json:"valid"`
	Source        string `json:"source"`
	Transactions  int    `json:"transactions"`
	DistinctItems int    `json:"distinct_items"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ValidateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "validate <transactions-file>",
		Short: "Check a transaction file without mining",
		Long: `Parse a transaction file exactly as mine would, without mining.

Reports the transaction and distinct item counts, or the first malformed
line. Faster than mine for checking input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Sheet, "sheet", "", "workbook sheet to read (default: first sheet)")

	return cmd
}

func runValidate(opts *ValidateOptions, path string, cmd *cobra.Command) error {
	if _, err := resolveConfig(cmd, opts.RootOptions); err != nil {
		return newFormatter(opts.RootOptions, cmd).Fail(ErrCodeConfig, "failed to load config", err)
	}
	formatter := newFormatter(opts.RootOptions, cmd)

	corpus, err := loadCorpus(cmd, path, opts.Sheet)
	if err != nil {
		return formatter.Fail(ErrCodeIngest, "failed to read transactions", err)
	}
	if err := engine.ValidateCorpus(corpus.Transactions); err != nil {
		return formatter.Fail(ErrCodeEmptyCorpus, corpus.Source, err)
	}

	result := ValidationResult{
		Valid:         true,
		Source:        corpus.Source,
		Transactions:  len(corpus.Transactions),
		DistinctItems: corpus.DistinctItems(),
	}

	if formatter.Format == FormatJSON {
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "✓ %s: %d transaction(s), %d distinct item(s)\n",
		result.Source, result.Transactions, result.DistinctItems)
	return nil
}
