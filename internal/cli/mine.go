package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/basket/internal/config"
	"github.com/roach88/basket/internal/engine"
	"github.com/roach88/basket/internal/ir"
	"github.com/roach88/basket/internal/report"
	"github.com/roach88/basket/internal/store"
)

// MineOptions holds flags for the mine command.
type MineOptions struct {
	*RootOptions
	MinSupport    float64
	MinConfidence float64
	Database      string
	Sheet         string

	// IDGenerator allows overriding the run ID generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	IDGenerator store.IDGenerator
}

// MineOutput is the JSON payload of the mine and show commands.
type MineOutput struct {
	Source string            `json:"source"`
	Digest string            `json:"digest"`
	Run    *store.RunSummary `json:"run,omitempty"`
	Result *ir.Result        `json:"result"`
}

// NewMineCommand creates the mine command.
func NewMineCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MineOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "mine <transactions-file>",
		Short: "Mine frequent itemsets and association rules",
		Long: `Mine frequent itemsets and association rules from a transaction file.

Text files hold one comma-separated basket per line; blank lines are
skipped. Workbooks (.xlsx, .xlsm) hold one basket per row. Use "-" to read
text from stdin. Items are trimmed, Unicode-normalized and lower-cased.

Both thresholds are inclusive and must lie within [0, 1]. Flags override
the config file, which overrides the defaults.

Exit codes:
  0 - Mining completed (an empty result is still success)
  1 - Input rejected (bad threshold, empty corpus, malformed transaction)
  2 - Command error (missing file, bad config, database error)

Examples:
  basket mine transactions.txt
  basket mine --min-support 0.6 --min-confidence 0.6 baskets.csv
  basket mine --sheet March sales.xlsx --format markdown
  basket mine --db runs.db --format json baskets.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMine(opts, args[0], cmd)
		},
	}

	cmd.Flags().Float64Var(&opts.MinSupport, "min-support", config.DefaultMinSupport, "minimum support (inclusive)")
	cmd.Flags().Float64Var(&opts.MinConfidence, "min-confidence", config.DefaultMinConfidence, "minimum confidence (inclusive)")
	cmd.Flags().StringVar(&opts.Database, "db", "", "archive the run in this SQLite database")
	cmd.Flags().StringVar(&opts.Sheet, "sheet", "", "workbook sheet to read (default: first sheet)")

	return cmd
}

func runMine(opts *MineOptions, path string, cmd *cobra.Command) error {
	logger := newLogger(opts.Verbose, cmd.ErrOrStderr())

	cfg, err := resolveConfig(cmd, opts.RootOptions)
	formatter := newFormatter(opts.RootOptions, cmd)
	if err != nil {
		return formatter.Fail(ErrCodeConfig, "failed to load config", err)
	}

	// Flag thresholds are range-checked by the engine, not the config
	// schema, so they surface as INVALID_THRESHOLD.
	th := cfg.Thresholds()
	if cmd.Flags().Changed("min-support") {
		th.MinSupport = opts.MinSupport
	}
	if cmd.Flags().Changed("min-confidence") {
		th.MinConfidence = opts.MinConfidence
	}
	if err := engine.ValidateThresholds(th); err != nil {
		return formatter.Fail(ErrCodeInvalidThreshold, "invalid thresholds", err)
	}

	logger.Debug("reading transactions", "path", path)
	corpus, err := loadCorpus(cmd, path, opts.Sheet)
	if err != nil {
		return formatter.Fail(ErrCodeIngest, "failed to read transactions", err)
	}
	formatter.VerboseLog("Read %d transaction(s), %d distinct item(s) from %s",
		len(corpus.Transactions), corpus.DistinctItems(), corpus.Source)

	eng := engine.New(engine.WithLogger(logger))
	result, err := eng.Mine(corpus.Transactions, th)
	if err != nil {
		return formatter.Fail(ErrCodeGeneric, "mining rejected", err)
	}

	digest, err := ir.ResultDigest(result)
	if err != nil {
		return formatter.Fail(ErrCodeGeneric, "failed to hash result", err)
	}

	out := MineOutput{
		Source: corpus.Source,
		Digest: digest,
		Result: result,
	}

	if cmd.Flags().Changed("db") || cfg.Database != "" {
		summary, err := archiveRun(cmd, opts, cfg, corpus.Source, result, logger, formatter)
		if err != nil {
			return formatter.Fail(ErrCodeStore, "failed to archive run", err)
		}
		out.Run = &summary
	}

	return formatter.Render(out,
		func(w io.Writer) error { return writeMineText(w, out) },
		func(w io.Writer) error { return report.WriteMarkdown(w, result) },
	)
}

func archiveRun(
	cmd *cobra.Command,
	opts *MineOptions,
	cfg config.Config,
	source string,
	result *ir.Result,
	logger *slog.Logger,
	formatter *OutputFormatter,
) (store.RunSummary, error) {
	st, err := openStore(cmd, opts.Database, cfg)
	if err != nil {
		return store.RunSummary{}, err
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			logger.Error("error closing database", "error", closeErr)
		}
	}()

	ids := opts.IDGenerator
	if ids == nil {
		ids = store.UUIDv7Generator{}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	summary, err := st.SaveRun(ctx, store.RunRecord{
		ID:     ids.Generate(),
		Source: source,
		Result: result,
	})
	if err != nil {
		return store.RunSummary{}, err
	}
	logger.Info("run archived", "id", summary.ID, "seq", summary.Seq, "db", st.Path())

	same, err := st.RunsByDigest(ctx, summary.Digest)
	if err != nil {
		return store.RunSummary{}, err
	}
	for _, prior := range same {
		if prior.ID != summary.ID {
			formatter.VerboseLog("Identical result already archived as %s (seq %d)", prior.ID, prior.Seq)
		}
	}
	return summary, nil
}

func writeMineText(w io.Writer, out MineOutput) error {
	if err := report.WriteText(w, out.Result); err != nil {
		return err
	}
	if out.Run != nil {
		_, err := fmt.Fprintf(w, "\nArchived run %s (seq %d)\n", out.Run.ID, out.Run.Seq)
		return err
	}
	return nil
}
