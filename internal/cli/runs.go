package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/basket/internal/report"
	"github.com/roach88/basket/internal/store"
)

// ArchiveOptions holds flags shared by the runs and show commands.
type ArchiveOptions struct {
	*RootOptions
	Database string
}

// RunsResult is the JSON payload of the runs command.
type RunsResult struct {
	Runs  []store.RunSummary `json:"runs"`
	Total int                `json:"total"`
}

// NewRunsCommand creates the runs command.
func NewRunsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ArchiveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List archived mining runs",
		Long: `List the mining runs archived with mine --db, oldest first.

Example:
  basket runs --db runs.db
  basket runs --db runs.db --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRuns(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database")

	return cmd
}

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ArchiveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Print an archived mining run",
		Long: `Print an archived run in the same formats mine uses.

Example:
  basket show --db runs.db 0190c6a2-7f3e-7c1d-9a4b-2f1e0d3c4b5a`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database")

	return cmd
}

// withStore resolves config, opens the archive and calls fn.
func withStore(opts *ArchiveOptions, cmd *cobra.Command, fn func(context.Context, *store.Store, *OutputFormatter) error) error {
	cfg, err := resolveConfig(cmd, opts.RootOptions)
	formatter := newFormatter(opts.RootOptions, cmd)
	if err != nil {
		return formatter.Fail(ErrCodeConfig, "failed to load config", err)
	}

	st, err := openStore(cmd, opts.Database, cfg)
	if err != nil {
		return formatter.Fail(ErrCodeStore, "failed to open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			newLogger(opts.Verbose, cmd.ErrOrStderr()).Error("error closing database", "error", closeErr)
		}
	}()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return fn(ctx, st, formatter)
}

func runRuns(opts *ArchiveOptions, cmd *cobra.Command) error {
	return withStore(opts, cmd, func(ctx context.Context, st *store.Store, formatter *OutputFormatter) error {
		runs, err := st.ListRuns(ctx)
		if err != nil {
			return formatter.Fail(ErrCodeStore, "failed to list runs", err)
		}

		result := RunsResult{Runs: runs, Total: len(runs)}
		return formatter.Render(result,
			func(w io.Writer) error { return writeRunsText(w, runs) },
			func(w io.Writer) error { return writeRunsMarkdown(w, runs) },
		)
	})
}

func runShow(opts *ArchiveOptions, id string, cmd *cobra.Command) error {
	return withStore(opts, cmd, func(ctx context.Context, st *store.Store, formatter *OutputFormatter) error {
		run, err := st.LoadRun(ctx, id)
		if errors.Is(err, store.ErrRunNotFound) {
			return formatter.Fail(ErrCodeRunNotFound, "run not found", err)
		}
		if err != nil {
			return formatter.Fail(ErrCodeStore, "failed to load run", err)
		}

		out := MineOutput{
			Source: run.Source,
			Digest: run.Digest,
			Run:    &run.RunSummary,
			Result: run.Result,
		}
		return formatter.Render(out,
			func(w io.Writer) error { return writeShowText(w, run) },
			func(w io.Writer) error { return report.WriteMarkdown(w, run.Result) },
		)
	})
}

func writeShowText(w io.Writer, run *store.Run) error {
	if _, err := fmt.Fprintf(w, "Run %s (seq %d) from %s\n\n", run.ID, run.Seq, run.Source); err != nil {
		return err
	}
	return report.WriteText(w, run.Result)
}

func writeRunsText(w io.Writer, runs []store.RunSummary) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "No archived runs.")
		return err
	}

	fmt.Fprintf(w, "Archived runs: %d\n", len(runs))
	for _, r := range runs {
		fmt.Fprintf(w, "\n  [%d] %s  %s\n", r.Seq, r.ID, r.Source)
		fmt.Fprintf(w, "       transactions: %d  min support: %.2f  min confidence: %.2f\n",
			r.TransactionCount, r.Thresholds.MinSupport, r.Thresholds.MinConfidence)
		fmt.Fprintf(w, "       itemsets: %d  rules: %d\n", r.Itemsets, r.Rules)
		fmt.Fprintf(w, "       digest: %s\n", truncateDigest(r.Digest))
	}
	return nil
}

func writeRunsMarkdown(w io.Writer, runs []store.RunSummary) error {
	rows := make([][]string, len(runs))
	for i, r := range runs {
		rows[i] = []string{
			strconv.FormatInt(r.Seq, 10),
			r.ID,
			r.Source,
			strconv.Itoa(r.TransactionCount),
			fmt.Sprintf("%.2f", r.Thresholds.MinSupport),
			fmt.Sprintf("%.2f", r.Thresholds.MinConfidence),
			strconv.Itoa(r.Itemsets),
			strconv.Itoa(r.Rules),
		}
	}
	return report.WriteMarkdownTable(w, "Archived Runs",
		[]string{"Seq", "ID", "Source", "Transactions", "Min support", "Min confidence", "Itemsets", "Rules"},
		rows)
}

// truncateDigest shortens a digest for display.
func truncateDigest(digest string) string {
	const n = 16
	if len(digest) <= n {
		return digest
	}
	return digest[:n] + "..."
}
