package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/basket/internal/config"
	"github.com/roach88/basket/internal/ingest"
	"github.com/roach88/basket/internal/store"
)

// stdinPath is the input argument that reads text transactions from stdin.
const stdinPath = "-"

// newFormatter builds the formatter for the current format.
// Verbose logs go to stderr to avoid corrupting JSON.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

// newLogger configures logging based on the verbose flag.
func newLogger(verbose bool, w io.Writer) *slog.Logger {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})
	return slog.New(handler)
}

// resolveConfig loads the config file and reconciles the output format:
// an explicit --format wins, otherwise the file's format is adopted.
func resolveConfig(cmd *cobra.Command, opts *RootOptions) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, err
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = opts.Format
	} else {
		opts.Format = cfg.Format
	}
	return cfg, nil
}

// loadCorpus reads transactions from path, or from stdin for "-".
func loadCorpus(cmd *cobra.Command, path, sheet string) (*ingest.Corpus, error) {
	if path == stdinPath {
		corpus, err := ingest.ReadText(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		corpus.Source = "stdin"
		return corpus, nil
	}
	return ingest.LoadFile(path, ingest.Options{Sheet: sheet})
}

// openStore opens the archive named by --db or the config database.
func openStore(cmd *cobra.Command, dbFlag string, cfg config.Config) (*store.Store, error) {
	path := cfg.Database
	if cmd.Flags().Changed("db") {
		path = dbFlag
	}
	if path == "" {
		return nil, fmt.Errorf("database path required (--db or config database)")
	}
	return store.Open(path)
}
