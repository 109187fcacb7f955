package engine

import (
	"log/slog"

	"github.com/roach88/basket/internal/ir"
)

// Engine drives level-wise mining and rule derivation.
//
// An Engine holds no per-run state; a single value may be reused for any
// number of runs. Each run allocates fresh levels and rules.
type Engine struct {
	logger *slog.Logger
}

// EngineOption allows configuration of engine parameters.
type EngineOption func(*Engine)

// WithLogger sets the logger used for per-level diagnostics.
// Default: slog.Default().
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an Engine.
func New(opts ...EngineOption) *Engine {
	e := &Engine{logger: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Mine validates the input, mines every frequent level and derives the
// association rules. On a validation failure no partial result is returned.
func (e *Engine) Mine(transactions []ir.Transaction, th ir.Thresholds) (*ir.Result, error) {
	if err := ValidateThresholds(th); err != nil {
		return nil, err
	}
	if err := ValidateCorpus(transactions); err != nil {
		return nil, err
	}

	levels := e.mineLevels(transactions, th.MinSupport)
	rules := deriveRules(levels, transactions, th.MinConfidence)

	e.logger.Info("mining complete",
		"transactions", len(transactions),
		"levels", len(levels),
		"rules", len(rules),
	)

	return &ir.Result{
		TransactionCount: len(transactions),
		Thresholds:       th,
		Levels:           levels,
		Rules:            rules,
	}, nil
}

// FrequentLevels runs the level-wise driver only.
//
// The returned slice holds levels 1..K in order, each non-empty. K is 0 when
// no single item is frequent.
func (e *Engine) FrequentLevels(transactions []ir.Transaction, minSupport float64) ([]ir.Level, error) {
	if err := ValidateThreshold("min_support", minSupport); err != nil {
		return nil, err
	}
	if err := ValidateCorpus(transactions); err != nil {
		return nil, err
	}
	return e.mineLevels(transactions, minSupport), nil
}

// mineLevels is the driver state machine: Init, then Expand(k) until a
// level comes back empty. Support is anti-monotone, so no later level can
// be non-empty once one is empty.
func (e *Engine) mineLevels(transactions []ir.Transaction, minSupport float64) []ir.Level {
	singles := FrequentSingles(transactions, minSupport)
	e.logger.Debug("level mined", "k", 1, "frequent", len(singles))
	if len(singles) == 0 {
		return []ir.Level{}
	}

	levels := []ir.Level{{K: 1, Itemsets: singles}}
	for k := 2; ; k++ {
		prev := levels[len(levels)-1].Sets()
		candidates := Candidates(prev, k)
		frequent := FilterFrequent(candidates, transactions, minSupport)
		e.logger.Debug("level mined", "k", k, "candidates", len(candidates), "frequent", len(frequent))
		if len(frequent) == 0 {
			return levels
		}
		levels = append(levels, ir.Level{K: k, Itemsets: frequent})
	}
}

// Mine runs a default Engine. See Engine.Mine.
func Mine(transactions []ir.Transaction, th ir.Thresholds) (*ir.Result, error) {
	return New().Mine(transactions, th)
}

// FrequentLevels runs a default Engine's driver. See Engine.FrequentLevels.
func FrequentLevels(transactions []ir.Transaction, minSupport float64) ([]ir.Level, error) {
	return New().FrequentLevels(transactions, minSupport)
}
