package harness

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/basket/internal/engine"
	"github.com/roach88/basket/internal/ir"
)

// Harness executes scenarios against the mining engine.
type Harness struct {
	engine *engine.Engine
	logger *slog.Logger
}

// Option configures a Harness.
type Option func(*Harness)

// WithLogger sets the logger passed to the engine. Nil is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Harness) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// New creates a harness. Logs are discarded unless WithLogger is given.
func New(opts ...Option) *Harness {
	h := &Harness{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)), // Suppress logs in tests
	}
	for _, opt := range opts {
		opt(h)
	}
	h.engine = engine.New(engine.WithLogger(h.logger))
	return h
}

// Run executes a scenario with a default harness.
func Run(scenario *Scenario) (*Result, error) {
	return New().Run(scenario)
}

// Run executes a scenario and returns the result.
//
// Execution flow:
// 1. Parse transactions through the ingestion boundary
// 2. Mine with the scenario thresholds
// 3. Compare a rejection against expect_error, or
// 4. Evaluate assertions against the mining result
//
// The returned error reports a harness problem, never a scenario failure.
func (h *Harness) Run(scenario *Scenario) (*Result, error) {
	if scenario == nil {
		return nil, fmt.Errorf("scenario is nil")
	}
	if scenario.MinSupport == nil || scenario.MinConfidence == nil {
		return nil, fmt.Errorf("scenario %q: thresholds are required", scenario.Name)
	}

	result := NewResult()

	th := ir.Thresholds{
		MinSupport:    *scenario.MinSupport,
		MinConfidence: *scenario.MinConfidence,
	}

	mining, err := h.mine(scenario.Transactions, th)
	if err != nil {
		var verr *engine.ValidationError
		if !errors.As(err, &verr) {
			return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
		}
		result.ErrorCode = string(verr.Code)
		switch {
		case scenario.ExpectError == "":
			result.AddError(fmt.Sprintf("mining failed: %v", err))
		case scenario.ExpectError != result.ErrorCode:
			result.AddError(fmt.Sprintf("expected error %s, got %s", scenario.ExpectError, result.ErrorCode))
		}
		return result, nil
	}

	result.Mining = mining
	if scenario.ExpectError != "" {
		result.AddError(fmt.Sprintf("expected error %s, mining succeeded", scenario.ExpectError))
		return result, nil
	}

	for _, msg := range EvaluateAssertions(mining, scenario.Assertions) {
		result.AddError(msg)
	}

	return result, nil
}

// mine validates thresholds before parsing the corpus so a scenario with
// both a bad threshold and a bad row reports the threshold first.
func (h *Harness) mine(rows [][]string, th ir.Thresholds) (*ir.Result, error) {
	if err := engine.ValidateThresholds(th); err != nil {
		return nil, err
	}
	txs, err := engine.ParseTransactions(rows)
	if err != nil {
		return nil, err
	}
	return h.engine.Mine(txs, th)
}
