package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/basket/internal/ir"
)

// RunRecord is a completed mining result to archive.
type RunRecord struct {
	ID     string
	Source string // input file path, or "stdin"
	Result *ir.Result
}

// SaveRun archives a completed mining result.
//
// The run, its itemsets and its rules are written in one transaction with
// the next seq value. Saving an ID that already exists is a no-op; the
// stored summary is returned.
func (s *Store) SaveRun(ctx context.Context, rec RunRecord) (RunSummary, error) {
	id, source, result := rec.ID, rec.Source, rec.Result
	if id == "" {
		return RunSummary{}, fmt.Errorf("save run: id is required")
	}
	if result == nil {
		return RunSummary{}, fmt.Errorf("save run: result is nil")
	}

	digest, err := ir.ResultDigest(result)
	if err != nil {
		return RunSummary{}, fmt.Errorf("save run: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RunSummary{}, fmt.Errorf("save run: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	var existing string
	err = tx.QueryRowContext(ctx, `SELECT id FROM runs WHERE id = ?`, id).Scan(&existing)
	if err == nil {
		if err := tx.Commit(); err != nil {
			return RunSummary{}, fmt.Errorf("save run: commit: %w", err)
		}
		return s.runSummary(ctx, id)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return RunSummary{}, fmt.Errorf("save run: lookup: %w", err)
	}

	var seq int64
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM runs`).Scan(&seq); err != nil {
		return RunSummary{}, fmt.Errorf("save run: next seq: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs
		(id, seq, source, digest, transaction_count, min_support, min_confidence, engine_version, schema_version)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		id,
		seq,
		source,
		digest,
		result.TransactionCount,
		result.Thresholds.MinSupport,
		result.Thresholds.MinConfidence,
		ir.EngineVersion,
		ir.SchemaVersion,
	)
	if err != nil {
		return RunSummary{}, fmt.Errorf("save run: insert run: %w", err)
	}

	if err := writeItemsets(ctx, tx, id, result.Levels); err != nil {
		return RunSummary{}, fmt.Errorf("save run: %w", err)
	}
	if err := writeRules(ctx, tx, id, result.Rules); err != nil {
		return RunSummary{}, fmt.Errorf("save run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return RunSummary{}, fmt.Errorf("save run: commit: %w", err)
	}

	return RunSummary{
		ID:               id,
		Seq:              seq,
		Source:           source,
		Digest:           digest,
		TransactionCount: result.TransactionCount,
		Thresholds:       result.Thresholds,
		Itemsets:         result.ItemsetCount(),
		Rules:            len(result.Rules),
		EngineVersion:    ir.EngineVersion,
	}, nil
}

func writeItemsets(ctx context.Context, tx *sql.Tx, runID string, levels []ir.Level) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO itemsets (run_id, level, position, items, count, support)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare itemsets: %w", err)
	}
	defer stmt.Close()

	for _, lvl := range levels {
		for pos, fi := range lvl.Itemsets {
			items, err := marshalItemset(fi.Itemset)
			if err != nil {
				return err
			}
			if _, err := stmt.ExecContext(ctx, runID, lvl.K, pos, items, fi.Count, fi.Support); err != nil {
				return fmt.Errorf("insert itemset: %w", err)
			}
		}
	}
	return nil
}

func writeRules(ctx context.Context, tx *sql.Tx, runID string, rules []ir.Rule) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO rules
		(run_id, position, antecedent, consequent, union_count, antecedent_count, support, confidence)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare rules: %w", err)
	}
	defer stmt.Close()

	for pos, rule := range rules {
		antecedent, err := marshalItemset(rule.Antecedent)
		if err != nil {
			return err
		}
		consequent, err := marshalItemset(rule.Consequent)
		if err != nil {
			return err
		}
		_, err = stmt.ExecContext(ctx, runID, pos, antecedent, consequent,
			rule.UnionCount, rule.AntecedentCount, rule.Support, rule.Confidence)
		if err != nil {
			return fmt.Errorf("insert rule: %w", err)
		}
	}
	return nil
}
