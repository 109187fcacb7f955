package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/basket/internal/ir"
)

// ErrRunNotFound is returned when no run has the requested ID.
var ErrRunNotFound = errors.New("store: run not found")

// RunSummary describes an archived run without its itemsets and rules.
type RunSummary struct {
	ID               string        `json:"id"`
	Seq              int64         `json:"seq"`
	Source           string        `json:"source"`
	Digest           string        `json:"digest"`
	TransactionCount int           `json:"transaction_count"`
	Thresholds       ir.Thresholds `json:"thresholds"`
	Itemsets         int           `json:"itemsets"`
	Rules            int           `json:"rules"`
	EngineVersion    string        `json:"engine_version"`
}

// Run is an archived run with its full result.
type Run struct {
	RunSummary
	Result *ir.Result `json:"result"`
}

const summaryColumns = `
	r.id, r.seq, r.source, r.digest, r.transaction_count, r.min_support, r.min_confidence,
	(SELECT COUNT(*) FROM itemsets i WHERE i.run_id = r.id),
	(SELECT COUNT(*) FROM rules u WHERE u.run_id = r.id),
	r.engine_version
`

type scanner interface {
	Scan(dest ...any) error
}

func scanSummary(row scanner) (RunSummary, error) {
	var s RunSummary
	err := row.Scan(
		&s.ID, &s.Seq, &s.Source, &s.Digest, &s.TransactionCount,
		&s.Thresholds.MinSupport, &s.Thresholds.MinConfidence,
		&s.Itemsets, &s.Rules, &s.EngineVersion,
	)
	return s, err
}

// ListRuns returns every archived run ordered by seq.
// Returns an empty slice (not nil) when the archive is empty.
func (s *Store) ListRuns(ctx context.Context) ([]RunSummary, error) {
	return s.querySummaries(ctx, `
		SELECT `+summaryColumns+`
		FROM runs r
		ORDER BY r.seq ASC, r.id COLLATE BINARY ASC
	`)
}

// RunsByDigest returns the runs whose result digest equals digest, by seq.
func (s *Store) RunsByDigest(ctx context.Context, digest string) ([]RunSummary, error) {
	return s.querySummaries(ctx, `
		SELECT `+summaryColumns+`
		FROM runs r
		WHERE r.digest = ?
		ORDER BY r.seq ASC, r.id COLLATE BINARY ASC
	`, digest)
}

func (s *Store) querySummaries(ctx context.Context, query string, args ...any) ([]RunSummary, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	out := []RunSummary{}
	for rows.Next() {
		summary, err := scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		out = append(out, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return out, nil
}

func (s *Store) runSummary(ctx context.Context, id string) (RunSummary, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+summaryColumns+`
		FROM runs r
		WHERE r.id = ?
	`, id)
	summary, err := scanSummary(row)
	if errors.Is(err, sql.ErrNoRows) {
		return RunSummary{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return RunSummary{}, fmt.Errorf("scan run: %w", err)
	}
	return summary, nil
}

// LoadRun reads the run with the given ID and rebuilds its result.
func (s *Store) LoadRun(ctx context.Context, id string) (*Run, error) {
	summary, err := s.runSummary(ctx, id)
	if err != nil {
		return nil, err
	}

	levels, err := s.readLevels(ctx, id)
	if err != nil {
		return nil, err
	}
	rules, err := s.readRules(ctx, id)
	if err != nil {
		return nil, err
	}

	return &Run{
		RunSummary: summary,
		Result: &ir.Result{
			TransactionCount: summary.TransactionCount,
			Thresholds:       summary.Thresholds,
			Levels:           levels,
			Rules:            rules,
		},
	}, nil
}

func (s *Store) readLevels(ctx context.Context, runID string) ([]ir.Level, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT level, items, count, support
		FROM itemsets
		WHERE run_id = ?
		ORDER BY level ASC, position ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query itemsets: %w", err)
	}
	defer rows.Close()

	levels := []ir.Level{}
	for rows.Next() {
		var (
			k     int
			items string
			fi    ir.FrequentItemset
		)
		if err := rows.Scan(&k, &items, &fi.Count, &fi.Support); err != nil {
			return nil, fmt.Errorf("scan itemset: %w", err)
		}
		if fi.Itemset, err = unmarshalItemset(items); err != nil {
			return nil, err
		}
		if len(levels) == 0 || levels[len(levels)-1].K != k {
			levels = append(levels, ir.Level{K: k})
		}
		last := &levels[len(levels)-1]
		last.Itemsets = append(last.Itemsets, fi)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate itemsets: %w", err)
	}
	return levels, nil
}

func (s *Store) readRules(ctx context.Context, runID string) ([]ir.Rule, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT antecedent, consequent, union_count, antecedent_count, support, confidence
		FROM rules
		WHERE run_id = ?
		ORDER BY position ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query rules: %w", err)
	}
	defer rows.Close()

	rules := []ir.Rule{}
	for rows.Next() {
		var (
			antecedent, consequent string
			rule                   ir.Rule
		)
		if err := rows.Scan(&antecedent, &consequent, &rule.UnionCount, &rule.AntecedentCount,
			&rule.Support, &rule.Confidence); err != nil {
			return nil, fmt.Errorf("scan rule: %w", err)
		}
		if rule.Antecedent, err = unmarshalItemset(antecedent); err != nil {
			return nil, err
		}
		if rule.Consequent, err = unmarshalItemset(consequent); err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rules: %w", err)
	}
	return rules, nil
}
