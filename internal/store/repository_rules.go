package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
)

type ruleRepository struct {
	*DB
	logger *logger.Logger
}

// NewRuleRepository constructs the SQLite-backed [RuleRepository].
func NewRuleRepository(db *DB, logger *logger.Logger) RuleRepository {
	return &ruleRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *ruleRepository) LoadPatterns(ctx context.Context) ([]string, error) {
	query, args, err := sq.Select("pattern").
		From("ignore_rules").
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build load patterns query: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ignore rules: %w", err)
	}
	defer rows.Close()

	var patterns []string
	for rows.Next() {
		var p string
		if scanErr := rows.Scan(&p); scanErr != nil {
			return nil, fmt.Errorf("failed to scan ignore rule: %w", scanErr)
		}
		patterns = append(patterns, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ignore rules: %w", err)
	}

	return patterns, nil
}

// SavePatterns replaces the whole rule list so that ordering and deletions
// from the in-memory set always round-trip exactly.
func (r *ruleRepository) SavePatterns(ctx context.Context, patterns []string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save patterns tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err = tx.ExecContext(ctx, "DELETE FROM ignore_rules"); err != nil {
		return fmt.Errorf("clear ignore rules: %w", err)
	}

	for i, pattern := range patterns {
		query, args, buildErr := sq.Insert("ignore_rules").
			Columns("position", "pattern").
			Values(i, pattern).
			ToSql()
		if buildErr != nil {
			return fmt.Errorf("build insert rule query: %w", buildErr)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("save ignore rule %q: %w", pattern, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit save patterns tx: %w", err)
	}
	return nil
}
