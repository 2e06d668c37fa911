package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
)

type pendingMetadataRepository struct {
	*DB
	logger *logger.Logger
}

// NewPendingMetadataRepository constructs the SQLite-backed
// [PendingMetadataRepository].
func NewPendingMetadataRepository(db *DB, logger *logger.Logger) PendingMetadataRepository {
	return &pendingMetadataRepository{
		DB:     db,
		logger: logger,
	}
}

func (p *pendingMetadataRepository) Save(ctx context.Context, relativePath string, metadata map[string]string) error {
	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save pending metadata tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	delQuery, delArgs, err := sq.Delete("pending_metadata").
		Where(sq.Eq{"relative_path": relativePath}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build clear pending metadata query: %w", err)
	}
	if _, err = tx.ExecContext(ctx, delQuery, delArgs...); err != nil {
		return fmt.Errorf("clear pending metadata for %s: %w", relativePath, err)
	}

	for attr, value := range metadata {
		query, args, buildErr := sq.Insert("pending_metadata").
			Columns("relative_path", "attr", "value").
			Values(relativePath, attr, value).
			ToSql()
		if buildErr != nil {
			return fmt.Errorf("build insert pending metadata query: %w", buildErr)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("save pending metadata for %s: %w", relativePath, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit save pending metadata tx: %w", err)
	}
	return nil
}

func (p *pendingMetadataRepository) Get(ctx context.Context, relativePath string) (map[string]string, error) {
	query, args, err := sq.Select("attr", "value").
		From("pending_metadata").
		Where(sq.Eq{"relative_path": relativePath}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get pending metadata query: %w", err)
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending metadata: %w", err)
	}
	defer rows.Close()

	metadata := make(map[string]string)
	for rows.Next() {
		var attr, value string
		if scanErr := rows.Scan(&attr, &value); scanErr != nil {
			return nil, fmt.Errorf("failed to scan pending metadata: %w", scanErr)
		}
		metadata[attr] = value
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pending metadata: %w", err)
	}

	return metadata, nil
}

func (p *pendingMetadataRepository) Clear(ctx context.Context, relativePath string) error {
	query, args, err := sq.Delete("pending_metadata").
		Where(sq.Eq{"relative_path": relativePath}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build clear pending metadata query: %w", err)
	}

	if _, err = p.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear pending metadata for %s: %w", relativePath, err)
	}
	return nil
}
