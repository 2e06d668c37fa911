package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/models"
)

type recordRepository struct {
	*DB
	logger *logger.Logger
}

// NewRecordRepository constructs the SQLite-backed [RecordRepository].
func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	return &recordRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *recordRepository) UpsertRecords(ctx context.Context, records ...models.SyncRecord) error {
	log := logger.FromContext(ctx)

	for _, record := range records {
		query, args, err := buildUpsertRecordQuery(record)
		if err != nil {
			return fmt.Errorf("build upsert record query: %w", err)
		}

		if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "recordRepository.UpsertRecords").
				Str("record_id", record.ID).
				Msg("failed to execute upsert for cached record")
			return fmt.Errorf("failed to cache record (id=%s): %w", record.ID, err)
		}
	}

	return nil
}

func (r *recordRepository) GetByPath(ctx context.Context, relativePath string) (models.SyncRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetRecordByPathQuery(relativePath)
	if err != nil {
		return models.SyncRecord{}, fmt.Errorf("build get record query: %w", err)
	}

	row := r.DB.QueryRowContext(ctx, query, args...)

	record, err := scanRecord(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SyncRecord{}, fmt.Errorf("%w: %s", ErrRecordNotCached, relativePath)
		}
		log.Err(err).
			Str("func", "recordRepository.GetByPath").
			Str("relative_path", relativePath).
			Msg("failed to scan cached record row")
		return models.SyncRecord{}, fmt.Errorf("failed to scan cached record: %w", err)
	}

	return record, nil
}

func (r *recordRepository) GetAll(ctx context.Context, includeDeleted bool) ([]models.SyncRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetAllRecordsQuery(includeDeleted)
	if err != nil {
		return nil, fmt.Errorf("build get all records query: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.GetAll").
			Msg("failed to query cached records")
		return nil, fmt.Errorf("failed to query cached records: %w", err)
	}
	defer rows.Close()

	var records []models.SyncRecord
	for rows.Next() {
		record, scanErr := scanRecord(rows.Scan)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan cached record row: %w", scanErr)
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cached records: %w", err)
	}

	return records, nil
}

func (r *recordRepository) Delete(ctx context.Context, id string) error {
	query, args, err := buildDeleteRecordQuery(id)
	if err != nil {
		return fmt.Errorf("build delete record query: %w", err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete cached record (id=%s): %w", id, err)
	}
	return nil
}

func (r *recordRepository) ReplaceAll(ctx context.Context, records []models.SyncRecord) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace-all tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err = tx.ExecContext(ctx, "DELETE FROM sync_records"); err != nil {
		return fmt.Errorf("clear cached records: %w", err)
	}

	for _, record := range records {
		query, args, buildErr := buildUpsertRecordQuery(record)
		if buildErr != nil {
			return fmt.Errorf("build upsert record query: %w", buildErr)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("cache record (id=%s): %w", record.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit replace-all tx: %w", err)
	}
	return nil
}

// scanRecord maps one row into a SyncRecord. Everything read back from the
// cache is tagged SourceCached.
func scanRecord(scan func(dest ...any) error) (models.SyncRecord, error) {
	var (
		record       models.SyncRecord
		label, color string
	)

	err := scan(
		&record.ID,
		&record.RelativePath,
		&record.Version,
		&record.CheckedOutBy,
		&record.CheckedOutByMachineID,
		&record.CheckedOutByMachineName,
		&label,
		&color,
		&record.PartNumber,
		&record.Description,
		&record.Revision,
		&record.CreatedAt,
		&record.Deleted,
	)
	if err != nil {
		return models.SyncRecord{}, err
	}

	if label != "" || color != "" {
		record.Workflow = &models.WorkflowState{Label: label, Color: color}
	}
	record.Source = models.SourceCached

	return record, nil
}
