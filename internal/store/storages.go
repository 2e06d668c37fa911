package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// Records is the local cache of server-side sync records.
	Records RecordRepository

	// Rules persists the ordered ignore-pattern list of the vault.
	Rules RuleRepository

	// PendingMetadata persists unsaved metadata edits across restarts.
	PendingMetadata PendingMetadataRepository
}

// NewClientStorages initialises the client storage layer. It performs the
// following steps:
//  1. Opens an SQLite connection to dbPath, creating the database file if it
//     does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to fresh
//     repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(dbPath string, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), dbPath, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Records:         NewRecordRepository(db, logger),
		Rules:           NewRuleRepository(db, logger),
		PendingMetadata: NewPendingMetadataRepository(db, logger),
	}, nil
}
