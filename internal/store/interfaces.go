// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store provides the SQLite-backed persistence layer of the client:
// the cached copy of the server's sync records, the per-vault ignore rules,
// and pending metadata edits that must survive application restarts.
//
// Everything in here is a cache or local-only state. The server remains the
// authoritative owner of checkout locks; records read back from this store
// are tagged [models.SourceCached] so no caller can mistake them for fresh
// server responses.
package store

import (
	"context"

	"github.com/MKhiriev/go-vault-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RecordRepository is the local cache of server-side sync records.
type RecordRepository interface {
	// UpsertRecords inserts or replaces cached records by id.
	UpsertRecords(ctx context.Context, records ...models.SyncRecord) error

	// GetByPath returns the cached record for a vault-relative path.
	// Returns ErrRecordNotCached when no record is cached for the path.
	GetByPath(ctx context.Context, relativePath string) (models.SyncRecord, error)

	// GetAll returns every cached record, optionally filtered to non-deleted
	// ones.
	GetAll(ctx context.Context, includeDeleted bool) ([]models.SyncRecord, error)

	// Delete removes one cached record by id. Deleting an id that is not
	// cached is a no-op.
	Delete(ctx context.Context, id string) error

	// ReplaceAll atomically replaces the whole cache with records, used by
	// the classify-refresh job after a full listing.
	ReplaceAll(ctx context.Context, records []models.SyncRecord) error
}

// RuleRepository persists the ordered ignore-pattern list of the vault.
type RuleRepository interface {
	// LoadPatterns returns the patterns in their persisted order.
	LoadPatterns(ctx context.Context) ([]string, error)

	// SavePatterns replaces the persisted list with patterns, keeping order.
	SavePatterns(ctx context.Context, patterns []string) error
}

// PendingMetadataRepository persists unsaved metadata edits per file. Edits
// survive restarts and are only removed by a successful check-in or an
// explicit discard.
type PendingMetadataRepository interface {
	// Save stores (or overwrites) the pending edits for one file.
	Save(ctx context.Context, relativePath string, metadata map[string]string) error

	// Get returns the pending edits for one file; an empty map when none.
	Get(ctx context.Context, relativePath string) (map[string]string, error)

	// Clear removes the pending edits for one file.
	Clear(ctx context.Context, relativePath string) error
}
