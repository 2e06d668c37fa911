// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vault-sync/internal/adapter"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/store"
	"github.com/MKhiriev/go-vault-sync/internal/vault"
	"github.com/MKhiriev/go-vault-sync/models"
)

// refreshService pulls the server's full record listing into the local cache
// and reconciles the in-memory index with it. It is the only writer of the
// record cache besides the executor's post-operation refreshes.
type refreshService struct {
	server     adapter.ServerAdapter
	records    store.RecordRepository
	index      *vault.Index
	classifier SyncClassifier
	logger     *logger.Logger
}

// NewRefreshService constructs the RefreshService.
func NewRefreshService(server adapter.ServerAdapter, records store.RecordRepository, index *vault.Index, classifier SyncClassifier, log *logger.Logger) RefreshService {
	return &refreshService{
		server:     server,
		records:    records,
		index:      index,
		classifier: classifier,
		logger:     log.GetChildLogger(),
	}
}

// FullRefresh implements RefreshService. On any listing failure the previous
// cache stays in place untouched.
func (s *refreshService) FullRefresh(ctx context.Context, userID string) error {
	listing, err := s.server.ListRecords(ctx, userID)
	if err != nil {
		return fmt.Errorf("list records: %w", err)
	}

	if err := s.records.ReplaceAll(ctx, listing); err != nil {
		return fmt.Errorf("replace record cache: %w", err)
	}

	s.reconcileIndex(listing)
	s.classifier.NoteFullListing()

	s.logger.Info().Int("records", len(listing)).Msg("full listing refreshed")
	return nil
}

// RestoreFromCache implements RefreshService. The restored records carry
// SourceCached, so they classify files but never drive conflict detection,
// and the classifier's listing timestamp is left alone.
func (s *refreshService) RestoreFromCache(ctx context.Context) error {
	cached, err := s.records.GetAll(ctx, true)
	if err != nil {
		return fmt.Errorf("load cached records: %w", err)
	}

	s.reconcileIndex(cached)

	s.logger.Info().Int("records", len(cached)).Msg("index restored from cached listing")
	return nil
}

// reconcileIndex folds the listing into the index: known paths get their
// record updated, unknown paths become cloud-only items, and items whose
// record vanished from the listing lose the association. PendingMetadata is
// never touched, a passive refresh must not discard unsaved edits.
func (s *refreshService) reconcileIndex(listing []models.SyncRecord) {
	byPath := make(map[string]models.SyncRecord, len(listing))
	for _, record := range listing {
		byPath[vault.NormalizePath(record.RelativePath)] = record
	}

	for _, item := range s.index.All() {
		record, listed := byPath[item.RelativePath]
		if listed {
			item.RemoteRecord = &record
			s.index.Put(item)
			delete(byPath, item.RelativePath)
			continue
		}
		if item.Synchronized() {
			if item.ExistsLocally {
				item.RemoteRecord = nil
				s.index.Put(item)
			} else {
				s.index.Remove(item.RelativePath)
			}
		}
	}

	// Whatever remains was never seen locally: cloud-only items.
	for rel, record := range byPath {
		rec := record
		s.index.Put(models.TrackedItem{
			RelativePath: rel,
			RemoteRecord: &rec,
		})
	}
}
