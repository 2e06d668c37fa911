// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-vault-sync/internal/vault"
	"github.com/MKhiriev/go-vault-sync/models"
)

// syncClassifier is the concrete implementation of SyncClassifier.
// Classification is an in-memory decision over the item and the ignore
// rules; no storage layer or network access is involved, which is what keeps
// the classifier total and repeatable.
type syncClassifier struct {
	index *vault.Index

	mu          sync.RWMutex
	lastListing time.Time
}

// NewSyncClassifier constructs a SyncClassifier. The index is consulted only
// for the folder edge case: a folder's status is derived from the local
// presence of its subtree, never stored.
func NewSyncClassifier(index *vault.Index) SyncClassifier {
	return &syncClassifier{index: index}
}

func (c *syncClassifier) NoteFullListing() {
	c.mu.Lock()
	c.lastListing = time.Now()
	c.mu.Unlock()
}

// Classify implements SyncClassifier. Rules are applied in priority order:
//
//  1. no remote record and no local copy → ErrNotTracked;
//  2. local-only → Ignored when an ignore pattern matches, else Local;
//  3. remote-only → CloudOnly (CloudNew when the record postdates the last
//     full listing);
//  4. both present but the remote record was deleted by another actor →
//     OrphanedRemote;
//  5. otherwise → Synced.
//
// A folder counts as locally present only if it or any descendant has a copy
// on disk; an empty never-downloaded folder therefore stays CloudOnly.
func (c *syncClassifier) Classify(item models.TrackedItem, rules *vault.IgnoreRuleSet) (models.DiffStatus, error) {
	existsLocally := item.ExistsLocally
	if item.IsDirectory {
		existsLocally = existsLocally || c.index.HasLocalPresence(item.RelativePath)
	}

	if item.RemoteRecord == nil {
		if !existsLocally {
			return "", ErrNotTracked
		}
		if rules != nil && rules.Match(item.RelativePath, item.IsDirectory) {
			return models.StatusIgnored, nil
		}
		return models.StatusLocal, nil
	}

	if !existsLocally {
		if c.recordIsNew(item.RemoteRecord) {
			return models.StatusCloudNew, nil
		}
		return models.StatusCloudOnly, nil
	}

	if item.RemoteRecord.Deleted {
		return models.StatusOrphanedRemote, nil
	}

	return models.StatusSynced, nil
}

func (c *syncClassifier) recordIsNew(record *models.SyncRecord) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return !c.lastListing.IsZero() && record.CreatedAt.After(c.lastListing)
}
