// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service contains the engine core: the pure sync classifier, the
// static permission policy, the checkout-conflict resolver, the batch
// command executor, and the background refresh service.
//
// Everything here is a plain request/response boundary. No component retains
// callbacks or presentation state; the UI re-renders from returned values.
package service

import (
	"context"

	"github.com/MKhiriev/go-vault-sync/internal/vault"
	"github.com/MKhiriev/go-vault-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncClassifier derives the DiffStatus of a tracked item. Classification is
// a pure function of the item, the ignore rules, and the classifier's last
// full-listing timestamp; it performs no I/O and never suspends.
type SyncClassifier interface {
	// Classify computes the DiffStatus of item under rules. Returns
	// ErrNotTracked when the item neither exists locally nor has a remote
	// record: such an item must not be classified.
	Classify(item models.TrackedItem, rules *vault.IgnoreRuleSet) (models.DiffStatus, error)

	// NoteFullListing records the time of the session's last complete
	// listing refresh; records created after it classify as CloudNew
	// instead of CloudOnly. Purely cosmetic, gates nothing.
	NoteFullListing()
}

// Decision is a permission policy verdict. When Allowed is false, Reason
// carries the human-readable denial wording the UI shows verbatim.
type Decision struct {
	Allowed bool
	Reason  string
}

// PermissionPolicy maps (operation, actor role) to a Decision. The policy is
// a static table: no I/O, queried before any command executes.
type PermissionPolicy interface {
	Check(op models.Operation, role models.Role) Decision
}

// ConflictResolver detects cross-machine checkout conflicts for a batch of
// files pending check-in.
type ConflictResolver interface {
	// Detect returns the conflict among files whose checkout is held from a
	// machine other than machineID, or nil when there is none. Presence of
	// each holding machine is queried through the server; the returned
	// value carries everything the caller needs, the resolver keeps no
	// state.
	Detect(ctx context.Context, files []models.TrackedItem, machineID, userID string) (*models.CheckoutConflict, error)
}

// Request names one invocation of the engine's command surface.
type Request struct {
	Operation models.Operation

	// Paths holds the vault-relative selection; entries may be files or
	// folders. Folders are expanded to the descendant files relevant to
	// the operation.
	Paths []string

	// Force confirms a check-in override after a non-blocking conflict was
	// reported. Meaningless for other operations.
	Force bool

	// KeepLocal makes delete-server keep the local copy (the file becomes
	// a plain local file); otherwise both copies are removed.
	KeepLocal bool
}

// CommandExecutor is the engine's public command surface.
type CommandExecutor interface {
	// Execute validates permissions, expands the selection, runs conflict
	// detection for check-ins, performs the per-file remote calls, and
	// reports per-file outcomes in input order. Batch execution is
	// best-effort: one file's failure never aborts the rest.
	Execute(ctx context.Context, req Request) (models.BatchResult, error)
}

// RefreshService re-pulls the server's record listing into the local cache
// and the vault index.
type RefreshService interface {
	// FullRefresh lists all records for the user, replaces the cache, and
	// reconciles the index. Safe to call periodically; failures leave the
	// previous cache in place.
	FullRefresh(ctx context.Context, userID string) error

	// RestoreFromCache reconciles the index with the last persisted listing
	// instead of the server, for sessions that start without connectivity.
	// Restored records are tagged as cached and never drive conflict
	// detection.
	RestoreFromCache(ctx context.Context) error
}
