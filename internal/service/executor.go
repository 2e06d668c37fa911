// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/MKhiriev/go-vault-sync/internal/adapter"
	"github.com/MKhiriev/go-vault-sync/internal/identity"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/store"
	"github.com/MKhiriev/go-vault-sync/internal/vault"
	"github.com/MKhiriev/go-vault-sync/models"
	"github.com/go-git/go-billy/v5"
)

// knownOperations is the executor's command surface. Requests outside this
// set are denied before the policy is even consulted.
var knownOperations = map[models.Operation]bool{
	models.OpCheckout:          true,
	models.OpCheckin:           true,
	models.OpSync:              true,
	models.OpDownload:          true,
	models.OpDeleteLocal:       true,
	models.OpDeleteServer:      true,
	models.OpDiscard:           true,
	models.OpDiscardOrphaned:   true,
	models.OpSyncMetadata:      true,
	models.OpExtractReferences: true,
	models.OpForceRelease:      true,
}

// ExecutorDeps gathers everything the executor needs. All fields are
// required except FanOutLimit, which defaults to 1 when non-positive.
type ExecutorDeps struct {
	Policy   PermissionPolicy
	Resolver ConflictResolver
	Server   adapter.ServerAdapter
	Records  store.RecordRepository
	Pending  store.PendingMetadataRepository
	Index    *vault.Index
	Hasher   *vault.Hasher
	Identity *identity.Resolver

	// FS and Root address the local vault the same way the scanner does.
	FS   billy.Filesystem
	Root string

	UserID      string
	Role        models.Role
	FanOutLimit int

	Logger *logger.Logger
}

type commandExecutor struct {
	ExecutorDeps
}

// NewCommandExecutor constructs the engine's CommandExecutor.
func NewCommandExecutor(deps ExecutorDeps) CommandExecutor {
	if deps.FanOutLimit <= 0 {
		deps.FanOutLimit = 1
	}
	deps.Logger = deps.Logger.GetChildLogger()
	return &commandExecutor{ExecutorDeps: deps}
}

// target is one file of the expanded selection. When result is non-nil the
// target is already settled and the fan-out skips it.
type target struct {
	item   models.TrackedItem
	result *models.FileResult
}

// Execute implements CommandExecutor. Order is fixed: permission policy,
// selection expansion, identity resolution, conflict detection (check-in
// only), then the per-file remote calls. A policy denial or a conflict stop
// happens before any remote mutation.
func (e *commandExecutor) Execute(ctx context.Context, req Request) (models.BatchResult, error) {
	result := models.BatchResult{Operation: req.Operation}

	if !knownOperations[req.Operation] {
		result.Denied = true
		result.DeniedReason = MsgUnknownOperation
		return result, nil
	}

	if decision := e.Policy.Check(req.Operation, e.Role); !decision.Allowed {
		result.Denied = true
		result.DeniedReason = decision.Reason
		e.Logger.Info().
			Str("op", string(req.Operation)).
			Str("role", string(e.Role)).
			Str("reason", decision.Reason).
			Msg("operation denied by policy")
		return result, nil
	}

	targets := e.expand(req)
	if len(targets) == 0 {
		return result, ErrNothingSelected
	}

	machineID := ""
	if id, err := e.Identity.Resolve(); err != nil {
		result.IdentityDegraded = true
		e.Logger.Warn().Err(err).Msg("machine identity unavailable, conflict detection disabled")
	} else {
		machineID = id.ID
	}

	if req.Operation == models.OpCheckin {
		stop, err := e.prepareCheckin(ctx, targets, &result, req, machineID)
		if err != nil {
			return result, err
		}
		if stop {
			result.Tally()
			return result, nil
		}
	}

	e.fanOut(ctx, req, targets, machineID)

	result.Files = make([]models.FileResult, len(targets))
	for i, t := range targets {
		result.Files[i] = *t.result
	}
	result.Tally()

	e.Logger.Info().
		Str("op", string(req.Operation)).
		Int("files", len(result.Files)).
		Int("succeeded", result.Succeeded).
		Int("failed", result.Failed).
		Msg("batch finished")

	return result, nil
}

// expand turns the request's path selection into per-file targets. Folders
// expand through the index to the descendant files eligible for the
// operation; directly named files are always included so they can carry a
// precise per-file reason.
func (e *commandExecutor) expand(req Request) []target {
	var targets []target
	seen := make(map[string]bool)

	add := func(item models.TrackedItem, preset *models.FileResult) {
		if seen[item.RelativePath] {
			return
		}
		seen[item.RelativePath] = true
		targets = append(targets, target{item: item, result: preset})
	}

	for _, p := range req.Paths {
		rel := vault.NormalizePath(p)
		item, ok := e.Index.Get(rel)
		if !ok {
			add(models.TrackedItem{RelativePath: rel}, &models.FileResult{
				RelativePath: rel,
				Kind:         models.FailureNotEligible,
				Reason:       MsgNotTracked,
			})
			continue
		}

		if !item.IsDirectory {
			add(item, nil)
			if req.Operation == models.OpExtractReferences {
				for _, ref := range e.referencesOf(item) {
					add(ref, nil)
				}
			}
			continue
		}

		for _, child := range e.Index.DescendantsOf(rel) {
			if eligible(req.Operation, child) {
				add(child, nil)
			}
		}
	}

	return targets
}

// eligible filters folder expansion per operation, so bulk commands touch
// only files the operation can meaningfully apply to.
func eligible(op models.Operation, item models.TrackedItem) bool {
	switch op {
	case models.OpSync:
		return !item.Synchronized() && item.ExistsLocally
	case models.OpDeleteLocal:
		return item.ExistsLocally
	case models.OpDiscardOrphaned:
		return item.Synchronized() && item.RemoteRecord.Deleted && item.ExistsLocally
	case models.OpDiscard:
		return item.Synchronized() && item.RemoteRecord.CheckedOut()
	case models.OpForceRelease:
		return item.Synchronized() && item.RemoteRecord.CheckedOut()
	case models.OpExtractReferences:
		return true
	default:
		return item.Synchronized()
	}
}

// referencesOf returns the sibling files associated with item: files in the
// same folder sharing its base name with a different extension (a part's
// drawing, a drawing's part). The association is derived from the index
// only, no file content is parsed.
func (e *commandExecutor) referencesOf(item models.TrackedItem) []models.TrackedItem {
	dir := path.Dir(item.RelativePath)
	stem := strings.TrimSuffix(path.Base(item.RelativePath), path.Ext(item.RelativePath))

	var refs []models.TrackedItem
	for _, other := range e.Index.DescendantsOf(dir) {
		if other.RelativePath == item.RelativePath || other.IsDirectory {
			continue
		}
		if path.Dir(other.RelativePath) != dir {
			continue
		}
		if strings.TrimSuffix(path.Base(other.RelativePath), path.Ext(other.RelativePath)) == stem {
			refs = append(refs, other)
		}
	}
	return refs
}

// prepareCheckin refreshes the targets' records from the server and runs
// conflict detection. Returns stop=true when the whole check-in must not
// proceed; result.Files is then already populated.
//
// The refresh is mandatory: a stale cached lock must never decide a
// check-in. Targets whose refresh fails are settled as RemoteUnavailable and
// excluded from detection.
func (e *commandExecutor) prepareCheckin(ctx context.Context, targets []target, result *models.BatchResult, req Request, machineID string) (bool, error) {
	var live []models.TrackedItem
	for i := range targets {
		t := &targets[i]
		if t.result != nil {
			continue
		}
		if !t.item.Synchronized() {
			continue // settled per-file later, with MsgNeverSynchronized
		}

		record, err := e.Server.GetSyncRecord(ctx, t.item.RemoteRecord.ID)
		switch {
		case err == nil:
			t.item.RemoteRecord = &record
			e.rememberRecord(ctx, t.item.RelativePath, record)
		case errors.Is(err, adapter.ErrNotFound):
			deleted := *t.item.RemoteRecord
			deleted.Deleted = true
			deleted.Source = models.SourceAuthoritative
			t.item.RemoteRecord = &deleted
		default:
			kind, reason := failureFromError(err)
			t.result = &models.FileResult{
				RelativePath: t.item.RelativePath,
				Kind:         kind,
				Reason:       reason,
			}
			continue
		}
		live = append(live, t.item)
	}

	if machineID == "" {
		// Degraded mode: without an identity every lock looks foreign, so
		// detection is skipped entirely and the check-in proceeds.
		return false, nil
	}

	conflict, err := e.Resolver.Detect(ctx, live, machineID, e.UserID)
	if err != nil {
		return false, fmt.Errorf("conflict detection: %w", err)
	}
	if conflict == nil {
		return false, nil
	}
	if !conflict.Blocking() && req.Force {
		return false, nil
	}

	result.Conflict = conflict
	conflicting := make(map[string]bool, len(conflict.Files))
	for _, f := range conflict.Files {
		conflicting[f.RelativePath] = true
	}

	blockedReason := blockedCheckinReason(*conflict)
	result.Files = make([]models.FileResult, len(targets))
	for i, t := range targets {
		if t.result != nil {
			result.Files[i] = *t.result
			continue
		}
		reason := MsgCheckinStopped
		if conflicting[t.item.RelativePath] {
			reason = blockedReason
		}
		result.Files[i] = models.FileResult{
			RelativePath: t.item.RelativePath,
			Kind:         models.FailureConflictBlocked,
			Reason:       reason,
		}
	}
	return true, nil
}

// blockedCheckinReason words the conflict per cause: an offline holder reads
// differently from an online one the user declined to override.
func blockedCheckinReason(conflict models.CheckoutConflict) string {
	machines := strings.Join(conflict.MachineNames, ", ")
	verb := "is"
	if len(conflict.MachineNames) > 1 {
		verb = "are"
	}
	state := "offline"
	if conflict.AnyMachineOnline {
		state = "online"
	}
	return fmt.Sprintf("Checked out on %s, which %s %s", machines, verb, state)
}

// fanOut runs the per-file handlers under a bounded semaphore, writing each
// outcome to its input slot so completion order never reorders the batch.
func (e *commandExecutor) fanOut(ctx context.Context, req Request, targets []target, machineID string) {
	sem := make(chan struct{}, e.FanOutLimit)
	var wg sync.WaitGroup

	for i := range targets {
		if targets[i].result != nil {
			continue
		}
		wg.Add(1)
		go func(t *target) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			r := e.runOne(ctx, req, t.item, machineID)
			t.result = &r
		}(&targets[i])
	}

	wg.Wait()
}

func (e *commandExecutor) runOne(ctx context.Context, req Request, item models.TrackedItem, machineID string) models.FileResult {
	switch req.Operation {
	case models.OpCheckout:
		return e.doCheckout(ctx, item, machineID)
	case models.OpCheckin:
		return e.doCheckin(ctx, item)
	case models.OpSync:
		return e.doFirstCheckin(ctx, item)
	case models.OpDownload:
		return e.doDownload(ctx, item)
	case models.OpDeleteLocal:
		return e.doDeleteLocal(item)
	case models.OpDeleteServer:
		return e.doDeleteServer(ctx, item, req.KeepLocal)
	case models.OpDiscard:
		return e.doDiscard(ctx, item)
	case models.OpDiscardOrphaned:
		return e.doDiscardOrphaned(ctx, item)
	case models.OpSyncMetadata:
		return e.doSyncMetadata(ctx, item)
	case models.OpExtractReferences:
		return models.FileResult{RelativePath: item.RelativePath, Success: true}
	case models.OpForceRelease:
		return e.doForceRelease(ctx, item)
	default:
		return models.FileResult{
			RelativePath: item.RelativePath,
			Kind:         models.FailureNotEligible,
			Reason:       MsgUnknownOperation,
		}
	}
}

func (e *commandExecutor) doCheckout(ctx context.Context, item models.TrackedItem, machineID string) models.FileResult {
	if !item.Synchronized() {
		return fail(item, models.FailureNotEligible, MsgNeverSynchronized)
	}

	record, err := e.Server.GetSyncRecord(ctx, item.RemoteRecord.ID)
	if err != nil {
		return failErr(item, err)
	}
	e.rememberRecord(ctx, item.RelativePath, record)

	if record.CheckedOutBy == e.UserID && record.CheckedOutByMachineID == machineID {
		return fail(item, models.FailureAlreadyCheckedOut, MsgAlreadyCheckedOutHere)
	}
	if record.CheckedOutElsewhere(machineID) {
		return fail(item, models.FailureConflictBlocked,
			fmt.Sprintf("Checked out by %s on %s", record.CheckedOutBy, record.CheckedOutByMachineName))
	}

	if err := e.Server.Checkout(ctx, record.ID, e.UserID, machineID); err != nil {
		return failErr(item, err)
	}
	e.refreshRecord(ctx, item.RelativePath, record.ID)

	return models.FileResult{RelativePath: item.RelativePath, Success: true}
}

func (e *commandExecutor) doCheckin(ctx context.Context, item models.TrackedItem) models.FileResult {
	if !item.Synchronized() {
		return fail(item, models.FailureNotEligible, MsgNeverSynchronized)
	}
	// Records were refreshed in prepareCheckin, so this holder state is
	// authoritative.
	if !item.RemoteRecord.CheckedOut() {
		return fail(item, models.FailureAlreadyCheckedIn, MsgAlreadyCheckedIn)
	}

	metadata, err := e.Pending.Get(ctx, item.RelativePath)
	if err != nil {
		e.Logger.Error().Err(err).Str("path", item.RelativePath).Msg("pending metadata read failed, checking in without it")
		metadata = nil
	}

	newVersion, err := e.Server.Checkin(ctx, models.CheckinRequest{
		FileID:   item.RemoteRecord.ID,
		UserID:   e.UserID,
		Metadata: metadata,
	})
	if err != nil {
		return failErr(item, err)
	}

	if err := e.Pending.Clear(ctx, item.RelativePath); err != nil {
		e.Logger.Error().Err(err).Str("path", item.RelativePath).Msg("pending metadata clear failed")
	}
	e.refreshRecord(ctx, item.RelativePath, item.RemoteRecord.ID)

	return models.FileResult{RelativePath: item.RelativePath, Success: true, NewVersion: newVersion}
}

func (e *commandExecutor) doFirstCheckin(ctx context.Context, item models.TrackedItem) models.FileResult {
	if item.Synchronized() {
		return fail(item, models.FailureAlreadyCheckedIn, MsgAlreadyCheckedIn)
	}
	if !item.ExistsLocally {
		return fail(item, models.FailureNotEligible, MsgNotOnDisk)
	}

	hash := item.LocalContentHash
	if hash == "" {
		var err error
		if hash, err = e.Hasher.ContentHash(item.RelativePath); err != nil {
			return fail(item, models.FailureLocalIO, err.Error())
		}
	}

	metadata, err := e.Pending.Get(ctx, item.RelativePath)
	if err != nil {
		metadata = nil
	}

	record, err := e.Server.FirstCheckin(ctx, models.FirstCheckinRequest{
		RelativePath: item.RelativePath,
		UserID:       e.UserID,
		SizeBytes:    item.SizeBytes,
		ContentHash:  hash,
		Metadata:     metadata,
	})
	if err != nil {
		return failErr(item, err)
	}

	if err := e.Pending.Clear(ctx, item.RelativePath); err != nil {
		e.Logger.Error().Err(err).Str("path", item.RelativePath).Msg("pending metadata clear failed")
	}
	e.rememberRecord(ctx, item.RelativePath, record)

	return models.FileResult{RelativePath: item.RelativePath, Success: true, NewVersion: record.Version}
}

func (e *commandExecutor) doDownload(ctx context.Context, item models.TrackedItem) models.FileResult {
	if !item.Synchronized() {
		return fail(item, models.FailureNotEligible, MsgNoServerRecord)
	}

	content, err := e.Server.DownloadContent(ctx, item.RemoteRecord.ID)
	if err != nil {
		return failErr(item, err)
	}
	defer content.Close()

	full := e.FS.Join(e.Root, filepath.FromSlash(item.RelativePath))
	if err := e.FS.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fail(item, models.FailureLocalIO, err.Error())
	}
	f, err := e.FS.Create(full)
	if err != nil {
		return fail(item, models.FailureLocalIO, err.Error())
	}
	written, err := io.Copy(f, content)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fail(item, models.FailureLocalIO, err.Error())
	}

	item.ExistsLocally = true
	item.SizeBytes = written
	item.LocalContentHash = ""
	e.Index.Put(item)

	return models.FileResult{RelativePath: item.RelativePath, Success: true}
}

func (e *commandExecutor) doDeleteLocal(item models.TrackedItem) models.FileResult {
	if !item.ExistsLocally {
		return fail(item, models.FailureNotEligible, MsgNotOnDisk)
	}

	full := e.FS.Join(e.Root, filepath.FromSlash(item.RelativePath))
	if err := e.FS.Remove(full); err != nil {
		return fail(item, models.FailureLocalIO, err.Error())
	}

	if item.Synchronized() {
		// The file becomes cloud-only; the record stays.
		item.ExistsLocally = false
		item.LocalContentHash = ""
		e.Index.Put(item)
	} else {
		e.Index.Remove(item.RelativePath)
	}

	return models.FileResult{RelativePath: item.RelativePath, Success: true}
}

func (e *commandExecutor) doDeleteServer(ctx context.Context, item models.TrackedItem, keepLocal bool) models.FileResult {
	if !item.Synchronized() {
		return fail(item, models.FailureNotEligible, MsgNoServerRecord)
	}

	if err := e.Server.DeleteRecord(ctx, item.RemoteRecord.ID); err != nil {
		return failErr(item, err)
	}
	if err := e.Records.Delete(ctx, item.RemoteRecord.ID); err != nil {
		e.Logger.Error().Err(err).Str("path", item.RelativePath).Msg("cached record delete failed")
	}

	if keepLocal && item.ExistsLocally {
		// Demote to a plain local file.
		item.RemoteRecord = nil
		e.Index.Put(item)
		return models.FileResult{RelativePath: item.RelativePath, Success: true}
	}

	if item.ExistsLocally {
		full := e.FS.Join(e.Root, filepath.FromSlash(item.RelativePath))
		if err := e.FS.Remove(full); err != nil {
			return fail(item, models.FailureLocalIO, err.Error())
		}
	}
	e.Index.Remove(item.RelativePath)

	return models.FileResult{RelativePath: item.RelativePath, Success: true}
}

func (e *commandExecutor) doDiscard(ctx context.Context, item models.TrackedItem) models.FileResult {
	if !item.Synchronized() {
		return fail(item, models.FailureNotEligible, MsgNoServerRecord)
	}
	if !item.RemoteRecord.CheckedOut() {
		return fail(item, models.FailureAlreadyCheckedIn, MsgAlreadyCheckedIn)
	}

	if err := e.Server.UndoCheckout(ctx, item.RemoteRecord.ID, e.UserID); err != nil {
		return failErr(item, err)
	}
	e.refreshRecord(ctx, item.RelativePath, item.RemoteRecord.ID)

	return models.FileResult{RelativePath: item.RelativePath, Success: true}
}

// doDiscardOrphaned is the only server-record operation that issues no
// remote call: the record is already gone, so only the local copy and the
// cached record are removed.
func (e *commandExecutor) doDiscardOrphaned(ctx context.Context, item models.TrackedItem) models.FileResult {
	if !item.Synchronized() || !item.RemoteRecord.Deleted {
		return fail(item, models.FailureNotEligible, MsgNotOrphaned)
	}

	if err := e.Records.Delete(ctx, item.RemoteRecord.ID); err != nil {
		e.Logger.Error().Err(err).Str("path", item.RelativePath).Msg("cached record delete failed")
	}

	if item.ExistsLocally {
		full := e.FS.Join(e.Root, filepath.FromSlash(item.RelativePath))
		if err := e.FS.Remove(full); err != nil {
			return fail(item, models.FailureLocalIO, err.Error())
		}
	}
	e.Index.Remove(item.RelativePath)

	return models.FileResult{RelativePath: item.RelativePath, Success: true}
}

func (e *commandExecutor) doSyncMetadata(ctx context.Context, item models.TrackedItem) models.FileResult {
	if !item.Synchronized() {
		return fail(item, models.FailureNotEligible, MsgNoServerRecord)
	}

	metadata, err := e.Pending.Get(ctx, item.RelativePath)
	if err != nil {
		return fail(item, models.FailureLocalIO, err.Error())
	}
	if len(metadata) == 0 {
		return fail(item, models.FailureNotEligible, MsgNoPendingMetadata)
	}

	if _, err := e.Server.Checkin(ctx, models.CheckinRequest{
		FileID:       item.RemoteRecord.ID,
		UserID:       e.UserID,
		MetadataOnly: true,
		Metadata:     metadata,
	}); err != nil {
		return failErr(item, err)
	}

	if err := e.Pending.Clear(ctx, item.RelativePath); err != nil {
		e.Logger.Error().Err(err).Str("path", item.RelativePath).Msg("pending metadata clear failed")
	}
	e.refreshRecord(ctx, item.RelativePath, item.RemoteRecord.ID)

	return models.FileResult{RelativePath: item.RelativePath, Success: true}
}

func (e *commandExecutor) doForceRelease(ctx context.Context, item models.TrackedItem) models.FileResult {
	if !item.Synchronized() {
		return fail(item, models.FailureNotEligible, MsgNoServerRecord)
	}

	record, err := e.Server.GetSyncRecord(ctx, item.RemoteRecord.ID)
	if err != nil {
		return failErr(item, err)
	}
	if !record.CheckedOut() {
		return fail(item, models.FailureAlreadyCheckedIn, MsgAlreadyCheckedIn)
	}

	if err := e.Server.ForceRelease(ctx, record.ID, e.UserID); err != nil {
		return failErr(item, err)
	}
	e.refreshRecord(ctx, item.RelativePath, record.ID)

	return models.FileResult{RelativePath: item.RelativePath, Success: true}
}

// refreshRecord re-fetches one record after a mutation and folds it into the
// cache and the index. Failures are logged only: the mutation already
// happened, the next listing refresh will converge the cache.
func (e *commandExecutor) refreshRecord(ctx context.Context, rel, fileID string) {
	record, err := e.Server.GetSyncRecord(ctx, fileID)
	if err != nil {
		e.Logger.Warn().Err(err).Str("path", rel).Msg("post-operation record refresh failed")
		return
	}
	e.rememberRecord(ctx, rel, record)
}

// rememberRecord folds an authoritative record into the cache and the index.
// PendingMetadata on the indexed item is untouched: a record refresh is a
// passive observation, never a metadata discard.
func (e *commandExecutor) rememberRecord(ctx context.Context, rel string, record models.SyncRecord) {
	if err := e.Records.UpsertRecords(ctx, record); err != nil {
		e.Logger.Warn().Err(err).Str("path", rel).Msg("record cache upsert failed")
	}
	if item, ok := e.Index.Get(rel); ok {
		item.RemoteRecord = &record
		e.Index.Put(item)
	}
}

func fail(item models.TrackedItem, kind models.FailureKind, reason string) models.FileResult {
	return models.FileResult{RelativePath: item.RelativePath, Kind: kind, Reason: reason}
}

func failErr(item models.TrackedItem, err error) models.FileResult {
	kind, reason := failureFromError(err)
	return fail(item, kind, reason)
}

// failureFromError maps adapter sentinel errors to typed per-file failures.
func failureFromError(err error) (models.FailureKind, string) {
	switch {
	case errors.Is(err, adapter.ErrRemoteUnavailable):
		return models.FailureRemoteUnavailable, MsgServerUnavailable
	case errors.Is(err, adapter.ErrConflict):
		return models.FailureConflictBlocked, err.Error()
	case errors.Is(err, adapter.ErrNotFound):
		return models.FailureNotEligible, MsgNoServerRecord
	case errors.Is(err, adapter.ErrForbidden), errors.Is(err, adapter.ErrUnauthorized):
		return models.FailurePermissionDenied, err.Error()
	default:
		return models.FailureRemoteUnavailable, err.Error()
	}
}
