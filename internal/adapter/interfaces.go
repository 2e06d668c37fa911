// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the vault server.
//
// The primary abstraction is [ServerAdapter], which decouples the engine from
// the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrRemoteUnavailable] for
// 502/503/504 and network-level failures).
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-vault-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the vault
// server. The server is the authoritative owner of checkout locks; every
// record returned by an adapter method is tagged
// [models.SourceAuthoritative].
//
// Implementations are responsible for serialisation and for mapping
// transport-level errors to the sentinel values defined in this package.
type ServerAdapter interface {
	// GetSyncRecord fetches the server's current record for one file.
	// Returns ErrNotFound if the server has no record for fileID.
	GetSyncRecord(ctx context.Context, fileID string) (models.SyncRecord, error)

	// ListRecords fetches all records of the vault the acting user can see.
	// Used by the classify-refresh job to repopulate the local cache.
	ListRecords(ctx context.Context, userID string) ([]models.SyncRecord, error)

	// Checkout acquires the exclusive edit lock on fileID for
	// (userID, machineID). Returns ErrConflict if another holder already
	// has the lock.
	Checkout(ctx context.Context, fileID, userID, machineID string) error

	// Checkin releases the checkout held by userID and publishes a new
	// version. When req.MetadataOnly is set only the pending metadata is
	// published. Returns the new version number on success.
	Checkin(ctx context.Context, req models.CheckinRequest) (int64, error)

	// FirstCheckin creates the server record for a file that has never been
	// synchronized ("sync" in the command surface) and returns it.
	FirstCheckin(ctx context.Context, req models.FirstCheckinRequest) (models.SyncRecord, error)

	// IsMachineOnline reports whether machineID currently has an active
	// session heartbeat associated with userID.
	IsMachineOnline(ctx context.Context, userID, machineID string) (bool, error)

	// ForceRelease clears another user's checkout on fileID without their
	// involvement. Admin-only; the engine's permission policy must be
	// consulted before calling this.
	ForceRelease(ctx context.Context, fileID, adminUserID string) error

	// DeleteRecord removes the server record for fileID. The local copy, if
	// any, is untouched by this call.
	DeleteRecord(ctx context.Context, fileID string) error

	// DownloadContent streams the current content of fileID. The caller
	// owns the returned reader and must close it.
	DownloadContent(ctx context.Context, fileID string) (io.ReadCloser, error)

	// UndoCheckout releases the checkout held by userID without publishing
	// a new version. Local changes are abandoned by the caller.
	UndoCheckout(ctx context.Context, fileID, userID string) error
}
