// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// Human-readable message strings surfaced to the UI. Every denial and
// conflict cause has distinct wording so the UI never has to infer the cause
// from an error code. Keeping them in one place ensures consistent wording
// throughout the client.
const (
	// MsgRequiresCheckoutPermission is returned when a viewer attempts to
	// check a file out.
	MsgRequiresCheckoutPermission = "Requires checkout permission"

	// MsgRequiresCheckinPermission is returned when a viewer attempts to
	// check a file in or publish a first check-in.
	MsgRequiresCheckinPermission = "Requires check-in permission"

	// MsgRequiresDeletePermission is returned when a viewer attempts a
	// local or server-side delete.
	MsgRequiresDeletePermission = "Requires delete permission"

	// MsgRequiresDiscardPermission is returned when a viewer attempts to
	// discard a checkout or an orphaned file.
	MsgRequiresDiscardPermission = "Requires discard permission"

	// MsgRequiresMetadataPermission is returned when a viewer attempts to
	// publish metadata edits.
	MsgRequiresMetadataPermission = "Requires metadata permission"

	// MsgForceReleaseAdminOnly is returned when a non-admin attempts a
	// force release of another user's checkout.
	MsgForceReleaseAdminOnly = "Force release requires administrator rights"

	// MsgUnknownOperation is returned when the operation name is not part
	// of the command surface.
	MsgUnknownOperation = "Unknown operation"

	// MsgUnknownRole is returned when the configured role is not one of
	// viewer, editor, admin.
	MsgUnknownRole = "Unknown role"

	// MsgAlreadyCheckedOutHere reports the benign no-op of checking out a
	// file this machine already holds.
	MsgAlreadyCheckedOutHere = "Already checked out on this machine"

	// MsgAlreadyCheckedIn reports the benign no-op of checking in a file
	// that holds no checkout.
	MsgAlreadyCheckedIn = "Already checked in"

	// MsgNeverSynchronized is returned when a check-in targets a file with
	// no server record; the first check-in ("sync") must be used instead.
	MsgNeverSynchronized = "File has never been synchronized"

	// MsgNoServerRecord is returned when a server-side operation targets a
	// file that has no server record.
	MsgNoServerRecord = "No server record for this file"

	// MsgNotOnDisk is returned when a local operation targets a file that
	// has no local copy.
	MsgNotOnDisk = "No local copy of this file"

	// MsgNotOrphaned is returned when discard-orphaned targets a file
	// whose server record still exists.
	MsgNotOrphaned = "File is not orphaned"

	// MsgNoPendingMetadata is returned when sync-metadata targets a file
	// without unsaved metadata edits.
	MsgNoPendingMetadata = "No unsaved metadata edits"

	// MsgNotTracked is returned when a selected path is neither on disk nor
	// known to the server.
	MsgNotTracked = "Path is not tracked"

	// MsgCheckinStopped is reported for the non-conflicting members of a
	// check-in batch that was stopped by a checkout conflict. Nothing was
	// sent to the server for them either.
	MsgCheckinStopped = "Check-in stopped by a checkout conflict"

	// MsgServerUnavailable is reported per file for transient transport
	// failures; the operation is safe to retry.
	MsgServerUnavailable = "Vault server unavailable, try again"

	// MsgIdentityDegraded warns that this session cannot detect checkout
	// conflicts because the machine identity could not be resolved.
	MsgIdentityDegraded = "Machine identity unavailable, checkout conflicts cannot be detected this session"
)
