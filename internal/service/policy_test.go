// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/MKhiriev/go-vault-sync/models"
	"github.com/stretchr/testify/assert"
)

// ─────────────────────────────────────────────────────────────────────────────
// Check — full role × operation table
// ─────────────────────────────────────────────────────────────────────────────

func TestPermissionPolicy_Check(t *testing.T) {
	policy := NewPermissionPolicy()

	tests := []struct {
		name       string
		op         models.Operation
		role       models.Role
		allowed    bool
		wantReason string
	}{
		// ── viewer: read-only surface ────────────────────────────────────────
		{name: "Viewer/Download → allowed", op: models.OpDownload, role: models.RoleViewer, allowed: true},
		{name: "Viewer/ExtractReferences → allowed", op: models.OpExtractReferences, role: models.RoleViewer, allowed: true},
		{name: "Viewer/Checkout → denied", op: models.OpCheckout, role: models.RoleViewer, wantReason: MsgRequiresCheckoutPermission},
		{name: "Viewer/Checkin → denied", op: models.OpCheckin, role: models.RoleViewer, wantReason: MsgRequiresCheckinPermission},
		{name: "Viewer/Sync → denied", op: models.OpSync, role: models.RoleViewer, wantReason: MsgRequiresCheckinPermission},
		{name: "Viewer/SyncMetadata → denied", op: models.OpSyncMetadata, role: models.RoleViewer, wantReason: MsgRequiresMetadataPermission},
		{name: "Viewer/DeleteLocal → denied", op: models.OpDeleteLocal, role: models.RoleViewer, wantReason: MsgRequiresDeletePermission},
		{name: "Viewer/DeleteServer → denied", op: models.OpDeleteServer, role: models.RoleViewer, wantReason: MsgRequiresDeletePermission},
		{name: "Viewer/Discard → denied", op: models.OpDiscard, role: models.RoleViewer, wantReason: MsgRequiresDiscardPermission},
		{name: "Viewer/DiscardOrphaned → denied", op: models.OpDiscardOrphaned, role: models.RoleViewer, wantReason: MsgRequiresDiscardPermission},
		{name: "Viewer/ForceRelease → denied", op: models.OpForceRelease, role: models.RoleViewer, wantReason: MsgForceReleaseAdminOnly},

		// ── editor: everything except force-release ──────────────────────────
		{name: "Editor/Checkout → allowed", op: models.OpCheckout, role: models.RoleEditor, allowed: true},
		{name: "Editor/Checkin → allowed", op: models.OpCheckin, role: models.RoleEditor, allowed: true},
		{name: "Editor/DeleteServer → allowed", op: models.OpDeleteServer, role: models.RoleEditor, allowed: true},
		{name: "Editor/ForceRelease → denied", op: models.OpForceRelease, role: models.RoleEditor, wantReason: MsgForceReleaseAdminOnly},

		// ── admin: everything ────────────────────────────────────────────────
		{name: "Admin/ForceRelease → allowed", op: models.OpForceRelease, role: models.RoleAdmin, allowed: true},
		{name: "Admin/Checkout → allowed", op: models.OpCheckout, role: models.RoleAdmin, allowed: true},

		// ── junk role ────────────────────────────────────────────────────────
		{name: "UnknownRole → denied", op: models.OpDownload, role: models.Role("superuser"), wantReason: MsgUnknownRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := policy.Check(tt.op, tt.role)

			assert.Equal(t, tt.allowed, got.Allowed)
			assert.Equal(t, tt.wantReason, got.Reason)
		})
	}
}

// Distinct denial wording per cause: the UI shows reasons verbatim, so two
// different causes must never share a string.
func TestPermissionPolicy_DistinctReasons(t *testing.T) {
	policy := NewPermissionPolicy()

	seen := map[string]models.Operation{}
	for op, want := range viewerDenials {
		got := policy.Check(op, models.RoleViewer)
		assert.Equal(t, want, got.Reason)

		if prev, dup := seen[got.Reason]; dup {
			// Same permission family may share wording, but checkout,
			// check-in, metadata, delete, discard and force-release must
			// all differ from each other.
			assert.Equal(t, denialFamily(prev), denialFamily(op),
				"operations %s and %s share reason %q across families", prev, op, got.Reason)
		}
		seen[got.Reason] = op
	}
}

// denialFamily groups operations by the denial family they belong to.
func denialFamily(op models.Operation) string {
	return map[models.Operation]string{
		models.OpCheckout:        "checkout",
		models.OpCheckin:         "checkin",
		models.OpSync:            "checkin",
		models.OpSyncMetadata:    "metadata",
		models.OpDeleteLocal:     "delete",
		models.OpDeleteServer:    "delete",
		models.OpDiscard:         "discard",
		models.OpDiscardOrphaned: "discard",
		models.OpForceRelease:    "force-release",
	}[op]
}
