// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/go-vault-sync/models"

// permissionPolicy is a static role → operation table. The policy is
// evaluated before anything else in the executor, so a denied request never
// reaches the conflict resolver or the server.
type permissionPolicy struct{}

// NewPermissionPolicy constructs the role-based PermissionPolicy.
func NewPermissionPolicy() PermissionPolicy {
	return &permissionPolicy{}
}

// viewerDenials maps each write operation to its denial wording. Operations
// absent from the map are read-only and open to every role.
var viewerDenials = map[models.Operation]string{
	models.OpCheckout:        MsgRequiresCheckoutPermission,
	models.OpCheckin:         MsgRequiresCheckinPermission,
	models.OpSync:            MsgRequiresCheckinPermission,
	models.OpSyncMetadata:    MsgRequiresMetadataPermission,
	models.OpDeleteLocal:     MsgRequiresDeletePermission,
	models.OpDeleteServer:    MsgRequiresDeletePermission,
	models.OpDiscard:         MsgRequiresDiscardPermission,
	models.OpDiscardOrphaned: MsgRequiresDiscardPermission,
	models.OpForceRelease:    MsgForceReleaseAdminOnly,
}

func (p *permissionPolicy) Check(op models.Operation, role models.Role) Decision {
	switch role {
	case models.RoleAdmin:
		return Decision{Allowed: true}
	case models.RoleEditor:
		if op == models.OpForceRelease {
			return Decision{Reason: MsgForceReleaseAdminOnly}
		}
		return Decision{Allowed: true}
	case models.RoleViewer:
		if reason, denied := viewerDenials[op]; denied {
			return Decision{Reason: reason}
		}
		return Decision{Allowed: true}
	default:
		return Decision{Reason: MsgUnknownRole}
	}
}
