// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vault-sync/internal/adapter"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/models"
)

// conflictResolver detects cross-machine checkout conflicts by combining the
// authoritative records of the check-in targets with per-machine presence
// lookups.
type conflictResolver struct {
	server adapter.ServerAdapter
	logger *logger.Logger
}

// NewConflictResolver constructs a ConflictResolver backed by the server
// adapter.
func NewConflictResolver(server adapter.ServerAdapter, log *logger.Logger) ConflictResolver {
	return &conflictResolver{
		server: server,
		logger: log.GetChildLogger(),
	}
}

// Detect implements ConflictResolver. Only records tagged authoritative are
// trusted: the caller must refresh the targets from the server first, a stale
// cached lock must never block or unblock a check-in.
func (r *conflictResolver) Detect(ctx context.Context, files []models.TrackedItem, machineID, userID string) (*models.CheckoutConflict, error) {
	var conflicting []models.TrackedItem
	machines := make(map[string]string) // machine id → display name, insertion not preserved

	var machineOrder []string
	for _, item := range files {
		record := item.RemoteRecord
		if record == nil || record.Source != models.SourceAuthoritative {
			continue
		}
		if !record.CheckedOutElsewhere(machineID) {
			continue
		}
		conflicting = append(conflicting, item)
		if _, seen := machines[record.CheckedOutByMachineID]; !seen {
			machines[record.CheckedOutByMachineID] = record.CheckedOutByMachineName
			machineOrder = append(machineOrder, record.CheckedOutByMachineID)
		}
	}

	if len(conflicting) == 0 {
		return nil, nil
	}

	conflict := &models.CheckoutConflict{Files: conflicting}
	for _, id := range machineOrder {
		name := machines[id]
		if name == "" {
			name = id
		}
		conflict.MachineNames = append(conflict.MachineNames, name)

		online, err := r.server.IsMachineOnline(ctx, userID, id)
		if err != nil {
			return nil, fmt.Errorf("presence lookup for machine %s: %w", id, err)
		}
		if online {
			conflict.AnyMachineOnline = true
		}
	}

	r.logger.Warn().
		Int("files", len(conflict.Files)).
		Strs("machines", conflict.MachineNames).
		Bool("any_online", conflict.AnyMachineOnline).
		Msg("checkout conflict detected")

	return conflict, nil
}
