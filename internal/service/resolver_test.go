// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/mock"
	"github.com/MKhiriev/go-vault-sync/internal/service"
	"github.com/MKhiriev/go-vault-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	thisMachine  = "M2"
	otherMachine = "M1"
	testUser     = "alice"
)

// held builds a TrackedItem whose authoritative record is checked out by
// user on machine.
func held(rel, user, machineID, machineName string) models.TrackedItem {
	return models.TrackedItem{
		RelativePath: rel,
		RemoteRecord: &models.SyncRecord{
			ID:                      "id-" + rel,
			RelativePath:            rel,
			CheckedOutBy:            user,
			CheckedOutByMachineID:   machineID,
			CheckedOutByMachineName: machineName,
			Source:                  models.SourceAuthoritative,
		},
	}
}

func free(rel string) models.TrackedItem {
	return models.TrackedItem{
		RelativePath: rel,
		RemoteRecord: &models.SyncRecord{
			ID:           "id-" + rel,
			RelativePath: rel,
			Source:       models.SourceAuthoritative,
		},
	}
}

func TestConflictResolver_Detect_NoConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := mock.NewMockServerAdapter(ctrl)
	resolver := service.NewConflictResolver(server, logger.Nop())

	files := []models.TrackedItem{
		free("parts/a.sldprt"),
		held("parts/b.sldprt", testUser, thisMachine, "My Desktop"), // held here, not a conflict
	}

	conflict, err := resolver.Detect(context.Background(), files, thisMachine, testUser)
	require.NoError(t, err)
	assert.Nil(t, conflict)
}

func TestConflictResolver_Detect_OtherMachineOnline(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := mock.NewMockServerAdapter(ctrl)
	resolver := service.NewConflictResolver(server, logger.Nop())

	files := []models.TrackedItem{
		held("parts/part.sldprt", testUser, otherMachine, "Alice's Laptop"),
	}
	server.EXPECT().IsMachineOnline(gomock.Any(), testUser, otherMachine).Return(true, nil)

	conflict, err := resolver.Detect(context.Background(), files, thisMachine, testUser)
	require.NoError(t, err)
	require.NotNil(t, conflict)

	assert.Equal(t, []string{"Alice's Laptop"}, conflict.MachineNames)
	assert.True(t, conflict.AnyMachineOnline)
	assert.False(t, conflict.Blocking())
	require.Len(t, conflict.Files, 1)
	assert.Equal(t, "parts/part.sldprt", conflict.Files[0].RelativePath)
}

func TestConflictResolver_Detect_AllMachinesOffline(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := mock.NewMockServerAdapter(ctrl)
	resolver := service.NewConflictResolver(server, logger.Nop())

	files := []models.TrackedItem{
		held("parts/a.sldprt", testUser, otherMachine, "Alice's Laptop"),
	}
	server.EXPECT().IsMachineOnline(gomock.Any(), testUser, otherMachine).Return(false, nil)

	conflict, err := resolver.Detect(context.Background(), files, thisMachine, testUser)
	require.NoError(t, err)
	require.NotNil(t, conflict)

	assert.False(t, conflict.AnyMachineOnline)
	assert.True(t, conflict.Blocking())
}

// One presence query per distinct machine, not per file.
func TestConflictResolver_Detect_DistinctMachinesQueriedOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := mock.NewMockServerAdapter(ctrl)
	resolver := service.NewConflictResolver(server, logger.Nop())

	files := []models.TrackedItem{
		held("a.sldprt", testUser, "M1", "Laptop"),
		held("b.sldprt", testUser, "M1", "Laptop"),
		held("c.sldprt", "bob", "M3", "Workshop PC"),
	}
	server.EXPECT().IsMachineOnline(gomock.Any(), testUser, "M1").Return(false, nil).Times(1)
	server.EXPECT().IsMachineOnline(gomock.Any(), testUser, "M3").Return(true, nil).Times(1)

	conflict, err := resolver.Detect(context.Background(), files, thisMachine, testUser)
	require.NoError(t, err)
	require.NotNil(t, conflict)

	assert.Equal(t, []string{"Laptop", "Workshop PC"}, conflict.MachineNames)
	assert.True(t, conflict.AnyMachineOnline)
	assert.Len(t, conflict.Files, 3)
}

// Cached records never drive conflict detection.
func TestConflictResolver_Detect_IgnoresCachedRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := mock.NewMockServerAdapter(ctrl)
	resolver := service.NewConflictResolver(server, logger.Nop())

	stale := held("a.sldprt", testUser, otherMachine, "Laptop")
	stale.RemoteRecord.Source = models.SourceCached

	conflict, err := resolver.Detect(context.Background(), []models.TrackedItem{stale}, thisMachine, testUser)
	require.NoError(t, err)
	assert.Nil(t, conflict)
}

func TestConflictResolver_Detect_PresenceLookupFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := mock.NewMockServerAdapter(ctrl)
	resolver := service.NewConflictResolver(server, logger.Nop())

	files := []models.TrackedItem{held("a.sldprt", testUser, otherMachine, "Laptop")}
	lookupErr := errors.New("presence endpoint down")
	server.EXPECT().IsMachineOnline(gomock.Any(), testUser, otherMachine).Return(false, lookupErr)

	_, err := resolver.Detect(context.Background(), files, thisMachine, testUser)
	assert.ErrorIs(t, err, lookupErr)
}
