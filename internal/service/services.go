// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-vault-sync/internal/adapter"
	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/internal/identity"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/store"
	"github.com/MKhiriev/go-vault-sync/internal/vault"
	"github.com/MKhiriev/go-vault-sync/models"
	"github.com/go-git/go-billy/v5"
)

// ClientServices bundles the engine's services for the client wiring.
type ClientServices struct {
	Classifier SyncClassifier
	Policy     PermissionPolicy
	Resolver   ConflictResolver
	Executor   CommandExecutor
	Refresh    RefreshService
}

// NewClientServices wires the engine core from its collaborators.
func NewClientServices(
	cfg config.ClientConfig,
	storages *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	idResolver *identity.Resolver,
	index *vault.Index,
	hasher *vault.Hasher,
	fs billy.Filesystem,
	root string,
	log *logger.Logger,
) *ClientServices {
	classifier := NewSyncClassifier(index)
	policy := NewPermissionPolicy()
	resolver := NewConflictResolver(serverAdapter, log)

	executor := NewCommandExecutor(ExecutorDeps{
		Policy:      policy,
		Resolver:    resolver,
		Server:      serverAdapter,
		Records:     storages.Records,
		Pending:     storages.PendingMetadata,
		Index:       index,
		Hasher:      hasher,
		Identity:    idResolver,
		FS:          fs,
		Root:        root,
		UserID:      cfg.App.UserID,
		Role:        models.Role(cfg.App.Role),
		FanOutLimit: cfg.Workers.FanOutLimit,
		Logger:      log,
	})

	return &ClientServices{
		Classifier: classifier,
		Policy:     policy,
		Resolver:   resolver,
		Executor:   executor,
		Refresh:    NewRefreshService(serverAdapter, storages.Records, index, classifier, log),
	}
}
