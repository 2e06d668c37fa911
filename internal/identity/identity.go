// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package identity resolves and persists the stable machine identifier of
// this installation.
//
// The identifier is what lets the engine distinguish "checked out on this
// machine" from "checked out elsewhere". It is generated once, stored in a
// small JSON file outside the vault, and cached process-wide after the first
// resolution.
//
// Resolution failure is not fatal: when the identity file can neither be
// read nor created, the engine degrades to "conflict detection disabled for
// this session". Callers observe the degraded mode through [ErrNoIdentity]
// and must surface it to the user.
package identity

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/models"
	"github.com/google/uuid"
)

// ErrNoIdentity is returned when the machine identity cannot be resolved
// this session. Conflict detection is disabled while this error stands.
var ErrNoIdentity = errors.New("machine identity unavailable")

// Resolver resolves the machine identity exactly once per process and caches
// the outcome, error included, for the lifetime of the session.
type Resolver struct {
	path        string
	displayName string
	logger      *logger.Logger

	once     sync.Once
	identity models.MachineIdentity
	err      error
}

// NewResolver constructs a Resolver that persists the identity at path.
// displayName is the human-readable machine name reported to the server; if
// empty, the OS hostname is used.
func NewResolver(path, displayName string, log *logger.Logger) *Resolver {
	return &Resolver{path: path, displayName: displayName, logger: log}
}

// Resolve returns the machine identity, loading or generating it on first
// call. Subsequent calls return the cached value. On failure it returns an
// error wrapping [ErrNoIdentity]; the failure is likewise cached so the
// session stays consistently in degraded mode.
func (r *Resolver) Resolve() (models.MachineIdentity, error) {
	r.once.Do(func() {
		r.identity, r.err = r.loadOrCreate()
		if r.err != nil {
			r.logger.Warn().Err(r.err).Msg("machine identity unavailable, conflict detection disabled for this session")
		}
	})

	return r.identity, r.err
}

func (r *Resolver) loadOrCreate() (models.MachineIdentity, error) {
	if r.path == "" {
		return models.MachineIdentity{}, fmt.Errorf("%w: no identity path configured", ErrNoIdentity)
	}

	data, err := os.ReadFile(r.path)
	switch {
	case err == nil:
		var id models.MachineIdentity
		if jsonErr := json.Unmarshal(data, &id); jsonErr == nil && id.ID != "" {
			return id, nil
		}
		// Corrupt file: regenerate below rather than carrying a broken id.
		r.logger.Warn().Str("path", r.path).Msg("identity file corrupt, regenerating")
	case !os.IsNotExist(err):
		return models.MachineIdentity{}, fmt.Errorf("%w: read identity file: %v", ErrNoIdentity, err)
	}

	id := models.MachineIdentity{
		ID:          newMachineID(),
		DisplayName: r.resolveDisplayName(),
		CreatedAt:   time.Now().UTC(),
	}

	if err := r.persist(id); err != nil {
		return models.MachineIdentity{}, err
	}

	r.logger.Info().Str("machine_id", id.ID).Str("name", id.DisplayName).Msg("generated new machine identity")
	return id, nil
}

func (r *Resolver) persist(id models.MachineIdentity) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o700); err != nil {
		return fmt.Errorf("%w: create identity dir: %v", ErrNoIdentity, err)
	}

	data, err := json.MarshalIndent(id, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode identity: %v", ErrNoIdentity, err)
	}

	if err := os.WriteFile(r.path, data, 0o600); err != nil {
		return fmt.Errorf("%w: write identity file: %v", ErrNoIdentity, err)
	}

	return nil
}

func (r *Resolver) resolveDisplayName() string {
	if r.displayName != "" {
		return r.displayName
	}
	if host, err := os.Hostname(); err == nil && host != "" {
		return host
	}
	return "unknown machine"
}

func newMachineID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
