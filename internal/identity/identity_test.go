// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package identity

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_GeneratesAndPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "machine.json")
	r := NewResolver(path, "Alice's Laptop", logger.Nop())

	id, err := r.Resolve()

	require.NoError(t, err)
	assert.NotEmpty(t, id.ID)
	assert.Equal(t, "Alice's Laptop", id.DisplayName)
	assert.FileExists(t, path)
}

func TestResolve_CachedAcrossCalls(t *testing.T) {
	path := filepath.Join(t.TempDir(), "machine.json")
	r := NewResolver(path, "", logger.Nop())

	first, err := r.Resolve()
	require.NoError(t, err)

	// Removing the file must not matter: the identity is cached in-process.
	require.NoError(t, os.Remove(path))

	second, err := r.Resolve()
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestResolve_ReusesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "machine.json")

	first, err := NewResolver(path, "", logger.Nop()).Resolve()
	require.NoError(t, err)

	second, err := NewResolver(path, "", logger.Nop()).Resolve()
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "a fresh resolver must load the persisted id, not mint a new one")
}

func TestResolve_CorruptFileRegenerated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "machine.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	id, err := NewResolver(path, "", logger.Nop()).Resolve()

	require.NoError(t, err)
	assert.NotEmpty(t, id.ID)
}

func TestResolve_NoPathDegrades(t *testing.T) {
	r := NewResolver("", "", logger.Nop())

	_, err := r.Resolve()

	require.ErrorIs(t, err, ErrNoIdentity)

	// The degraded outcome is cached too.
	_, err = r.Resolve()
	require.ErrorIs(t, err, ErrNoIdentity)
}

func TestResolve_UnwritableStoreDegrades(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0o500))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o700) })

	r := NewResolver(filepath.Join(dir, "sub", "machine.json"), "", logger.Nop())

	_, err := r.Resolve()
	require.ErrorIs(t, err, ErrNoIdentity)
}
