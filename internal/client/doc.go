// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the vault-sync client application runtime.
//
// It wires the local vault (scanner, index, watcher), the persisted state,
// the server adapter and the engine services into a single process
// lifecycle, and dispatches one engine command per invocation.
package client
