// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package vault holds the local-filesystem side of the engine: the tracked
// item index, the directory scanner, content hashing, change watching, and
// the per-vault ignore rules.
package vault

import (
	"path"
	"strings"
	"sync"
)

// IgnoreRuleSet is the ordered list of glob-like patterns of one vault.
// Local-only items matching a pattern classify as ignored and are excluded
// from "needs sync" counts.
//
// Supported pattern forms:
//   - "*.ext"        — matched against the item's base name
//   - "dir/"         — matches the directory and everything under it
//   - "a/b/c.txt"    — matched against the full vault-relative path
//
// A rule set is created empty per vault, mutated by the explicit
// "keep local only" user action, and persisted alongside the vault
// configuration. Single-writer, single-process access; the mutex only guards
// against concurrent reads during a mutation within one process.
type IgnoreRuleSet struct {
	mu       sync.RWMutex
	patterns []string
}

// NewIgnoreRuleSet builds a rule set from the persisted pattern list,
// preserving order.
func NewIgnoreRuleSet(patterns []string) *IgnoreRuleSet {
	rs := &IgnoreRuleSet{}
	for _, p := range patterns {
		if p = strings.TrimSpace(p); p != "" {
			rs.patterns = append(rs.patterns, p)
		}
	}
	return rs
}

// Patterns returns a copy of the pattern list in order, for persistence.
func (rs *IgnoreRuleSet) Patterns() []string {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	out := make([]string, len(rs.patterns))
	copy(out, rs.patterns)
	return out
}

// Add appends a pattern unless an identical one is already present.
// Reports whether the set changed.
func (rs *IgnoreRuleSet) Add(pattern string) bool {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return false
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()

	for _, p := range rs.patterns {
		if p == pattern {
			return false
		}
	}
	rs.patterns = append(rs.patterns, pattern)
	return true
}

// Remove deletes a pattern. Reports whether the set changed.
func (rs *IgnoreRuleSet) Remove(pattern string) bool {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	for i, p := range rs.patterns {
		if p == pattern {
			rs.patterns = append(rs.patterns[:i], rs.patterns[i+1:]...)
			return true
		}
	}
	return false
}

// Match reports whether the vault-relative path is covered by any pattern.
// Directories are matched with a trailing slash so that a "drafts/" rule
// covers both the folder itself and its contents.
func (rs *IgnoreRuleSet) Match(relPath string, isDir bool) bool {
	relPath = NormalizePath(relPath)
	if relPath == "" {
		return false
	}

	rs.mu.RLock()
	defer rs.mu.RUnlock()

	for _, pattern := range rs.patterns {
		if matchPattern(pattern, relPath, isDir) {
			return true
		}
	}
	return false
}

func matchPattern(pattern, relPath string, isDir bool) bool {
	// Directory rule: covers the directory and everything below it.
	if strings.HasSuffix(pattern, "/") {
		dir := strings.TrimSuffix(pattern, "/")
		if isDir && relPath == dir {
			return true
		}
		return strings.HasPrefix(relPath, dir+"/")
	}

	// Patterns without a slash apply to the base name, so "*.tmp" covers
	// scratch.tmp anywhere in the vault.
	if !strings.Contains(pattern, "/") {
		if ok, err := path.Match(pattern, path.Base(relPath)); err == nil && ok {
			return true
		}
		return false
	}

	if ok, err := path.Match(pattern, relPath); err == nil && ok {
		return true
	}
	return pattern == relPath
}

// NormalizePath converts an OS path fragment into the canonical
// vault-relative form: forward slashes, no leading "./" or "/".
func NormalizePath(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	p = path.Clean(p)
	p = strings.TrimPrefix(p, "/")
	if p == "." {
		return ""
	}
	return p
}
