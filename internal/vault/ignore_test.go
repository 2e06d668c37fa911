// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIgnoreRuleSet_Match(t *testing.T) {
	rs := NewIgnoreRuleSet([]string{"*.tmp", "drafts/", "notes/todo.txt"})

	tests := []struct {
		name  string
		rel   string
		isDir bool
		want  bool
	}{
		{name: "extension rule at root", rel: "scratch.tmp", want: true},
		{name: "extension rule in subfolder", rel: "parts/scratch.tmp", want: true},
		{name: "extension not matching", rel: "part.sldprt", want: false},
		{name: "directory rule on the folder itself", rel: "drafts", isDir: true, want: true},
		{name: "directory rule on contents", rel: "drafts/sketch.sldprt", want: true},
		{name: "directory rule needs full segment", rel: "drafts2/sketch.sldprt", want: false},
		{name: "literal path rule", rel: "notes/todo.txt", want: true},
		{name: "literal rule other file", rel: "notes/done.txt", want: false},
		{name: "empty path", rel: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rs.Match(tt.rel, tt.isDir))
		})
	}
}

func TestIgnoreRuleSet_AddRemove(t *testing.T) {
	rs := NewIgnoreRuleSet(nil)

	assert.True(t, rs.Add("*.bak"))
	assert.False(t, rs.Add("*.bak"), "duplicate must not be added twice")
	assert.True(t, rs.Match("file.bak", false))

	assert.True(t, rs.Remove("*.bak"))
	assert.False(t, rs.Remove("*.bak"))
	assert.False(t, rs.Match("file.bak", false))
}

func TestIgnoreRuleSet_PatternsPreservesOrder(t *testing.T) {
	rs := NewIgnoreRuleSet([]string{"b/", "*.a", "  ", "c.txt"})

	assert.Equal(t, []string{"b/", "*.a", "c.txt"}, rs.Patterns())
}

func TestNormalizePath(t *testing.T) {
	assert.Equal(t, "a/b.txt", NormalizePath(`a\b.txt`))
	assert.Equal(t, "a/b.txt", NormalizePath("./a/b.txt"))
	assert.Equal(t, "a/b.txt", NormalizePath("/a/b.txt"))
	assert.Equal(t, "", NormalizePath("."))
}
