package vault

import (
	"context"
	"sort"
	"testing"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanner_Scan(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "/vault/parts/bracket.SLDPRT", []byte("solid"), 0o644))
	require.NoError(t, util.WriteFile(fs, "/vault/readme.txt", []byte("hello"), 0o644))

	s := NewScanner(fs, "/vault", logger.Nop())
	items, err := s.Scan(context.Background())
	require.NoError(t, err)

	rels := make([]string, 0, len(items))
	for _, it := range items {
		rels = append(rels, it.RelativePath)
		assert.True(t, it.ExistsLocally)
	}
	sort.Strings(rels)
	assert.Equal(t, []string{"parts", "parts/bracket.SLDPRT", "readme.txt"}, rels)

	for _, it := range items {
		switch it.RelativePath {
		case "parts":
			assert.True(t, it.IsDirectory)
		case "parts/bracket.SLDPRT":
			assert.False(t, it.IsDirectory)
			assert.Equal(t, "sldprt", it.Extension)
			assert.Equal(t, int64(5), it.SizeBytes)
		}
	}
}

func TestScanner_Populate(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "/vault/a/b.txt", []byte("x"), 0o644))

	ix := NewIndex()
	n, err := NewScanner(fs, "/vault", logger.Nop()).Populate(context.Background(), ix)
	require.NoError(t, err)
	assert.Equal(t, 2, n) // folder a + file a/b.txt

	_, ok := ix.Get("a/b.txt")
	assert.True(t, ok)
}

func TestScanner_CancelledContext(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "/vault/a.txt", []byte("x"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewScanner(fs, "/vault", logger.Nop()).Scan(ctx)
	require.Error(t, err)
}

func TestHasher_ContentHash(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "/vault/part.sldprt", []byte("content"), 0o644))

	h := NewHasher(fs, "/vault")

	first, err := h.ContentHash("part.sldprt")
	require.NoError(t, err)
	assert.Len(t, first, 64) // hex of 32 bytes

	second, err := h.ContentHash("part.sldprt")
	require.NoError(t, err)
	assert.Equal(t, first, second, "hash must be deterministic")

	require.NoError(t, util.WriteFile(fs, "/vault/part.sldprt", []byte("changed"), 0o644))
	third, err := h.ContentHash("part.sldprt")
	require.NoError(t, err)
	assert.NotEqual(t, first, third)
}

func TestHasher_MissingFile(t *testing.T) {
	h := NewHasher(memfs.New(), "/vault")

	_, err := h.ContentHash("nope.txt")
	require.Error(t, err)
}
