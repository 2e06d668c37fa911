package vault

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/models"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// Scanner enumerates the local vault folder and produces TrackedItems for
// everything on disk. It operates over a billy.Filesystem so tests can run
// against an in-memory filesystem.
type Scanner struct {
	fs     billy.Filesystem
	root   string
	logger *logger.Logger
}

// NewScanner builds a scanner over fs rooted at root. root is an
// fs-absolute path ("/" for a chroot'd or in-memory filesystem).
func NewScanner(fs billy.Filesystem, root string, log *logger.Logger) *Scanner {
	return &Scanner{fs: fs, root: root, logger: log}
}

// Scan walks the vault and returns one TrackedItem per file and folder
// found, with ExistsLocally set. The vault root itself is not reported.
// ctx is checked between entries so large vaults can be abandoned early.
func (s *Scanner) Scan(ctx context.Context) ([]models.TrackedItem, error) {
	var items []models.TrackedItem

	err := util.Walk(s.fs, s.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// A single unreadable entry must not abort the listing.
			s.logger.Warn().Err(err).Str("path", path).Msg("skipping unreadable entry")
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		rel := s.relativeTo(path)
		if rel == "" {
			return nil // the root itself
		}

		items = append(items, models.TrackedItem{
			Path:          path,
			RelativePath:  rel,
			IsDirectory:   info.IsDir(),
			Extension:     normalizedExt(info.Name()),
			SizeBytes:     info.Size(),
			ModifiedAt:    info.ModTime(),
			ExistsLocally: true,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk vault %s: %w", s.root, err)
	}

	return items, nil
}

// Populate scans the vault and loads every found item into the index.
// Returns the number of items indexed.
func (s *Scanner) Populate(ctx context.Context, index *Index) (int, error) {
	items, err := s.Scan(ctx)
	if err != nil {
		return 0, err
	}

	for _, item := range items {
		index.Put(item)
	}
	return len(items), nil
}

func (s *Scanner) relativeTo(path string) string {
	rel, err := filepath.Rel(s.root, path)
	if err != nil {
		return NormalizePath(path)
	}
	if rel == "." {
		return ""
	}
	return NormalizePath(rel)
}

func normalizedExt(name string) string {
	ext := filepath.Ext(name)
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MTimeOf stats one path and returns its modification time. Used to refresh
// a single item after a command touches it.
func (s *Scanner) MTimeOf(rel string) (time.Time, error) {
	info, err := s.fs.Stat(s.fs.Join(s.root, filepath.FromSlash(rel)))
	if err != nil {
		return time.Time{}, fmt.Errorf("stat %s: %w", rel, err)
	}
	return info.ModTime(), nil
}
