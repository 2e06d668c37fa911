package vault

import (
	"encoding/hex"
	"fmt"
	"io"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"golang.org/x/crypto/blake2b"
)

// Hasher computes local content hashes over the vault filesystem. The hash
// identifies content only; it carries no security property here, blake2b is
// used for speed on large CAD files.
type Hasher struct {
	fs   billy.Filesystem
	root string
}

// NewHasher builds a hasher over the same filesystem and root as the
// scanner.
func NewHasher(fs billy.Filesystem, root string) *Hasher {
	return &Hasher{fs: fs, root: root}
}

// ContentHash reads the file at the vault-relative path and returns the hex
// blake2b-256 digest of its content.
func (h *Hasher) ContentHash(rel string) (string, error) {
	f, err := h.fs.Open(h.fs.Join(h.root, filepath.FromSlash(rel)))
	if err != nil {
		return "", fmt.Errorf("open %s for hashing: %w", rel, err)
	}
	defer f.Close()

	digest, err := blake2b.New256(nil)
	if err != nil {
		return "", fmt.Errorf("init blake2b: %w", err)
	}

	if _, err := io.Copy(digest, f); err != nil {
		return "", fmt.Errorf("hash %s: %w", rel, err)
	}

	return hex.EncodeToString(digest.Sum(nil)), nil
}
