package models

import "time"

// TrackedItem is a file or folder known to the client: present in the local
// vault, known to the server, or both.
//
// RemoteRecord is non-nil iff the item has been synchronized to the server at
// least once. PendingMetadata, once set, survives local edits and application
// restarts until a successful check-in; a passive listing refresh never
// clears it.
type TrackedItem struct {
	// Path is the absolute, device-local path of the item.
	Path string

	// RelativePath is the vault-relative path, POSIX-normalized (forward
	// slashes, no leading slash). It is the key used by ignore rules and the
	// vault index.
	RelativePath string

	IsDirectory bool
	Extension   string
	SizeBytes   int64
	ModifiedAt  time.Time

	// ExistsLocally reports whether the item currently has a copy on disk.
	// False for cloud-only records that were never downloaded.
	ExistsLocally bool

	// LocalContentHash is the blake2b hash of the local file content, empty
	// when the hash has been invalidated by a local write and not yet
	// recomputed.
	LocalContentHash string

	RemoteRecord *SyncRecord

	// PendingMetadata holds unsaved metadata edits awaiting the next
	// check-in, keyed by attribute name.
	PendingMetadata map[string]string
}

// Synchronized reports whether the item has ever been checked in to the
// server.
func (t TrackedItem) Synchronized() bool {
	return t.RemoteRecord != nil
}
