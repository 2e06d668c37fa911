package models

// DiffStatus classifies how a tracked item's local and remote copies relate.
// It is a derived value: computed on demand by the sync classifier, never
// persisted.
type DiffStatus string

const (
	// StatusLocal — the item exists on disk only and is not ignored; it has
	// never been synchronized to the server.
	StatusLocal DiffStatus = "local"

	// StatusIgnored — the item exists on disk only and matches an ignore
	// pattern; it is excluded from "needs sync" counts.
	StatusIgnored DiffStatus = "ignored"

	// StatusSynced — the item exists both locally and on the server and the
	// local content is current.
	StatusSynced DiffStatus = "synced"

	// StatusCloudOnly — a server record exists but no local copy has been
	// downloaded yet.
	StatusCloudOnly DiffStatus = "cloud_only"

	// StatusCloudNew — same as StatusCloudOnly, but the server record was
	// created after the session's last full listing refresh. Purely cosmetic;
	// no operation is gated on the distinction.
	StatusCloudNew DiffStatus = "cloud_new"

	// StatusOrphanedRemote — a local copy exists but the server record has
	// been deleted by another actor.
	StatusOrphanedRemote DiffStatus = "orphaned_remote"
)

// NeedsSync reports whether the status should be counted in the "needs sync"
// summary shown upstream. Ignored items are deliberately excluded.
func (s DiffStatus) NeedsSync() bool {
	return s == StatusLocal || s == StatusCloudOnly || s == StatusCloudNew || s == StatusOrphanedRemote
}
