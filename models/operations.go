package models

// Operation identifies one command on the engine's public surface.
type Operation string

const (
	OpCheckout          Operation = "checkout"
	OpCheckin           Operation = "checkin"
	OpSync              Operation = "sync" // first check-in of a never-synced file
	OpDownload          Operation = "download"
	OpDeleteLocal       Operation = "delete-local"
	OpDeleteServer      Operation = "delete-server"
	OpDiscard           Operation = "discard"
	OpDiscardOrphaned   Operation = "discard-orphaned"
	OpSyncMetadata      Operation = "sync-metadata"
	OpExtractReferences Operation = "extract-references"
	OpForceRelease      Operation = "force-release"
)

// Role is the actor role the permission policy gates on.
type Role string

const (
	RoleViewer Role = "viewer"
	RoleEditor Role = "editor"
	RoleAdmin  Role = "admin"
)
