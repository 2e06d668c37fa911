package models

// Wire payloads exchanged with the vault server. The transport itself is an
// implementation detail of the adapter package.

type CheckoutRequest struct {
	FileID    string `json:"file_id"`
	UserID    string `json:"user_id"`
	MachineID string `json:"machine_id"`
}

type CheckinRequest struct {
	FileID string `json:"file_id"`
	UserID string `json:"user_id"`

	// MetadataOnly publishes pending metadata edits without a new content
	// version.
	MetadataOnly bool `json:"metadata_only,omitempty"`

	Metadata map[string]string `json:"metadata,omitempty"`
}

type CheckinResponse struct {
	Success    bool   `json:"success"`
	NewVersion int64  `json:"new_version"`
	Error      string `json:"error,omitempty"`
}

type FirstCheckinRequest struct {
	RelativePath string            `json:"relative_path"`
	UserID       string            `json:"user_id"`
	SizeBytes    int64             `json:"size_bytes"`
	ContentHash  string            `json:"content_hash"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

type PresenceResponse struct {
	Online bool `json:"online"`
}

type OperationResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
