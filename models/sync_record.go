package models

import "time"

// RecordSource tags where a SyncRecord value came from. The server is the
// authoritative lock owner; this client is a cache and policy layer, so every
// consumer of a record must know whether it is looking at a fresh server
// response or a possibly stale local copy.
type RecordSource string

const (
	// SourceAuthoritative — the record was returned by the server within the
	// current operation. Safe to base mutating decisions on.
	SourceAuthoritative RecordSource = "authoritative"

	// SourceCached — the record was read from the local cache and may be
	// stale. Good enough for classification display, never for gating a
	// mutating call.
	SourceCached RecordSource = "cached"
)

// WorkflowState is an optional label/color pair attached to a record by the
// server-side workflow engine.
type WorkflowState struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// SyncRecord is the server's view of a tracked file.
//
// CheckedOutBy and CheckedOutByMachineID are set and cleared together: an
// empty user implies an empty machine id and vice versa. At most one
// concurrent holder exists per file; that invariant is enforced by the
// server and only observed here.
type SyncRecord struct {
	ID      string `json:"id"`
	Version int64  `json:"version"`

	CheckedOutBy            string `json:"checked_out_by,omitempty"`
	CheckedOutByMachineID   string `json:"checked_out_by_machine_id,omitempty"`
	CheckedOutByMachineName string `json:"checked_out_by_machine_name,omitempty"`

	Workflow *WorkflowState `json:"workflow,omitempty"`

	PartNumber  string `json:"part_number,omitempty"`
	Description string `json:"description,omitempty"`
	Revision    string `json:"revision,omitempty"`

	RelativePath string    `json:"relative_path"`
	CreatedAt    time.Time `json:"created_at"`
	Deleted      bool      `json:"deleted"`

	// Source is set by the layer that produced the value; it is not part of
	// the wire format.
	Source RecordSource `json:"-"`
}

// CheckedOut reports whether any user currently holds the file.
func (r SyncRecord) CheckedOut() bool {
	return r.CheckedOutBy != ""
}

// CheckedOutElsewhere reports whether the file is held from a machine other
// than machineID. A record with no holder is not "elsewhere".
func (r SyncRecord) CheckedOutElsewhere(machineID string) bool {
	return r.CheckedOutByMachineID != "" && r.CheckedOutByMachineID != machineID
}
