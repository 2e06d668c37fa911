package models

// FailureKind is the typed reason attached to a per-file failure inside a
// BatchResult. Informational kinds (AlreadyCheckedOut, AlreadyCheckedIn) are
// reported alongside successes, not counted as failures.
type FailureKind string

const (
	FailureNone              FailureKind = ""
	FailurePermissionDenied  FailureKind = "permission_denied"
	FailureAlreadyCheckedOut FailureKind = "already_checked_out"
	FailureAlreadyCheckedIn  FailureKind = "already_checked_in"
	FailureConflictBlocked   FailureKind = "conflict_blocked"
	FailureRemoteUnavailable FailureKind = "remote_unavailable"
	FailureNoIdentity        FailureKind = "no_identity"
	FailureLocalIO           FailureKind = "local_io"
	FailureNotEligible       FailureKind = "not_eligible"
)

// Informational reports whether the kind describes a benign no-op rather
// than an error.
func (k FailureKind) Informational() bool {
	return k == FailureAlreadyCheckedOut || k == FailureAlreadyCheckedIn
}

// FileResult is the outcome for one file of a batch operation.
type FileResult struct {
	RelativePath string
	Success      bool
	Kind         FailureKind

	// Reason is a human-readable explanation, distinct per cause, so the UI
	// never infers wording from a code.
	Reason string

	// NewVersion is set on a successful check-in.
	NewVersion int64
}

// BatchResult is the aggregate outcome of one CommandExecutor.Execute call.
// Files preserves the input order regardless of the completion order of the
// underlying remote calls.
type BatchResult struct {
	Operation Operation
	Files     []FileResult

	Succeeded int
	Failed    int

	// Denied is set when the permission policy rejected the whole operation
	// before any remote call; Files is empty in that case.
	Denied bool

	// DeniedReason is the policy's verbatim reason string when Denied.
	DeniedReason string

	// Conflict carries the checkout conflict that stopped a check-in before
	// any remote mutation, so the caller can present the override dialog.
	Conflict *CheckoutConflict

	// IdentityDegraded is set when the machine identity could not be
	// resolved this session; conflict detection was skipped and the caller
	// should warn the user.
	IdentityDegraded bool
}

// Tally recomputes the Succeeded/Failed counters from Files. Informational
// no-ops count as successes.
func (b *BatchResult) Tally() {
	b.Succeeded, b.Failed = 0, 0
	for _, f := range b.Files {
		if f.Success || f.Kind.Informational() {
			b.Succeeded++
		} else {
			b.Failed++
		}
	}
}
