package models

// CheckoutConflict is produced during a check-in attempt when some of the
// target files are locked from a different machine. It is ephemeral: the
// resolver returns it as a plain value and retains nothing; all presentation
// state belongs to the caller.
type CheckoutConflict struct {
	// Files is the conflicting subset of the check-in targets, in input
	// order.
	Files []TrackedItem

	// MachineNames holds the distinct display names of the machines that
	// hold the conflicting checkouts.
	MachineNames []string

	// AnyMachineOnline is the OR over the per-machine presence checks. When
	// true the user may explicitly force the check-in; when false the
	// check-in is blocked unconditionally, because an offline machine may
	// hold unsaved edits that a forced override would orphan.
	AnyMachineOnline bool
}

// Blocking reports whether the conflict forbids even a forced check-in.
func (c CheckoutConflict) Blocking() bool {
	return !c.AnyMachineOnline
}
