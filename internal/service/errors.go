package service

import "errors"

var (
	// ErrNotTracked is returned by the classifier for an item that neither
	// exists locally nor has a remote record.
	ErrNotTracked = errors.New("item is not tracked")

	// ErrNothingSelected is returned by the executor when the selection
	// expands to no eligible file at all.
	ErrNothingSelected = errors.New("selection contains no eligible files")
)
