package store

import "errors"

var (
	// ErrRecordNotCached is returned when no sync record is cached for the
	// requested path.
	ErrRecordNotCached = errors.New("sync record not cached")
)
