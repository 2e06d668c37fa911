package adapter

import "errors"

var (
	ErrBadRequest        = errors.New("bad request")
	ErrUnauthorized      = errors.New("client unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrNotFound          = errors.New("record not found")
	ErrConflict          = errors.New("checkout conflict")
	ErrRemoteUnavailable = errors.New("vault server unavailable")
)
