package model

import "errors"

// Error codes
const (
	ErrCodeUnauthenticated = "AUTH001"
	ErrCodeInvalidRequest  = "AUTH002"
)

// Any provider failure (non-2xx, network error, malformed response) collapses
// into ErrUnauthenticated: an expired token and an invalid one are not
// distinguished.
var (
	ErrUnauthenticated = errors.New("not authenticated")
)
