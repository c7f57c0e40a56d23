package pagestore

import "errors"

var (
	// ErrNotFound indicates no page exists for the requested identifier.
	ErrNotFound = errors.New("page not found")
)
