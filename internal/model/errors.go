package model

import "errors"

var (
	// ErrNotFound is returned when no document matches the identifier.
	ErrNotFound = errors.New("document not found")
	// ErrInvalidIdentifier is returned for malformed document identifiers.
	ErrInvalidIdentifier = errors.New("invalid identifier")
)
