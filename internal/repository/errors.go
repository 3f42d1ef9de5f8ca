package repository

import "errors"

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a unique key is already taken.
	ErrConflict = errors.New("record already exists")
	// ErrStatusChanged is returned when a conditional transition finds the record
	// no longer in the expected status.
	ErrStatusChanged = errors.New("record status changed")
)
