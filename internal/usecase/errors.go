package usecase

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidState marks an operation the record's current status forbids.
	ErrInvalidState = errors.New("invalid state")
)
