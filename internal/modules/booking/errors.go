package booking

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrNotAvailable     = errors.New("no room available")
	ErrNotFound         = errors.New("reservation not found")
	ErrAlreadyCancelled = errors.New("reservation already cancelled")
)
