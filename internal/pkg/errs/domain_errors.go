package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Booking errors
	ErrMissingFields     = errors.New("required fields missing")
	ErrInvalidDateFormat = errors.New("invalid date format")
	ErrInvertedRange     = errors.New("end date before start date")
	ErrSlotConflict      = errors.New("slot already reserved")

	// Snapshot errors
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// Auth errors
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
