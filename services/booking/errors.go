package booking

import "errors"

// Failure kinds surfaced to callers. Handlers map each to an HTTP status;
// anything not wrapping one of these is an internal storage failure.
var (
	ErrValidation          = errors.New("validation failed")
	ErrServicerUnavailable = errors.New("servicer not available")
	ErrSlotConflict        = errors.New("slot not available")
	ErrUnauthorized        = errors.New("unauthorized action")
	ErrNotFound            = errors.New("not found")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrNotDeletable        = errors.New("only cancelled or completed appointments can be deleted")
	ErrReferentialGuard    = errors.New("servicer has existing appointments")
)
