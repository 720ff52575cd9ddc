package core

import "errors"

// Error taxonomy. Extraction, not-found and validation errors are recovered
// into user-facing replies by the bot handlers; upstream and persistence
// errors propagate to the caller.
var (
	ErrExtraction       = errors.New("extraction failed")
	ErrNotFound         = errors.New("not found")
	ErrValidation       = errors.New("validation failed")
	ErrUpstream         = errors.New("upstream failure")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrEmptyDescription = errors.New("empty description")
	ErrMissingUser      = errors.New("missing user id")
	ErrScheduleMissing  = errors.New("reminder needs a schedule or recurrence")
)
